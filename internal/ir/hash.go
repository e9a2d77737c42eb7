package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefix for definitions fingerprints.
// Version suffix enables future algorithm migration.
const DomainDefinitions = "errcodegen/definitions/v1"

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint identifies the content of a definitions file independent of
// formatting, comments and the declaration order of codes. Two files with
// the same fingerprint generate byte-identical code for the same options.
// Class order is part of the fingerprint since it is emission order.
func Fingerprint(defs *Definitions) (string, error) {
	canonical, err := CanonicalDefinitions(defs)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDefinitions, canonical), nil
}

// MustFingerprint is like Fingerprint but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustFingerprint(defs *Definitions) string {
	fp, err := Fingerprint(defs)
	if err != nil {
		panic(err)
	}
	return fp
}
