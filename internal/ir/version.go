package ir

// Version constants for the record schema and the generator.
const (
	// IRVersion is the record schema version. It is folded into the
	// fingerprint so a schema change invalidates old fingerprints.
	IRVersion = "1"

	// GeneratorName is stamped into the generated-code header.
	GeneratorName = "errcodegen"

	// GeneratorVersion is the errcodegen release.
	GeneratorVersion = "0.1.0"
)
