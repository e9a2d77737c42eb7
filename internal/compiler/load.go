package compiler

import (
	"os"

	"github.com/roach88/errcodegen/internal/ir"
)

// Mode controls how warnings are treated while loading.
type Mode int

const (
	// ModeLenient returns warnings alongside the definitions.
	ModeLenient Mode = iota
	// ModeStrict fails on the first warning as if it were an error.
	ModeStrict
)

// LoadResult contains the records loaded from one definitions file.
type LoadResult struct {
	Definitions *ir.Definitions
	Warnings    []Diagnostic
	Size        int // Bytes read
}

// Load reads, parses and validates a definitions file.
//
// Errors are *LoadError when the file cannot be read, *CapabilityError when
// it names anything besides error_code and error_class, and *SyntaxError
// for grammar violations and validation errors.
func Load(path string, mode Mode) (*LoadResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Compile(path, src, mode)
}

// Compile is Load for source already in memory.
func Compile(filename string, src []byte, mode Mode) (*LoadResult, error) {
	defs, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Definitions: defs, Size: len(src)}
	for _, d := range Validate(defs) {
		if d.Severity == SeverityError || mode == ModeStrict {
			return nil, d.Err()
		}
		result.Warnings = append(result.Warnings, d)
	}
	return result, nil
}
