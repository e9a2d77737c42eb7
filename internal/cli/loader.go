package cli

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue/token"
	"github.com/rs/zerolog"

	"github.com/roach88/errcodegen/internal/compiler"
	"github.com/roach88/errcodegen/internal/ir"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeLoadFailed  = "E004" // Definitions file unreadable
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeTestFailed  = "E008" // One or more conformance scenarios failed

	// Definitions file errors, reported by the compiler
	ErrCodeSyntax          = compiler.CodeSyntax
	ErrCodeCapability      = compiler.CodeCapability
	ErrCodeUnknownMember   = compiler.CodeUnknownMember
	ErrCodeDuplicateName   = compiler.CodeDuplicateName
	ErrCodeDuplicateClass  = compiler.CodeDuplicateClass
	ErrCodeDuplicateMember = compiler.CodeDuplicateMember
	ErrCodeReservedName    = compiler.CodeReservedName
	ErrCodeDuplicateValue  = compiler.CodeDuplicateValue
)

// LoadError represents an error that occurred while loading definitions.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // Position in the definitions file if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Location returns "file:line:col", or "" without a position.
func (e *LoadError) Location() string {
	if !e.Pos.IsValid() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column())
}

// LoadDefinitions loads and validates a definitions file, logging what it
// found. Warnings are logged and returned in the result; errors come back
// as *LoadError.
func LoadDefinitions(path string, mode compiler.Mode, log zerolog.Logger) (*compiler.LoadResult, error) {
	log.Debug().Str("path", path).Msg("loading definitions")

	result, err := compiler.Load(path, mode)
	if err != nil {
		return nil, convertCompilerError(err)
	}

	log.Debug().
		Int("bytes", result.Size).
		Int("codes", len(result.Definitions.Codes)).
		Int("classes", len(result.Definitions.Classes)).
		Msg("loaded definitions")
	for _, w := range result.Warnings {
		log.Warn().Str("code", w.Code).Msg(w.Error())
	}
	return result, nil
}

// ParseDefinitions reads and parses a definitions file without validating
// it, so callers can collect every diagnostic themselves.
func ParseDefinitions(path string) (*ir.Definitions, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, convertCompilerError(&compiler.LoadError{Path: path, Err: err})
	}
	defs, err := compiler.Parse(path, src)
	if err != nil {
		return nil, convertCompilerError(err)
	}
	return defs, nil
}

// convertCompilerError converts a compiler error to a LoadError with position info.
func convertCompilerError(err error) *LoadError {
	var loadErr *compiler.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.NotFound() {
			return &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definitions file not found: %s", loadErr.Path)}
		}
		return &LoadError{Code: ErrCodeLoadFailed, Message: loadErr.Error()}
	}
	if d, ok := compiler.AsDiagnostic(err); ok {
		return &LoadError{Code: d.Code, Message: d.Message, Pos: d.Pos}
	}
	return &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
}

// toLoadError returns err as a *LoadError, converting compiler errors.
func toLoadError(err error) *LoadError {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}
	return convertCompilerError(err)
}

// IsDefinitionsError reports whether code blames the definitions file
// rather than the environment.
func IsDefinitionsError(code string) bool {
	switch code {
	case ErrCodeGeneric, ErrCodeLoadFailed, ErrCodeNotFound, ErrCodeWriteFailed:
		return false
	}
	return true
}
