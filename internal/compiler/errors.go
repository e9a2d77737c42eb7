package compiler

import (
	"errors"
	"fmt"
	"io/fs"

	"cuelang.org/go/cue/token"
)

// Diagnostic codes, unified with the CLI's error codes.
const (
	CodeSyntax          = "E201" // Grammar, arity or argument type violation
	CodeCapability      = "E202" // Identifier outside the two declarative entry points
	CodeUnknownMember   = "E203" // Class lists a name no error_code declares
	CodeDuplicateName   = "E204" // Two error_code declarations share a name
	CodeDuplicateClass  = "E205" // Two error_class declarations share a name
	CodeDuplicateMember = "E206" // A class lists the same name twice
	CodeReservedName    = "E207" // Name collides with a generated symbol
	CodeDuplicateValue  = "W301" // Two codes share a numeric value
)

// LoadError reports a definitions file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("reading definitions %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the file does not exist.
func (e *LoadError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// SyntaxError reports a definitions file that does not match the grammar,
// or whose declarations fail validation.
type SyntaxError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *SyntaxError) Error() string {
	return positioned(e.Pos, e.Message)
}

// CapabilityError reports an identifier other than error_code and
// error_class. The definitions file may not reach anything else.
type CapabilityError struct {
	Name string
	Pos  token.Pos
}

func (e *CapabilityError) Error() string {
	return positioned(e.Pos, e.Message())
}

// Message is the error text without the position prefix.
func (e *CapabilityError) Message() string {
	return fmt.Sprintf("name %q is not defined: only error_code and error_class are available", e.Name)
}

func positioned(pos token.Pos, msg string) string {
	if pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", pos.Filename(), pos.Line(), pos.Column(), msg)
	}
	return msg
}

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one finding from Validate.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Pos      token.Pos
}

func (d Diagnostic) Error() string {
	return positioned(d.Pos, d.Message)
}

// Err converts the diagnostic into the error Load reports for it.
func (d Diagnostic) Err() error {
	return &SyntaxError{Code: d.Code, Message: d.Message, Pos: d.Pos}
}

// AsDiagnostic converts a *SyntaxError or *CapabilityError into a
// Diagnostic. It returns false for any other error.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return Diagnostic{Severity: SeverityError, Code: syntaxErr.Code, Message: syntaxErr.Message, Pos: syntaxErr.Pos}, true
	}
	var capErr *CapabilityError
	if errors.As(err, &capErr) {
		return Diagnostic{Severity: SeverityError, Code: CodeCapability, Message: capErr.Message(), Pos: capErr.Pos}, true
	}
	return Diagnostic{}, false
}
