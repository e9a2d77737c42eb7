package ir

import "cuelang.org/go/cue/token"

// ErrorCode is one error_code(...) declaration.
type ErrorCode struct {
	Name  string    `json:"name" yaml:"name"`
	Code  int64     `json:"code" yaml:"code"`
	Extra Value     `json:"extra,omitempty" yaml:"extra,omitempty"` // Reserved; never emitted
	Pos   token.Pos `json:"-" yaml:"-"`
}

// HasExtra reports whether the declaration carried an auxiliary payload.
func (c ErrorCode) HasExtra() bool {
	return c.Extra != nil
}

// ErrorClass is one error_class(...) declaration.
// Codes are names, not resolved against the declared codes.
type ErrorClass struct {
	Name    string      `json:"name" yaml:"name"`
	Codes   []string    `json:"codes" yaml:"codes"`
	Pos     token.Pos   `json:"-" yaml:"-"`
	CodePos []token.Pos `json:"-" yaml:"-"` // Parallel to Codes
}

// Contains reports whether name is listed in the class.
func (c ErrorClass) Contains(name string) bool {
	for _, n := range c.Codes {
		if n == name {
			return true
		}
	}
	return false
}

// Definitions is everything collected from one definitions file, in
// declaration order.
type Definitions struct {
	Source  string       `json:"-" yaml:"-"` // Path the definitions were read from
	Codes   []ErrorCode  `json:"codes" yaml:"codes"`
	Classes []ErrorClass `json:"classes" yaml:"classes"`
}

// Lookup returns the first code declared with the given name.
func (d *Definitions) Lookup(name string) (ErrorCode, bool) {
	for _, c := range d.Codes {
		if c.Name == name {
			return c, true
		}
	}
	return ErrorCode{}, false
}
