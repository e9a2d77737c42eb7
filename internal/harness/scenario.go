package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden
	// file and the definitions file reported in diagnostics.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Definitions is the definitions file content.
	Definitions string `yaml:"definitions"`

	// Package overrides the generated package name.
	Package string `yaml:"package,omitempty"`

	// Strict treats warnings as errors.
	Strict bool `yaml:"strict,omitempty"`

	// ExpectError, when set, requires the definitions to be rejected.
	ExpectError *ErrorExpectation `yaml:"expect_error,omitempty"`

	// Warnings lists the diagnostic codes of expected warnings, in order.
	// Nil means warnings are not checked.
	Warnings []string `yaml:"warnings,omitempty"`

	// Assertions validate the generated code.
	Assertions []Assertion `yaml:"assertions"`
}

// ErrorExpectation describes the diagnostic a rejected file produces.
type ErrorExpectation struct {
	// Code is the diagnostic code, e.g. "E201".
	Code string `yaml:"code"`

	// Line is the 1-based line of the diagnostic; 0 skips the check.
	Line int `yaml:"line,omitempty"`
}

// Assertion validates generated code.
type Assertion struct {
	// Type selects the check; see the package documentation.
	Type string `yaml:"type"`

	// Names is the expected order (const_order, reply_fields).
	Names []string `yaml:"names,omitempty"`

	// Code is a numeric code value (string, string_panics).
	Code *int64 `yaml:"code,omitempty"`

	// Name is a constant name (string, member, not_member).
	Name string `yaml:"name,omitempty"`

	// Class is the class whose predicate is checked (member, not_member).
	Class string `yaml:"class,omitempty"`

	// Text is searched for in the generated source (output_contains).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertConstOrder     = "const_order"
	AssertString         = "string"
	AssertStringPanics   = "string_panics"
	AssertMember         = "member"
	AssertNotMember      = "not_member"
	AssertReplyFields    = "reply_fields"
	AssertOutputContains = "output_contains"
)

var assertionTypes = []string{
	AssertConstOrder,
	AssertString,
	AssertStringPanics,
	AssertMember,
	AssertNotMember,
	AssertReplyFields,
	AssertOutputContains,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks required fields and assertion shapes.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.ExpectError != nil && s.ExpectError.Code == "" {
		return fmt.Errorf("expect_error.code is required")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertion[%d]: %w", i, err)
		}
	}
	return nil
}

func validateAssertion(a Assertion) error {
	if !slices.Contains(assertionTypes, a.Type) {
		return fmt.Errorf("unknown type %q", a.Type)
	}

	switch a.Type {
	case AssertConstOrder, AssertReplyFields:
		if len(a.Names) == 0 {
			return fmt.Errorf("%s requires names", a.Type)
		}
	case AssertString:
		if a.Code == nil || a.Name == "" {
			return fmt.Errorf("string requires code and name")
		}
	case AssertStringPanics:
		if a.Code == nil {
			return fmt.Errorf("string_panics requires code")
		}
	case AssertMember, AssertNotMember:
		if a.Class == "" || a.Name == "" {
			return fmt.Errorf("%s requires class and name", a.Type)
		}
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("output_contains requires text")
		}
	}
	return nil
}
