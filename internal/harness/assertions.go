package harness

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  Expected: %s\n  Actual: %s", e.Type, e.Expected, e.Actual)
}

// EvaluateAssertions runs every assertion and returns the failures in
// assertion order.
func EvaluateAssertions(g *Generated, output []byte, assertions []Assertion) []error {
	var errs []error
	for _, a := range assertions {
		if err := evaluateAssertion(g, output, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func evaluateAssertion(g *Generated, output []byte, a Assertion) error {
	switch a.Type {
	case AssertConstOrder:
		return assertConstOrder(g, a)
	case AssertString:
		return assertString(g, a)
	case AssertStringPanics:
		return assertStringPanics(g, a)
	case AssertMember:
		return assertMembership(g, a, true)
	case AssertNotMember:
		return assertMembership(g, a, false)
	case AssertReplyFields:
		return assertReplyFields(g, a)
	case AssertOutputContains:
		return assertOutputContains(output, a)
	}
	return fmt.Errorf("unknown assertion type: %s", a.Type)
}

func assertConstOrder(g *Generated, a Assertion) error {
	names := make([]string, len(g.Constants))
	for i, c := range g.Constants {
		names[i] = c.Name
	}
	if slices.Equal(names, a.Names) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: strings.Join(a.Names, ", "),
		Actual:   strings.Join(names, ", "),
	}
}

func assertString(g *Generated, a Assertion) error {
	name, ok := g.NameOf(*a.Code)
	if ok && name == a.Name {
		return nil
	}
	actual := fmt.Sprintf("%q", name)
	if !ok {
		actual = "panic"
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("ErrorCode(%d).String() = %q", *a.Code, a.Name),
		Actual:   actual,
	}
}

func assertStringPanics(g *Generated, a Assertion) error {
	name, ok := g.NameOf(*a.Code)
	if !ok && g.PanicsOnUnknown {
		return nil
	}
	actual := fmt.Sprintf("%q", name)
	if !ok {
		actual = "no panicking default case"
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("ErrorCode(%d).String() panics", *a.Code),
		Actual:   actual,
	}
}

func assertMembership(g *Generated, a Assertion, want bool) error {
	v, ok := g.Value(a.Name)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("constant %s", a.Name),
			Actual:   "not declared",
		}
	}
	got, found := g.InClass(a.Class, v)
	if !found {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("function Is%s", a.Class),
			Actual:   "not generated",
		}
	}
	if got == want {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("Is%s(%s) = %t", a.Class, a.Name, want),
		Actual:   fmt.Sprintf("%t", got),
	}
}

func assertReplyFields(g *Generated, a Assertion) error {
	if slices.Equal(g.ReplyFields, a.Names) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: strings.Join(a.Names, ", "),
		Actual:   strings.Join(g.ReplyFields, ", "),
	}
}

func assertOutputContains(output []byte, a Assertion) error {
	if bytes.Contains(output, []byte(a.Text)) {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("output containing %q", a.Text),
		Actual:   "not found",
	}
}
