package compiler

import (
	"fmt"

	"cuelang.org/go/cue/token"

	"github.com/roach88/errcodegen/internal/ir"
)

// generatedTypeName is the type the emitter declares; no code may reuse it.
const generatedTypeName = "ErrorCode"

// predicatePrefix is prepended to class names to form predicate names.
const predicatePrefix = "Is"

// shadowedNames are identifiers the generated file refers to inside
// function bodies. A constant with one of these names would shadow or
// collide with it.
var shadowedNames = map[string]string{
	"c":      "the String and ErrMessage receiver",
	"e":      "the predicate parameter",
	"msg":    "the ErrMessage parameter",
	"bson":   "the bson import",
	"bool":   "the predeclared type bool",
	"int":    "the predeclared type int",
	"string": "the predeclared type string",
	"true":   "the predeclared constant true",
	"false":  "the predeclared constant false",
	"panic":  "the predeclared function panic",
	"init":   "the package init function",
	"_":      "the blank identifier",
}

// Validate cross-checks declarations. Errors are conditions under which
// the generated file would not compile or would not behave as declared;
// warnings are conditions the definitions format allows but that are
// almost always mistakes.
//
// Checks:
//   - every class member names a declared code (E203)
//   - code names are unique (E204) and class names are unique (E205)
//   - no class lists the same code twice (E206)
//   - no code name collides with the generated type, a predicate or an
//     identifier the generated functions use (E207)
//   - numeric code values are unique (W301, warning)
func Validate(defs *ir.Definitions) []Diagnostic {
	var diags []Diagnostic
	add := func(sev Severity, code string, pos token.Pos, format string, args ...any) {
		diags = append(diags, Diagnostic{
			Severity: sev,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
			Pos:      pos,
		})
	}

	predicates := make(map[string]bool, len(defs.Classes))
	for _, cls := range defs.Classes {
		predicates[predicatePrefix+cls.Name] = true
	}

	names := make(map[string]bool, len(defs.Codes))
	values := make(map[int64]string, len(defs.Codes))
	for _, c := range defs.Codes {
		switch {
		case c.Name == generatedTypeName:
			add(SeverityError, CodeReservedName, c.Pos,
				"error code %q collides with the generated type name", c.Name)
		case predicates[c.Name]:
			add(SeverityError, CodeReservedName, c.Pos,
				"error code %q collides with the predicate generated for class %q", c.Name, c.Name[len(predicatePrefix):])
		case shadowedNames[c.Name] != "":
			add(SeverityError, CodeReservedName, c.Pos,
				"error code %q collides with %s in the generated code", c.Name, shadowedNames[c.Name])
		}

		if names[c.Name] {
			add(SeverityError, CodeDuplicateName, c.Pos, "error code %q declared more than once", c.Name)
		}
		names[c.Name] = true

		if prev, dup := values[c.Code]; dup {
			add(SeverityWarning, CodeDuplicateValue, c.Pos,
				"error code %q reuses value %d already assigned to %q", c.Name, c.Code, prev)
		} else {
			values[c.Code] = c.Name
		}
	}

	classes := make(map[string]bool, len(defs.Classes))
	for _, cls := range defs.Classes {
		if classes[cls.Name] {
			add(SeverityError, CodeDuplicateClass, cls.Pos, "error class %q declared more than once", cls.Name)
		}
		classes[cls.Name] = true

		members := make(map[string]bool, len(cls.Codes))
		for i, name := range cls.Codes {
			pos := cls.Pos
			if i < len(cls.CodePos) {
				pos = cls.CodePos[i]
			}
			if !names[name] {
				add(SeverityError, CodeUnknownMember, pos,
					"error class %q lists %q, which is not a declared error code", cls.Name, name)
			}
			if members[name] {
				add(SeverityError, CodeDuplicateMember, pos, "error class %q lists %q more than once", cls.Name, name)
			}
			members[name] = true
		}
	}

	return diags
}
