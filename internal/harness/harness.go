package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/errcodegen/internal/compiler"
	"github.com/roach88/errcodegen/internal/emitter"
)

// Run executes a test scenario and returns the result.
//
// Execution flow:
//  1. Compile the scenario's definitions as <name>.err
//  2. If the scenario expects an error, compare the diagnostic and stop
//  3. Compare warning codes when the scenario lists them
//  4. Emit the generated source and read it back with Analyze
//  5. Evaluate assertions against the generated code
//
// Run returns an error only when the scenario cannot be executed at all:
// the definitions were rejected by something other than a diagnostic, or
// the generator produced source Analyze cannot read. Expectation
// mismatches are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	result := NewResult()
	filename := scenario.Name + ".err"

	mode := compiler.ModeLenient
	if scenario.Strict {
		mode = compiler.ModeStrict
	}

	loaded, err := compiler.Compile(filename, []byte(scenario.Definitions), mode)
	if err != nil {
		diag, ok := compiler.AsDiagnostic(err)
		if !ok {
			return nil, fmt.Errorf("compile %s: %w", filename, err)
		}
		result.ErrorCode = diag.Code
		if diag.Pos.IsValid() {
			result.ErrorLine = diag.Pos.Line()
		}
		checkErrorExpectation(result, scenario.ExpectError, err)
		return result, nil
	}

	if scenario.ExpectError != nil {
		result.AddError(fmt.Sprintf("expected error %s, definitions were accepted", scenario.ExpectError.Code))
		return result, nil
	}

	for _, w := range loaded.Warnings {
		result.Warnings = append(result.Warnings, w.Code)
	}
	if scenario.Warnings != nil && !slices.Equal(scenario.Warnings, result.Warnings) {
		result.AddError(fmt.Sprintf("warnings: expected [%s], got [%s]",
			strings.Join(scenario.Warnings, ", "), strings.Join(result.Warnings, ", ")))
	}

	out, err := emitter.EmitDefinitions(loaded.Definitions, emitter.Options{
		Package: scenario.Package,
		Source:  filename,
	})
	if err != nil {
		return nil, fmt.Errorf("emit %s: %w", filename, err)
	}
	result.Output = out

	generated, err := Analyze(out)
	if err != nil {
		return nil, err
	}
	result.Generated = generated

	for _, err := range EvaluateAssertions(generated, out, scenario.Assertions) {
		result.AddError(err.Error())
	}
	return result, nil
}

func checkErrorExpectation(result *Result, want *ErrorExpectation, err error) {
	if want == nil {
		result.AddError(fmt.Sprintf("unexpected error: %v", err))
		return
	}
	if want.Code != result.ErrorCode {
		result.AddError(fmt.Sprintf("error code: expected %s, got %s (%v)", want.Code, result.ErrorCode, err))
	}
	if want.Line != 0 && want.Line != result.ErrorLine {
		result.AddError(fmt.Sprintf("error line: expected %d, got %d (%v)", want.Line, result.ErrorLine, err))
	}
}
