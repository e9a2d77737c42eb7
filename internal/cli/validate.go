package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"cuelang.org/go/cue/token"
	"github.com/spf13/cobra"

	"github.com/roach88/errcodegen/internal/compiler"
)

// ValidationIssue is one problem found in a definitions file.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Codes    int               `json:"codes"`
	Classes  int               `json:"classes"`
	Errors   []ValidationIssue `json:"errors,omitempty"`
	Warnings []ValidationIssue `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <definitions-file>",
		Short: "Check a definitions file without generating code",
		Long: `Check a definitions file without generating code.

Reports every problem the validator finds rather than stopping at the
first: class members that name no declared code, duplicate names,
names that collide with generated symbols, and (as warnings, or errors
with --strict) codes sharing a numeric value.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format: cfg.Format,
		Writer: cmd.OutOrStdout(),
		Log:    newLogger(cmd, cfg),
	}

	defs, err := ParseDefinitions(path)
	if err != nil {
		loadErr := toLoadError(err)
		if !IsDefinitionsError(loadErr.Code) {
			return formatter.LoadFailure(loadErr)
		}
		// A file that does not parse is a validation failure like any other.
		return outputValidationResult(formatter, &ValidationResult{
			Errors: []ValidationIssue{issueAt(loadErr.Code, loadErr.Message, loadErr.Pos)},
		})
	}

	formatter.VerboseLog("Parsed %d code(s), %d class(es) from %s", len(defs.Codes), len(defs.Classes), path)

	result := &ValidationResult{Codes: len(defs.Codes), Classes: len(defs.Classes)}
	for _, d := range compiler.Validate(defs) {
		issue := issueAt(d.Code, d.Message, d.Pos)
		if d.Severity == compiler.SeverityWarning && !cfg.Strict {
			result.Warnings = append(result.Warnings, issue)
			continue
		}
		result.Errors = append(result.Errors, issue)
	}
	result.Valid = len(result.Errors) == 0

	return outputValidationResult(formatter, result)
}

func issueAt(code, message string, pos token.Pos) ValidationIssue {
	issue := ValidationIssue{Code: code, Message: message}
	if pos.IsValid() {
		issue.Line = pos.Line()
		issue.Column = pos.Column()
	}
	return issue
}

// outputValidationResult outputs validation results. Any error yields exit
// code 1.
func outputValidationResult(formatter *OutputFormatter, result *ValidationResult) error {
	if formatter.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result}
		if !result.Valid {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    result.Errors[0].Code,
				Message: result.Errors[0].Message,
			}
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
	} else {
		writeValidationText(formatter, result)
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}
	return nil
}

func writeValidationText(formatter *OutputFormatter, result *ValidationResult) {
	w := formatter.Writer
	if result.Valid {
		fmt.Fprintf(w, "✓ Definitions valid: %d code(s), %d class(es)\n", result.Codes, result.Classes)
	} else {
		fmt.Fprintln(w, "✗ Validation failed")
		fmt.Fprintln(w)
		for _, issue := range result.Errors {
			writeIssue(w, issue)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\n%d warning(s):\n\n", len(result.Warnings))
		for _, issue := range result.Warnings {
			writeIssue(w, issue)
		}
	}
}

func writeIssue(w io.Writer, issue ValidationIssue) {
	if issue.Line > 0 {
		fmt.Fprintf(w, "line %d\n", issue.Line)
	}
	fmt.Fprintf(w, "  %s: %s\n\n", issue.Code, issue.Message)
}
