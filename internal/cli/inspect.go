package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/errcodegen/internal/ir"
)

// InspectResult is what inspect reports for a definitions file.
// Text output is YAML of Codes and Classes; JSON output carries the
// canonical form instead.
type InspectResult struct {
	Source      string          `json:"source" yaml:"source"`
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Codes       []ir.ErrorCode  `json:"-" yaml:"codes"`
	Classes     []ir.ErrorClass `json:"-" yaml:"classes"`
	Definitions json.RawMessage `json:"definitions" yaml:"-"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <definitions-file>",
		Short: "Show the loaded definitions and their fingerprint",
		Long: `Show the declarations loaded from a definitions file, codes in
canonical order, including the auxiliary payloads generation ignores.

The fingerprint is a SHA-256 over the canonical JSON form. It does not
change with formatting, comments or the order codes are declared in.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	formatter := &OutputFormatter{Format: cfg.Format, Writer: cmd.OutOrStdout(), Log: log}

	result, err := LoadDefinitions(path, Mode(cfg), log)
	if err != nil {
		return formatter.LoadFailure(err)
	}
	defs := result.Definitions

	canonical, err := ir.CanonicalDefinitions(defs)
	if err != nil {
		return formatter.LoadFailure(&LoadError{Code: ErrCodeGeneric, Message: err.Error()})
	}
	fp, err := ir.Fingerprint(defs)
	if err != nil {
		return formatter.LoadFailure(&LoadError{Code: ErrCodeGeneric, Message: err.Error()})
	}

	report := InspectResult{
		Source:      path,
		Fingerprint: fp,
		Codes:       ir.Canonicalize(defs.Codes),
		Classes:     defs.Classes,
		Definitions: canonical,
	}

	if cfg.Format == "json" {
		return formatter.Success(report)
	}

	enc := yaml.NewEncoder(formatter.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return formatter.LoadFailure(&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("encoding YAML: %v", err)})
	}
	return enc.Close()
}
