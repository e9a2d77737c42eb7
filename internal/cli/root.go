package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roach88/errcodegen/internal/compiler"
	"github.com/roach88/errcodegen/internal/config"
	"github.com/roach88/errcodegen/internal/emitter"
	"github.com/roach88/errcodegen/internal/ir"
	"github.com/roach88/errcodegen/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	Strict     bool

	settings *config.Config // Resolved on first use
}

// GenerateOptions holds flags for the root (generate) command.
type GenerateOptions struct {
	*RootOptions
	Output     string
	Package    string
	BSONImport string
}

// GenerateResult summarizes a generation run written to a file.
type GenerateResult struct {
	Output      string `json:"output"`
	Codes       int    `json:"codes"`
	Classes     int    `json:"classes"`
	Fingerprint string `json:"fingerprint"`
}

// NewRootCommand creates the root command for the errcodegen CLI.
// Run with a definitions file, it generates Go source.
func NewRootCommand() *cobra.Command {
	opts := &GenerateOptions{RootOptions: &RootOptions{}}

	cmd := &cobra.Command{
		Use:   "errcodegen [flags] <definitions-file>",
		Short: "Generate Go error-code types from a definitions file",
		Long: `Generate a Go ErrorCode type from error_code(...) and error_class(...)
declarations.

The generated file declares one constant per code in ascending numeric
order, a String method, an ErrMessage method building the bson.D error
reply, and an Is<Class> predicate per class. Output goes to stdout unless
--output is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := opts.resolve(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default $ERRCODEGEN_CONFIG)")
	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false, "treat warnings as errors")

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", emitter.DefaultPackage, "package name of the generated file")
	cmd.Flags().StringVar(&opts.BSONImport, "bson-import", emitter.DefaultBSONImport, "import path providing bson.D")

	// Add subcommands
	cmd.AddCommand(NewValidateCommand(opts.RootOptions))
	cmd.AddCommand(NewInspectCommand(opts.RootOptions))
	cmd.AddCommand(NewTestCommand(opts.RootOptions))

	return cmd
}

// resolve merges flags, environment and config file into settings once per
// run. Subcommands constructed on their own resolve on first use.
func (o *RootOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	if o.settings != nil {
		return o.settings, nil
	}
	cfg, err := config.Load(cmd.Flags(), o.ConfigFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %v\n", ErrCodeGeneric, err)
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	o.settings = cfg
	return cfg, nil
}

// Mode returns the compiler mode for the resolved settings.
func Mode(cfg *config.Config) compiler.Mode {
	if cfg.Strict {
		return compiler.ModeStrict
	}
	return compiler.ModeLenient
}

func newLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logger.New(cmd.ErrOrStderr(), cfg.Verbose)
}

func runGenerate(opts *GenerateOptions, path string, cmd *cobra.Command) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	// Stdout carries the generated source, so errors go to stderr.
	errFormatter := &OutputFormatter{Format: cfg.Format, Writer: cmd.ErrOrStderr(), Log: log}

	result, err := LoadDefinitions(path, Mode(cfg), log)
	if err != nil {
		return errFormatter.LoadFailure(err)
	}
	defs := result.Definitions

	src, err := emitter.EmitDefinitions(defs, cfg.EmitterOptions(path))
	if err != nil {
		return errFormatter.LoadFailure(&LoadError{Code: ErrCodeGeneric, Message: err.Error()})
	}
	errFormatter.VerboseLog("Generated %d bytes for %d code(s), %d class(es)", len(src), len(defs.Codes), len(defs.Classes))

	if cfg.Output == "" {
		if _, err := cmd.OutOrStdout().Write(src); err != nil {
			return errFormatter.LoadFailure(&LoadError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("writing output: %v", err)})
		}
		return nil
	}

	if err := writeFileAtomic(cfg.Output, src); err != nil {
		return errFormatter.LoadFailure(&LoadError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("writing output file: %v", err)})
	}

	fp, err := ir.Fingerprint(defs)
	if err != nil {
		return errFormatter.LoadFailure(&LoadError{Code: ErrCodeGeneric, Message: err.Error()})
	}
	summary := GenerateResult{
		Output:      cfg.Output,
		Codes:       len(defs.Codes),
		Classes:     len(defs.Classes),
		Fingerprint: fp,
	}
	formatter := &OutputFormatter{Format: cfg.Format, Writer: cmd.OutOrStdout(), Log: log}
	if cfg.Format == "json" {
		return formatter.Success(summary)
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %d code(s), %d class(es) to %s\n", summary.Codes, summary.Classes, summary.Output)
	return nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// path is either left untouched or fully written.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".errcodegen-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
