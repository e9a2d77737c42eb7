// Package config resolves generator settings from flags, environment
// variables and an optional config file.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roach88/errcodegen/internal/emitter"
)

// EnvPrefix prefixes every environment variable, e.g. ERRCODEGEN_PACKAGE.
const EnvPrefix = "ERRCODEGEN"

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config holds the resolved settings for one run.
type Config struct {
	Output     string `mapstructure:"output"`      // Empty means stdout
	Package    string `mapstructure:"package"`     // Package clause of the generated file
	BSONImport string `mapstructure:"bson_import"` // Import path providing bson.D
	Strict     bool   `mapstructure:"strict"`      // Treat warnings as errors
	Verbose    bool   `mapstructure:"verbose"`
	Format     string `mapstructure:"format"` // "text" | "json"
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"output":      "output",
	"package":     "package",
	"bson-import": "bson_import",
	"strict":      "strict",
	"verbose":     "verbose",
	"format":      "format",
}

// Load resolves settings. Precedence, highest first: flags set on the
// command line, ERRCODEGEN_* environment variables, the config file, then
// defaults. configFile may be empty, in which case ERRCODEGEN_CONFIG is
// consulted; with neither set no file is read.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", "")
	v.SetDefault("package", emitter.DefaultPackage)
	v.SetDefault("bson_import", emitter.DefaultBSONImport)
	v.SetDefault("strict", false)
	v.SetDefault("verbose", false)
	v.SetDefault("format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if c.Package == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if c.BSONImport == "" {
		return fmt.Errorf("bson import path must not be empty")
	}
	return nil
}

// EmitterOptions returns the emitter settings for a definitions file.
func (c *Config) EmitterOptions(source string) emitter.Options {
	return emitter.Options{
		Package:    c.Package,
		BSONImport: c.BSONImport,
		Source:     source,
	}
}
