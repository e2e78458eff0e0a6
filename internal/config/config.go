// Package config parses the samplecalc command line and environment into an
// AppConfig. None of its settings change what the driver computes; they only
// control logging, coloring and diagnostics.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/samplecalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "SAMPLECALC_"

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// AppConfig holds the application settings.
type AppConfig struct {
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string
	// NoColor disables ANSI colors even on a terminal.
	NoColor bool
	// ShowMetrics dumps the collected metrics to stderr after the run.
	ShowMetrics bool
}

// Level returns the parsed zerolog level. Validate guarantees it parses.
func (c AppConfig) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return apperrors.NewConfigError("invalid log level %q (use debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Precedence is: flags, then SAMPLECALC_* environment variables, then defaults.
// On --help it returns flag.ErrHelp after printing usage to errWriter. Every
// other failure is a ConfigError that has already been reported on errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(fs.Output(), "Prints factorial and Fibonacci tables, then exercises the calculator.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nEnvironment variables %sLOG_LEVEL, %sNO_COLOR and %sMETRICS apply when the flag is not set.\n",
			EnvPrefix, EnvPrefix, EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level for stderr diagnostics (debug, info, warn, error).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.ShowMetrics, "metrics", false, "Print collected metrics to stderr after the run.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		// The flag package has already printed the error and usage.
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return AppConfig{}, reportConfigError(errWriter, apperrors.NewConfigError("unexpected arguments: %v", fs.Args()))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, reportConfigError(errWriter, err)
	}
	return config, nil
}

func reportConfigError(w io.Writer, err error) error {
	fmt.Fprintf(w, "Configuration error: %v\n", err)
	return err
}
