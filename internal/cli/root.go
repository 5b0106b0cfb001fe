// Package cli implements the fgs command-line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel  string // debug | info | warn | error
	LogFormat string // text | json
}

// ValidLogLevels and ValidLogFormats are the accepted flag values.
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"text", "json"}
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fgs",
		Short: "Fast Greedy Search structure learning",
		Long: `fgs learns a pattern (a Markov equivalence class of DAGs) from
continuous tabular data by greedy search over a penalized likelihood score.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidLogLevels, opts.LogLevel) {
				return inputErrorf("invalid log level %q: must be one of %v", opts.LogLevel, ValidLogLevels)
			}
			if !slices.Contains(ValidLogFormats, opts.LogFormat) {
				return inputErrorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return inputError(err)
	})

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewSimulateCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))

	return cmd
}

// logger builds the command's logger on stderr.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return newLogger(o.LogLevel, o.LogFormat, cmd.ErrOrStderr())
}

// newLogger creates a slog.Logger without touching the global default.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// closeErr keeps the first error of a deferred Close.
func closeErr(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil && cerr != nil {
		*err = fmt.Errorf("close: %w", cerr)
	}
}
