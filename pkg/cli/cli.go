// Package cli holds the plumbing shared by the gh-explorer commands:
// logger setup from flags and config, and error reporting on exit.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/stefanpenner/gh-explorer/pkg/config"
	"github.com/stefanpenner/gh-explorer/pkg/logging"
)

// LogOptions are the --log-* flags. Empty fields fall back to the config file.
type LogOptions struct {
	File   string
	Level  string
	Format string
}

// SetupLogging installs the process logger and returns a close func.
// When tuiMode is set and no log file is given, logs are discarded so they
// do not corrupt the TUI.
func SetupLogging(opts LogOptions, cfg config.LogConfig, tuiMode bool, stderr io.Writer) (*slog.Logger, func() error, error) {
	levelText := firstNonEmpty(opts.Level, cfg.Level)
	level, err := logging.ParseLevel(levelText)
	if err != nil {
		return nil, nil, err
	}
	format, err := logging.ParseFormat(firstNonEmpty(opts.Format, cfg.Format))
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	var w io.Writer
	closer := noop
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file %s", opts.File)
		}
		w = f
		closer = f.Close
	case tuiMode:
		w = io.Discard
	default:
		w = stderr
	}

	logger := logging.New(w, level, format)
	logging.SetDefault(logger)
	return logger, closer, nil
}

// PrintError writes err and any attached hints in the style the commands
// use before exiting non-zero.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	gray := color.New(color.FgHiBlack)

	fmt.Fprintf(w, "%s %s\n", red.Sprint("Error:"), err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  %s %s\n", gray.Sprint("hint:"), hint)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
