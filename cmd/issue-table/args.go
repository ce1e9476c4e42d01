package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
)

type config struct {
	// path is the issue list; empty means the built-in sample, "-" is stdin.
	path       string
	mode       selection.Mode
	modeSet    bool
	selectAll  bool
	format     output.Format
	tuiMode    bool
	logFile    string
	logLevel   string
	logFormat  string
	configPath string
	showHelp   bool
}

func newFlagSet(cfg *config, tui, noTUI *bool, mode, format *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("issue-table", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(mode, "mode", "", `"select all" aggregate: count rows or sum their values (count, sum)`)
	fs.BoolVar(&cfg.selectAll, "select-all", false, "start with every open issue selected")
	fs.StringVar(format, "format", "", "non-interactive output: styled or markdown (disables the TUI)")
	fs.BoolVar(tui, "tui", false, "force the interactive table")
	fs.BoolVar(noTUI, "no-tui", false, "print the table and exit")
	fs.BoolVar(noTUI, "notui", false, "alias for --no-tui")
	_ = fs.MarkHidden("notui")

	fs.StringVar(&cfg.logFile, "log-file", "", "write logs to this file")
	fs.StringVar(&cfg.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "", "console or json")
	fs.StringVar(&cfg.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gh-explorer/config.toml)")
	fs.BoolVarP(&cfg.showHelp, "help", "h", false, "show this help")
	return fs
}

func parseArgs(args []string, isTerminal bool) (config, error) {
	var (
		cfg          config
		tui, noTUI   bool
		mode, format string
	)
	fs := newFlagSet(&cfg, &tui, &noTUI, &mode, &format)

	if err := fs.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "invalid arguments")
	}

	switch rest := fs.Args(); {
	case len(rest) == 1 && rest[0] == "help":
		cfg.showHelp = true
	case len(rest) == 1:
		cfg.path = rest[0]
	case len(rest) > 1:
		return config{}, errors.Newf("expected at most one issue file, got %d", len(rest))
	}

	if fs.Changed("mode") {
		m, err := selection.ParseMode(mode)
		if err != nil {
			return config{}, err
		}
		cfg.mode = m
		cfg.modeSet = true
	}

	cfg.tuiMode = isTerminal
	cfg.format = output.FormatStyled
	if format != "" {
		f, err := output.ParseFormat(format)
		if err != nil {
			return config{}, err
		}
		cfg.format = f
		cfg.tuiMode = false
	}
	if tui {
		cfg.tuiMode = true
	}
	if noTUI {
		cfg.tuiMode = false
	}

	return cfg, nil
}

func printUsage(w io.Writer) {
	var cfg config
	var tui, noTUI bool
	var mode, format string
	fs := newFlagSet(&cfg, &tui, &noTUI, &mode, &format)

	fmt.Fprintln(w, "Usage: issue-table [flags] [issues.json | -]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Show an issue list with row selection. Resolved issues cannot be selected.")
	fmt.Fprintln(w, "Without a file a built-in sample list is shown.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
