package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/stefanpenner/gh-explorer/pkg/cli"
	appconfig "github.com/stefanpenner/gh-explorer/pkg/config"
	"github.com/stefanpenner/gh-explorer/pkg/issues"
	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
	"github.com/stefanpenner/gh-explorer/pkg/tui/issuetable"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseArgs(args, term.IsTerminal(int(os.Stdout.Fd())))
	if err != nil {
		printUsage(os.Stderr)
		return err
	}
	if cfg.showHelp {
		printUsage(os.Stdout)
		return nil
	}

	configPath := cfg.configPath
	if configPath == "" {
		configPath = appconfig.DefaultPath()
	}
	fileCfg, err := appconfig.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := cli.SetupLogging(cli.LogOptions{
		File:   cfg.logFile,
		Level:  cfg.logLevel,
		Format: cfg.logFormat,
	}, fileCfg.Log, cfg.tuiMode, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	mode := cfg.mode
	if !cfg.modeSet {
		if mode, err = selection.ParseMode(strings.ToLower(fileCfg.Issues.Mode)); err != nil {
			return err
		}
	}

	list, err := loadIssues(cfg.path)
	if err != nil {
		return err
	}
	logger.Debug("loaded issues", slog.Int("count", len(list)), slog.String("mode", mode.String()))

	if cfg.tuiMode {
		selected, err := issuetable.Run(list, mode, cfg.selectAll)
		if err != nil {
			return err
		}
		for _, issue := range selected {
			os.Stdout.WriteString(issue.ID + "\n")
		}
		return nil
	}

	store := selection.NewStore(issues.ToItems(list),
		selection.WithMode(mode),
		selection.WithObserver(func(agg selection.Aggregate) {
			logger.Debug("selection changed", slog.Float64("selected", agg.Selected), slog.String("state", agg.State.String()))
		}),
	)
	if cfg.selectAll {
		store.ToggleAll(true)
	}
	return output.IssueTable(os.Stdout, list, store, cfg.format)
}

func loadIssues(path string) ([]issues.Issue, error) {
	switch path {
	case "":
		return issues.Sample(), nil
	case "-":
		return issues.Decode(os.Stdin)
	default:
		return issues.Load(path)
	}
}
