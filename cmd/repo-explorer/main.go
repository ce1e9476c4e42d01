package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/stefanpenner/gh-explorer/pkg/cli"
	appconfig "github.com/stefanpenner/gh-explorer/pkg/config"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/logging"
	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
	"github.com/stefanpenner/gh-explorer/pkg/telemetry"
	"github.com/stefanpenner/gh-explorer/pkg/tui"
	"github.com/stefanpenner/gh-explorer/pkg/tui/repos"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
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

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName:  "repo-explorer",
		Stdout:       cfg.otelStdout,
		StdoutWriter: os.Stderr,
		HTTPEndpoint: cfg.otelEndpoint,
		GRPCEndpoint: cfg.otelGRPCEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("telemetry shutdown failed", logging.ErrAttr(err))
		}
	}()

	perPage := cfg.perPage
	if perPage == 0 {
		perPage = fileCfg.Search.PerPage
	}
	qualifier := fileCfg.Search.Qualifier
	if cfg.qualifierSet {
		qualifier = cfg.qualifier
	}
	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = fileCfg.Search.BaseURL
	}

	client, err := githubapi.NewClient(
		githubapi.WithBaseURL(baseURL),
		githubapi.WithTimeout(fileCfg.Search.Timeout.Duration),
		githubapi.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if cfg.tuiMode {
		return repos.Run(ctx, client, repos.Options{
			Query:     cfg.query,
			Qualifier: qualifier,
			Page:      cfg.page,
			PerPage:   perPage,
		})
	}

	query := githubapi.BuildQuery(cfg.query, qualifier)
	logger.Debug("searching", slog.String("query", query), slog.Int("page", cfg.page))

	var progress *tui.Progress
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = tui.NewProgress(os.Stderr)
		progress.Start()
		progress.SetQuery(query, cfg.page)
	}
	result, err := client.SearchRepositories(ctx, query, cfg.page, perPage)
	if progress != nil {
		progress.Finish()
		progress.Wait()
	}
	if err != nil {
		return err
	}

	pager := pagination.New(cfg.page, result.TotalCount, perPage)
	return output.Repositories(os.Stdout, cfg.query, result, pager, cfg.format)
}
