package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
	"github.com/stefanpenner/gh-explorer/pkg/telemetry"
)

const otelStdoutSentinel = "stdout"

type config struct {
	query            string
	page             int
	perPage          int
	qualifier        string
	qualifierSet     bool
	baseURL          string
	format           output.Format
	tuiMode          bool
	otelStdout       bool
	otelEndpoint     string
	otelGRPCEndpoint string
	logFile          string
	logLevel         string
	logFormat        string
	configPath       string
	showHelp         bool
}

func newFlagSet(cfg *config, tui, noTUI *bool, otel, format *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("repo-explorer", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.IntVar(&cfg.page, "page", 1, "page of results to show")
	fs.IntVar(&cfg.perPage, "per-page", 0, "results per page, 1-100 (default from config, else 30)")
	fs.StringVar(&cfg.qualifier, "qualifier", "", `search qualifier appended to the query (default "stars:>5000")`)
	fs.StringVar(&cfg.baseURL, "base-url", "", "GitHub API base URL")
	fs.StringVar(format, "format", "", "non-interactive output: styled or markdown (disables the TUI)")
	fs.BoolVar(tui, "tui", false, "force the interactive browser")
	fs.BoolVar(noTUI, "no-tui", false, "print results and exit")
	fs.BoolVar(noTUI, "notui", false, "alias for --no-tui")
	_ = fs.MarkHidden("notui")

	fs.StringVar(otel, "otel", "", "export spans: bare for stdout, or host:port for OTLP/HTTP")
	fs.Lookup("otel").NoOptDefVal = otelStdoutSentinel
	fs.StringVar(&cfg.otelGRPCEndpoint, "otel-grpc", "", "export spans over OTLP/gRPC (default endpoint "+telemetry.DefaultGRPCEndpoint+")")
	fs.Lookup("otel-grpc").NoOptDefVal = telemetry.DefaultGRPCEndpoint

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
		otel, format string
	)
	fs := newFlagSet(&cfg, &tui, &noTUI, &otel, &format)

	if err := fs.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "invalid arguments")
	}

	rest := fs.Args()
	switch {
	case len(rest) == 1 && rest[0] == "help":
		cfg.showHelp = true
	case len(rest) == 1 && isPermalink(rest[0]):
		params, err := url.ParseQuery(strings.TrimLeft(rest[0], "/?"))
		if err != nil {
			return config{}, errors.Wrapf(err, "invalid page link %q", rest[0])
		}
		cfg.query = strings.TrimSpace(params.Get("q"))
		if !fs.Changed("page") {
			cfg.page = pagination.ParsePage(params.Get("page"))
		}
	default:
		cfg.query = strings.TrimSpace(strings.Join(rest, " "))
	}
	cfg.qualifierSet = fs.Changed("qualifier")

	if cfg.page < 1 {
		return config{}, errors.Newf("--page must be at least 1, got %d", cfg.page)
	}
	if fs.Changed("per-page") && (cfg.perPage < 1 || cfg.perPage > 100) {
		return config{}, errors.Newf("--per-page must be between 1 and 100, got %d", cfg.perPage)
	}

	switch {
	case otel == otelStdoutSentinel:
		cfg.otelStdout = true
	case otel != "":
		cfg.otelEndpoint = otel
	}

	cfg.tuiMode = isTerminal
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
	if cfg.format == "" {
		cfg.format = output.FormatStyled
	}

	return cfg, nil
}

// isPermalink matches the "/?q=...&page=N" links printed in markdown output.
func isPermalink(arg string) bool {
	return strings.HasPrefix(arg, "/?") || strings.HasPrefix(arg, "?")
}

func printUsage(w io.Writer) {
	var cfg config
	var tui, noTUI bool
	var otel, format string
	fs := newFlagSet(&cfg, &tui, &noTUI, &otel, &format)

	fmt.Fprintln(w, "Usage: repo-explorer [flags] [query... | page-link]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Browse popular GitHub repositories, most-starred first.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  repo-explorer")
	fmt.Fprintln(w, "  repo-explorer language:go cli")
	fmt.Fprintln(w, "  repo-explorer --format=markdown --page=2 react")
	fmt.Fprintln(w, "  repo-explorer '/?q=react&page=3'")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
