package main

import (
	"bytes"
	"testing"

	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		isTerminal bool
		want       config
		wantErr    bool
	}{
		{
			name: "no args",
			args: []string{},
			want: config{page: 1, format: output.FormatStyled},
		},
		{
			name: "query words are joined",
			args: []string{"language:go", "cli"},
			want: config{query: "language:go cli", page: 1, format: output.FormatStyled},
		},
		{
			name:       "tuiMode defaults to isTerminal true",
			args:       []string{"react"},
			isTerminal: true,
			want:       config{query: "react", page: 1, format: output.FormatStyled, tuiMode: true},
		},
		{
			name: "--tui flag",
			args: []string{"--tui"},
			want: config{page: 1, format: output.FormatStyled, tuiMode: true},
		},
		{
			name:       "--no-tui flag",
			args:       []string{"--no-tui"},
			isTerminal: true,
			want:       config{page: 1, format: output.FormatStyled},
		},
		{
			name:       "--notui alias",
			args:       []string{"--notui"},
			isTerminal: true,
			want:       config{page: 1, format: output.FormatStyled},
		},
		{
			name:       "--format=markdown disables TUI",
			args:       []string{"--format=markdown"},
			isTerminal: true,
			want:       config{page: 1, format: output.FormatMarkdown},
		},
		{
			name:    "--format=invalid returns error",
			args:    []string{"--format=html"},
			wantErr: true,
		},
		{
			name: "bare --otel sets otelStdout",
			args: []string{"--otel"},
			want: config{page: 1, format: output.FormatStyled, otelStdout: true},
		},
		{
			name: "--otel=endpoint sets otelEndpoint",
			args: []string{"--otel=host:4318"},
			want: config{page: 1, format: output.FormatStyled, otelEndpoint: "host:4318"},
		},
		{
			name: "bare --otel-grpc defaults to localhost:4317",
			args: []string{"--otel-grpc"},
			want: config{page: 1, format: output.FormatStyled, otelGRPCEndpoint: "localhost:4317"},
		},
		{
			name: "--otel-grpc=endpoint sets custom endpoint",
			args: []string{"--otel-grpc=host:9999"},
			want: config{page: 1, format: output.FormatStyled, otelGRPCEndpoint: "host:9999"},
		},
		{
			name: "paging flags",
			args: []string{"--page=3", "--per-page", "50", "vue"},
			want: config{query: "vue", page: 3, perPage: 50, format: output.FormatStyled},
		},
		{
			name:    "--page=0 returns error",
			args:    []string{"--page=0"},
			wantErr: true,
		},
		{
			name:    "--per-page=500 returns error",
			args:    []string{"--per-page=500"},
			wantErr: true,
		},
		{
			name:    "--page=abc returns error",
			args:    []string{"--page=abc"},
			wantErr: true,
		},
		{
			name: "empty qualifier is an explicit choice",
			args: []string{"--qualifier="},
			want: config{page: 1, format: output.FormatStyled, qualifierSet: true},
		},
		{
			name: "logging and config flags",
			args: []string{"--log-file=/tmp/x.log", "--log-level=debug", "--log-format=json", "--config=/tmp/c.toml"},
			want: config{page: 1, format: output.FormatStyled, logFile: "/tmp/x.log", logLevel: "debug", logFormat: "json", configPath: "/tmp/c.toml"},
		},
		{
			name: "--help flag",
			args: []string{"--help"},
			want: config{page: 1, format: output.FormatStyled, showHelp: true},
		},
		{
			name: "-h flag",
			args: []string{"-h"},
			want: config{page: 1, format: output.FormatStyled, showHelp: true},
		},
		{
			name: "help word",
			args: []string{"help"},
			want: config{page: 1, format: output.FormatStyled, showHelp: true},
		},
		{
			name: "page link from markdown output",
			args: []string{"/?page=3&q=react+hooks"},
			want: config{query: "react hooks", page: 3, format: output.FormatStyled},
		},
		{
			name: "page link with bad page falls back to 1",
			args: []string{"?q=vue&page=zero"},
			want: config{query: "vue", page: 1, format: output.FormatStyled},
		},
		{
			name: "--page overrides page link",
			args: []string{"--page=5", "/?page=3&q=go"},
			want: config{query: "go", page: 5, format: output.FormatStyled},
		},
		{
			name:    "unknown flag returns error",
			args:    []string{"--unknown"},
			wantErr: true,
		},
		{
			name:       "multiple flags combined",
			args:       []string{"rust", "--otel", "--otel-grpc", "--no-tui"},
			isTerminal: true,
			want: config{
				query:            "rust",
				page:             1,
				format:           output.FormatStyled,
				otelStdout:       true,
				otelGRPCEndpoint: "localhost:4317",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args, tt.isTerminal)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: repo-explorer")
	assert.Contains(t, out, "--otel-grpc")
	assert.NotContains(t, out, "--notui")
}
