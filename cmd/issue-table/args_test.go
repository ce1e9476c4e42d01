package main

import (
	"testing"

	"github.com/stefanpenner/gh-explorer/pkg/output"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
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
			name: "no args uses the sample",
			args: []string{},
			want: config{format: output.FormatStyled},
		},
		{
			name:       "file path",
			args:       []string{"issues.json"},
			isTerminal: true,
			want:       config{path: "issues.json", format: output.FormatStyled, tuiMode: true},
		},
		{
			name: "stdin",
			args: []string{"-"},
			want: config{path: "-", format: output.FormatStyled},
		},
		{
			name:    "two files returns error",
			args:    []string{"a.json", "b.json"},
			wantErr: true,
		},
		{
			name: "--mode=sum",
			args: []string{"--mode=sum"},
			want: config{mode: selection.ModeSum, modeSet: true, format: output.FormatStyled},
		},
		{
			name:    "--mode=avg returns error",
			args:    []string{"--mode=avg"},
			wantErr: true,
		},
		{
			name:       "--format=markdown disables TUI",
			args:       []string{"--format=markdown"},
			isTerminal: true,
			want:       config{format: output.FormatMarkdown},
		},
		{
			name:       "--notui alias",
			args:       []string{"--notui"},
			isTerminal: true,
			want:       config{format: output.FormatStyled},
		},
		{
			name: "--tui with --select-all",
			args: []string{"--tui", "--select-all"},
			want: config{format: output.FormatStyled, tuiMode: true, selectAll: true},
		},
		{
			name: "help word",
			args: []string{"help"},
			want: config{format: output.FormatStyled, showHelp: true},
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

func TestLoadIssuesSample(t *testing.T) {
	list, err := loadIssues("")
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}
