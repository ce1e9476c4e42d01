package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/issues"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
)

// IssueTable prints list with the selection state held by store. The
// header row carries the select-all checkbox and the summary label.
func IssueTable(w io.Writer, list []issues.Issue, store *selection.Store, format Format) error {
	if store.Len() != len(list) {
		return errors.AssertionFailedf("issue table: store has %d rows, list has %d", store.Len(), len(list))
	}

	agg := store.Aggregate()
	headers := []string{agg.Checkbox().Glyph(), selection.SummaryLabel(agg), "Status", "Events", "Users"}
	if store.Mode() == selection.ModeSum {
		headers = append(headers, "Value")
	}

	rows := make([][]string, len(list))
	for i, issue := range list {
		row := []string{
			store.Row(i, false).Glyph(),
			issueText(issue),
			statusText(issue.Status),
			strconv.Itoa(issue.NumEvents),
			strconv.Itoa(issue.NumUsers),
		}
		if store.Mode() == selection.ModeSum {
			row = append(row, strconv.FormatFloat(issue.Value, 'f', -1, 64))
		}
		rows[i] = row
	}

	switch format {
	case FormatMarkdown:
		issueTableMarkdown(w, headers, rows)
	default:
		issueTableStyled(w, list, headers, rows)
	}
	return nil
}

func issueText(issue issues.Issue) string {
	if issue.Message == "" {
		return issue.Name
	}
	return issue.Name + ": " + issue.Message
}

func statusText(status issues.Status) string {
	if status == issues.StatusResolved {
		return "● Resolved"
	}
	return "● Open"
}

func issueTableStyled(w io.Writer, list []issues.Issue, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return issueCellStyle(list, row, col)
		})
	fmt.Fprintln(w, t.Render())
}

// issueCellStyle greys out resolved rows whole; open rows color the status
// and right-align the numbers.
func issueCellStyle(list []issues.Issue, row, col int) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if row == table.HeaderRow {
		return base.Bold(true).Foreground(colorWhite)
	}
	if row < 0 || row >= len(list) {
		return base
	}
	switch {
	case !list[row].IsOpen():
		return base.Inherit(resolvedStyle)
	case col == 2:
		return base.Inherit(openStyle)
	case col >= 3:
		return base.Inherit(numStyle).Align(lipgloss.Right)
	default:
		return base
	}
}

func issueTableMarkdown(w io.Writer, headers []string, rows [][]string) {
	writeRow := func(cells []string) {
		fmt.Fprint(w, "|")
		for _, cell := range cells {
			fmt.Fprintf(w, " %s |", escapeMarkdown(cell))
		}
		fmt.Fprintln(w)
	}
	writeRow(headers)
	fmt.Fprint(w, "|")
	for range headers {
		fmt.Fprint(w, " --- |")
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		writeRow(row)
	}
}
