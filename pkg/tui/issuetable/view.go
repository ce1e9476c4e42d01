package issuetable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/gh-explorer/pkg/issues"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
	"github.com/stefanpenner/gh-explorer/pkg/utils"
)

const (
	checkboxWidth = 3
	statusWidth   = 10
	countWidth    = 7
	minIssueWidth = 20
)

func StatusLabel(status issues.Status) string {
	if status == issues.StatusResolved {
		return ResolvedStatusStyle.Render("● Resolved")
	}
	return OpenStatusStyle.Render("● Open")
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderColumnHeader())
	b.WriteString("\n")

	if len(m.issues) == 0 {
		b.WriteString(DisabledStyle.Render("  No issues"))
		b.WriteString("\n")
	}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString(FooterStyle.Render(m.keys.ShortHelp()))
	return b.String()
}

// visibleRange keeps the cursor roughly centered once rows overflow.
func (m Model) visibleRange() (int, int) {
	available := m.height - 5
	if available < 1 {
		available = 10
	}
	start, end := 0, len(m.issues)
	if end > available {
		start = max(0, m.cursor-available/2)
		end = start + available
		if end > len(m.issues) {
			end = len(m.issues)
			start = max(0, end-available)
		}
	}
	return start, end
}

func (m Model) renderHeader() string {
	agg := m.store.Aggregate()
	title := HeaderStyle.Render("Issues")
	count := HeaderCountStyle.Render(fmt.Sprintf("%d issues • %s", len(m.issues), selection.SummaryLabel(agg)))
	return title + "  " + count
}

func (m Model) issueWidth() int {
	w := m.width - checkboxWidth - statusWidth - 2*countWidth - 4
	if m.store.Mode() == selection.ModeSum {
		w -= countWidth + 1
	}
	return max(minIssueWidth, w)
}

func (m Model) renderColumnHeader() string {
	agg := m.store.Aggregate()
	cells := []string{
		agg.Checkbox().Glyph(),
		pad(selection.SummaryLabel(agg), m.issueWidth()),
		pad("Status", statusWidth),
		padLeft("Events", countWidth),
		padLeft("Users", countWidth),
	}
	if m.store.Mode() == selection.ModeSum {
		cells = append(cells, padLeft("Value", countWidth))
	}
	return ColumnHeaderStyle.Render(strings.Join(cells, " "))
}

func (m Model) renderRow(i int) string {
	issue := m.issues[i]
	view := m.store.Row(i, i == m.cursor)

	text := issue.Name
	if issue.Message != "" {
		text += " " + MessageStyle.Render(issue.Message)
	}

	cells := []string{
		view.Glyph(),
		pad(utils.Truncate(text, m.issueWidth()), m.issueWidth()),
		pad(StatusLabel(issue.Status), statusWidth),
		padLeft(strconv.Itoa(issue.NumEvents), countWidth),
		padLeft(strconv.Itoa(issue.NumUsers), countWidth),
	}
	if m.store.Mode() == selection.ModeSum {
		cells = append(cells, padLeft(strconv.FormatFloat(issue.Value, 'f', -1, 64), countWidth))
	}
	line := strings.Join(cells, " ")

	switch {
	case !view.Enabled:
		return DisabledStyle.Render(utils.StripANSI(line))
	case view.Highlight == selection.HighlightSelected:
		return SelectedStyle.Render(line)
	case view.Highlight == selection.HighlightHover:
		return HoverStyle.Render(line)
	default:
		return NormalStyle.Render(line)
	}
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-lipgloss.Width(s))) + s
}
