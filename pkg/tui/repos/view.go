package repos

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/output"
)

const (
	headerLines = 5
	footerLines = 3
	cardLines   = 7
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("GitHub Repository Explorer"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	if m.err == nil && !m.loading && len(m.repos) == 0 {
		b.WriteString(HintStyle.Render("No repositories matched."))
		b.WriteString("\n")
	}

	width := max(40, min(m.width, 100))
	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString(output.Card(m.repos[i], width, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(output.PagerLine(m.pager))
	b.WriteString("\n")
	help := m.keys.ShortHelp()
	if m.input.Focused() {
		help = m.keys.SearchHelp()
	}
	b.WriteString(FooterStyle.Render(help))
	return b.String()
}

func (m Model) renderStatus() string {
	switch {
	case m.loading:
		return m.spinner.View() + " " + SubtitleStyle.Render("Searching...")
	case m.err != nil:
		line := ErrorStyle.Render("Error: " + m.err.Error())
		for _, hint := range errors.GetAllHints(m.err) {
			line += "\n" + HintStyle.Render("  "+hint)
		}
		return line
	default:
		return SubtitleStyle.Render(output.FoundLabel(m.pager.TotalCount))
	}
}

// visibleRange returns the cards that fit, keeping the cursor on screen.
func (m Model) visibleRange() (int, int) {
	fit := max(1, (m.height-headerLines-footerLines)/cardLines)
	start, end := 0, len(m.repos)
	if end > fit {
		start = max(0, m.cursor-fit+1)
		end = start + fit
	}
	return start, end
}
