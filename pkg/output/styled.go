package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
	"github.com/stefanpenner/gh-explorer/pkg/utils"
)

const (
	DefaultCardWidth = 72
	descriptionLines = 2
)

func repositoriesStyled(w io.Writer, result *githubapi.SearchResult, pager pagination.Pager) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("GitHub Repository Explorer"))
	fmt.Fprintln(w, labelStyle.Render(FoundLabel(result.TotalCount)))
	fmt.Fprintln(w)

	if len(result.Items) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No repositories matched."))
	}
	for _, repo := range result.Items {
		fmt.Fprintln(w, Card(repo, DefaultCardWidth, false))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, PagerLine(pager))
	return nil
}

// Card renders a repository as a bordered block width cells wide.
func Card(repo githubapi.Repository, width int, highlighted bool) string {
	style := cardStyle
	if highlighted {
		style = cardHighlightStyle
	}
	inner := max(20, width-style.GetHorizontalFrameSize())

	name := repoNameStyle.Render(utils.MakeClickableLink(repo.HTMLURL, repo.Name) + " ↗")
	stars := starStyle.Render("★ " + Stars(repo.StargazersCount))
	title := alignLine(inner, name, stars)

	lines := []string{
		title,
		labelStyle.Render(repo.Owner.Login),
	}
	lines = append(lines, clampLines(Description(repo), inner, descriptionLines)...)
	if badges := Badges(repo); badges != "" {
		lines = append(lines, badges)
	}

	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// Badges renders the language followed by up to MaxTopics topics.
func Badges(repo githubapi.Repository) string {
	var parts []string
	if repo.Language != "" {
		parts = append(parts, languageStyle.Render(repo.Language))
	}
	for _, topic := range repo.TopTopics(MaxTopics) {
		parts = append(parts, topicStyle.Render("#"+topic))
	}
	return strings.Join(parts, " ")
}

// PagerLine renders "← Previous  Page X of Y  Next →", dimming the
// directions that are not available.
func PagerLine(pager pagination.Pager) string {
	prev := dimStyle.Render("← Previous")
	if pager.HasPrev() {
		prev = valueStyle.Render("← Previous")
	}
	next := dimStyle.Render("Next →")
	if pager.HasNext() {
		next = valueStyle.Render("Next →")
	}
	return prev + "  " + numStyle.Render(pager.Label()) + "  " + next
}

func alignLine(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = utils.Truncate(left, max(1, width-lipgloss.Width(right)-1))
		gap = max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	}
	return left + strings.Repeat(" ", gap) + right
}

// clampLines word-wraps text and keeps at most n lines, marking the cut.
func clampLines(text string, width, n int) []string {
	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if len(wrapped) <= n {
		return wrapped
	}
	out := wrapped[:n]
	out[n-1] = utils.Truncate(out[n-1]+" …", width)
	return out
}
