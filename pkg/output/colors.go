package output

import "github.com/charmbracelet/lipgloss"

// Color palette. Kept apart from the TUI styles so static output does not
// pull in bubbletea.
var (
	colorPurple = lipgloss.Color("#7D56F4")
	colorBlue   = lipgloss.Color("#4285F4")
	colorYellow = lipgloss.Color("#E5C07B")
	colorGray   = lipgloss.Color("#626262")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorSlate  = lipgloss.Color("#2E3440")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPurple)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	numStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	starStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	repoNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	languageStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorSlate).
			Padding(0, 1)

	topicStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	cardHighlightStyle = cardStyle.
				BorderForeground(colorPurple)

	openStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	resolvedStyle = lipgloss.NewStyle().
			Foreground(colorGray)
)
