package repos

import "github.com/charmbracelet/lipgloss"

var (
	ColorPurple    = lipgloss.Color("#7D56F4")
	ColorMagenta   = lipgloss.Color("#E05299")
	ColorGray      = lipgloss.Color("#6B6B6B")
	ColorGrayMuted = lipgloss.Color("#555555")
	ColorOffWhite  = lipgloss.Color("#D4D4D4")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGrayMuted)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPurple)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMagenta)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
