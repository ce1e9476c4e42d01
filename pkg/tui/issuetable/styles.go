package issuetable

import "github.com/charmbracelet/lipgloss"

var (
	ColorBlue      = lipgloss.Color("#5C8DFF")
	ColorGray      = lipgloss.Color("#6B6B6B")
	ColorGrayMuted = lipgloss.Color("#555555")
	ColorGrayLight = lipgloss.Color("#8B8B8B")
	ColorGrayDim   = lipgloss.Color("#3B3B3B")
	ColorSelected  = lipgloss.Color("#1F3A5F") // deep blue row tint
	ColorWhite     = lipgloss.Color("#FFFFFF")
	ColorOffWhite  = lipgloss.Color("#D4D4D4")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorOffWhite)

	ColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGrayLight)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGrayMuted)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorGrayLight)
)

// Row styles
var (
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	HoverStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorGrayDim)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelected)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

var (
	OpenStatusStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	ResolvedStatusStyle = lipgloss.NewStyle().
				Foreground(ColorGray)
)
