package tui

import "github.com/charmbracelet/lipgloss"

// One Dark palette
var (
	ColorBg      = lipgloss.Color("#282C34")
	ColorFg      = lipgloss.Color("#ABB2BF")
	ColorMuted   = lipgloss.Color("#5C6370")
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorHilight = lipgloss.Color("#3E4451")
)

// Cell glyphs are two columns wide so cells look roughly square.
const (
	glyphAlive = "██"
	glyphDead  = "· "
	cellWidth  = 2
)

var (
	AliveStyle = lipgloss.NewStyle().Foreground(ColorFg)

	DeadStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	CursorAliveStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Background(ColorHilight)

	CursorDeadStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(ColorHilight)

	StatsStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			MarginTop(1)

	EditingBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorBlue).
				Bold(true).
				Padding(0, 1)

	RunningBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorGreen).
				Bold(true).
				Padding(0, 1)
)
