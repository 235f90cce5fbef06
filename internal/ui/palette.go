package ui

import "github.com/charmbracelet/lipgloss"

// The palette follows the ANSI blues and cyans lsmark uses for directories.
const (
	colorCyan   = "#2AA198"
	colorBlue   = "#268BD2"
	colorViolet = "#6C71C4"
	colorYellow = "#B58900"
	colorOrange = "#CB4B16"
	colorMuted  = "#839496"
)

var (
	Primary   = lipgloss.Color(colorBlue)
	Secondary = lipgloss.Color(colorCyan)
	Accent    = lipgloss.Color(colorYellow)
	Muted     = lipgloss.Color(colorMuted)
	Palette   = []lipgloss.Color{Primary, Secondary, lipgloss.Color(colorViolet), Accent, lipgloss.Color(colorOrange)}
)
