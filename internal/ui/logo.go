package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	` _                         _    `,
	`| |___ _ __ ___   __ _ _ _| | __`,
	`| / __| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_| |/ /`,
	`| \__ \ | | | | | (_| | | |   < `,
	`|_|___/_| |_| |_|\__,_|_| |_|\_\`,
}

// LogoFrame renders a single animated frame, shifting the palette one line
// per frame.
func LogoFrame(frame int) string {
	lines := make([]string, len(logoLines))
	for i, line := range logoLines {
		color := Palette[(frame+i)%len(Palette)]
		lines[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return strings.Join(lines, "\n")
}

// Badge carries the environment facts shown beside the static logo.
type Badge struct {
	Platform string
	Term     string
	Columns  int
}

// LogoStatic renders the logo with the badge lines to its right.
func LogoStatic(b Badge) string {
	logo := LogoFrame(0)
	label := lipgloss.NewStyle().Foreground(Muted)
	value := lipgloss.NewStyle().Foreground(Accent).Bold(true)
	info := lipgloss.JoinVertical(lipgloss.Left,
		"",
		label.Render("platform ")+value.Render(b.Platform),
		label.Render("term     ")+value.Render(b.Term),
		label.Render("columns  ")+value.Render(columnsLabel(b.Columns)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", info)
}

func columnsLabel(n int) string {
	if n <= 0 {
		return "unknown"
	}
	return strconv.Itoa(n)
}
