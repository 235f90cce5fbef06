package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/suryansh-23/lsmark/internal/ui"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the width to lay out for. A positive configured
// value wins, then LSMARK_COLUMNS, then the size of stdout. Zero means the
// width is unknown, as when piping to a file.
func terminalWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	if env := strings.TrimSpace(os.Getenv("LSMARK_COLUMNS")); env != "" {
		if cols, err := strconv.Atoi(env); err == nil && cols > 0 {
			return cols
		}
	}
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

func currentBadge() ui.Badge {
	return ui.Badge{
		Platform: platformLabel(),
		Term:     termLabel(),
		Columns:  terminalWidth(0),
	}
}

func envSummary() string {
	return fmt.Sprintf("Detected %s TERM=%s columns=%d terminal=%t", platformLabel(), termLabel(), terminalWidth(0), stdoutIsTerminal())
}

func platformLabel() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

func termLabel() string {
	if t := strings.TrimSpace(os.Getenv("TERM")); t != "" {
		return t
	}
	return "unknown"
}
