package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/suryansh-23/lsmark/internal/ansi"
	"github.com/suryansh-23/lsmark/internal/cache"
	"github.com/suryansh-23/lsmark/internal/config"
	"github.com/suryansh-23/lsmark/internal/debug"
)

type appState struct {
	cfg      config.Config
	cfgFound bool
	cfgPath  string
	logger   *debug.Logger
	widths   *cache.Widths
	// color is false when escape codes must be stripped from output.
	color bool
}

// emit writes rendered text to w, stripping escape codes when color is off.
func (s *appState) emit(w io.Writer, rendered string) error {
	if !s.color {
		rendered = ansi.Strip(rendered)
	}
	if _, err := io.WriteString(w, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// emitLines writes each rendered line followed by a newline.
func (s *appState) emitLines(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	return s.emit(w, strings.Join(lines, "\n")+"\n")
}
