package types

// ColorMode decides whether rendered escape codes reach the output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted color modes.
func ColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// Valid reports whether m is a known color mode.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// Enabled resolves the mode against whether output is a terminal.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// Importance ranks entries; negative levels are de-emphasized.
type Importance int

const (
	ImportanceLow    Importance = -1
	ImportanceNormal Importance = 0
)
