package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/suryansh-23/lsmark/internal/layout"
	"github.com/suryansh-23/lsmark/internal/markup"
	"github.com/suryansh-23/lsmark/internal/types"
)

const (
	DefaultConfigVersion = 1
	defaultConfigRelPath = "lsmark/config.yaml"
	defaultCacheEntries  = 4096
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration schema.
type Config struct {
	Version int `yaml:"version"`

	Color types.ColorMode `yaml:"color"`
	Table Table           `yaml:"table"`
	Grid  Grid            `yaml:"grid"`
	Cache Cache           `yaml:"cache"`

	Importance []ImportanceStyle `yaml:"importance"`

	Debug Debug `yaml:"debug"`
}

// Table configures the detailed view.
type Table struct {
	Header      bool   `yaml:"header"`
	HeaderStyle string `yaml:"header_style"`
}

// Grid configures the grid view.
type Grid struct {
	Down bool `yaml:"down"`
	// Columns fixes the terminal width; 0 detects it.
	Columns int `yaml:"columns"`
}

// Cache bounds the width cache used while laying out output.
type Cache struct {
	MaxEntries int `yaml:"max_entries"`
}

// ImportanceStyle pairs an importance level with styling directives.
type ImportanceStyle struct {
	Level types.Importance `yaml:"level"`
	Style string           `yaml:"style"`
}

// Debug controls diagnostic logging.
type Debug struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the canonical default configuration.
func DefaultConfig() Config {
	return Config{
		Version: DefaultConfigVersion,
		Color:   types.ColorAuto,
		Table: Table{
			Header:      true,
			HeaderStyle: layout.DefaultHeaderStyle,
		},
		Grid: Grid{
			Down:    false,
			Columns: 0,
		},
		Cache: Cache{
			MaxEntries: defaultCacheEntries,
		},
		Importance: []ImportanceStyle{
			{Level: -1, Style: "dimmed"},
			{Level: 1, Style: "italic"},
			{Level: 2, Style: "underline"},
		},
		Debug: Debug{Enabled: false},
	}
}

// DefaultPath returns the config path under the XDG config directory.
func DefaultPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, defaultConfigRelPath), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", defaultConfigRelPath), nil
}

// Parse decodes YAML over the defaults, then normalizes and validates.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.NormalizeImportance()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path, or the default path when empty. A missing
// file yields the defaults and found=false.
func Load(pathOverride string) (Config, bool, error) {
	path := strings.TrimSpace(pathOverride)
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Config{}, false, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), false, nil
		}
		return Config{}, false, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// NormalizeImportance keeps the last style given for each level and sorts
// the levels in ascending order.
func (c *Config) NormalizeImportance() {
	byLevel := make(map[types.Importance]string, len(c.Importance))
	for _, imp := range c.Importance {
		byLevel[imp.Level] = imp.Style
	}
	out := make([]ImportanceStyle, 0, len(byLevel))
	for level, style := range byLevel {
		out = append(out, ImportanceStyle{Level: level, Style: style})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	c.Importance = out
}

// ImportanceStyle returns the directives for a level, or "" when the level
// has no style.
func (c Config) ImportanceStyle(level types.Importance) string {
	for _, imp := range c.Importance {
		if imp.Level == level {
			return imp.Style
		}
	}
	return ""
}

// MinImportance returns the lowest configured level, or 0 with none.
func (c Config) MinImportance() types.Importance {
	if len(c.Importance) == 0 {
		return 0
	}
	return c.Importance[0].Level
}

// MaxImportance returns the highest configured level, or 0 with none.
func (c Config) MaxImportance() types.Importance {
	if len(c.Importance) == 0 {
		return 0
	}
	return c.Importance[len(c.Importance)-1].Level
}

// Validate reports every problem in the config as one error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []string
	if c.Version != DefaultConfigVersion {
		errs = append(errs, fmt.Sprintf("version must be %d", DefaultConfigVersion))
	}
	if !c.Color.Valid() {
		errs = append(errs, fmt.Sprintf("color must be one of: %s", strings.Join(colorModeNames(), ", ")))
	}
	if bad := markup.Unknown(c.Table.HeaderStyle); len(bad) > 0 {
		errs = append(errs, fmt.Sprintf("table.header_style has unknown directives: %s", strings.Join(bad, ", ")))
	}
	if c.Grid.Columns < 0 {
		errs = append(errs, "grid.columns must be >= 0")
	}
	if c.Cache.MaxEntries < 0 {
		errs = append(errs, "cache.max_entries must be >= 0")
	}
	for i, imp := range c.Importance {
		if strings.TrimSpace(imp.Style) == "" {
			errs = append(errs, fmt.Sprintf("importance[%d].style is required", i))
			continue
		}
		if bad := markup.Unknown(imp.Style); len(bad) > 0 {
			errs = append(errs, fmt.Sprintf("importance[%d].style has unknown directives: %s", i, strings.Join(bad, ", ")))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

func colorModeNames() []string {
	modes := types.ColorModes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}
