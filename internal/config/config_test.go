package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/suryansh-23/lsmark/internal/types"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseCanonicalConfig(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "canonical.yaml"))
	if err != nil {
		t.Fatalf("read canonical config: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse canonical config: %v", err)
	}
	if cfg.Color != types.ColorAlways {
		t.Fatalf("color = %q", cfg.Color)
	}
	if cfg.Table.HeaderStyle != "bold bright_cyan" {
		t.Fatalf("header_style = %q", cfg.Table.HeaderStyle)
	}
	if !cfg.Grid.Down || cfg.Grid.Columns != 100 {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
	if cfg.Cache.MaxEntries != 128 {
		t.Fatalf("cache.max_entries = %d", cfg.Cache.MaxEntries)
	}
	if got := cfg.ImportanceStyle(-1); got != "dimmed italic" {
		t.Fatalf("importance -1 = %q", got)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("parse minimal config: %v", err)
	}
	if cfg.Color != types.ColorAuto {
		t.Fatalf("color not default")
	}
	if !cfg.Table.Header || cfg.Table.HeaderStyle != "bold italic underline" {
		t.Fatalf("table not default: %+v", cfg.Table)
	}
	if cfg.Cache.MaxEntries != defaultCacheEntries {
		t.Fatalf("cache not default")
	}
}

func TestValidationRejectsUnknownColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "sometimes"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidationReportsUnknownDirectives(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.HeaderStyle = "bold sparkly"
	cfg.Importance = []ImportanceStyle{{Level: 1, Style: "rgb(300,0,0)"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"sparkly", "rgb(300,0,0)"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidationRejectsNegativeBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Columns = -1
	cfg.Cache.MaxEntries = -5
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "grid.columns") || !strings.Contains(err.Error(), "cache.max_entries") {
		t.Fatalf("error = %v", err)
	}
}

func TestNormalizeImportance(t *testing.T) {
	cases := []struct {
		name string
		in   []ImportanceStyle
		want []ImportanceStyle
	}{
		{"empty", nil, []ImportanceStyle{}},
		{
			"sorting",
			[]ImportanceStyle{{2, "underline"}, {1, "italic"}},
			[]ImportanceStyle{{1, "italic"}, {2, "underline"}},
		},
		{
			"deduplication",
			[]ImportanceStyle{{2, "bold"}, {2, "dimmed"}, {1, "reversed"}, {2, "underline"}, {1, "italic"}},
			[]ImportanceStyle{{1, "italic"}, {2, "underline"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Importance: tc.in}
			cfg.NormalizeImportance()
			if len(cfg.Importance) != len(tc.want) {
				t.Fatalf("importance = %+v", cfg.Importance)
			}
			for i := range tc.want {
				if cfg.Importance[i] != tc.want[i] {
					t.Fatalf("importance[%d] = %+v, want %+v", i, cfg.Importance[i], tc.want[i])
				}
			}
		})
	}
}

func TestImportanceBounds(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinImportance() != -1 || cfg.MaxImportance() != 2 {
		t.Fatalf("bounds = %d..%d", cfg.MinImportance(), cfg.MaxImportance())
	}
	if (Config{}).MinImportance() != 0 {
		t.Fatalf("empty min should be 0")
	}
	if cfg.ImportanceStyle(7) != "" {
		t.Fatalf("unconfigured level should have no style")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("expected found=false")
	}
	if cfg.Version != DefaultConfigVersion {
		t.Fatalf("version = %d", cfg.Version)
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != filepath.Join("/tmp/xdg", "lsmark", "config.yaml") {
		t.Fatalf("path = %q", path)
	}
}
