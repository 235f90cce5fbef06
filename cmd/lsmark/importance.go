package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/suryansh-23/lsmark/internal/config"
	"github.com/suryansh-23/lsmark/internal/markup"
	"github.com/suryansh-23/lsmark/internal/types"
)

// dotfilePattern matches entries hidden by convention.
const dotfilePattern = ".*"

type importanceRule struct {
	pattern string
	level   types.Importance
}

// importanceRules assigns levels to entries by glob. The last matching rule
// wins; entries no rule matches are of normal importance.
type importanceRules struct {
	rules []importanceRule
}

// importanceRange returns the levels a rule may assign: the configured
// levels, widened to include normal importance.
func importanceRange(cfg config.Config) (lo, hi types.Importance) {
	return min(cfg.MinImportance(), types.ImportanceNormal), max(cfg.MaxImportance(), types.ImportanceNormal)
}

// parseImportanceRules parses PATTERN=LEVEL specs. The level is taken after
// the last '=' so patterns may contain '='. With dotfiles set, entries
// starting with '.' default to low importance.
func parseImportanceRules(cfg config.Config, specs []string, dotfiles bool) (*importanceRules, error) {
	lo, hi := importanceRange(cfg)
	r := &importanceRules{}
	if dotfiles {
		r.add(dotfilePattern, types.ImportanceLow)
	}
	for _, spec := range specs {
		idx := strings.LastIndexByte(spec, '=')
		if idx <= 0 {
			return nil, fmt.Errorf("--imp %q: want PATTERN=LEVEL", spec)
		}
		pattern := spec[:idx]
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("--imp %q: bad pattern", spec)
		}
		n, err := strconv.Atoi(strings.TrimSpace(spec[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("--imp %q: level must be an integer", spec)
		}
		level := types.Importance(n)
		if level < lo || level > hi {
			return nil, fmt.Errorf("--imp %q: level must be between %d and %d", spec, lo, hi)
		}
		r.add(pattern, level)
	}
	return r, nil
}

func (r *importanceRules) add(pattern string, level types.Importance) {
	r.rules = append(r.rules, importanceRule{pattern: pattern, level: level})
}

// level returns the importance of an entry's plain text.
func (r *importanceRules) level(name string) types.Importance {
	level := types.ImportanceNormal
	for _, rule := range r.rules {
		if ok, _ := doublestar.Match(rule.pattern, name); ok {
			level = rule.level
		}
	}
	return level
}

// apply drops entries below minLevel and styles the rest with their level's
// configured style. With escape set, entries are taken as plain text.
func (r *importanceRules) apply(cfg config.Config, entries []string, escape bool, minLevel types.Importance) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		plain := e
		if escape {
			e = markup.Escape(e)
		} else {
			plain = markup.Strip(e)
		}
		level := r.level(plain)
		if level < minLevel {
			continue
		}
		out = append(out, markup.Wrap(e, cfg.ImportanceStyle(level)))
	}
	return out
}
