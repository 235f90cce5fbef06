package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/config"
	"github.com/suryansh-23/lsmark/internal/markup"
	"github.com/suryansh-23/lsmark/internal/types"
	"github.com/suryansh-23/lsmark/internal/ui"
)

func newInitCmd(state *appState, cfgPath *string) *cobra.Command {
	var useDefaults bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Run the setup wizard and write a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(*cfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			cfg := config.DefaultConfig()
			if useDefaults {
				if exists(path) {
					fmt.Fprintf(out, "Config exists, overwriting: %s\n", path)
				}
				return writeConfig(cmd, path, cfg, state.color)
			}

			colorMode := string(cfg.Color)
			header := cfg.Table.Header
			headerStyle := cfg.Table.HeaderStyle
			lowStyle := cfg.ImportanceStyle(types.ImportanceLow)
			gridDown := cfg.Grid.Down
			overwrite := false

			envNote := huh.NewNote().
				Title("Environment").
				Description(envSummary()).
				Next(true)

			form := huh.NewForm(
				huh.NewGroup(envNote),
				huh.NewGroup(
					huh.NewConfirm().Title("Config exists. Overwrite?").Value(&overwrite),
				).WithHideFunc(func() bool { return !exists(path) }),
				huh.NewGroup(
					huh.NewSelect[string]().Title("When should output be styled?").Value(&colorMode).Options(
						huh.NewOption("Only when writing to a terminal (default)", string(types.ColorAuto)),
						huh.NewOption("Always", string(types.ColorAlways)),
						huh.NewOption("Never", string(types.ColorNever)),
					),
				),
				huh.NewGroup(
					huh.NewSelect[bool]().Title("Grid order").Value(&gridDown).Options(
						huh.NewOption("Across, row by row (default)", false),
						huh.NewOption("Down, column by column", true),
					),
				),
				huh.NewGroup(
					huh.NewConfirm().Title("Treat the first table row as a header?").Value(&header),
				),
				huh.NewGroup(
					huh.NewInput().Title("Header style directives").Value(&headerStyle).Validate(validateDirectives),
				).WithHideFunc(func() bool { return !header }),
				huh.NewGroup(
					huh.NewInput().Title("Style for low importance entries such as dotfiles").Value(&lowStyle).Validate(validateDirectives),
				),
			).WithTheme(ui.Theme())

			if err := runAnimatedForm(form); err != nil {
				return err
			}
			if exists(path) && !overwrite {
				return errors.New("init cancelled")
			}

			cfg.Color = types.ColorMode(colorMode)
			cfg.Grid.Down = gridDown
			cfg.Table.Header = header
			cfg.Table.HeaderStyle = strings.TrimSpace(headerStyle)
			setImportanceStyle(&cfg, types.ImportanceLow, lowStyle)
			return writeConfig(cmd, path, cfg, state.color)
		},
	}
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "write the default config without prompts")
	return cmd
}

// writeConfig writes cfg and, when output is styled, previews the header
// style.
func writeConfig(cmd *cobra.Command, path string, cfg config.Config, color bool) error {
	if err := config.Write(path, cfg); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote config to %s\n", path)
	if header := cfg.Table.HeaderStyle; header != "" && color {
		fmt.Fprintf(out, "Table headers will look like: %s\n", markup.Render(markup.Wrap("Name", header)))
	}
	return nil
}

// setImportanceStyle replaces the style for level, dropping the level when
// style is blank.
func setImportanceStyle(cfg *config.Config, level types.Importance, style string) {
	style = strings.TrimSpace(style)
	kept := cfg.Importance[:0]
	for _, imp := range cfg.Importance {
		if imp.Level != level {
			kept = append(kept, imp)
		}
	}
	if style != "" {
		kept = append(kept, config.ImportanceStyle{Level: level, Style: style})
	}
	cfg.Importance = kept
	cfg.NormalizeImportance()
}

func validateDirectives(v string) error {
	if bad := markup.Unknown(strings.TrimSpace(v)); len(bad) > 0 {
		return fmt.Errorf("unknown directives: %s", strings.Join(bad, ", "))
	}
	return nil
}
