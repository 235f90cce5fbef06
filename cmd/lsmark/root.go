package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/cache"
	"github.com/suryansh-23/lsmark/internal/config"
	"github.com/suryansh-23/lsmark/internal/debug"
	"github.com/suryansh-23/lsmark/internal/types"
)

func newRootCmd(state *appState) *cobra.Command {
	var (
		cfgPath   string
		colorFlag string
		debugFlag bool
	)

	rootCmd := &cobra.Command{
		Use:          "lsmark",
		Short:        "Render and lay out terminal markup like <bold blue>this</>",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfigPath(cfgPath)
			if err != nil {
				return err
			}
			cfg, found, err := config.Load(resolvedPath)
			if err != nil {
				// init must be able to replace a broken config.
				if cmd.Name() != "init" {
					return err
				}
				cfg, found = config.DefaultConfig(), true
			}
			if err := applyOverrides(&cfg, colorFlag, debugFlag); err != nil {
				return err
			}
			state.cfg = cfg
			state.cfgFound = found
			state.cfgPath = resolvedPath
			state.logger = debug.New(cfg.Debug.Enabled)
			state.widths = cache.New(cfg.Cache.MaxEntries)
			state.color = cfg.Color.Enabled(stdoutIsTerminal())
			state.logger.Infof("config path=%s found=%t color=%s enabled=%t", resolvedPath, found, cfg.Color, state.color)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			hits, misses := state.widths.Stats()
			state.logger.Infof("width cache hits=%d misses=%d entries=%d", hits, misses, state.widths.Size())
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "when to emit escape codes: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging to stderr")

	rootCmd.AddCommand(newRenderCmd(state))
	rootCmd.AddCommand(newLenCmd(state))
	rootCmd.AddCommand(newStripCmd(state))
	rootCmd.AddCommand(newGridCmd(state))
	rootCmd.AddCommand(newTableCmd(state))
	rootCmd.AddCommand(newStylesCmd(state))
	rootCmd.AddCommand(newInitCmd(state, &cfgPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func applyOverrides(cfg *config.Config, colorFlag string, debugFlag bool) error {
	if colorFlag != "" {
		mode := types.ColorMode(colorFlag)
		if !mode.Valid() {
			return fmt.Errorf("--color must be auto, always or never, got %q", colorFlag)
		}
		cfg.Color = mode
	}
	if os.Getenv("NO_COLOR") != "" && colorFlag == "" {
		cfg.Color = types.ColorNever
	}
	if debugFlag {
		cfg.Debug.Enabled = true
	}
	return nil
}
