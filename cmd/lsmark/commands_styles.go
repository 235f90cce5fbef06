package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/layout"
	"github.com/suryansh-23/lsmark/internal/ui"
)

func newStylesCmd(state *appState) *cobra.Command {
	var columns int
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Show every directive in its own style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width := columns
			if width <= 0 {
				width = terminalWidth(state.cfg.Grid.Columns)
			}
			grid := &layout.Grid{
				Entries: ui.Swatches(),
				Down:    true,
				Width:   width,
				Measure: state.widths.Len,
			}
			var buf bytes.Buffer
			if err := grid.Render(&buf); err != nil {
				return err
			}
			return state.emit(cmd.OutOrStdout(), buf.String())
		},
	}
	cmd.Flags().IntVar(&columns, "columns", 0, "terminal width to lay out for (0 detects)")
	return cmd
}
