package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/markup"
)

func newRenderCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "render [markup...]",
		Short: "Render markup into ANSI escape codes",
		Long:  "Render each argument, or each line of stdin, converting markup tags into terminal styling.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := make([]string, len(lines))
			for i, line := range lines {
				out[i] = markup.Render(line)
			}
			return state.emitLines(cmd.OutOrStdout(), out)
		},
	}
}

func newLenCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "len [markup...]",
		Short: "Print the display length of markup",
		Long:  "Print the number of grapheme clusters each argument, or each line of stdin, occupies once rendered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := make([]string, len(lines))
			for i, line := range lines {
				out[i] = strconv.Itoa(state.widths.Len(line))
			}
			return state.emitLines(cmd.OutOrStdout(), out)
		},
	}
}

func newStripCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [markup...]",
		Short: "Print markup as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := make([]string, len(lines))
			for i, line := range lines {
				out[i] = markup.Strip(line)
			}
			return state.emitLines(cmd.OutOrStdout(), out)
		},
	}
}
