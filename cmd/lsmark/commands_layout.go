package main

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suryansh-23/lsmark/internal/layout"
	"github.com/suryansh-23/lsmark/internal/markup"
	"github.com/suryansh-23/lsmark/internal/types"
)

func newGridCmd(state *appState) *cobra.Command {
	var (
		down       bool
		across     bool
		columns    int
		escape     bool
		dimDotfile bool
		impSpecs   []string
		minImp     int
	)
	cmd := &cobra.Command{
		Use:   "grid [entry...]",
		Short: "Lay out entries in a grid sized to the terminal",
		Long:  "Lay out each argument, or each line of stdin, in as few lines as the terminal width allows.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := inputLines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			rules, err := parseImportanceRules(state.cfg, impSpecs, dimDotfile)
			if err != nil {
				return err
			}
			minLevel := types.Importance(math.MinInt)
			if cmd.Flags().Changed("min-imp") {
				minLevel = types.Importance(minImp)
			}
			entries = rules.apply(state.cfg, entries, escape, minLevel)

			if !cmd.Flags().Changed("down") {
				down = state.cfg.Grid.Down
			}
			if across {
				down = false
			}
			width := columns
			if width <= 0 {
				width = terminalWidth(state.cfg.Grid.Columns)
			}
			grid := &layout.Grid{
				Entries: entries,
				Down:    down,
				Width:   width,
				Measure: state.widths.Len,
			}
			if state.logger.Enabled() {
				widest := 0
				for _, e := range entries {
					widest = max(widest, state.widths.Len(e))
				}
				rows, cols := grid.Shape(widest)
				state.logger.Infof("grid entries=%d width=%d shape=%dx%d down=%t", len(entries), width, rows, cols, down)
			}

			var buf bytes.Buffer
			if err := grid.Render(&buf); err != nil {
				return err
			}
			return state.emit(cmd.OutOrStdout(), buf.String())
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "fill columns top to bottom")
	cmd.Flags().BoolVar(&across, "across", false, "fill rows left to right (overrides config)")
	cmd.Flags().IntVar(&columns, "columns", 0, "terminal width to lay out for (0 detects)")
	cmd.Flags().BoolVar(&escape, "escape", false, "treat entries as plain text, not markup")
	cmd.Flags().BoolVar(&dimDotfile, "dim-dotfiles", false, "give entries starting with '.' low importance")
	cmd.Flags().StringArrayVar(&impSpecs, "imp", nil, "PATTERN=LEVEL: give entries matching the glob an importance level (repeatable, last match wins)")
	cmd.Flags().IntVar(&minImp, "min-imp", 0, "hide entries below this importance level")
	return cmd
}

func newTableCmd(state *appState) *cobra.Command {
	var (
		header      bool
		noHeader    bool
		headerStyle string
		aligns      []string
		uniform     []int
		solo        bool
		separator   string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Lay out separated rows from stdin as an aligned table",
		Long:  "Read rows from stdin, one per line with cells split on the separator (tab by default). With a header, the first row names the columns.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := inputLines(nil, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("header") {
				header = state.cfg.Table.Header
			}
			if noHeader {
				header = false
			}
			if headerStyle == "" {
				headerStyle = state.cfg.Table.HeaderStyle
			}
			if bad := markup.Unknown(headerStyle); len(bad) > 0 {
				state.logger.Infof("header style has unknown directives: %s", strings.Join(bad, ", "))
			}

			rows := make([][]string, 0, len(lines))
			for _, line := range lines {
				rows = append(rows, strings.Split(line, separator))
			}
			tbl, err := buildTable(rows, header, aligns, uniform)
			if err != nil {
				return err
			}
			tbl.HeaderStyle = headerStyle
			tbl.Solo = solo
			tbl.Measure = state.widths.Len
			state.logger.Infof("table columns=%d rows=%d widths=%v", len(tbl.Columns), len(tbl.Rows), tbl.Widths())

			var buf bytes.Buffer
			if err := tbl.Render(&buf); err != nil {
				return err
			}
			return state.emit(cmd.OutOrStdout(), buf.String())
		},
	}
	cmd.Flags().BoolVar(&header, "header", true, "treat the first row as the header")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "treat every row as data")
	cmd.Flags().StringVar(&headerStyle, "header-style", "", "directives applied to the header row")
	cmd.Flags().StringSliceVar(&aligns, "align", nil, "per-column alignment: left, center or right")
	cmd.Flags().IntSliceVar(&uniform, "uniform", nil, "indexes of columns whose cells share one width")
	cmd.Flags().BoolVar(&solo, "solo", false, "measure every row even for uniform columns")
	cmd.Flags().StringVar(&separator, "sep", "\t", "cell separator")
	return cmd
}

// buildTable derives the columns from the widest row and, with a header,
// takes their names from the first row.
func buildTable(rows [][]string, header bool, aligns []string, uniform []int) (*layout.Table, error) {
	ncols := 0
	for _, row := range rows {
		ncols = max(ncols, len(row))
	}
	columns := make([]layout.Column, ncols)
	for i, a := range aligns {
		if i >= ncols {
			break
		}
		align, err := layout.ParseAlignment(a)
		if err != nil {
			return nil, fmt.Errorf("--align column %d: %w", i, err)
		}
		columns[i].Align = align
	}
	for _, idx := range uniform {
		if idx < 0 || idx >= ncols {
			return nil, fmt.Errorf("--uniform column %d out of range", idx)
		}
		columns[idx].Uniform = true
	}

	tbl := &layout.Table{Columns: columns, Header: header}
	if header && len(rows) > 0 {
		for i, name := range rows[0] {
			columns[i].Name = name
		}
		rows = rows[1:]
	}
	tbl.Rows = rows
	return tbl, nil
}
