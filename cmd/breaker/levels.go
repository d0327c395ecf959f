package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
)

var flagPlain bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Browse the level table",
	Long: `Shows every level with its palette, background and the formations it
can use. On a terminal the table is interactive: pick a level with Enter to
start playing from it. With --plain (or when output is not a terminal) the
table is printed instead.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of the interactive browser")
	levelsCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects when starting a level")
	levelsCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume when starting a level")
	levelsCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file when starting a level")
}

func runLevels(cmd *cobra.Command, args []string) {
	g, err := loadGame()
	if err != nil {
		fail(err)
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		printLevels(os.Stdout, g.table)
		return
	}

	assets, err := tui.NewAssets(breakout.NewBrickSpecs(g.cfg.Bricks))
	if err != nil {
		fail(err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}

	preview := func(level int) breakout.Snapshot {
		s, err := g.newSession(level, log.New(io.Discard))
		if err != nil {
			return breakout.Snapshot{}
		}
		return s.Snapshot()
	}

	level, err := tui.RunLevels(g.table, assets, preview, width, height)
	if err != nil {
		fail(err)
	}
	if level == 0 {
		return
	}
	if err := play(g, level); err != nil {
		fail(err)
	}
}

// printLevels writes the level table as aligned text.
func printLevels(w io.Writer, table *breakout.LevelTable) {
	columns := tui.LevelColumns()
	rows := tui.LevelRows(table.Specs())

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c.Title)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	line := func(cells []string) {
		for i, cell := range cells {
			fmt.Fprintf(w, "  %-*s", widths[i], cell)
		}
		fmt.Fprintln(w)
	}

	titles := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
		rules[i] = "--"
	}
	line(titles)
	line(rules)
	for _, row := range rows {
		line(row)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'breaker play --start-level <n>' to start from a level.")
}
