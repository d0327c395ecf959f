// breaker is a Breakout-style arcade game for the terminal.
//
// Usage:
//
//	breaker play             - Play from the first level (or --start-level)
//	breaker levels           - Browse the level table and pick a start level
//	breaker sim              - Run a headless autopilot session and print stats
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible layouts
//	--config <path>        - Custom game config YAML
//	--levels <path>        - Custom level table CSV
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Brick breaker - Breakout in your terminal",
	Long: `Brick breaker is a Breakout-style arcade game played in the terminal.
Bounce the ball off the paddle, clear every brick and catch the falling
bonuses across ten levels.

Available commands:
  play     - Play the game
  levels   - Browse levels and pick where to start
  sim      - Headless autopilot run with per-level statistics

Examples:
  breaker play
  breaker play --start-level 4 --difficulty hard
  breaker levels
  breaker sim --seed 7 --frames 20000 --out ./runs/seed7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level table CSV")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}
