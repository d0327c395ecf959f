package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/telemetry"
)

var (
	flagFrames int
	flagOut    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Plays a session without a terminal: the autopilot keeps the paddle under
the lowest falling ball and launches whenever a ball rests. Prints a summary
of the run; with --out it also writes levels.csv (one row per level attempt)
and config.yaml (the effective configuration) into that directory.

Examples:
  breaker sim --seed 7
  breaker sim --frames 100000 --difficulty hard --out ./runs/hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum frames to simulate")
	simCmd.Flags().StringVar(&flagOut, "out", "", "Directory for levels.csv and config.yaml")
	simCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start from")
}

func runSim(cmd *cobra.Command, args []string) {
	if err := sim(); err != nil {
		fail(err)
	}
}

func sim() error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	g, err := loadGame()
	if err != nil {
		return err
	}
	session, err := g.newSession(flagStartLevel, logger)
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutputManager(flagOut)
	if err != nil {
		return err
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulating", "seed", g.seed, "frames", flagFrames, "start", flagStartLevel)
	collector := telemetry.NewCollector(g.seed)
	final := telemetry.Run(ctx, session, flagFrames, collector)

	if err := out.WriteConfig(g.cfg); err != nil {
		return err
	}
	if err := out.WriteLevels(collector.Records()); err != nil {
		return err
	}

	fmt.Printf("seed=%d frames=%d state=%s level=%d/%d lives=%d\n",
		g.seed, final.Frame, final.State, final.Level, final.LevelCount, final.Lives)
	fmt.Println(telemetry.Summarize(collector.Records()))
	if dir := out.Dir(); dir != "" {
		fmt.Printf("Output written to %s\n", dir)
	}
	return nil
}
