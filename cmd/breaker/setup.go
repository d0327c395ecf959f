package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/config"
)

// game holds everything loaded from the global flags.
type game struct {
	cfg   config.BreakoutConfig
	table *breakout.LevelTable
	seed  int64
}

// loadGame reads the config and level table and applies the difficulty preset.
func loadGame() (game, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return game{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return game{}, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	table, err := breakout.LoadLevelTable(flagLevels)
	if err != nil {
		return game{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game{cfg: cfg, table: table, seed: seed}, nil
}

// newSession starts a session at level n.
func (g game) newSession(n int, logger *log.Logger) (*breakout.Session, error) {
	if n < 1 || n > g.table.Len() {
		return nil, fmt.Errorf("start level %d out of range (1..%d)", n, g.table.Len())
	}
	return breakout.NewSession(
		breakout.WithConfig(g.cfg),
		breakout.WithSeed(g.seed),
		breakout.WithLevelTable(g.table),
		breakout.WithStartLevel(n),
		breakout.WithLogger(logger),
	), nil
}

// newLogger creates a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "breaker",
		Level:           level,
	}), nil
}

// fileLogger logs to path, or discards when path is empty. The returned
// close function is always safe to call.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// fail prints err and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
