package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/audio"
	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
)

var (
	flagStartLevel int
	flagMute       bool
	flagVolume     float64
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing from the first level, or from --start-level.

Controls:
  Mouse         - Move the paddle
  Left/Right    - Nudge the paddle (also A/D)
  Space/Click   - Launch the ball (also Up/W)
  P/Esc         - Pause
  L             - Restart the level (also after game over)
  R             - New game
  Ctrl+S        - Save a text screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 5 lives, 40% bonus drops, sturdier bricks on later levels
  normal - Lives and drops from the config, sturdier bricks on later levels
  hard   - 2 lives, 20% bonus drops, starts at half difficulty, balls speed
           up to 30% faster as levels progress
  fixed  - No progression, stays at the config's initial level

Examples:
  breaker play
  breaker play --start-level 6
  breaker play --difficulty hard --mute
  breaker play --volume 0.2
  breaker play --log-file /tmp/breaker.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start from")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound effect volume, 0 is silent")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used by the game)")
}

func runPlay(cmd *cobra.Command, args []string) {
	g, err := loadGame()
	if err != nil {
		fail(err)
	}
	if err := play(g, flagStartLevel); err != nil {
		fail(err)
	}
}

// play runs an interactive session starting at level n.
func play(g game, n int) error {
	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := g.newSession(n, logger)
	if err != nil {
		return err
	}

	assets, err := tui.NewAssets(breakout.NewBrickSpecs(g.cfg.Bricks))
	if err != nil {
		return err
	}

	cfg := runtimeConfig(g, n)

	player := audio.NewPlayer(logger)
	player.SetMuted(cfg.Muted)
	player.SetVolume(cfg.Volume)
	if !cfg.Muted {
		if err := player.Initialize(); err != nil {
			// The game works without sound.
			logger.Warn("audio unavailable", "err", err)
		}
	}
	defer player.Cleanup()

	logger.Info("starting", "seed", g.seed, "level", n, "screen", [2]int{cfg.ScreenW, cfg.ScreenH})
	return tui.Run(session, assets, player, logger, cfg)
}

// runtimeConfig builds the host settings from the flags and terminal size.
func runtimeConfig(g game, n int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = g.seed
	cfg.StartLevel = n
	cfg.Muted = flagMute
	cfg.Volume = flagVolume
	return cfg
}
