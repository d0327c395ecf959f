package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/levels.csv
var defaultLevelsCSV []byte

// DefaultBreakoutConfig returns the hardcoded configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:  240,
			Height: 160,
		},
		Ball: BallConfig{
			Size:        8,
			Speed:       3,
			LaunchAngle: 60,
		},
		Paddle: PaddleConfig{
			Width:       32,
			WideWidth:   50,
			Height:      9,
			WidenFrames: 600, // 10 seconds at 60fps
		},
		Bricks: BricksConfig{
			DropChance: 30,
			Standard:   BrickTypeConfig{Width: 32, Height: 9, HitPoints: 3},
			Medium:     BrickTypeConfig{Width: 32, Height: 16, HitPoints: 3},
			Small:      BrickTypeConfig{Width: 16, Height: 16, HitPoints: 2},
		},
		Bonus: BonusConfig{
			Size:      8,
			FallSpeed: 1,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Layout: LayoutConfig{
			SpacingH:   7,
			SpacingV:   7,
			TopMargin:  10,
			SafeZone:   40,
			MinRows:    3,
			MaxRows:    5,
			StencilGap: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 9,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
				Sturdiness:      1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default game configuration.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
