// Package config provides YAML game configuration, the CSV level table and
// difficulty management for the brick breaker.
package config

// BreakoutConfig contains all tunable parameters of the simulation.
type BreakoutConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Layout     LayoutConfig     `yaml:"layout"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the playfield extents. The origin is the top-left corner.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball sprite size and kinematics.
type BallConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`        // Pixels per frame
	LaunchAngle float64 `yaml:"launch_angle"` // Degrees, 90 is straight up
}

// PaddleConfig defines paddle dimensions and the widen power-up.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	WideWidth   float64 `yaml:"wide_width"`
	Height      float64 `yaml:"height"`
	WidenFrames int     `yaml:"widen_frames"`
}

// BrickTypeConfig defines the geometry and durability of one brick type.
type BrickTypeConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	HitPoints int     `yaml:"hit_points"`
}

// BricksConfig defines the brick types and the bonus drop roll.
type BricksConfig struct {
	DropChance int             `yaml:"drop_chance"` // Percent
	Standard   BrickTypeConfig `yaml:"standard"`
	Medium     BrickTypeConfig `yaml:"medium"`
	Small      BrickTypeConfig `yaml:"small"`
}

// BonusConfig defines falling power-ups.
type BonusConfig struct {
	Size      float64 `yaml:"size"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// LayoutConfig defines how the level generator places formations.
type LayoutConfig struct {
	SpacingH   float64 `yaml:"spacing_h"`
	SpacingV   float64 `yaml:"spacing_v"`
	TopMargin  float64 `yaml:"top_margin"`
	SafeZone   float64 `yaml:"safe_zone"` // Kept free above the bottom edge
	MinRows    int     `yaml:"min_rows"`
	MaxRows    int     `yaml:"max_rows"`
	StencilGap float64 `yaml:"stencil_gap"` // Gap between stencil cells
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Levels cleared or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
	Sturdiness      float64 `yaml:"sturdiness"`       // How strongly brick types shift toward sturdy ones
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string maps to normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}
