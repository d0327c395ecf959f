package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.breaker/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
//
// Files are decoded over the hardcoded defaults, so a partial file only overrides
// the keys it sets. A custom path that cannot be read or parsed is an error;
// broken files in the implicit locations are skipped.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := decodeBreakout(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeBreakout parses YAML over the hardcoded defaults and validates the result.
func decodeBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Ball.Size <= 0 || c.Ball.Speed <= 0 {
		errs = append(errs, errors.New("ball size and speed must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 || c.Paddle.WideWidth < c.Paddle.Width {
		errs = append(errs, errors.New("paddle needs a positive size and wide_width >= width"))
	}
	if c.Paddle.WideWidth > c.Playfield.Width {
		errs = append(errs, errors.New("paddle wide_width exceeds the playfield"))
	}
	for name, bt := range map[string]BrickTypeConfig{
		"standard": c.Bricks.Standard,
		"medium":   c.Bricks.Medium,
		"small":    c.Bricks.Small,
	} {
		if bt.Width <= 0 || bt.Height <= 0 || bt.HitPoints <= 0 {
			errs = append(errs, fmt.Errorf("brick type %s needs positive width, height and hit_points", name))
		}
	}
	if c.Bricks.DropChance < 0 || c.Bricks.DropChance > 100 {
		errs = append(errs, fmt.Errorf("drop_chance must be within [0, 100], got %d", c.Bricks.DropChance))
	}
	if c.Bonus.Size <= 0 || c.Bonus.FallSpeed <= 0 {
		errs = append(errs, errors.New("bonus size and fall_speed must be positive"))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Layout.MinRows < 1 || c.Layout.MaxRows < c.Layout.MinRows {
		errs = append(errs, fmt.Errorf("layout rows must satisfy 1 <= min_rows <= max_rows, got %d..%d", c.Layout.MinRows, c.Layout.MaxRows))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c BreakoutConfig) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breaker", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Bricks.DropChance = 40
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Bricks.DropChance = 20
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.3
	}
}
