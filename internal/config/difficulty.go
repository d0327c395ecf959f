package config

import "math"

// DifficultyManager derives dynamic game parameters from level progress or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a 1-based level number
// and the ticks spent in the session.
func (d *DifficultyManager) Level(levelNumber int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levelNumber-1) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base ball speed by the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, levelNumber int, ticks int) float64 {
	level := d.Level(levelNumber, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Sturdiness returns how far brick type weights shift toward sturdy bricks,
// from 0 (no shift) to the configured scaling at max difficulty.
func (d *DifficultyManager) Sturdiness(levelNumber int) float64 {
	return d.Level(levelNumber, 0) * math.Max(0, d.cfg.Scaling.Sturdiness)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
