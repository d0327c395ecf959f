package core

// RuntimeConfig contains the host settings a play session starts with.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 60)
	Seed       int64 // RNG seed, 0 means derive one from the clock
	StartLevel int   // Level the session starts on (1-based)
	Muted      bool  // Disable sound effects

	Volume float64 // Linear sound effect volume, 0 is silent
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		StartLevel: 1,
		Volume:     0.5,
	}
}
