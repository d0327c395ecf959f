// Package telemetry records per-level statistics of a session for headless
// runs and writes them as CSV.
package telemetry

import (
	"github.com/vovakirdan/brick-breaker/internal/breakout"
)

// Level outcomes.
const (
	OutcomeCleared    = "cleared"
	OutcomeGameOver   = "gameover"
	OutcomeVictory    = "victory"
	OutcomeUnfinished = "unfinished"
)

// LevelStats holds what happened during one attempt at a level.
type LevelStats struct {
	Seed             int64  `csv:"seed"`
	Level            int    `csv:"level"`
	Name             string `csv:"name"`
	StartFrame       int    `csv:"-"`
	Frames           int    `csv:"frames"`
	Bricks           int    `csv:"bricks"`
	Hits             int    `csv:"hits"`
	Destroyed        int    `csv:"destroyed"`
	BonusesSpawned   int    `csv:"bonuses_spawned"`
	BonusesCollected int    `csv:"bonuses_collected"`
	BallsLost        int    `csv:"balls_lost"`
	LivesLost        int    `csv:"lives_lost"`
	Outcome          string `csv:"outcome"`
}

// HitsPerBrick is the average number of hits a destroyed brick took.
func (s LevelStats) HitsPerBrick() float64 {
	if s.Destroyed == 0 {
		return 0
	}
	return float64(s.Hits+s.Destroyed) / float64(s.Destroyed)
}

// Collector accumulates session events into per-level records.
type Collector struct {
	seed    int64
	current *LevelStats
	records []LevelStats
}

// NewCollector creates a collector tagging records with seed.
func NewCollector(seed int64) *Collector {
	return &Collector{seed: seed}
}

// Observe folds one frame's snapshot into the statistics.
func (c *Collector) Observe(snap *breakout.Snapshot) {
	for _, e := range snap.Events {
		c.record(e, snap.Frame)
	}
	if c.current != nil {
		c.current.Frames = snap.Frame - c.current.StartFrame
	}
}

func (c *Collector) record(e breakout.Event, frame int) {
	if started, ok := e.(breakout.LevelStartedEvent); ok {
		c.finish(OutcomeUnfinished, frame)
		c.current = &LevelStats{
			Seed:       c.seed,
			Level:      started.Level,
			Name:       started.Name,
			StartFrame: frame,
			Bricks:     started.Bricks,
		}
		return
	}
	if c.current == nil {
		return
	}

	switch e.(type) {
	case breakout.BrickHitEvent:
		c.current.Hits++
	case breakout.BrickDestroyedEvent:
		c.current.Destroyed++
	case breakout.BonusSpawnedEvent:
		c.current.BonusesSpawned++
	case breakout.BonusCollectedEvent:
		c.current.BonusesCollected++
	case breakout.BallLostEvent:
		c.current.BallsLost++
	case breakout.LifeLostEvent:
		c.current.LivesLost++
	case breakout.LevelClearedEvent:
		c.finish(OutcomeCleared, frame)
	case breakout.GameOverEvent:
		c.finish(OutcomeGameOver, frame)
	case breakout.VictoryEvent:
		// The final level's cleared record is already closed.
		if n := len(c.records); n > 0 {
			c.records[n-1].Outcome = OutcomeVictory
		}
	}
}

func (c *Collector) finish(outcome string, frame int) {
	if c.current == nil {
		return
	}
	c.current.Frames = frame - c.current.StartFrame
	c.current.Outcome = outcome
	c.records = append(c.records, *c.current)
	c.current = nil
}

// Close ends the open level, if any, as unfinished.
func (c *Collector) Close(frame int) {
	c.finish(OutcomeUnfinished, frame)
}

// Records returns the closed level records in order.
func (c *Collector) Records() []LevelStats {
	return c.records
}
