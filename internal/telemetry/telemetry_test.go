package telemetry

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/config"
)

func frame(n int, events ...breakout.Event) *breakout.Snapshot {
	return &breakout.Snapshot{Frame: n, Events: events}
}

func TestCollectorSplitsLevels(t *testing.T) {
	c := NewCollector(7)
	c.Observe(frame(0, breakout.LevelStartedEvent{Level: 1, Name: "Lagoon", Bricks: 2}))
	c.Observe(frame(10, breakout.BrickHitEvent{}, breakout.BonusSpawnedEvent{}))
	c.Observe(frame(20, breakout.BrickDestroyedEvent{}, breakout.BonusCollectedEvent{}))
	c.Observe(frame(30,
		breakout.BrickDestroyedEvent{},
		breakout.LevelClearedEvent{Level: 1},
		breakout.LevelStartedEvent{Level: 2, Name: "Sunset", Bricks: 5},
	))
	c.Observe(frame(90, breakout.BallLostEvent{}, breakout.LifeLostEvent{Lives: 0}, breakout.GameOverEvent{Level: 2}))

	records := c.Records()
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, LevelStats{
		Seed: 7, Level: 1, Name: "Lagoon", Frames: 30, Bricks: 2,
		Hits: 1, Destroyed: 2, BonusesSpawned: 1, BonusesCollected: 1,
		Outcome: OutcomeCleared,
	}, first)
	assert.InDelta(t, 1.5, first.HitsPerBrick(), 1e-9)

	second := records[1]
	assert.Equal(t, 2, second.Level)
	assert.Equal(t, 30, second.StartFrame)
	assert.Equal(t, 60, second.Frames)
	assert.Equal(t, 1, second.BallsLost)
	assert.Equal(t, 1, second.LivesLost)
	assert.Equal(t, OutcomeGameOver, second.Outcome)
}

func TestCollectorMarksVictoryAndUnfinished(t *testing.T) {
	c := NewCollector(1)
	c.Observe(frame(0, breakout.LevelStartedEvent{Level: 10}))
	c.Observe(frame(5, breakout.LevelClearedEvent{Level: 10}, breakout.VictoryEvent{Lives: 3}))
	c.Observe(frame(6, breakout.LevelStartedEvent{Level: 1}))
	c.Close(50)

	records := c.Records()
	require.Len(t, records, 2)
	assert.Equal(t, OutcomeVictory, records[0].Outcome)
	assert.Equal(t, OutcomeUnfinished, records[1].Outcome)
	assert.Equal(t, 44, records[1].Frames)
}

func TestCollectorIgnoresEventsBeforeLevelStart(t *testing.T) {
	c := NewCollector(1)
	c.Observe(frame(3, breakout.BrickHitEvent{}, breakout.GameOverEvent{}))
	c.Close(3)
	assert.Empty(t, c.Records())
}

func TestSummarize(t *testing.T) {
	records := []LevelStats{
		{Level: 1, Frames: 100, Hits: 2, Destroyed: 2, BonusesSpawned: 2, BonusesCollected: 1, Outcome: OutcomeCleared},
		{Level: 2, Frames: 300, Destroyed: 4, BonusesSpawned: 2, BonusesCollected: 2, LivesLost: 1, Outcome: OutcomeCleared},
		{Level: 3, Frames: 50, LivesLost: 3, Outcome: OutcomeGameOver},
	}
	sum := Summarize(records)

	assert.Equal(t, 3, sum.Levels)
	assert.Equal(t, 2, sum.Cleared)
	assert.Equal(t, OutcomeGameOver, sum.Outcome)
	assert.InDelta(t, 200, sum.FramesMean, 1e-9)
	assert.InDelta(t, math.Sqrt(20000), sum.FramesStdDev, 1e-9)
	assert.Equal(t, 100.0, sum.FramesP50)
	assert.Equal(t, 300.0, sum.FramesP90)
	assert.InDelta(t, 1.5, sum.HitsPerBrick, 1e-9)
	assert.InDelta(t, 0.75, sum.BonusPickRate, 1e-9)
	assert.Equal(t, 4, sum.LivesLost)
	assert.Contains(t, sum.String(), "cleared=2")
}

func TestSummarizeEdgeCases(t *testing.T) {
	assert.Equal(t, Summary{Outcome: OutcomeUnfinished}, Summarize(nil))

	one := Summarize([]LevelStats{{Frames: 42, Outcome: OutcomeVictory}})
	assert.Equal(t, 1, one.Cleared)
	assert.InDelta(t, 42, one.FramesMean, 1e-9)
	assert.Zero(t, one.FramesStdDev)
}

func TestAutopilotFollowsLowestFallingBall(t *testing.T) {
	snap := &breakout.Snapshot{
		Paddle: breakout.PaddleView{X: 120},
		Balls: []breakout.BallView{
			{X: 30, Y: 100, VY: 2},
			{X: 200, Y: 140, VY: -2}, // Rising
			{X: 60, Y: 120, VY: 1},
		},
	}
	in := Autopilot(snap)
	assert.True(t, in.Launch)
	assert.InDelta(t, 65, in.PaddleX, 1e-9)

	idle := Autopilot(&breakout.Snapshot{Paddle: breakout.PaddleView{X: 80}, Balls: []breakout.BallView{{Resting: true}}})
	assert.InDelta(t, 80, idle.PaddleX, 1e-9)
}

func TestRunCollectsLevels(t *testing.T) {
	s := breakout.NewSession(breakout.WithSeed(3))
	c := NewCollector(3)

	snap := Run(context.Background(), s, 4000, c)

	records := c.Records()
	require.NotEmpty(t, records)
	assert.Equal(t, 1, records[0].Level)
	assert.Equal(t, snap.Frame, records[len(records)-1].StartFrame+records[len(records)-1].Frames)
	for _, r := range records {
		assert.LessOrEqual(t, r.Destroyed, r.Bricks, "level %d", r.Level)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap := Run(ctx, breakout.NewSession(), 1000, NewCollector(1))
	assert.Zero(t, snap.Frame)
}

func TestOutputManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteConfig(config.DefaultBreakoutConfig()))
	require.NoError(t, om.WriteLevels([]LevelStats{{Seed: 1, Level: 1, Name: "Lagoon", Outcome: OutcomeCleared}}))
	require.NoError(t, om.WriteLevels([]LevelStats{{Seed: 1, Level: 2, Name: "Sunset", Outcome: OutcomeGameOver}}))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "levels.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "seed,level,name"), "header written once")
	assert.NotContains(t, string(data), "StartFrame")

	var rows []LevelStats
	require.NoError(t, gocsv.UnmarshalBytes(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Sunset", rows[1].Name)

	cfg, err := config.LoadBreakout(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBreakoutConfig(), cfg)
}

func TestNilOutputManagerIgnoresWrites(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteLevels([]LevelStats{{Level: 1}}))
	assert.NoError(t, om.WriteConfig(config.DefaultBreakoutConfig()))
	assert.Empty(t, om.Dir())
	assert.NoError(t, om.Close())
}
