package telemetry

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates level records across a run.
type Summary struct {
	Levels        int
	Cleared       int
	FramesMean    float64 // Frames per cleared level
	FramesStdDev  float64
	FramesP50     float64
	FramesP90     float64
	HitsPerBrick  float64 // Mean over levels with destroyed bricks
	BonusPickRate float64 // Collected / spawned over the whole run
	LivesLost     int
	Outcome       string // Outcome of the last record
}

// Summarize computes run statistics from level records.
func Summarize(records []LevelStats) Summary {
	sum := Summary{Levels: len(records), Outcome: OutcomeUnfinished}
	if len(records) == 0 {
		return sum
	}

	var frames, hits []float64
	spawned, collected := 0, 0
	for _, r := range records {
		if r.Outcome == OutcomeCleared || r.Outcome == OutcomeVictory {
			sum.Cleared++
			frames = append(frames, float64(r.Frames))
		}
		if r.Destroyed > 0 {
			hits = append(hits, r.HitsPerBrick())
		}
		spawned += r.BonusesSpawned
		collected += r.BonusesCollected
		sum.LivesLost += r.LivesLost
	}
	sum.Outcome = records[len(records)-1].Outcome

	if len(frames) > 0 {
		sort.Float64s(frames)
		sum.FramesMean, sum.FramesStdDev = stat.MeanStdDev(frames, nil)
		if len(frames) == 1 {
			sum.FramesStdDev = 0
		}
		sum.FramesP50 = stat.Quantile(0.5, stat.Empirical, frames, nil)
		sum.FramesP90 = stat.Quantile(0.9, stat.Empirical, frames, nil)
	}
	if len(hits) > 0 {
		sum.HitsPerBrick = stat.Mean(hits, nil)
	}
	if spawned > 0 {
		sum.BonusPickRate = float64(collected) / float64(spawned)
	}
	return sum
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"levels=%d cleared=%d outcome=%s frames/level mean=%.0f sd=%.0f p50=%.0f p90=%.0f hits/brick=%.2f bonus pickup=%.0f%% lives lost=%d",
		s.Levels, s.Cleared, s.Outcome,
		s.FramesMean, s.FramesStdDev, s.FramesP50, s.FramesP90,
		s.HitsPerBrick, s.BonusPickRate*100, s.LivesLost,
	)
}
