package telemetry

import (
	"context"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
)

// aimOffset shifts the paddle off the ball so rebounds are not all vertical.
const aimOffset = 5

// Autopilot returns the input that keeps the paddle under the lowest
// descending ball and launches whenever a ball rests.
func Autopilot(snap *breakout.Snapshot) breakout.Input {
	in := breakout.Input{PaddleX: snap.Paddle.X, Launch: true}
	lowest := -1.0
	for _, b := range snap.Balls {
		if b.Resting || b.VY <= 0 {
			continue
		}
		if b.Y > lowest {
			lowest = b.Y
			in.PaddleX = b.X + aimOffset
		}
	}
	return in
}

// Run drives s with the autopilot for at most frames frames, stopping early
// when the session ends or ctx is done. Every frame is observed by c.
func Run(ctx context.Context, s *breakout.Session, frames int, c *Collector) breakout.Snapshot {
	snap := s.Snapshot()
	c.Observe(&snap)

	for i := 0; i < frames && snap.State == breakout.StateOngoing; i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			break
		}
		snap = s.Update(Autopilot(&snap))
		c.Observe(&snap)
	}

	c.Close(snap.Frame)
	return snap
}
