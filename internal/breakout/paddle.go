package breakout

import (
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Paddle is the player-controlled paddle. X is its center; Y never changes.
type Paddle struct {
	X, Y         float64
	HalfW, HalfH float64
	Widened      bool
	WidenLeft    int // Frames until the widen power-up expires

	normalHalfW float64
	wideHalfW   float64
	widenFrames int
	field       Bounds
}

// NewPaddle creates a paddle centered at the bottom of the playfield.
func NewPaddle(cfg config.PaddleConfig, field Bounds) *Paddle {
	p := &Paddle{
		HalfW:       cfg.Width / 2,
		HalfH:       cfg.Height / 2,
		normalHalfW: cfg.Width / 2,
		wideHalfW:   cfg.WideWidth / 2,
		widenFrames: cfg.WidenFrames,
		field:       field,
	}
	p.Y = field.YMax - p.HalfH
	p.MoveTo((field.XMin + field.XMax) / 2)
	return p
}

// Box returns the collision box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.HalfW, p.HalfH)
}

// MoveTo places the paddle at x, clamped so it stays inside the playfield.
func (p *Paddle) MoveTo(x float64) {
	p.X = core.ClampF(x, p.field.XMin+p.HalfW, p.field.XMax-p.HalfW)
}

// Widen enlarges the paddle and starts the countdown.
// Collecting it again while active neither stacks nor refreshes the duration.
func (p *Paddle) Widen() {
	if p.Widened {
		return
	}
	p.Widened = true
	p.HalfW = p.wideHalfW
	p.WidenLeft = p.widenFrames
	p.MoveTo(p.X)
}

// Tick counts down the widen timer and restores the normal width at zero.
func (p *Paddle) Tick() {
	if !p.Widened {
		return
	}
	p.WidenLeft--
	if p.WidenLeft <= 0 {
		p.Widened = false
		p.WidenLeft = 0
		p.HalfW = p.normalHalfW
	}
}

// CollidesWith reports whether the ball overlaps the paddle.
func (p *Paddle) CollidesWith(b *Ball) bool {
	return p.Box().Overlaps(b.Box())
}
