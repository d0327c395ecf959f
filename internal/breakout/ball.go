package breakout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Rebound steering constants. A centered hit leaves at 90 degrees and an edge
// hit deflects up to 80 degrees from vertical.
const (
	reboundCenter = 90.0
	reboundSpread = 80.0
)

// Ball is a bouncing ball. Pos is its center.
// While not resting, |Vel| == Speed.
type Ball struct {
	Pos          r2.Vec
	Vel          r2.Vec
	Speed        float64
	HalfW, HalfH float64
	Resting      bool // Sitting on the paddle, waiting for launch

	field Bounds
}

// NewBall creates a ball resting on the paddle.
func NewBall(p *Paddle, size, speed float64, field Bounds) *Ball {
	b := &Ball{
		Speed:   speed,
		HalfW:   size / 2,
		HalfH:   size / 2,
		Resting: true,
		field:   field,
	}
	b.rest(p)
	return b
}

// newFlyingBall creates an in-flight ball whose speed is the magnitude of vel.
func newFlyingBall(pos, vel r2.Vec, halfW, halfH float64, field Bounds) *Ball {
	return &Ball{
		Pos:   pos,
		Vel:   vel,
		Speed: r2.Norm(vel),
		HalfW: halfW,
		HalfH: halfH,
		field: field,
	}
}

// Box returns the collision box.
func (b *Ball) Box() core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, b.HalfW, b.HalfH)
}

// SetVelocityFromAngle points the ball along angle (degrees, 0 = right,
// 90 = up) at its current speed. Screen y grows downward, so vy is negated.
func (b *Ball) SetVelocityFromAngle(deg float64) {
	rad := deg * math.Pi / 180
	b.Vel = r2.Vec{
		X: b.Speed * math.Cos(rad),
		Y: -b.Speed * math.Sin(rad),
	}
}

// Angle returns the direction of travel in degrees, in the same convention
// as SetVelocityFromAngle.
func (b *Ball) Angle() float64 {
	return math.Atan2(-b.Vel.Y, b.Vel.X) * 180 / math.Pi
}

// Launch sends a resting ball off the paddle. In-flight balls are unaffected.
func (b *Ball) Launch(deg float64) bool {
	if !b.Resting {
		return false
	}
	b.Resting = false
	b.SetVelocityFromAngle(deg)
	return true
}

// rest snaps the ball on top of the paddle.
func (b *Ball) rest(p *Paddle) {
	b.Pos = r2.Vec{X: p.X, Y: p.Y - b.HalfH - p.HalfH}
}

// Advance moves the ball one frame and resolves paddle and wall contacts.
// It reports true when the ball crossed the bottom edge; the ball is then
// flagged as resting so it can be recycled onto the paddle.
func (b *Ball) Advance(p *Paddle) (lost bool) {
	if b.Resting {
		b.rest(p)
		return false
	}

	b.Pos = r2.Add(b.Pos, b.Vel)

	// Only a descending ball rebounds, so a ball still leaving the paddle
	// does not re-trigger.
	if p.CollidesWith(b) && b.Vel.Y > 0 {
		b.SetVelocityFromAngle(reboundAngle(p.X, b.Pos.X, p.HalfW, b.HalfW))
	}

	if b.Pos.X+b.HalfW > b.field.XMax {
		b.Vel.X = -b.Vel.X
		b.Pos.X = b.field.XMax - b.HalfW
	}
	if b.Pos.X-b.HalfW < b.field.XMin {
		b.Vel.X = -b.Vel.X
		b.Pos.X = b.field.XMin + b.HalfW
	}
	if b.Pos.Y+b.HalfH > b.field.YMax {
		b.Resting = true
		lost = true
	}
	if b.Pos.Y-b.HalfH < b.field.YMin {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = b.field.YMin + b.HalfH
	}
	return lost
}

// reboundAngle maps the hit offset on the paddle to a leaving angle.
func reboundAngle(paddleX, ballX, paddleHalfW, ballHalfW float64) float64 {
	return reboundCenter + reboundSpread*(paddleX-ballX)/(paddleHalfW+ballHalfW)
}
