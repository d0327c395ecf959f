package breakout

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// BonusKind is the effect of a falling power-up.
type BonusKind int

const (
	BonusExtraLife     BonusKind = iota // One more life
	BonusExtraBall                      // A new ball leaves the paddle
	BonusMultiplyBalls                  // Every ball in flight is duplicated
	BonusWidenPaddle                    // Temporarily wider paddle
	bonusKindCount
)

// String returns the name of the bonus kind.
func (k BonusKind) String() string {
	switch k {
	case BonusExtraLife:
		return "extra-life"
	case BonusExtraBall:
		return "extra-ball"
	case BonusMultiplyBalls:
		return "multiply-balls"
	case BonusWidenPaddle:
		return "widen-paddle"
	default:
		return fmt.Sprintf("BonusKind(%d)", int(k))
	}
}

// BonusKinds returns every bonus kind in declaration order.
func BonusKinds() []BonusKind {
	return []BonusKind{BonusExtraLife, BonusExtraBall, BonusMultiplyBalls, BonusWidenPaddle}
}

// Bonus is a falling pickup. Pos is its center.
type Bonus struct {
	Pos          r2.Vec
	Kind         BonusKind
	HalfW, HalfH float64
	FallSpeed    float64
	Active       bool

	// Size of the balls this bonus spawns.
	ballHalfW, ballHalfH float64
	field                Bounds
}

// BonusParams carries the sizes a bonus needs from the session configuration.
type BonusParams struct {
	Size      float64
	FallSpeed float64
	BallSize  float64
	Field     Bounds
}

// NewBonus creates an active bonus at pos. The kind is chosen uniformly.
func NewBonus(pos r2.Vec, params BonusParams, rng *SimpleRNG) *Bonus {
	return &Bonus{
		Pos:       pos,
		Kind:      BonusKind(rng.Intn(int(bonusKindCount))),
		HalfW:     params.Size / 2,
		HalfH:     params.Size / 2,
		FallSpeed: params.FallSpeed,
		Active:    true,
		ballHalfW: params.BallSize / 2,
		ballHalfH: params.BallSize / 2,
		field:     params.Field,
	}
}

// Box returns the collision box.
func (bn *Bonus) Box() core.Box {
	return core.NewBox(bn.Pos.X, bn.Pos.Y, bn.HalfW, bn.HalfH)
}

// Fall moves the bonus down one frame. It deactivates once it is a full
// sprite height past the bottom edge.
func (bn *Bonus) Fall() {
	bn.Pos.Y += bn.FallSpeed
	if bn.Pos.Y > bn.field.YMax+2*bn.HalfH {
		bn.Active = false
	}
}

// CollidesWithPaddle reports whether the bonus overlaps the paddle.
func (bn *Bonus) CollidesWithPaddle(p *Paddle) bool {
	return bn.Box().Overlaps(p.Box())
}

// Apply performs the bonus effect and returns the updated lives and balls.
//
// New balls keep the magnitude of their velocity as speed. Duplicates from
// multiply-balls take 90% of the source velocity plus up to 0.5 of jitter
// per axis; only balls in flight are duplicated.
func (bn *Bonus) Apply(lives int, balls []*Ball, p *Paddle, rng *SimpleRNG) (int, []*Ball) {
	switch bn.Kind {
	case BonusExtraLife:
		lives++

	case BonusExtraBall:
		pos := r2.Vec{X: p.X, Y: p.Y - 2*p.HalfH}
		vel := r2.Vec{X: rng.Uniform(-1, 1) * 2, Y: -2}
		balls = append(balls, newFlyingBall(pos, vel, bn.ballHalfW, bn.ballHalfH, bn.field))

	case BonusMultiplyBalls:
		n := len(balls)
		for _, b := range balls[:n] {
			if b.Resting {
				continue
			}
			vel := r2.Add(r2.Scale(0.9, b.Vel), r2.Vec{
				X: rng.Uniform(-0.5, 0.5),
				Y: rng.Uniform(-0.5, 0.5),
			})
			balls = append(balls, newFlyingBall(b.Pos, vel, b.HalfW, b.HalfH, b.field))
		}

	case BonusWidenPaddle:
		p.Widen()

	default:
		panic(fmt.Sprintf("breakout: unknown bonus kind %d", int(bn.Kind)))
	}
	return lives, balls
}
