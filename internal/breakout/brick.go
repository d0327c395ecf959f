package breakout

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// BrickType selects the geometry and durability of a brick.
type BrickType int

const (
	BrickStandard BrickType = iota // Wide and flat
	BrickMedium                    // Wide and tall
	BrickSmall                     // Square, one hit point less
	brickTypeCount
)

var brickTypeNames = [brickTypeCount]string{
	BrickStandard: "standard",
	BrickMedium:   "medium",
	BrickSmall:    "small",
}

func (t BrickType) String() string {
	if t < 0 || t >= brickTypeCount {
		return fmt.Sprintf("BrickType(%d)", int(t))
	}
	return brickTypeNames[t]
}

// BrickTypes returns every brick type in declaration order.
func BrickTypes() []BrickType {
	return []BrickType{BrickStandard, BrickMedium, BrickSmall}
}

// BrickSpec is the fixed geometry and durability of one brick type.
type BrickSpec struct {
	Width, Height float64
	HitPoints     int
}

// BrickSpecs holds the spec of every brick type.
type BrickSpecs [brickTypeCount]BrickSpec

// NewBrickSpecs builds the type table from configuration.
func NewBrickSpecs(cfg config.BricksConfig) BrickSpecs {
	var s BrickSpecs
	s[BrickStandard] = BrickSpec{Width: cfg.Standard.Width, Height: cfg.Standard.Height, HitPoints: cfg.Standard.HitPoints}
	s[BrickMedium] = BrickSpec{Width: cfg.Medium.Width, Height: cfg.Medium.Height, HitPoints: cfg.Medium.HitPoints}
	s[BrickSmall] = BrickSpec{Width: cfg.Small.Width, Height: cfg.Small.Height, HitPoints: cfg.Small.HitPoints}
	return s
}

// Of returns the spec for a brick type. Unknown types are a programmer error.
func (s BrickSpecs) Of(t BrickType) BrickSpec {
	if t < 0 || t >= brickTypeCount {
		panic(fmt.Sprintf("breakout: unknown brick type %d", int(t)))
	}
	return s[t]
}

// Brick is a static destructible block. X, Y is its center.
// A brick with zero hit points is destroyed and takes part in nothing.
type Brick struct {
	X, Y         float64
	HalfW, HalfH float64
	Type         BrickType
	HitPoints    int
	MaxHitPoints int
	Color        Color
	DropChance   int // Percent chance of spawning a bonus when destroyed
}

// NewBrick creates a full-health brick centered at (x, y).
func NewBrick(x, y float64, t BrickType, spec BrickSpec, color Color, dropChance int) *Brick {
	return &Brick{
		X:            x,
		Y:            y,
		HalfW:        spec.Width / 2,
		HalfH:        spec.Height / 2,
		Type:         t,
		HitPoints:    spec.HitPoints,
		MaxHitPoints: spec.HitPoints,
		Color:        color,
		DropChance:   dropChance,
	}
}

// IsAlive reports whether the brick still has hit points.
func (br *Brick) IsAlive() bool {
	return br.HitPoints > 0
}

// Box returns the collision box.
func (br *Brick) Box() core.Box {
	return core.NewBox(br.X, br.Y, br.HalfW, br.HalfH)
}

// Center returns the brick center, where a dropped bonus spawns.
func (br *Brick) Center() r2.Vec {
	return r2.Vec{X: br.X, Y: br.Y}
}

// ResolveCollision bounces the ball off the brick and takes a hit point.
// The ball reflects on the axis with the smaller penetration: vx for a side
// hit, vy otherwise. When the hit destroys the brick, a 1..100 roll against
// DropChance decides whether a bonus spawns at Center.
func (br *Brick) ResolveCollision(b *Ball, rng *SimpleRNG) (hit, spawnsBonus bool) {
	if !br.IsAlive() {
		return false, false
	}
	px, py, ok := br.Box().Penetration(b.Box())
	if !ok {
		return false, false
	}

	if px < py {
		b.Vel.X = -b.Vel.X
	} else {
		b.Vel.Y = -b.Vel.Y
	}

	br.HitPoints--
	if !br.IsAlive() && rng.IntRange(1, 100) <= br.DropChance {
		spawnsBonus = true
	}
	return true, spawnsBonus
}
