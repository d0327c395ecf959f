package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

const eps = 1e-9

func testField() Bounds {
	return FieldFromConfig(config.DefaultBreakoutConfig().Playfield)
}

func testPaddle() *Paddle {
	return NewPaddle(config.DefaultBreakoutConfig().Paddle, testField())
}

func TestSimpleRNGDeterministic(t *testing.T) {
	a, b := NewSimpleRNG(7), NewSimpleRNG(7)
	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}

	r := NewSimpleRNG(0)
	for range 1000 {
		v := r.IntRange(1, 100)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)

		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestSimpleRNGWeightedSkipsZeroWeights(t *testing.T) {
	r := NewSimpleRNG(3)
	for range 500 {
		assert.Equal(t, 2, r.Weighted([]float64{0, -1, 5}))
	}
	assert.Equal(t, 0, r.Weighted([]float64{0, 0}))
}

func TestReboundAngle(t *testing.T) {
	assert.InDelta(t, 90.0, reboundAngle(120, 120, 16, 4), eps)
	assert.InDelta(t, 10.0, reboundAngle(120, 140, 16, 4), eps)
	assert.InDelta(t, 170.0, reboundAngle(120, 100, 16, 4), eps)
}

func TestBallPaddleCenterHitGoesStraightUp(t *testing.T) {
	p := testPaddle()
	b := newFlyingBall(r2.Vec{X: p.X, Y: 145}, r2.Vec{Y: 3}, 4, 4, testField())

	lost := b.Advance(p)
	assert.False(t, lost)
	assert.InDelta(t, 90.0, b.Angle(), eps)
	assert.InDelta(t, 0.0, b.Vel.X, eps)
	assert.InDelta(t, -3.0, b.Vel.Y, eps)
}

func TestBallRisingThroughPaddleDoesNotRebound(t *testing.T) {
	p := testPaddle()
	b := newFlyingBall(r2.Vec{X: p.X, Y: 150}, r2.Vec{X: 1, Y: -2}, 4, 4, testField())

	b.Advance(p)
	assert.Equal(t, r2.Vec{X: 1, Y: -2}, b.Vel)
}

func TestBallWalls(t *testing.T) {
	p := testPaddle()
	field := testField()

	right := newFlyingBall(r2.Vec{X: 238, Y: 50}, r2.Vec{X: 3}, 4, 4, field)
	right.Advance(p)
	assert.Equal(t, -3.0, right.Vel.X)
	assert.Equal(t, 236.0, right.Pos.X)

	left := newFlyingBall(r2.Vec{X: 2, Y: 50}, r2.Vec{X: -3}, 4, 4, field)
	left.Advance(p)
	assert.Equal(t, 3.0, left.Vel.X)
	assert.Equal(t, 4.0, left.Pos.X)

	top := newFlyingBall(r2.Vec{X: 50, Y: 5}, r2.Vec{Y: -3}, 4, 4, field)
	top.Advance(p)
	assert.Equal(t, 3.0, top.Vel.Y)
	assert.Equal(t, 4.0, top.Pos.Y)

	bottom := newFlyingBall(r2.Vec{X: 50, Y: 157}, r2.Vec{Y: 3}, 4, 4, field)
	assert.True(t, bottom.Advance(p))
	assert.True(t, bottom.Resting)
}

func TestBallRestingFollowsPaddle(t *testing.T) {
	p := testPaddle()
	b := NewBall(p, 8, 3, testField())
	require.True(t, b.Resting)
	assert.Equal(t, r2.Vec{X: 120, Y: 147}, b.Pos)

	p.MoveTo(60)
	assert.False(t, b.Advance(p))
	assert.Equal(t, r2.Vec{X: 60, Y: 147}, b.Pos)

	assert.True(t, b.Launch(60))
	assert.False(t, b.Resting)
	assert.InDelta(t, 60.0, b.Angle(), eps)
	assert.False(t, b.Launch(60), "a ball in flight cannot be launched again")
}

func TestBallSpeedInvariant(t *testing.T) {
	p := testPaddle()
	rng := NewSimpleRNG(11)

	for trial := range 20 {
		b := NewBall(p, 8, 3, testField())
		b.Launch(rng.Uniform(20, 160))
		for frame := range 2000 {
			p.MoveTo(b.Pos.X + rng.Uniform(-18, 18))
			if b.Advance(p) {
				break
			}
			require.InDelta(t, b.Speed, r2.Norm(b.Vel), 1e-9, "trial %d frame %d", trial, frame)
		}
	}
}

func TestPaddleClamp(t *testing.T) {
	p := testPaddle()
	assert.Equal(t, 120.0, p.X)
	assert.Equal(t, 155.5, p.Y)

	for _, x := range []float64{-100, 0, 10, 120, 230, 1000} {
		p.MoveTo(x)
		assert.GreaterOrEqual(t, p.X-p.HalfW, 0.0)
		assert.LessOrEqual(t, p.X+p.HalfW, 240.0)
	}
	p.MoveTo(-100)
	assert.Equal(t, 16.0, p.X)
}

func TestPaddleWidenIsIdempotent(t *testing.T) {
	p := testPaddle()
	p.MoveTo(1000)

	p.Widen()
	assert.True(t, p.Widened)
	assert.Equal(t, 25.0, p.HalfW)
	assert.Equal(t, 600, p.WidenLeft)
	assert.Equal(t, 215.0, p.X, "widening re-clamps against the wall")

	p.Tick()
	p.Widen()
	assert.Equal(t, 25.0, p.HalfW)
	assert.Equal(t, 599, p.WidenLeft, "a second widen does not refresh the timer")

	for range 599 {
		p.Tick()
	}
	assert.False(t, p.Widened)
	assert.Equal(t, 16.0, p.HalfW)
}

func testBrick(hp, dropChance int) *Brick {
	return NewBrick(100, 50, BrickStandard, BrickSpec{Width: 32, Height: 9, HitPoints: hp}, ColorRed, dropChance)
}

func TestBrickSideHitFlipsVX(t *testing.T) {
	br := testBrick(3, 0)
	b := newFlyingBall(r2.Vec{X: 82, Y: 50}, r2.Vec{X: 3, Y: 1}, 4, 4, testField())

	hit, _ := br.ResolveCollision(b, NewSimpleRNG(1))
	require.True(t, hit)
	assert.Equal(t, r2.Vec{X: -3, Y: 1}, b.Vel)
	assert.Equal(t, 2, br.HitPoints)
}

func TestBrickTopHitFlipsVY(t *testing.T) {
	br := testBrick(3, 0)
	b := newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{X: 1, Y: 3}, 4, 4, testField())

	hit, _ := br.ResolveCollision(b, NewSimpleRNG(1))
	require.True(t, hit)
	assert.Equal(t, r2.Vec{X: 1, Y: -3}, b.Vel)
}

func TestBrickMissIsNoop(t *testing.T) {
	br := testBrick(3, 0)
	b := newFlyingBall(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 1, Y: 3}, 4, 4, testField())

	hit, spawns := br.ResolveCollision(b, NewSimpleRNG(1))
	assert.False(t, hit)
	assert.False(t, spawns)
	assert.Equal(t, 3, br.HitPoints)
}

func TestBrickHitPointsNeverNegative(t *testing.T) {
	br := testBrick(2, 0)
	rng := NewSimpleRNG(1)
	prev := br.HitPoints
	for range 5 {
		b := newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{Y: 3}, 4, 4, testField())
		br.ResolveCollision(b, rng)
		assert.LessOrEqual(t, br.HitPoints, prev)
		assert.GreaterOrEqual(t, br.HitPoints, 0)
		prev = br.HitPoints
	}
	assert.False(t, br.IsAlive())

	b := newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{Y: 3}, 4, 4, testField())
	hit, _ := br.ResolveCollision(b, rng)
	assert.False(t, hit, "a destroyed brick takes part in nothing")
	assert.Equal(t, 3.0, b.Vel.Y)
}

func TestBrickDropChance(t *testing.T) {
	rng := NewSimpleRNG(5)
	for range 50 {
		never := testBrick(1, 0)
		_, spawns := never.ResolveCollision(newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{Y: 3}, 4, 4, testField()), rng)
		assert.False(t, spawns)

		always := testBrick(1, 100)
		_, spawns = always.ResolveCollision(newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{Y: 3}, 4, 4, testField()), rng)
		assert.True(t, spawns)
	}

	survivor := testBrick(2, 100)
	_, spawns := survivor.ResolveCollision(newFlyingBall(r2.Vec{X: 100, Y: 42}, r2.Vec{Y: 3}, 4, 4, testField()), rng)
	assert.False(t, spawns, "only a destroying hit rolls for a bonus")
}

func TestBrickSpecsFromConfig(t *testing.T) {
	specs := NewBrickSpecs(config.DefaultBreakoutConfig().Bricks)
	assert.Equal(t, BrickSpec{Width: 32, Height: 9, HitPoints: 3}, specs.Of(BrickStandard))
	assert.Equal(t, BrickSpec{Width: 32, Height: 16, HitPoints: 3}, specs.Of(BrickMedium))
	assert.Equal(t, BrickSpec{Width: 16, Height: 16, HitPoints: 2}, specs.Of(BrickSmall))
	assert.PanicsWithValue(t, "breakout: unknown brick type 9", func() { specs.Of(BrickType(9)) })
}

func testBonus(kind BonusKind, pos r2.Vec) *Bonus {
	bn := NewBonus(pos, BonusParams{Size: 8, FallSpeed: 1, BallSize: 8, Field: testField()}, NewSimpleRNG(1))
	bn.Kind = kind
	return bn
}

func TestBonusFallDeactivatesBelowField(t *testing.T) {
	bn := testBonus(BonusExtraLife, r2.Vec{X: 50, Y: 167})
	bn.Fall()
	assert.True(t, bn.Active)
	bn.Fall()
	assert.False(t, bn.Active)
}

func TestBonusKindIsUniform(t *testing.T) {
	rng := NewSimpleRNG(9)
	counts := make(map[BonusKind]int)
	for range 4000 {
		bn := NewBonus(r2.Vec{}, BonusParams{Size: 8, FallSpeed: 1, BallSize: 8, Field: testField()}, rng)
		counts[bn.Kind]++
	}
	for _, k := range BonusKinds() {
		assert.InDelta(t, 1000, counts[k], 150, "kind %s", k)
	}
}

func TestBonusExtraLife(t *testing.T) {
	lives, balls := testBonus(BonusExtraLife, r2.Vec{}).Apply(3, nil, testPaddle(), NewSimpleRNG(1))
	assert.Equal(t, 4, lives)
	assert.Empty(t, balls)
}

func TestBonusExtraBall(t *testing.T) {
	p := testPaddle()
	balls := []*Ball{NewBall(p, 8, 3, testField())}

	lives, balls := testBonus(BonusExtraBall, r2.Vec{}).Apply(3, balls, p, NewSimpleRNG(1))
	assert.Equal(t, 3, lives)
	require.Len(t, balls, 2)

	nb := balls[1]
	assert.False(t, nb.Resting)
	assert.Equal(t, r2.Vec{X: 120, Y: 146.5}, nb.Pos)
	assert.Equal(t, -2.0, nb.Vel.Y)
	assert.LessOrEqual(t, math.Abs(nb.Vel.X), 2.0)
	assert.InDelta(t, r2.Norm(nb.Vel), nb.Speed, eps)
}

func TestBonusMultiplyBalls(t *testing.T) {
	p := testPaddle()
	field := testField()
	balls := []*Ball{
		newFlyingBall(r2.Vec{X: 50, Y: 50}, r2.Vec{X: 1, Y: -2}, 4, 4, field),
		newFlyingBall(r2.Vec{X: 80, Y: 60}, r2.Vec{X: -2, Y: -1}, 4, 4, field),
	}

	_, balls = testBonus(BonusMultiplyBalls, r2.Vec{}).Apply(3, balls, p, NewSimpleRNG(1))
	require.Len(t, balls, 4)

	for i, b := range balls[2:] {
		src := balls[i]
		assert.Equal(t, src.Pos, b.Pos)
		assert.NotEqual(t, r2.Vec{}, b.Vel)
		assert.NotEqual(t, src.Vel, b.Vel)
		assert.InDelta(t, src.Vel.X*0.9, b.Vel.X, 0.5)
		assert.InDelta(t, src.Vel.Y*0.9, b.Vel.Y, 0.5)
		assert.InDelta(t, r2.Norm(b.Vel), b.Speed, eps)
	}
}

func TestBonusMultiplySkipsRestingBalls(t *testing.T) {
	p := testPaddle()
	balls := []*Ball{
		NewBall(p, 8, 3, testField()),
		newFlyingBall(r2.Vec{X: 50, Y: 50}, r2.Vec{X: 1, Y: -2}, 4, 4, testField()),
	}
	_, balls = testBonus(BonusMultiplyBalls, r2.Vec{}).Apply(3, balls, p, NewSimpleRNG(1))
	assert.Len(t, balls, 3)
}

func TestBonusWidenPaddle(t *testing.T) {
	p := testPaddle()
	testBonus(BonusWidenPaddle, r2.Vec{}).Apply(3, nil, p, NewSimpleRNG(1))
	assert.True(t, p.Widened)
}

func TestBonusUnknownKindPanics(t *testing.T) {
	bn := testBonus(BonusKind(42), r2.Vec{})
	assert.Panics(t, func() { bn.Apply(3, nil, testPaddle(), NewSimpleRNG(1)) })
}

func TestBonusCaughtByPaddle(t *testing.T) {
	p := testPaddle()
	assert.True(t, testBonus(BonusExtraLife, r2.Vec{X: 120, Y: 150}).CollidesWithPaddle(p))
	assert.False(t, testBonus(BonusExtraLife, r2.Vec{X: 20, Y: 150}).CollidesWithPaddle(p))
}
