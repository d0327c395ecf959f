package breakout

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

// LevelBuilder produces the bricks of a level.
type LevelBuilder interface {
	Build(spec LevelSpec, final bool) []*Brick
}

// LevelBuilderFunc adapts a function to LevelBuilder.
type LevelBuilderFunc func(spec LevelSpec, final bool) []*Brick

// Build calls f.
func (f LevelBuilderFunc) Build(spec LevelSpec, final bool) []*Brick {
	return f(spec, final)
}

// Generator lays out levels procedurally by stacking random formations.
type Generator struct {
	layout     config.LayoutConfig
	specs      BrickSpecs
	dropChance int
	field      Bounds
	difficulty *config.DifficultyManager
	formations *FormationRegistry
	rng        *SimpleRNG
}

// NewGenerator creates a generator using the built-in formations.
func NewGenerator(cfg config.BreakoutConfig, difficulty *config.DifficultyManager, rng *SimpleRNG) *Generator {
	return &Generator{
		layout:     cfg.Layout,
		specs:      NewBrickSpecs(cfg.Bricks),
		dropChance: cfg.Bricks.DropChance,
		field:      FieldFromConfig(cfg.Playfield),
		difficulty: difficulty,
		formations: DefaultFormations(),
		rng:        rng,
	}
}

// Build lays out one level.
//
// The number of formations is rand(min_rows..max_rows) plus one for every
// three levels. The final level is the boss stencil alone. A formation whose
// bottom would enter the safe zone above the paddle is dropped from the pool,
// since the cursor only moves down; placement stops when the pool runs dry.
func (g *Generator) Build(spec LevelSpec, final bool) []*Brick {
	limit := g.field.YMax - g.layout.SafeZone
	pl := &Placement{
		Top:     g.field.YMin + g.layout.TopMargin,
		Palette: spec.Palette,
		Level:   spec.Number,
		gen:     g,
	}

	if final {
		boss, ok := g.formations.Lookup(bossFormation)
		if !ok {
			panic(fmt.Sprintf("breakout: formation %q not registered", bossFormation))
		}
		bricks, _ := boss.Build(pl)
		return clipBelow(bricks, limit)
	}

	pool := g.formations.Available(spec.Number)
	rows := g.rng.IntRange(g.layout.MinRows, g.layout.MaxRows) + (spec.Number-1)/3
	var out []*Brick
	for placed := 0; placed < rows && len(pool) > 0 && pl.Top <= limit; {
		i := g.rng.Intn(len(pool))
		bricks, advance := pool[i].Build(pl)
		if bottomOf(bricks) > limit {
			pool = slices.Delete(pool, i, i+1)
			continue
		}
		out = append(out, bricks...)
		pl.Top += advance
		placed++
	}
	return out
}

// bottomOf returns the lowest brick edge, or -Inf for no bricks.
func bottomOf(bricks []*Brick) float64 {
	bottom := math.Inf(-1)
	for _, b := range bricks {
		bottom = max(bottom, b.Y+b.HalfH)
	}
	return bottom
}

// clipBelow drops bricks that reach past limit.
func clipBelow(bricks []*Brick, limit float64) []*Brick {
	out := bricks[:0]
	for _, b := range bricks {
		if b.Y+b.HalfH <= limit {
			out = append(out, b)
		}
	}
	return out
}

// Placement is the cursor a formation builds against.
type Placement struct {
	Top     float64 // Top edge of the formation being placed
	Palette []Color
	Level   int

	gen *Generator
}

// Spec returns the geometry of a brick type.
func (pl *Placement) Spec(t BrickType) BrickSpec {
	return pl.gen.specs.Of(t)
}

// SpacingH returns the horizontal gap between bricks.
func (pl *Placement) SpacingH() float64 { return pl.gen.layout.SpacingH }

// SpacingV returns the vertical gap between formations.
func (pl *Placement) SpacingV() float64 { return pl.gen.layout.SpacingV }

// Float64 draws from the level RNG.
func (pl *Placement) Float64() float64 { return pl.gen.rng.Float64() }

// FitCount returns how many bricks of the given width fit across the
// playfield with the horizontal spacing as margin. Never negative.
func (pl *Placement) FitCount(width float64) int {
	s := pl.SpacingH()
	n := math.Floor((pl.gen.field.Width() - 2*s) / (width + s))
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// CenteredLeft returns the left edge that centers a span of the given width.
func (pl *Placement) CenteredLeft(span float64) float64 {
	return pl.gen.field.XMin + (pl.gen.field.Width()-span)/2
}

// Sturdiness returns the difficulty shift for the level being built.
func (pl *Placement) Sturdiness() float64 {
	return pl.gen.difficulty.Sturdiness(pl.Level)
}

// typeWeights shifts picks from small bricks toward the 3 HP types as the
// level difficulty grows.
func (pl *Placement) typeWeights() []float64 {
	st := pl.Sturdiness()
	w := make([]float64, brickTypeCount)
	w[BrickStandard] = 1 + st
	w[BrickMedium] = 1 + st
	w[BrickSmall] = max(0.25, 1-0.75*st)
	return w
}

// PickType draws a brick type using the difficulty weighting.
func (pl *Placement) PickType() BrickType {
	return BrickType(pl.gen.rng.Weighted(pl.typeWeights()))
}

func (pl *Placement) pickTypeExcept(skip BrickType) BrickType {
	w := pl.typeWeights()
	w[skip] = 0
	return BrickType(pl.gen.rng.Weighted(w))
}

// PickColor draws a color from palette.
func (pl *Placement) PickColor(palette []Color) Color {
	if len(palette) == 0 {
		return ColorBlue
	}
	return palette[pl.gen.rng.Intn(len(palette))]
}

// Brick creates a brick from its top-left corner.
func (pl *Placement) Brick(left, top float64, t BrickType, c Color) *Brick {
	spec := pl.Spec(t)
	return NewBrick(left+spec.Width/2, top+spec.Height/2, t, spec, c, pl.gen.dropChance)
}

// Row fills one centered row with as many bricks of type t as fit.
// A playfield too narrow for a single brick yields an empty row.
func (pl *Placement) Row(top float64, t BrickType) []*Brick {
	spec := pl.Spec(t)
	n := pl.FitCount(spec.Width)
	if n == 0 {
		return nil
	}
	left := pl.CenteredLeft(float64(n)*spec.Width + float64(n-1)*pl.SpacingH())

	bricks := make([]*Brick, 0, n)
	for col := range n {
		x := left + float64(col)*(spec.Width+pl.SpacingH())
		bricks = append(bricks, pl.Brick(x, top, t, pl.PickColor(pl.Palette)))
	}
	return bricks
}

// Sequence lays out a centered row of mixed types in order. Each slot holds
// a brick with probability fill. Trailing slots are dropped if the mix turns
// out wider than the playfield.
func (pl *Placement) Sequence(top float64, seq []BrickType, fill float64) []*Brick {
	s := pl.SpacingH()
	span := func(ts []BrickType) float64 {
		if len(ts) == 0 {
			return 0
		}
		w := float64(len(ts)-1) * s
		for _, t := range ts {
			w += pl.Spec(t).Width
		}
		return w
	}
	for len(seq) > 0 && span(seq) > pl.gen.field.Width()-2*s {
		seq = seq[:len(seq)-1]
	}
	if len(seq) == 0 {
		return nil
	}

	x := pl.CenteredLeft(span(seq))
	var bricks []*Brick
	for _, t := range seq {
		if fill >= 1 || pl.Float64() < fill {
			bricks = append(bricks, pl.Brick(x, top, t, pl.PickColor(pl.Palette)))
		}
		x += pl.Spec(t).Width + s
	}
	return bricks
}

// Stencil places a fixed pixel formation of type t, centered, with cells
// spaced by the stencil gap. Colors come from palette. A stencil wider than
// the playfield yields nothing.
func (pl *Placement) Stencil(st stencil, t BrickType, palette []Color) ([]*Brick, float64) {
	spec := pl.Spec(t)
	gap := pl.gen.layout.StencilGap
	width := float64(st.cols)*spec.Width + float64(st.cols-1)*gap
	height := float64(st.rows)*spec.Height + float64(st.rows-1)*gap
	advance := height + pl.SpacingV()
	if st.cols == 0 || width > pl.gen.field.Width() {
		return nil, advance
	}

	left := pl.CenteredLeft(width)
	bricks := make([]*Brick, 0, st.count())
	for row, cells := range st.cells {
		for col, on := range cells {
			if !on {
				continue
			}
			x := left + float64(col)*(spec.Width+gap)
			y := pl.Top + float64(row)*(spec.Height+gap)
			bricks = append(bricks, pl.Brick(x, y, t, pl.PickColor(palette)))
		}
	}
	return bricks, advance
}
