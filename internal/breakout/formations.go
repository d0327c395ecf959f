package breakout

import (
	"fmt"
	"sort"
	"sync"
)

// Formation is a reusable brick pattern the generator stacks into a level.
type Formation struct {
	Name      string
	MinLevel  int  // First level the formation can be picked on
	FinalOnly bool // Only used on the final level, never picked at random

	// Build places the formation with its top edge at pl.Top and returns the
	// bricks plus the vertical distance to the next formation.
	Build func(pl *Placement) (bricks []*Brick, advance float64)
}

// FormationRegistry holds formations keyed by name.
type FormationRegistry struct {
	mu         sync.RWMutex
	formations map[string]Formation
}

// NewFormationRegistry creates an empty registry.
func NewFormationRegistry() *FormationRegistry {
	return &FormationRegistry{formations: make(map[string]Formation)}
}

// Register adds a formation. Panics if the name is already taken.
func (r *FormationRegistry) Register(f Formation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formations[f.Name]; exists {
		panic(fmt.Sprintf("breakout: formation %q already registered", f.Name))
	}
	if f.Build == nil {
		panic(fmt.Sprintf("breakout: formation %q has no builder", f.Name))
	}
	r.formations[f.Name] = f
}

// Lookup returns a formation by name.
func (r *FormationRegistry) Lookup(name string) (Formation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formations[name]
	return f, ok
}

// Available returns the formations that may be picked at random on a level,
// sorted by name so seeded generation is reproducible.
func (r *FormationRegistry) Available(level int) []Formation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Formation, 0, len(r.formations))
	for _, f := range r.formations {
		if f.FinalOnly || level < f.MinLevel {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all registered names, sorted.
func (r *FormationRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formations))
	for name := range r.formations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultFormations = NewFormationRegistry()

// DefaultFormations returns the registry holding the built-in formations.
func DefaultFormations() *FormationRegistry {
	return defaultFormations
}

// Unlock levels for the stencil formations.
const (
	arcadeMinLevel = 4
	heartMinLevel  = 6
	mazeMinLevel   = 8
)

// bossFormation is the name of the final-level stencil.
const bossFormation = "boss"

func init() {
	defaultFormations.Register(Formation{Name: "uniform", MinLevel: 1, Build: buildUniform})
	defaultFormations.Register(Formation{Name: "double", MinLevel: 1, Build: buildDouble})
	defaultFormations.Register(Formation{Name: "alternating", MinLevel: 1, Build: buildAlternating})
	defaultFormations.Register(Formation{Name: "triangle", MinLevel: 1, Build: buildTriangle})
	defaultFormations.Register(Formation{Name: "zigzag", MinLevel: 1, Build: buildZigzag})
	defaultFormations.Register(Formation{Name: "random", MinLevel: 1, Build: buildRandom})

	defaultFormations.Register(Formation{
		Name:     "arcade",
		MinLevel: arcadeMinLevel,
		Build: func(pl *Placement) ([]*Brick, float64) {
			return pl.Stencil(invaderStencil, BrickSmall, pl.Palette)
		},
	})
	defaultFormations.Register(Formation{
		Name:     "heart",
		MinLevel: heartMinLevel,
		Build: func(pl *Placement) ([]*Brick, float64) {
			return pl.Stencil(heartStencil, BrickSmall, warmColors(pl.Palette))
		},
	})
	defaultFormations.Register(Formation{
		Name:     "maze",
		MinLevel: mazeMinLevel,
		Build: func(pl *Placement) ([]*Brick, float64) {
			return pl.Stencil(mazeStencil, BrickSmall, pl.Palette)
		},
	})
	defaultFormations.Register(Formation{
		Name:      bossFormation,
		FinalOnly: true,
		Build: func(pl *Placement) ([]*Brick, float64) {
			return pl.Stencil(bossStencil, BrickStandard, pl.Palette)
		},
	})
}

// warmColors filters a palette down to reds and oranges, falling back to red.
func warmColors(palette []Color) []Color {
	var out []Color
	for _, c := range palette {
		if c == ColorRed || c == ColorOrange {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return []Color{ColorRed}
	}
	return out
}

// buildUniform is one full row of a single type.
func buildUniform(pl *Placement) ([]*Brick, float64) {
	t := pl.PickType()
	h := pl.Spec(t).Height
	return pl.Row(pl.Top, t), h + pl.SpacingV()
}

// buildDouble is two rows of the same type, half-spaced.
func buildDouble(pl *Placement) ([]*Brick, float64) {
	t := pl.PickType()
	h := pl.Spec(t).Height
	first := pl.Row(pl.Top, t)
	second := pl.Row(pl.Top+h+pl.SpacingV()/2, t)
	return append(first, second...), 2*h + pl.SpacingV()/2 + pl.SpacingV()
}

// buildAlternating alternates two distinct types along one row.
func buildAlternating(pl *Placement) ([]*Brick, float64) {
	a := pl.PickType()
	b := pl.pickTypeExcept(a)
	types := []BrickType{a, b}

	avg := (pl.Spec(a).Width + pl.Spec(b).Width) / 2
	n := pl.FitCount(avg)
	seq := make([]BrickType, n)
	for i := range seq {
		seq[i] = types[i%2]
	}
	h := max(pl.Spec(a).Height, pl.Spec(b).Height)
	return pl.Sequence(pl.Top, seq, 1), h + pl.SpacingV()
}

// buildTriangle thins a row out toward its edges, less so at higher
// difficulty. At least three slots are used when they fit, always an odd count.
func buildTriangle(pl *Placement) ([]*Brick, float64) {
	falloff := 0.7 * (1 - 0.5*min(1, pl.Sturdiness()))
	t := pl.PickType()
	spec := pl.Spec(t)
	advance := spec.Height + pl.SpacingV()

	nMax := pl.FitCount(spec.Width)
	used := min(max(3, int(float64(nMax)*0.7)), nMax)
	if used%2 == 0 {
		used--
	}
	if used <= 0 {
		return nil, advance
	}

	left := pl.CenteredLeft(float64(used)*spec.Width + float64(used-1)*pl.SpacingH())
	center := used / 2
	half := float64(used) / 2

	var bricks []*Brick
	for col := range used {
		dist := col - center
		if dist < 0 {
			dist = -dist
		}
		chance := 1.0 - (float64(dist)/half)*falloff
		if pl.Float64() >= chance {
			continue
		}
		x := left + float64(col)*(spec.Width+pl.SpacingH())
		bricks = append(bricks, pl.Brick(x, pl.Top, t, pl.PickColor(pl.Palette)))
	}
	return bricks, advance
}

// buildZigzag drops every other brick by half its height.
func buildZigzag(pl *Placement) ([]*Brick, float64) {
	t := pl.PickType()
	spec := pl.Spec(t)
	n := pl.FitCount(spec.Width)
	left := pl.CenteredLeft(float64(n)*spec.Width + float64(n-1)*pl.SpacingH())

	bricks := make([]*Brick, 0, n)
	for col := range n {
		top := pl.Top
		if col%2 == 0 {
			top += spec.Height / 2
		}
		x := left + float64(col)*(spec.Width+pl.SpacingH())
		bricks = append(bricks, pl.Brick(x, top, t, pl.PickColor(pl.Palette)))
	}
	return bricks, spec.Height*1.5 + pl.SpacingV()
}

// buildRandom picks a type per slot. About one slot in five stays empty on
// the first level, fewer as difficulty grows.
func buildRandom(pl *Placement) ([]*Brick, float64) {
	fill := 0.8 + 0.2*min(1, pl.Sturdiness())
	all := BrickTypes()
	avg, tallest := 0.0, 0.0
	for _, t := range all {
		avg += pl.Spec(t).Width
		tallest = max(tallest, pl.Spec(t).Height)
	}
	avg /= float64(len(all))

	seq := make([]BrickType, pl.FitCount(avg))
	for i := range seq {
		seq[i] = pl.PickType()
	}
	return pl.Sequence(pl.Top, seq, fill), tallest + pl.SpacingV()
}
