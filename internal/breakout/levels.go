package breakout

import (
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

// LevelSpec is the static description of one level.
type LevelSpec struct {
	Number     int
	Name       string
	Background string  // Background image reference, shown by name in the host
	Palette    []Color // Colors bricks are drawn from
}

// LevelTable is the read-only table of levels, keyed by 1-based number.
type LevelTable struct {
	specs []LevelSpec
}

// NewLevelTable converts validated rows into level specs.
// An unknown color name is a configuration error and panics.
func NewLevelTable(rows []config.LevelRow) *LevelTable {
	if len(rows) == 0 {
		panic("breakout: empty level table")
	}
	t := &LevelTable{specs: make([]LevelSpec, len(rows))}
	for i, row := range rows {
		if row.Number != i+1 {
			panic(fmt.Sprintf("breakout: level table out of order at row %d (number %d)", i+1, row.Number))
		}
		names := row.Colors()
		if len(names) == 0 {
			panic(fmt.Sprintf("breakout: level %d has an empty palette", row.Number))
		}
		palette := make([]Color, len(names))
		for j, name := range names {
			palette[j] = MustParseColor(name)
		}
		t.specs[i] = LevelSpec{
			Number:     row.Number,
			Name:       row.Name,
			Background: row.Background,
			Palette:    palette,
		}
	}
	return t
}

// DefaultLevelTable returns the embedded ten-level table.
func DefaultLevelTable() *LevelTable {
	rows, err := config.LoadLevels("")
	if err != nil {
		panic(fmt.Sprintf("breakout: embedded level table: %v", err))
	}
	return NewLevelTable(rows)
}

// LoadLevelTable reads a level table file, or the embedded one when path is
// empty. Unknown palette colors are reported as errors instead of panics.
func LoadLevelTable(path string) (*LevelTable, error) {
	rows, err := config.LoadLevels(path)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for _, name := range row.Colors() {
			if _, ok := ParseColor(name); !ok {
				return nil, fmt.Errorf("level %d: unknown color %q", row.Number, name)
			}
		}
	}
	return NewLevelTable(rows), nil
}

// Len returns the number of levels; the last one is the final level.
func (t *LevelTable) Len() int {
	return len(t.specs)
}

// Spec returns the level with the given number. Undefined numbers panic.
func (t *LevelTable) Spec(n int) LevelSpec {
	if n < 1 || n > len(t.specs) {
		panic(fmt.Sprintf("breakout: undefined level %d (table has %d)", n, len(t.specs)))
	}
	return t.specs[n-1]
}

// Specs returns all levels in order.
func (t *LevelTable) Specs() []LevelSpec {
	out := make([]LevelSpec, len(t.specs))
	copy(out, t.specs)
	return out
}
