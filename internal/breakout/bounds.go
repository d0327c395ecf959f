package breakout

import "github.com/vovakirdan/brick-breaker/internal/config"

// Bounds is the playfield rectangle. Screen y grows downward.
type Bounds struct {
	XMin, YMin float64
	XMax, YMax float64
}

// FieldFromConfig builds playfield bounds anchored at the origin.
func FieldFromConfig(cfg config.PlayfieldConfig) Bounds {
	return Bounds{XMax: cfg.Width, YMax: cfg.Height}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }
