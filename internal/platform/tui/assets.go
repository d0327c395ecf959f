package tui

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Sprite is how one entity is drawn: a glyph repeated over its cells.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// BrickKey identifies a brick sprite.
type BrickKey struct {
	Type      breakout.BrickType
	HitPoints int
	Color     breakout.Color
}

// Shade glyphs from full health down to one hit point left.
var damageGlyphs = []rune{'█', '▓', '▒', '░'}

var brickColors = map[breakout.Color]core.Color{
	breakout.ColorBlue:   core.ColorBlue,
	breakout.ColorGreen:  core.ColorGreen,
	breakout.ColorYellow: core.ColorYellow,
	breakout.ColorOrange: core.ColorOrange,
	breakout.ColorRed:    core.ColorRed,
	breakout.ColorPurple: core.ColorMagenta,
}

var bonusSprites = map[breakout.BonusKind]Sprite{
	breakout.BonusExtraLife:     {Glyph: '♥', Color: core.ColorBrightRed},
	breakout.BonusExtraBall:     {Glyph: 'o', Color: core.ColorCyan},
	breakout.BonusMultiplyBalls: {Glyph: '✶', Color: core.ColorYellow},
	breakout.BonusWidenPaddle:   {Glyph: '↔', Color: core.ColorGreen},
}

// Assets holds every sprite the view draws. It is built once and checked
// for completeness so drawing never has to handle a missing sprite.
type Assets struct {
	bricks  map[BrickKey]Sprite
	bonuses map[breakout.BonusKind]Sprite

	Ball         Sprite
	Paddle       Sprite
	PaddleWide   Sprite
	Border       core.Color
	HUD          core.Color
	Notice       core.Color
	LaunchPrompt core.Color
}

// NewAssets builds the sprite registry for the given brick table.
func NewAssets(specs breakout.BrickSpecs) (*Assets, error) {
	a := &Assets{
		bricks:       make(map[BrickKey]Sprite),
		bonuses:      make(map[breakout.BonusKind]Sprite, len(bonusSprites)),
		Ball:         Sprite{Glyph: '●', Color: core.ColorWhite},
		Paddle:       Sprite{Glyph: '▀', Color: core.ColorWhite},
		PaddleWide:   Sprite{Glyph: '▀', Color: core.ColorBrightBlue},
		Border:       core.ColorGray,
		HUD:          core.ColorWhite,
		Notice:       core.ColorYellow,
		LaunchPrompt: core.ColorDarkGray,
	}

	for _, t := range breakout.BrickTypes() {
		full := specs.Of(t).HitPoints
		for hp := 1; hp <= full; hp++ {
			for _, c := range breakout.AllColors() {
				a.bricks[BrickKey{Type: t, HitPoints: hp, Color: c}] = Sprite{
					Glyph: damageGlyph(hp, full),
					Color: brickColors[c],
				}
			}
		}
	}
	for kind, s := range bonusSprites {
		a.bonuses[kind] = s
	}

	if err := a.validate(specs); err != nil {
		return nil, err
	}
	return a, nil
}

// damageGlyph shades a brick by lost hit points.
func damageGlyph(hp, full int) rune {
	lost := full - hp
	return damageGlyphs[core.Clamp(lost, 0, len(damageGlyphs)-1)]
}

func (a *Assets) validate(specs breakout.BrickSpecs) error {
	var errs []error
	for _, t := range breakout.BrickTypes() {
		for hp := 1; hp <= specs.Of(t).HitPoints; hp++ {
			for _, c := range breakout.AllColors() {
				s, ok := a.bricks[BrickKey{Type: t, HitPoints: hp, Color: c}]
				if !ok {
					errs = append(errs, fmt.Errorf("missing brick sprite %s/%d/%s", t, hp, c))
					continue
				}
				if s.Color == core.ColorDefault {
					errs = append(errs, fmt.Errorf("brick color %s has no terminal color", c))
				}
			}
		}
	}
	for _, k := range breakout.BonusKinds() {
		if _, ok := a.bonuses[k]; !ok {
			errs = append(errs, fmt.Errorf("missing bonus sprite %s", k))
		}
	}
	return errors.Join(errs...)
}

// Brick returns the sprite for a brick.
func (a *Assets) Brick(k BrickKey) (Sprite, bool) {
	s, ok := a.bricks[k]
	return s, ok
}

// Bonus returns the sprite for a bonus kind.
func (a *Assets) Bonus(k breakout.BonusKind) (Sprite, bool) {
	s, ok := a.bonuses[k]
	return s, ok
}
