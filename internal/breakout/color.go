package breakout

import "fmt"

// Color is the cosmetic color of a brick, drawn from the level palette.
type Color int

const (
	ColorBlue Color = iota
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorPurple
	colorCount
)

var colorNames = [colorCount]string{
	ColorBlue:   "blue",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorOrange: "orange",
	ColorRed:    "red",
	ColorPurple: "purple",
}

// AllColors returns every brick color in declaration order.
func AllColors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

func (c Color) String() string {
	if c < 0 || c >= colorCount {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor looks up a color by its lowercase name.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// MustParseColor is ParseColor for static tables. An unknown name is a
// configuration error and panics.
func MustParseColor(name string) Color {
	c, ok := ParseColor(name)
	if !ok {
		panic(fmt.Sprintf("breakout: unknown color %q", name))
	}
	return c
}
