package core

// Color represents a foreground color for a screen cell.
// The terminal layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrightRed
	ColorBrightBlue
)

var colorNames = [...]string{
	ColorDefault:    "default",
	ColorRed:        "red",
	ColorGreen:      "green",
	ColorYellow:     "yellow",
	ColorBlue:       "blue",
	ColorMagenta:    "magenta",
	ColorCyan:       "cyan",
	ColorWhite:      "white",
	ColorOrange:     "orange",
	ColorGray:       "gray",
	ColorDarkGray:   "darkgray",
	ColorBrightRed:  "brightred",
	ColorBrightBlue: "brightblue",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
