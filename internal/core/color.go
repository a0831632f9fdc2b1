package core

import "image/color"

// Color identifies a block or text color. Frontends map it to their own
// palette: ANSI 256-color codes in the terminal, RGB in the window.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorPink
	ColorLime
	ColorTeal
	ColorGold
	ColorGray
	ColorWhite
)

// BlockColors is the palette shapes draw from when colors are randomized.
var BlockColors = []Color{
	ColorCyan, ColorYellow, ColorPurple, ColorGreen, ColorRed, ColorBlue,
	ColorOrange, ColorPink, ColorLime, ColorTeal, ColorGold,
}

var palette = map[Color]struct {
	ansi string
	rgb  color.RGBA
}{
	ColorDefault: {"7", color.RGBA{200, 200, 200, 255}},
	ColorCyan:    {"51", color.RGBA{0, 220, 230, 255}},
	ColorYellow:  {"226", color.RGBA{240, 220, 0, 255}},
	ColorPurple:  {"129", color.RGBA{160, 40, 220, 255}},
	ColorGreen:   {"46", color.RGBA{40, 210, 70, 255}},
	ColorRed:     {"196", color.RGBA{230, 40, 40, 255}},
	ColorBlue:    {"27", color.RGBA{30, 90, 240, 255}},
	ColorOrange:  {"208", color.RGBA{250, 140, 20, 255}},
	ColorPink:    {"213", color.RGBA{250, 130, 220, 255}},
	ColorLime:    {"154", color.RGBA{170, 240, 60, 255}},
	ColorTeal:    {"30", color.RGBA{20, 150, 140, 255}},
	ColorGold:    {"178", color.RGBA{215, 170, 40, 255}},
	ColorGray:    {"245", color.RGBA{128, 128, 128, 255}},
	ColorWhite:   {"15", color.RGBA{255, 255, 255, 255}},
}

// ANSI returns the 256-color terminal code for c.
func (c Color) ANSI() string {
	if p, ok := palette[c]; ok {
		return p.ansi
	}
	return palette[ColorDefault].ansi
}

// RGBA returns the window-frontend color for c.
func (c Color) RGBA() color.RGBA {
	if p, ok := palette[c]; ok {
		return p.rgb
	}
	return palette[ColorDefault].rgb
}

// String returns a human-readable color name.
func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	case ColorLime:
		return "lime"
	case ColorTeal:
		return "teal"
	case ColorGold:
		return "gold"
	case ColorGray:
		return "gray"
	case ColorWhite:
		return "white"
	default:
		return "default"
	}
}
