package render

import (
	"image"

	"github.com/vovakirdan/blockfall/internal/core"
)

// LightSteps is how many light directions block textures are cached for.
const LightSteps = 8

// Sprite is a backend-neutral image description. Backends without real
// textures (the terminal, tests) draw from it directly.
type Sprite struct {
	W, H    int
	Color   core.Color
	Light   int // quantized light sector, -1 for unlit sprites
	Display DisplayKind
	Panel   bool
}

// Bounds returns the sprite's source rectangle.
func (s Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

// FlatAssets serves Sprite values for every request.
type FlatAssets struct {
	CellSize int
	Panel    image.Point // size of a HUD panel sprite
	Glyph    GlyphMetrics
}

// NewFlatAssets sizes blocks to cellSize and panels to hold a few glyphs.
func NewFlatAssets(cellSize int, glyph GlyphMetrics) *FlatAssets {
	return &FlatAssets{
		CellSize: cellSize,
		Panel:    image.Pt(cellSize*5, cellSize*3),
		Glyph:    glyph,
	}
}

func (a *FlatAssets) BlockSprite(c core.Color, lightAngle float64) Image {
	return Sprite{
		W:     a.CellSize,
		H:     a.CellSize,
		Color: c,
		Light: QuantizeAngle(lightAngle, LightSteps),
	}
}

func (a *FlatAssets) DisplaySprite(kind DisplayKind) Image {
	return Sprite{W: a.Panel.X, H: a.Panel.Y, Light: -1, Display: kind, Panel: true}
}

func (a *FlatAssets) GlyphMetrics() GlyphMetrics { return a.Glyph }
