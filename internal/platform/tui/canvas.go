package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
)

// Canvas is a render.Renderer that rasterizes onto a core.Screen. A tile
// covers two columns and one row, which keeps blocks roughly square in a
// typical terminal font.
type Canvas struct {
	screen *core.Screen
	colW   float64
	rowH   float64
}

// NewCanvas creates a canvas for tiles of cellSize pixels.
func NewCanvas(screen *core.Screen, cellSize float64) *Canvas {
	return &Canvas{screen: screen, colW: cellSize / 2, rowH: cellSize}
}

// Assets returns the sprite set the canvas knows how to draw.
func (c *Canvas) Assets() *render.FlatAssets {
	return render.NewFlatAssets(int(c.rowH), render.GlyphMetrics{Advance: c.colW, Height: c.rowH})
}

// Columns and Rows return the character size needed for a scene of the given
// pixel size.
func (c *Canvas) Columns(width float64) int { return int(math.Ceil(width / c.colW)) }
func (c *Canvas) Rows(height float64) int   { return int(math.Ceil(height / c.rowH)) }

// DrawSprite paints a block as two shaded characters at the cell under the
// sprite's center, or a panel header as its label.
func (c *Canvas) DrawSprite(img render.Image, dest geom.Transform, opacity float64) {
	c.drawSprite(img, dest, opacity, 1)
}

// DrawSpriteBright paints like DrawSprite; a strong flash turns the block
// white.
func (c *Canvas) DrawSpriteBright(img render.Image, dest geom.Transform, opacity, brightness float64) {
	c.drawSprite(img, dest, opacity, brightness)
}

func (c *Canvas) drawSprite(img render.Image, dest geom.Transform, opacity, brightness float64) {
	s, ok := img.(render.Sprite)
	if !ok {
		return
	}
	if s.Panel {
		c.DrawText(strings.ToUpper(s.Display.String()), dest, opacity, core.ColorGray)
		return
	}

	b := img.Bounds()
	center := dest.Apply(geom.V(float64(b.Dx())/2, float64(b.Dy())/2))
	shade := shadeFor(opacity * math.Min(1, dest.Scale()))
	if shade == 0 {
		return
	}
	col := int(math.Floor(center.X/c.colW)) - 1
	row := int(math.Floor(center.Y / c.rowH))
	color := s.Color
	if brightness > 1.3 {
		color = core.ColorWhite
	}
	c.screen.SetCell(col, row, core.Cell{Rune: shade, Color: color})
	c.screen.SetCell(col+1, row, core.Cell{Rune: shade, Color: color})
}

func shadeFor(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.45:
		return '▓'
	case alpha >= 0.15:
		return '░'
	}
	return 0
}

// DrawRect outlines the character cells r covers after t.
func (c *Canvas) DrawRect(r geom.Rect, t geom.Transform, color core.Color) {
	b := geom.Bounds(t.ApplyAll(r.Corners()))
	col0 := int(math.Floor(b.Min.X/c.colW + geom.Epsilon))
	row0 := int(math.Floor(b.Min.Y/c.rowH + geom.Epsilon))
	col1 := int(math.Ceil(b.Max.X/c.colW-geom.Epsilon)) - 1
	row1 := int(math.Ceil(b.Max.Y/c.rowH-geom.Epsilon)) - 1
	c.screen.DrawBox(col0, row0, col1-col0+1, row1-row0+1, color)
}

// DrawText writes text at the cell nearest to dest's origin. Faint text is
// skipped so a cross-fade flips from old to new content halfway through.
func (c *Canvas) DrawText(text string, dest geom.Transform, opacity float64, color core.Color) {
	if opacity < 0.5 {
		return
	}
	p := dest.Offset()
	col := int(math.Floor(p.X/c.colW + 0.5))
	row := int(math.Floor(p.Y/c.rowH + 0.5))
	c.screen.DrawText(col, row, text, color)
}
