package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
)

func newTestCanvas() (*core.Screen, *Canvas) {
	s := core.NewScreen(40, 24)
	return s, NewCanvas(s, 24)
}

func TestCanvasBlock(t *testing.T) {
	tests := []struct {
		name       string
		opacity    float64
		brightness float64
		want       core.Cell
	}{
		{"opaque", 1, 1, core.Cell{Rune: '█', Color: core.ColorRed}},
		{"half faded", 0.5, 1, core.Cell{Rune: '▓', Color: core.ColorRed}},
		{"almost gone", 0.2, 1, core.Cell{Rune: '░', Color: core.ColorRed}},
		{"flashing", 1, 1.5, core.Cell{Rune: '█', Color: core.ColorWhite}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := newTestCanvas()
			img := render.Sprite{W: 24, H: 24, Color: core.ColorRed}
			render.DrawSprite(c, img, geom.Translation(geom.V(24, 24)), tt.opacity, tt.brightness)
			assert.Equal(t, tt.want, s.GetCell(2, 1))
			assert.Equal(t, tt.want, s.GetCell(3, 1))
			assert.Equal(t, ' ', s.Get(4, 1))
		})
	}
}

func TestCanvasSkipsInvisible(t *testing.T) {
	s, c := newTestCanvas()
	img := render.Sprite{W: 24, H: 24, Color: core.ColorRed}
	c.DrawSprite(img, geom.Translation(geom.V(24, 24)), 0.05)
	assert.Equal(t, ' ', s.Get(2, 1))

	// A block shrunk to nothing by its break animation disappears too.
	shrunk := geom.Translation(geom.V(24, 24)).Combine(geom.ScaleAround(0.1, geom.V(12, 12)))
	c.DrawSprite(img, shrunk, 1)
	assert.Equal(t, ' ', s.Get(2, 1))
}

func TestCanvasFrameEnclosesField(t *testing.T) {
	s, c := newTestCanvas()
	// A 10x20 field at (24, 24) outlined two pixels outside its edge.
	c.DrawRect(geom.NewRect(-2, -2, 244, 484), geom.Translation(geom.V(24, 24)), core.ColorGray)

	assert.Equal(t, '┌', s.Get(1, 0))
	assert.Equal(t, '┐', s.Get(22, 0))
	assert.Equal(t, '└', s.Get(1, 21))
	assert.Equal(t, '┘', s.Get(22, 21))
	assert.Equal(t, ' ', s.Get(2, 1), "first tile stays clear")
	assert.Equal(t, ' ', s.Get(21, 20), "last tile stays clear")
}

func TestCanvasText(t *testing.T) {
	s, c := newTestCanvas()
	c.DrawText("HI", geom.Translation(geom.V(36, 48)), 1, core.ColorGold)
	assert.Equal(t, core.Cell{Rune: 'H', Color: core.ColorGold}, s.GetCell(3, 2))
	assert.Equal(t, 'I', s.Get(4, 2))

	c.DrawText("NO", geom.Translation(geom.V(0, 0)), 0.4, core.ColorGold)
	assert.Equal(t, ' ', s.Get(0, 0), "faded text is not drawn")
}

func TestCanvasPanelHeader(t *testing.T) {
	s, c := newTestCanvas()
	a := c.Assets()
	c.DrawSprite(a.DisplaySprite(render.DisplayLevel), geom.Translation(geom.V(24, 24)), 1)
	assert.Equal(t, "LEVEL", s.Row(1)[2:7])
	assert.Equal(t, 12.0, a.GlyphMetrics().Advance)
}

func TestCanvasSize(t *testing.T) {
	_, c := newTestCanvas()
	assert.Equal(t, 38, c.Columns(456))
	assert.Equal(t, 22, c.Rows(528))
}
