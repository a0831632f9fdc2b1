// Package display implements the HUD panels drawn beside the field: score,
// level, cleared lines and the next-shape preview.
//
// A panel that receives a new value cross-fades from the old text to the new
// one and briefly jitters its glyphs. Both effects are ordinary animations on
// the HUD's own manager.
package display

import (
	"math"
	"strconv"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
)

// Display is one text panel.
type Display struct {
	id     entity.ID
	kind   render.DisplayKind
	pos    geom.Vec
	size   geom.Vec
	text   string
	prev   string
	color  core.Color
	visual anim.Visual
}

func newDisplay(kind render.DisplayKind, pos, size geom.Vec) *Display {
	return &Display{kind: kind, pos: pos, size: size, color: core.ColorWhite, visual: anim.NewVisual()}
}

func (d *Display) ID() entity.ID               { return d.id }
func (d *Display) Visual() *anim.Visual        { return &d.visual }
func (d *Display) Kind() render.DisplayKind    { return d.kind }
func (d *Display) Text() string                { return d.text }
func (d *Display) Previous() string            { return d.prev }
func (d *Display) Size() geom.Vec              { return d.size }
func (d *Display) Vertices() []geom.Vec        { return geom.NewRect(0, 0, d.size.X, d.size.Y).Corners() }
func (d *Display) LocalTransform() geom.Transform {
	return geom.Translation(d.pos.Add(d.visual.Offset()))
}

// set replaces the text. It reports whether the text changed; the first
// value a display receives is not considered a change.
func (d *Display) set(text string) bool {
	if text == d.text {
		return false
	}
	first := d.text == ""
	d.prev, d.text = d.text, text
	return !first
}

func (d *Display) frame() geom.Rect {
	return geom.NewRect(0, 0, d.size.X, d.size.Y)
}

// draw renders the panel frame, its header sprite and the text. phase drives
// the glyph jitter.
func (d *Display) draw(r render.Renderer, a render.Assets, global geom.Transform, cell float64, phase uint64) {
	r.DrawRect(d.frame(), global, core.ColorGray)
	header := global.Combine(geom.Translation(geom.V(cell, cell)))
	r.DrawSprite(a.DisplaySprite(d.kind), header, d.visual.Opacity())

	origin := global.Combine(geom.Translation(geom.V(cell, 2*cell)))
	t := d.visual.Transition()
	if t < 1 && d.prev != "" {
		drawGlyphs(r, a.GlyphMetrics(), d.prev, origin, (1-t)*d.visual.Opacity(), d.color, d.visual.Noise(), phase)
		drawGlyphs(r, a.GlyphMetrics(), d.text, origin, t*d.visual.Opacity(), d.color, d.visual.Noise(), phase+7)
		return
	}
	drawGlyphs(r, a.GlyphMetrics(), d.text, origin, d.visual.Opacity(), d.color, d.visual.Noise(), phase)
}

// drawGlyphs writes text at origin. Without noise it is one call; with noise
// every glyph is shifted by its own deterministic jitter.
func drawGlyphs(r render.Renderer, g render.GlyphMetrics, text string, origin geom.Transform, opacity float64, c core.Color, noise float64, phase uint64) {
	if noise <= geom.Epsilon {
		r.DrawText(text, origin, opacity, c)
		return
	}
	for i, ch := range []rune(text) {
		r.DrawText(string(ch), origin.Combine(geom.Translation(jitter(i, phase, noise).Add(geom.V(g.TextWidth(i), 0)))), opacity, c)
	}
}

func jitter(i int, phase uint64, amp float64) geom.Vec {
	p := float64(phase)
	return geom.V(
		amp*math.Sin(p*1.7+float64(i)*2.3),
		amp*math.Cos(p*1.3+float64(i)*1.1),
	)
}

func itoa(n int) string { return strconv.Itoa(n) }
