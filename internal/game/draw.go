package game

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
)

// frameMargin keeps the field outline clear of the outermost blocks.
const frameMargin = 2

// Draw renders the scene for a frame interpolation ticks past the last
// logic tick. It only writes animated visual channels; logic state is left
// untouched.
func (g *Game) Draw(r render.Renderer, a render.Assets, interpolation float64) {
	if g.state == StatePaused {
		// Animations are frozen while paused, so sample them at the tick.
		interpolation = 0
	}
	g.field.Perform(interpolation)
	g.hud.Perform(interpolation)

	fg := g.tree.Global(g.field.ID())
	bounds := g.field.Bounds()
	r.DrawRect(geom.NewRect(-frameMargin, -frameMargin, bounds.W()+2*frameMargin, bounds.H()+2*frameMargin), fg, core.ColorGray)

	for _, b := range g.field.Settled() {
		g.drawBlock(r, a, b)
	}
	if s := g.field.Active(); s != nil {
		for _, b := range s.Blocks() {
			g.drawBlock(r, a, b)
		}
	}
	// Breaking blocks go last so they fade over the collapsing rows.
	for _, b := range g.field.Dying() {
		g.drawBlock(r, a, b)
	}

	g.hud.Draw(r, a)

	switch g.state {
	case StatePaused:
		g.drawBanner(r, a, fg, "PAUSED")
	case StateOver:
		g.drawBanner(r, a, fg, "GAME OVER")
	}
}

func (g *Game) drawBlock(r render.Renderer, a render.Assets, b *field.Block) {
	global := g.tree.Global(b.ID())
	light := geom.V(g.cfg.Field.LightX, g.cfg.Field.LightY)
	v := b.Visual()
	img := a.BlockSprite(b.Color(), render.LightAngle(global, b.Center(), light))
	render.DrawSprite(r, img, global, v.Opacity(), v.Brightness)
}

// drawBanner centers text over the field.
func (g *Game) drawBanner(r render.Renderer, a render.Assets, fieldGlobal geom.Transform, text string) {
	bounds := g.field.Bounds()
	gm := a.GlyphMetrics()
	w := gm.TextWidth(len([]rune(text)))
	pos := geom.V((bounds.W()-w)/2, (bounds.H()-gm.Height)/2)
	r.DrawText(text, fieldGlobal.Combine(geom.Translation(pos)), 1, core.ColorWhite)
}
