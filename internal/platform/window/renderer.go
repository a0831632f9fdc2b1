package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
)

// maxTextCache bounds the rendered-string cache; HUD values change slowly.
const maxTextCache = 256

// Renderer draws onto the current frame's screen image.
type Renderer struct {
	screen *ebiten.Image
	texts  map[string]*ebiten.Image
}

// NewRenderer creates a renderer. SetTarget must be called every frame.
func NewRenderer() *Renderer {
	return &Renderer{texts: make(map[string]*ebiten.Image)}
}

// SetTarget points the renderer at the frame being drawn.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) DrawSprite(img render.Image, dest geom.Transform, opacity float64) {
	r.DrawSpriteBright(img, dest, opacity, 1)
}

func (r *Renderer) DrawSpriteBright(img render.Image, dest geom.Transform, opacity, brightness float64) {
	ei, ok := img.(*ebiten.Image)
	if !ok || r.screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(dest)
	op.ColorScale.Scale(float32(brightness), float32(brightness), float32(brightness), 1)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(ei, op)
}

func (r *Renderer) DrawRect(rect geom.Rect, t geom.Transform, c core.Color) {
	if r.screen == nil {
		return
	}
	pts := t.ApplyAll(rect.Corners())
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(r.screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, c.RGBA(), false)
	}
}

func (r *Renderer) DrawText(text string, dest geom.Transform, opacity float64, c core.Color) {
	if r.screen == nil || text == "" {
		return
	}
	img, ok := r.texts[text]
	if !ok {
		if len(r.texts) >= maxTextCache {
			for k, v := range r.texts {
				v.Deallocate()
				delete(r.texts, k)
			}
		}
		img = ebiten.NewImage(len([]rune(text))*glyphW, glyphH)
		ebitenutil.DebugPrint(img, text)
		r.texts[text] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(dest)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.ColorScale.ScaleAlpha(float32(opacity))
	r.screen.DrawImage(img, op)
}

// GeoM converts a transform into Ebitengine's affine matrix.
func GeoM(t geom.Transform) ebiten.GeoM {
	a, b, c, d, tx, ty := t.Matrix()
	var m ebiten.GeoM
	m.SetElement(0, 0, a)
	m.SetElement(0, 1, b)
	m.SetElement(0, 2, tx)
	m.SetElement(1, 0, c)
	m.SetElement(1, 1, d)
	m.SetElement(1, 2, ty)
	return m
}
