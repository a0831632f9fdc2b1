// Package window is the desktop frontend: an Ebitengine game that polls the
// keyboard into a session, advances its loop every frame and draws with GPU
// sprites.
package window

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/render"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

type blockKey struct {
	color  core.Color
	sector int
}

// Assets generates block textures per color and light sector on first use
// and caches them.
type Assets struct {
	cell   int
	blocks map[blockKey]*ebiten.Image
	panels map[render.DisplayKind]*ebiten.Image
}

// NewAssets creates an empty cache for blocks of cell pixels.
func NewAssets(cell int) *Assets {
	return &Assets{
		cell:   cell,
		blocks: make(map[blockKey]*ebiten.Image),
		panels: make(map[render.DisplayKind]*ebiten.Image),
	}
}

func (a *Assets) BlockSprite(c core.Color, lightAngle float64) render.Image {
	k := blockKey{color: c, sector: render.QuantizeAngle(lightAngle, render.LightSteps)}
	if img, ok := a.blocks[k]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(ShadeBlock(c.RGBA(), render.SectorAngle(k.sector, render.LightSteps), a.cell))
	a.blocks[k] = img
	return img
}

func (a *Assets) DisplaySprite(kind render.DisplayKind) render.Image {
	if img, ok := a.panels[kind]; ok {
		return img
	}
	label := kindLabel(kind)
	img := ebiten.NewImage(len(label)*glyphW, glyphH)
	ebitenutil.DebugPrint(img, label)
	a.panels[kind] = img
	return img
}

func (a *Assets) GlyphMetrics() render.GlyphMetrics {
	return render.GlyphMetrics{Advance: glyphW, Height: glyphH}
}

func kindLabel(kind render.DisplayKind) string {
	return strings.ToUpper(kind.String())
}

// ShadeBlock paints a beveled size×size block in base, lit from lightAngle
// (the light direction in the block's frame, y down). Bevel edges facing the
// light are brightened, the others darkened.
func ShadeBlock(base color.RGBA, lightAngle float64, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	lx, ly := math.Cos(lightAngle), math.Sin(lightAngle)
	bevel := max(1, size/6)

	for y := range size {
		for x := range size {
			// Outward normal of the nearest bevel edge, zero on the face.
			var nx, ny float64
			switch d := min(x, y, size-1-x, size-1-y); {
			case d >= bevel:
			case d == x:
				nx = -1
			case d == y:
				ny = -1
			case d == size-1-x:
				nx = 1
			default:
				ny = 1
			}
			f := 1.0
			if nx != 0 || ny != 0 {
				f += 0.45 * (nx*lx + ny*ly)
			} else {
				// Gentle gradient across the face.
				cx := (float64(x)+0.5)/float64(size)*2 - 1
				cy := (float64(y)+0.5)/float64(size)*2 - 1
				f += 0.12 * (cx*lx + cy*ly)
			}
			img.SetRGBA(x, y, color.RGBA{
				R: scaleChannel(base.R, f),
				G: scaleChannel(base.G, f),
				B: scaleChannel(base.B, f),
				A: 255,
			})
		}
	}
	return img
}

func scaleChannel(v uint8, f float64) uint8 {
	return uint8(math.Round(math.Min(255, math.Max(0, float64(v)*f))))
}
