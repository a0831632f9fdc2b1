// Package render defines what the engine needs from a graphics backend: a
// handful of draw primitives and an asset lookup. Frontends implement both;
// the engine only ever issues calls through these interfaces.
package render

import (
	"image"
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// Image is a drawable handed out by Assets. Its bounds are in source pixels.
type Image interface {
	Bounds() image.Rectangle
}

// Renderer draws into the current frame. Every destination transform maps
// the image's source pixel space to screen space.
type Renderer interface {
	DrawSprite(img Image, dest geom.Transform, opacity float64)
	// DrawRect outlines r, given in the space t maps from. Used for frames and
	// debug overlays.
	DrawRect(r geom.Rect, t geom.Transform, c core.Color)
	DrawText(text string, dest geom.Transform, opacity float64, c core.Color)
}

// BrightRenderer is implemented by renderers that can tint sprites. Callers
// fall back to DrawSprite otherwise.
type BrightRenderer interface {
	DrawSpriteBright(img Image, dest geom.Transform, opacity, brightness float64)
}

// DrawSprite draws img with brightness when r supports it.
func DrawSprite(r Renderer, img Image, dest geom.Transform, opacity, brightness float64) {
	if br, ok := r.(BrightRenderer); ok && math.Abs(brightness-1) > geom.Epsilon {
		br.DrawSpriteBright(img, dest, opacity, brightness)
		return
	}
	r.DrawSprite(img, dest, opacity)
}

// DisplayKind names one of the HUD panels.
type DisplayKind uint8

const (
	DisplayScore DisplayKind = iota
	DisplayLevel
	DisplayLines
	DisplayNext
)

func (k DisplayKind) String() string {
	switch k {
	case DisplayScore:
		return "score"
	case DisplayLevel:
		return "level"
	case DisplayLines:
		return "lines"
	case DisplayNext:
		return "next"
	}
	return "unknown"
}

// GlyphMetrics describes the fixed-width font text is drawn with.
type GlyphMetrics struct {
	Advance float64 // horizontal step per glyph
	Height  float64 // line height
}

// TextWidth returns the width of n glyphs.
func (g GlyphMetrics) TextWidth(n int) float64 {
	return float64(n) * g.Advance
}

// Assets hands out the images the engine draws.
type Assets interface {
	// BlockSprite returns the block texture for c lit from lightAngle, the
	// direction of the light in the block's own frame.
	BlockSprite(c core.Color, lightAngle float64) Image
	DisplaySprite(kind DisplayKind) Image
	GlyphMetrics() GlyphMetrics
}

// LightAngle returns the direction from the block's center towards light,
// expressed in the block's local frame. global maps block-local pixels to the
// screen and center is the block's center in local pixels. The result is in
// [-π, π).
func LightAngle(global geom.Transform, center, light geom.Vec) float64 {
	dir := light.Sub(global.Apply(center))
	return geom.NormalizeAngle(math.Atan2(dir.Y, dir.X) - global.Angle())
}

// QuantizeAngle maps a to one of steps equal sectors, sector 0 centered on
// angle 0. Assets use it to cache a bounded set of lit textures.
func QuantizeAngle(a float64, steps int) int {
	if steps <= 1 {
		return 0
	}
	sector := 2 * math.Pi / float64(steps)
	i := int(math.Floor((a + sector/2) / sector))
	return ((i % steps) + steps) % steps
}

// SectorAngle returns the center angle of sector i out of steps.
func SectorAngle(i, steps int) float64 {
	if steps <= 1 {
		return 0
	}
	return geom.NormalizeAngle(float64(i) * 2 * math.Pi / float64(steps))
}
