package render

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// CallKind tags a recorded draw call.
type CallKind uint8

const (
	CallSprite CallKind = iota
	CallRect
	CallText
)

// Call is one recorded draw call.
type Call struct {
	Kind       CallKind
	Image      Image
	Rect       geom.Rect
	Dest       geom.Transform
	Opacity    float64
	Brightness float64
	Color      core.Color
	Text       string
}

// Recorder is a Renderer that keeps every call. Useful for tests and for
// headless runs.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) DrawSprite(img Image, dest geom.Transform, opacity float64) {
	r.Calls = append(r.Calls, Call{Kind: CallSprite, Image: img, Dest: dest, Opacity: opacity, Brightness: 1})
}

func (r *Recorder) DrawSpriteBright(img Image, dest geom.Transform, opacity, brightness float64) {
	r.Calls = append(r.Calls, Call{Kind: CallSprite, Image: img, Dest: dest, Opacity: opacity, Brightness: brightness})
}

func (r *Recorder) DrawRect(rect geom.Rect, t geom.Transform, c core.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallRect, Rect: rect, Dest: t, Color: c, Opacity: 1})
}

func (r *Recorder) DrawText(text string, dest geom.Transform, opacity float64, c core.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallText, Text: text, Dest: dest, Opacity: opacity, Color: c})
}

// Filter returns the recorded calls of kind k in order.
func (r *Recorder) Filter(k CallKind) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Filter(CallText) {
		out = append(out, c.Text)
	}
	return out
}

// Reset forgets every call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
