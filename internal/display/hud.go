package display

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/entity"
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/render"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Panel layout in cells.
const (
	panelW     = 6
	panelH     = 4
	previewH   = 8
	previewTop = 2
)

// PanelWidth returns the pixel width of the HUD column.
func PanelWidth(cell float64) float64 { return panelW * cell }

// Config holds the HUD look.
type Config struct {
	CellSize   float64
	Ticks      int     // cross-fade duration
	Distortion float64 // initial jitter amplitude in pixels
	Light      geom.Vec
}

// ConfigFrom extracts the HUD settings from a game configuration.
func ConfigFrom(cfg config.GameConfig) Config {
	return Config{
		CellSize:   cfg.Field.CellSize,
		Ticks:      cfg.Animation.DisplayTicks,
		Distortion: cfg.Animation.Distortion,
		Light:      geom.V(cfg.Field.LightX, cfg.Field.LightY),
	}
}

// Stats is what the HUD shows.
type Stats struct {
	Score, Level, Lines int
	Next                *shapes.Type
	NextColor           core.Color
}

// HUD is the column of panels. It is itself a tree node; the panels hang
// below it.
type HUD struct {
	cfg    Config
	tree   *entity.Tree
	anims  *anim.Manager
	id     entity.ID
	origin geom.Vec
	panels []*Display
	next   *Preview
	phase  uint64
}

// NewHUD places the HUD in tree under parent with its top-left corner at
// origin.
func NewHUD(cfg Config, tree *entity.Tree, parent entity.ID, origin geom.Vec) *HUD {
	h := &HUD{cfg: cfg, tree: tree, anims: anim.NewManager(), origin: origin}
	h.id = tree.Add(h, parent)

	s := cfg.CellSize
	size := geom.V(panelW*s, panelH*s)
	for i, kind := range []render.DisplayKind{render.DisplayScore, render.DisplayLevel, render.DisplayLines} {
		d := newDisplay(kind, geom.V(0, float64(i*panelH)*s), size)
		d.id = tree.Add(d, h.id)
		h.panels = append(h.panels, d)
	}
	h.next = newPreview(geom.V(0, float64(len(h.panels)*panelH)*s), geom.V(panelW*s, previewH*s))
	h.next.id = tree.Add(h.next, h.id)
	return h
}

func (h *HUD) ID() entity.ID                  { return h.id }
func (h *HUD) LocalTransform() geom.Transform { return geom.Translation(h.origin) }

// Animations exposes the HUD's animation manager.
func (h *HUD) Animations() *anim.Manager { return h.anims }

// Display returns the text panel of kind, or nil for DisplayNext.
func (h *HUD) Display(kind render.DisplayKind) *Display {
	for _, d := range h.panels {
		if d.kind == kind {
			return d
		}
	}
	return nil
}

// Preview returns the next-shape panel.
func (h *HUD) Preview() *Preview { return h.next }

// Update pushes new values into the panels, animating those that changed.
func (h *HUD) Update(st Stats) {
	values := map[render.DisplayKind]int{
		render.DisplayScore: st.Score,
		render.DisplayLevel: st.Level,
		render.DisplayLines: st.Lines,
	}
	for _, d := range h.panels {
		if d.set(itoa(values[d.kind])) {
			h.animate(d)
		}
	}
	if h.next.set(st.Next, st.NextColor) {
		d := h.next
		d.visual.SetTransition(0)
		h.anims.Add(d, anim.SlotTransition, anim.NewTransition(h.cfg.Ticks), nil)
	}
}

func (h *HUD) animate(d *Display) {
	d.visual.SetTransition(0)
	d.visual.SetNoise(h.cfg.Distortion)
	h.anims.Add(d, anim.SlotTransition, anim.NewTransition(h.cfg.Ticks), nil)
	if h.cfg.Distortion > 0 {
		h.anims.Add(d, anim.SlotDistortion, anim.NewDistortion(h.cfg.Distortion, h.cfg.Ticks), nil)
	}
}

// Tick advances the panel animations.
func (h *HUD) Tick() {
	h.anims.Tick()
	h.phase++
}

// Perform samples the panel animations for rendering.
func (h *HUD) Perform(interpolation float64) {
	h.anims.Perform(interpolation)
}

// Draw renders every panel.
func (h *HUD) Draw(r render.Renderer, a render.Assets) {
	for _, d := range h.panels {
		d.draw(r, a, h.tree.Global(d.id), h.cfg.CellSize, h.phase)
	}
	h.next.draw(r, a, h.tree.Global(h.next.id), h.cfg)
}

// Preview shows the shape that spawns next.
type Preview struct {
	id        entity.ID
	pos, size geom.Vec
	typ       *shapes.Type
	color     core.Color
	prevTyp   *shapes.Type
	prevColor core.Color
	visual    anim.Visual
}

func newPreview(pos, size geom.Vec) *Preview {
	return &Preview{pos: pos, size: size, visual: anim.NewVisual()}
}

func (p *Preview) ID() entity.ID           { return p.id }
func (p *Preview) Visual() *anim.Visual    { return &p.visual }
func (p *Preview) Shape() *shapes.Type     { return p.typ }
func (p *Preview) Color() core.Color       { return p.color }
func (p *Preview) Vertices() []geom.Vec    { return geom.NewRect(0, 0, p.size.X, p.size.Y).Corners() }
func (p *Preview) LocalTransform() geom.Transform {
	return geom.Translation(p.pos.Add(p.visual.Offset()))
}

func (p *Preview) set(t *shapes.Type, c core.Color) bool {
	if t == p.typ && c == p.color {
		return false
	}
	first := p.typ == nil
	p.prevTyp, p.prevColor = p.typ, p.color
	p.typ, p.color = t, c
	return !first
}

func (p *Preview) draw(r render.Renderer, a render.Assets, global geom.Transform, cfg Config) {
	s := cfg.CellSize
	r.DrawRect(geom.NewRect(0, 0, p.size.X, p.size.Y), global, core.ColorGray)
	r.DrawSprite(a.DisplaySprite(render.DisplayNext), global.Combine(geom.Translation(geom.V(s, s))), p.visual.Opacity())

	t := p.visual.Transition()
	if t < 1 && p.prevTyp != nil {
		drawShape(r, a, global, p.prevTyp, p.prevColor, (1-t)*p.visual.Opacity(), cfg)
		drawShape(r, a, global, p.typ, p.color, t*p.visual.Opacity(), cfg)
		return
	}
	drawShape(r, a, global, p.typ, p.color, p.visual.Opacity(), cfg)
}

// drawShape draws t at its initial rotation centered in the preview body.
func drawShape(r render.Renderer, a render.Assets, global geom.Transform, t *shapes.Type, c core.Color, opacity float64, cfg Config) {
	if t == nil {
		return
	}
	s := cfg.CellSize
	cells := t.Cells(geom.Initial)
	minX, minY, maxX, maxY := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
	for _, p := range cells {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	w, h := float64(maxX-minX+1), float64(maxY-minY+1)
	body := geom.V((panelW-w)/2*s, (previewTop+math.Floor((previewH-previewTop-1-h)/2))*s)
	center := geom.V(s/2, s/2)
	for _, p := range cells {
		pos := body.Add(geom.V(float64(p.X-minX)*s, float64(p.Y-minY)*s))
		dest := global.Combine(geom.Translation(pos))
		r.DrawSprite(a.BlockSprite(c, render.LightAngle(dest, center, cfg.Light)), dest, opacity)
	}
}
