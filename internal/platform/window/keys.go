package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/input"
)

// Bindings maps each logical key to the physical keys that drive it.
type Bindings map[input.Key][]ebiten.Key

// DefaultBindings mirrors the terminal key map.
func DefaultBindings() Bindings {
	return Bindings{
		input.KeyLeft:        {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
		input.KeyRight:       {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
		input.KeyRotateLeft:  {ebiten.KeyZ},
		input.KeyRotateRight: {ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW, ebiten.KeyK},
		input.KeySoftDrop:    {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
		input.KeyHardDrop:    {ebiten.KeySpace},
		input.KeyPause:       {ebiten.KeyP, ebiten.KeyEscape},
		input.KeyRestart:     {ebiten.KeyR},
	}
}

// QuitKeys close the window.
var QuitKeys = []ebiten.Key{ebiten.KeyQ}

// Sink receives key edges.
type Sink interface {
	Press(input.Key)
	Release(input.Key)
}

// Poller turns per-frame key state into press and release edges.
type Poller struct {
	bindings Bindings
	down     map[input.Key]bool
}

// NewPoller creates a poller with every key up.
func NewPoller(b Bindings) *Poller {
	return &Poller{bindings: b, down: make(map[input.Key]bool)}
}

// Poll reads the physical keys through isDown and reports every logical key
// whose state changed since the previous poll.
func (p *Poller) Poll(isDown func(ebiten.Key) bool, sink Sink) {
	for _, k := range input.Keys {
		now := false
		for _, pk := range p.bindings[k] {
			if isDown(pk) {
				now = true
				break
			}
		}
		switch {
		case now && !p.down[k]:
			sink.Press(k)
		case !now && p.down[k]:
			sink.Release(k)
		}
		p.down[k] = now
	}
}

func anyDown(isDown func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if isDown(k) {
			return true
		}
	}
	return false
}
