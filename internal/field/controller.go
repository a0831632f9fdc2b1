package field

import (
	"github.com/vovakirdan/blockfall/internal/geom"
	"github.com/vovakirdan/blockfall/internal/input"
)

// Controller maps input snapshots onto field actions. It is an
// input.Listener.
type Controller struct {
	field *Field
}

// NewController creates a controller driving f.
func NewController(f *Field) *Controller {
	return &Controller{field: f}
}

// SetField points the controller at another field, e.g. after a restart.
func (c *Controller) SetField(f *Field) {
	c.field = f
}

// OnInput applies one tick of input.
func (c *Controller) OnInput(s input.Snapshot) {
	f := c.field
	if f == nil {
		return
	}

	if s.Triggered(input.KeyLeft) {
		f.Shift(-1)
	}
	if s.Triggered(input.KeyRight) {
		f.Shift(1)
	}
	if s.Pressed(input.KeyRotateLeft) {
		f.Rotate(geom.Left)
	}
	if s.Pressed(input.KeyRotateRight) {
		f.Rotate(geom.Right)
	}

	// Soft drop follows the key level, not its edges, so a press or release
	// the field refused while locked takes effect on the next shape.
	switch down := s.Down(input.KeySoftDrop); {
	case down && f.Forced() == DropNormal:
		f.SetSoftDrop(true)
	case !down && f.Forced() == DropSoft:
		f.SetSoftDrop(false)
	}

	if s.Pressed(input.KeyHardDrop) {
		f.HardDrop()
	}
}
