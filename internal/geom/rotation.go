package geom

import "math"

// Rotation is a quarter-turn orientation. The four values form a cyclic group
// under Add. A Rotation is used both as an absolute orientation and, for Left
// and Right only, as a turn direction.
type Rotation uint8

const (
	Initial Rotation = iota
	Left
	UpsideDown
	Right
)

// Rotations lists every rotation in group order.
var Rotations = [4]Rotation{Initial, Left, UpsideDown, Right}

func (r Rotation) normalize() Rotation {
	return r & 3
}

// Add composes two rotations (mod 4).
func (r Rotation) Add(o Rotation) Rotation {
	return (r + o) & 3
}

// Neg returns the inverse rotation.
func (r Rotation) Neg() Rotation {
	return (4 - r.normalize()) & 3
}

// IsDirection reports whether r is a valid turn direction.
func (r Rotation) IsDirection() bool {
	return r == Left || r == Right
}

// Angle returns the canonical angle of r in [-π, π).
// Positive angles turn clockwise on screen.
func (r Rotation) Angle() float64 {
	switch r.normalize() {
	case Left:
		return -math.Pi / 2
	case UpsideDown:
		return -math.Pi
	case Right:
		return math.Pi / 2
	default:
		return 0
	}
}

// String returns a human-readable name for the rotation.
func (r Rotation) String() string {
	switch r.normalize() {
	case Initial:
		return "Initial"
	case Left:
		return "Left"
	case UpsideDown:
		return "UpsideDown"
	default:
		return "Right"
	}
}

// NormalizeAngle maps any angle into [-π, π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
