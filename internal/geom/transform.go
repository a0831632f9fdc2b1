package geom

import "math"

// Transform is a 2D similarity transform: a rotation (stored as a cos/sin
// pair, whose length carries a uniform scale) followed by a translation.
//
// The zero value is degenerate (it collapses everything to the origin); start
// from Identity.
type Transform struct {
	cos, sin float64
	tx, ty   float64
}

// Identity is the transform that leaves every point unchanged.
var Identity = Transform{cos: 1}

// Translation returns a pure translation by v.
func Translation(v Vec) Transform {
	return Transform{cos: 1, tx: v.X, ty: v.Y}
}

// RotationTransform returns a rotation by angle radians around the origin.
func RotationTransform(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{cos: cos, sin: sin}
}

// QuarterTurn returns an exact rotation transform for r.
func QuarterTurn(r Rotation) Transform {
	switch r.normalize() {
	case Right:
		return Transform{cos: 0, sin: 1}
	case UpsideDown:
		return Transform{cos: -1, sin: 0}
	case Left:
		return Transform{cos: 0, sin: -1}
	default:
		return Identity
	}
}

// RotationAround returns a rotation by angle radians around pivot.
func RotationAround(angle float64, pivot Vec) Transform {
	return Translation(pivot).Combine(RotationTransform(angle)).Combine(Translation(pivot.Neg()))
}

// ScaleAround returns a uniform scale by s around pivot.
func ScaleAround(s float64, pivot Vec) Transform {
	return Translation(pivot).Combine(Identity.Scaled(s)).Combine(Translation(pivot.Neg()))
}

// Scaled returns t with its linear part multiplied by s.
// The translation is left untouched.
func (t Transform) Scaled(s float64) Transform {
	t.cos *= s
	t.sin *= s
	return t
}

// Apply maps p through t.
func (t Transform) Apply(p Vec) Vec {
	return Vec{
		X: t.cos*p.X - t.sin*p.Y + t.tx,
		Y: t.sin*p.X + t.cos*p.Y + t.ty,
	}
}

// ApplyLinear maps a direction through t, ignoring the translation.
func (t Transform) ApplyLinear(v Vec) Vec {
	return Vec{X: t.cos*v.X - t.sin*v.Y, Y: t.sin*v.X + t.cos*v.Y}
}

// Combine returns the transform that applies other first and then t.
// Order matters: a.Combine(b) != b.Combine(a) in general.
func (t Transform) Combine(other Transform) Transform {
	off := t.Apply(Vec{X: other.tx, Y: other.ty})
	return Transform{
		cos: t.cos*other.cos - t.sin*other.sin,
		sin: t.sin*other.cos + t.cos*other.sin,
		tx:  off.X,
		ty:  off.Y,
	}
}

// Inverse returns the transform undoing t. A degenerate transform inverts to
// Identity.
func (t Transform) Inverse() Transform {
	det := t.cos*t.cos + t.sin*t.sin
	if det < Epsilon {
		return Identity
	}
	inv := Transform{cos: t.cos / det, sin: -t.sin / det}
	off := inv.ApplyLinear(Vec{X: t.tx, Y: t.ty})
	inv.tx, inv.ty = -off.X, -off.Y
	return inv
}

// Angle returns the rotation angle of t in [-π, π).
func (t Transform) Angle() float64 {
	return NormalizeAngle(math.Atan2(t.sin, t.cos))
}

// Scale returns the uniform scale factor of t.
func (t Transform) Scale() float64 {
	return math.Hypot(t.cos, t.sin)
}

// Offset returns the translation part of t.
func (t Transform) Offset() Vec {
	return Vec{X: t.tx, Y: t.ty}
}

// Matrix returns t as the row-major 2x3 affine matrix
// [a b tx; c d ty] with a=cos, b=-sin, c=sin, d=cos.
func (t Transform) Matrix() (a, b, c, d, tx, ty float64) {
	return t.cos, -t.sin, t.sin, t.cos, t.tx, t.ty
}

// ApproxEqual reports whether two transforms match within Epsilon.
func (t Transform) ApproxEqual(o Transform) bool {
	return math.Abs(t.cos-o.cos) <= Epsilon &&
		math.Abs(t.sin-o.sin) <= Epsilon &&
		math.Abs(t.tx-o.tx) <= Epsilon &&
		math.Abs(t.ty-o.ty) <= Epsilon
}

// ApplyAll maps every point through t into a new slice.
func (t Transform) ApplyAll(points []Vec) []Vec {
	out := make([]Vec, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}
