package geom

import (
	"math"
	"sort"
)

// ConvexHull returns the convex hull of points using an angular sweep around
// the lowest point.
//
// Points within Epsilon of a hull edge count as collinear and are dropped.
// Among points sharing a polar angle from the pivot only the farthest is kept.
// Inputs of three or fewer points are returned unchanged. The result winds
// counter-clockwise in a y-up frame (positive signed area).
func ConvexHull(points []Vec) []Vec {
	if len(points) <= 3 {
		out := make([]Vec, len(points))
		copy(out, points)
		return out
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Y < pivot.Y-Epsilon || (math.Abs(p.Y-pivot.Y) <= Epsilon && p.X < pivot.X) {
			pivot = p
		}
	}

	rest := make([]Vec, 0, len(points)-1)
	for _, p := range points {
		if !p.ApproxEqual(pivot) {
			rest = append(rest, p)
		}
	}
	if len(rest) == 0 {
		return []Vec{pivot}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		a, b := rest[i].Sub(pivot), rest[j].Sub(pivot)
		c := a.Cross(b)
		if c > Epsilon {
			return true
		}
		if c < -Epsilon {
			return false
		}
		return a.Dot(a) < b.Dot(b)
	})

	// Collapse runs of equal polar angle down to their farthest member.
	swept := rest[:0:0]
	for i, p := range rest {
		if i+1 < len(rest) {
			a, b := p.Sub(pivot), rest[i+1].Sub(pivot)
			if math.Abs(a.Cross(b)) <= Epsilon && a.Dot(b) > 0 {
				continue
			}
		}
		swept = append(swept, p)
	}

	hull := []Vec{pivot}
	for _, p := range swept {
		for len(hull) >= 2 {
			o, a := hull[len(hull)-2], hull[len(hull)-1]
			if a.Sub(o).Cross(p.Sub(o)) > Epsilon {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

// Bounds returns the axis-aligned bounding rectangle of points.
func Bounds(points []Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
