package shapes

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// definition is the source form of a type: its initial-rotation mask drawn as
// rows of '#' and '.', and the rotation pivot in half-cell units.
type definition struct {
	name   string
	rows   []string
	pivot2 geom.Point
	color  core.Color
	kicks  kickTable
}

type kickTable int

const (
	kicksNone kickTable = iota
	kicksStandard
	kicksLong
	kicksWide
)

// Clockwise kick tables, y growing downward, indexed by source rotation.
var (
	standardKicks = [4][]geom.Point{
		geom.Initial:    {{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}},
		geom.Right:      {{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},
		geom.UpsideDown: {{X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		geom.Left:       {{X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}},
	}
	longKicks = [4][]geom.Point{
		geom.Initial:    {{X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 1}, {X: 1, Y: -2}},
		geom.Right:      {{X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: -2}, {X: 2, Y: 1}},
		geom.UpsideDown: {{X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: -1}, {X: -1, Y: 2}},
		geom.Left:       {{X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 2}, {X: -2, Y: -1}},
	}
)

var tetrominoes = []definition{
	{"I", []string{"....", "####", "....", "...."}, geom.Pt(4, 4), core.ColorCyan, kicksLong},
	{"O", []string{".##.", ".##.", "....", "...."}, geom.Pt(4, 2), core.ColorYellow, kicksNone},
	{"T", []string{".#..", "###.", "....", "...."}, geom.Pt(3, 3), core.ColorPurple, kicksStandard},
	{"S", []string{".##.", "##..", "....", "...."}, geom.Pt(3, 3), core.ColorGreen, kicksStandard},
	{"Z", []string{"##..", ".##.", "....", "...."}, geom.Pt(3, 3), core.ColorRed, kicksStandard},
	{"J", []string{"#...", "###.", "....", "...."}, geom.Pt(3, 3), core.ColorBlue, kicksStandard},
	{"L", []string{"..#.", "###.", "....", "...."}, geom.Pt(3, 3), core.ColorOrange, kicksStandard},
}

// Pentominoes rotate around the center cell of their 5×5 frame.
var pentominoes = []definition{
	{"F", []string{".....", "..##.", ".##..", "..#..", "....."}, geom.Pt(5, 5), core.ColorPink, kicksWide},
	{"F'", []string{".....", ".##..", "..##.", "..#..", "....."}, geom.Pt(5, 5), core.ColorPink, kicksWide},
	{"I", []string{".....", ".....", "#####", ".....", "....."}, geom.Pt(5, 5), core.ColorCyan, kicksLong},
	{"L", []string{"..#..", "..#..", "..#..", "..##.", "....."}, geom.Pt(5, 5), core.ColorOrange, kicksWide},
	{"L'", []string{"..#..", "..#..", "..#..", ".##..", "....."}, geom.Pt(5, 5), core.ColorBlue, kicksWide},
	{"N", []string{"..#..", "..#..", ".##..", ".#...", "....."}, geom.Pt(5, 5), core.ColorTeal, kicksWide},
	{"N'", []string{"..#..", "..#..", "..##.", "...#.", "....."}, geom.Pt(5, 5), core.ColorTeal, kicksWide},
	{"P", []string{".....", "..##.", "..##.", "..#..", "....."}, geom.Pt(5, 5), core.ColorYellow, kicksWide},
	{"P'", []string{".....", ".##..", ".##..", "..#..", "....."}, geom.Pt(5, 5), core.ColorYellow, kicksWide},
	{"T", []string{".....", ".###.", "..#..", "..#..", "....."}, geom.Pt(5, 5), core.ColorPurple, kicksWide},
	{"U", []string{".....", ".#.#.", ".###.", ".....", "....."}, geom.Pt(5, 5), core.ColorGold, kicksWide},
	{"V", []string{"..#..", "..#..", "..###", ".....", "....."}, geom.Pt(5, 5), core.ColorLime, kicksWide},
	{"W", []string{".....", ".#...", ".##..", "..##.", "....."}, geom.Pt(5, 5), core.ColorGreen, kicksWide},
	{"X", []string{".....", "..#..", ".###.", "..#..", "....."}, geom.Pt(5, 5), core.ColorRed, kicksWide},
	{"Y", []string{"..#..", ".##..", "..#..", "..#..", "....."}, geom.Pt(5, 5), core.ColorPurple, kicksWide},
	{"Y'", []string{"..#..", "..##.", "..#..", "..#..", "....."}, geom.Pt(5, 5), core.ColorPurple, kicksWide},
	{"Z", []string{".....", ".##..", "..#..", "..##.", "....."}, geom.Pt(5, 5), core.ColorRed, kicksWide},
	{"Z'", []string{".....", "..##.", "..#..", ".##..", "....."}, geom.Pt(5, 5), core.ColorGreen, kicksWide},
}

func definitions(set Set) []definition {
	switch set {
	case Tetromino:
		return tetrominoes
	case Pentomino:
		return pentominoes
	}
	panic(fmt.Sprintf("shapes: unknown shape set %q", set))
}

// build turns a definition into a fully precomputed Type.
func build(set Set, def definition) *Type {
	size := len(def.rows)
	t := &Type{
		name:   def.name,
		set:    set,
		size:   size,
		pivot2: def.pivot2,
		color:  def.color,
	}

	var initial []geom.Point
	for y, row := range def.rows {
		if len(row) != size {
			panic(fmt.Sprintf("shapes: %s/%s row %d has width %d, want %d", set, def.name, y, len(row), size))
		}
		for x, ch := range row {
			if ch == '#' {
				initial = append(initial, geom.Pt(x, y))
			}
		}
	}

	for _, r := range geom.Rotations {
		mask := make([]bool, size*size)
		for _, c := range initial {
			rc := rotateCell(c, def.pivot2, r)
			if rc.X < 0 || rc.Y < 0 || rc.X >= size || rc.Y >= size {
				panic(fmt.Sprintf("shapes: %s/%s leaves its frame at rotation %v", set, def.name, r))
			}
			mask[rc.Y*size+rc.X] = true
		}
		t.masks[r] = mask

		// Row-major order keeps block assignment stable across rotations.
		cells := make([]geom.Point, 0, len(initial))
		for y := range size {
			for x := range size {
				if mask[y*size+x] {
					cells = append(cells, geom.Pt(x, y))
				}
			}
		}
		t.cells[r] = cells
		t.hulls[r] = cellHull(cells)
		t.kicks[r] = kicksFor(def.kicks, r)
	}
	return t
}

// rotateCell turns cell c around a pivot given in half-cell units. Working in
// doubled coordinates keeps the arithmetic exact.
func rotateCell(c, pivot2 geom.Point, r geom.Rotation) geom.Point {
	center := geom.Pt(2*c.X+1, 2*c.Y+1)
	turned := center.Sub(pivot2).Turn(r).Add(pivot2)
	return geom.Pt((turned.X-1)/2, (turned.Y-1)/2)
}

// cellHull returns the convex hull of the corners of cells.
func cellHull(cells []geom.Point) []geom.Vec {
	corners := make([]geom.Vec, 0, len(cells)*4)
	for _, c := range cells {
		v := c.Vec()
		corners = append(corners, v, v.Add(geom.V(1, 0)), v.Add(geom.V(1, 1)), v.Add(geom.V(0, 1)))
	}
	return geom.ConvexHull(corners)
}

func kicksFor(table kickTable, from geom.Rotation) []geom.Point {
	var base []geom.Point
	switch table {
	case kicksStandard:
		base = standardKicks[from]
	case kicksLong:
		base = longKicks[from]
	case kicksWide:
		// 5-cell shapes reach further: the standard table followed by the
		// opposite single step and both double steps.
		std := standardKicks[from]
		s := std[0].X
		base = append(append([]geom.Point{}, std...), geom.Pt(-s, 0), geom.Pt(2*s, 0), geom.Pt(-2*s, 0))
	default:
		return nil
	}
	out := make([]geom.Point, 0, len(base))
	seen := make(map[geom.Point]bool, len(base))
	for _, k := range base {
		if k == (geom.Point{}) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
