package field

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/geom"
)

// Snapshot is a plain copy of the logical field state, for tests, logging
// and the text frontend.
type Snapshot struct {
	Width, Height int
	Rows          []string // '.' empty, '#' settled, '@' active
	Shape         string
	Anchor        geom.Point
	Rotation      geom.Rotation
	Next          string
	Score         int
	Lines         int
	Level         int
	Awaiting      bool
	GameOver      bool
}

// Snapshot captures the current logical state.
func (f *Field) Snapshot() Snapshot {
	w, h := f.cfg.Width, f.cfg.Height
	cells := make([][]byte, h)
	for y := range cells {
		row := make([]byte, w)
		for x := range row {
			row[x] = '.'
			if f.grid[y*w+x] != nil {
				row[x] = '#'
			}
		}
		cells[y] = row
	}

	s := Snapshot{
		Width:    w,
		Height:   h,
		Score:    f.score,
		Lines:    f.lines,
		Level:    f.level,
		Awaiting: f.awaiting,
		GameOver: f.over,
	}
	if f.next != nil {
		s.Next = f.next.Name()
	}
	if a := f.active; a != nil {
		s.Shape = a.typ.Name()
		s.Anchor = a.anchor
		s.Rotation = a.rotation
		for _, b := range a.blocks {
			if f.inside(b.tile) {
				cells[b.tile.Y][b.tile.X] = '@'
			}
		}
	}

	s.Rows = make([]string, h)
	for y, row := range cells {
		s.Rows[y] = string(row)
	}
	return s
}

func (s Snapshot) String() string {
	return strings.Join(s.Rows, "\n")
}
