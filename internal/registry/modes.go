package registry

import "github.com/vovakirdan/blockfall/internal/shapes"

func init() {
	Register(Mode{ID: "tetromino", Title: "Classic (4-cell shapes)", Sets: []shapes.Set{shapes.Tetromino}})
	Register(Mode{ID: "pentomino", Title: "Pentomino (5-cell shapes)", Sets: []shapes.Set{shapes.Pentomino}})
	Register(Mode{ID: "mixed", Title: "Mixed (4- and 5-cell shapes)", Sets: []shapes.Set{shapes.Tetromino, shapes.Pentomino}})
}
