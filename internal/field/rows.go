package field

import (
	"math"
	"slices"

	"github.com/vovakirdan/blockfall/internal/anim"
	"github.com/vovakirdan/blockfall/internal/geom"
)

// clearRows removes every full row in [from, to) and collapses the rows above
// onto them. It returns the cleared rows in ascending order.
func (f *Field) clearRows(from, to int) []int {
	from, to = max(from, 0), min(to, f.cfg.Height)
	var full []int
	for y := from; y < to; y++ {
		if f.rowCount[y] == f.cfg.Width {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return nil
	}

	for _, y := range full {
		for x := range f.cfg.Width {
			i := y*f.cfg.Width + x
			f.breakBlock(f.grid[i])
			f.grid[i] = nil
		}
		f.rowCount[y] = 0
	}

	// Walk upwards from the lowest cleared row so every destination row is
	// already empty when a block lands in it.
	lowest := full[len(full)-1]
	for y := lowest - 1; y >= 0; y-- {
		if f.rowCount[y] == 0 {
			continue
		}
		drop := 0
		for _, c := range full {
			if c > y {
				drop++
			}
		}
		for x := range f.cfg.Width {
			i := y*f.cfg.Width + x
			b := f.grid[i]
			if b == nil {
				continue
			}
			dest := geom.Pt(x, y+drop)
			f.grid[i] = nil
			f.grid[dest.Y*f.cfg.Width+x] = b
			b.moveTo(dest)
			f.collapse(b, drop)
		}
		f.rowCount[y+drop] = f.rowCount[y]
		f.rowCount[y] = 0
	}
	return full
}

// collapse animates a settled block falling rows cells from where it was
// drawn.
func (f *Field) collapse(b *Block, rows int) {
	from := f.moveNow(b, anim.SlotCollapse).Sub(geom.V(0, float64(rows)*f.cfg.CellSize))
	accel := f.cfg.CollapseAccel * f.cfg.CellSize
	f.anims.Add(b, anim.SlotCollapse, anim.NewAccelerated(anim.SlotCollapse, from, geom.Vec{}, 0, accel), nil)
}

// breakBlock hands a cleared block to its break animation; the block leaves
// the tree once the animation ends.
func (f *Field) breakBlock(b *Block) {
	if b == nil {
		return
	}
	f.anims.Drop(b.id)
	b.visual.ClearOffsets()
	f.dying = append(f.dying, b)

	spin := math.Pi / 2
	if (b.tile.X+b.tile.Y)%2 == 1 {
		spin = -spin
	}
	start := b.visual.Angle
	f.anims.Add(b, anim.SlotBreak, anim.NewBreak(start, start+spin, 0, f.cfg.BreakTicks), func() {
		f.tree.Remove(b.id)
		f.dying = slices.DeleteFunc(f.dying, func(d *Block) bool { return d == b })
	})
}
