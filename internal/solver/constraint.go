package solver

import (
	"fmt"

	"github.com/blondsend/minesweeper-solver/internal/mines"
)

/*
A constraint records that exactly `mines` of the cells in `cells` hold
a mine. One constraint is emitted per revealed numbered cell that
still has unknown neighbors; its count is the displayed number minus
the flags already placed around it. Cell indices are flat row-major
and kept sorted, which the scan order guarantees.
*/
type constraint struct {
	cells []int
	mines int
}

func (c constraint) String() string {
	return fmt.Sprintf("%d of %v", c.mines, c.cells)
}

func extractConstraints(snap *Snapshot) ([]*constraint, error) {
	var cs []*constraint
	for y := range snap.Height {
		for x := range snap.Width {
			i := y*snap.Width + x
			if !snap.Cells[i].Revealed() {
				continue
			}

			var unknown []int
			flagged := 0
			for dy := -1; dy <= +1; dy++ {
				for dx := -1; dx <= +1; dx++ {
					if dx == 0 && dy == 0 || !snap.inBounds(x+dx, y+dy) {
						continue
					}
					j := (y+dy)*snap.Width + (x + dx)
					if snap.Cells[j] == mines.Flagged {
						flagged++
					} else if snap.Cells[j] == mines.Unknown {
						unknown = append(unknown, j)
					}
				}
			}
			if len(unknown) == 0 {
				continue
			}

			k := int(snap.Cells[i]) - flagged
			if k < 0 || k > len(unknown) {
				return nil, SnapshotError{fmt.Sprintf(
					"cell %d shows %d with %d flagged and %d unknown neighbors",
					i, snap.Cells[i], flagged, len(unknown),
				)}
			}
			cs = append(cs, &constraint{cells: unknown, mines: k})
		}
	}
	return cs, nil
}
