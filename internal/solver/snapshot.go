package solver

import (
	"fmt"

	"github.com/blondsend/minesweeper-solver/internal/mines"
)

// Snapshot is the read-only view of a board handed to the solver each
// turn. The solver never mutates it and keeps no state between calls.
type Snapshot struct {
	Width, Height int
	MineCount     int
	Cells         mines.Grid
}

func (s *Snapshot) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return SnapshotError{fmt.Sprintf("dimensions %dx%d", s.Width, s.Height)}
	}
	if len(s.Cells) != s.Width*s.Height {
		return SnapshotError{fmt.Sprintf(
			"%d cells on a %dx%d board", len(s.Cells), s.Width, s.Height,
		)}
	}
	if s.MineCount < 0 || s.MineCount >= len(s.Cells) {
		return SnapshotError{fmt.Sprintf("mine count %d", s.MineCount)}
	}
	flags := 0
	for i, c := range s.Cells {
		if !(c == mines.Unknown || c == mines.Flagged || c.Revealed()) {
			return SnapshotError{fmt.Sprintf("cell %d in state %d", i, c)}
		}
		if c == mines.Flagged {
			flags++
		}
	}
	if flags > s.MineCount {
		return SnapshotError{fmt.Sprintf(
			"%d flags for %d mines", flags, s.MineCount,
		)}
	}
	return nil
}

func (s *Snapshot) inBounds(x, y int) bool {
	return 0 <= x && x < s.Width && 0 <= y && y < s.Height
}
