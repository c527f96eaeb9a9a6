package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each item in the `grid' array is one of the following values:
	 *
	 * 	- 0 to 8 mean the square is open and has a surrounding mine
	 * 	  count.
	 *
	 *  - -1 means the square is flagged as a mine.
	 *
	 *  - -2 means the square is unknown.
	 *
	 * 	- 64 and up are post-game markers: a correctly flagged mine,
	 * 	  the mine the player hit, a crossed-out wrong flag, and an
	 * 	  unflagged mine revealed at game end.
	 */
)

// Revealed reports whether the cell is open with a neighbor count.
func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged || s == CorrectlyFlagged:
		return "F"
	case s == ExplodedMine || s == UnflaggedMine:
		return "*"
	case s == FalselyFlagged:
		return "X"
	case s == 0:
		return " "
	case s.Revealed():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player-knowledge view of the board, flat row-major
// (cell x:y lives at index y*width+x).
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

func (g Grid) FlagCount() (count int) {
	for _, s := range g {
		if s == Flagged {
			count++
		}
	}
	return
}

func (g Grid) HiddenCount() (count int) {
	for _, s := range g {
		if s == Unknown || s == Flagged {
			count++
		}
	}
	return
}
