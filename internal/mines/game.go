package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger = logrus.StandardLogger()

type GameState struct {
	Dead, Won  bool
	Grid       []bool /* real mine points */
	PlayerGrid Grid   /* player knowledge */
	GameParams
}

// NewGame places mines uniformly at random everywhere except the first
// clicked cell, then opens that cell. The first move is always safe.
func NewGame(params *GameParams, x, y int, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	first := y*params.Width + x
	candidates := make([]int, 0, params.CellCount()-1)
	for i := range params.CellCount() {
		if i != first {
			candidates = append(candidates, i)
		}
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	grid := make([]bool, params.CellCount())
	for _, i := range candidates[:params.MineCount] {
		grid[i] = true
	}

	playerGrid := make(Grid, len(grid))
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}

	state := &GameState{
		GameParams: *params,
		Grid:       grid,
		PlayerGrid: playerGrid,
	}
	if state.OpenCell(x, y) != 0 {
		return nil, AssertionError{"mine in starting cell"}
	}

	Log.WithFields(logrus.Fields{
		"seed":  params.Seed(),
		"start": first,
	}).Debug("new game")

	return state, nil
}

func (s *GameState) mineCountAround(i int) CellState {
	x, y := i%s.Width, i/s.Width
	n := 0
	for dy := -1; dy <= +1; dy++ {
		for dx := -1; dx <= +1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.PointInBounds(x+dx, y+dy) && s.Grid[(y+dy)*s.Width+(x+dx)] {
				n++
			}
		}
	}
	return CellState(n)
}

// OpenCell reveals a cell. Returns -1 if the player hit a mine, 0
// otherwise. Zero-count cells cascade to their neighbors breadth-first.
func (s *GameState) OpenCell(x, y int) int {
	i := y*s.Width + x
	if s.PlayerGrid[i] != Unknown {
		return 0
	}

	if s.Grid[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the
		 * mine that killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return -1
	}

	queue := []int{i}
	s.PlayerGrid[i] = s.mineCountAround(i)

	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]

		if s.PlayerGrid[j] != 0 {
			continue
		}

		jx, jy := j%s.Width, j/s.Width
		for dy := -1; dy <= +1; dy++ {
			for dx := -1; dx <= +1; dx++ {
				if dx == 0 && dy == 0 || !s.PointInBounds(jx+dx, jy+dy) {
					continue
				}
				k := (jy+dy)*s.Width + (jx + dx)
				if s.PlayerGrid[k] == Unknown {
					s.PlayerGrid[k] = s.mineCountAround(k)
					queue = append(queue, k)
				}
			}
		}
	}

	/*
	 * Finally, scan the grid and see if exactly as many squares are
	 * still covered as there are mines. If so, set the `won' flag and
	 * fill in mine markers on all covered squares.
	 */
	if s.PlayerGrid.HiddenCount() == s.MineCount {
		for j := range s.PlayerGrid {
			if s.PlayerGrid[j] == Unknown {
				s.PlayerGrid[j] = UnflaggedMine
			} else if s.PlayerGrid[j] == Flagged {
				s.PlayerGrid[j] = CorrectlyFlagged
			}
		}
		s.Won = true
	}

	return 0
}

func (s *GameState) FlagCell(x, y int) {
	i := y*s.Width + x
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	} else if s.PlayerGrid[i] == Flagged {
		s.PlayerGrid[i] = Unknown
	}
}

// ChordCell opens every unflagged neighbor of a revealed cell whose
// flag count already matches its number.
func (s *GameState) ChordCell(x, y int) {
	i := y*s.Width + x
	if !s.PlayerGrid[i].Revealed() {
		return
	}
	c := int(s.PlayerGrid[i])
	js := make([]int, 0, 8-c)
	m := 0
	for dy := -1; dy <= +1; dy++ {
		for dx := -1; dx <= +1; dx++ {
			if (dx != 0 || dy != 0) && s.PointInBounds(x+dx, y+dy) {
				j := (y+dy)*s.Width + (x + dx)
				if s.PlayerGrid[j] == Flagged {
					m++
				} else if s.PlayerGrid[j] == Unknown {
					js = append(js, j)
				}
			}
		}
	}
	if c == m {
		for _, j := range js {
			s.OpenCell(j%s.Width, j/s.Width)
			if s.Dead || s.Won {
				return
			}
		}
	}
}

// RevealMines exposes the true layout after the game is over, marking
// wrong flags and unflagged mines.
func (s *GameState) RevealMines() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	for i := range s.Grid {
		switch {
		case s.PlayerGrid[i] == Flagged && s.Grid[i]:
			s.PlayerGrid[i] = CorrectlyFlagged
		case s.PlayerGrid[i] == Flagged:
			s.PlayerGrid[i] = FalselyFlagged
		case s.PlayerGrid[i] == Unknown && s.Grid[i]:
			s.PlayerGrid[i] = UnflaggedMine
		case s.PlayerGrid[i] == Unknown:
			s.PlayerGrid[i] = s.mineCountAround(i)
		}
	}
}

func (s *GameState) ValidatePoint(x, y int) bool {
	return s.PointInBounds(x, y)
}
