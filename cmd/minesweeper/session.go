package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/blondsend/minesweeper-solver/internal/mines"
	"github.com/blondsend/minesweeper-solver/internal/solver"
)

type session struct {
	params *mines.GameParams
	solver *solver.Solver
	rng    *rand.Rand
	game   *mines.GameState
	out    io.Writer
}

func (s *session) started() bool {
	return s.game != nil
}

func (s *session) finished() bool {
	return s.game != nil && (s.game.Dead || s.game.Won)
}

// open generates the board lazily on the first open so that the first
// move never hits a mine.
func (s *session) open(x, y int) error {
	if s.game == nil {
		game, err := mines.NewGame(s.params, x, y, s.rng)
		if err != nil {
			return err
		}
		s.game = game
	} else if s.game.PlayerGrid[y*s.params.Width+x] == mines.Flagged {
		return fmt.Errorf("%d:%d is flagged, remove the flag first", x, y)
	} else {
		s.game.OpenCell(x, y)
	}
	s.printBoard()
	return nil
}

func (s *session) snapshot() *solver.Snapshot {
	grid := make(mines.Grid, len(s.game.PlayerGrid))
	copy(grid, s.game.PlayerGrid)
	return &solver.Snapshot{
		Width:     s.game.Width,
		Height:    s.game.Height,
		MineCount: s.game.MineCount,
		Cells:     grid,
	}
}

// solveStep asks the solver for its next moves and applies them.
// Reports whether anything was played.
func (s *session) solveStep() (bool, error) {
	res, err := s.solver.Solve(s.snapshot())
	if err != nil {
		return false, err
	}
	acts := res.Actions()
	if len(acts) == 0 {
		fmt.Fprintln(s.out, "nothing left to play")
		return false, nil
	}

	for _, a := range acts {
		x, y := a.Cell%s.game.Width, a.Cell/s.game.Width
		switch a.Kind {
		case solver.ActionReveal:
			if len(res.Safe) == 0 {
				fmt.Fprintf(s.out, "guess %d:%d (p=%.3f)\n", x, y, res.Probs[a.Cell])
			} else {
				fmt.Fprintf(s.out, "reveal %d:%d\n", x, y)
			}
			s.game.OpenCell(x, y)
		case solver.ActionFlag:
			fmt.Fprintf(s.out, "flag %d:%d\n", x, y)
			s.game.FlagCell(x, y)
		}
		if s.game.Dead || s.game.Won {
			break
		}
	}
	s.printBoard()
	return true, nil
}

func (s *session) autoplay() error {
	for !s.game.Dead && !s.game.Won {
		moved, err := s.solveStep()
		if err != nil || !moved {
			return err
		}
	}
	return nil
}

func (s *session) printBoard() {
	fmt.Fprint(s.out, renderBoard(s.game))
	switch {
	case s.game.Won:
		fmt.Fprintln(s.out, "you won!")
	case s.game.Dead:
		fmt.Fprintln(s.out, "you hit a mine")
	}
}
