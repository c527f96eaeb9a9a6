package solver

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/blondsend/minesweeper-solver/internal/mines"
)

var Log *logrus.Logger = logrus.StandardLogger()

// DefaultCap bounds the size of a component eligible for exhaustive
// enumeration. Chosen empirically: with the partial-bounds pruning a
// 24-cell frontier component stays well under a second, and larger
// ones are rare on boards of a few thousand cells.
const DefaultCap = 24

type Solver struct {
	// Cap is the enumeration tractability cap; components with more
	// cells fall back to the global-density prior.
	Cap int
}

func New() *Solver {
	return &Solver{Cap: DefaultCap}
}

// Result of one solver pass over a snapshot. Safe and Mines are
// certain and always take precedence over Probs, which maps every
// undetermined hidden cell to its mine probability.
type Result struct {
	Safe  []int
	Mines []int
	Probs map[int]float64
	// Approximate is set when some component exceeded the cap and its
	// cells were scored with the density prior instead of exhaustive
	// enumeration.
	Approximate bool
}

/*
Solve is a pure function of the snapshot: extract constraints from the
revealed numbers, propagate the deterministic rules to a fixed point,
apply the global mine budget, then partition what remains into
independent components, enumerate each, and fold the tallies into
per-cell probabilities. Two identical snapshots yield identical
results.
*/
func (s *Solver) Solve(snap *Snapshot) (*Result, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	cs, err := extractConstraints(snap)
	if err != nil {
		return nil, err
	}
	safe, mine, rest, err := propagate(cs)
	if err != nil {
		return nil, err
	}

	/*
	 * Local deduction done; bring in the global mine budget. Proven
	 * mines count against it alongside flags, and the two boundary
	 * cases (no mines left, or only mines left) settle every
	 * remaining hidden cell at once.
	 */
	minesLeft := snap.MineCount - snap.Cells.FlagCount() - len(mine)

	var hidden []int
	for i, c := range snap.Cells {
		if c == mines.Unknown && !safe[i] && !mine[i] {
			hidden = append(hidden, i)
		}
	}

	if minesLeft < 0 || minesLeft > len(hidden) {
		return nil, ContradictionError{fmt.Sprintf(
			"%d mines unaccounted for among %d hidden cells",
			minesLeft, len(hidden),
		)}
	}
	switch {
	case minesLeft == 0:
		for _, i := range hidden {
			safe[i] = true
		}
		hidden, rest = nil, nil
	case minesLeft == len(hidden):
		for _, i := range hidden {
			mine[i] = true
		}
		hidden, rest = nil, nil
	}

	res := &Result{
		Safe:  sortedKeys(safe),
		Mines: sortedKeys(mine),
		Probs: make(map[int]float64, len(hidden)),
	}
	if len(hidden) == 0 {
		return res, nil
	}

	comps := partition(rest)
	density := float64(minesLeft) / float64(len(hidden))

	/*
	 * Components share no cells, so they can be enumerated
	 * concurrently; each goroutine writes only its own slot.
	 */
	tallies := make([]*tally, len(comps))
	g := new(errgroup.Group)
	for ci, comp := range comps {
		if len(comp.cells) > s.Cap {
			res.Approximate = true
			Log.WithFields(logrus.Fields{
				"size": len(comp.cells),
				"cap":  s.Cap,
			}).Warn("component above cap, scoring with density prior")
			continue
		}
		g.Go(func() error {
			t := comp.enumerate()
			if t.total == 0 {
				return ContradictionError{fmt.Sprintf(
					"component of %d cells admits no valid assignment",
					len(comp.cells),
				)}
			}
			tallies[ci] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	/*
	 * Fold tallies into probabilities, tracking the expected number
	 * of frontier mines so the leftover budget can be spread over the
	 * cells no constraint touches.
	 */
	expected := 0.0
	frontier := make(map[int]bool)
	for ci, comp := range comps {
		t := tallies[ci]
		for _, i := range comp.cells {
			frontier[i] = true
			p := density
			if t != nil {
				p = float64(t.mines[i]) / float64(t.total)
			}
			res.Probs[i] = p
			expected += p
		}
	}

	freeCells := 0
	for _, i := range hidden {
		if !frontier[i] {
			freeCells++
		}
	}
	if freeCells > 0 {
		p := (float64(minesLeft) - expected) / float64(freeCells)
		p = min(max(p, 0), 1)
		for _, i := range hidden {
			if !frontier[i] {
				res.Probs[i] = p
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"constraints": len(cs),
		"components":  len(comps),
		"hidden":      len(hidden),
		"free":        freeCells,
		"approximate": res.Approximate,
	}).Debug("solve pass")

	return res, nil
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for i := range set {
		keys = append(keys, i)
	}
	sort.Ints(keys)
	return keys
}
