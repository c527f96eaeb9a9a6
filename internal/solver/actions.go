package solver

import "sort"

type ActionKind int

const (
	ActionReveal ActionKind = iota
	ActionFlag
)

func (k ActionKind) String() string {
	if k == ActionFlag {
		return "flag"
	}
	return "reveal"
}

// Action is one move for the game to apply, addressed by flat cell
// index.
type Action struct {
	Kind ActionKind
	Cell int
}

/*
Actions converts a solve result into moves, certainty first: every
proven-safe cell as a reveal (batched), failing that every proven mine
as a flag, failing that a single reveal of the cell with the lowest
mine probability. Output is ordered by flat index, which also breaks
probability ties deterministically. Nil when the board has nothing
left to play.
*/
func (r *Result) Actions() []Action {
	if len(r.Safe) > 0 {
		acts := make([]Action, len(r.Safe))
		for n, i := range r.Safe {
			acts[n] = Action{ActionReveal, i}
		}
		return acts
	}
	if len(r.Mines) > 0 {
		acts := make([]Action, len(r.Mines))
		for n, i := range r.Mines {
			acts[n] = Action{ActionFlag, i}
		}
		return acts
	}

	cells := make([]int, 0, len(r.Probs))
	for i := range r.Probs {
		cells = append(cells, i)
	}
	sort.Ints(cells)

	best, bestProb := -1, 2.0
	for _, i := range cells {
		if r.Probs[i] < bestProb {
			best, bestProb = i, r.Probs[i]
		}
	}
	if best < 0 {
		return nil
	}
	return []Action{{ActionReveal, best}}
}
