package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blondsend/minesweeper-solver/internal/mines"
	"github.com/blondsend/minesweeper-solver/internal/solver"
)

func renderBoard(g *mines.GameState) string {
	var b strings.Builder

	fmt.Fprint(&b, "    ")
	for x := range g.Width {
		fmt.Fprintf(&b, "%2d ", x)
	}
	fmt.Fprint(&b, "\n   +"+strings.Repeat("---", g.Width)+"+\n")

	for y := range g.Height {
		fmt.Fprintf(&b, "%2d |", y)
		for x := range g.Width {
			fmt.Fprintf(&b, " %s ", g.PlayerGrid[y*g.Width+x])
		}
		fmt.Fprint(&b, "|\n")
	}
	fmt.Fprint(&b, "   +"+strings.Repeat("---", g.Width)+"+\n")

	return b.String()
}

func renderProbabilities(res *solver.Result, width int) string {
	var b strings.Builder

	for _, i := range res.Safe {
		fmt.Fprintf(&b, "%d:%d safe\n", i%width, i/width)
	}
	for _, i := range res.Mines {
		fmt.Fprintf(&b, "%d:%d mine\n", i%width, i/width)
	}

	cells := make([]int, 0, len(res.Probs))
	for i := range res.Probs {
		cells = append(cells, i)
	}
	sort.Ints(cells)
	for _, i := range cells {
		fmt.Fprintf(&b, "%d:%d p=%.3f\n", i%width, i/width, res.Probs[i])
	}

	if res.Approximate {
		fmt.Fprint(&b, "(approximate: some components were above the enumeration cap)\n")
	}
	if b.Len() == 0 {
		fmt.Fprint(&b, "nothing left to play\n")
	}
	return b.String()
}
