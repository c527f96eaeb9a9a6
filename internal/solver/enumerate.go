package solver

import "sort"

/*
A component is a maximal group of constraints connected through shared
cells, together with every cell those constraints reference. Distinct
components share nothing and are solved independently, which is what
keeps enumeration tractable: the search is exponential in component
size, not board size.
*/
type component struct {
	cells       []int
	constraints []*constraint
}

// partition groups residual constraints into components using a
// union-find over their cells. Components come out ordered by their
// smallest cell index, cells sorted within each.
func partition(cs []*constraint) []*component {
	if len(cs) == 0 {
		return nil
	}

	uf := newUnionFind()
	seen := make(map[int]bool)
	for _, c := range cs {
		for _, i := range c.cells {
			seen[i] = true
			uf.union(c.cells[0], i)
		}
	}

	cells := make([]int, 0, len(seen))
	for i := range seen {
		cells = append(cells, i)
	}
	sort.Ints(cells)

	byRoot := make(map[int]*component)
	var comps []*component
	for _, i := range cells {
		root := uf.find(i)
		comp, ok := byRoot[root]
		if !ok {
			comp = &component{}
			byRoot[root] = comp
			comps = append(comps, comp)
		}
		comp.cells = append(comp.cells, i)
	}
	for _, c := range cs {
		comp := byRoot[uf.find(c.cells[0])]
		comp.constraints = append(comp.constraints, c)
	}
	return comps
}

// tally is the enumeration result for one component: how many
// assignments satisfy every constraint, and in how many of those each
// cell was a mine.
type tally struct {
	total int
	mines map[int]int
}

/*
enumerate runs an exhaustive depth-first search over mine/safe
assignments of the component's cells. Cells are tried
most-constrained-first so violations surface early. A branch is cut
as soon as some constraint either already holds more mines than its
count or can no longer reach it with its unassigned cells.
*/
func (comp *component) enumerate() *tally {
	degree := make(map[int]int)
	members := make(map[int][]int)
	for ci, c := range comp.constraints {
		for _, i := range c.cells {
			degree[i]++
			members[i] = append(members[i], ci)
		}
	}

	order := make([]int, len(comp.cells))
	copy(order, comp.cells)
	sort.Slice(order, func(a, b int) bool {
		if degree[order[a]] != degree[order[b]] {
			return degree[order[a]] > degree[order[b]]
		}
		return order[a] < order[b]
	})

	e := &enumerator{
		order:       order,
		constraints: comp.constraints,
		placed:      make([]int, len(comp.constraints)),
		assigned:    make([]int, len(comp.constraints)),
		isMine:      make([]bool, len(order)),
		memberOf:    make([][]int, len(order)),
		tally:       tally{mines: make(map[int]int, len(order))},
	}
	for pos, i := range order {
		e.memberOf[pos] = members[i]
	}
	e.search(0)
	return &e.tally
}

type enumerator struct {
	order       []int
	memberOf    [][]int
	constraints []*constraint
	placed      []int // mines placed so far, per constraint
	assigned    []int // cells assigned so far, per constraint
	isMine      []bool
	tally
}

func (e *enumerator) admissible(pos int, isMine bool) bool {
	for _, ci := range e.memberOf[pos] {
		placed := e.placed[ci]
		if isMine {
			placed++
		}
		unassigned := len(e.constraints[ci].cells) - e.assigned[ci] - 1
		if placed > e.constraints[ci].mines ||
			placed+unassigned < e.constraints[ci].mines {
			return false
		}
	}
	return true
}

func (e *enumerator) search(pos int) {
	if pos == len(e.order) {
		e.total++
		for p, i := range e.order {
			if e.isMine[p] {
				e.mines[i]++
			}
		}
		return
	}
	for _, isMine := range [2]bool{true, false} {
		if !e.admissible(pos, isMine) {
			continue
		}
		e.isMine[pos] = isMine
		for _, ci := range e.memberOf[pos] {
			e.assigned[ci]++
			if isMine {
				e.placed[ci]++
			}
		}
		e.search(pos + 1)
		for _, ci := range e.memberOf[pos] {
			e.assigned[ci]--
			if isMine {
				e.placed[ci]--
			}
		}
	}
}
