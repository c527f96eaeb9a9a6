package solver

// unionFind is a disjoint set forest over flat cell indices, with
// path compression on find and union by rank.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[int]int),
		rank:   make(map[int]int),
	}
}

func (u *unionFind) add(i int) {
	if _, ok := u.parent[i]; !ok {
		u.parent[i] = i
		u.rank[i] = 0
	}
}

func (u *unionFind) find(i int) int {
	u.add(i)
	if u.parent[i] != i {
		u.parent[i] = u.find(u.parent[i])
	}
	return u.parent[i]
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
