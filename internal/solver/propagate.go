package solver

import "fmt"

/*
propagate applies the two closed-form deduction rules to a fixed
point:

  - zero rule: a constraint with no mines left proves every cell in
    its set safe;
  - full rule: a constraint whose count equals its set size proves
    every cell in its set a mine.

Each marking is substituted into every other constraint on the next
pass (safe cells drop out, mine cells drop out and decrement the
count), which can fire the rules again. Terminates because every pass
that changes anything strictly shrinks the total number of unresolved
cells across constraints.

Returns the proven-safe and proven-mine sets and the residual
constraints, which reference undetermined cells only.
*/
func propagate(cs []*constraint) (safe, mine map[int]bool, rest []*constraint, err error) {
	safe = make(map[int]bool)
	mine = make(map[int]bool)
	rest = cs

	for changed := true; changed; {
		changed = false
		var next []*constraint

		for _, c := range rest {
			kept := c.cells[:0]
			for _, i := range c.cells {
				switch {
				case safe[i]:
				case mine[i]:
					c.mines--
				default:
					kept = append(kept, i)
				}
			}
			c.cells = kept

			if c.mines < 0 || c.mines > len(c.cells) {
				return nil, nil, nil, ContradictionError{fmt.Sprintf(
					"constraint wants %d mines in %d cells", c.mines, len(c.cells),
				)}
			}
			if len(c.cells) == 0 {
				continue
			}

			switch c.mines {
			case 0:
				for _, i := range c.cells {
					if mine[i] {
						return nil, nil, nil, ContradictionError{fmt.Sprintf(
							"cell %d proven both safe and mine", i,
						)}
					}
					safe[i] = true
				}
				changed = true
			case len(c.cells):
				for _, i := range c.cells {
					if safe[i] {
						return nil, nil, nil, ContradictionError{fmt.Sprintf(
							"cell %d proven both safe and mine", i,
						)}
					}
					mine[i] = true
				}
				changed = true
			default:
				next = append(next, c)
			}
		}

		rest = next
	}
	return safe, mine, rest, nil
}
