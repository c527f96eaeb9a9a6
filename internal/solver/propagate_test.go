package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(set map[int]bool) []int {
	return sortedKeys(set)
}

func TestPropagateZeroRule(t *testing.T) {
	t.Parallel()

	safe, mine, rest, err := propagate([]*constraint{
		{cells: []int{1, 2, 3}, mines: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, keys(safe))
	assert.Empty(t, mine)
	assert.Empty(t, rest)
}

func TestPropagateFullRule(t *testing.T) {
	t.Parallel()

	safe, mine, rest, err := propagate([]*constraint{
		{cells: []int{4, 5}, mines: 2},
	})
	require.NoError(t, err)
	assert.Empty(t, safe)
	assert.Equal(t, []int{4, 5}, keys(mine))
	assert.Empty(t, rest)
}

func TestPropagateSubstitutionChain(t *testing.T) {
	t.Parallel()

	// {1}=1 forces a mine at 1; substituted into {1,2}=1 it leaves
	// {2}=0, which fires the zero rule in turn.
	safe, mine, rest, err := propagate([]*constraint{
		{cells: []int{1}, mines: 1},
		{cells: []int{1, 2}, mines: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, keys(safe))
	assert.Equal(t, []int{1}, keys(mine))
	assert.Empty(t, rest)
}

func TestPropagateLeavesUnresolved(t *testing.T) {
	t.Parallel()

	cs := []*constraint{
		{cells: []int{1, 2}, mines: 1},
		{cells: []int{2, 3}, mines: 1},
	}
	safe, mine, rest, err := propagate(cs)
	require.NoError(t, err)
	assert.Empty(t, safe)
	assert.Empty(t, mine)
	assert.Len(t, rest, 2)
}

func TestPropagateContradiction(t *testing.T) {
	t.Parallel()

	_, _, _, err := propagate([]*constraint{
		{cells: []int{1}, mines: 0},
		{cells: []int{1}, mines: 1},
	})
	require.Error(t, err)
	assert.ErrorAs(t, err, &ContradictionError{})
}
