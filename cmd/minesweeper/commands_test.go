package main

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blondsend/minesweeper-solver/internal/mines"
	"github.com/blondsend/minesweeper-solver/internal/solver"
)

func newTestSession() *session {
	return &session{
		params: &mines.GameParams{Width: 5, Height: 5, MineCount: 3},
		solver: solver.New(),
		rng:    rand.New(rand.NewPCG(1, 2)),
		out:    io.Discard,
	}
}

func TestParseXY(t *testing.T) {
	x, y, err := parseXY([]string{"3", "4"})
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)

	_, _, err = parseXY([]string{"a", "4"})
	assert.Error(t, err)
	_, _, err = parseXY([]string{"3", "b"})
	assert.Error(t, err)
}

func TestExecuteCommandValidation(t *testing.T) {
	s := newTestSession()

	_, err := executeCommand(s, "nope")
	assert.EqualError(t, err, "unknown command")

	_, err = executeCommand(s, "o 1")
	assert.EqualError(t, err, "invalid number of arguments")

	_, err = executeCommand(s, "s")
	assert.EqualError(t, err, "open a cell first")

	_, err = executeCommand(s, "o 9 9")
	assert.EqualError(t, err, "invalid cell coordinates")

	quit, err := executeCommand(s, "q")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestExecuteCommandGame(t *testing.T) {
	s := newTestSession()

	quit, err := executeCommand(s, "o 2 2")
	require.NoError(t, err)
	assert.False(t, quit)
	require.True(t, s.started())

	_, err = executeCommand(s, "b")
	assert.NoError(t, err)
	_, err = executeCommand(s, "p")
	assert.NoError(t, err)

	_, err = executeCommand(s, "a")
	assert.NoError(t, err)
	assert.True(t, s.finished())
}
