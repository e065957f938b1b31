package lts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mucheck/lts"
)

func TestNew_Validation(t *testing.T) {
	_, err := lts.New(0, 0)
	assert.ErrorIs(t, err, lts.ErrStateRange)

	_, err = lts.New(3, 3)
	assert.ErrorIs(t, err, lts.ErrStateRange)

	_, err = lts.New(3, -1)
	assert.ErrorIs(t, err, lts.ErrStateRange)

	l, err := lts.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, lts.State(3), l.NumStates())
	assert.Equal(t, lts.State(2), l.Initial())
	assert.Equal(t, 0, l.NumTransitions())
}

func TestAddTransition_Validation(t *testing.T) {
	l, err := lts.New(2, 0)
	require.NoError(t, err)

	assert.ErrorIs(t, l.AddTransition(2, "a", 0), lts.ErrStateRange)
	assert.ErrorIs(t, l.AddTransition(0, "a", 2), lts.ErrStateRange)
	assert.ErrorIs(t, l.AddTransition(-1, "a", 0), lts.ErrStateRange)

	// labels must match [a-z][a-z0-9_]*
	assert.ErrorIs(t, l.AddTransition(0, "", 1), lts.ErrActionSyntax)
	assert.ErrorIs(t, l.AddTransition(0, "A", 1), lts.ErrActionSyntax)
	assert.ErrorIs(t, l.AddTransition(0, "1a", 1), lts.ErrActionSyntax)
	assert.ErrorIs(t, l.AddTransition(0, "lock(p1)", 1), lts.ErrActionSyntax)

	assert.NoError(t, l.AddTransition(0, "a_1", 1))
}

func TestAddTransition_Idempotent(t *testing.T) {
	l, err := lts.New(2, 0)
	require.NoError(t, err)

	require.NoError(t, l.AddTransition(0, "a", 1))
	require.NoError(t, l.AddTransition(0, "a", 1))
	require.NoError(t, l.AddTransition(0, "a", 1))

	assert.Equal(t, 1, l.NumTransitions())
	assert.Equal(t, []lts.State{1}, l.Successors(0, "a"))
	assert.Equal(t, []lts.State{0}, l.Predecessors(1, "a"))
}

func TestIndexes(t *testing.T) {
	l, err := lts.New(3, 0)
	require.NoError(t, err)
	require.NoError(t, l.AddTransition(0, "a", 1))
	require.NoError(t, l.AddTransition(2, "a", 1))
	require.NoError(t, l.AddTransition(1, "b", 2))

	assert.Equal(t, []lts.State{1}, l.Successors(0, "a"))
	assert.Empty(t, l.Successors(0, "b"))
	assert.Empty(t, l.Successors(0, "c"), "unknown action has no successors")

	assert.ElementsMatch(t, []lts.State{0, 2}, l.Predecessors(1, "a"))
	assert.Empty(t, l.Predecessors(0, "a"))

	assert.Equal(t, []string{"a", "b"}, l.Actions())
	assert.True(t, l.HasAction("a"))
	assert.False(t, l.HasAction("c"))
}
