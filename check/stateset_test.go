package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mucheck/check"
	"github.com/katalvlaran/mucheck/lts"
)

func TestStateSet_Basics(t *testing.T) {
	s := check.NewStateSet(8)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Contains(3))

	s.Add(3)
	s.Add(5)
	s.Add(3)
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.Contains(3))
	assert.Equal(t, []lts.State{3, 5}, s.States())
	assert.Equal(t, "{3, 5}", s.String())
}

func TestStateSet_FullAndComplement(t *testing.T) {
	full := check.FullStateSet(5)
	assert.Equal(t, 5, full.Count())
	assert.Equal(t, []lts.State{0, 1, 2, 3, 4}, full.States())

	empty := full.Complement()
	assert.Equal(t, 0, empty.Count())
	assert.Equal(t, 5, empty.Complement().Count(), "complement is bounded by the universe")
}

func TestStateSet_SetAlgebra(t *testing.T) {
	a := check.NewStateSet(6)
	a.Add(0)
	a.Add(1)
	a.Add(2)
	b := check.NewStateSet(6)
	b.Add(2)
	b.Add(3)

	u := a.Clone()
	u.UnionWith(b)
	assert.Equal(t, []lts.State{0, 1, 2, 3}, u.States())

	i := a.Clone()
	i.IntersectWith(b)
	assert.Equal(t, []lts.State{2}, i.States())

	// a itself untouched by operating on clones
	assert.Equal(t, []lts.State{0, 1, 2}, a.States())
}

func TestStateSet_Equal(t *testing.T) {
	a := check.NewStateSet(4)
	b := check.NewStateSet(4)
	assert.True(t, a.Equal(b))

	a.Add(2)
	assert.False(t, a.Equal(b))

	b.Add(2)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
}
