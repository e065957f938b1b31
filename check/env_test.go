package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_BindUnbind(t *testing.T) {
	var e environment
	a := NewStateSet(4)
	b := FullStateSet(4)

	prev := e.bind('X', a)
	require.Nil(t, prev)
	assert.Same(t, a, e.lookup('X'))

	// rebinding returns the shadowed value for restoration
	prev = e.bind('X', b)
	assert.Same(t, a, prev)
	assert.Same(t, b, e.lookup('X'))

	e.unbind('X', prev)
	assert.Same(t, a, e.lookup('X'))
}

func TestEnvironment_Set(t *testing.T) {
	var e environment
	e.bind('Y', NewStateSet(4))

	next := FullStateSet(4)
	e.set('Y', next)
	assert.Same(t, next, e.lookup('Y'))
}

func TestEnvironment_UnboundLookupPanics(t *testing.T) {
	var e environment
	assert.PanicsWithValue(t, "check: lookup of unbound recursion variable Z", func() {
		e.lookup('Z')
	})
}
