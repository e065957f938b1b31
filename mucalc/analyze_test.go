package mucalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mucheck/mucalc"
)

func TestFreeVars(t *testing.T) {
	assert.Empty(t, mucalc.FreeVars(parse(t, "mu X. <a>X")))
	assert.Empty(t, mucalc.FreeVars(parse(t, "nu X. (X && mu Y. Y)")))

	assert.Equal(t, []mucalc.VarName{'X'}, mucalc.FreeVars(parse(t, "<a>X")))
	assert.Equal(t, []mucalc.VarName{'X', 'Z'}, mucalc.FreeVars(parse(t, "(Z || mu Y. (X && Y))")))

	// an occurrence beside a binder of the same letter is still free
	assert.Equal(t, []mucalc.VarName{'X'}, mucalc.FreeVars(parse(t, "(X || mu X. X)")))
}

func TestIsOpen(t *testing.T) {
	f := parse(t, "nu Y. mu X. (<a>X || <b>Y)")
	assert.False(t, mucalc.IsOpen(f))

	nu, ok := f.(*mucalc.Nu)
	require.True(t, ok)
	assert.True(t, mucalc.IsOpen(nu.Body), "inner fixed point references Y")
}

func TestDepthMeasures(t *testing.T) {
	f := parse(t, "(mu X.nu Y.(X||Y)&& mu V. mu W. (V && mu Z.(true || Z)))")
	assert.Equal(t, 3, mucalc.NestingDepth(f))

	f = parse(t, "(mu X.nu Y.(X||Y)&& mu V. nu W. (V && mu Z.(true || Z)))")
	assert.Equal(t, 3, mucalc.AlternationDepth(f))
	assert.Equal(t, 2, mucalc.DependentAlternationDepth(f))
}

func TestDepthMeasures_Flat(t *testing.T) {
	assert.Equal(t, 0, mucalc.NestingDepth(parse(t, "(<a>true && [b]false)")))
	assert.Equal(t, 0, mucalc.AlternationDepth(parse(t, "true")))

	// sibling binders never alternate
	f := parse(t, "(mu X. <a>X && nu Y. <b>Y)")
	assert.Equal(t, 1, mucalc.NestingDepth(f))
	assert.Equal(t, 1, mucalc.AlternationDepth(f))
	assert.Equal(t, 1, mucalc.DependentAlternationDepth(f))

	// nested but uncoupled binders alternate only in the blunt measure
	f = parse(t, "nu Y. (mu X. <a>X && <b>Y)")
	assert.Equal(t, 2, mucalc.AlternationDepth(f))
	assert.Equal(t, 1, mucalc.DependentAlternationDepth(f))
}

func TestNormalize_RenamesSiblingReuse(t *testing.T) {
	f := parse(t, "(mu X. <a>X && mu X. <b>X)")
	assert.Equal(t, "(mu X. <a>X && mu A. <b>A)", f.String())
}

func TestNormalize_RenamesNestedReuse(t *testing.T) {
	f := parse(t, "nu X. (X && mu X. X)")
	assert.Equal(t, "nu X. (X && mu A. A)", f.String())
}

func TestNormalize_KeepsDistinctNames(t *testing.T) {
	src := "mu X. nu Y. (X || Y)"
	f := parse(t, src)
	assert.Equal(t, src, f.String())
}

func TestNormalize_Idempotent(t *testing.T) {
	f := parse(t, "(mu X. <a>X && mu X. <b>X)")
	before := f.String()
	require.NoError(t, mucalc.Normalize(f))
	assert.Equal(t, before, f.String())
}

func TestBinders(t *testing.T) {
	assert.Equal(t, 0, mucalc.Binders(parse(t, "true")))
	assert.Equal(t, 2, mucalc.Binders(parse(t, "nu Y. mu X. (<a>X || <b>Y)")))
	assert.Equal(t, 3, mucalc.Binders(parse(t, "(mu X. X && nu Y. mu Z. (Y || Z))")))
}

func TestAnnotate_IDsAndRestarts(t *testing.T) {
	f := parse(t, "nu Y. mu X. (<a>X || <b>Y)")
	nu, ok := f.(*mucalc.Nu)
	require.True(t, ok)
	mu, ok := nu.Body.(*mucalc.Mu)
	require.True(t, ok)

	assert.Equal(t, 0, nu.ID)
	assert.Equal(t, 1, mu.ID)

	// the whole formula is closed, so the outer cell never needs reseeding;
	// the inner one references Y and restarts whenever the polarity flips
	assert.Empty(t, nu.Restarts)
	assert.Equal(t, []int{1}, mu.Restarts)
}

func TestAnnotate_ClosedInnerKeepsCell(t *testing.T) {
	f := parse(t, "nu Y. (mu X. <a>X && <b>Y)")
	nu, ok := f.(*mucalc.Nu)
	require.True(t, ok)
	and, ok := nu.Body.(*mucalc.And)
	require.True(t, ok)
	mu, ok := and.Left.(*mucalc.Mu)
	require.True(t, ok)

	// mu X. <a>X denotes the same set under any environment
	assert.Empty(t, mu.Restarts)
}
