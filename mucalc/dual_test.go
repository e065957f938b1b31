package mucalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mucheck/mucalc"
)

func TestDual_SwapsEveryConstructor(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"true", "false"},
		{"false", "true"},
		{"(true && false)", "(false || true)"},
		{"(true || false)", "(false && true)"},
		{"<a>true", "[a]false"},
		{"[a]false", "<a>true"},
		{"mu X. <a>X", "nu X. [a]X"},
		{"nu Y. mu X. (<a>X || <b>Y)", "mu Y. nu X. ([a]X && [b]Y)"},
	}
	for _, tc := range cases {
		f := parse(t, tc.src)
		assert.Equal(t, tc.want, mucalc.Dual(f).String(), "dual of %q", tc.src)
	}
}

func TestDual_Involution(t *testing.T) {
	for _, src := range []string{
		"mu X. ([a]X && (<tau>true || <a>true))",
		"nu X. (<tau>X && mu Y. (<tau>Y || [a]false))",
	} {
		f := parse(t, src)
		assert.Equal(t, f.String(), mucalc.Dual(mucalc.Dual(f)).String(), "dual is an involution on %q", src)
	}
}

func TestDual_LeavesOriginalIntact(t *testing.T) {
	f := parse(t, "mu X. <a>X")
	_ = mucalc.Dual(f)
	assert.Equal(t, "mu X. <a>X", f.String())
}
