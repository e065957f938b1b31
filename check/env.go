package check

import (
	"fmt"

	"github.com/katalvlaran/mucheck/mucalc"
)

// environment maps recursion variables to their current approximants.
// It is a flat innermost-wins table: bind returns the previous value so the
// caller can restore it on unbind, which makes the push/pop perfectly
// lexical. After α-renaming no two live bindings share a letter, so a stack
// of frames is unnecessary.
type environment struct {
	vals [26]*StateSet
}

// bind installs s as the innermost binding of v and returns the binding it
// replaced (nil if none).
func (e *environment) bind(v mucalc.VarName, s *StateSet) *StateSet {
	prev := e.vals[v-'A']
	e.vals[v-'A'] = s

	return prev
}

// unbind restores the binding that bind replaced.
func (e *environment) unbind(v mucalc.VarName, prev *StateSet) {
	e.vals[v-'A'] = prev
}

// set overwrites the innermost binding of v in place.
func (e *environment) set(v mucalc.VarName, s *StateSet) {
	e.vals[v-'A'] = s
}

// lookup returns the innermost binding of v. An unbound variable is a
// contract violation: closedness is verified before evaluation starts, so
// reaching this means the caller bypassed that check.
func (e *environment) lookup(v mucalc.VarName) *StateSet {
	s := e.vals[v-'A']
	if s == nil {
		panic(fmt.Sprintf("check: lookup of unbound recursion variable %s", v))
	}

	return s
}
