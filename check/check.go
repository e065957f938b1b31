// Package check entry points: Check and Eval validate their inputs, prepare
// the formula, dispatch to the selected evaluator, and package the outcome.
package check

import (
	"fmt"

	"github.com/katalvlaran/mucheck/lts"
	"github.com/katalvlaran/mucheck/mucalc"
)

// Result is the outcome of evaluating a formula against an LTS.
type Result struct {
	// Holds reports whether the initial state satisfies the formula.
	Holds bool

	// Sat is the full satisfying state set.
	Sat *StateSet

	// Iterations is the total number of fixed-point rounds performed.
	Iterations int
}

// Check reports whether the initial state of l satisfies f.
// Returns ErrNilLTS or ErrNilFormula for invalid input, ErrOptionViolation
// for bad options, and mucalc.ErrOpenFormula if f has unbound variables.
func Check(l *lts.LTS, f mucalc.Formula, opts ...Option) (bool, error) {
	res, err := Eval(l, f, opts...)
	if err != nil {
		return false, err
	}

	return res.Holds, nil
}

// Eval computes the full satisfying state set of f over l, together with the
// verdict for the initial state and the iteration count.
func Eval(l *lts.LTS, f mucalc.Formula, opts ...Option) (*Result, error) {
	if l == nil {
		return nil, ErrNilLTS
	}
	if f == nil {
		return nil, ErrNilFormula
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Rename and annotate; a no-op for formulas coming out of mucalc.Parse.
	if err := mucalc.Normalize(f); err != nil {
		return nil, err
	}

	// Closedness pre-pass: an unbound variable must never surface as a
	// spurious verdict mid-iteration.
	if free := mucalc.FreeVars(f); len(free) > 0 {
		return nil, fmt.Errorf("%w: %v", mucalc.ErrOpenFormula, free)
	}

	var (
		sat        *StateSet
		iterations int
		err        error
	)
	switch o.Algorithm {
	case Naive:
		e := &naiveEvaluator{lts: l, opts: &o}
		sat, err = e.eval(f)
		iterations = e.iterations
	default:
		e := newELEvaluator(l, f, &o)
		sat, err = e.eval(f, noEnclosing)
		iterations = e.iterations
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Holds:      sat.Contains(l.Initial()),
		Sat:        sat,
		Iterations: iterations,
	}, nil
}
