package check

import (
	"fmt"

	"github.com/katalvlaran/mucheck/lts"
	"github.com/katalvlaran/mucheck/mucalc"
)

// polarity records the kind of the nearest enclosing binder during
// evaluation; it decides whether entering a binder must reseed approximants.
type polarity int8

const (
	noEnclosing polarity = iota
	insideMu
	insideNu
)

// elEvaluator implements the Emerson–Lei strategy: one persistent
// approximant cell per binder, living for the whole top-level evaluation.
// A binder entered from under a same-polarity binder resumes from whatever
// its cell holds — a sound seed, since the previous value bounds the new
// fixed point from below (mu) or above (nu). Only entry from under the
// opposite polarity reseeds, and then only the open same-polarity cells of
// the entered subtree.
type elEvaluator struct {
	lts        *lts.LTS
	cells      []*StateSet // binder id → approximant
	cellOf     [26]int     // variable → binder id
	opts       *Options
	iterations int
}

// newELEvaluator allocates and seeds the approximant cells of every binder
// in f: empty for mu, full for nu. Seeding up front makes the first entry
// indistinguishable from a reseed, which is exactly the treatment the
// outermost binder needs.
func newELEvaluator(l *lts.LTS, f mucalc.Formula, opts *Options) *elEvaluator {
	e := &elEvaluator{
		lts:   l,
		cells: make([]*StateSet, mucalc.Binders(f)),
		opts:  opts,
	}
	for i := range e.cellOf {
		e.cellOf[i] = -1
	}
	for _, g := range mucalc.Subformulas(f) {
		switch n := g.(type) {
		case *mucalc.Mu:
			e.cells[n.ID] = NewStateSet(l.NumStates())
			e.cellOf[n.Var-'A'] = n.ID
		case *mucalc.Nu:
			e.cells[n.ID] = FullStateSet(l.NumStates())
			e.cellOf[n.Var-'A'] = n.ID
		}
	}

	return e
}

// cell returns the approximant cell owning variable v.
func (e *elEvaluator) cell(v mucalc.VarName) *StateSet {
	id := e.cellOf[v-'A']
	if id < 0 {
		panic(fmt.Sprintf("check: lookup of unbound recursion variable %s", v))
	}

	return e.cells[id]
}

// eval returns the set of states satisfying f; enc is the polarity of the
// nearest enclosing binder.
func (e *elEvaluator) eval(f mucalc.Formula, enc polarity) (*StateSet, error) {
	switch n := f.(type) {
	case *mucalc.False:
		return NewStateSet(e.lts.NumStates()), nil
	case *mucalc.True:
		return FullStateSet(e.lts.NumStates()), nil
	case *mucalc.Var:
		return e.cell(n.Name).Clone(), nil
	case *mucalc.And:
		left, err := e.eval(n.Left, enc)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right, enc)
		if err != nil {
			return nil, err
		}
		left.IntersectWith(right)

		return left, nil
	case *mucalc.Or:
		left, err := e.eval(n.Left, enc)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right, enc)
		if err != nil {
			return nil, err
		}
		left.UnionWith(right)

		return left, nil
	case *mucalc.Diamond:
		sat, err := e.eval(n.Body, enc)
		if err != nil {
			return nil, err
		}

		return diamondSet(e.lts, n.Action, sat), nil
	case *mucalc.Box:
		sat, err := e.eval(n.Body, enc)
		if err != nil {
			return nil, err
		}

		return boxSet(e.lts, n.Action, sat), nil
	case *mucalc.Mu:
		if enc == insideNu {
			for _, id := range n.Restarts {
				e.cells[id] = NewStateSet(e.lts.NumStates())
			}
		}

		return e.fixpoint(n.Var, n.ID, n.Body, insideMu)
	case *mucalc.Nu:
		if enc == insideMu {
			for _, id := range n.Restarts {
				e.cells[id] = FullStateSet(e.lts.NumStates())
			}
		}

		return e.fixpoint(n.Var, n.ID, n.Body, insideNu)
	default:
		return nil, ErrNilFormula
	}
}

// fixpoint iterates body from whatever cells[id] currently holds until the
// approximant stabilizes. Re-entries that were not reseeded converge fast:
// an already-stable cell costs exactly one confirming round.
func (e *elEvaluator) fixpoint(v mucalc.VarName, id int, body mucalc.Formula, enc polarity) (*StateSet, error) {
	for round := 1; ; round++ {
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		e.iterations++
		e.opts.OnIteration(v, round)

		next, err := e.eval(body, enc)
		if err != nil {
			return nil, err
		}
		if next.Equal(e.cells[id]) {
			return next, nil
		}
		e.cells[id] = next
	}
}
