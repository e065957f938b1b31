package check

import (
	"github.com/katalvlaran/mucheck/lts"
	"github.com/katalvlaran/mucheck/mucalc"
)

// naiveEvaluator implements Tarski iteration with trivial reseeding: every
// entry into a binder starts from the empty (mu) or full (nu) set, even when
// the entry is a re-entry forced by an enclosing iteration.
type naiveEvaluator struct {
	lts        *lts.LTS
	env        environment
	opts       *Options
	iterations int
}

// eval returns the set of states satisfying f under the current environment.
func (e *naiveEvaluator) eval(f mucalc.Formula) (*StateSet, error) {
	switch n := f.(type) {
	case *mucalc.False:
		return NewStateSet(e.lts.NumStates()), nil
	case *mucalc.True:
		return FullStateSet(e.lts.NumStates()), nil
	case *mucalc.Var:
		return e.env.lookup(n.Name).Clone(), nil
	case *mucalc.And:
		left, err := e.eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right)
		if err != nil {
			return nil, err
		}
		left.IntersectWith(right)

		return left, nil
	case *mucalc.Or:
		left, err := e.eval(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.eval(n.Right)
		if err != nil {
			return nil, err
		}
		left.UnionWith(right)

		return left, nil
	case *mucalc.Diamond:
		sat, err := e.eval(n.Body)
		if err != nil {
			return nil, err
		}

		return diamondSet(e.lts, n.Action, sat), nil
	case *mucalc.Box:
		sat, err := e.eval(n.Body)
		if err != nil {
			return nil, err
		}

		return boxSet(e.lts, n.Action, sat), nil
	case *mucalc.Mu:
		return e.fixpoint(n.Var, n.Body, NewStateSet(e.lts.NumStates()))
	case *mucalc.Nu:
		return e.fixpoint(n.Var, n.Body, FullStateSet(e.lts.NumStates()))
	default:
		return nil, ErrNilFormula
	}
}

// fixpoint iterates body from seed until the approximant stabilizes.
// Approximants move monotonically through the finite set lattice, so at most
// NumStates+1 rounds run.
func (e *naiveEvaluator) fixpoint(v mucalc.VarName, body mucalc.Formula, seed *StateSet) (*StateSet, error) {
	prev := e.env.bind(v, seed)
	defer e.env.unbind(v, prev)

	for round := 1; ; round++ {
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		e.iterations++
		e.opts.OnIteration(v, round)

		next, err := e.eval(body)
		if err != nil {
			return nil, err
		}
		if next.Equal(e.env.lookup(v)) {
			return next, nil
		}
		e.env.set(v, next)
	}
}
