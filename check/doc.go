// Package check decides whether the initial state of a labeled transition
// system satisfies a modal μ-calculus formula.
//
// What
//
//   - Check(l, f, opts...) returns the boolean verdict for the initial state.
//   - Eval(l, f, opts...) returns the full satisfying state set plus the
//     number of fixed-point iterations performed.
//   - Two interchangeable evaluation strategies, selected with
//     WithAlgorithm:
//   - Naive: every fixed point restarts from its trivial seed (empty set
//     for mu, full set for nu) each time an enclosing iteration re-enters
//     it.
//   - EmersonLei (default): each binder keeps a persistent approximant
//     across re-entries and reseeds only when an enclosing binder of the
//     opposite polarity forces it to, so same-polarity nesting pays the
//     fixed-point cost once.
//   - WithOnIteration installs a hook observing every fixed-point round,
//     useful for comparing the work the two strategies perform.
//
// Why
//
//   - Both strategies compute the same denotation; they differ only in how
//     often inner fixed points are recomputed. For alternation-free
//     formulas Emerson–Lei is linear in the formula's fixed-point count
//     where the naive strategy multiplies nested iteration counts.
//
// Determinism
//
//	Evaluation is single-threaded and the iteration order is fixed by the
//	formula tree, so identical inputs always produce identical verdicts,
//	satisfying sets, and iteration counts.
//
// Complexity (S = LTS states, per binder entry)
//
//   - Each fixed point converges within S+1 rounds: approximants grow
//     (mu) or shrink (nu) monotonically inside a finite lattice.
//   - Set operations cost O(S/word) on the dense bitset representation.
//
// Usage
//
//	l, err := lts.Parse(autText)
//	f, err := mucalc.Parse("nu X. <a>X")
//	ok, err := check.Check(l, f)                                  // Emerson–Lei
//	ok, err = check.Check(l, f, check.WithAlgorithm(check.Naive)) // reference
//
// Errors
//
//   - ErrNilLTS, ErrNilFormula    nil inputs.
//   - ErrOptionViolation          an invalid Option was supplied.
//   - mucalc.ErrOpenFormula       the formula has unbound variables;
//     detected before evaluation starts.
//   - context.Canceled / DeadlineExceeded when the supplied context ends.
package check
