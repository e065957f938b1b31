// Package mucheck is a model checker for finite labeled transition systems
// against a fragment of the modal μ-calculus.
//
// 🚀 What is mucheck?
//
//	A small, deterministic checker that answers one question: does the
//	initial state of an LTS satisfy a closed μ-calculus formula?
//		• lts/    — the LTS container + Aldebaran (.aut) codec, with
//		  forward and inverse transition indexes
//		• mucalc/ — formula AST, parser, scope analysis, alternation
//		  measures and the pushed-negation dual
//		• check/  — dense-bitset fixed-point evaluation: a naive
//		  reference strategy and the Emerson–Lei strategy that reuses
//		  approximants across re-entries
//		• cmd/mucheck — the command-line front end
//
// ✨ Why choose mucheck?
//
//   - Predictable – single-threaded evaluation, reproducible verdicts
//     and iteration counts
//   - Honest errors – sentinel errors citing the offending line for
//     malformed LTS rows, and line and column for malformed formulas
//   - Observable – iteration hooks let you measure exactly how much
//     work each strategy performs
//
// Quick example:
//
//	l, _ := lts.Parse("des (0,2,2)\n(0,\"a\",1)\n(1,\"a\",0)\n")
//	f, _ := mucalc.Parse("nu X. <a>X")
//	ok, _ := check.Check(l, f) // true: an infinite a-path exists
//
//	go get github.com/katalvlaran/mucheck
package mucheck
