// Package lts provides the labeled transition system container used by the
// model checker, together with a codec for the Aldebaran (.aut) textual format.
//
// What
//
//   - LTS: a finite, integer-indexed state space with action-labeled
//     transitions and a designated initial state.
//   - Actions are interned to small integer ids, so label comparison during
//     evaluation is O(1).
//   - Both a forward index (Successors) and an inverse index (Predecessors)
//     are maintained; the inverse index is what makes predecessor-driven
//     fixed-point evaluation cheap.
//   - ParseAldebaran / Parse build an LTS from Aldebaran text; String renders
//     it back.
//
// Why
//
//   - The μ-calculus evaluators in package check repeatedly ask "which states
//     have an a-successor inside this set?". Answering that from the inverse
//     index costs O(edges into the set) instead of a scan over all states.
//
// Aldebaran format
//
//	des (<initial>, <num_transitions>, <num_states>)
//	(<src>, "<action>", <dst>)
//	...
//
// One transition per line. Action labels must match [a-z][a-z0-9_]*. Blank
// lines and trailing whitespace are tolerated. The declared transition count
// must agree with the number of distinct transitions read; a repeated row is
// stored once and therefore counts once.
//
// Complexity (S = states, T = transitions)
//
//   - Build:        O(S + T)
//   - Successors:   O(1) lookup, result shared (do not mutate)
//   - Predecessors: O(1) lookup, result shared (do not mutate)
//   - Memory:       O(S·A + T) for A distinct actions
//
// Errors
//
//   - ErrMalformedLTS     umbrella for every parse failure (errors.Is-able).
//   - ErrHeader           missing or malformed "des (...)" header line.
//   - ErrTransition       a transition row that does not parse.
//   - ErrStateRange       a state index outside [0, NumStates).
//   - ErrActionSyntax     an action label outside [a-z][a-z0-9_]*.
//   - ErrTransitionCount  declared count disagrees with distinct transitions read.
package lts
