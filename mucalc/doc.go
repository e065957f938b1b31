// Package mucalc provides the modal μ-calculus formula representation:
// abstract syntax, a parser for the textual grammar, scope analysis,
// fixed-point depth measures, and the pushed-negation dual.
//
// Grammar
//
//	f ::= "false" | "true" | X
//	    | "(" f "&&" f ")" | "(" f "||" f ")"
//	    | "<" a ">" f | "[" a "]" f
//	    | "mu" X "." f | "nu" X "." f
//
// Recursion variables X are single uppercase letters; action names a match
// [a-z][a-z0-9_]*. Binary operators are always parenthesized, so the grammar
// is unambiguous. Redundant grouping parentheses around a single subformula
// are also accepted. Whitespace is insignificant except as a token
// separator, and a '%' starts a comment running to end of line.
//
// Normalization
//
// Parse α-renames reused binder variables so that every binder in the tree
// binds a distinct letter, then assigns each binder a dense cell id and
// computes its coupling information. Surface behavior therefore matches a
// correctly scoped reading even when the input reuses names. Hand-built
// trees get the same treatment via Normalize.
//
// Depth measures
//
//   - NestingDepth: maximal number of nested binders.
//   - AlternationDepth: nesting where only polarity switches count.
//   - DependentAlternationDepth: polarity switches along binder chains that
//     are actually coupled through shared variables; this is the measure the
//     Emerson–Lei evaluator's complexity depends on.
//
// Errors
//
//   - ErrSyntax            unexpected token, unknown keyword, unbalanced
//     parentheses; wrapped with the offending line and column.
//   - ErrOpenFormula       the formula references a variable with no
//     enclosing binder (detected by scope analysis, reported before any
//     evaluation starts).
//   - ErrTooManyVariables  normalization ran out of the 26-letter namespace.
package mucalc
