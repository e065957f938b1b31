// Package mucalc formula AST. This file declares the node types, sentinel
// errors, the subformula walk, and the source-syntax renderer.
package mucalc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for parsing and analysis.
var (
	// ErrSyntax indicates the formula text does not conform to the grammar.
	ErrSyntax = errors.New("mucalc: syntax error")

	// ErrOpenFormula indicates a variable occurrence with no enclosing binder.
	ErrOpenFormula = errors.New("mucalc: formula has unbound variables")

	// ErrTooManyVariables indicates normalization exhausted the single-letter
	// variable namespace.
	ErrTooManyVariables = errors.New("mucalc: more than 26 distinct binders")
)

// VarName is a recursion variable: a single uppercase letter 'A'..'Z'.
type VarName byte

func (v VarName) String() string { return string(rune(v)) }

// Formula is the μ-calculus abstract syntax tree. The concrete node types are
// *False, *True, *Var, *And, *Or, *Diamond, *Box, *Mu and *Nu.
type Formula interface {
	fmt.Stringer
	node()
}

// False denotes the empty state set.
type False struct{}

// True denotes the full state set.
type True struct{}

// Var is an occurrence of a recursion variable.
type Var struct {
	Name VarName
}

// And is conjunction.
type And struct {
	Left, Right Formula
}

// Or is disjunction.
type Or struct {
	Left, Right Formula
}

// Diamond is the existential modal operator <a>f: states with at least one
// a-successor satisfying f.
type Diamond struct {
	Action string
	Body   Formula
}

// Box is the universal modal operator [a]f: states all of whose a-successors
// satisfy f. A state with no a-successors satisfies it vacuously.
type Box struct {
	Action string
	Body   Formula
}

// Mu is the least fixed point binding Var in Body.
//
// ID and Restarts are filled in by Normalize. ID is a dense index, assigned
// in preorder, naming the approximant cell this binder owns during
// evaluation. Restarts lists the cell ids of the μ-binders in this subtree
// (this one included) whose bodies reach variables bound outside their own
// subtree; when an enclosing ν-iteration re-enters this binder those cells
// are reseeded together, all remaining μ-cells keep their value.
type Mu struct {
	Var  VarName
	Body Formula

	ID       int
	Restarts []int
}

// Nu is the greatest fixed point binding Var in Body. See Mu for the meaning
// of ID and Restarts (with the polarities exchanged).
type Nu struct {
	Var  VarName
	Body Formula

	ID       int
	Restarts []int
}

func (*False) node()   {}
func (*True) node()    {}
func (*Var) node()     {}
func (*And) node()     {}
func (*Or) node()      {}
func (*Diamond) node() {}
func (*Box) node()     {}
func (*Mu) node()      {}
func (*Nu) node()      {}

// Subformulas returns f and every node below it, in preorder.
func Subformulas(f Formula) []Formula {
	out := make([]Formula, 0, 8)
	var walk func(Formula)
	walk = func(g Formula) {
		out = append(out, g)
		switch n := g.(type) {
		case *And:
			walk(n.Left)
			walk(n.Right)
		case *Or:
			walk(n.Left)
			walk(n.Right)
		case *Diamond:
			walk(n.Body)
		case *Box:
			walk(n.Body)
		case *Mu:
			walk(n.Body)
		case *Nu:
			walk(n.Body)
		}
	}
	walk(f)

	return out
}

func (*False) String() string { return "false" }
func (*True) String() string  { return "true" }

func (v *Var) String() string { return v.Name.String() }

func (a *And) String() string {
	return "(" + a.Left.String() + " && " + a.Right.String() + ")"
}

func (o *Or) String() string {
	return "(" + o.Left.String() + " || " + o.Right.String() + ")"
}

func (d *Diamond) String() string {
	return "<" + d.Action + ">" + d.Body.String()
}

func (b *Box) String() string {
	return "[" + b.Action + "]" + b.Body.String()
}

func (m *Mu) String() string {
	var sb strings.Builder
	sb.WriteString("mu ")
	sb.WriteString(m.Var.String())
	sb.WriteString(". ")
	sb.WriteString(m.Body.String())

	return sb.String()
}

func (n *Nu) String() string {
	var sb strings.Builder
	sb.WriteString("nu ")
	sb.WriteString(n.Var.String())
	sb.WriteString(". ")
	sb.WriteString(n.Body.String())

	return sb.String()
}
