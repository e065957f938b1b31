package mucalc

// Dual returns the pushed-negation dual of f: Mu↔Nu, And↔Or, Diamond↔Box,
// true↔false, with variables left in place. For a closed formula the dual's
// denotation is the complement of f's, so an LTS state satisfies Dual(f)
// exactly when it does not satisfy f.
//
// The result is a fresh tree without annotations; Normalize (or evaluation
// through package check) prepares it.
func Dual(f Formula) Formula {
	switch n := f.(type) {
	case *False:
		return &True{}
	case *True:
		return &False{}
	case *Var:
		return &Var{Name: n.Name}
	case *And:
		return &Or{Left: Dual(n.Left), Right: Dual(n.Right)}
	case *Or:
		return &And{Left: Dual(n.Left), Right: Dual(n.Right)}
	case *Diamond:
		return &Box{Action: n.Action, Body: Dual(n.Body)}
	case *Box:
		return &Diamond{Action: n.Action, Body: Dual(n.Body)}
	case *Mu:
		return &Nu{Var: n.Var, Body: Dual(n.Body)}
	case *Nu:
		return &Mu{Var: n.Var, Body: Dual(n.Body)}
	default:
		return f
	}
}
