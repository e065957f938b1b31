package mucalc

// varSet is a bitmask over the 26 variable letters.
type varSet uint32

func (s varSet) has(v VarName) bool { return s&(1<<(v-'A')) != 0 }

func (s *varSet) add(v VarName) { *s |= 1 << (v - 'A') }

// vars computes the variables declared by binders inside f and the variables
// used by occurrences inside f.
func vars(f Formula) (declared, used varSet) {
	for _, g := range Subformulas(f) {
		switch n := g.(type) {
		case *Var:
			used.add(n.Name)
		case *Mu:
			declared.add(n.Var)
		case *Nu:
			declared.add(n.Var)
		}
	}

	return declared, used
}

// freeVars computes the variables occurring free in f: used under no
// enclosing binder for that letter. The scoped walk also catches an
// occurrence sitting beside (not below) a binder of the same letter.
func freeVars(f Formula) varSet {
	var free varSet
	var walk func(Formula, varSet)
	walk = func(g Formula, bound varSet) {
		switch n := g.(type) {
		case *Var:
			if !bound.has(n.Name) {
				free.add(n.Name)
			}
		case *And:
			walk(n.Left, bound)
			walk(n.Right, bound)
		case *Or:
			walk(n.Left, bound)
			walk(n.Right, bound)
		case *Diamond:
			walk(n.Body, bound)
		case *Box:
			walk(n.Body, bound)
		case *Mu:
			bound.add(n.Var)
			walk(n.Body, bound)
		case *Nu:
			bound.add(n.Var)
			walk(n.Body, bound)
		}
	}
	walk(f, 0)

	return free
}

// FreeVars returns the variables occurring free in f, in alphabetical order.
func FreeVars(f Formula) []VarName {
	free := freeVars(f)

	var out []VarName
	for v := VarName('A'); v <= 'Z'; v++ {
		if free.has(v) {
			out = append(out, v)
		}
	}

	return out
}

// IsOpen reports whether f references a variable bound outside f.
func IsOpen(f Formula) bool { return freeVars(f) != 0 }

// Binders returns the number of binder nodes in f.
func Binders(f Formula) int {
	n := 0
	for _, g := range Subformulas(f) {
		switch g.(type) {
		case *Mu, *Nu:
			n++
		}
	}

	return n
}

// Normalize α-renames reused binder variables so every binder in f binds a
// distinct letter, then annotates each binder in place with its cell id
// (dense, preorder) and its Restarts list. Parse calls it on every parsed
// formula; call it directly on hand-built trees before evaluation.
// Returns ErrTooManyVariables if renaming exhausts the letter namespace.
func Normalize(f Formula) error {
	if err := uniquify(f); err != nil {
		return err
	}
	annotate(f)

	return nil
}

// uniquify renames every binder whose variable was already taken by an
// earlier binder, rewriting the occurrences it binds.
func uniquify(f Formula) error {
	declared, used := vars(f)
	inUse := declared | used

	var seen varSet
	var walk func(Formula) error
	walk = func(g Formula) error {
		switch n := g.(type) {
		case *And:
			if err := walk(n.Left); err != nil {
				return err
			}

			return walk(n.Right)
		case *Or:
			if err := walk(n.Left); err != nil {
				return err
			}

			return walk(n.Right)
		case *Diamond:
			return walk(n.Body)
		case *Box:
			return walk(n.Body)
		case *Mu:
			if err := freshen(&n.Var, n.Body, &seen, &inUse); err != nil {
				return err
			}

			return walk(n.Body)
		case *Nu:
			if err := freshen(&n.Var, n.Body, &seen, &inUse); err != nil {
				return err
			}

			return walk(n.Body)
		}

		return nil
	}

	return walk(f)
}

// freshen replaces *v with an unused letter if it was already seen, renaming
// the occurrences in body that this binder captures.
func freshen(v *VarName, body Formula, seen, inUse *varSet) error {
	if seen.has(*v) {
		fresh, ok := pickFresh(*inUse)
		if !ok {
			return ErrTooManyVariables
		}
		inUse.add(fresh)
		rename(body, *v, fresh)
		*v = fresh
	}
	seen.add(*v)

	return nil
}

// pickFresh returns the first letter not in taken.
func pickFresh(taken varSet) (VarName, bool) {
	for v := VarName('A'); v <= 'Z'; v++ {
		if !taken.has(v) {
			return v, true
		}
	}

	return 0, false
}

// rename rewrites free occurrences of old inside f to new, stopping at any
// binder that rebinds old.
func rename(f Formula, old, new VarName) {
	switch n := f.(type) {
	case *Var:
		if n.Name == old {
			n.Name = new
		}
	case *And:
		rename(n.Left, old, new)
		rename(n.Right, old, new)
	case *Or:
		rename(n.Left, old, new)
		rename(n.Right, old, new)
	case *Diamond:
		rename(n.Body, old, new)
	case *Box:
		rename(n.Body, old, new)
	case *Mu:
		if n.Var != old {
			rename(n.Body, old, new)
		}
	case *Nu:
		if n.Var != old {
			rename(n.Body, old, new)
		}
	}
}

// annotate assigns preorder cell ids and fills each binder's Restarts list:
// the same-polarity binders in its subtree (itself included) whose bodies
// reach variables bound outside their own subtree. Closed subtrees denote
// the same set under any environment, so their cells never need reseeding.
func annotate(f Formula) {
	id := 0
	for _, g := range Subformulas(f) {
		switch n := g.(type) {
		case *Mu:
			n.ID = id
			id++
		case *Nu:
			n.ID = id
			id++
		}
	}

	for _, g := range Subformulas(f) {
		switch n := g.(type) {
		case *Mu:
			n.Restarts = restartSet(n, true)
		case *Nu:
			n.Restarts = restartSet(n, false)
		}
	}
}

// restartSet collects the cell ids of the least (or greatest) fixed points
// inside b whose subtrees are open.
func restartSet(b Formula, least bool) []int {
	var out []int
	for _, g := range Subformulas(b) {
		switch n := g.(type) {
		case *Mu:
			if least && IsOpen(n) {
				out = append(out, n.ID)
			}
		case *Nu:
			if !least && IsOpen(n) {
				out = append(out, n.ID)
			}
		}
	}

	return out
}

// NestingDepth is the maximal number of binders on any root-to-leaf path.
func NestingDepth(f Formula) int {
	switch n := f.(type) {
	case *And:
		return max(NestingDepth(n.Left), NestingDepth(n.Right))
	case *Or:
		return max(NestingDepth(n.Left), NestingDepth(n.Right))
	case *Diamond:
		return NestingDepth(n.Body)
	case *Box:
		return NestingDepth(n.Body)
	case *Mu:
		return 1 + NestingDepth(n.Body)
	case *Nu:
		return 1 + NestingDepth(n.Body)
	default:
		return 0
	}
}

// AlternationDepth counts polarity switches between nested fixed points,
// whether or not the inner binder depends on the outer one.
func AlternationDepth(f Formula) int {
	switch n := f.(type) {
	case *And:
		return max(AlternationDepth(n.Left), AlternationDepth(n.Right))
	case *Or:
		return max(AlternationDepth(n.Left), AlternationDepth(n.Right))
	case *Diamond:
		return AlternationDepth(n.Body)
	case *Box:
		return AlternationDepth(n.Body)
	case *Mu:
		d := max(1, AlternationDepth(n.Body))
		for _, g := range Subformulas(n.Body) {
			if _, isNu := g.(*Nu); isNu {
				d = max(d, 1+AlternationDepth(g))
			}
		}

		return d
	case *Nu:
		d := max(1, AlternationDepth(n.Body))
		for _, g := range Subformulas(n.Body) {
			if _, isMu := g.(*Mu); isMu {
				d = max(d, 1+AlternationDepth(g))
			}
		}

		return d
	default:
		return 0
	}
}

// DependentAlternationDepth counts only polarity switches where the inner
// binder's body actually references the outer binder's variable; this is the
// measure governing how much reseeding the reuse-based evaluation performs.
func DependentAlternationDepth(f Formula) int {
	switch n := f.(type) {
	case *And:
		return max(DependentAlternationDepth(n.Left), DependentAlternationDepth(n.Right))
	case *Or:
		return max(DependentAlternationDepth(n.Left), DependentAlternationDepth(n.Right))
	case *Diamond:
		return DependentAlternationDepth(n.Body)
	case *Box:
		return DependentAlternationDepth(n.Body)
	case *Mu:
		d := max(1, DependentAlternationDepth(n.Body))
		for _, g := range Subformulas(n.Body) {
			if _, isNu := g.(*Nu); isNu && uses(g, n.Var) {
				d = max(d, 1+DependentAlternationDepth(g))
			}
		}

		return d
	case *Nu:
		d := max(1, DependentAlternationDepth(n.Body))
		for _, g := range Subformulas(n.Body) {
			if _, isMu := g.(*Mu); isMu && uses(g, n.Var) {
				d = max(d, 1+DependentAlternationDepth(g))
			}
		}

		return d
	default:
		return 0
	}
}

// uses reports whether some occurrence inside g references v.
func uses(g Formula, v VarName) bool {
	_, used := vars(g)
	return used.has(v)
}
