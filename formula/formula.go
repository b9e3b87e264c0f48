// Package formula defines propositional logic formulas: their construction
// from text, rendering, evaluation and structural rewriting.
//
// A Formula is an immutable expression tree. All concrete node types are
// comparable values, so two formulas are structurally equal exactly when
// they compare equal with ==.
package formula

import (
	"fmt"
	"sort"
)

// A Formula is a propositional logic formula.
type Formula interface {
	// Eval returns the truth value of the formula under the given model.
	// The model must bind every atom appearing in the formula.
	Eval(model map[string]bool) bool
	String() string
}

// An Atom is a propositional variable.
type Atom struct {
	Name string
}

func (a Atom) Eval(model map[string]bool) bool {
	b, ok := model[a.Name]
	if !ok {
		panic(fmt.Errorf("model lacks binding for atom %s", a.Name))
	}
	return b
}

func (a Atom) String() string { return a.Name }

// Not is the negation of a subformula.
type Not struct {
	Sub Formula
}

func (n Not) Eval(model map[string]bool) bool { return !n.Sub.Eval(model) }

func (n Not) String() string { return "(" + SymNot + n.Sub.String() + ")" }

// And is the conjunction of two subformulas.
type And struct {
	Left, Right Formula
}

func (a And) Eval(model map[string]bool) bool {
	return a.Left.Eval(model) && a.Right.Eval(model)
}

func (a And) String() string { return binString(a.Left, SymAnd, a.Right) }

// Or is the disjunction of two subformulas.
type Or struct {
	Left, Right Formula
}

func (o Or) Eval(model map[string]bool) bool {
	return o.Left.Eval(model) || o.Right.Eval(model)
}

func (o Or) String() string { return binString(o.Left, SymOr, o.Right) }

// Implies is a material implication.
type Implies struct {
	Left, Right Formula
}

func (i Implies) Eval(model map[string]bool) bool {
	return !i.Left.Eval(model) || i.Right.Eval(model)
}

func (i Implies) String() string { return binString(i.Left, SymImplies, i.Right) }

// Iff is a biconditional.
type Iff struct {
	Left, Right Formula
}

func (i Iff) Eval(model map[string]bool) bool {
	return i.Left.Eval(model) == i.Right.Eval(model)
}

func (i Iff) String() string { return binString(i.Left, SymIff, i.Right) }

func binString(l Formula, op string, r Formula) string {
	return "(" + l.String() + " " + op + " " + r.String() + ")"
}

// Atoms returns the names of the distinct atoms appearing in f, sorted.
func Atoms(f Formula) []string {
	seen := make(map[string]bool)
	collectAtoms(f, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectAtoms(f Formula, seen map[string]bool) {
	switch f := f.(type) {
	case Atom:
		seen[f.Name] = true
	case Not:
		collectAtoms(f.Sub, seen)
	case And:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	case Or:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	case Implies:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	case Iff:
		collectAtoms(f.Left, seen)
		collectAtoms(f.Right, seen)
	default:
		panic(fmt.Errorf("invalid formula type %T", f))
	}
}

// Without rewrites f by deleting every subtree whose atoms are all in drop.
// Deleting one operand of a binary connective collapses the node to the
// remaining operand; deleting the operand of a negation deletes the
// negation. The second result is false when the whole formula is deleted,
// in which case the first result is nil.
func Without(f Formula, drop map[string]bool) (Formula, bool) {
	switch f := f.(type) {
	case Atom:
		if drop[f.Name] {
			return nil, false
		}
		return f, true
	case Not:
		sub, ok := Without(f.Sub, drop)
		if !ok {
			return nil, false
		}
		return Not{Sub: sub}, true
	case And:
		return withoutBin(f.Left, f.Right, drop, func(l, r Formula) Formula { return And{l, r} })
	case Or:
		return withoutBin(f.Left, f.Right, drop, func(l, r Formula) Formula { return Or{l, r} })
	case Implies:
		return withoutBin(f.Left, f.Right, drop, func(l, r Formula) Formula { return Implies{l, r} })
	case Iff:
		return withoutBin(f.Left, f.Right, drop, func(l, r Formula) Formula { return Iff{l, r} })
	default:
		panic(fmt.Errorf("invalid formula type %T", f))
	}
}

func withoutBin(left, right Formula, drop map[string]bool, rebuild func(l, r Formula) Formula) (Formula, bool) {
	l, lok := Without(left, drop)
	r, rok := Without(right, drop)
	switch {
	case lok && rok:
		return rebuild(l, r), true
	case lok:
		return l, true
	case rok:
		return r, true
	default:
		return nil, false
	}
}
