package tableaux

import (
	"fmt"

	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

// A Sign is the truth value assumed for a formula in a tableau.
type Sign bool

const (
	True  Sign = true
	False Sign = false
)

func (s Sign) String() string {
	if s == True {
		return "T"
	}
	return "F"
}

// Negate returns the opposite sign.
func (s Sign) Negate() Sign { return !s }

// A SignedFormula is a formula together with its assumed truth value. It is
// the unit the tableau rules operate on.
type SignedFormula struct {
	Sign    Sign
	Formula formula.Formula
}

func (sf SignedFormula) String() string {
	return sf.Sign.String() + " " + sf.Formula.String()
}

// ExpansionKind tells how a signed formula decomposes.
type ExpansionKind int

const (
	// Terminal: the formula is an atom, i.e. a literal. No decomposition.
	Terminal ExpansionKind = iota
	// NonBranching: all components extend the current branch.
	NonBranching
	// Branching: each alternative starts its own branch.
	Branching
)

// An Expansion is the decomposition of a signed formula. For NonBranching
// expansions Alternatives holds a single component list; for Branching
// ones, each element of Alternatives belongs to a separate branch.
type Expansion struct {
	Kind         ExpansionKind
	Alternatives [][]SignedFormula
}

// Expand applies the decomposition rule for the signed formula's top
// connective. It is total over well-formed formulas and never fails.
func Expand(sf SignedFormula) Expansion {
	switch f := sf.Formula.(type) {
	case formula.Atom:
		return Expansion{Kind: Terminal}
	case formula.Not:
		return nonBranching(SignedFormula{sf.Sign.Negate(), f.Sub})
	case formula.And:
		if sf.Sign == True {
			return nonBranching(SignedFormula{True, f.Left}, SignedFormula{True, f.Right})
		}
		return branching(
			[]SignedFormula{{False, f.Left}},
			[]SignedFormula{{False, f.Right}},
		)
	case formula.Or:
		if sf.Sign == True {
			return branching(
				[]SignedFormula{{True, f.Left}},
				[]SignedFormula{{True, f.Right}},
			)
		}
		return nonBranching(SignedFormula{False, f.Left}, SignedFormula{False, f.Right})
	case formula.Implies:
		if sf.Sign == True {
			return branching(
				[]SignedFormula{{False, f.Left}},
				[]SignedFormula{{True, f.Right}},
			)
		}
		return nonBranching(SignedFormula{True, f.Left}, SignedFormula{False, f.Right})
	case formula.Iff:
		if sf.Sign == True {
			return branching(
				[]SignedFormula{{True, f.Left}, {True, f.Right}},
				[]SignedFormula{{False, f.Left}, {False, f.Right}},
			)
		}
		return branching(
			[]SignedFormula{{True, f.Left}, {False, f.Right}},
			[]SignedFormula{{False, f.Left}, {True, f.Right}},
		)
	default:
		panic(fmt.Errorf("invalid formula type %T", f))
	}
}

func nonBranching(components ...SignedFormula) Expansion {
	return Expansion{Kind: NonBranching, Alternatives: [][]SignedFormula{components}}
}

func branching(alternatives ...[]SignedFormula) Expansion {
	return Expansion{Kind: Branching, Alternatives: alternatives}
}
