package tableaux

import (
	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

// A Branch is one fully expanded path of a tableau: the set of literals
// accumulated along it, and whether two of them are complementary. An open
// branch denotes a satisfying assignment for the root signed formula.
type Branch struct {
	Literals []formula.Literal
	Closed   bool
}

// Model returns the assignment denoted by the branch: each literal's atom
// is bound to its asserted polarity. Atoms absent from the branch are
// unconstrained and do not appear in the model.
func (b Branch) Model() map[string]bool {
	m := make(map[string]bool, len(b.Literals))
	for _, l := range b.Literals {
		m[l.Name] = !l.Negated
	}
	return m
}

func (b Branch) contains(lit formula.Literal) bool {
	for _, l := range b.Literals {
		if l == lit {
			return true
		}
	}
	return false
}

func (b Branch) closes(lit formula.Literal) bool {
	for _, l := range b.Literals {
		if formula.Complementary(l, lit) {
			return true
		}
	}
	return false
}

// clone returns an independent copy of the branch, so sibling branches
// never share backing storage.
func (b Branch) clone() Branch {
	return Branch{Literals: append([]formula.Literal(nil), b.Literals...), Closed: b.Closed}
}

// A Tableau is the set of fully expanded branches obtained from a root
// signed formula.
type Tableau struct {
	Root     SignedFormula
	Branches []Branch
}

// AllClosed reports whether every branch of the tableau is closed, i.e.
// whether the root signed formula is unsatisfiable.
func (t Tableau) AllClosed() bool {
	for _, b := range t.Branches {
		if !b.Closed {
			return false
		}
	}
	return true
}

// Open returns the open branches of the tableau.
func (t Tableau) Open() []Branch {
	var open []Branch
	for _, b := range t.Branches {
		if !b.Closed {
			open = append(open, b)
		}
	}
	return open
}

// Build expands the root signed formula into its complete tableau by
// exhaustively applying the decomposition rules. The function is pure: it
// allocates everything it returns and shares nothing across branches.
func Build(root SignedFormula) Tableau {
	t := Tableau{Root: root}
	t.expand(Branch{}, []SignedFormula{root})
	return t
}

// expand grows one branch depth-first until it closes or only literals
// remain, collecting every finished branch into the tableau. pending is a
// stack of signed formulas still to decompose on this branch.
func (t *Tableau) expand(b Branch, pending []SignedFormula) {
	for len(pending) > 0 {
		sf := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		e := Expand(sf)
		switch e.Kind {
		case Terminal:
			lit := formula.Literal{
				Name:    sf.Formula.(formula.Atom).Name,
				Negated: sf.Sign == False,
			}
			if b.closes(lit) {
				// Closure is detected as soon as the literal is added, so no
				// work is wasted expanding a dead branch.
				b.Literals = append(b.Literals, lit)
				b.Closed = true
				t.Branches = append(t.Branches, b)
				return
			}
			if !b.contains(lit) {
				b.Literals = append(b.Literals, lit)
			}
		case NonBranching:
			pending = append(pending, e.Alternatives[0]...)
		case Branching:
			for _, alt := range e.Alternatives {
				rest := make([]SignedFormula, 0, len(pending)+len(alt))
				rest = append(rest, pending...)
				rest = append(rest, alt...)
				t.expand(b.clone(), rest)
			}
			return
		}
	}
	t.Branches = append(t.Branches, b)
}
