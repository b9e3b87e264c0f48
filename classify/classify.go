// Package classify decides the logical status of a propositional formula
// using the method of analytic tableaux, and explains the verdict: minimal
// sets of atoms responsible for a tautology or contradiction, and minimal
// literal clauses witnessing each truth value of a contingent formula.
package classify

import (
	"strings"

	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
	"github.com/hendrixgg/Analytic-Tableaux-Method/tableaux"
)

// Kind is the logical status of a formula.
type Kind int

const (
	// Tautology: true under every assignment.
	Tautology Kind = iota
	// Contradiction: false under every assignment.
	Contradiction
	// Contingency: true under some assignments, false under others.
	Contingency
)

func (k Kind) String() string {
	switch k {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingency:
		return "contingency"
	default:
		return "unknown"
	}
}

// A Verdict is the classification of a formula together with its
// explanation. Causes is filled for tautologies and contradictions, TrueOn
// and FalseOn for contingencies.
type Verdict struct {
	Kind Kind

	// Causes holds the minimal sets of atoms whose removal from the formula
	// destroys the property. Each set is sorted; no set is a superset of
	// another.
	Causes [][]string

	// TrueOn holds the minimal conjunctive clauses under which the formula
	// is true; FalseOn those under which it is false.
	TrueOn  []Clause
	FalseOn []Clause
}

// Classify decides whether f is a tautology, a contradiction or contingent
// and attaches the explanation for the verdict. It is a pure function:
// the tableaux it builds are discarded once the verdict is extracted.
func Classify(f formula.Formula) Verdict {
	asTrue := tableaux.Build(tableaux.SignedFormula{Sign: tableaux.True, Formula: f})
	asFalse := tableaux.Build(tableaux.SignedFormula{Sign: tableaux.False, Formula: f})
	v := Verdict{Kind: kindOf(asTrue, asFalse)}
	switch v.Kind {
	case Tautology, Contradiction:
		v.Causes = minimalCauses(f, v.Kind)
	case Contingency:
		v.TrueOn = witnesses(f, asTrue, true)
		v.FalseOn = witnesses(f, asFalse, false)
	}
	return v
}

// ClassifyString parses text and classifies the resulting formula. The only
// possible error is a *formula.SyntaxError from parsing.
func ClassifyString(text string) (Verdict, error) {
	f, err := formula.Parse(text)
	if err != nil {
		return Verdict{}, err
	}
	return Classify(f), nil
}

// kindOf combines the two tableaux into a verdict. If no assignment
// falsifies the formula it is a tautology; if none satisfies it, a
// contradiction; otherwise it is contingent.
func kindOf(asTrue, asFalse tableaux.Tableau) Kind {
	switch {
	case asFalse.AllClosed():
		return Tautology
	case asTrue.AllClosed():
		return Contradiction
	default:
		return Contingency
	}
}

// kindOnly classifies without computing any explanation. The cause search
// reclassifies many reduced formulas and only needs the kind.
func kindOnly(f formula.Formula) Kind {
	asTrue := tableaux.Build(tableaux.SignedFormula{Sign: tableaux.True, Formula: f})
	asFalse := tableaux.Build(tableaux.SignedFormula{Sign: tableaux.False, Formula: f})
	return kindOf(asTrue, asFalse)
}

// A Clause is a conjunction of literals.
type Clause []formula.Literal

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, " "+formula.SymAnd+" ")
}
