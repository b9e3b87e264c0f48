package tableaux

import (
	"testing"

	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

var (
	atomA = formula.Atom{Name: "a"}
	atomB = formula.Atom{Name: "b"}
)

func TestExpandTerminal(t *testing.T) {
	for _, sign := range []Sign{True, False} {
		e := Expand(SignedFormula{sign, atomA})
		if e.Kind != Terminal {
			t.Errorf("%v a: expected Terminal, got %v", sign, e.Kind)
		}
	}
}

// One entry per (connective, sign) rule of the tableau calculus.
var expandTests = []struct {
	name string
	in   SignedFormula
	kind ExpansionKind
	want [][]SignedFormula
}{
	{
		"T ¬a",
		SignedFormula{True, formula.Not{Sub: atomA}},
		NonBranching,
		[][]SignedFormula{{{False, atomA}}},
	},
	{
		"F ¬a",
		SignedFormula{False, formula.Not{Sub: atomA}},
		NonBranching,
		[][]SignedFormula{{{True, atomA}}},
	},
	{
		"T a∧b",
		SignedFormula{True, formula.And{Left: atomA, Right: atomB}},
		NonBranching,
		[][]SignedFormula{{{True, atomA}, {True, atomB}}},
	},
	{
		"F a∧b",
		SignedFormula{False, formula.And{Left: atomA, Right: atomB}},
		Branching,
		[][]SignedFormula{{{False, atomA}}, {{False, atomB}}},
	},
	{
		"T a∨b",
		SignedFormula{True, formula.Or{Left: atomA, Right: atomB}},
		Branching,
		[][]SignedFormula{{{True, atomA}}, {{True, atomB}}},
	},
	{
		"F a∨b",
		SignedFormula{False, formula.Or{Left: atomA, Right: atomB}},
		NonBranching,
		[][]SignedFormula{{{False, atomA}, {False, atomB}}},
	},
	{
		"T a→b",
		SignedFormula{True, formula.Implies{Left: atomA, Right: atomB}},
		Branching,
		[][]SignedFormula{{{False, atomA}}, {{True, atomB}}},
	},
	{
		"F a→b",
		SignedFormula{False, formula.Implies{Left: atomA, Right: atomB}},
		NonBranching,
		[][]SignedFormula{{{True, atomA}, {False, atomB}}},
	},
	{
		"T a↔b",
		SignedFormula{True, formula.Iff{Left: atomA, Right: atomB}},
		Branching,
		[][]SignedFormula{{{True, atomA}, {True, atomB}}, {{False, atomA}, {False, atomB}}},
	},
	{
		"F a↔b",
		SignedFormula{False, formula.Iff{Left: atomA, Right: atomB}},
		Branching,
		[][]SignedFormula{{{True, atomA}, {False, atomB}}, {{False, atomA}, {True, atomB}}},
	},
}

func TestExpand(t *testing.T) {
	for _, test := range expandTests {
		e := Expand(test.in)
		if e.Kind != test.kind {
			t.Errorf("%s: expected kind %v, got %v", test.name, test.kind, e.Kind)
			continue
		}
		if len(e.Alternatives) != len(test.want) {
			t.Errorf("%s: expected %d alternatives, got %d", test.name, len(test.want), len(e.Alternatives))
			continue
		}
		for i, alt := range test.want {
			if len(e.Alternatives[i]) != len(alt) {
				t.Errorf("%s: alternative %d: expected %d components, got %d", test.name, i, len(alt), len(e.Alternatives[i]))
				continue
			}
			for j, sf := range alt {
				if e.Alternatives[i][j] != sf {
					t.Errorf("%s: alternative %d, component %d: expected %v, got %v",
						test.name, i, j, sf, e.Alternatives[i][j])
				}
			}
		}
	}
}
