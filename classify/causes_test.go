package classify

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

func TestMinimalCauses(t *testing.T) {
	tests := []struct {
		expr string
		want [][]string
	}{
		// Removing a leaves (b ∨ c), a contingency.
		{"(((¬a) ∨ b) ∨ (c ∨ a))", [][]string{{"a"}}},
		// Removing a removes the whole formula.
		{"(a ∧ (¬a))", [][]string{{"a"}}},
		{"(a ∨ (¬a))", [][]string{{"a"}}},
		// Removing only a or only b leaves the other excluded middle intact;
		// both must go.
		{"((a ∨ (¬a)) ∧ (b ∨ (¬b)))", [][]string{{"a", "b"}}},
		// Removing either atom collapses the disjunction to a lone atom.
		{"((a → b) ∨ (b → a))", [][]string{{"a"}, {"b"}}},
		// Only the conclusion's atom can break modus ponens: without b the
		// formula reduces to ((a ∧ a)), a contingency.
		{"(((a → b) ∧ a) → b)", [][]string{{"b"}}},
	}
	for _, test := range tests {
		f := mustParse(t, test.expr)
		v := Classify(f)
		if !reflect.DeepEqual(v.Causes, test.want) {
			t.Errorf("Classify(%q).Causes = %v, want %v", test.expr, v.Causes, test.want)
		}
	}
}

// No reported cause may have a strict subset that also destroys the
// property, and every reported cause must actually destroy it.
func TestCausesAreMinimal(t *testing.T) {
	exprs := []string{
		"(((¬a) ∨ b) ∨ (c ∨ a))",
		"((a ∨ (¬a)) ∧ (b ∨ (¬b)))",
		"(((a → b) ∧ a) → b)",
		"((a ∨ b) ∧ ((¬a) ∧ (¬b)))",
	}
	for _, expr := range exprs {
		f := mustParse(t, expr)
		v := Classify(f)
		if v.Kind == Contingency {
			t.Fatalf("%s: expected a tautology or contradiction", expr)
		}
		if len(v.Causes) == 0 {
			t.Errorf("%s: expected at least one cause", expr)
		}
		for _, cause := range v.Causes {
			if !destroys(f, v.Kind, cause) {
				t.Errorf("%s: reported cause %v does not destroy the property", expr, cause)
			}
			forEachStrictSubset(cause, func(sub []string) {
				if destroys(f, v.Kind, sub) {
					t.Errorf("%s: cause %v is not minimal, subset %v suffices", expr, cause, sub)
				}
			})
		}
	}
}

func forEachStrictSubset(names []string, visit func([]string)) {
	for size := 1; size < len(names); size++ {
		subsets(names, size, visit)
	}
}

func TestSubsets(t *testing.T) {
	var got [][]string
	subsets([]string{"a", "b", "c"}, 2, func(s []string) {
		got = append(got, append([]string(nil), s...))
	})
	want := [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("subsets of size 2 = %v, want %v", got, want)
	}
}

func ExampleClassify_causes() {
	f, _ := formula.Parse("(((¬a) ∨ b) ∨ (c ∨ a))")
	v := Classify(f)
	fmt.Println(v.Kind, v.Causes)
	// Output: tautology [[a]]
}
