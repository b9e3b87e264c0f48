package classify

import (
	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
	"github.com/hendrixgg/Analytic-Tableaux-Method/tableaux"
)

// witnesses turns the open branches of a tableau into minimized clauses.
// Each open branch of the formula-assumed-true tableau yields a conjunction
// of literals forcing the formula true (want = true); the assumed-false
// tableau symmetrically yields the clauses forcing it false. Duplicate and
// subsumed clauses are dropped.
func witnesses(f formula.Formula, t tableaux.Tableau, want bool) []Clause {
	var clauses []Clause
	for _, b := range t.Open() {
		c := Clause(append([]formula.Literal(nil), b.Literals...))
		clauses = append(clauses, minimize(f, c, want))
	}
	return pruneSubsumed(clauses)
}

// minimize drops every literal whose removal leaves the remaining literals
// still sufficient to force f to want. Sufficiency is re-verified by
// evaluation, not inferred from the tableau.
func minimize(f formula.Formula, c Clause, want bool) Clause {
	for i := 0; i < len(c); {
		reduced := make(Clause, 0, len(c)-1)
		reduced = append(reduced, c[:i]...)
		reduced = append(reduced, c[i+1:]...)
		if forces(f, reduced, want) {
			c = reduced
		} else {
			i++
		}
	}
	return c
}

// forces reports whether every assignment consistent with c makes f
// evaluate to want, by enumerating all bindings of the unconstrained atoms.
func forces(f formula.Formula, c Clause, want bool) bool {
	fixed := make(map[string]bool, len(c))
	for _, l := range c {
		fixed[l.Name] = !l.Negated
	}
	var free []string
	for _, name := range formula.Atoms(f) {
		if _, ok := fixed[name]; !ok {
			free = append(free, name)
		}
	}
	model := make(map[string]bool, len(fixed)+len(free))
	for bits := 0; bits < 1<<uint(len(free)); bits++ {
		for name, value := range fixed {
			model[name] = value
		}
		for i, name := range free {
			model[name] = bits&(1<<uint(i)) != 0
		}
		if f.Eval(model) != want {
			return false
		}
	}
	return true
}

// pruneSubsumed removes duplicate clauses and any clause whose literals are
// a superset of another clause's: the smaller clause already covers it.
func pruneSubsumed(clauses []Clause) []Clause {
	var kept []Clause
	for i, c := range clauses {
		redundant := false
		for j, d := range clauses {
			if i == j {
				continue
			}
			if subsumes(d, c) && (len(d) < len(c) || j < i) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}
	return kept
}

// subsumes reports whether every literal of d appears in c.
func subsumes(d, c Clause) bool {
	for _, l := range d {
		found := false
		for _, m := range c {
			if l == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
