package classify

import (
	log "github.com/sirupsen/logrus"

	"github.com/hendrixgg/Analytic-Tableaux-Method/formula"
)

// minimalCauses searches the power set of f's atoms, smallest subsets
// first, for the minimal sets whose removal changes the verdict away from
// kind. Supersets of a found cause are never tested, so every reported set
// is subset-minimal; all minimal causes of every size are reported. The
// search is exponential in the number of atoms, which is inherent to the
// question being asked.
func minimalCauses(f formula.Formula, kind Kind) [][]string {
	atoms := formula.Atoms(f)
	var causes [][]string
	for size := 1; size <= len(atoms); size++ {
		subsets(atoms, size, func(subset []string) {
			if coveredBy(causes, subset) {
				return
			}
			if destroys(f, kind, subset) {
				log.Debugf("cause of size %d: %v", size, subset)
				causes = append(causes, append([]string(nil), subset...))
			}
		})
	}
	return causes
}

// destroys reports whether removing the atoms in subset changes f's verdict
// away from kind. Removing the whole formula destroys the property too.
func destroys(f formula.Formula, kind Kind, subset []string) bool {
	drop := make(map[string]bool, len(subset))
	for _, name := range subset {
		drop[name] = true
	}
	reduced, ok := formula.Without(f, drop)
	if !ok {
		return true
	}
	return kindOnly(reduced) != kind
}

// coveredBy reports whether some already-found cause is a subset of the
// candidate, making the candidate non-minimal.
func coveredBy(causes [][]string, candidate []string) bool {
	for _, cause := range causes {
		if subset(cause, candidate) {
			return true
		}
	}
	return false
}

// subset reports whether every name in small appears in big. Both are
// sorted, but sizes are tiny so a nested scan is fine.
func subset(small, big []string) bool {
	for _, name := range small {
		if !contains(big, name) {
			return false
		}
	}
	return true
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// subsets calls visit with every subset of names of the given size, in
// lexicographic order of positions. The slice passed to visit is reused
// between calls.
func subsets(names []string, size int, visit func([]string)) {
	chosen := make([]string, 0, size)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == size {
			visit(chosen)
			return
		}
		for i := start; i <= len(names)-(size-len(chosen)); i++ {
			chosen = append(chosen, names[i])
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)
}
