// Package tableaux builds analytic tableaux for signed propositional
// formulas.
//
// A signed formula pairs a formula with an assumed truth value. The tableau
// method decomposes a signed formula into signed subformulas by applying,
// for each (connective, sign) pair, one of the following rules:
//
//	T ¬A       ⇒  F A                     non-branching
//	F ¬A       ⇒  T A                     non-branching
//	T (A ∧ B)  ⇒  T A, T B                non-branching
//	F (A ∧ B)  ⇒  F A | F B               branching
//	T (A ∨ B)  ⇒  T A | T B               branching
//	F (A ∨ B)  ⇒  F A, F B                non-branching
//	T (A → B)  ⇒  F A | T B               branching
//	F (A → B)  ⇒  T A, F B                non-branching
//	T (A ↔ B)  ⇒  (T A, T B) | (F A, F B) branching
//	F (A ↔ B)  ⇒  (T A, F B) | (F A, T B) branching
//
// Non-branching components extend the current branch; branching
// alternatives each start their own branch. A branch is closed as soon as
// it contains two complementary literals. Expanding until only literals
// remain yields a complete tableau: the root signed formula is satisfiable
// exactly when some branch stays open, which is what the classifier
// exploits to detect tautologies and contradictions.
//
// Every rule replaces a connective by strictly smaller subformulas, so
// construction always terminates. The number of branches, however, can grow
// exponentially with the number of branching connectives; this is inherent
// to the method.
package tableaux
