package main

// catalog is the fixed set of example formulas the CLI can prove by index.
// The grammar does not infer precedence, so every entry is written fully
// parenthesized.
var catalog = []string{
	"(a ∨ (¬a))",                      // law of excluded middle
	"(a ∧ (¬a))",                      // law of noncontradiction
	"(a ∧ b)",
	"((a → b) ∧ a)",
	"(((a → b) ∧ a) → b)",             // modus ponens
	"(((a → b) ∧ (¬b)) → (¬a))",       // modus tollens
	"((a → b) → ((¬b) → (¬a)))",       // contraposition
	"(a ↔ (¬(¬a)))",                   // double negation
	"((¬(a ∧ b)) ↔ ((¬a) ∨ (¬b)))",    // De Morgan
	"(((a → b) ∧ (b → c)) → (a → c))", // hypothetical syllogism
	"(a → (b → a))",
	"(((¬a) ∨ b) ∨ (c ∨ a))",
	"(((¬a) ∧ b) ∨ c)",
}
