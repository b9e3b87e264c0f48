package formula

// Canonical spelling of each connective, used when rendering formulas.
const (
	SymNot     = "¬"
	SymAnd     = "∧"
	SymOr      = "∨"
	SymImplies = "→"
	SymIff     = "↔"
)

// Alternate spellings accepted by the parser, ASCII included.
// "->" and "<->" are sequences of several tokens and are matched by the
// parser itself rather than listed here.
var negationTokens = map[string]bool{"¬": true, "~": true, "!": true}

// Matching bracket pairs. Any opening bracket can be used for grouping as
// long as it is closed by its counterpart.
var brackets = map[string]string{"(": ")", "[": "]", "{": "}"}

// A Literal is an atomic proposition together with a polarity.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return SymNot + l.Name
	}
	return l.Name
}

// Complementary reports whether l and m assert opposite polarities of the
// same atom. A branch containing two complementary literals is closed.
func Complementary(l, m Literal) bool {
	return l.Name == m.Name && l.Negated != m.Negated
}
