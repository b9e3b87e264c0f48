package formula

import (
	"fmt"
	"strings"
	"text/scanner"
	"unicode"
)

// A SyntaxError describes a malformed formula and where the problem was
// found. Parsing is the only stage that can fail: every later stage
// operates on well-formed formulas.
type SyntaxError struct {
	Pos scanner.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %v: %s", e.Pos, e.Msg)
}

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	token string // Last token read
}

// Parse parses a propositional formula from its textual form.
// Formulas are written with the following connectives:
//
//   - negation: "¬", "~" or "!", unary,
//   - conjunction: "∧" or "&",
//   - disjunction: "∨" or "|",
//   - implication: "→" or "->",
//   - biconditional: "↔" or "<->".
//
// There is no operator precedence: at most one binary connective may appear
// per grouping level, so any expression with several binary connectives
// must be explicitly parenthesized. "(a ∧ b) ∨ c" is accepted,
// "a ∧ b ∨ c" is a SyntaxError. Brackets "[]" and "{}" can be used for
// grouping as well, each closed by its own counterpart.
func Parse(text string) (Formula, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(text))
	s.Mode = scanner.ScanIdents
	s.Error = func(*scanner.Scanner, string) {} // Errors surface as bad tokens
	p := parser{s: s}
	p.scan()
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, p.errorf("unexpected trailing token %q", p.token)
	}
	return f, nil
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
}

func (p *parser) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: p.s.Pos(), Msg: fmt.Sprintf(format, args...)}
}

// parseExpr parses "unary [connective unary]". A second connective at the
// same level is left for the caller, which rejects it: precedence is never
// inferred.
func (p *parser) parseExpr() (Formula, error) {
	f, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.eof || isClosing(p.token) {
		return f, nil
	}
	combine, err := p.parseConnective()
	if err != nil {
		return nil, err
	}
	g, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return combine(f, g), nil
}

// parseConnective consumes one binary connective. "->" and "<->" arrive as
// several tokens from the scanner and are matched piecewise.
func (p *parser) parseConnective() (func(l, r Formula) Formula, error) {
	switch p.token {
	case SymAnd, "&":
		p.scan()
		return func(l, r Formula) Formula { return And{l, r} }, nil
	case SymOr, "|":
		p.scan()
		return func(l, r Formula) Formula { return Or{l, r} }, nil
	case SymImplies:
		p.scan()
		return func(l, r Formula) Formula { return Implies{l, r} }, nil
	case SymIff:
		p.scan()
		return func(l, r Formula) Formula { return Iff{l, r} }, nil
	case "-":
		p.scan()
		if p.eof || p.token != ">" {
			return nil, p.errorf("invalid connective %q", "-"+p.token)
		}
		p.scan()
		return func(l, r Formula) Formula { return Implies{l, r} }, nil
	case "<":
		p.scan()
		if p.eof || p.token != "-" {
			return nil, p.errorf("invalid connective %q", "<"+p.token)
		}
		p.scan()
		if p.eof || p.token != ">" {
			return nil, p.errorf("invalid connective %q", "<-"+p.token)
		}
		p.scan()
		return func(l, r Formula) Formula { return Iff{l, r} }, nil
	default:
		return nil, p.errorf("expected a connective or end of group, found %q (missing parentheses?)", p.token)
	}
}

func (p *parser) parseUnary() (Formula, error) {
	if p.eof {
		return nil, p.errorf("expected a formula, found end of input")
	}
	if negationTokens[p.token] {
		p.scan()
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{Sub: sub}, nil
	}
	if closing, ok := brackets[p.token]; ok {
		open := p.token
		p.scan()
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, p.errorf("expected %q, found end of input", closing)
		}
		if p.token != closing {
			return nil, p.errorf("expected %q to close %q, found %q", closing, open, p.token)
		}
		p.scan()
		return f, nil
	}
	if isIdent(p.token) {
		name := p.token
		p.scan()
		return Atom{Name: name}, nil
	}
	return nil, p.errorf("unexpected token %q", p.token)
}

// The scanner only ever produces identifier tokens or single runes, so
// inspecting the first rune is enough.
func isIdent(token string) bool {
	for _, r := range token {
		return unicode.IsLetter(r) || r == '_'
	}
	return false
}

func isClosing(token string) bool {
	return token == ")" || token == "]" || token == "}"
}
