package peg

import (
	"fmt"
	"strings"
)

// Expr is a parsing expression. Expressions are created with the combinator
// functions of this package and are immutable once a grammar is compiled.
type Expr interface {
	// match tries to match at position pos and returns the position after
	// the match.
	match(st *state, pos int) (int, bool)
	// resolve binds rule references to the rules of a grammar.
	resolve(g *Grammar) error
	String() string
}

// --- Terminals -------------------------------------------------------------

type oneOf struct {
	set map[rune]struct{}
	str string
}

// OneOf matches a single rune out of a set.
func OneOf(runes ...rune) Expr {
	e := &oneOf{set: make(map[rune]struct{}, len(runes))}
	for _, r := range runes {
		e.set[r] = struct{}{}
	}
	e.str = "[" + string(runes) + "]"
	return e
}

func (e *oneOf) match(st *state, pos int) (int, bool) {
	pos = st.skip(pos)
	if pos < len(st.input) {
		if _, ok := e.set[st.input[pos]]; ok {
			return pos + 1, true
		}
	}
	st.fail(pos)
	return pos, false
}

func (e *oneOf) resolve(*Grammar) error { return nil }
func (e *oneOf) String() string         { return e.str }

type literal struct {
	runes []rune
}

// Cells matches a fixed sequence of runes. Blanks are not permitted between
// the runes of the sequence.
func Cells(s string) Expr {
	return &literal{runes: []rune(s)}
}

func (e *literal) match(st *state, pos int) (int, bool) {
	pos = st.skip(pos)
	if pos+len(e.runes) > len(st.input) {
		st.fail(pos)
		return pos, false
	}
	for i, r := range e.runes {
		if st.input[pos+i] != r {
			st.fail(pos)
			return pos, false
		}
	}
	return pos + len(e.runes), true
}

func (e *literal) resolve(*Grammar) error { return nil }
func (e *literal) String() string         { return "'" + string(e.runes) + "'" }

type soi struct{}

// SOI matches at the start of the input, i.e. if nothing but blanks
// precedes the current position.
func SOI() Expr { return soi{} }

func (soi) match(st *state, pos int) (int, bool) {
	for i := 0; i < pos && i < len(st.input); i++ {
		if !st.g.blank(st.input[i]) {
			return pos, false
		}
	}
	return pos, true
}
func (soi) resolve(*Grammar) error { return nil }
func (soi) String() string         { return "SOI" }

type eoi struct{}

// EOI matches at the end of the input, after skipping trailing blanks.
func EOI() Expr { return eoi{} }

func (eoi) match(st *state, pos int) (int, bool) {
	pos = st.skip(pos)
	if pos == len(st.input) {
		return pos, true
	}
	st.failExpecting(pos, "EOI")
	return pos, false
}
func (eoi) resolve(*Grammar) error { return nil }
func (eoi) String() string         { return "EOI" }

// --- Combinators -----------------------------------------------------------

type seq struct {
	exprs []Expr
}

// Seq matches all expressions in order.
func Seq(exprs ...Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &seq{exprs: exprs}
}

func (e *seq) match(st *state, pos int) (int, bool) {
	mark := st.mark()
	p := pos
	for _, x := range e.exprs {
		var ok bool
		if p, ok = x.match(st, p); !ok {
			st.reset(mark)
			return pos, false
		}
	}
	return p, true
}

func (e *seq) resolve(g *Grammar) error { return resolveAll(g, e.exprs) }
func (e *seq) String() string           { return "(" + join(e.exprs, " ") + ")" }

type choice struct {
	exprs []Expr
}

// Choice matches the first of a list of alternatives which succeeds.
func Choice(exprs ...Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &choice{exprs: exprs}
}

func (e *choice) match(st *state, pos int) (int, bool) {
	for _, x := range e.exprs {
		if p, ok := x.match(st, pos); ok {
			return p, true
		}
		if st.err != nil {
			break
		}
	}
	return pos, false
}

func (e *choice) resolve(g *Grammar) error { return resolveAll(g, e.exprs) }
func (e *choice) String() string           { return "(" + join(e.exprs, " / ") + ")" }

type repeat struct {
	expr Expr
	min  int
}

// Many matches an expression zero or more times.
func Many(x Expr) Expr { return &repeat{expr: x, min: 0} }

// Some matches an expression one or more times.
func Some(x Expr) Expr { return &repeat{expr: x, min: 1} }

func (e *repeat) match(st *state, pos int) (int, bool) {
	mark := st.mark()
	p, n := pos, 0
	for {
		q, ok := e.expr.match(st, p)
		if !ok || q == p { // stop on failure or on an empty match
			break
		}
		p = q
		n++
	}
	if n < e.min || st.err != nil {
		st.reset(mark)
		return pos, false
	}
	return p, true
}

func (e *repeat) resolve(g *Grammar) error { return e.expr.resolve(g) }
func (e *repeat) String() string {
	if e.min == 0 {
		return e.expr.String() + "*"
	}
	return e.expr.String() + "+"
}

type optional struct {
	expr Expr
}

// Opt matches an expression or nothing.
func Opt(x Expr) Expr { return &optional{expr: x} }

func (e *optional) match(st *state, pos int) (int, bool) {
	if p, ok := e.expr.match(st, pos); ok {
		return p, true
	}
	return pos, st.err == nil
}

func (e *optional) resolve(g *Grammar) error { return e.expr.resolve(g) }
func (e *optional) String() string           { return e.expr.String() + "?" }

type lookahead struct {
	expr   Expr
	negate bool
}

// And is a positive lookahead: it matches if x matches, without consuming input.
func And(x Expr) Expr { return &lookahead{expr: x} }

// Not is a negative lookahead: it matches if x does not match, without
// consuming input.
func Not(x Expr) Expr { return &lookahead{expr: x, negate: true} }

func (e *lookahead) match(st *state, pos int) (int, bool) {
	mark := st.mark()
	st.quiet++
	_, ok := e.expr.match(st, pos)
	st.quiet--
	st.reset(mark)
	if st.err != nil {
		return pos, false
	}
	return pos, ok != e.negate
}

func (e *lookahead) resolve(g *Grammar) error { return e.expr.resolve(g) }
func (e *lookahead) String() string {
	if e.negate {
		return "!" + e.expr.String()
	}
	return "&" + e.expr.String()
}

type atomic struct {
	expr Expr
}

// Atomic switches off implicit blank skipping inside x. Blanks in front of
// the atomic section are still skipped.
func Atomic(x Expr) Expr { return &atomic{expr: x} }

func (e *atomic) match(st *state, pos int) (int, bool) {
	pos = st.skip(pos)
	st.atomic++
	p, ok := e.expr.match(st, pos)
	st.atomic--
	return p, ok
}

func (e *atomic) resolve(g *Grammar) error { return e.expr.resolve(g) }
func (e *atomic) String() string           { return "@" + e.expr.String() }

// --- Rule references -------------------------------------------------------

type ref struct {
	name string
	rule *rule
}

// Ref invokes the named rule of the grammar. References are resolved by
// Grammar.Compile, rules may therefore be referenced before they are defined.
func Ref(name string) Expr {
	return &ref{name: name}
}

func (e *ref) match(st *state, pos int) (int, bool) {
	return st.invoke(e.rule, pos)
}

func (e *ref) resolve(g *Grammar) error {
	r, ok := g.rules[e.name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUndefinedRule, e.name)
	}
	e.rule = r
	return nil
}

func (e *ref) String() string { return e.name }

func resolveAll(g *Grammar, exprs []Expr) error {
	for _, x := range exprs {
		if err := x.resolve(g); err != nil {
			return err
		}
	}
	return nil
}

func join(exprs []Expr, sep string) string {
	s := make([]string, len(exprs))
	for i, x := range exprs {
		s[i] = x.String()
	}
	return strings.Join(s, sep)
}
