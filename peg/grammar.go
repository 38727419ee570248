package peg

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
)

// Errors returned by grammars.
var (
	ErrNoMatch       = errors.New("peg: input does not match grammar")
	ErrTooDeep       = errors.New("peg: rule nesting too deep")
	ErrUndefinedRule = errors.New("peg: undefined rule")
	ErrNotCompiled   = errors.New("peg: grammar not compiled")
)

// DefaultMaxDepth is the default bound for nested rule invocations.
const DefaultMaxDepth = 512

type rule struct {
	name  string
	expr  Expr
	index int
}

// Grammar is a set of named parsing rules. After Compile a grammar is
// immutable and may be used by concurrent parses.
type Grammar struct {
	name     string
	rules    map[string]*rule
	order    []string
	compiled bool
	maxDepth int
	blank    func(rune) bool
}

// Option configures a grammar.
type Option func(*Grammar)

// MaxDepth sets the maximum depth of nested rule invocations.
func MaxDepth(depth int) Option {
	return func(g *Grammar) {
		if depth > 0 {
			g.maxDepth = depth
		}
	}
}

// Blanks sets the predicate for runes which are skipped implicitly.
// The default skips blank braille cells and literal whitespace.
func Blanks(isBlank func(rune) bool) Option {
	return func(g *Grammar) {
		if isBlank != nil {
			g.blank = isBlank
		}
	}
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string, opts ...Option) *Grammar {
	g := &Grammar{
		name:     name,
		rules:    make(map[string]*rule),
		maxDepth: DefaultMaxDepth,
		blank:    cells.IsBlank,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Define adds a rule to the grammar. Defining a rule a second time replaces
// the earlier definition, which lets clients tailor an existing grammar
// before compiling it. Define must not be called after Compile.
func (g *Grammar) Define(name string, x Expr) {
	if g.compiled {
		T().Errorf("peg: grammar %s already compiled, ignoring rule %s", g.name, name)
		return
	}
	if r, ok := g.rules[name]; ok {
		r.expr = x
		return
	}
	g.rules[name] = &rule{name: name, expr: x, index: len(g.order)}
	g.order = append(g.order, name)
}

// Rule returns the body of a rule, or nil if the rule is not defined.
func (g *Grammar) Rule(name string) Expr {
	if r, ok := g.rules[name]; ok {
		return r.expr
	}
	return nil
}

// Has is true if a rule is defined.
func (g *Grammar) Has(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// RuleNames returns the names of all rules in order of definition.
func (g *Grammar) RuleNames() []string {
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Compile resolves all rule references. It fails if a rule references an
// undefined rule.
func (g *Grammar) Compile() error {
	if g.compiled {
		return nil
	}
	for _, name := range g.order {
		if err := g.rules[name].expr.resolve(g); err != nil {
			return fmt.Errorf("grammar %s, rule %s: %w", g.name, name, err)
		}
	}
	g.compiled = true
	T().Debugf("peg: compiled grammar %s with %d rules", g.name, len(g.order))
	return nil
}

// Parse matches the complete input against a start rule and returns the
// parse tree. The start rule has to consume the input completely, usually by
// ending with EOI; otherwise the unmatched rest is reported as an error.
func (g *Grammar) Parse(start string, input []rune) (*Node, error) {
	if !g.compiled {
		return nil, ErrNotCompiled
	}
	r, ok := g.rules[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUndefinedRule, start)
	}
	st := borrowState(g, input)
	defer releaseState(st)
	end, matched := st.invoke(r, 0)
	if st.err != nil {
		return nil, st.parseError()
	}
	if !matched {
		return nil, st.parseError()
	}
	if end = st.skip(end); end < len(input) {
		st.failExpecting(end, "EOI")
		return nil, st.parseError()
	}
	root := st.nodes[len(st.nodes)-1]
	T().Debugf("peg: %s parsed %d cells", g.name, len(input))
	return root, nil
}

// ParseError is returned for input which does not match a grammar.
type ParseError struct {
	Pos      int      // farthest position reached by the parser
	Expected []string // names of rules expected at Pos, sorted
	Err      error    // ErrNoMatch or ErrTooDeep
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrTooDeep) {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v at position %d, expected %s", e.Err, e.Pos, strings.Join(e.Expected, ", "))
}

// Unwrap returns the cause of the error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func (st *state) parseError() *ParseError {
	pe := &ParseError{Pos: st.farthest, Err: ErrNoMatch}
	if st.err != nil {
		pe.Err = st.err
	}
	if pe.Pos < 0 {
		pe.Pos = 0
	}
	for name := range st.expected {
		pe.Expected = append(pe.Expected, name)
	}
	sort.Strings(pe.Expected)
	return pe
}
