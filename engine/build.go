package engine

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/peg"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// Builder walks a parse tree and creates the corresponding semantic tree.
// A builder is used for a single parse only.
type Builder struct {
	dialect  *Dialect
	warnings *Collector
	start    int // position of the first cell of the expression, -1 if unknown
}

// NewBuilder creates a builder for parse trees of a dialect's grammar.
// Warnings go to c.
func NewBuilder(d *Dialect, c *Collector) *Builder {
	if c == nil {
		c = NewCollector()
	}
	return &Builder{dialect: d, warnings: c, start: -1}
}

// Dialect returns the dialect the builder works for.
func (b *Builder) Dialect() *Dialect {
	return b.dialect
}

// Warn records a non-fatal anomaly.
func (b *Builder) Warn(w Warning) {
	b.warnings.Warn(w)
}

// Build creates the semantic node for a parse tree node. Every rule produces
// exactly one node; indicator rules produce Empty.
func (b *Builder) Build(n *peg.Node) (semantic.Node, error) {
	if build, ok := b.dialect.Builders[n.Rule]; ok {
		return build(b, n)
	}
	switch n.Rule {
	case RuleMath:
		b.start = n.Pos
		return b.row(n)
	case RuleExpression, RuleTerm:
		return b.row(n)
	case RuleScriptedAtom:
		return b.scriptedAtom(n)
	case RuleScript, RuleSuperscript, RuleSubscript:
		// a script without a preceding atom has an empty base
		sub, sup, err := b.script(n)
		if err != nil {
			return nil, err
		}
		return semantic.Scripted(&semantic.Empty{}, sub, sup), nil
	case RuleScriptContent:
		return b.scriptContent(n)
	case RuleAtom:
		return b.atom(n)
	case RuleNumber:
		return b.number(n)
	case RuleLetter:
		return b.letter(n)
	case RuleGreekLetter:
		return b.greek(n)
	case RuleFraction:
		return b.fraction(n)
	case RuleRadical:
		return b.radical(n)
	case RuleGrouped:
		return b.grouped(n)
	case RuleOperator:
		return b.operator(n)
	case RuleSpecialSymbol:
		return b.symbol(n)
	}
	if IsIndicatorRule(n.Rule) {
		return &semantic.Empty{}, nil
	}
	if isCategoryRule(n.Rule) {
		return b.operator(n)
	}
	if glyph, ok := b.dialect.OperatorGlyph(n.Rule); ok {
		return &semantic.Operator{Glyph: glyph}, nil
	}
	b.Warn(UnexpectedIndicator{Indicator: "Unknown rule: " + n.Rule, Position: n.Pos})
	return &semantic.Text{Content: n.Text}, nil
}

// BuildChildren builds all children of a node and drops empty results.
func (b *Builder) BuildChildren(n *peg.Node) ([]semantic.Node, error) {
	nodes := make([]semantic.Node, 0, len(n.Children))
	for _, ch := range n.Children {
		node, err := b.Build(ch)
		if err != nil {
			return nil, err
		}
		if !semantic.IsEmpty(node) {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func (b *Builder) row(n *peg.Node) (semantic.Node, error) {
	nodes, err := b.BuildChildren(n)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, parseError(n, "Empty expression")
	}
	return semantic.NewRow(nodes...), nil
}

func (b *Builder) scriptedAtom(n *peg.Node) (semantic.Node, error) {
	var base, sub, sup semantic.Node
	for _, ch := range n.Children {
		if ch.Rule != RuleScript {
			node, err := b.Build(ch)
			if err != nil {
				return nil, err
			}
			base = node
			continue
		}
		s, p, err := b.script(ch)
		if err != nil {
			return nil, err
		}
		// a second script of the same kind starts a new level
		if (s != nil && sub != nil) || (p != nil && sup != nil) {
			base = semantic.Scripted(base, sub, sup)
			sub, sup = nil, nil
		}
		if s != nil {
			sub = s
		}
		if p != nil {
			sup = p
		}
	}
	if base == nil {
		return nil, parseError(n, "Empty atom")
	}
	return semantic.Scripted(base, sub, sup), nil
}

// script returns either a subscript or a superscript.
func (b *Builder) script(n *peg.Node) (sub, sup semantic.Node, err error) {
	if n.Rule == RuleScript {
		if len(n.Children) == 0 {
			return nil, nil, parseError(n, "Empty script content")
		}
		n = n.Children[0]
	}
	content := n.Child(RuleScriptContent)
	if content == nil {
		return nil, nil, parseError(n, "Empty script content")
	}
	node, err := b.scriptContent(content)
	if err != nil {
		return nil, nil, err
	}
	if n.Rule == RuleSubscript {
		return node, nil, nil
	}
	return nil, node, nil
}

func (b *Builder) scriptContent(n *peg.Node) (semantic.Node, error) {
	nodes, err := b.BuildChildren(n)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, parseError(n, "Empty script content")
	}
	return semantic.NewRow(nodes...), nil
}

func (b *Builder) atom(n *peg.Node) (semantic.Node, error) {
	nodes, err := b.BuildChildren(n)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, parseError(n, "Empty atom")
	}
	return nodes[0], nil
}

func (b *Builder) number(n *peg.Node) (semantic.Node, error) {
	var sb strings.Builder
	decimal, indicated := false, false
	for _, ch := range n.Children {
		switch ch.Rule {
		case RuleDigit:
			for _, cell := range ch.Text {
				d, err := b.dialect.Cells.Digit(cell)
				if err != nil {
					return nil, parseError(ch, err.Error())
				}
				sb.WriteRune(d)
			}
		case RuleNumericIndicator:
			indicated = true
		case RuleDecimalPoint:
			if decimal {
				continue
			}
			decimal = true
			if sb.Len() == 0 {
				sb.WriteByte('0')
			}
			sb.WriteByte('.')
		}
	}
	if sb.Len() == 0 {
		return nil, parseError(n, "Empty number")
	}
	// a number opening an expression needs the numeric indicator
	if !indicated && n.Pos == b.start && b.dialect.NumericIndicator != 0 {
		b.Warn(MissingIndicator{Indicator: "numeric", Position: n.Pos})
	}
	return &semantic.Number{Digits: sb.String()}, nil
}

func (b *Builder) letter(n *peg.Node) (semantic.Node, error) {
	id := &semantic.Identifier{}
	found := false
	for _, ch := range n.Children {
		switch ch.Rule {
		case RuleCapitalIndicator:
			id.Capital = true
		case RuleBoldIndicator:
			id.Style = semantic.Bold
		case RuleItalicIndicator:
			id.Style = semantic.Italic
		case RuleScriptIndicator:
			id.Style = semantic.Script
		case RuleLetterChar:
			l, err := b.dialect.Cells.Letter(firstRune(ch.Text))
			if err != nil {
				return nil, parseError(ch, err.Error())
			}
			id.Letter = string(l)
			found = true
		}
	}
	if !found {
		return nil, parseError(n, "Empty letter")
	}
	return id, nil
}

func (b *Builder) greek(n *peg.Node) (semantic.Node, error) {
	capital := n.Child(RuleCapitalIndicator) != nil
	ch := n.Child(RuleGreekChar)
	if ch == nil {
		return nil, parseError(n, "Empty Greek letter")
	}
	g, err := b.dialect.Cells.Greek(firstRune(ch.Text), capital)
	if err != nil {
		return nil, parseError(ch, err.Error())
	}
	return &semantic.Greek{Char: g, Capital: capital}, nil
}

func (b *Builder) fraction(n *peg.Node) (semantic.Node, error) {
	var parts []semantic.Node
	for _, ch := range n.Children {
		if ch.Rule != RuleExpression {
			continue
		}
		node, err := b.Build(ch)
		if err != nil {
			return nil, err
		}
		parts = append(parts, node)
	}
	if len(parts) < 2 {
		return nil, parseError(n, "Empty fraction")
	}
	return &semantic.Fraction{Numerator: parts[0], Denominator: parts[1]}, nil
}

func (b *Builder) radical(n *peg.Node) (semantic.Node, error) {
	r := &semantic.Radical{}
	for _, ch := range n.Children {
		switch ch.Rule {
		case RuleRadicalIndex:
			if atom := ch.Child(RuleAtom); atom != nil {
				index, err := b.Build(atom)
				if err != nil {
					return nil, err
				}
				r.Index = index
			}
		case RuleExpression:
			radicand, err := b.Build(ch)
			if err != nil {
				return nil, err
			}
			r.Radicand = radicand
		}
	}
	if r.Radicand == nil {
		return nil, parseError(n, "Empty radical")
	}
	return r, nil
}

func (b *Builder) grouped(n *peg.Node) (semantic.Node, error) {
	g := &semantic.Grouped{Content: &semantic.Empty{}}
	for _, ch := range n.Children {
		switch ch.Rule {
		case RuleOpenDelim:
			g.Open = delimiterGlyph(b.dialect.Opens, ch)
		case RuleCloseDelim:
			g.Close = delimiterGlyph(b.dialect.Closes, ch)
		case RuleExpression:
			content, err := b.Build(ch)
			if err != nil {
				return nil, err
			}
			g.Content = content
		}
	}
	return g, nil
}

func delimiterGlyph(delims []Delimiter, n *peg.Node) string {
	if len(n.Children) > 0 {
		for _, d := range delims {
			if d.Name == n.Children[0].Rule {
				return d.Glyph
			}
		}
	}
	return n.Text
}

// operator descends from an operator rule through its category rule down to
// the concrete operator.
func (b *Builder) operator(n *peg.Node) (semantic.Node, error) {
	if len(n.Children) == 0 {
		return nil, parseError(n, "Empty operator")
	}
	ch := n.Children[0]
	if isCategoryRule(ch.Rule) {
		return b.operator(ch)
	}
	if glyph, ok := b.dialect.OperatorGlyph(ch.Rule); ok {
		return &semantic.Operator{Glyph: glyph}, nil
	}
	return nil, parseError(ch, "Unknown operator: "+ch.Rule)
}

func (b *Builder) symbol(n *peg.Node) (semantic.Node, error) {
	if len(n.Children) == 0 {
		return &semantic.Text{Content: n.Text}, nil
	}
	ch := n.Children[0]
	if glyph, ok := SymbolGlyph(ch.Rule); ok {
		return &semantic.Identifier{Letter: glyph}, nil
	}
	return &semantic.Text{Content: ch.Text}, nil
}

func isCategoryRule(name string) bool {
	for _, c := range Categories {
		if c.RuleName() == name {
			return true
		}
	}
	return false
}

func parseError(n *peg.Node, msg string) ParseError {
	return ParseError{Message: msg, Position: n.Pos}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
