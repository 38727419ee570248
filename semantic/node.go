/*
Package semantic defines the notation-independent tree of mathematical
meaning which braille parsers produce.

Trees are built bottom-up during a single parse and are not modified after a
node has been attached to its parent. Every node is owned by exactly one
parent.

A Row never holds fewer than two children; use NewRow to construct rows, it
collapses degenerate cases.
*/
package semantic

import (
	"strings"
)

// Kind identifies the type of a node.
type Kind int8

// Node kinds
const (
	EmptyKind Kind = iota
	NumberKind
	IdentifierKind
	GreekKind
	OperatorKind
	TextKind
	RowKind
	GroupedKind
	FractionKind
	RadicalKind
	SuperscriptKind
	SubscriptKind
	SubSuperscriptKind
	MatrixKind
)

var kindNames = [...]string{
	"Empty", "Number", "Identifier", "Greek", "Operator", "Text", "Row",
	"Grouped", "Fraction", "Radical", "Superscript", "Subscript", "SubSuperscript",
	"Matrix",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<unknown kind>"
}

// Node is a node of the semantic tree.
//
// String returns a compact linear notation of the sub-tree, e.g. "(1/2)" or
// "x^2", meant for debugging and logging.
type Node interface {
	Kind() Kind
	Children() []Node
	String() string
}

// FontStyle is a typeform applied to an identifier.
type FontStyle int8

// Font styles
const (
	Normal FontStyle = iota
	Bold
	Italic
	Script
)

func (s FontStyle) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Script:
		return "script"
	}
	return "normal"
}

// --- Leaves ----------------------------------------------------------------

// Empty marks the explicit absence of content, e.g. the base of a script
// without a preceding atom.
type Empty struct{}

// Number is a numeral in canonical form: ASCII digits and at most one
// decimal point.
type Number struct {
	Digits string
}

// Identifier is a variable or a named function. Letter is stored in lowercase;
// Capital requests the uppercase form.
type Identifier struct {
	Letter  string
	Capital bool
	Style   FontStyle
}

// Greek is a Greek letter. Char already is the uppercase form if Capital is set.
type Greek struct {
	Char    rune
	Capital bool
}

// Operator is an operator or relation, represented by its glyph.
type Operator struct {
	Glyph string
}

// Text is literal content which could not be interpreted semantically.
type Text struct {
	Content string
}

// Kind is part of interface Node.
func (e *Empty) Kind() Kind { return EmptyKind }

// Kind is part of interface Node.
func (n *Number) Kind() Kind { return NumberKind }

// Kind is part of interface Node.
func (id *Identifier) Kind() Kind { return IdentifierKind }

// Kind is part of interface Node.
func (g *Greek) Kind() Kind { return GreekKind }

// Kind is part of interface Node.
func (op *Operator) Kind() Kind { return OperatorKind }

// Kind is part of interface Node.
func (t *Text) Kind() Kind { return TextKind }

// Children is part of interface Node. Leaves have no children.
func (e *Empty) Children() []Node       { return nil }
func (n *Number) Children() []Node      { return nil }
func (id *Identifier) Children() []Node { return nil }
func (g *Greek) Children() []Node       { return nil }
func (op *Operator) Children() []Node   { return nil }
func (t *Text) Children() []Node        { return nil }

func (e *Empty) String() string  { return "" }
func (n *Number) String() string { return n.Digits }
func (g *Greek) String() string  { return string(g.Char) }
func (op *Operator) String() string {
	return op.Glyph
}
func (t *Text) String() string { return t.Content }

func (id *Identifier) String() string {
	if id.Capital {
		return strings.ToUpper(id.Letter)
	}
	return id.Letter
}

// Name returns the identifier as rendered, i.e. with capitalization applied.
func (id *Identifier) Name() string {
	return id.String()
}

// IsEmpty is true for nil and for nodes of kind Empty.
func IsEmpty(n Node) bool {
	return n == nil || n.Kind() == EmptyKind
}
