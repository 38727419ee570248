/*
Package mathml serializes semantic trees to Presentation MathML.

Generate never fails: every node kind has a rendering, unrecognized content
is emitted as <mtext>.
*/
package mathml

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/semantic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namespace is the MathML namespace URI.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Declaration is prepended to the output if Options.IncludeDeclaration is set.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Options configure MathML output. The zero value produces compact inline
// MathML without an XML declaration.
type Options struct {
	IncludeDeclaration bool   // prepend an XML declaration
	DisplayBlock       bool   // render with display="block"
	Indent             string // if non-empty, put every element on its own line
}

// Generate renders a semantic tree as a <math> element.
func Generate(root semantic.Node, opts Options) string {
	w := &writer{
		indent: opts.Indent,
		upper:  cases.Upper(language.Und),
	}
	if opts.IncludeDeclaration {
		w.sb.WriteString(Declaration)
		if w.indent == "" { // otherwise newline() takes care of the line break
			w.sb.WriteByte('\n')
		}
	}
	attrs := []string{"xmlns", Namespace}
	if opts.DisplayBlock {
		attrs = append(attrs, "display", "block")
	}
	w.open("math", attrs...)
	w.inferred(root)
	w.close("math")
	return w.sb.String()
}

type writer struct {
	sb     strings.Builder
	indent string
	level  int
	upper  cases.Caser
}

// inferred renders a node in a context with an inferred mrow, i.e. rows are
// flattened into their items.
func (w *writer) inferred(n semantic.Node) {
	if n == nil {
		return
	}
	if row, ok := n.(*semantic.Row); ok {
		for _, item := range row.Children() {
			w.node(item)
		}
		return
	}
	w.node(n)
}

// argument renders a single argument of a fixed-arity element. Rows and
// empty nodes are wrapped into an explicit mrow.
func (w *writer) argument(n semantic.Node) {
	if semantic.IsEmpty(n) {
		w.leaf("mrow", "")
		return
	}
	if n.Kind() == semantic.RowKind {
		w.open("mrow")
		w.inferred(n)
		w.close("mrow")
		return
	}
	w.node(n)
}

func (w *writer) node(n semantic.Node) {
	switch n := n.(type) {
	case *semantic.Empty:
		// renders nothing
	case *semantic.Number:
		w.leaf("mn", n.Digits)
	case *semantic.Identifier:
		w.identifier(n)
	case *semantic.Greek:
		w.leaf("mi", string(n.Char))
	case *semantic.Operator:
		w.leaf("mo", n.Glyph)
	case *semantic.Text:
		w.leaf("mtext", n.Content)
	case *semantic.Row:
		w.open("mrow")
		w.inferred(n)
		w.close("mrow")
	case *semantic.Grouped:
		w.open("mrow")
		w.leaf("mo", n.Open)
		w.inferred(n.Content)
		w.leaf("mo", n.Close)
		w.close("mrow")
	case *semantic.Fraction:
		w.open("mfrac")
		w.argument(n.Numerator)
		w.argument(n.Denominator)
		w.close("mfrac")
	case *semantic.Radical:
		if n.Index == nil {
			w.open("msqrt")
			w.inferred(n.Radicand)
			w.close("msqrt")
			return
		}
		w.open("mroot")
		w.argument(n.Radicand)
		w.argument(n.Index)
		w.close("mroot")
	case *semantic.Superscript:
		w.open("msup")
		w.argument(n.Base)
		w.argument(n.Sup)
		w.close("msup")
	case *semantic.Subscript:
		w.open("msub")
		w.argument(n.Base)
		w.argument(n.Sub)
		w.close("msub")
	case *semantic.SubSuperscript:
		w.open("msubsup")
		w.argument(n.Base)
		w.argument(n.Sub)
		w.argument(n.Sup)
		w.close("msubsup")
	case *semantic.Matrix:
		w.matrix(n)
	default:
		w.leaf("mtext", n.String())
	}
}

// matrix renders an mtable, wrapped into an mrow with its delimiters if it
// has any.
func (w *writer) matrix(m *semantic.Matrix) {
	delimited := m.Open != "" || m.Close != ""
	if delimited {
		w.open("mrow")
		if m.Open != "" {
			w.leaf("mo", m.Open)
		}
	}
	w.open("mtable")
	for _, row := range m.Rows {
		w.open("mtr")
		for _, entry := range row {
			w.open("mtd")
			w.inferred(entry)
			w.close("mtd")
		}
		w.close("mtr")
	}
	w.close("mtable")
	if delimited {
		if m.Close != "" {
			w.leaf("mo", m.Close)
		}
		w.close("mrow")
	}
}

func (w *writer) identifier(id *semantic.Identifier) {
	name := id.Letter
	if id.Capital {
		name = w.upper.String(name)
	}
	if id.Style == semantic.Normal {
		w.leaf("mi", name)
		return
	}
	w.leaf("mi", name, "mathvariant", id.Style.String())
}

// --- Low level output ------------------------------------------------------

func (w *writer) newline() {
	if w.indent == "" {
		return
	}
	if w.sb.Len() > 0 {
		w.sb.WriteByte('\n')
	}
	for i := 0; i < w.level; i++ {
		w.sb.WriteString(w.indent)
	}
}

func (w *writer) startTag(tag string, attrs []string) {
	w.newline()
	w.sb.WriteByte('<')
	w.sb.WriteString(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		w.sb.WriteByte(' ')
		w.sb.WriteString(attrs[i])
		w.sb.WriteString(`="`)
		w.sb.WriteString(Escape(attrs[i+1]))
		w.sb.WriteByte('"')
	}
	w.sb.WriteByte('>')
}

func (w *writer) open(tag string, attrs ...string) {
	w.startTag(tag, attrs)
	w.level++
}

func (w *writer) close(tag string) {
	w.level--
	w.newline()
	w.sb.WriteString("</")
	w.sb.WriteString(tag)
	w.sb.WriteByte('>')
}

func (w *writer) leaf(tag, text string, attrs ...string) {
	w.startTag(tag, attrs)
	w.sb.WriteString(Escape(text))
	w.sb.WriteString("</")
	w.sb.WriteString(tag)
	w.sb.WriteByte('>')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the XML special characters & < > " ' by entity references.
func Escape(s string) string {
	return escaper.Replace(s)
}
