package semantic

import (
	"strings"
)

// Row is a juxtaposition of at least two sibling nodes.
type Row struct {
	items []Node
}

// NewRow creates a row from a sequence of nodes. Empty nodes are dropped.
// If no node remains, an Empty node is returned; a single remaining node is
// returned as is. Only for two or more nodes a Row is created.
func NewRow(nodes ...Node) Node {
	items := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !IsEmpty(n) {
			items = append(items, n)
		}
	}
	switch len(items) {
	case 0:
		return &Empty{}
	case 1:
		return items[0]
	}
	return &Row{items: items}
}

// Kind is part of interface Node.
func (r *Row) Kind() Kind { return RowKind }

// Children returns the items of the row. Clients must not modify the slice.
func (r *Row) Children() []Node { return r.items }

// Len returns the number of items in the row.
func (r *Row) Len() int { return len(r.items) }

func (r *Row) String() string {
	var sb strings.Builder
	for _, n := range r.items {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Grouped is a sub-expression enclosed in delimiters. Open and Close are the
// delimiter glyphs; they are chosen independently of each other.
type Grouped struct {
	Open, Close string
	Content     Node
}

// Kind is part of interface Node.
func (g *Grouped) Kind() Kind { return GroupedKind }

// Children is part of interface Node.
func (g *Grouped) Children() []Node { return []Node{g.Content} }

func (g *Grouped) String() string {
	return g.Open + str(g.Content) + g.Close
}

// Fraction is a numerator over a denominator.
type Fraction struct {
	Numerator, Denominator Node
}

// Kind is part of interface Node.
func (f *Fraction) Kind() Kind { return FractionKind }

// Children is part of interface Node.
func (f *Fraction) Children() []Node { return []Node{f.Numerator, f.Denominator} }

func (f *Fraction) String() string {
	return "(" + str(f.Numerator) + "/" + str(f.Denominator) + ")"
}

// Radical is a root. A nil Index denotes a square root.
type Radical struct {
	Index    Node
	Radicand Node
}

// Kind is part of interface Node.
func (r *Radical) Kind() Kind { return RadicalKind }

// Children is part of interface Node. The radicand comes first.
func (r *Radical) Children() []Node {
	if r.Index == nil {
		return []Node{r.Radicand}
	}
	return []Node{r.Radicand, r.Index}
}

func (r *Radical) String() string {
	if r.Index == nil {
		return "sqrt(" + str(r.Radicand) + ")"
	}
	return "root(" + str(r.Index) + "," + str(r.Radicand) + ")"
}

// Superscript is a base with a raised script.
type Superscript struct {
	Base, Sup Node
}

// Kind is part of interface Node.
func (s *Superscript) Kind() Kind { return SuperscriptKind }

// Children is part of interface Node.
func (s *Superscript) Children() []Node { return []Node{s.Base, s.Sup} }

func (s *Superscript) String() string {
	return operand(s.Base) + "^" + operand(s.Sup)
}

// Subscript is a base with a lowered script.
type Subscript struct {
	Base, Sub Node
}

// Kind is part of interface Node.
func (s *Subscript) Kind() Kind { return SubscriptKind }

// Children is part of interface Node.
func (s *Subscript) Children() []Node { return []Node{s.Base, s.Sub} }

func (s *Subscript) String() string {
	return operand(s.Base) + "_" + operand(s.Sub)
}

// SubSuperscript is a base carrying both a subscript and a superscript.
type SubSuperscript struct {
	Base, Sub, Sup Node
}

// Kind is part of interface Node.
func (s *SubSuperscript) Kind() Kind { return SubSuperscriptKind }

// Children is part of interface Node.
func (s *SubSuperscript) Children() []Node { return []Node{s.Base, s.Sub, s.Sup} }

func (s *SubSuperscript) String() string {
	return operand(s.Base) + "_" + operand(s.Sub) + "^" + operand(s.Sup)
}

// Scripted attaches scripts to a base, combining both kinds into a single
// SubSuperscript node. Nil scripts are absent; with no script, base is
// returned.
func Scripted(base, sub, sup Node) Node {
	if base == nil {
		base = &Empty{}
	}
	switch {
	case sub != nil && sup != nil:
		return &SubSuperscript{Base: base, Sub: sub, Sup: sup}
	case sup != nil:
		return &Superscript{Base: base, Sup: sup}
	case sub != nil:
		return &Subscript{Base: base, Sub: sub}
	}
	return base
}

// Matrix is a table of entries, enclosed in optional delimiters. Every row
// holds the same number of entries.
type Matrix struct {
	Open, Close string
	Rows        [][]Node
}

// NewMatrix creates a matrix, padding short rows with empty entries.
func NewMatrix(left, right string, rows [][]Node) *Matrix {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	m := &Matrix{Open: left, Close: right, Rows: make([][]Node, len(rows))}
	for i, row := range rows {
		m.Rows[i] = make([]Node, width)
		for j := range m.Rows[i] {
			if j < len(row) && row[j] != nil {
				m.Rows[i][j] = row[j]
			} else {
				m.Rows[i][j] = &Empty{}
			}
		}
	}
	return m
}

// Kind is part of interface Node.
func (m *Matrix) Kind() Kind { return MatrixKind }

// Children is part of interface Node. Entries are listed row by row.
func (m *Matrix) Children() []Node {
	var entries []Node
	for _, row := range m.Rows {
		entries = append(entries, row...)
	}
	return entries
}

// String lists the entries of a row separated by commas and rows separated
// by semicolons, e.g. "[1,2;3,4]".
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(m.Open)
	for i, row := range m.Rows {
		if i > 0 {
			sb.WriteByte(';')
		}
		for j, entry := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(str(entry))
		}
	}
	sb.WriteString(m.Close)
	return sb.String()
}

// Walk visits a tree depth-first, parents before children. If f returns
// false, the children of the current node are skipped.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, ch := range n.Children() {
		Walk(ch, f)
	}
}

func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func operand(n Node) string {
	if n != nil && n.Kind() == RowKind {
		return "(" + n.String() + ")"
	}
	return str(n)
}
