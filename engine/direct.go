package engine

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// interpreter reads braille cell by cell without a grammar. It recovers flat
// sequences of numbers, letters, Greek letters and operators only.
type interpreter struct {
	dialect   *Dialect
	operators []Operator // in grammar order, longest first within a category
}

func newInterpreter(d *Dialect) *interpreter {
	ip := &interpreter{dialect: d}
	for _, c := range Categories {
		ip.operators = append(ip.operators, d.OperatorsOf(c)...)
	}
	return ip
}

// operator matches the first operator of the grammar order at position i.
func (ip *interpreter) operator(input []rune, i int) (string, int, bool) {
	for _, op := range ip.operators {
		n := len([]rune(op.Cells))
		if i+n <= len(input) && string(input[i:i+n]) == op.Cells {
			return op.Glyph, i + n, true
		}
	}
	return "", i, false
}

// interpret makes a single left-to-right pass over the input. Cells it
// cannot classify are reported to c and skipped.
func (ip *interpreter) interpret(input []rune, c *Collector) (semantic.Node, error) {
	d := ip.dialect
	var nodes []semantic.Node
	i := 0
	for i < len(input) {
		cell := input[i]
		if cells.IsBlank(cell) {
			i++
			continue
		}
		if cell == d.NumericIndicator && d.NumericIndicator != 0 {
			var node semantic.Node
			node, i = ip.number(input, i+1)
			if node != nil {
				nodes = append(nodes, node)
			}
			continue
		}
		// operators may start with an indicator cell, as the grammar tries
		// them before any atom
		if glyph, next, ok := ip.operator(input, i); ok {
			nodes = append(nodes, &semantic.Operator{Glyph: glyph})
			i = next
			continue
		}
		if cell == d.GreekIndicator && d.GreekIndicator != 0 {
			if node, next, ok := ip.greek(input, i+1); ok {
				nodes = append(nodes, node)
				i = next
				continue
			}
		} else if cell == d.CapitalIndicator && d.CapitalIndicator != 0 {
			if i+1 < len(input) {
				if l, err := d.Cells.Letter(input[i+1]); err == nil {
					nodes = append(nodes, &semantic.Identifier{Letter: string(l), Capital: true})
					i += 2
					continue
				}
			}
		}
		// an indicator without a valid successor is looked up as a letter
		if l, err := d.Cells.Letter(cell); err == nil {
			nodes = append(nodes, &semantic.Identifier{Letter: string(l)})
			i++
			continue
		}
		c.Warn(UnrecognizedCell{Cell: cell, Position: i})
		i++
	}
	switch len(nodes) {
	case 0:
		return nil, ParseError{Message: "No valid content found", Position: NoPosition}
	case 1:
		return nodes[0], nil
	}
	return semantic.NewRow(nodes...), nil
}

// number consumes a maximal run of digit cells with at most one decimal
// separator, starting behind the numeric indicator.
func (ip *interpreter) number(input []rune, i int) (semantic.Node, int) {
	var sb strings.Builder
	digits, decimal := 0, false
	for i < len(input) {
		cell := input[i]
		if d, err := ip.dialect.Cells.Digit(cell); err == nil {
			sb.WriteRune(d)
			digits++
		} else if !decimal && ip.dialect.IsDecimalPoint(cell) {
			decimal = true
			sb.WriteByte('.')
		} else {
			break
		}
		i++
	}
	if digits == 0 {
		return nil, i
	}
	s := sb.String()
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return &semantic.Number{Digits: s}, i
}

func (ip *interpreter) greek(input []rune, i int) (semantic.Node, int, bool) {
	d := ip.dialect
	capital := false
	if i < len(input) && input[i] == d.CapitalIndicator && d.CapitalIndicator != 0 {
		capital = true
		i++
	}
	if i >= len(input) {
		return nil, i, false
	}
	g, err := d.Cells.Greek(input[i], capital)
	if err != nil {
		return nil, i, false
	}
	return &semantic.Greek{Char: g, Capital: capital}, i + 1, true
}
