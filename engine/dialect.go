package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/peg"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// Operator defines a concrete operator rule of a dialect.
type Operator struct {
	Name     string // rule name, e.g. "less_equal"
	Category Category
	Cells    string // braille cells
	Glyph    string // rendered glyph
}

// Symbol defines a concrete special-symbol rule. Its glyph is looked up by
// name, see SymbolGlyph.
type Symbol struct {
	Name  string
	Cells string
}

// Delimiter defines an opening or closing grouping symbol.
type Delimiter struct {
	Name  string // rule name, e.g. "open_paren"
	Cells string
	Glyph string
}

// FractionCells are the indicators of a fraction. Nesting is optional and
// marks the indicators of complex fractions.
type FractionCells struct {
	Open, Bar, Close string
	Nesting          string
}

// RadicalCells are the indicators of a radical. Index is the indicator in
// front of an explicit root index.
type RadicalCells struct {
	Start, End string
	Index      string
}

// ScriptCells are the indicators of super- and subscripts.
//
// A dialect may delimit multi-symbol scripts in one of two ways: either by
// enclosing them in auxiliary parentheses (GroupOpen, GroupClose) or by
// terminating them with a return to the baseline (Baseline). Without either,
// scripts consist of a single atom.
type ScriptCells struct {
	Superscript, Subscript string
	GroupOpen, GroupClose  string
	Baseline               string
}

// BuildFunc builds a semantic node for a dialect-specific grammar rule.
type BuildFunc func(b *Builder, n *peg.Node) (semantic.Node, error)

// Dialect bundles everything a braille code contributes to the engine:
// cell tables, indicator cells, operator and symbol tables, and optional
// grammar fragments. A dialect must not be modified after it has been handed
// to New.
type Dialect struct {
	Name  string
	Cells *cells.Table

	NumericIndicator  rune
	DecimalPoints     []rune // decimal separator cells
	DigitSeparator    rune   // separator for groups of digits, 0 if none
	UnindicatedDigits bool   // digits may appear without numeric indicator
	CapitalIndicator  rune
	GreekIndicator    rune
	Typeforms         map[semantic.FontStyle]string // typeform indicators of letters

	Fraction   FractionCells
	Radical    RadicalCells
	Scripts    ScriptCells
	Opens      []Delimiter
	Closes     []Delimiter
	Operators  []Operator
	Symbols    []Symbol
	Truncation []rune // trailing cells which denote an incomplete structure

	// Fragments may add or redefine rules of the shared grammar before it is
	// compiled. Builders are consulted for rules the shared builder does not
	// know.
	Fragments func(g *peg.Grammar)
	Builders  map[string]BuildFunc

	ValidateRange bool // reject characters outside braille and whitespace
	Recover       bool // try truncation-based recovery on grammar failure
	Fallback      bool // use the direct interpreter as last resort
}

// ErrInvalidDialect is wrapped by errors from dialect validation.
var ErrInvalidDialect = errors.New("invalid braille dialect")

// Validate checks a dialect for consistency: mandatory tables, unique rule
// names, and operator tables that cannot shadow longer operators.
func (d *Dialect) Validate() error {
	if d.Name == "" || d.Cells == nil {
		return fmt.Errorf("%w: missing name or cell table", ErrInvalidDialect)
	}
	if d.NumericIndicator == 0 && !d.UnindicatedDigits {
		return fmt.Errorf("%w: %s has no way to write digits", ErrInvalidDialect, d.Name)
	}
	if d.Scripts.GroupOpen != "" && d.Scripts.GroupClose == "" {
		return fmt.Errorf("%w: %s has unbalanced script group indicators", ErrInvalidDialect, d.Name)
	}
	names := make(map[string]bool)
	unique := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s has an unnamed table entry", ErrInvalidDialect, d.Name)
		}
		if names[name] {
			return fmt.Errorf("%w: %s defines rule %q twice", ErrInvalidDialect, d.Name, name)
		}
		names[name] = true
		return nil
	}
	for _, op := range d.Operators {
		if err := unique(op.Name); err != nil {
			return err
		}
		if op.Cells == "" || op.Glyph == "" {
			return fmt.Errorf("%w: operator %s of %s is incomplete", ErrInvalidDialect, op.Name, d.Name)
		}
	}
	for _, sym := range d.Symbols {
		if err := unique(sym.Name); err != nil {
			return err
		}
	}
	for _, delim := range append(append([]Delimiter{}, d.Opens...), d.Closes...) {
		if err := unique(delim.Name); err != nil {
			return err
		}
	}
	return d.checkShadowing()
}

// checkShadowing makes sure that no operator of a category is a proper prefix
// of an operator in a later category. Within a category, longer operators are
// always tried first.
func (d *Dialect) checkShadowing() error {
	for _, a := range d.Operators {
		for _, b := range d.Operators {
			if a.Category >= b.Category || len(a.Cells) >= len(b.Cells) {
				continue
			}
			if strings.HasPrefix(b.Cells, a.Cells) {
				return fmt.Errorf("%w: in %s operator %s shadows %s", ErrInvalidDialect,
					d.Name, a.Name, b.Name)
			}
		}
	}
	return nil
}

// OperatorsOf returns the operators of a category, longest cell sequence first.
func (d *Dialect) OperatorsOf(c Category) []Operator {
	var ops []Operator
	for _, op := range d.Operators {
		if op.Category == c {
			ops = append(ops, op)
		}
	}
	sort.SliceStable(ops, func(i, j int) bool {
		return len([]rune(ops[i].Cells)) > len([]rune(ops[j].Cells))
	})
	return ops
}

// OperatorGlyph returns the glyph of a concrete operator rule.
func (d *Dialect) OperatorGlyph(name string) (string, bool) {
	for _, op := range d.Operators {
		if op.Name == name {
			return op.Glyph, true
		}
	}
	return "", false
}

// IsDecimalPoint is true for the decimal separator cells of the dialect.
func (d *Dialect) IsDecimalPoint(cell rune) bool {
	for _, c := range d.DecimalPoints {
		if c == cell {
			return true
		}
	}
	return false
}
