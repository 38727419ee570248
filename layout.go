package brlmath

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// Enlarged grouping symbols enclosing every row of a matrix or determinant.
const (
	EnlargedLeftBracket  = "⠈⠹"
	EnlargedRightBracket = "⠈⠼"
	VerticalBar          = "⠳"
)

var matrixDelimiters = []struct {
	left, right string // cells
	open, close string // glyphs
}{
	{EnlargedLeftBracket, EnlargedRightBracket, "[", "]"},
	{VerticalBar, VerticalBar, "|", "|"},
}

// span is a run of cells at an offset into the complete input.
type span struct {
	cells []rune
	start int
}

func (s span) trim() span {
	for len(s.cells) > 0 && cells.IsBlank(s.cells[0]) {
		s.cells, s.start = s.cells[1:], s.start+1
	}
	for len(s.cells) > 0 && cells.IsBlank(s.cells[len(s.cells)-1]) {
		s.cells = s.cells[:len(s.cells)-1]
	}
	return s
}

func (s span) encloses(left, right []rune) bool {
	n := len(s.cells)
	return n > len(left)+len(right) && hasCellsAt(s.cells, 0, left) &&
		hasCellsAt(s.cells, n-len(right), right)
}

// HasSpatialLayout is true for braille written on more than one non-blank
// line.
func HasSpatialLayout(braille string) bool {
	return len(layoutLines(braille)) > 1
}

// layoutLines splits input at line feeds, dropping blank lines.
func layoutLines(braille string) []span {
	input := []rune(braille)
	var lines []span
	start := 0
	for i := 0; i <= len(input); i++ {
		if i < len(input) && input[i] != '\n' {
			continue
		}
		if l := (span{cells: input[start:i], start: start}).trim(); len(l.cells) > 0 {
			lines = append(lines, l)
		}
		start = i + 1
	}
	return lines
}

// stripDelimiters removes enlarged grouping symbols if they enclose every
// line, returning their glyphs.
func stripDelimiters(lines []span) (string, string, []span) {
	for _, d := range matrixDelimiters {
		left, right := []rune(d.left), []rune(d.right)
		all := true
		for _, l := range lines {
			all = all && l.encloses(left, right)
		}
		if !all {
			continue
		}
		inner := make([]span, len(lines))
		for i, l := range lines {
			inner[i] = span{
				cells: l.cells[len(left) : len(l.cells)-len(right)],
				start: l.start + len(left),
			}.trim()
		}
		return d.open, d.close, inner
	}
	return "", "", lines
}

// splitEntries splits a row at tabs and at runs of two or more blanks.
func splitEntries(row span) []span {
	var entries []span
	c, start := row.cells, 0
	for i := 0; i < len(c); {
		if !cells.IsBlank(c[i]) {
			i++
			continue
		}
		j := i
		for j < len(c) && cells.IsBlank(c[j]) {
			j++
		}
		if j-i >= 2 || strings.ContainsRune(string(c[i:j]), '\t') {
			entries = append(entries, span{cells: c[start:i], start: row.start + start})
			start = j
		}
		i = j
	}
	return append(entries, span{cells: c[start:], start: row.start + start})
}

// TranslateLayout back-translates braille written on several lines. Lines
// are the rows of a matrix if they are enclosed in enlarged grouping symbols
// or if any of them holds more than one entry; entries are separated by tabs
// or by at least two blanks. Other input, including single lines, is
// translated as a single expression.
func TranslateLayout(c Code, braille string, opts mathml.Options) ParseResult {
	lines := layoutLines(braille)
	if len(lines) < 2 {
		return TranslateWith(c, braille, opts)
	}
	e, err := c.Engine()
	if err != nil {
		CT().Errorf("translate: %v", err)
		return ParseResult{Errors: []engine.Error{engine.UnsupportedCode{Code: c.String()}}}
	}
	open, closing, lines := stripDelimiters(lines)
	rows := make([][]span, len(lines))
	wide := false
	for i, l := range lines {
		rows[i] = splitEntries(l)
		wide = wide || len(rows[i]) > 1
	}
	if open == "" && !wide {
		CT().Debugf("translate: %d lines without columns, reading a single expression", len(lines))
		return TranslateWith(c, braille, opts)
	}
	var errs []engine.Error
	var warnings []engine.Warning
	table := make([][]semantic.Node, len(rows))
	for i, row := range rows {
		for _, entry := range row {
			r := e.ParseWith(string(entry.cells), opts).Shift(entry.start)
			errs = append(errs, r.Errors...)
			warnings = append(warnings, r.Warnings...)
			table[i] = append(table[i], r.Tree)
		}
	}
	if len(errs) > 0 {
		return ParseResult{Errors: errs}
	}
	m := semantic.NewMatrix(open, closing, table)
	CT().Debugf("translate: %d×%d matrix", len(m.Rows), len(m.Rows[0]))
	out := mathml.Generate(m, opts)
	return ParseResult{MathML: &out, Warnings: warnings, Tree: m}
}
