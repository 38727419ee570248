package cells

import (
	"fmt"
	"sort"
)

// Kind names the category of a table lookup.
type Kind string

// Lookup categories.
const (
	DigitKind  Kind = "digit"
	LetterKind Kind = "letter"
	GreekKind  Kind = "Greek letter"
)

// UnknownCellError is returned for a cell which has no mapping in a table.
type UnknownCellError struct {
	Table string
	Kind  Kind
	Cell  rune
}

func (e *UnknownCellError) Error() string {
	return fmt.Sprintf("%s: no %s for cell %q (dots %s)", e.Table, e.Kind, string(e.Cell), Dots(e.Cell))
}

// Table maps single braille cells to digits, Latin letters and Greek letters
// for one braille code.
//
// The same cell may appear in more than one of the maps: which one applies
// depends on the indicator cells in front of it, which is the parser's business.
type Table struct {
	name    string
	digits  map[rune]rune
	letters map[rune]rune
	greek   map[rune]rune
}

// NewTable creates a table from cell mappings. Digit values must be ASCII
// digits, letter values lowercase ASCII letters, Greek values lowercase Greek
// letters. The maps are copied.
func NewTable(name string, digits, letters, greek map[rune]rune) *Table {
	t := &Table{
		name:    name,
		digits:  copyMap(digits),
		letters: copyMap(letters),
		greek:   copyMap(greek),
	}
	if n := len(invert(t.digits)); n != len(t.digits) {
		T().Errorf("braille table %s maps %d digit cells to only %d digits", name, len(t.digits), n)
	}
	return t
}

// Name returns the name of the braille code of this table.
func (t *Table) Name() string {
	return t.name
}

// Digit returns the ASCII digit a cell denotes after a numeric indicator.
func (t *Table) Digit(cell rune) (rune, error) {
	if d, ok := t.digits[cell]; ok {
		return d, nil
	}
	return 0, &UnknownCellError{Table: t.name, Kind: DigitKind, Cell: cell}
}

// Letter returns the lowercase Latin letter for a cell.
func (t *Table) Letter(cell rune) (rune, error) {
	if l, ok := t.letters[cell]; ok {
		return l, nil
	}
	return 0, &UnknownCellError{Table: t.name, Kind: LetterKind, Cell: cell}
}

// Greek returns the Greek letter for a cell following a Greek indicator.
// If capital is set, the uppercase form is returned.
func (t *Table) Greek(cell rune, capital bool) (rune, error) {
	g, ok := t.greek[cell]
	if !ok {
		return 0, &UnknownCellError{Table: t.name, Kind: GreekKind, Cell: cell}
	}
	if capital {
		return UppercaseGreek(g), nil
	}
	return g, nil
}

// IsDigit is true if cell denotes a digit in this code.
func (t *Table) IsDigit(cell rune) bool {
	_, ok := t.digits[cell]
	return ok
}

// IsLetter is true if cell denotes a Latin letter in this code.
func (t *Table) IsLetter(cell rune) bool {
	_, ok := t.letters[cell]
	return ok
}

// IsGreek is true if cell denotes a Greek letter in this code.
func (t *Table) IsGreek(cell rune) bool {
	_, ok := t.greek[cell]
	return ok
}

// DigitCells returns all digit cells, ordered by code-point.
func (t *Table) DigitCells() []rune {
	return sortedKeys(t.digits)
}

// LetterCells returns all letter cells, ordered by code-point.
func (t *Table) LetterCells() []rune {
	return sortedKeys(t.letters)
}

// GreekCells returns all Greek letter cells, ordered by code-point.
func (t *Table) GreekCells() []rune {
	return sortedKeys(t.greek)
}

// CellForDigit is the reverse lookup of Digit.
func (t *Table) CellForDigit(d rune) (rune, bool) {
	c, ok := invert(t.digits)[d]
	return c, ok
}

// CellForLetter is the reverse lookup of Letter.
func (t *Table) CellForLetter(l rune) (rune, bool) {
	c, ok := invert(t.letters)[l]
	return c, ok
}

// CellForGreek is the reverse lookup of Greek for lowercase Greek letters.
func (t *Table) CellForGreek(g rune) (rune, bool) {
	c, ok := invert(t.greek)[g]
	return c, ok
}

// ---------------------------------------------------------------------------

var upperGreek = map[rune]rune{
	'α': 'Α', 'β': 'Β', 'γ': 'Γ', 'δ': 'Δ', 'ε': 'Ε', 'ζ': 'Ζ',
	'η': 'Η', 'θ': 'Θ', 'ι': 'Ι', 'κ': 'Κ', 'λ': 'Λ', 'μ': 'Μ',
	'ν': 'Ν', 'ξ': 'Ξ', 'ο': 'Ο', 'π': 'Π', 'ρ': 'Ρ', 'σ': 'Σ',
	'ς': 'Σ', 'τ': 'Τ', 'υ': 'Υ', 'φ': 'Φ', 'χ': 'Χ', 'ψ': 'Ψ',
	'ω': 'Ω',
}

// UppercaseGreek returns the capital form of a lowercase Greek letter.
// Any other rune is returned unchanged.
func UppercaseGreek(r rune) rune {
	if u, ok := upperGreek[r]; ok {
		return u
	}
	return r
}

func copyMap(m map[rune]rune) map[rune]rune {
	c := make(map[rune]rune, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func invert(m map[rune]rune) map[rune]rune {
	inv := make(map[rune]rune, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

func sortedKeys(m map[rune]rune) []rune {
	keys := make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
