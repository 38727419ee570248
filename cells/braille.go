package cells

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// BlankCell is the braille pattern without any dots raised.
const BlankCell rune = 0x2800

const lastCell rune = 0x28ff

// Braille is the range table of all Unicode braille patterns, U+2800…U+28FF.
var Braille = makeBrailleTable()

// Whitespace is the range table of literal whitespace accepted between cells:
// space, tab, line feed and carriage return.
var Whitespace = rangetable.New(' ', '\t', '\n', '\r')

func makeBrailleTable() *unicode.RangeTable {
	rs := make([]rune, 0, lastCell-BlankCell+1)
	for r := BlankCell; r <= lastCell; r++ {
		rs = append(rs, r)
	}
	return rangetable.New(rs...)
}

// IsBraille is true for every braille pattern code-point, including the blank cell.
func IsBraille(r rune) bool {
	return unicode.Is(Braille, r)
}

// IsBlank is true for the blank braille cell and for accepted literal whitespace.
// Blanks are insignificant between symbols.
func IsBlank(r rune) bool {
	return r == BlankCell || unicode.Is(Whitespace, r)
}

// IsAccepted is true for every character a braille math input may contain.
func IsAccepted(r rune) bool {
	return IsBraille(r) || unicode.Is(Whitespace, r)
}

// ErrNotACell is returned for dot-number notations which do not denote a cell.
var ErrNotACell = errors.New("braille cells: not a valid dot-number notation")

// Dots returns the dot-number notation of a cell, e.g. "3456" for U+283C.
// The blank cell yields "0". Non-braille runes yield an empty string.
func Dots(cell rune) string {
	if !IsBraille(cell) {
		return ""
	}
	bits := cell - BlankCell
	if bits == 0 {
		return "0"
	}
	var sb strings.Builder
	for dot := 0; dot < 8; dot++ {
		if bits&(1<<uint(dot)) != 0 {
			sb.WriteByte(byte('1' + dot))
		}
	}
	return sb.String()
}

// FromDots returns the cell for a dot-number notation like "3456".
// Dots may appear in any order; "0" denotes the blank cell.
func FromDots(dots string) (rune, error) {
	if dots == "" {
		return 0, ErrNotACell
	}
	if dots == "0" {
		return BlankCell, nil
	}
	cell := BlankCell
	for _, d := range dots {
		if d < '1' || d > '8' {
			return 0, fmt.Errorf("%w: %q", ErrNotACell, dots)
		}
		cell |= 1 << uint(d-'1')
	}
	return cell, nil
}
