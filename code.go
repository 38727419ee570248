package brlmath

import (
	"fmt"
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/cmu"
	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/NSoiffer/MathCAT-sub001/nemeth"
	"github.com/NSoiffer/MathCAT-sub001/ueb"
)

// Code is a braille code for mathematics.
type Code int

// Supported braille codes.
const (
	Nemeth Code = iota
	UEB
	CMU
)

var codeNames = []string{"Nemeth", "UEB", "CMU"}

var codeDescriptions = []string{
	"Nemeth Code for Mathematics and Science Notation",
	"Unified English Braille",
	"Código Matemático Unificado",
}

var codeLanguages = []string{"en-US", "en-GB", "es"}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeNames[c]
}

// Description returns the full name of a code.
func (c Code) Description() string {
	if c < 0 || int(c) >= len(codeDescriptions) {
		return ""
	}
	return codeDescriptions[c]
}

// Language returns the BCP 47 tag of the language community a code is
// primarily used in.
func (c Code) Language() string {
	if c < 0 || int(c) >= len(codeLanguages) {
		return "und"
	}
	return codeLanguages[c]
}

// SupportedCodes lists all braille codes with a parser.
func SupportedCodes() []Code {
	return []Code{Nemeth, UEB, CMU}
}

// ParseCode finds a code by name, ignoring case.
func ParseCode(s string) (Code, error) {
	for _, c := range SupportedCodes() {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return Nemeth, fmt.Errorf("Unknown braille code: '%s'. Supported codes are: %s",
		s, strings.Join(codeNames, ", "))
}

// ParseResult is the outcome of a translation.
type ParseResult = engine.ParseResult

// Engine returns the shared engine of a code.
func (c Code) Engine() (*engine.Engine, error) {
	switch c {
	case Nemeth:
		return nemeth.Engine(), nil
	case UEB:
		return ueb.Engine(), nil
	case CMU:
		return cmu.Engine(), nil
	}
	return nil, engine.UnsupportedCode{Code: c.String()}
}

// Translate back-translates braille of a given code to MathML.
func Translate(c Code, braille string) ParseResult {
	return TranslateWith(c, braille, mathml.Options{})
}

// TranslateWith back-translates braille of a given code to MathML, formatted
// according to opts.
func TranslateWith(c Code, braille string, opts mathml.Options) ParseResult {
	e, err := c.Engine()
	if err != nil {
		CT().Errorf("translate: %v", err)
		return ParseResult{Errors: []engine.Error{engine.UnsupportedCode{Code: c.String()}}}
	}
	return e.ParseWith(braille, opts)
}

// IsValidBraille is true if s consists of braille cells and whitespace only.
func IsValidBraille(s string) bool {
	for _, r := range s {
		if !cells.IsAccepted(r) {
			return false
		}
	}
	return true
}

// ASCIIToUnicode transcribes braille given in dot-number notation to braille
// cells. Dots are written as digits '1'…'8' or letters 'a'…'h', cells are
// separated by spaces or '-', and "0" stands for a blank cell:
//
//	ASCIIToUnicode("3456 2")  // ⠼⠂
//
// Groups which do not denote a cell are copied unchanged.
func ASCIIToUnicode(s string) string {
	var sb strings.Builder
	for _, group := range strings.FieldsFunc(s, isCellSeparator) {
		dots := strings.Map(letterDot, group)
		if cell, err := cells.FromDots(dots); err == nil {
			sb.WriteRune(cell)
		} else {
			sb.WriteString(group)
		}
	}
	return sb.String()
}

func isCellSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '\t' || r == '\n' || r == '\r'
}

func letterDot(r rune) rune {
	if r >= 'a' && r <= 'h' {
		return '1' + (r - 'a')
	}
	if r >= 'A' && r <= 'H' {
		return '1' + (r - 'A')
	}
	return r
}
