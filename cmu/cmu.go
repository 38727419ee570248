/*
Package cmu back-translates braille of the Código Matemático Unificado to
MathML.

CMU is the unified braille code for mathematics of the Spanish-speaking
countries. Digits re-use the cells of the letters a–j and always follow a
numeric indicator. Multi-symbol scripts are enclosed in auxiliary
parentheses instead of being terminated by a baseline indicator.

The greater-than sign shares its cell with the letter o. Operators take
precedence, so a plain ⠕ always reads as ">"; the capital O is unaffected.
*/
package cmu

import (
	"sync"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Indicator cells.
const (
	NumericIndicator = '⠼'
	CapitalIndicator = '⠠'
	GreekIndicator   = '⠨'
	DecimalPoint     = '⠂'
	DigitSeparator   = '⠄'
)

var digits = map[rune]rune{
	'⠁': '1', '⠃': '2', '⠉': '3', '⠙': '4', '⠑': '5',
	'⠋': '6', '⠛': '7', '⠓': '8', '⠊': '9', '⠚': '0',
}

var letters = map[rune]rune{
	'⠁': 'a', '⠃': 'b', '⠉': 'c', '⠙': 'd', '⠑': 'e', '⠋': 'f', '⠛': 'g',
	'⠓': 'h', '⠊': 'i', '⠚': 'j', '⠅': 'k', '⠇': 'l', '⠍': 'm', '⠝': 'n',
	'⠕': 'o', '⠏': 'p', '⠟': 'q', '⠗': 'r', '⠎': 's', '⠞': 't', '⠥': 'u',
	'⠧': 'v', '⠺': 'w', '⠭': 'x', '⠽': 'y', '⠵': 'z',
}

var greek = map[rune]rune{
	'⠁': 'α', '⠃': 'β', '⠛': 'γ', '⠙': 'δ', '⠑': 'ε', '⠵': 'ζ', '⠱': 'η',
	'⠹': 'θ', '⠊': 'ι', '⠅': 'κ', '⠇': 'λ', '⠍': 'μ', '⠝': 'ν', '⠭': 'ξ',
	'⠕': 'ο', '⠏': 'π', '⠗': 'ρ', '⠎': 'σ', '⠞': 'τ', '⠥': 'υ', '⠋': 'φ',
	'⠯': 'χ', '⠽': 'ψ', '⠺': 'ω',
}

// Table is the cell table of CMU.
var Table = cells.NewTable("CMU", digits, letters, greek)

var operators = []engine.Operator{
	{Name: "plus", Category: engine.Arithmetic, Cells: "⠮", Glyph: "+"},
	{Name: "minus", Category: engine.Arithmetic, Cells: "⠤", Glyph: "−"},
	{Name: "times", Category: engine.Arithmetic, Cells: "⠬", Glyph: "×"},
	{Name: "divide", Category: engine.Arithmetic, Cells: "⠲", Glyph: "÷"},
	{Name: "plus_minus", Category: engine.Arithmetic, Cells: "⠮⠤", Glyph: "±"},
	{Name: "minus_plus", Category: engine.Arithmetic, Cells: "⠤⠮", Glyph: "∓"},
	//
	{Name: "equals", Category: engine.Comparison, Cells: "⠶", Glyph: "="},
	{Name: "not_equal", Category: engine.Comparison, Cells: "⠘⠶", Glyph: "≠"},
	{Name: "less", Category: engine.Comparison, Cells: "⠪", Glyph: "<"},
	{Name: "greater", Category: engine.Comparison, Cells: "⠕", Glyph: ">"},
	{Name: "less_equal", Category: engine.Comparison, Cells: "⠪⠶", Glyph: "≤"},
	{Name: "greater_equal", Category: engine.Comparison, Cells: "⠕⠶", Glyph: "≥"},
	{Name: "much_less", Category: engine.Comparison, Cells: "⠪⠪", Glyph: "≪"},
	{Name: "much_greater", Category: engine.Comparison, Cells: "⠕⠕", Glyph: "≫"},
	{Name: "equivalent", Category: engine.Comparison, Cells: "⠶⠶", Glyph: "≡"},
	{Name: "approx", Category: engine.Comparison, Cells: "⠈⠶", Glyph: "≈"},
	//
	{Name: "subset", Category: engine.Set, Cells: "⠣⠄", Glyph: "⊂"},
	{Name: "subset_equal", Category: engine.Set, Cells: "⠣⠆", Glyph: "⊆"},
	{Name: "superset", Category: engine.Set, Cells: "⠠⠜", Glyph: "⊃"},
	{Name: "union", Category: engine.Set, Cells: "⠸⠜", Glyph: "∪"},
	{Name: "intersection", Category: engine.Set, Cells: "⠸⠱", Glyph: "∩"},
	{Name: "element_of", Category: engine.Set, Cells: "⠈⠑", Glyph: "∈"},
	//
	{Name: "and", Category: engine.Logical, Cells: "⠸⠢", Glyph: "∧"},
	{Name: "or", Category: engine.Logical, Cells: "⠸⠊", Glyph: "∨"},
	//
	{Name: "implies", Category: engine.Arrow, Cells: "⠒⠕", Glyph: "⇒"},
	{Name: "right_arrow", Category: engine.Arrow, Cells: "⠒⠂", Glyph: "→"},
	{Name: "left_arrow", Category: engine.Arrow, Cells: "⠐⠒", Glyph: "←"},
	{Name: "if_and_only_if", Category: engine.Arrow, Cells: "⠐⠒⠕", Glyph: "⇔"},
}

var symbols = []engine.Symbol{
	{Name: "infinity", Cells: "⠼⠳"},
	{Name: "empty_set", Cells: "⠯"},
	{Name: "degree", Cells: "⠴"},
	{Name: "percent", Cells: "⠸⠴"},
	{Name: "ellipsis", Cells: "⠄⠄⠄"},
	{Name: "double_prime", Cells: "⠳⠳"},
	{Name: "prime", Cells: "⠳"},
}

var opens = []engine.Delimiter{
	{Name: "open_paren", Cells: "⠣", Glyph: "("},
	{Name: "open_bracket", Cells: "⠷", Glyph: "["},
	{Name: "open_brace", Cells: "⠐⠇", Glyph: "{"},
}

var closes = []engine.Delimiter{
	{Name: "close_paren", Cells: "⠜", Glyph: ")"},
	{Name: "close_bracket", Cells: "⠾", Glyph: "]"},
	{Name: "close_brace", Cells: "⠸⠂", Glyph: "}"},
}

var truncation = []rune{'⠹', '⠆', '⠩', '⠡', '⠌', '⠢', '⠰', '⠠', '⠨', '⠼'}

// Dialect creates the CMU dialect.
func Dialect() *engine.Dialect {
	return &engine.Dialect{
		Name:             "CMU",
		Cells:            Table,
		NumericIndicator: NumericIndicator,
		DecimalPoints:    []rune{DecimalPoint},
		DigitSeparator:   DigitSeparator,
		CapitalIndicator: CapitalIndicator,
		GreekIndicator:   GreekIndicator,
		Fraction:         engine.FractionCells{Open: "⠹", Bar: "⠆", Close: "⠿"},
		Radical:          engine.RadicalCells{Start: "⠩", End: "⠻", Index: "⠰"},
		Scripts: engine.ScriptCells{
			Superscript: "⠡",
			Subscript:   "⠌",
			GroupOpen:   "⠢",
			GroupClose:  "⠔",
		},
		Opens:         opens,
		Closes:        closes,
		Operators:     operators,
		Symbols:       symbols,
		Truncation:    truncation,
		ValidateRange: true,
		Recover:       true,
		Fallback:      true,
	}
}

var shared struct {
	once   sync.Once
	engine *engine.Engine
}

// Engine returns the shared CMU engine with default options.
func Engine() *engine.Engine {
	shared.once.Do(func() {
		e, err := engine.New(Dialect())
		if err != nil {
			panic(err)
		}
		shared.engine = e
	})
	return shared.engine
}

// Parse back-translates CMU braille to MathML.
func Parse(braille string) engine.ParseResult {
	return Engine().Parse(braille)
}
