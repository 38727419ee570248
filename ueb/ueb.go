/*
Package ueb back-translates mathematics in Unified English Braille to MathML.

UEB writes digits with the cells of the letters a–j after a numeric
indicator. Letters standing alone may carry a grade 1 indicator, which keeps
them from being read as contractions; the symbol indicator ⠰ and the word
indicator ⠰⠰ are accepted before or after a capital indicator. Most print
symbols take two cells, with dot 5 (⠐) as the prefix of the arithmetic
operators and relations.

Multi-symbol scripts are enclosed in grade 1 grouping indicators ⠣ … ⠜.
*/
package ueb

import (
	"sync"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/peg"
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
	DecimalPoint     = '⠲'
	SymbolIndicator  = "⠰"
	WordIndicator    = "⠰⠰"
)

// RuleGrade1Indicator is the rule matching a grade 1 symbol or word indicator.
const RuleGrade1Indicator = "grade1_indicator"

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

// Table is the cell table of UEB.
var Table = cells.NewTable("UEB", digits, letters, greek)

var operators = []engine.Operator{
	{Name: "plus", Category: engine.Arithmetic, Cells: "⠐⠖", Glyph: "+"},
	{Name: "minus", Category: engine.Arithmetic, Cells: "⠐⠤", Glyph: "-"},
	{Name: "times", Category: engine.Arithmetic, Cells: "⠐⠦", Glyph: "×"},
	{Name: "divide", Category: engine.Arithmetic, Cells: "⠐⠌", Glyph: "÷"},
	{Name: "dot", Category: engine.Arithmetic, Cells: "⠐⠲", Glyph: "·"},
	{Name: "plus_minus", Category: engine.Arithmetic, Cells: "⠸⠖", Glyph: "±"},
	// variants of older transcriptions
	{Name: "plus_alt", Category: engine.Arithmetic, Cells: "⠐⠮", Glyph: "+"},
	{Name: "times_alt", Category: engine.Arithmetic, Cells: "⠐⠬", Glyph: "×"},
	//
	{Name: "equals", Category: engine.Comparison, Cells: "⠐⠶", Glyph: "="},
	{Name: "less", Category: engine.Comparison, Cells: "⠈⠣", Glyph: "<"},
	{Name: "greater", Category: engine.Comparison, Cells: "⠈⠜", Glyph: ">"},
	{Name: "approx", Category: engine.Comparison, Cells: "⠘⠶", Glyph: "≈"},
	//
	{Name: "element_of", Category: engine.Set, Cells: "⠘⠑", Glyph: "∈"},
	{Name: "union", Category: engine.Set, Cells: "⠨⠖", Glyph: "∪"},
	{Name: "intersection", Category: engine.Set, Cells: "⠨⠦", Glyph: "∩"},
	{Name: "subset", Category: engine.Set, Cells: "⠘⠣", Glyph: "⊂"},
	{Name: "superset", Category: engine.Set, Cells: "⠘⠜", Glyph: "⊃"},
	//
	{Name: "right_arrow", Category: engine.Arrow, Cells: "⠳⠕", Glyph: "→"},
	{Name: "left_arrow", Category: engine.Arrow, Cells: "⠳⠪", Glyph: "←"},
}

var symbols = []engine.Symbol{
	{Name: "infinity", Cells: "⠼⠿"},
	{Name: "degree", Cells: "⠘⠚"},
	{Name: "percent", Cells: "⠨⠴"},
	{Name: "ellipsis", Cells: "⠲⠲⠲"},
	{Name: "double_prime", Cells: "⠶⠶"},
	{Name: "prime", Cells: "⠶"},
}

var opens = []engine.Delimiter{
	{Name: "open_paren", Cells: "⠐⠣", Glyph: "("},
	{Name: "open_bracket", Cells: "⠨⠣", Glyph: "["},
	{Name: "open_brace", Cells: "⠸⠣", Glyph: "{"},
}

var closes = []engine.Delimiter{
	{Name: "close_paren", Cells: "⠐⠜", Glyph: ")"},
	{Name: "close_bracket", Cells: "⠨⠜", Glyph: "]"},
	{Name: "close_brace", Cells: "⠸⠜", Glyph: "}"},
}

var truncation = []rune{'⠷', '⠌', '⠐', '⠔', '⠢', '⠩', '⠣', '⠰', '⠠', '⠨', '⠼'}

// grade1 lets a letter carry a grade 1 indicator before or after its capital
// indicator. The builder only looks at the capital indicator and the letter.
func grade1(g *peg.Grammar) {
	g.Define(RuleGrade1Indicator, peg.Choice(peg.Cells(WordIndicator), peg.Cells(SymbolIndicator)))
	g.Define(engine.RuleLetter, peg.Atomic(peg.Seq(
		peg.Opt(peg.Ref(RuleGrade1Indicator)),
		peg.Opt(peg.Ref(engine.RuleCapitalIndicator)),
		peg.Opt(peg.Ref(RuleGrade1Indicator)),
		peg.Ref(engine.RuleLetterChar),
	)))
}

// Dialect creates the UEB dialect.
func Dialect() *engine.Dialect {
	return &engine.Dialect{
		Name:             "UEB",
		Cells:            Table,
		NumericIndicator: NumericIndicator,
		DecimalPoints:    []rune{DecimalPoint},
		CapitalIndicator: CapitalIndicator,
		GreekIndicator:   GreekIndicator,
		Fraction:         engine.FractionCells{Open: "⠷", Bar: "⠌", Close: "⠾"},
		Radical:          engine.RadicalCells{Start: "⠩", End: "⠬"},
		Scripts: engine.ScriptCells{
			Superscript: "⠔",
			Subscript:   "⠢",
			GroupOpen:   "⠣",
			GroupClose:  "⠜",
		},
		Opens:         opens,
		Closes:        closes,
		Operators:     operators,
		Symbols:       symbols,
		Truncation:    truncation,
		Fragments:     grade1,
		ValidateRange: true,
		Recover:       true,
		Fallback:      true,
	}
}

var shared struct {
	once   sync.Once
	engine *engine.Engine
}

// Engine returns the shared UEB engine with default options.
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

// Parse back-translates UEB braille to MathML.
func Parse(braille string) engine.ParseResult {
	return Engine().Parse(braille)
}
