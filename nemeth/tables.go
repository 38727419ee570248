package nemeth

import (
	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/engine"
)

// Indicator cells.
const (
	NumericIndicator = '⠼'
	CapitalIndicator = '⠠'
	GreekIndicator   = '⠨'
	DecimalPoint     = '⠨'
	DigitSeparator   = '⠠'
	BoldIndicator    = "⠸"
	ScriptIndicator  = "⠈"
)

// digits use the lower-cell shapes of the letters a–j
var digits = map[rune]rune{
	'⠂': '1', '⠆': '2', '⠒': '3', '⠲': '4', '⠢': '5',
	'⠖': '6', '⠶': '7', '⠦': '8', '⠔': '9', '⠴': '0',
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

// Table is the cell table of Nemeth Code.
var Table = cells.NewTable("Nemeth", digits, letters, greek)

var operators = []engine.Operator{
	{Name: "plus", Category: engine.Arithmetic, Cells: "⠬", Glyph: "+"},
	{Name: "minus", Category: engine.Arithmetic, Cells: "⠤", Glyph: "-"},
	{Name: "times", Category: engine.Arithmetic, Cells: "⠈⠡", Glyph: "×"},
	{Name: "dot", Category: engine.Arithmetic, Cells: "⠡", Glyph: "⋅"},
	{Name: "divide", Category: engine.Arithmetic, Cells: "⠨⠌", Glyph: "÷"},
	{Name: "plus_minus", Category: engine.Arithmetic, Cells: "⠬⠤", Glyph: "±"},
	{Name: "minus_plus", Category: engine.Arithmetic, Cells: "⠤⠬", Glyph: "∓"},
	//
	{Name: "equals", Category: engine.Comparison, Cells: "⠨⠅", Glyph: "="},
	{Name: "less", Category: engine.Comparison, Cells: "⠐⠅", Glyph: "<"},
	{Name: "greater", Category: engine.Comparison, Cells: "⠨⠂", Glyph: ">"},
	{Name: "less_equal", Category: engine.Comparison, Cells: "⠐⠅⠱", Glyph: "≤"},
	{Name: "greater_equal", Category: engine.Comparison, Cells: "⠨⠂⠱", Glyph: "≥"},
	{Name: "not_equal", Category: engine.Comparison, Cells: "⠌⠨⠅", Glyph: "≠"},
	{Name: "approx", Category: engine.Comparison, Cells: "⠈⠱⠈⠱", Glyph: "≈"},
	//
	{Name: "union", Category: engine.Set, Cells: "⠨⠬", Glyph: "∪"},
	{Name: "intersection", Category: engine.Set, Cells: "⠨⠩", Glyph: "∩"},
	{Name: "subset", Category: engine.Set, Cells: "⠸⠐⠅", Glyph: "⊂"},
	{Name: "superset", Category: engine.Set, Cells: "⠸⠨⠂", Glyph: "⊃"},
	{Name: "element_of", Category: engine.Set, Cells: "⠈⠑", Glyph: "∈"},
	{Name: "not_element_of", Category: engine.Set, Cells: "⠌⠈⠑", Glyph: "∉"},
	//
	{Name: "and", Category: engine.Logical, Cells: "⠈⠩", Glyph: "∧"},
	{Name: "or", Category: engine.Logical, Cells: "⠈⠬", Glyph: "∨"},
	{Name: "not", Category: engine.Logical, Cells: "⠈⠹", Glyph: "¬"},
	{Name: "for_all", Category: engine.Logical, Cells: "⠈⠁", Glyph: "∀"},
	{Name: "exists", Category: engine.Logical, Cells: "⠈⠿", Glyph: "∃"},
	//
	{Name: "right_arrow", Category: engine.Arrow, Cells: "⠫⠕", Glyph: "→"},
	{Name: "left_arrow", Category: engine.Arrow, Cells: "⠫⠪", Glyph: "←"},
	{Name: "implies", Category: engine.Arrow, Cells: "⠫⠨⠕", Glyph: "⇒"},
}

var symbols = []engine.Symbol{
	{Name: "infinity", Cells: "⠠⠿"},
	{Name: "empty_set", Cells: "⠸⠴"},
	{Name: "therefore", Cells: "⠠⠡"},
	{Name: "degree", Cells: "⠨⠡"},
	{Name: "percent", Cells: "⠈⠴"},
	{Name: "ellipsis", Cells: "⠄⠄⠄"},
	{Name: "double_prime", Cells: "⠄⠄"},
	{Name: "prime", Cells: "⠄"},
	{Name: "integral", Cells: "⠮"},
	{Name: "partial", Cells: "⠈⠙"},
	{Name: "nabla", Cells: "⠨⠫"},
}

var opens = []engine.Delimiter{
	{Name: "open_paren", Cells: "⠷", Glyph: "("},
	{Name: "open_bracket", Cells: "⠈⠷", Glyph: "["},
	{Name: "open_brace", Cells: "⠨⠷", Glyph: "{"},
	{Name: "open_bar", Cells: "⠳", Glyph: "|"},
}

var closes = []engine.Delimiter{
	{Name: "close_paren", Cells: "⠾", Glyph: ")"},
	{Name: "close_bracket", Cells: "⠈⠾", Glyph: "]"},
	{Name: "close_brace", Cells: "⠨⠾", Glyph: "}"},
	{Name: "close_bar", Cells: "⠳", Glyph: "|"},
}

// functions maps the cells of function names to names. Function names are
// spelled in plain letters and must not run into a following letter.
var functions = map[string]string{
	"⠎⠊⠝": "sin",
	"⠉⠕⠎": "cos",
	"⠞⠁⠝": "tan",
	"⠇⠕⠛": "log",
	"⠇⠝":  "ln",
	"⠇⠊⠍": "lim",
	"⠑⠭⠏": "exp",
	"⠍⠁⠭": "max",
	"⠍⠊⠝": "min",
}

// truncation holds the cells which cannot end a complete expression.
var truncation = []rune{'⠹', '⠌', '⠜', '⠘', '⠰', '⠠', '⠣', '⠨'}
