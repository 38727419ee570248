package engine

// Names of the rules of the shared grammar. Concrete operator, symbol and
// delimiter rules are named by the dialect tables.
const (
	RuleMath          = "math"
	RuleExpression    = "expression"
	RuleTerm          = "term"
	RuleAtom          = "atom"
	RuleScriptedAtom  = "scripted_atom"
	RuleScript        = "script"
	RuleSuperscript   = "superscript"
	RuleSubscript     = "subscript"
	RuleScriptContent = "script_content"
	RuleNumber        = "number"
	RuleDigit         = "digit"
	RuleLetter        = "letter"
	RuleLetterChar    = "letter_char"
	RuleGreekLetter   = "greek_letter"
	RuleGreekChar     = "greek_char"
	RuleFraction      = "fraction"
	RuleRadical       = "radical"
	RuleRadicalIndex  = "radical_index"
	RuleGrouped       = "grouped"
	RuleOpenDelim     = "open_delimiter"
	RuleCloseDelim    = "close_delimiter"
	RuleOperator      = "operator"
	RuleSpecialSymbol = "special_symbol"

	// Indicator rules. They carry no payload of their own.
	RuleNumericIndicator     = "numeric_indicator"
	RuleDecimalPoint         = "decimal_point"
	RuleDigitSeparator       = "digit_separator"
	RuleCapitalIndicator     = "capital_indicator"
	RuleGreekIndicator       = "greek_indicator"
	RuleBoldIndicator        = "bold_indicator"
	RuleItalicIndicator      = "italic_indicator"
	RuleScriptIndicator      = "script_indicator"
	RuleSuperscriptIndicator = "superscript_indicator"
	RuleSubscriptIndicator   = "subscript_indicator"
	RuleBaselineIndicator    = "baseline_indicator"
	RuleScriptGroupOpen      = "script_group_open"
	RuleScriptGroupClose     = "script_group_close"
	RuleNestingIndicator     = "nesting_indicator"
	RuleFractionOpen         = "fraction_open"
	RuleFractionBar          = "fraction_bar"
	RuleFractionClose        = "fraction_close"
	RuleRadicalStart         = "radical_start"
	RuleRadicalEnd           = "radical_end"
	RuleIndexIndicator       = "index_indicator"
)

var indicatorRules = map[string]bool{
	RuleNumericIndicator:     true,
	RuleDecimalPoint:         true,
	RuleDigitSeparator:       true,
	RuleCapitalIndicator:     true,
	RuleGreekIndicator:       true,
	RuleBoldIndicator:        true,
	RuleItalicIndicator:      true,
	RuleScriptIndicator:      true,
	RuleSuperscriptIndicator: true,
	RuleSubscriptIndicator:   true,
	RuleBaselineIndicator:    true,
	RuleScriptGroupOpen:      true,
	RuleScriptGroupClose:     true,
	RuleNestingIndicator:     true,
	RuleFractionOpen:         true,
	RuleFractionBar:          true,
	RuleFractionClose:        true,
	RuleRadicalStart:         true,
	RuleRadicalEnd:           true,
	RuleIndexIndicator:       true,
}

// IsIndicatorRule is true for rules which match indicator cells only.
func IsIndicatorRule(name string) bool {
	return indicatorRules[name]
}

// Category is an operator class. Every operator belongs to exactly one.
type Category int8

// Operator categories, in the order they are tried by the grammar.
const (
	Arithmetic Category = iota
	Comparison
	Set
	Logical
	Arrow
)

// Categories lists all operator categories in grammar order.
var Categories = []Category{Arithmetic, Comparison, Set, Logical, Arrow}

// RuleName returns the name of the grammar rule for a category.
func (c Category) RuleName() string {
	switch c {
	case Arithmetic:
		return "arithmetic_operator"
	case Comparison:
		return "comparison_operator"
	case Set:
		return "set_operator"
	case Logical:
		return "logical_operator"
	case Arrow:
		return "arrow_operator"
	}
	return "unknown_operator"
}

func (c Category) String() string {
	return c.RuleName()
}

// Glyphs for special symbols. Symbol rules of a dialect not listed here are
// rendered as literal text.
var symbolGlyphs = map[string]string{
	"infinity":       "∞",
	"empty_set":      "∅",
	"element_of":     "∈",
	"not_element_of": "∉",
	"for_all":        "∀",
	"exists":         "∃",
	"therefore":      "∴",
	"because":        "∵",
	"degree":         "°",
	"percent":        "%",
	"ellipsis":       "…",
	"prime":          "′",
	"double_prime":   "″",
	"integral":       "∫",
	"partial":        "∂",
	"nabla":          "∇",
}

// SymbolGlyph returns the glyph for a special symbol rule.
func SymbolGlyph(name string) (string, bool) {
	g, ok := symbolGlyphs[name]
	return g, ok
}
