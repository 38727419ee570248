package nemeth

import (
	"sort"
	"sync"

	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/peg"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// RuleFunctionName is the grammar rule for function names like "sin".
const RuleFunctionName = "function_name"

// Dialect creates the Nemeth dialect.
func Dialect() *engine.Dialect {
	return &engine.Dialect{
		Name:              "Nemeth",
		Cells:             Table,
		NumericIndicator:  NumericIndicator,
		DecimalPoints:     []rune{DecimalPoint},
		DigitSeparator:    DigitSeparator,
		UnindicatedDigits: true,
		CapitalIndicator:  CapitalIndicator,
		GreekIndicator:    GreekIndicator,
		Typeforms: map[semantic.FontStyle]string{
			semantic.Bold:   BoldIndicator,
			semantic.Script: ScriptIndicator,
		},
		Fraction: engine.FractionCells{Open: "⠹", Bar: "⠌", Close: "⠼", Nesting: "⠠"},
		Radical:  engine.RadicalCells{Start: "⠜", End: "⠻", Index: "⠣"},
		Scripts: engine.ScriptCells{
			Superscript: "⠘",
			Subscript:   "⠰",
			Baseline:    "⠐",
		},
		Opens:         opens,
		Closes:        closes,
		Operators:     operators,
		Symbols:       symbols,
		Truncation:    truncation,
		Fragments:     functionNames,
		Builders:      map[string]engine.BuildFunc{RuleFunctionName: buildFunctionName},
		ValidateRange: true,
		Recover:       true,
		Fallback:      true,
	}
}

// functionNames adds function names as atoms, in front of all other atoms.
func functionNames(g *peg.Grammar) {
	names := make([]string, 0, len(functions))
	for cells := range functions {
		names = append(names, cells)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	alts := make([]peg.Expr, len(names))
	for i, cells := range names {
		alts[i] = peg.Cells(cells)
	}
	g.Define(RuleFunctionName, peg.Atomic(peg.Seq(
		peg.Choice(alts...),
		peg.Not(peg.Ref(engine.RuleLetterChar)))))
	g.Define(engine.RuleAtom, peg.Choice(peg.Ref(RuleFunctionName), g.Rule(engine.RuleAtom)))
}

func buildFunctionName(b *engine.Builder, n *peg.Node) (semantic.Node, error) {
	if name, ok := functions[n.Text]; ok {
		return &semantic.Identifier{Letter: name}, nil
	}
	b.Warn(engine.UnexpectedIndicator{Indicator: "function name " + n.Text, Position: n.Pos})
	return &semantic.Text{Content: n.Text}, nil
}

var shared struct {
	once   sync.Once
	engine *engine.Engine
}

// Engine returns the shared Nemeth engine with default options.
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

// Parse back-translates Nemeth braille to MathML.
func Parse(braille string) engine.ParseResult {
	T().Debugf("Nemeth: parse %q", braille)
	return Engine().Parse(braille)
}
