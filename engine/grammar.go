package engine

import (
	"sort"

	"github.com/NSoiffer/MathCAT-sub001/peg"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

var typeformRules = map[semantic.FontStyle]string{
	semantic.Bold:   RuleBoldIndicator,
	semantic.Italic: RuleItalicIndicator,
	semantic.Script: RuleScriptIndicator,
}

// NewGrammar creates the grammar for a dialect. The shape of the grammar is
// shared by all dialects:
//
//	math           = SOI expression EOI
//	expression     = term+
//	term           = operator / scripted_atom / script
//	scripted_atom  = atom script*
//	script         = superscript / subscript
//	atom           = fraction / radical / grouped / number / greek_letter
//	               / special_symbol / letter
//	fraction       = [nesting] open expression [nesting] bar expression [nesting] close
//	radical        = [radical_index] radical_start expression radical_end
//	grouped        = open_delimiter [expression] close_delimiter
//	operator       = arithmetic_operator / comparison_operator / set_operator
//	               / logical_operator / arrow_operator
//
// Parts a dialect has no cells for are left out. The dialect's fragments are
// applied last and may redefine any rule.
func NewGrammar(d *Dialect, opts ...peg.Option) (*peg.Grammar, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := peg.NewGrammar(d.Name, opts...)
	g.Define(RuleMath, peg.Seq(peg.SOI(), peg.Ref(RuleExpression), peg.EOI()))
	g.Define(RuleExpression, peg.Some(peg.Ref(RuleTerm)))
	terms := []peg.Expr{}
	if len(d.Operators) > 0 {
		terms = append(terms, peg.Ref(RuleOperator))
		defineOperators(g, d)
	}
	terms = append(terms, peg.Ref(RuleScriptedAtom))
	hasScripts := d.Scripts.Superscript != "" || d.Scripts.Subscript != ""
	if hasScripts {
		terms = append(terms, peg.Ref(RuleScript))
		g.Define(RuleScriptedAtom, peg.Seq(peg.Ref(RuleAtom), peg.Many(peg.Ref(RuleScript))))
		defineScripts(g, d)
	} else {
		g.Define(RuleScriptedAtom, peg.Ref(RuleAtom))
	}
	g.Define(RuleTerm, peg.Choice(terms...))
	//
	atoms := []peg.Expr{}
	if d.Fraction.Open != "" {
		atoms = append(atoms, peg.Ref(RuleFraction))
		defineFraction(g, d)
	}
	if d.Radical.Start != "" {
		atoms = append(atoms, peg.Ref(RuleRadical))
		defineRadical(g, d)
	}
	if len(d.Opens) > 0 && len(d.Closes) > 0 {
		atoms = append(atoms, peg.Ref(RuleGrouped))
		defineGrouping(g, d)
	}
	atoms = append(atoms, peg.Ref(RuleNumber))
	defineNumber(g, d)
	if d.GreekIndicator != 0 {
		atoms = append(atoms, peg.Ref(RuleGreekLetter))
		g.Define(RuleGreekLetter, peg.Atomic(peg.Seq(
			peg.Ref(RuleGreekIndicator),
			peg.Opt(peg.Ref(RuleCapitalIndicator)),
			peg.Ref(RuleGreekChar))))
		g.Define(RuleGreekIndicator, peg.OneOf(d.GreekIndicator))
		g.Define(RuleGreekChar, peg.OneOf(d.Cells.GreekCells()...))
	}
	if len(d.Symbols) > 0 {
		atoms = append(atoms, peg.Ref(RuleSpecialSymbol))
		defineSymbols(g, d)
	}
	atoms = append(atoms, peg.Ref(RuleLetter))
	defineLetter(g, d)
	g.Define(RuleAtom, peg.Choice(atoms...))
	// capital indicator is shared by letters and Greek letters
	g.Define(RuleCapitalIndicator, peg.OneOf(d.CapitalIndicator))
	if d.Fragments != nil {
		d.Fragments(g)
	}
	if err := g.Compile(); err != nil {
		T().Errorf("grammar for %s: %v", d.Name, err)
		return nil, err
	}
	return g, nil
}

func defineOperators(g *peg.Grammar, d *Dialect) {
	var categories []peg.Expr
	for _, c := range Categories {
		ops := d.OperatorsOf(c)
		if len(ops) == 0 {
			continue
		}
		alts := make([]peg.Expr, len(ops))
		for i, op := range ops {
			g.Define(op.Name, peg.Cells(op.Cells))
			alts[i] = peg.Ref(op.Name)
		}
		g.Define(c.RuleName(), peg.Choice(alts...))
		categories = append(categories, peg.Ref(c.RuleName()))
	}
	g.Define(RuleOperator, peg.Choice(categories...))
}

func defineScripts(g *peg.Grammar, d *Dialect) {
	var scripts []peg.Expr
	if d.Scripts.Superscript != "" {
		scripts = append(scripts, peg.Ref(RuleSuperscript))
		g.Define(RuleSuperscript, peg.Seq(peg.Ref(RuleSuperscriptIndicator), peg.Ref(RuleScriptContent)))
		g.Define(RuleSuperscriptIndicator, peg.Cells(d.Scripts.Superscript))
	}
	if d.Scripts.Subscript != "" {
		scripts = append(scripts, peg.Ref(RuleSubscript))
		g.Define(RuleSubscript, peg.Seq(peg.Ref(RuleSubscriptIndicator), peg.Ref(RuleScriptContent)))
		g.Define(RuleSubscriptIndicator, peg.Cells(d.Scripts.Subscript))
	}
	g.Define(RuleScript, peg.Choice(scripts...))
	var content []peg.Expr
	if d.Scripts.GroupOpen != "" {
		content = append(content, peg.Seq(peg.Ref(RuleScriptGroupOpen), peg.Ref(RuleExpression),
			peg.Ref(RuleScriptGroupClose)))
		g.Define(RuleScriptGroupOpen, peg.Cells(d.Scripts.GroupOpen))
		g.Define(RuleScriptGroupClose, peg.Cells(d.Scripts.GroupClose))
	}
	if d.Scripts.Baseline != "" {
		content = append(content, peg.Seq(peg.Ref(RuleExpression), peg.Ref(RuleBaselineIndicator)))
		g.Define(RuleBaselineIndicator, peg.Cells(d.Scripts.Baseline))
	}
	content = append(content, peg.Ref(RuleAtom))
	g.Define(RuleScriptContent, peg.Choice(content...))
}

func defineFraction(g *peg.Grammar, d *Dialect) {
	part := func(rule string) peg.Expr {
		if d.Fraction.Nesting == "" {
			return peg.Ref(rule)
		}
		return peg.Seq(peg.Opt(peg.Ref(RuleNestingIndicator)), peg.Ref(rule))
	}
	g.Define(RuleFraction, peg.Seq(
		part(RuleFractionOpen), peg.Ref(RuleExpression),
		part(RuleFractionBar), peg.Ref(RuleExpression),
		part(RuleFractionClose)))
	g.Define(RuleFractionOpen, peg.Cells(d.Fraction.Open))
	g.Define(RuleFractionBar, peg.Cells(d.Fraction.Bar))
	g.Define(RuleFractionClose, peg.Cells(d.Fraction.Close))
	if d.Fraction.Nesting != "" {
		g.Define(RuleNestingIndicator, peg.Cells(d.Fraction.Nesting))
	}
}

func defineRadical(g *peg.Grammar, d *Dialect) {
	body := peg.Seq(peg.Ref(RuleRadicalStart), peg.Ref(RuleExpression), peg.Ref(RuleRadicalEnd))
	if d.Radical.Index != "" {
		body = peg.Seq(peg.Opt(peg.Ref(RuleRadicalIndex)), body)
		g.Define(RuleRadicalIndex, peg.Seq(peg.Ref(RuleIndexIndicator), peg.Ref(RuleAtom)))
		g.Define(RuleIndexIndicator, peg.Cells(d.Radical.Index))
	}
	g.Define(RuleRadical, body)
	g.Define(RuleRadicalStart, peg.Cells(d.Radical.Start))
	g.Define(RuleRadicalEnd, peg.Cells(d.Radical.End))
}

func defineGrouping(g *peg.Grammar, d *Dialect) {
	g.Define(RuleGrouped, peg.Seq(peg.Ref(RuleOpenDelim), peg.Opt(peg.Ref(RuleExpression)),
		peg.Ref(RuleCloseDelim)))
	g.Define(RuleOpenDelim, delimiterChoice(g, d.Opens))
	g.Define(RuleCloseDelim, delimiterChoice(g, d.Closes))
}

func delimiterChoice(g *peg.Grammar, delims []Delimiter) peg.Expr {
	sorted := append([]Delimiter{}, delims...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Cells) > len(sorted[j].Cells)
	})
	alts := make([]peg.Expr, len(sorted))
	for i, delim := range sorted {
		g.Define(delim.Name, peg.Cells(delim.Cells))
		alts[i] = peg.Ref(delim.Name)
	}
	return peg.Choice(alts...)
}

func defineNumber(g *peg.Grammar, d *Dialect) {
	digit := peg.Ref(RuleDigit)
	more := []peg.Expr{digit}
	lead := []peg.Expr{digit}
	if len(d.DecimalPoints) > 0 {
		point := peg.Seq(peg.Ref(RuleDecimalPoint), peg.And(peg.Ref(RuleDigit)))
		more = append(more, point)
		lead = append(lead, point)
		g.Define(RuleDecimalPoint, peg.OneOf(d.DecimalPoints...))
	}
	if d.DigitSeparator != 0 {
		more = append(more, peg.Seq(peg.Ref(RuleDigitSeparator), peg.And(peg.Ref(RuleDigit))))
		g.Define(RuleDigitSeparator, peg.OneOf(d.DigitSeparator))
	}
	body := peg.Seq(peg.Choice(lead...), peg.Many(peg.Choice(more...)))
	var number peg.Expr
	switch {
	case d.NumericIndicator == 0:
		number = body
	case d.UnindicatedDigits:
		number = peg.Seq(peg.Opt(peg.Ref(RuleNumericIndicator)), body)
	default:
		number = peg.Seq(peg.Ref(RuleNumericIndicator), body)
	}
	g.Define(RuleNumber, peg.Atomic(number))
	g.Define(RuleDigit, peg.OneOf(d.Cells.DigitCells()...))
	if d.NumericIndicator != 0 {
		g.Define(RuleNumericIndicator, peg.OneOf(d.NumericIndicator))
	}
}

func defineLetter(g *peg.Grammar, d *Dialect) {
	var seq []peg.Expr
	var typeforms []peg.Expr
	for _, style := range []semantic.FontStyle{semantic.Bold, semantic.Italic, semantic.Script} {
		if cells, ok := d.Typeforms[style]; ok && cells != "" {
			rule := typeformRules[style]
			typeforms = append(typeforms, peg.Ref(rule))
			g.Define(rule, peg.Cells(cells))
		}
	}
	if len(typeforms) > 0 {
		seq = append(seq, peg.Opt(peg.Choice(typeforms...)))
	}
	if d.CapitalIndicator != 0 {
		seq = append(seq, peg.Opt(peg.Ref(RuleCapitalIndicator)))
	}
	seq = append(seq, peg.Ref(RuleLetterChar))
	g.Define(RuleLetter, peg.Atomic(peg.Seq(seq...)))
	g.Define(RuleLetterChar, peg.OneOf(d.Cells.LetterCells()...))
}

func defineSymbols(g *peg.Grammar, d *Dialect) {
	sorted := append([]Symbol{}, d.Symbols...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Cells) > len(sorted[j].Cells)
	})
	alts := make([]peg.Expr, len(sorted))
	for i, sym := range sorted {
		g.Define(sym.Name, peg.Cells(sym.Cells))
		alts[i] = peg.Ref(sym.Name)
	}
	g.Define(RuleSpecialSymbol, peg.Choice(alts...))
}
