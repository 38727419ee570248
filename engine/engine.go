package engine

import (
	"errors"
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/NSoiffer/MathCAT-sub001/nesting"
	"github.com/NSoiffer/MathCAT-sub001/peg"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// Engine translates braille of a single dialect to MathML. An engine is
// immutable after creation and may be used by concurrent goroutines.
type Engine struct {
	dialect     *Dialect
	grammar     *peg.Grammar
	interpreter *interpreter
	structure   *nesting.Structure
	options     mathml.Options
	recovery    bool
	fallback    bool
	maxDepth    int
}

// Option configures an engine.
type Option func(*Engine)

// WithMathML sets the default options of the MathML generator.
func WithMathML(opts mathml.Options) Option {
	return func(e *Engine) {
		e.options = opts
	}
}

// WithoutRecovery switches off truncation-based recovery, regardless of the
// dialect's setting.
func WithoutRecovery() Option {
	return func(e *Engine) {
		e.recovery = false
	}
}

// WithoutFallback switches off the direct interpreter, regardless of the
// dialect's setting.
func WithoutFallback() Option {
	return func(e *Engine) {
		e.fallback = false
	}
}

// WithMaxDepth bounds the nesting depth of grammar rules.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// New creates an engine for a dialect. It fails if the dialect is
// inconsistent or its grammar does not compile.
func New(d *Dialect, opts ...Option) (*Engine, error) {
	if d == nil {
		return nil, errors.New("engine: dialect is nil")
	}
	e := &Engine{
		dialect:  d,
		recovery: d.Recover,
		fallback: d.Fallback,
		maxDepth: peg.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	g, err := NewGrammar(d, peg.MaxDepth(e.maxDepth))
	if err != nil {
		return nil, err
	}
	e.grammar = g
	e.interpreter = newInterpreter(d)
	e.structure = StructureOf(d)
	T().Infof("engine for %s ready", d.Name)
	return e, nil
}

// Dialect returns the dialect of the engine.
func (e *Engine) Dialect() *Dialect {
	return e.dialect
}

// Grammar returns the compiled grammar of the engine.
func (e *Engine) Grammar() *peg.Grammar {
	return e.grammar
}

// Parse translates braille to MathML, using the engine's MathML options.
func (e *Engine) Parse(braille string) ParseResult {
	return e.ParseWith(braille, e.options)
}

// ParseWith translates braille to MathML.
//
// Input is validated first, then parsed with the grammar of the dialect. If
// the grammar rejects the input, the engine tries to repair it by cutting off
// trailing indicators of incomplete structures. As a last resort the direct
// interpreter reads the input cell by cell. If every strategy fails, the
// result carries the grammar's parse error and structural diagnostics.
func (e *Engine) ParseWith(braille string, opts mathml.Options) ParseResult {
	input := []rune(braille)
	if isBlank(input) {
		return failure(EmptyInput{})
	}
	if e.dialect.ValidateRange {
		if errs := validate(input); len(errs) > 0 {
			return failure(errs...)
		}
	}
	collector := NewCollector()
	tree, err := e.grammar.Parse(RuleMath, input)
	if err == nil {
		return e.build(tree, collector, opts)
	}
	T().Debugf("%s: grammar failed: %v", e.dialect.Name, err)
	var pe *peg.ParseError
	if !errors.As(err, &pe) {
		return failure(ParseError{Message: err.Error(), Position: NoPosition})
	}
	if e.recovery {
		if trimmed, ok := truncate(e.dialect, input); ok {
			T().Debugf("%s: retrying with %d of %d cells", e.dialect.Name, len(trimmed), len(input))
			if tree, rerr := e.grammar.Parse(RuleMath, trimmed); rerr == nil {
				collector.Warn(AutoInserted{Element: "truncated incomplete structure", Position: len(trimmed)})
				if r := e.build(tree, collector, opts); r.IsSuccess() {
					return r
				}
			}
		}
	}
	if e.fallback {
		T().Debugf("%s: falling back to direct interpretation", e.dialect.Name)
		fallback := NewCollector()
		node, ferr := e.interpreter.interpret(input, fallback)
		if ferr == nil {
			return e.success(node, fallback, opts)
		}
	}
	return failure(e.diagnose(braille, pe)...)
}

func (e *Engine) build(tree *peg.Node, c *Collector, opts mathml.Options) ParseResult {
	b := NewBuilder(e.dialect, c)
	node, err := b.Build(tree)
	if err != nil {
		var fatal Error
		if !errors.As(err, &fatal) {
			fatal = ParseError{Message: err.Error(), Position: NoPosition}
		}
		T().Debugf("%s: builder failed: %v", e.dialect.Name, fatal)
		return failure(fatal)
	}
	return e.success(node, c, opts)
}

func (e *Engine) success(node semantic.Node, c *Collector, opts mathml.Options) ParseResult {
	out := mathml.Generate(node, opts)
	T().Infof("%s: translated to %s", e.dialect.Name, node)
	return success(out, node, c.Warnings())
}

// diagnose converts a grammar failure into errors: the parse error first,
// followed by structural diagnostics.
func (e *Engine) diagnose(braille string, pe *peg.ParseError) []Error {
	msg := "expected one of: " + strings.Join(pe.Expected, ", ")
	if errors.Is(pe.Err, peg.ErrTooDeep) {
		msg = "nesting too deep"
	} else if len(pe.Expected) == 0 {
		msg = "unexpected input"
	}
	errs := []Error{ParseError{Message: msg, Position: pe.Pos}}
	report := nesting.Check(e.structure, braille)
	for _, is := range report.Issues {
		switch is.Kind {
		case nesting.UnclosedFraction:
			errs = append(errs, UnclosedFraction{OpenPosition: is.Position})
		case nesting.UnclosedRadical:
			errs = append(errs, UnclosedRadical{OpenPosition: is.Position})
		case nesting.UnbalancedGroup:
			errs = append(errs, UnbalancedGrouping{Expected: is.Expected, Found: is.Found, Position: is.Position})
		default:
			errs = append(errs, ParseError{Message: is.String(), Position: is.Position})
		}
	}
	if pos, ok := danglingScript(e.dialect, []rune(braille)); ok {
		errs = append(errs, InvalidScript{Message: "script indicator without content", Position: pos})
	}
	return errs
}

// danglingScript finds a script indicator at the end of input.
func danglingScript(d *Dialect, input []rune) (int, bool) {
	end := len(input)
	for end > 0 && cells.IsBlank(input[end-1]) {
		end--
	}
	for _, ind := range []string{d.Scripts.Superscript, d.Scripts.Subscript} {
		n := len([]rune(ind))
		if n == 0 || n > end {
			continue
		}
		if string(input[end-n:end]) == ind {
			return end - n, true
		}
	}
	return 0, false
}

// Check runs the structural checker only.
func (e *Engine) Check(braille string) nesting.Report {
	return nesting.Check(e.structure, braille)
}

func isBlank(input []rune) bool {
	for _, r := range input {
		if !cells.IsBlank(r) {
			return false
		}
	}
	return true
}

// validate reports every character which is neither a braille cell nor
// accepted whitespace.
func validate(input []rune) []Error {
	var errs []Error
	for i, r := range input {
		if !cells.IsAccepted(r) {
			errs = append(errs, UnrecognizedSymbol{Position: i, Braille: string(r)})
		}
	}
	return errs
}

// StructureOf derives the structural cells of a dialect for the nesting
// checker.
func StructureOf(d *Dialect) *nesting.Structure {
	s := &nesting.Structure{NumericIndicator: d.NumericIndicator}
	s.Digits = d.Cells.DigitCells()
	variants := func(cells string) []string {
		if cells == "" {
			return nil
		}
		if d.Fraction.Nesting == "" {
			return []string{cells}
		}
		return []string{cells, d.Fraction.Nesting + cells}
	}
	s.FractionOpen = variants(d.Fraction.Open)
	s.FractionBar = variants(d.Fraction.Bar)
	s.FractionClose = variants(d.Fraction.Close)
	if d.Radical.Start != "" {
		s.RadicalStart = []string{d.Radical.Start}
		s.RadicalEnd = []string{d.Radical.End}
	}
	for i, open := range d.Opens {
		if i >= len(d.Closes) {
			break
		}
		s.Opens = append(s.Opens, nesting.Delimiter{Cells: open.Cells, Glyph: open.Glyph})
		s.Closes = append(s.Closes, nesting.Delimiter{Cells: d.Closes[i].Cells, Glyph: d.Closes[i].Glyph})
	}
	if d.Scripts.GroupOpen != "" {
		s.Opens = append(s.Opens, nesting.Delimiter{Cells: d.Scripts.GroupOpen, Glyph: "script("})
		s.Closes = append(s.Closes, nesting.Delimiter{Cells: d.Scripts.GroupClose, Glyph: "script)"})
	}
	// multi-cell operators and symbols may contain structural cells
	for _, op := range d.Operators {
		if len([]rune(op.Cells)) > 1 {
			s.Content = append(s.Content, op.Cells)
		}
	}
	for _, sym := range d.Symbols {
		if len([]rune(sym.Cells)) > 1 {
			s.Content = append(s.Content, sym.Cells)
		}
	}
	return s
}
