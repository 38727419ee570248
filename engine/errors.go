package engine

import (
	"fmt"
)

// Error is a fatal back-translation error. Errors are returned as part of a
// ParseResult; a result with errors carries no MathML.
type Error interface {
	error
	fatal()
}

// NoPosition is the position of errors which cannot be located in the input.
const NoPosition = -1

// EmptyInput is reported for input which is empty or contains only blanks.
type EmptyInput struct{}

func (EmptyInput) Error() string { return "Empty braille input" }
func (EmptyInput) fatal()        {}

// ParseError is reported if no parsing strategy succeeded, or if the parse
// tree violates an invariant of the semantic tree builder.
type ParseError struct {
	Message  string
	Position int // cell offset or NoPosition
}

func (e ParseError) Error() string {
	if e.Position < 0 {
		return "Parse error: " + e.Message
	}
	return fmt.Sprintf("Parse error at position %d: %s", e.Position, e.Message)
}
func (ParseError) fatal() {}

// UnrecognizedSymbol is reported for a character outside the range of
// braille cells and accepted whitespace.
type UnrecognizedSymbol struct {
	Position int
	Braille  string
}

func (e UnrecognizedSymbol) Error() string {
	return fmt.Sprintf("Unrecognized braille symbol '%s' at position %d", e.Braille, e.Position)
}
func (UnrecognizedSymbol) fatal() {}

// UnclosedFraction is a structural diagnostic for a fraction without closing indicator.
type UnclosedFraction struct {
	OpenPosition int
}

func (e UnclosedFraction) Error() string {
	return fmt.Sprintf("Unclosed fraction starting at position %d", e.OpenPosition)
}
func (UnclosedFraction) fatal() {}

// UnclosedRadical is a structural diagnostic for a radical without termination indicator.
type UnclosedRadical struct {
	OpenPosition int
}

func (e UnclosedRadical) Error() string {
	return fmt.Sprintf("Unclosed radical starting at position %d", e.OpenPosition)
}
func (UnclosedRadical) fatal() {}

// UnbalancedGrouping is a structural diagnostic for delimiters which do not pair up.
type UnbalancedGrouping struct {
	Expected string
	Found    string
	Position int
}

func (e UnbalancedGrouping) Error() string {
	return fmt.Sprintf("Unbalanced grouping: expected '%s', found '%s' at position %d",
		e.Expected, e.Found, e.Position)
}
func (UnbalancedGrouping) fatal() {}

// InvalidScript is a structural diagnostic for a script indicator without content.
type InvalidScript struct {
	Message  string
	Position int
}

func (e InvalidScript) Error() string {
	return fmt.Sprintf("Invalid script at position %d: %s", e.Position, e.Message)
}
func (InvalidScript) fatal() {}

// UnsupportedCode is reported for a braille code without a parser.
type UnsupportedCode struct {
	Code string
}

func (e UnsupportedCode) Error() string {
	return fmt.Sprintf("Unsupported braille code: %s", e.Code)
}
func (UnsupportedCode) fatal() {}

// ---------------------------------------------------------------------------

// Warning is a non-fatal anomaly. Warnings accumulate during a parse and are
// returned alongside a successful result.
type Warning interface {
	String() string
	Pos() int
}

// UnexpectedIndicator is reported for an indicator or rule without a handler.
// Its content is kept as literal text.
type UnexpectedIndicator struct {
	Indicator string
	Position  int
}

func (w UnexpectedIndicator) String() string {
	return fmt.Sprintf("Unexpected %s indicator at position %d", w.Indicator, w.Position)
}

// Pos is part of interface Warning.
func (w UnexpectedIndicator) Pos() int { return w.Position }

// AutoInserted is reported if input was repaired to obtain a parse.
type AutoInserted struct {
	Element  string
	Position int
}

func (w AutoInserted) String() string {
	return fmt.Sprintf("Auto-inserted %s at position %d", w.Element, w.Position)
}

// Pos is part of interface Warning.
func (w AutoInserted) Pos() int { return w.Position }

// MissingIndicator is reported if an indicator was expected but absent.
type MissingIndicator struct {
	Indicator string
	Position  int
}

func (w MissingIndicator) String() string {
	return fmt.Sprintf("Missing %s indicator at position %d", w.Indicator, w.Position)
}

// Pos is part of interface Warning.
func (w MissingIndicator) Pos() int { return w.Position }

// UnrecognizedCell is reported by the direct interpreter for a cell it cannot
// classify. The cell is skipped.
type UnrecognizedCell struct {
	Cell     rune
	Position int
}

func (w UnrecognizedCell) String() string {
	return fmt.Sprintf("Unrecognized braille cell '%c' at position %d", w.Cell, w.Position)
}

// Pos is part of interface Warning.
func (w UnrecognizedCell) Pos() int { return w.Position }

// CodeSwitch is reported where a mixed-code translation switches to another
// braille code.
type CodeSwitch struct {
	Code     string
	Position int
}

func (w CodeSwitch) String() string {
	return fmt.Sprintf("Code switch to %s at position %d", w.Code, w.Position)
}

// Pos is part of interface Warning.
func (w CodeSwitch) Pos() int { return w.Position }

// ---------------------------------------------------------------------------

func shiftError(e Error, offset int) Error {
	switch e := e.(type) {
	case ParseError:
		if e.Position != NoPosition {
			e.Position += offset
		}
		return e
	case UnrecognizedSymbol:
		e.Position += offset
		return e
	case UnclosedFraction:
		e.OpenPosition += offset
		return e
	case UnclosedRadical:
		e.OpenPosition += offset
		return e
	case UnbalancedGrouping:
		e.Position += offset
		return e
	case InvalidScript:
		e.Position += offset
		return e
	}
	return e
}

func shiftWarning(w Warning, offset int) Warning {
	switch w := w.(type) {
	case UnexpectedIndicator:
		w.Position += offset
		return w
	case AutoInserted:
		w.Position += offset
		return w
	case MissingIndicator:
		w.Position += offset
		return w
	case UnrecognizedCell:
		w.Position += offset
		return w
	case CodeSwitch:
		w.Position += offset
		return w
	}
	return w
}
