package engine

import (
	"errors"

	"github.com/NSoiffer/MathCAT-sub001/semantic"
	"github.com/emirpasic/gods/lists/arraylist"
)

// ParseResult is the outcome of translating one braille string.
//
// A result is successful if it carries MathML and no errors. Warnings may
// accompany a successful result. Clients must not use MathML or Tree of a
// result with errors.
type ParseResult struct {
	MathML   *string
	Errors   []Error
	Warnings []Warning
	Tree     semantic.Node // semantic tree for successful results
}

func success(mathml string, tree semantic.Node, warnings []Warning) ParseResult {
	return ParseResult{MathML: &mathml, Tree: tree, Warnings: warnings}
}

func failure(errs ...Error) ParseResult {
	return ParseResult{Errors: errs}
}

// IsSuccess is true if the result has MathML and no errors.
func (r ParseResult) IsSuccess() bool {
	return len(r.Errors) == 0 && r.MathML != nil
}

// HasWarnings is true if the result carries warnings.
func (r ParseResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Output returns the MathML of a successful result, or an empty string.
func (r ParseResult) Output() string {
	if !r.IsSuccess() {
		return ""
	}
	return *r.MathML
}

// Err returns the errors of the result as a single Go error, or nil.
func (r ParseResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Shift moves the positions of all errors and warnings by offset. Results of
// a part of a larger input are shifted by the offset of the part.
func (r ParseResult) Shift(offset int) ParseResult {
	if offset == 0 {
		return r
	}
	if len(r.Errors) > 0 {
		errs := make([]Error, len(r.Errors))
		for i, e := range r.Errors {
			errs[i] = shiftError(e, offset)
		}
		r.Errors = errs
	}
	if len(r.Warnings) > 0 {
		ws := make([]Warning, len(r.Warnings))
		for i, w := range r.Warnings {
			ws[i] = shiftWarning(w, offset)
		}
		r.Warnings = ws
	}
	return r
}

// ---------------------------------------------------------------------------

// Collector accumulates warnings during a single parse.
type Collector struct {
	warnings *arraylist.List
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{warnings: arraylist.New()}
}

// Warn records a warning.
func (c *Collector) Warn(w Warning) {
	T().Debugf("warning: %s", w)
	c.warnings.Add(w)
}

// Len returns the number of warnings collected.
func (c *Collector) Len() int {
	return c.warnings.Size()
}

// Warnings returns the collected warnings in order of occurrence.
func (c *Collector) Warnings() []Warning {
	if c.warnings.Empty() {
		return nil
	}
	ws := make([]Warning, 0, c.warnings.Size())
	it := c.warnings.Iterator()
	for it.Next() {
		ws = append(ws, it.Value().(Warning))
	}
	return ws
}

// Merge appends the warnings of another collector.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.warnings.Add(other.warnings.Values()...)
}
