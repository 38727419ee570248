/*
Package nemeth back-translates Nemeth Code braille to MathML.

Nemeth Code is the braille code for mathematics used in the United States.
Numbers use the lower-cell digit shapes, which may appear without numeric
indicator inside an expression. Structures are delimited by explicit
indicators:

	⠹ … ⠌ … ⠼      fraction (⠠-prefixed forms for complex fractions)
	⠜ … ⠻          radical, ⠣ introduces a root index
	⠘ ⠰ ⠐          superscript, subscript, return to baseline

Clients usually call Parse, which uses a shared engine. Dialect returns the
Nemeth dialect for building engines with custom options.
*/
package nemeth

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
