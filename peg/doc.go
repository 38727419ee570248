/*
Package peg implements parsing expression grammars over sequences of runes.

A Grammar is a set of named rules. Rule bodies are built from combinators:

	g := peg.NewGrammar("numbers")
	g.Define("number", peg.Atomic(peg.Seq(peg.Opt(peg.Ref("sign")), peg.Some(peg.Ref("digit")))))
	g.Define("sign", peg.Cells("-"))
	g.Define("digit", peg.OneOf('0', '1', '2', '3', '4', '5', '6', '7', '8', '9'))
	if err := g.Compile(); err != nil { … }
	tree, err := g.Parse("number", []rune("-42"))

Choice is ordered: the first alternative which matches wins, there is no
backtracking into a successful alternative. Every successful invocation of a
named rule produces a Node in the parse tree; combinators themselves produce
no nodes. This way the shape of a parse tree mirrors the rules of a grammar
and clients may dispatch on rule names.

Whitespace

Blank braille cells and literal whitespace are skipped implicitly in front of
every terminal and every rule invocation, unless the matcher is inside an
Atomic section. Atomic is used for multi-cell tokens which must not be
interrupted by blanks.

Errors

If the input does not match, Parse returns a *ParseError. It carries the
farthest position the parser reached and the names of the rules which were
expected there. Parsing is bounded in recursion depth; exceeding the limit
terminates with ErrTooDeep.

Rule invocations are memoized (packrat parsing), giving linear run time
for grammars without unbounded lookahead. Per-parse scratch state is pooled.
*/
package peg

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the syntax-tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
