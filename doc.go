/*
Package brlmath is about translating mathematical braille back to MathML.

Description

Readers of braille write mathematics in one of several braille codes. Three
of them are supported: Nemeth Code, used in North America, Unified English
Braille (UEB), used in most other English-speaking countries, and CMU (Código
Matemático Unificado), the unified code of the Spanish-speaking countries.
All of them linearize two-dimensional notation (fractions, radicals, scripts)
with indicator cells, and both re-use cells heavily: the same cell may be a
letter, a digit or part of an operator, depending on what surrounds it.

Back-translation of a braille string runs in stages. The input is checked to
hold only braille cells and whitespace. A PEG grammar for the selected code
is tried first. If it fails and the input ends in an incomplete structure,
the trailing indicators are dropped and the grammar is tried again. As a last
resort a cell-by-cell interpreter recovers flat sequences of numbers, letters
and operators. Successful parses yield a semantic tree, which is rendered as
MathML.

UEB documents may switch to Nemeth for a stretch of mathematics. Function
TranslateAuto splits such input at the switch indicators and translates every
segment with its own code. Input spread over several lines is read as a
matrix, one row per line.

	r := brlmath.Translate(brlmath.Nemeth, "⠭⠬⠼⠂")
	if r.IsSuccess() {
	    fmt.Println(*r.MathML)
	}

Results of failed translations carry errors instead of MathML. Non-fatal
anomalies are reported as warnings alongside successful results.

Contents

The grammar engine and the translation pipeline are in sub-package engine,
the braille codes in sub-packages nemeth, ueb and cmu. Package brlmath provides a
registry of these codes, code detection and a few helpers for braille
strings.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package brlmath

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
