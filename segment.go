package brlmath

import (
	"strings"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
)

// Indicators which switch from UEB to Nemeth and back. They are recognized
// in UEB context only.
const (
	NemethOpen  = "⠸⠩"
	NemethClose = "⠸⠱"
)

// Segment is a run of braille written in a single code. Start and End are
// cell offsets into the complete input.
type Segment struct {
	Code       Code
	Braille    string
	Start, End int
}

// Segments splits braille at Nemeth switch indicators. Outside of switch
// indicators the input is UEB; an unterminated Nemeth stretch runs to the end.
// Input without switch indicators is a single segment in the code
// DetectCode chooses. Segments holding nothing but blanks are dropped.
func Segments(braille string) []Segment {
	input := []rune(braille)
	if !strings.Contains(braille, NemethOpen) {
		return []Segment{{Code: DetectCode(braille), Braille: braille, Start: 0, End: len(input)}}
	}
	opening, closing := []rune(NemethOpen), []rune(NemethClose)
	var segments []Segment
	code, start := UEB, 0
	add := func(end int) {
		if !isBlank(input[start:end]) {
			segments = append(segments, Segment{
				Code:    code,
				Braille: string(input[start:end]),
				Start:   start,
				End:     end,
			})
		}
	}
	for i := 0; i < len(input); {
		switch {
		case code == UEB && hasCellsAt(input, i, opening):
			add(i)
			code, i = Nemeth, i+len(opening)
			start = i
		case code == Nemeth && hasCellsAt(input, i, closing):
			add(i)
			code, i = UEB, i+len(closing)
			start = i
		default:
			i++
		}
	}
	add(len(input))
	return segments
}

func hasCellsAt(input []rune, i int, pattern []rune) bool {
	return i+len(pattern) <= len(input) && string(input[i:i+len(pattern)]) == string(pattern)
}

func isBlank(input []rune) bool {
	for _, r := range input {
		if !cells.IsBlank(r) {
			return false
		}
	}
	return true
}

// TranslateAuto back-translates braille without a given code. See
// TranslateAutoWith.
func TranslateAuto(braille string) ParseResult {
	return TranslateAutoWith(braille, mathml.Options{})
}

// TranslateAutoWith back-translates braille of unknown code. Input spread
// over several lines is read as a matrix. Otherwise the input is split into
// segments, each translated with its own code, and the results are joined
// into a single math element. Positions of errors and warnings refer to the
// complete input. Every switch between codes is reported as a warning.
func TranslateAutoWith(braille string, opts mathml.Options) ParseResult {
	if HasSpatialLayout(braille) {
		return TranslateLayout(DetectCode(braille), braille, opts)
	}
	segments := Segments(braille)
	if len(segments) == 0 {
		return ParseResult{Errors: []engine.Error{engine.EmptyInput{}}}
	}
	if len(segments) == 1 && !strings.Contains(braille, NemethOpen) {
		return TranslateWith(segments[0].Code, braille, opts)
	}
	var errs []engine.Error
	var warnings []engine.Warning
	trees := make([]semantic.Node, 0, len(segments))
	previous := UEB
	for _, seg := range segments {
		CT().Debugf("translate: %s segment at %d..%d", seg.Code, seg.Start, seg.End)
		if seg.Code != previous {
			warnings = append(warnings, engine.CodeSwitch{Code: seg.Code.String(), Position: seg.Start})
			previous = seg.Code
		}
		r := TranslateWith(seg.Code, seg.Braille, opts).Shift(seg.Start)
		errs = append(errs, r.Errors...)
		warnings = append(warnings, r.Warnings...)
		switch {
		case !r.IsSuccess():
		case r.Tree.Kind() == semantic.RowKind:
			trees = append(trees, r.Tree.Children()...)
		default:
			trees = append(trees, r.Tree)
		}
	}
	if len(errs) > 0 {
		return ParseResult{Errors: errs}
	}
	tree := semantic.NewRow(trees...)
	out := mathml.Generate(tree, opts)
	return ParseResult{MathML: &out, Warnings: warnings, Tree: tree}
}
