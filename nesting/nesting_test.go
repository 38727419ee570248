package nesting

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// a Nemeth-like structure
var testStructure = &Structure{
	FractionOpen:     []string{"⠹", "⠠⠹"},
	FractionBar:      []string{"⠌", "⠠⠌"},
	FractionClose:    []string{"⠼", "⠠⠼"},
	RadicalStart:     []string{"⠜"},
	RadicalEnd:       []string{"⠻"},
	Opens:            []Delimiter{{"⠷", "("}, {"⠈⠷", "["}, {"⠳", "|"}},
	Closes:           []Delimiter{{"⠾", ")"}, {"⠈⠾", "]"}, {"⠳", "|"}},
	Content:          []string{"⠌⠨⠅"},
	NumericIndicator: '⠼',
	Digits:           []rune("⠂⠆⠒⠲⠢⠖⠶⠦⠔⠴"),
}

func TestLex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tokens := Lex(testStructure, []rune("⠼⠂⠬⠭ ⠹⠂⠌⠆⠼"))
	types := []TokenType{Content, FractionOpen, Content, FractionBar, Content, FractionClose}
	if len(tokens) != len(types) {
		t.Fatalf("expected %d tokens, is %d: %v", len(types), len(tokens), tokens)
	}
	for i, typ := range types {
		if tokens[i].Type != typ {
			t.Errorf("expected token %d to be %s, is %s", i, typ, tokens[i].Type)
		}
	}
	if tokens[0].Cells != "⠼⠂⠬⠭" {
		t.Errorf("expected content to be merged, is %q", tokens[0].Cells)
	}
	if tokens[1].Pos != 5 {
		t.Errorf("expected fraction to open at 5, is %d", tokens[1].Pos)
	}
}

func TestLexLongestMatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tokens := Lex(testStructure, []rune("⠭⠌⠨⠅⠽"))
	if len(tokens) != 1 || tokens[0].Type != Content {
		t.Errorf("expected not-equal to be content, is %v", tokens)
	}
	tokens = Lex(testStructure, []rune("⠈⠷⠭⠈⠾"))
	if len(tokens) != 3 || tokens[0].Glyph != "[" || tokens[2].Glyph != "]" {
		t.Errorf("expected brackets, is %v", tokens)
	}
	tokens = Lex(testStructure, []rune("⠳⠭⠳"))
	if len(tokens) != 1 {
		t.Errorf("expected vertical bars to be content, is %v", tokens)
	}
}

func TestBalanced(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, input := range []string{
		"⠭⠬⠽",
		"⠹⠂⠌⠆⠼",
		"⠜⠭⠬⠂⠻",
		"⠷⠭⠾⠷⠾",
		"⠠⠹⠹⠂⠌⠆⠼⠠⠌⠒⠠⠼",
		"",
	} {
		r := Check(testStructure, input)
		if !r.Balanced {
			t.Errorf("expected %q to be balanced, issues are %v", input, r.Issues)
		}
	}
}

func TestUnclosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := Check(testStructure, "⠭⠬⠹⠂⠌⠆")
	if r.Balanced || len(r.Issues) != 1 {
		t.Fatalf("expected 1 issue, is %v", r.Issues)
	}
	if r.Issues[0].Kind != UnclosedFraction || r.Issues[0].Position != 2 {
		t.Errorf("expected unclosed fraction at 2, is %v", r.Issues[0])
	}
	r = Check(testStructure, "⠜⠭")
	if len(r.Issues) != 1 || r.Issues[0].Kind != UnclosedRadical || r.Issues[0].Position != 0 {
		t.Errorf("expected unclosed radical at 0, is %v", r.Issues)
	}
	r = Check(testStructure, "⠷⠭")
	if len(r.Issues) != 1 || r.Issues[0].Kind != UnbalancedGroup {
		t.Fatalf("expected unbalanced group, is %v", r.Issues)
	}
	if r.Issues[0].Expected != ")" || r.Issues[0].Found != EndOfInput || r.Issues[0].Position != 2 {
		t.Errorf("expected ')' missing at end of input, is %v", r.Issues[0])
	}
}

func TestMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := Check(testStructure, "⠷⠭⠈⠾")
	if len(r.Issues) != 1 {
		t.Fatalf("expected 1 issue, is %v", r.Issues)
	}
	is := r.Issues[0]
	if is.Kind != UnbalancedGroup || is.Expected != ")" || is.Found != "]" || is.Position != 2 {
		t.Errorf("expected ']' instead of ')' at 2, is %v", is)
	}
	r = Check(testStructure, "⠭⠾")
	if len(r.Issues) != 1 || r.Issues[0].Kind != StrayClose || r.Issues[0].Position != 1 {
		t.Errorf("expected stray close at 1, is %v", r.Issues)
	}
	r = Check(testStructure, "⠹⠂⠼")
	if len(r.Issues) != 1 || r.Issues[0].Kind != FractionWithoutBar {
		t.Errorf("expected fraction without bar, is %v", r.Issues)
	}
}
