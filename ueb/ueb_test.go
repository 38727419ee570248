package ueb

import (
	"strings"
	"testing"

	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/semantic"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDialectIsValid(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if err := Dialect().Validate(); err != nil {
		t.Fatalf("expected UEB dialect to be valid, is %v", err)
	}
	if Engine().Dialect().Name != "UEB" {
		t.Errorf("expected engine UEB, is %s", Engine().Dialect().Name)
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r := Parse("")
	if len(r.Errors) != 1 || r.Errors[0] != (engine.EmptyInput{}) {
		t.Errorf("expected [EmptyInput], is %v", r.Errors)
	}
}

func TestNumbers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for braille, digits := range map[string]string{
		"⠼⠁":    "1",
		"⠼⠁⠃⠉":  "123",
		"⠼⠉⠲⠁⠙": "3.14",
		"⠼⠚":    "0",
	} {
		r := Parse(braille)
		n, ok := r.Tree.(*semantic.Number)
		if !ok || n.Digits != digits {
			t.Errorf("expected %q to be %s, is %v (errors %v)", braille, digits, r.Tree, r.Errors)
			continue
		}
		if !strings.Contains(r.Output(), "<mn>"+digits+"</mn>") {
			t.Errorf("expected <mn>%s</mn>, is %s", digits, r.Output())
		}
	}
}

func TestGrade1Letters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for braille, letter := range map[string]string{
		"⠭":   "x",
		"⠰⠭":  "x",
		"⠰⠰⠭": "x",
		"⠠⠰⠭": "X",
		"⠰⠠⠭": "X",
	} {
		r := Parse(braille)
		if !r.IsSuccess() || r.HasWarnings() {
			t.Errorf("expected %q to parse cleanly, is %v / %v", braille, r.Errors, r.Warnings)
			continue
		}
		if r.Tree.String() != letter {
			t.Errorf("expected %q to be %s, is %s", braille, letter, r.Tree)
		}
		if !strings.Contains(r.Output(), "<mi>"+letter+"</mi>") {
			t.Errorf("expected <mi>%s</mi>, is %s", letter, r.Output())
		}
	}
	// a grade 1 indicator ends a number
	r := Parse("⠼⠁⠰⠁")
	if !r.IsSuccess() || r.Tree.String() != "1a" {
		t.Errorf("expected 1a, is %v (errors %v)", r.Tree, r.Errors)
	}
}

func TestOperators(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, tc := range []struct {
		braille, tree, mo string
	}{
		{"⠰⠭⠐⠮⠼⠁", "x+1", "<mo>+</mo>"},
		{"⠰⠭⠐⠤⠼⠁", "x-1", "<mo>-</mo>"},
		{"⠰⠭⠐⠶⠼⠁", "x=1", "<mo>=</mo>"},
		{"⠰⠭⠐⠬⠰⠽", "x×y", "<mo>×</mo>"},
		{"⠰⠭⠀⠐⠮⠀⠰⠽", "x+y", "<mo>+</mo>"},
		{"⠰⠁⠐⠮⠰⠃⠐⠤⠰⠉", "a+b-c", "<mo>-</mo>"},
		{"⠰⠭⠈⠜⠰⠽", "x>y", "<mo>&gt;</mo>"},
	} {
		r := Parse(tc.braille)
		if !r.IsSuccess() {
			t.Errorf("expected %q to parse, errors are %v", tc.braille, r.Errors)
			continue
		}
		if r.Tree.String() != tc.tree {
			t.Errorf("expected %q to be %s, is %s", tc.braille, tc.tree, r.Tree)
		}
		if !strings.Contains(r.Output(), tc.mo) {
			t.Errorf("expected %s in %s", tc.mo, r.Output())
		}
	}
	for _, op := range operators {
		r := Parse("⠭" + op.Cells + "⠽")
		if !r.IsSuccess() || r.HasWarnings() {
			t.Errorf("expected %s to parse cleanly, is %v / %v", op.Name, r.Errors, r.Warnings)
			continue
		}
		if r.Tree.String() != "x"+op.Glyph+"y" {
			t.Errorf("expected x%sy, is %s", op.Glyph, r.Tree)
		}
	}
}

func TestStructures(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, tc := range []struct {
		braille, tree string
	}{
		{"⠷⠼⠁⠌⠼⠃⠾", "(1/2)"},
		{"⠩⠭⠬", "sqrt(x)"},
		{"⠰⠭⠔⠼⠃", "x^2"},
		{"⠰⠭⠢⠼⠁", "x_1"},
		{"⠭⠔⠣⠝⠐⠖⠼⠁⠜", "x^(n+1)"},
		{"⠐⠣⠰⠭⠐⠜", "(x)"},
		{"⠨⠣⠰⠭⠨⠜", "[x]"},
		{"⠸⠣⠰⠭⠸⠜", "{x}"},
		{"⠨⠁", "α"},
		{"⠨⠠⠙", "Δ"},
		{"⠨⠏", "π"},
		{"⠼⠿", "∞"},
		{"⠭⠶", "x′"},
	} {
		r := Parse(tc.braille)
		if !r.IsSuccess() {
			t.Errorf("expected %q to parse, errors are %v", tc.braille, r.Errors)
			continue
		}
		if r.Tree.String() != tc.tree {
			t.Errorf("expected %q to be %s, is %s", tc.braille, tc.tree, r.Tree)
		}
	}
	r := Parse("⠷⠼⠁⠌⠼⠃⠾")
	if !strings.Contains(r.Output(), "<mfrac>") {
		t.Errorf("expected <mfrac>, is %s", r.Output())
	}
}

func TestInvalidInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r := Parse("abc")
	if r.IsSuccess() {
		t.Fatalf("expected latin text to fail, is %s", r.Output())
	}
	if _, ok := r.Errors[0].(engine.UnrecognizedSymbol); !ok {
		t.Errorf("expected UnrecognizedSymbol, is %v", r.Errors[0])
	}
}

func TestRecovery(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := Parse("⠰⠭⠐⠖⠰⠽⠔")
	if !r.IsSuccess() || len(r.Warnings) != 1 {
		t.Fatalf("expected recovery with a warning, is %v / %v", r.Errors, r.Warnings)
	}
	if w, ok := r.Warnings[0].(engine.AutoInserted); !ok || w.Position != 6 {
		t.Errorf("expected truncation at 6, is %v", r.Warnings[0])
	}
	if r.Tree.String() != "x+y" {
		t.Errorf("expected x+y, is %s", r.Tree)
	}
}
