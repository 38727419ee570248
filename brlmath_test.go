package brlmath

import (
	"fmt"
	"strings"
	"testing"

	"github.com/NSoiffer/MathCAT-sub001/engine"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCodes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if Nemeth.String() != "Nemeth" || CMU.String() != "CMU" {
		t.Errorf("expected code names Nemeth and CMU, are %s and %s", Nemeth, CMU)
	}
	if Nemeth.Language() != "en-US" || CMU.Language() != "es" {
		t.Errorf("unexpected languages %s and %s", Nemeth.Language(), CMU.Language())
	}
	if UEB.String() != "UEB" || UEB.Language() != "en-GB" {
		t.Errorf("expected UEB for en-GB, is %s for %s", UEB, UEB.Language())
	}
	if len(SupportedCodes()) != 3 {
		t.Errorf("expected 3 supported codes, are %v", SupportedCodes())
	}
	for _, name := range []string{"nemeth", "NEMETH", " Nemeth "} {
		if c, err := ParseCode(name); err != nil || c != Nemeth {
			t.Errorf("expected %q to be Nemeth, is %v (%v)", name, c, err)
		}
	}
	if c, err := ParseCode("cmu"); err != nil || c != CMU {
		t.Errorf("expected CMU, is %v (%v)", c, err)
	}
	if c, err := ParseCode("ueb"); err != nil || c != UEB {
		t.Errorf("expected UEB, is %v (%v)", c, err)
	}
	_, err := ParseCode("marburg")
	if err == nil {
		t.Fatalf("expected an error for unknown code")
	}
	if err.Error() != "Unknown braille code: 'marburg'. Supported codes are: Nemeth, UEB, CMU" {
		t.Errorf("unexpected error message: %s", err)
	}
}

func TestTranslate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := Translate(Nemeth, "⠼⠂")
	if !r.IsSuccess() || !strings.Contains(*r.MathML, "<mn>1</mn>") {
		t.Errorf("expected <mn>1</mn>, is %v / %v", r.MathML, r.Errors)
	}
	r = Translate(CMU, "⠼⠁")
	if !r.IsSuccess() || !strings.Contains(*r.MathML, "<mn>1</mn>") {
		t.Errorf("expected <mn>1</mn>, is %v / %v", r.MathML, r.Errors)
	}
	r = TranslateWith(Nemeth, "⠭", mathml.Options{DisplayBlock: true})
	if !strings.Contains(r.Output(), `display="block"`) {
		t.Errorf("expected display block, is %s", r.Output())
	}
	r = Translate(Code(7), "⠭")
	if r.IsSuccess() || len(r.Errors) != 1 {
		t.Fatalf("expected a single error, is %v", r.Errors)
	}
	if _, ok := r.Errors[0].(engine.UnsupportedCode); !ok {
		t.Errorf("expected unsupported code, is %v", r.Errors[0])
	}
}

func TestValidBraille(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for s, valid := range map[string]bool{
		"":        true,
		"⠭⠬⠼⠂":    true,
		"⠭ ⠬\n⠽":  true,
		"⠀⠿":      true,
		"x+1":     false,
		"⠭⠬1":     false,
		"⠭\u00a0": false,
	} {
		if IsValidBraille(s) != valid {
			t.Errorf("expected validity of %q to be %v", s, valid)
		}
	}
}

func TestASCIIToUnicode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for ascii, braille := range map[string]string{
		"3456 2":     "⠼⠂",
		"3456-2":     "⠼⠂",
		"cdef b":     "⠼⠂",
		"1346 346 2": "⠭⠬⠂",
		"1 0 2":      "⠁⠀⠂",
		"123456 7 8": "⠿⡀⢀",
		"":           "",
		"  1  ":      "⠁",
		"1 x 2":      "⠁x⠂",
	} {
		if s := ASCIIToUnicode(ascii); s != braille {
			t.Errorf("expected %q to be %q, is %q", ascii, braille, s)
		}
	}
}

func TestDetectCode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for braille, code := range map[string]Code{
		"":        Nemeth,
		"⠭":       Nemeth,
		"⠼⠂⠆":     Nemeth,
		"⠼⠁⠃":     CMU,
		"⠭⠬⠽":     Nemeth,
		"⠭⠮⠽":     CMU,
		"⠭⠶⠼⠁":    CMU,
		"⠼⠂⠶⠶":    Nemeth,
		"⠭ ⠨⠅ ⠼⠂": Nemeth,
		"⠭⠐⠖⠽":    UEB,
		"⠼⠁⠐⠶⠼⠁":  UEB,
		"⠭⠸⠩⠼⠂⠸⠱": UEB,
	} {
		if c := DetectCode(braille); c != code {
			t.Errorf("expected %q to be detected as %s, is %s", braille, code, c)
		}
	}
}

func TestCodeForLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for tag, code := range map[string]Code{
		"en-US": Nemeth,
		"en":    Nemeth,
		"en-GB": UEB,
		"es":    CMU,
		"es-MX": CMU,
		"es-AR": CMU,
		"de-DE": Nemeth,
		"%%":    Nemeth,
	} {
		if c := CodeForLocale(tag); c != code {
			t.Errorf("expected locale %s to use %s, is %s", tag, code, c)
		}
	}
}

func TestSegments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	segs := Segments("⠭⠐⠶⠸⠩⠼⠂⠬⠼⠆⠸⠱⠐⠖⠽")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, are %v", segs)
	}
	for i, want := range []Segment{
		{Code: UEB, Braille: "⠭⠐⠶", Start: 0, End: 3},
		{Code: Nemeth, Braille: "⠼⠂⠬⠼⠆", Start: 5, End: 10},
		{Code: UEB, Braille: "⠐⠖⠽", Start: 12, End: 15},
	} {
		if segs[i] != want {
			t.Errorf("expected segment %d to be %v, is %v", i, want, segs[i])
		}
	}
	segs = Segments("⠸⠩⠭⠬⠽")
	if len(segs) != 1 || segs[0].Code != Nemeth || segs[0].Start != 2 {
		t.Errorf("expected an unterminated Nemeth segment at 2, is %v", segs)
	}
	segs = Segments("⠼⠂⠬⠼⠆")
	if len(segs) != 1 || segs[0].Code != Nemeth || segs[0].End != 5 {
		t.Errorf("expected the whole input as Nemeth segment, is %v", segs)
	}
	// Nemeth switch indicators are not recognized inside Nemeth
	segs = Segments("⠸⠩⠭⠸⠩⠽⠸⠱")
	if len(segs) != 1 || segs[0].Braille != "⠭⠸⠩⠽" {
		t.Errorf("expected a single Nemeth segment, is %v", segs)
	}
}

func TestTranslateAuto(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	r := TranslateAuto("⠭⠐⠶⠸⠩⠼⠂⠬⠼⠆⠸⠱")
	if !r.IsSuccess() {
		t.Fatalf("expected mixed input to translate, errors are %v", r.Errors)
	}
	if r.Tree.String() != "x=1+2" {
		t.Errorf("expected x=1+2, is %s", r.Tree)
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected a single code switch, is %v", r.Warnings)
	}
	if w, ok := r.Warnings[0].(engine.CodeSwitch); !ok || w.Code != "Nemeth" || w.Position != 5 {
		t.Errorf("expected switch to Nemeth at 5, is %v", r.Warnings[0])
	}
	if !strings.Contains(r.Output(), "<mo>=</mo><mn>1</mn>") {
		t.Errorf("expected a single math element, is %s", r.Output())
	}
	r = TranslateAuto("⠭⠐⠶⠸⠩⠼⠂⠬abc⠸⠱")
	if r.IsSuccess() {
		t.Fatalf("expected invalid Nemeth segment to fail")
	}
	if e, ok := r.Errors[0].(engine.UnrecognizedSymbol); !ok || e.Position != 8 {
		t.Errorf("expected unrecognized symbol at 8, is %v", r.Errors[0])
	}
	r = TranslateAuto("⠼⠁⠃")
	if !r.IsSuccess() || r.Tree.String() != "12" || r.HasWarnings() {
		t.Errorf("expected 12 without code switch, is %v / %v", r.Tree, r.Warnings)
	}
	r = TranslateAuto("⠸⠩⠸⠱")
	if len(r.Errors) != 1 || r.Errors[0] != (engine.EmptyInput{}) {
		t.Errorf("expected [EmptyInput], is %v", r.Errors)
	}
}

func TestHasSpatialLayout(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if HasSpatialLayout("⠼⠂⠬⠼⠆") {
		t.Errorf("expected a single line not to be spatial")
	}
	if HasSpatialLayout("⠼⠂\n\n") {
		t.Errorf("expected trailing blank lines not to count")
	}
	if !HasSpatialLayout("⠼⠂\n⠼⠆") {
		t.Errorf("expected two lines to be spatial")
	}
}

func TestTranslateLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, tc := range []struct {
		braille, tree string
	}{
		{"⠈⠹⠼⠂⠀⠀⠼⠆⠈⠼\n⠈⠹⠼⠒⠀⠀⠼⠲⠈⠼", "[1,2;3,4]"},
		{"⠳⠭⠀⠀⠽⠳\n⠳⠼⠂⠀⠀⠼⠆⠳", "|x,y;1,2|"},
		{"⠼⠂\t⠼⠆\n⠼⠒", "1,2;3,"},
		{"⠈⠹⠭⠈⠼\n⠈⠹⠽⠈⠼", "[x;y]"},
	} {
		r := TranslateLayout(Nemeth, tc.braille, mathml.Options{})
		if !r.IsSuccess() {
			t.Errorf("expected %q to translate, errors are %v", tc.braille, r.Errors)
			continue
		}
		if r.Tree.String() != tc.tree {
			t.Errorf("expected %q to be %s, is %s", tc.braille, tc.tree, r.Tree)
		}
	}
	r := TranslateAuto("⠈⠹⠼⠂⠀⠀⠼⠆⠈⠼\n⠈⠹⠼⠒⠀⠀⠼⠲⠈⠼")
	if !strings.Contains(r.Output(), "<mo>[</mo><mtable><mtr><mtd><mn>1</mn></mtd>") {
		t.Errorf("expected a bracketed mtable, is %s", r.Output())
	}
	// lines without columns are a single expression
	r = TranslateLayout(Nemeth, "⠭⠬\n⠽", mathml.Options{})
	if !r.IsSuccess() || r.Tree.String() != "x+y" {
		t.Errorf("expected x+y, is %v (errors %v)", r.Tree, r.Errors)
	}
	r = TranslateLayout(Nemeth, "⠼⠂⠀⠀⠼⠆\n⠼⠒⠀⠀abc", mathml.Options{})
	if r.IsSuccess() {
		t.Fatalf("expected an invalid entry to fail")
	}
	if e, ok := r.Errors[0].(engine.UnrecognizedSymbol); !ok || e.Position != 11 {
		t.Errorf("expected unrecognized symbol at 11, is %v", r.Errors[0])
	}
}

func ExampleTranslate() {
	r := Translate(Nemeth, ASCIIToUnicode("1346 346 3456 2"))
	fmt.Println(r.Output())
	// Output: <math xmlns="http://www.w3.org/1998/Math/MathML"><mi>x</mi><mo>+</mo><mn>1</mn></math>
}
