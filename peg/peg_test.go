package peg

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func digits() Expr {
	return OneOf('0', '1', '2', '3', '4', '5', '6', '7', '8', '9')
}

// sum grammar: numbers separated by '+' or "++"
func sumGrammar(t *testing.T, opts ...Option) *Grammar {
	g := NewGrammar("sum", opts...)
	g.Define("sum", Seq(SOI(), Ref("number"), Many(Seq(Ref("op"), Ref("number"))), EOI()))
	g.Define("number", Atomic(Some(Ref("digit"))))
	g.Define("digit", digits())
	g.Define("op", Choice(Ref("double_plus"), Ref("plus")))
	g.Define("double_plus", Cells("++"))
	g.Define("plus", Cells("+"))
	if err := g.Compile(); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	//
	g := sumGrammar(t)
	tree, err := g.Parse("sum", []rune("12 ++ 3"))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Rule != "sum" || len(tree.Children) != 3 {
		t.Fatalf("expected sum with 3 children, is %s", tree.Dump())
	}
	if tree.Children[0].Text != "12" {
		t.Errorf("expected first number to be '12', is %q", tree.Children[0].Text)
	}
	op := tree.Children[1]
	if op.Child("double_plus") == nil {
		t.Errorf("expected '++' to match double_plus, is %s", op.Dump())
	}
	if tree.Children[2].Pos != 6 {
		t.Errorf("expected last number at position 6, is %d", tree.Children[2].Pos)
	}
}

func TestAtomicSection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := sumGrammar(t)
	if _, err := g.Parse("sum", []rune("1 2")); err == nil {
		t.Errorf("expected blank inside atomic number to fail")
	}
	if _, err := g.Parse("sum", []rune("⠀ 1+2 ")); err != nil {
		t.Errorf("expected leading and trailing blanks to be skipped, have %v", err)
	}
}

func TestExpectedSet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := sumGrammar(t)
	_, err := g.Parse("sum", []rune("1+"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a ParseError, is %v", err)
	}
	if perr.Pos != 2 {
		t.Errorf("expected failure at position 2, is %d", perr.Pos)
	}
	if strings.Join(perr.Expected, ",") != "digit" {
		t.Errorf("expected [digit] to be expected, is %v", perr.Expected)
	}
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected error to wrap ErrNoMatch")
	}
}

func TestLookahead(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := NewGrammar("decimal")
	g.Define("num", Seq(Some(Ref("digit")), Opt(Seq(Ref("point"), And(Ref("digit")))), Many(Ref("digit")), Not(Ref("point"))))
	g.Define("digit", digits())
	g.Define("point", Cells("."))
	if err := g.Compile(); err != nil {
		t.Fatal(err)
	}
	tree, err := g.Parse("num", []rune("3.14"))
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Children) != 4 {
		t.Errorf("expected lookahead to produce no nodes, is %s", tree.Dump())
	}
	if _, err := g.Parse("num", []rune("3.")); err == nil {
		t.Errorf("expected trailing point to fail")
	}
}

func TestUndefinedRule(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := NewGrammar("broken")
	g.Define("start", Seq(Ref("missing"), EOI()))
	err := g.Compile()
	if !errors.Is(err, ErrUndefinedRule) {
		t.Errorf("expected ErrUndefinedRule, is %v", err)
	}
	if _, err := g.Parse("start", []rune("x")); !errors.Is(err, ErrNotCompiled) {
		t.Errorf("expected ErrNotCompiled, is %v", err)
	}
}

func TestDepthBound(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := NewGrammar("nested", MaxDepth(20))
	g.Define("start", Seq(Ref("group"), EOI()))
	g.Define("group", Choice(Seq(Cells("("), Ref("group"), Cells(")")), Cells("x")))
	if err := g.Compile(); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Parse("start", []rune("((x))")); err != nil {
		t.Errorf("expected shallow nesting to parse, have %v", err)
	}
	deep := strings.Repeat("(", 30) + "x" + strings.Repeat(")", 30)
	_, err := g.Parse("start", []rune(deep))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, is %v", err)
	}
}

func TestRedefine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := NewGrammar("redefine")
	g.Define("start", Seq(Ref("item"), EOI()))
	g.Define("item", Cells("a"))
	g.Define("item", Choice(Cells("b"), g.Rule("item")))
	if err := g.Compile(); err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"a", "b"} {
		if _, err := g.Parse("start", []rune(input)); err != nil {
			t.Errorf("expected %q to match extended rule, have %v", input, err)
		}
	}
	if len(g.RuleNames()) != 2 {
		t.Errorf("expected 2 rules, have %v", g.RuleNames())
	}
}
