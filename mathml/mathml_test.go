package mathml

import (
	"testing"

	"github.com/NSoiffer/MathCAT-sub001/semantic"
	"github.com/stretchr/testify/assert"
)

const head = `<math xmlns="http://www.w3.org/1998/Math/MathML">`

func TestLeaves(t *testing.T) {
	tests := []struct {
		node semantic.Node
		want string
	}{
		{&semantic.Number{Digits: "3.14"}, "<mn>3.14</mn>"},
		{&semantic.Identifier{Letter: "x"}, "<mi>x</mi>"},
		{&semantic.Identifier{Letter: "x", Capital: true}, "<mi>X</mi>"},
		{&semantic.Identifier{Letter: "v", Style: semantic.Bold}, `<mi mathvariant="bold">v</mi>`},
		{&semantic.Identifier{Letter: "sin"}, "<mi>sin</mi>"},
		{&semantic.Greek{Char: 'Δ', Capital: true}, "<mi>Δ</mi>"},
		{&semantic.Operator{Glyph: "<"}, "<mo>&lt;</mo>"},
		{&semantic.Text{Content: "a&b"}, "<mtext>a&amp;b</mtext>"},
		{&semantic.Empty{}, ""},
	}
	for _, test := range tests {
		assert.Equal(t, head+test.want+"</math>", Generate(test.node, Options{}))
	}
}

func TestRowIsInferredAtTop(t *testing.T) {
	row := semantic.NewRow(&semantic.Identifier{Letter: "x"}, &semantic.Operator{Glyph: "+"},
		&semantic.Number{Digits: "1"})
	assert.Equal(t, head+"<mi>x</mi><mo>+</mo><mn>1</mn></math>", Generate(row, Options{}))
}

func TestStructures(t *testing.T) {
	one, two := &semantic.Number{Digits: "1"}, &semantic.Number{Digits: "2"}
	x := &semantic.Identifier{Letter: "x"}
	sum := semantic.NewRow(x, &semantic.Operator{Glyph: "+"}, &semantic.Number{Digits: "1"})
	tests := []struct {
		node semantic.Node
		want string
	}{
		{&semantic.Fraction{Numerator: one, Denominator: two}, "<mfrac><mn>1</mn><mn>2</mn></mfrac>"},
		{&semantic.Fraction{Numerator: sum, Denominator: two},
			"<mfrac><mrow><mi>x</mi><mo>+</mo><mn>1</mn></mrow><mn>2</mn></mfrac>"},
		{&semantic.Radical{Radicand: two}, "<msqrt><mn>2</mn></msqrt>"},
		{&semantic.Radical{Index: &semantic.Number{Digits: "3"}, Radicand: x},
			"<mroot><mi>x</mi><mn>3</mn></mroot>"},
		{&semantic.Superscript{Base: x, Sup: two}, "<msup><mi>x</mi><mn>2</mn></msup>"},
		{&semantic.Subscript{Base: x, Sub: one}, "<msub><mi>x</mi><mn>1</mn></msub>"},
		{&semantic.SubSuperscript{Base: x, Sub: one, Sup: two},
			"<msubsup><mi>x</mi><mn>1</mn><mn>2</mn></msubsup>"},
		{&semantic.Superscript{Base: &semantic.Empty{}, Sup: two}, "<msup><mrow></mrow><mn>2</mn></msup>"},
		{&semantic.Grouped{Open: "(", Close: ")", Content: x}, "<mrow><mo>(</mo><mi>x</mi><mo>)</mo></mrow>"},
	}
	for _, test := range tests {
		assert.Equal(t, head+test.want+"</math>", Generate(test.node, Options{}))
	}
}

func TestOptions(t *testing.T) {
	n := &semantic.Number{Digits: "1"}
	out := Generate(n, Options{DisplayBlock: true})
	assert.Equal(t, `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mn>1</mn></math>`, out)
	out = Generate(n, Options{IncludeDeclaration: true})
	assert.Equal(t, Declaration+"\n"+head+"<mn>1</mn></math>", out)
	out = Generate(&semantic.Fraction{Numerator: n, Denominator: n}, Options{Indent: "  "})
	want := head + "\n  <mfrac>\n    <mn>1</mn>\n    <mn>1</mn>\n  </mfrac>\n</math>"
	assert.Equal(t, want, out)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&lt;a href=&quot;x&quot;&gt; &amp; &apos;", Escape(`<a href="x"> & '`))
}

func TestMatrix(t *testing.T) {
	one, two := &semantic.Number{Digits: "1"}, &semantic.Number{Digits: "2"}
	x := &semantic.Identifier{Letter: "x"}
	m := semantic.NewMatrix("[", "]", [][]semantic.Node{{one, two}, {x}})
	assert.Equal(t, head+"<mrow><mo>[</mo><mtable>"+
		"<mtr><mtd><mn>1</mn></mtd><mtd><mn>2</mn></mtd></mtr>"+
		"<mtr><mtd><mi>x</mi></mtd><mtd></mtd></mtr>"+
		"</mtable><mo>]</mo></mrow></math>", Generate(m, Options{}))
	plain := semantic.NewMatrix("", "", [][]semantic.Node{{one}, {two}})
	assert.Equal(t, head+"<mtable><mtr><mtd><mn>1</mn></mtd></mtr>"+
		"<mtr><mtd><mn>2</mn></mtd></mtr></mtable></math>", Generate(plain, Options{}))
}
