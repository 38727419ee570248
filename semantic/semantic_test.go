package semantic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRowCollapses(t *testing.T) {
	x := &Identifier{Letter: "x"}
	one := &Number{Digits: "1"}
	//
	n := NewRow()
	assert.Equal(t, EmptyKind, n.Kind())
	n = NewRow(&Empty{}, x, &Empty{})
	assert.Same(t, x, n)
	n = NewRow(x, &Operator{Glyph: "+"}, one)
	require.Equal(t, RowKind, n.Kind())
	assert.Len(t, n.Children(), 3)
	assert.Equal(t, "x+1", n.String())
}

func TestRowNeverHoldsEmpty(t *testing.T) {
	n := NewRow(&Empty{}, &Number{Digits: "2"}, &Empty{}, &Identifier{Letter: "y"})
	require.Equal(t, RowKind, n.Kind())
	for _, ch := range n.Children() {
		assert.NotEqual(t, EmptyKind, ch.Kind())
	}
	assert.Equal(t, 2, n.(*Row).Len())
}

func TestScripted(t *testing.T) {
	x := &Identifier{Letter: "x"}
	assert.Same(t, x, Scripted(x, nil, nil))
	n := Scripted(x, &Number{Digits: "1"}, &Number{Digits: "2"})
	assert.Equal(t, SubSuperscriptKind, n.Kind())
	assert.Equal(t, "x_1^2", n.String())
	n = Scripted(nil, nil, &Number{Digits: "2"})
	require.Equal(t, SuperscriptKind, n.Kind())
	assert.True(t, IsEmpty(n.(*Superscript).Base))
}

func TestStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Fraction{Numerator: &Number{Digits: "1"}, Denominator: &Number{Digits: "2"}}, "(1/2)"},
		{&Radical{Radicand: &Number{Digits: "2"}}, "sqrt(2)"},
		{&Radical{Index: &Number{Digits: "3"}, Radicand: &Identifier{Letter: "x"}}, "root(3,x)"},
		{&Grouped{Open: "(", Close: ")", Content: &Identifier{Letter: "a", Capital: true}}, "(A)"},
		{&Superscript{Base: &Identifier{Letter: "x"}, Sup: NewRow(&Identifier{Letter: "n"},
			&Operator{Glyph: "+"}, &Number{Digits: "1"})}, "x^(n+1)"},
		{&Greek{Char: 'Δ', Capital: true}, "Δ"},
	}
	for i, test := range tests {
		assert.Equal(t, test.want, test.node.String(), fmt.Sprintf("test #%d", i))
	}
}

func TestWalk(t *testing.T) {
	tree := NewRow(
		&Fraction{Numerator: &Number{Digits: "1"}, Denominator: &Identifier{Letter: "x"}},
		&Operator{Glyph: "="},
		&Number{Digits: "0"},
	)
	var kinds []Kind
	Walk(tree, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []Kind{RowKind, FractionKind, NumberKind, IdentifierKind, OperatorKind, NumberKind}, kinds)
	count := 0
	Walk(tree, func(n Node) bool {
		count++
		return n.Kind() != FractionKind
	})
	assert.Equal(t, 4, count)
}

func TestMatrixPadsRows(t *testing.T) {
	one, two, three := &Number{Digits: "1"}, &Number{Digits: "2"}, &Number{Digits: "3"}
	m := NewMatrix("[", "]", [][]Node{{one, two}, {three}})
	require.Len(t, m.Rows, 2)
	assert.Len(t, m.Rows[1], 2)
	assert.Equal(t, EmptyKind, m.Rows[1][1].Kind())
	assert.Equal(t, MatrixKind, m.Kind())
	assert.Len(t, m.Children(), 4)
	assert.Equal(t, "[1,2;3,]", m.String())
	assert.Equal(t, "Matrix", MatrixKind.String())
}
