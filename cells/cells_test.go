package cells

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return NewTable("test",
		map[rune]rune{'⠁': '1', '⠃': '2'},
		map[rune]rune{'⠁': 'a', '⠃': 'b', '⠭': 'x'},
		map[rune]rune{'⠁': 'α', '⠙': 'δ'},
	)
}

func TestDots(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assert.Equal(t, "3456", Dots('⠼'))
	assert.Equal(t, "1", Dots('⠁'))
	assert.Equal(t, "0", Dots(BlankCell))
	assert.Equal(t, "", Dots('a'))
	c, err := FromDots("6543")
	require.NoError(t, err)
	assert.Equal(t, '⠼', c)
	_, err = FromDots("19")
	assert.True(t, errors.Is(err, ErrNotACell))
}

func TestRanges(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assert.True(t, IsBraille('⠿'))
	assert.True(t, IsBraille(BlankCell))
	assert.False(t, IsBraille('a'))
	assert.True(t, IsBlank(BlankCell))
	assert.True(t, IsBlank('\t'))
	assert.False(t, IsBlank('⠁'))
	assert.True(t, IsAccepted('\n'))
	assert.False(t, IsAccepted(' '))
}

func TestLookups(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := testTable()
	d, err := table.Digit('⠃')
	require.NoError(t, err)
	assert.Equal(t, '2', d)
	_, err = table.Digit('⠭')
	var unknown *UnknownCellError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, DigitKind, unknown.Kind)
	assert.Equal(t, '⠭', unknown.Cell)
	l, err := table.Letter('⠭')
	require.NoError(t, err)
	assert.Equal(t, 'x', l)
	assert.Equal(t, []rune{'⠁', '⠃'}, table.DigitCells())
	c, ok := table.CellForLetter('b')
	assert.True(t, ok)
	assert.Equal(t, '⠃', c)
}

func TestGreekCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	table := testTable()
	g, err := table.Greek('⠙', false)
	require.NoError(t, err)
	assert.Equal(t, 'δ', g)
	g, err = table.Greek('⠙', true)
	require.NoError(t, err)
	assert.Equal(t, rune(0x0394), g)
	assert.Equal(t, 'Ω', UppercaseGreek('ω'))
	assert.Equal(t, 'x', UppercaseGreek('x'))
	_, err = table.Greek('⠭', true)
	assert.Error(t, err)
}
