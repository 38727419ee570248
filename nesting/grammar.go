package nesting

import (
	"sync"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/gorgo/lr/earley"
)

var globalNestingGrammar *lr.LRAnalysis

var initParser sync.Once

func getParser() *earley.Parser {
	initParser.Do(func() {
		globalNestingGrammar = NewNestingGrammar()
	})
	parser := earley.NewParser(globalNestingGrammar)
	if parser == nil {
		panic("Could not create nesting grammar parser")
	}
	return parser
}

// NewNestingGrammar creates the grammar for structural token streams. It is
// usually not called by clients directly, but rather used transparently with
// a call to Check.
//
//	Doc   ➞ Items
//	Items ➞ Items Item | Item
//	Item  ➞ :content | Frac | Rad | Group
//	Frac  ➞ :frac_open Items :frac_bar Items :frac_close
//	Rad   ➞ :rad_open Items :rad_close
//	Group ➞ :group_open Items :group_close | :group_open :group_close
//
// Whether an opening and a closing delimiter denote a matching pair is not a
// question of the grammar.
func NewNestingGrammar() *lr.LRAnalysis {
	b := lr.NewGrammarBuilder("Nesting")
	b.LHS("Doc").N("Items").End()
	b.LHS("Items").N("Items").N("Item").End()
	b.LHS("Items").N("Item").End()
	b.LHS("Item").T(tt(Content)).End()
	b.LHS("Item").N("Frac").End()
	b.LHS("Item").N("Rad").End()
	b.LHS("Item").N("Group").End()
	b.LHS("Frac").T(tt(FractionOpen)).N("Items").T(tt(FractionBar)).N("Items").T(tt(FractionClose)).End()
	b.LHS("Rad").T(tt(RadicalOpen)).N("Items").T(tt(RadicalClose)).End()
	b.LHS("Group").T(tt(GroupOpen)).N("Items").T(tt(GroupClose)).End()
	b.LHS("Group").T(tt(GroupOpen)).T(tt(GroupClose)).End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return lr.Analysis(g)
}

func tt(t TokenType) (string, int) {
	return ":" + t.String(), int(t)
}
