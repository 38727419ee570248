package peg

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

type memoKey struct {
	rule   int
	pos    int
	atomic bool
}

type memoEntry struct {
	end  int
	ok   bool
	node *Node
}

// state is the scratch state of a single parse. States are short-lived and
// get pooled.
type state struct {
	g        *Grammar
	input    []rune
	nodes    []*Node // children collected for the innermost active rule
	memo     map[memoKey]memoEntry
	atomic   int      // > 0 while inside an atomic section
	quiet    int      // > 0 while inside a lookahead
	depth    int      // current rule nesting depth
	stack    []string // names of active rules
	farthest int
	expected map[string]struct{}
	err      error // fatal error, terminates the parse
}

func (st *state) init(g *Grammar, input []rune) {
	st.g = g
	st.input = input
	st.farthest = -1
}

func (st *state) clear() {
	st.g = nil
	st.input = nil
	st.nodes = st.nodes[:0]
	st.stack = st.stack[:0]
	for k := range st.memo {
		delete(st.memo, k)
	}
	for k := range st.expected {
		delete(st.expected, k)
	}
	st.atomic, st.quiet, st.depth = 0, 0, 0
	st.farthest = -1
	st.err = nil
}

// skip advances over blanks, if not inside an atomic section.
func (st *state) skip(pos int) int {
	if st.atomic > 0 {
		return pos
	}
	for pos < len(st.input) && st.g.blank(st.input[pos]) {
		pos++
	}
	return pos
}

func (st *state) mark() int {
	return len(st.nodes)
}

func (st *state) reset(mark int) {
	st.nodes = st.nodes[:mark]
}

// fail records a failing terminal at pos, on behalf of the innermost active rule.
func (st *state) fail(pos int) {
	if len(st.stack) == 0 {
		return
	}
	st.failExpecting(pos, st.stack[len(st.stack)-1])
}

func (st *state) failExpecting(pos int, name string) {
	if st.quiet > 0 {
		return
	}
	if pos > st.farthest {
		st.farthest = pos
		for k := range st.expected {
			delete(st.expected, k)
		}
	}
	if pos == st.farthest {
		st.expected[name] = struct{}{}
	}
}

// invoke matches a named rule at pos, consulting the memo table first.
func (st *state) invoke(r *rule, pos int) (int, bool) {
	if st.err != nil {
		return pos, false
	}
	start := st.skip(pos)
	key := memoKey{rule: r.index, pos: start, atomic: st.atomic > 0}
	if m, found := st.memo[key]; found {
		if m.ok {
			st.nodes = append(st.nodes, m.node)
			return m.end, true
		}
		return pos, false
	}
	st.depth++
	if st.depth > st.g.maxDepth {
		st.err = ErrTooDeep
		st.farthest = start
		st.depth--
		return pos, false
	}
	outer := st.nodes
	st.nodes = make([]*Node, 0, 4)
	st.stack = append(st.stack, r.name)
	end, ok := r.expr.match(st, start)
	st.stack = st.stack[:len(st.stack)-1]
	children := st.nodes
	st.nodes = outer
	st.depth--
	if st.err != nil {
		return pos, false
	}
	if !ok {
		st.memo[key] = memoEntry{end: pos, ok: false}
		return pos, false
	}
	node := &Node{
		Rule:     r.name,
		Pos:      start,
		End:      end,
		Text:     string(st.input[start:end]),
		Children: children,
	}
	st.memo[key] = memoEntry{end: end, ok: true, node: node}
	st.nodes = append(st.nodes, node)
	return end, true
}

// --- Pooling ---------------------------------------------------------------

// Parser states are short-lived objects allocated for every call to Parse.
// To avoid re-allocating their maps we will pool them.
type statePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStatePool *statePool

func init() {
	globalStatePool = &statePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			st := &state{
				memo:     make(map[memoKey]memoEntry, 256),
				expected: make(map[string]struct{}, 16),
			}
			return st, nil
		})
	globalStatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStatePool.opool = pool.NewObjectPool(globalStatePool.ctx, factory, config)
}

func borrowState(g *Grammar, input []rune) *state {
	o, err := globalStatePool.opool.BorrowObject(globalStatePool.ctx)
	var st *state
	if err != nil {
		T().Errorf("peg: cannot borrow parser state: %v", err)
		st = &state{
			memo:     make(map[memoKey]memoEntry),
			expected: make(map[string]struct{}),
		}
	} else {
		st = o.(*state)
	}
	st.init(g, input)
	return st
}

// releaseState clears a state and puts it back into the pool.
func releaseState(st *state) {
	st.clear()
	_ = globalStatePool.opool.ReturnObject(globalStatePool.ctx, st)
}
