package peg

import (
	"fmt"
	"strings"
)

// Node is a node of a parse tree, produced by a successful match of a named
// rule. Positions are rune offsets into the input; Text is the input covered
// by the node.
type Node struct {
	Rule     string
	Pos, End int
	Text     string
	Children []*Node
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[%d:%d]%q", n.Rule, n.Pos, n.End, n.Text)
}

// Child returns the first direct child produced by the named rule, or nil.
func (n *Node) Child(rule string) *Node {
	for _, ch := range n.Children {
		if ch.Rule == rule {
			return ch
		}
	}
	return nil
}

// Find returns the first node in depth-first order produced by the named rule.
func (n *Node) Find(rule string) *Node {
	if n.Rule == rule {
		return n
	}
	for _, ch := range n.Children {
		if found := ch.Find(rule); found != nil {
			return found
		}
	}
	return nil
}

// Dump returns an indented multi-line representation of a parse tree.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, level int) {
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteString(n.String())
	sb.WriteByte('\n')
	for _, ch := range n.Children {
		ch.dump(sb, level+1)
	}
}
