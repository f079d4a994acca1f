// Package cst is the concrete-syntax-tree node produced by the parser
// package: a strict tree (no shared children, no cycles) of tagged
// grammar.Symbol nodes, with a token payload on terminal leaves.
package cst

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/token"
)

const (
	levelEmpty       = "        "
	levelOngoing     = "  |     "
	levelPrefix      = "  |%s: "
	levelPrefixLast  = `  \%s: `
	levelPadChar     = '-'
	levelPadAmount   = 3
)

func padName(msg string) string {
	for len([]rune(msg)) < levelPadAmount {
		msg = string(levelPadChar) + msg
	}
	return msg
}

// Node is one node of a parse tree: either a terminal leaf carrying the
// token.Token it was reduced from, or a non-terminal interior node carrying
// an ordered list of children, one per symbol in the production body that
// reduced it.
type Node struct {
	Symbol   grammar.Symbol
	Token    *token.Token // non-nil only when Symbol.IsTerminal()
	Children []*Node
}

// NewLeaf builds a terminal leaf node from a scanned token.
func NewLeaf(sym grammar.Symbol, tok token.Token) *Node {
	t := tok
	return &Node{Symbol: sym, Token: &t}
}

// NewInterior builds a non-terminal node from a production's reduced
// children, in production-body order.
func NewInterior(sym grammar.Symbol, children []*Node) *Node {
	return &Node{Symbol: sym, Children: children}
}

// String renders the whole tree as purple-dragon-style ASCII art, suitable
// for golden-file comparisons: two trees are considered structurally equal
// if their String() output is byte-identical.
func (n *Node) String(g *grammar.Grammar) string {
	return n.leveledStr(g, "", "")
}

func (n *Node) leveledStr(g *grammar.Grammar, firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if n.Token != nil {
		sb.WriteString(fmt.Sprintf("(TERM %q)", n.Token.Lexeme))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", g.Name(n.Symbol)))
	}
	for i, child := range n.Children {
		sb.WriteRune('\n')
		var childFirst, childCont string
		if i+1 < len(n.Children) {
			childFirst = contPrefix + fmt.Sprintf(levelPrefix, padName(""))
			childCont = contPrefix + levelOngoing
		} else {
			childFirst = contPrefix + fmt.Sprintf(levelPrefixLast, padName(""))
			childCont = contPrefix + levelEmpty
		}
		sb.WriteString(child.leveledStr(g, childFirst, childCont))
	}
	return sb.String()
}

// Yield returns the sequence of tokens at the tree's terminal leaves,
// left to right -- the round-trip the parser is expected to preserve
// against the token stream it was built from (excluding the trailing EOF
// token, which is consumed by the accept action and never appears as a
// leaf).
func (n *Node) Yield() []token.Token {
	if n.Token != nil {
		return []token.Token{*n.Token}
	}
	var out []token.Token
	for _, c := range n.Children {
		out = append(out, c.Yield()...)
	}
	return out
}

// Equal reports whether two trees have identical structure: same symbol at
// every node, same token lexeme at every leaf, same shape.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Symbol != o.Symbol {
		return false
	}
	if (n.Token == nil) != (o.Token == nil) {
		return false
	}
	if n.Token != nil && n.Token.Lexeme != o.Token.Lexeme {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
