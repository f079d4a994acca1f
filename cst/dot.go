package cst

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rustlite/grammar"
)

// DOT renders the tree as a Graphviz "digraph" description: non-terminal
// nodes are labeled with their symbol name, terminal leaves are labeled
// with their lexeme, matching the node/edge labeling scheme the language's
// original AST-to-PNG exporter used. Rendering the PNG itself is left to
// an external `dot` binary -- this package only produces the textual
// description.
func (n *Node) DOT(g *grammar.Grammar) string {
	var sb strings.Builder
	sb.WriteString("digraph AST {\n")
	counter := 0
	n.writeDOT(g, &sb, &counter)
	sb.WriteString("}\n")
	return sb.String()
}

func (n *Node) writeDOT(g *grammar.Grammar, sb *strings.Builder, counter *int) int {
	id := *counter
	*counter++

	label := g.Name(n.Symbol)
	if n.Token != nil {
		label = n.Token.Lexeme
	}
	fmt.Fprintf(sb, "  n%d [label=%q];\n", id, label)

	for _, child := range n.Children {
		childID := child.writeDOT(g, sb, counter)
		fmt.Fprintf(sb, "  n%d -> n%d;\n", id, childID)
	}
	return id
}
