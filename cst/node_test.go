package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rustlite/cst"
	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/token"
)

func Test_Node_YieldAndEqual(t *testing.T) {
	g := grammar.New()
	id := g.Terminal("ID")
	S := g.NonTerminal("S")
	g.AddProduction(S, id)
	require.NoError(t, g.Compile())

	leaf := cst.NewLeaf(id, token.Token{Kind: token.KindID, Lexeme: "x"})
	root := cst.NewInterior(S, []*cst.Node{leaf})

	yield := root.Yield()
	require.Len(t, yield, 1)
	assert.Equal(t, "x", yield[0].Lexeme)

	root2 := cst.NewInterior(S, []*cst.Node{cst.NewLeaf(id, token.Token{Kind: token.KindID, Lexeme: "x"})})
	assert.True(t, root.Equal(root2))

	root3 := cst.NewInterior(S, []*cst.Node{cst.NewLeaf(id, token.Token{Kind: token.KindID, Lexeme: "y"})})
	assert.False(t, root.Equal(root3))
}

func Test_Node_DOT_containsLabels(t *testing.T) {
	g := grammar.New()
	id := g.Terminal("ID")
	S := g.NonTerminal("S")
	g.AddProduction(S, id)
	require.NoError(t, g.Compile())

	leaf := cst.NewLeaf(id, token.Token{Kind: token.KindID, Lexeme: "x"})
	root := cst.NewInterior(S, []*cst.Node{leaf})

	dot := root.DOT(g)
	assert.Contains(t, dot, "digraph AST")
	assert.Contains(t, dot, `"x"`)
	assert.Contains(t, dot, `"S"`)
}
