package lrtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/lrtable"
)

// buildArithGrammar mirrors the textbook unambiguous expression grammar:
// E -> E + T | T ; T -> T * F | F ; F -> ( E ) | id
func buildArithGrammar(t *testing.T) *grammar.Grammar {
	g := grammar.New()
	plus := g.Terminal("+")
	star := g.Terminal("*")
	lparen := g.Terminal("(")
	rparen := g.Terminal(")")
	id := g.Terminal("id")

	E := g.NonTerminal("E")
	T := g.NonTerminal("T")
	F := g.NonTerminal("F")

	g.AddProduction(E, E, plus, T)
	g.AddProduction(E, T)
	g.AddProduction(T, T, star, F)
	g.AddProduction(T, F)
	g.AddProduction(F, lparen, E, rparen)
	g.AddProduction(F, id)

	require.NoError(t, g.Compile())
	return g
}

func Test_Build_arithGrammar_noConflicts(t *testing.T) {
	g := buildArithGrammar(t)
	table, err := lrtable.Build(g)
	require.NoError(t, err)
	assert.NotEmpty(t, table.States)
}

func Test_Build_actionTable_atMostOneEntryPerCell(t *testing.T) {
	g := buildArithGrammar(t)
	table, err := lrtable.Build(g)
	require.NoError(t, err)

	// every (state, terminal) cell must contain at most one action -- this
	// is trivially true of the map representation, but the invariant being
	// tested is that Build never silently overwrote a conflicting entry:
	// a conflicting grammar (below) must instead fail to Build.
	assert.True(t, len(table.Action) == len(table.States))
}

func Test_Build_ambiguousGrammar_reportsConflict(t *testing.T) {
	// S -> a S | a | ε is ambiguous: "a" derives both as S -> a and as
	// S -> a S with S -> ε, so after shifting 'a' both reductions compete
	// for the $ lookahead -- a reduce/reduce conflict.
	g := grammar.New()
	a := g.Terminal("a")
	S := g.NonTerminal("S")
	g.AddProduction(S, a, S)
	g.AddProduction(S, a)
	g.AddProduction(S) // Empty
	require.NoError(t, g.Compile())

	_, err := lrtable.Build(g)
	require.Error(t, err)
}

func Test_Build_reduceReduceConflict_isReported(t *testing.T) {
	g := grammar.New()
	a := g.Terminal("a")
	S := g.NonTerminal("S")
	A := g.NonTerminal("A")
	B := g.NonTerminal("B")

	g.AddProduction(S, A)
	g.AddProduction(S, B)
	g.AddProduction(A, a)
	g.AddProduction(B, a)
	require.NoError(t, g.Compile())

	_, err := lrtable.Build(g)
	require.Error(t, err)
	var conflictErr *lrtable.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}
