package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/rustlite/lex"
	"github.com/dekarrin/rustlite/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func Test_Tokenize_endsWithSingleEOF(t *testing.T) {
	toks, err := lex.Tokenize("let x: i32 = 1;", lex.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.KindEOF, toks[len(toks)-1].Kind)

	for _, tok := range toks[:len(toks)-1] {
		assert.NotEqual(t, token.KindEOF, tok.Kind)
	}
}

func Test_Tokenize_noWhitespaceOrCommentTokens(t *testing.T) {
	src := "let   x : i32 = // trailing comment\n  1 ;\n/* a block\ncomment */"
	toks, err := lex.Tokenize(src, lex.Options{})
	require.NoError(t, err)

	for _, tok := range toks {
		assert.NotContains(t, tok.Lexeme, "//")
		assert.NotContains(t, tok.Lexeme, "/*")
	}
}

func Test_Tokenize_twoCharOperators(t *testing.T) {
	toks, err := lex.Tokenize("a == b -> c .. d", lex.Options{})
	require.NoError(t, err)
	got := kinds(toks)
	want := []token.Kind{
		token.KindID, token.KindEq, token.KindID, token.KindArrow, token.KindID,
		token.KindDotDot, token.KindID, token.KindEOF,
	}
	assert.Equal(t, want, got)
}

func Test_Tokenize_operatorTiebreak(t *testing.T) {
	// "=" followed by "=" must lex as one KindEq token, not two KindAssign.
	toks, err := lex.Tokenize("==", lex.Options{})
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindEq, toks[0].Kind)
	assert.Equal(t, "==", toks[0].Lexeme)
}

func Test_Tokenize_nonNestedBlockComment(t *testing.T) {
	// "/*/" must NOT close the comment it opens: the content up to the
	// next "*/" is still inside the comment.
	src := "/*/ still a comment */ x"
	toks, err := lex.Tokenize(src, lex.Options{})
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindID, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Lexeme)
}

func Test_Tokenize_unterminatedBlockComment(t *testing.T) {
	_, err := lex.Tokenize("/* never closed", lex.Options{})
	require.Error(t, err)
}

func Test_Tokenize_malformedNumber(t *testing.T) {
	_, err := lex.Tokenize("123abc", lex.Options{})
	require.Error(t, err)
}

func Test_Tokenize_keywordVsIdentifier(t *testing.T) {
	toks, err := lex.Tokenize("while whiletrue", lex.Options{})
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.KindWhile, toks[0].Kind)
	assert.Equal(t, token.KindID, toks[1].Kind)
	assert.Equal(t, "whiletrue", toks[1].Lexeme)
}

func Test_Tokenize_lexemePreservation(t *testing.T) {
	src := "foo123 + 456"
	toks, err := lex.Tokenize(src, lex.Options{})
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "foo123", toks[0].Lexeme)
	assert.Equal(t, "+", toks[1].Lexeme)
	assert.Equal(t, "456", toks[2].Lexeme)
}

func Test_Tokenize_emptySource(t *testing.T) {
	toks, err := lex.Tokenize("", lex.Options{})
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindEOF, toks[0].Kind)
}
