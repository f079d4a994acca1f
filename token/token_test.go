package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/rustlite/token"
)

func Test_Token_String(t *testing.T) {
	tok := token.Token{Kind: token.KindID, Lexeme: "foo"}
	assert.Equal(t, "Token(ID, `foo`)", tok.String())
}

func Test_Kind_String_knownAndUnknown(t *testing.T) {
	assert.Equal(t, "->", token.KindArrow.String())
	assert.Contains(t, token.Kind(9999).String(), "Kind(")
}

func Test_Keywords_roundTrip(t *testing.T) {
	for word, kind := range token.Keywords {
		assert.Equal(t, word, kind.String())
	}
}
