// Package lex is a hand-rolled, character-by-character maximal-munch
// scanner for the Rust-lite source language. It does not use regular
// expressions or a generated DFA table: every token class is recognized by
// an explicit switch over the current rune, with two-character operators
// tried before their one-character prefixes, keyword lookup done only after
// an identifier has been fully scanned, and block comments treated as
// non-nested.
package lex

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/dekarrin/rustlite/internal/rlerrors"
	"github.com/dekarrin/rustlite/token"
)

// Options configures optional, off-by-default scanner behavior.
type Options struct {
	// NormalizeWidth folds fullwidth Unicode digit/letter variants to their
	// ASCII equivalents before classification. Off by default so that the
	// byte-offset round-trip invariant holds without surprises.
	NormalizeWidth bool
}

// cursor is the scanner's read position: line/column tracking with one-rune
// lookahead, operating over a plain []rune instead of a buffered io.Reader
// since maximal-munch scanning here needs no backtracking.
type cursor struct {
	src  []rune
	pos  int
	line int
	col  int
}

func newCursor(src string, opts Options) *cursor {
	if opts.NormalizeWidth {
		src = width.Narrow.String(src)
	}
	return &cursor{src: []rune(src), line: 1, col: 1}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) peekAt(off int) rune {
	if c.pos+off >= len(c.src) {
		return 0
	}
	return c.src[c.pos+off]
}

func (c *cursor) advance() rune {
	r := c.src[c.pos]
	c.pos++
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

func (c *cursor) position() rlerrors.Position {
	return rlerrors.Position{Line: c.line, Col: c.col}
}

var twoCharOps = map[string]token.Kind{
	"==": token.KindEq,
	"!=": token.KindNeq,
	">=": token.KindGe,
	"<=": token.KindLe,
	"->": token.KindArrow,
	"..": token.KindDotDot,
}

var oneCharOps = map[rune]token.Kind{
	'(': token.KindLParen,
	')': token.KindRParen,
	'{': token.KindLBrace,
	'}': token.KindRBrace,
	'[': token.KindLBracket,
	']': token.KindRBracket,
	',': token.KindComma,
	';': token.KindSemi,
	':': token.KindColon,
	'.': token.KindDot,
	'=': token.KindAssign,
	'<': token.KindLt,
	'>': token.KindGt,
	'+': token.KindPlus,
	'-': token.KindMinus,
	'*': token.KindStar,
	'/': token.KindSlash,
	'%': token.KindPercent,
}

// Tokenize scans the entirety of src and returns the token stream,
// terminated by exactly one token.KindEOF token. On the first lexical
// error, scanning stops and a non-nil error of kind rlerrors.KindLex is
// returned alongside whatever tokens were recognized before the failure.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	c := newCursor(src, opts)
	var toks []token.Token

	for {
		if err := skipWhitespaceAndComments(c); err != nil {
			return toks, err
		}
		if c.eof() {
			break
		}

		startPos := c.position()
		r := c.peek()

		switch {
		case r == '"':
			return toks, rlerrors.Lex(startPos, "string literals are not part of this language's token set")
		case unicode.IsDigit(r):
			tok, err := scanNumber(c, startPos)
			if err != nil {
				return toks, err
			}
			toks = append(toks, tok)
		case isIdentStart(r):
			toks = append(toks, scanIdentOrKeyword(c, startPos))
		default:
			tok, err := scanOperatorOrPunct(c, startPos)
			if err != nil {
				return toks, err
			}
			toks = append(toks, tok)
		}
	}

	toks = append(toks, token.Token{Kind: token.KindEOF, Lexeme: "", Line: c.line, Col: c.col})
	return toks, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func skipWhitespaceAndComments(c *cursor) error {
	for {
		switch {
		case !c.eof() && unicode.IsSpace(c.peek()):
			c.advance()
		case c.peek() == '/' && c.peekAt(1) == '/':
			for !c.eof() && c.peek() != '\n' {
				c.advance()
			}
		case c.peek() == '/' && c.peekAt(1) == '*':
			openPos := c.position()
			// Advance past "/*" before scanning for the closer so that a
			// "/*/" sequence does not consume itself as both opener and
			// closer.
			c.advance()
			c.advance()
			closed := false
			for !c.eof() {
				if c.peek() == '*' && c.peekAt(1) == '/' {
					c.advance()
					c.advance()
					closed = true
					break
				}
				c.advance()
			}
			if !closed {
				return rlerrors.Lex(openPos, "unterminated block comment")
			}
		default:
			return nil
		}
	}
}

func scanNumber(c *cursor, start rlerrors.Position) (token.Token, error) {
	var runes []rune
	for !c.eof() && unicode.IsDigit(c.peek()) {
		runes = append(runes, c.advance())
	}
	if !c.eof() && isIdentStart(c.peek()) {
		badPos := c.position()
		bad := c.advance()
		return token.Token{}, rlerrors.Lex(badPos, "malformed number literal: unexpected %q following digits", bad)
	}
	return token.Token{Kind: token.KindNum, Lexeme: string(runes), Line: start.Line, Col: start.Col}, nil
}

func scanIdentOrKeyword(c *cursor, start rlerrors.Position) token.Token {
	var runes []rune
	for !c.eof() && isIdentCont(c.peek()) {
		runes = append(runes, c.advance())
	}
	lexeme := string(runes)
	kind := token.KindID
	if k, ok := token.Keywords[lexeme]; ok {
		kind = k
	}
	return token.Token{Kind: kind, Lexeme: lexeme, Line: start.Line, Col: start.Col}
}

func scanOperatorOrPunct(c *cursor, start rlerrors.Position) (token.Token, error) {
	two := string(c.peek()) + string(c.peekAt(1))
	if kind, ok := twoCharOps[two]; ok {
		c.advance()
		c.advance()
		return token.Token{Kind: kind, Lexeme: two, Line: start.Line, Col: start.Col}, nil
	}

	r := c.peek()
	if kind, ok := oneCharOps[r]; ok {
		c.advance()
		return token.Token{Kind: kind, Lexeme: string(r), Line: start.Line, Col: start.Col}, nil
	}

	c.advance()
	if r < utf8.RuneSelf {
		return token.Token{}, rlerrors.Lex(start, "unrecognized character %q", string(r))
	}
	return token.Token{}, rlerrors.Lex(start, "unrecognized character %U", r)
}
