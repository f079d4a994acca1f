// Package parser runs the shift/reduce LR(1) driver (Algorithm 4.44,
// purple dragon book) over a lrtable.Table and a token stream, producing a
// cst.Node parse tree.
package parser

import (
	"strings"

	"github.com/dekarrin/rustlite/cst"
	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/internal/rlerrors"
	"github.com/dekarrin/rustlite/lrtable"
	"github.com/dekarrin/rustlite/token"
)

// TerminalOf maps a scanned token.Kind to the grammar.Symbol the table was
// built with. Supplied by the grammar's owner (the rustlite package),
// since only it knows the Kind<->Symbol wiring.
type TerminalOf func(token.Kind) (grammar.Symbol, bool)

// frame is one entry of the parser's single combined stack, pairing the
// LR automaton state with the parse-tree node shifted or reduced into that
// position. Using one stack instead of two parallel ones (symbols and
// states) removes the desync bug class that arises when the two stacks are
// pushed/popped independently.
type frame struct {
	state int
	node  *cst.Node
}

// Parse drives toks through table, starting in state 0 with an empty
// symbol stack -- no placeholder start-symbol node is pushed before parsing
// begins. toks must end with exactly one token.KindEOF token, as produced
// by lex.Tokenize.
func Parse(g *grammar.Grammar, table *lrtable.Table, toks []token.Token, termOf TerminalOf) (*cst.Node, error) {
	stack := []frame{{state: 0}}
	pos := 0

	nextTerminal := func() (grammar.Symbol, token.Token, error) {
		tok := toks[pos]
		sym, ok := termOf(tok.Kind)
		if !ok {
			return grammar.Symbol{}, tok, rlerrors.Parse(
				rlerrors.Position{Line: tok.Line, Col: tok.Col},
				"token kind %s has no corresponding grammar terminal", tok.Kind,
			)
		}
		return sym, tok, nil
	}

	for {
		top := stack[len(stack)-1]
		sym, tok, err := nextTerminal()
		if err != nil {
			return nil, err
		}

		action, ok := table.Lookup(top.state, sym)
		if !ok {
			return nil, unexpectedTokenError(g, table, top.state, tok)
		}

		switch action.Type {
		case lrtable.ActionShift:
			stack = append(stack, frame{state: action.State, node: cst.NewLeaf(sym, tok)})
			pos++

		case lrtable.ActionReduce:
			prod := g.Productions[action.Prod]
			n := len(prod.Body)
			if n > 0 {
				// an empty-bodied production contributes no symbol frames,
				// so its reduction does not pop the stack at all.
				if len(stack) < n {
					return nil, rlerrors.Internal("stack underflow reducing by production %d", action.Prod)
				}
			}
			children := make([]*cst.Node, n)
			for i := 0; i < n; i++ {
				children[i] = stack[len(stack)-n+i].node
			}
			stack = stack[:len(stack)-n]

			node := cst.NewInterior(prod.Head, children)
			gotoFrom := stack[len(stack)-1]
			target, ok := table.GotoState(gotoFrom.state, prod.Head)
			if !ok {
				return nil, rlerrors.Internal("no GOTO from state %d on %s", gotoFrom.state, g.Name(prod.Head))
			}
			stack = append(stack, frame{state: target, node: node})

		case lrtable.ActionAccept:
			// The accepted item is Start' -> Start ., so the augmented
			// start production contributed exactly one child frame: the
			// real start symbol's node.
			return stack[len(stack)-1].node, nil

		default:
			return nil, unexpectedTokenError(g, table, top.state, tok)
		}
	}
}

func unexpectedTokenError(g *grammar.Grammar, table *lrtable.Table, state int, tok token.Token) error {
	expected := table.ExpectedTerminals(state)
	names := make([]string, 0, len(expected))
	for _, sym := range expected {
		names = append(names, g.Name(sym))
	}
	return rlerrors.Parse(
		rlerrors.Position{Line: tok.Line, Col: tok.Col},
		"unexpected token %s in state %d; expected %s", tok, state, expectedList(names),
	)
}

// expectedList renders names as "a, b, or c" for error messages.
func expectedList(names []string) string {
	switch len(names) {
	case 0:
		return "nothing (grammar accepts no further input here)"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}
