/*
Rlrepl is an interactive line-at-a-time exerciser for the Rust-lite
front-end: each line entered is lexed and parsed as an independent program
fragment, and its token list and parse tree are printed back.

Usage:

	rlrepl

Type a complete Rust-lite program (e.g. "fn main() { let x: i32 = 1 + 2; }")
and press enter. Ctrl-D or "quit" exits.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dekarrin/rustlite"
	"github.com/dekarrin/rustlite/lex"
)

func main() {
	fe, err := rustlite.NewFrontend(lex.Options{})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	rl, err := readline.New("rustlite> ")
	if err != nil {
		fmt.Printf("ERROR: could not start readline: %s\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return
		}
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		tree, toks, err := fe.Parse(line)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			continue
		}

		fmt.Println("tokens:")
		for _, tok := range toks {
			fmt.Printf("  %s\n", tok)
		}
		fmt.Println("tree:")
		fmt.Println(tree.String(fe.Grammar))
	}
}
