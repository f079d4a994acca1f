package rustlite

import (
	"sync"

	"github.com/dekarrin/rustlite/cst"
	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/internal/rlerrors"
	"github.com/dekarrin/rustlite/lex"
	"github.com/dekarrin/rustlite/lrtable"
	"github.com/dekarrin/rustlite/parser"
	"github.com/dekarrin/rustlite/token"
)

// Frontend bundles a compiled Grammar and its canonical LR(1) Table. Build
// it once with NewFrontend and reuse it for any number of Tokenize/Parse
// calls; the grammar and table are immutable after construction, so a
// single Frontend is safe for concurrent read-only use across goroutines
// even though nothing in this module spawns any.
type Frontend struct {
	Grammar *grammar.Grammar
	Table   *lrtable.Table

	LexOptions lex.Options
}

var (
	buildOnce  sync.Once
	buildErr   error
	sharedG    *grammar.Grammar
	sharedTbl  *lrtable.Table
)

// NewFrontend builds (on first call; memoized thereafter) the Rust-lite
// grammar and its LR(1) table, and returns a Frontend wrapping them. A
// non-nil error means the grammar itself is malformed or ambiguous -- a
// programming error in this module, not a user-input problem -- and is
// returned as rlerrors.KindGrammar or rlerrors.KindConflict.
func NewFrontend(opts lex.Options) (*Frontend, error) {
	buildOnce.Do(func() {
		g := buildGrammar()
		if err := g.Compile(); err != nil {
			buildErr = rlerrors.Grammar("%s", err)
			return
		}
		tbl, err := lrtable.Build(g)
		if err != nil {
			buildErr = rlerrors.Conflict(err)
			return
		}
		sharedG, sharedTbl = g, tbl
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return &Frontend{Grammar: sharedG, Table: sharedTbl, LexOptions: opts}, nil
}

// Tokenize scans src using this Frontend's lexer options.
func (f *Frontend) Tokenize(src string) ([]token.Token, error) {
	return lex.Tokenize(src, f.LexOptions)
}

// Parse tokenizes and parses src in one call, returning the resulting
// parse tree and the token stream it was built from.
func (f *Frontend) Parse(src string) (*cst.Node, []token.Token, error) {
	toks, err := f.Tokenize(src)
	if err != nil {
		return nil, toks, err
	}
	tree, err := parser.Parse(f.Grammar, f.Table, toks, TerminalOf)
	return tree, toks, err
}
