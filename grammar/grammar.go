// Package grammar models a context-free grammar over the Symbol type and
// computes FIRST sets and nullability by fixed-point iteration, the way
// Algorithm 4.28 (purple dragon book) does it.
package grammar

import "fmt"

// Production is Head -> Body, indexed by declaration order in a Grammar.
// Production 0 is the first production added; lrtable.Build appends the
// augmented start production after all declared ones.
type Production struct {
	Head Symbol
	Body []Symbol
}

func (p Production) String(g *Grammar) string {
	s := g.Name(p.Head) + " ->"
	if len(p.Body) == 0 {
		return s + " ε"
	}
	for _, sym := range p.Body {
		s += " " + g.Name(sym)
	}
	return s
}

// Grammar is a builder until Compile is called, after which FIRST sets and
// nullability are memoized. The only later change is lrtable.Build's
// registration of the augmented start symbol and its production.
type Grammar struct {
	termNames    []string
	nontermNames []string
	termIndex    map[string]int
	nontermIndex map[string]int

	Productions []Production
	Start       Symbol

	compiled   bool
	nullable   map[Symbol]bool
	firstSets  map[Symbol]SymbolSet
}

// New returns an empty Grammar builder.
func New() *Grammar {
	return &Grammar{
		termIndex:    map[string]int{},
		nontermIndex: map[string]int{},
	}
}

// Terminal registers (or looks up) the terminal named name and returns its
// Symbol.
func (g *Grammar) Terminal(name string) Symbol {
	if id, ok := g.termIndex[name]; ok {
		return Symbol{Tag: TerminalSymbol, ID: id}
	}
	id := len(g.termNames)
	g.termNames = append(g.termNames, name)
	g.termIndex[name] = id
	return Symbol{Tag: TerminalSymbol, ID: id}
}

// NonTerminal registers (or looks up) the non-terminal named name and
// returns its Symbol.
func (g *Grammar) NonTerminal(name string) Symbol {
	if id, ok := g.nontermIndex[name]; ok {
		return Symbol{Tag: NonTerminalSymbol, ID: id}
	}
	id := len(g.nontermNames)
	g.nontermNames = append(g.nontermNames, name)
	g.nontermIndex[name] = id
	return Symbol{Tag: NonTerminalSymbol, ID: id}
}

// AddProduction appends a production to the grammar. The head of the first
// production ever added becomes the start symbol unless SetStart picks a
// different one; lrtable.Build later wraps the start symbol in an
// augmented start production Start' -> Start.
func (g *Grammar) AddProduction(head Symbol, body ...Symbol) {
	g.Productions = append(g.Productions, Production{Head: head, Body: body})
	if g.Start == (Symbol{}) {
		g.Start = head
	}
}

// SetStart overrides the inferred start symbol.
func (g *Grammar) SetStart(s Symbol) {
	g.Start = s
}

// Name returns the human-readable name of s, used for error messages and
// table dumps only -- never for symbol comparison.
func (g *Grammar) Name(s Symbol) string {
	switch s {
	case Empty:
		return "ε"
	case EndOfInput:
		return "$"
	}
	if s.Tag == TerminalSymbol {
		if s.ID >= 0 && s.ID < len(g.termNames) {
			return g.termNames[s.ID]
		}
	} else {
		if s.ID >= 0 && s.ID < len(g.nontermNames) {
			return g.nontermNames[s.ID]
		}
	}
	return s.String()
}

// NumTerminals and NumNonTerminals report the registered symbol counts,
// used to size dense ACTION/GOTO tables.
func (g *Grammar) NumTerminals() int    { return len(g.termNames) }
func (g *Grammar) NumNonTerminals() int { return len(g.nontermNames) }

func (g *Grammar) productionsFor(nt Symbol) []int {
	var out []int
	for i, p := range g.Productions {
		if p.Head == nt {
			out = append(out, i)
		}
	}
	return out
}

// Compile computes nullability and FIRST sets by fixed-point iteration and
// marks the Grammar as ready for use by lrtable.Build. It is idempotent.
func (g *Grammar) Compile() error {
	if g.compiled {
		return nil
	}
	if len(g.Productions) == 0 {
		return fmt.Errorf("grammar: no productions defined")
	}

	g.nullable = map[Symbol]bool{}
	g.firstSets = map[Symbol]SymbolSet{}
	for id := range g.termNames {
		t := Symbol{Tag: TerminalSymbol, ID: id}
		g.firstSets[t] = NewSymbolSet(t)
	}
	for id := range g.nontermNames {
		nt := Symbol{Tag: NonTerminalSymbol, ID: id}
		g.firstSets[nt] = NewSymbolSet()
	}
	g.nullable[Empty] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			bodyNullable := true
			for _, sym := range p.Body {
				if sym.IsEmpty() {
					continue
				}
				if before := g.firstSets[p.Head].Len(); true {
					g.firstSets[p.Head].AddAll(g.withoutEmpty(g.firstSets[sym]))
					if g.firstSets[p.Head].Len() != before {
						changed = true
					}
				}
				if !g.nullable[sym] {
					bodyNullable = false
					break
				}
			}
			if len(p.Body) == 0 {
				bodyNullable = true
			}
			if bodyNullable && !g.nullable[p.Head] {
				g.nullable[p.Head] = true
				changed = true
			}
		}
	}

	g.compiled = true
	return nil
}

func (g *Grammar) withoutEmpty(s SymbolSet) SymbolSet {
	out := NewSymbolSet()
	for sym := range s {
		if !sym.IsEmpty() {
			out.Add(sym)
		}
	}
	return out
}

// IsNullable reports whether sym can derive the empty string.
func (g *Grammar) IsNullable(sym Symbol) bool {
	if sym.IsEmpty() {
		return true
	}
	return g.nullable[sym]
}

// First returns FIRST(sym). For a non-terminal the set never includes
// Empty, even when sym is nullable; nullability is reported separately by
// IsNullable. Atomic terminals not registered through Grammar.Terminal -- Empty and
// EndOfInput -- have themselves as their own FIRST set, the same as any
// other terminal.
func (g *Grammar) First(sym Symbol) SymbolSet {
	if sym.IsEmpty() {
		return NewSymbolSet(Empty)
	}
	if sym.IsEndOfInput() {
		return NewSymbolSet(EndOfInput)
	}
	if sym.IsTerminal() {
		if s, ok := g.firstSets[sym]; ok {
			return s.Copy()
		}
		return NewSymbolSet(sym)
	}
	return g.firstSets[sym].Copy()
}

// FirstOfSequence computes FIRST(X1 X2 ... Xn) per the standard
// concatenation rule, used by closure construction to derive a new item's
// lookahead set from FIRST(βa).
func (g *Grammar) FirstOfSequence(seq []Symbol) SymbolSet {
	out := NewSymbolSet()
	allNullable := true
	for _, sym := range seq {
		out.AddAll(g.withoutEmpty(g.First(sym)))
		if !g.IsNullable(sym) {
			allNullable = false
			break
		}
	}
	if allNullable {
		out.Add(Empty)
	}
	return out
}
