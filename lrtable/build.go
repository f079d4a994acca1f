package lrtable

import (
	"fmt"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/rustlite/grammar"
)

// Table is the compiled canonical LR(1) ACTION/GOTO table, along with the
// item sets it was derived from (kept for diagnostics and table dumps).
type Table struct {
	g *grammar.Grammar

	States []*ItemSet
	Action []map[grammar.Symbol]Action // Action[state][terminal]
	Goto   []map[int]int              // Goto[state][nonterminal.ID]

	startProd int // the augmented production Start' -> Start
}

// Build runs Algorithm 4.56 against g: closure, GOTO, canonical-collection
// enumeration, then one ACTION/GOTO fill pass over the collection. g must
// already be Compile()'d. Any shift/reduce, reduce/reduce, or
// accept-clashing conflict aborts the build and is returned as a
// *ConflictError.
func Build(g *grammar.Grammar) (*Table, error) {
	augStart := g.NonTerminal("__Start")
	startProd := len(g.Productions)
	g.AddProduction(augStart, g.Start)

	t := &Table{g: g, startProd: startProd}

	initialCore := Item{Prod: startProd, Dot: 0}
	initial := newItemSet()
	initial.Add(initialCore, grammar.NewSymbolSet(grammar.EndOfInput))
	t.closure(initial)

	t.States = []*ItemSet{initial}
	stateIndex := map[string]int{initial.coreKey(): 0}

	// BFS over the canonical collection; GOTO either discovers a new state
	// or lands on a known one with the same cores and lookaheads. The
	// lookahead merge below re-queues a known state only if its
	// lookaheads grew, which an identical key rules out.
	queue := []int{0}
	gotoTransitions := map[int]map[grammar.Symbol]int{}

	for len(queue) > 0 {
		stateID := queue[0]
		queue = queue[1:]

		state := t.States[stateID]
		symbols := outgoingSymbols(g, state)
		if gotoTransitions[stateID] == nil {
			gotoTransitions[stateID] = map[grammar.Symbol]int{}
		}

		for _, sym := range symbols {
			next := t.gotoSet(state, sym)
			if next == nil || len(next.Cores) == 0 {
				continue
			}
			t.closure(next)
			key := next.coreKey()

			if existingID, ok := stateIndex[key]; ok {
				changed := false
				for _, core := range next.Cores {
					if t.States[existingID].Add(core, next.Lookaheads(core)) {
						changed = true
					}
				}
				gotoTransitions[stateID][sym] = existingID
				if changed {
					queue = append(queue, existingID)
				}
			} else {
				newID := len(t.States)
				t.States = append(t.States, next)
				stateIndex[key] = newID
				gotoTransitions[stateID][sym] = newID
				queue = append(queue, newID)
			}
		}
	}

	if err := t.fillTable(gotoTransitions); err != nil {
		return nil, err
	}
	return t, nil
}

// closure computes the closure of an item set in place: for every item
// [A -> α.Bβ, a], and every production B -> γ, add [B -> .γ, b] for each b
// in FIRST(βa).
func (t *Table) closure(set *ItemSet) {
	g := t.g
	changed := true
	for changed {
		changed = false
		for _, it := range append([]Item(nil), set.Cores...) {
			next, ok := it.NextSymbol(g)
			if !ok || next.IsTerminal() {
				continue
			}
			beta := g.Productions[it.Prod].Body[it.Dot+1:]
			la := set.Lookaheads(it)
			for _, lookahead := range la.Ordered() {
				seq := append(append([]grammar.Symbol(nil), beta...), lookahead)
				firstBA := g.FirstOfSequence(seq)
				for _, prodIdx := range productionsOf(g, next) {
					newItem := Item{Prod: prodIdx, Dot: 0}
					if set.Add(newItem, firstBA) {
						changed = true
					}
				}
			}
		}
	}
}

func productionsOf(g *grammar.Grammar, nt grammar.Symbol) []int {
	var out []int
	for i, p := range g.Productions {
		if p.Head == nt {
			out = append(out, i)
		}
	}
	return out
}

// outgoingSymbols returns, in deterministic order, every symbol that
// appears immediately after some item's dot in set.
func outgoingSymbols(g *grammar.Grammar, set *ItemSet) []grammar.Symbol {
	seen := grammar.NewSymbolSet()
	var out []grammar.Symbol
	for _, it := range set.Cores {
		sym, ok := it.NextSymbol(g)
		if !ok {
			continue
		}
		if !seen.Has(sym) {
			seen.Add(sym)
			out = append(out, sym)
		}
	}
	return orderSymbols(out)
}

func orderSymbols(syms []grammar.Symbol) []grammar.Symbol {
	s := grammar.NewSymbolSet(syms...)
	return s.Ordered()
}

// gotoSet computes GOTO(set, sym): the closure-less core set of items
// advanced past sym, each carrying forward its originating lookahead set.
func (t *Table) gotoSet(set *ItemSet, sym grammar.Symbol) *ItemSet {
	out := newItemSet()
	for _, it := range set.Cores {
		next, ok := it.NextSymbol(t.g)
		if !ok || next != sym {
			continue
		}
		out.Add(it.Advance(), set.Lookaheads(it))
	}
	if len(out.Cores) == 0 {
		return nil
	}
	return out
}

func (t *Table) fillTable(gotoTransitions map[int]map[grammar.Symbol]int) error {
	g := t.g
	t.Action = make([]map[grammar.Symbol]Action, len(t.States))
	t.Goto = make([]map[int]int, len(t.States))

	for stateID, state := range t.States {
		t.Action[stateID] = map[grammar.Symbol]Action{}
		t.Goto[stateID] = map[int]int{}

		for sym, target := range gotoTransitions[stateID] {
			if sym.IsTerminal() {
				if err := t.set(stateID, sym, Action{Type: ActionShift, State: target}); err != nil {
					return err
				}
			} else {
				t.Goto[stateID][sym.ID] = target
			}
		}

		for _, it := range state.Cores {
			if !it.AtEnd(g) {
				continue
			}
			if it.Prod == t.startProd {
				la := state.Lookaheads(it)
				if la.Has(grammar.EndOfInput) {
					if err := t.set(stateID, grammar.EndOfInput, Action{Type: ActionAccept}); err != nil {
						return err
					}
				}
				continue
			}
			la := state.Lookaheads(it)
			for _, a := range la.Ordered() {
				if err := t.set(stateID, a, Action{Type: ActionReduce, Prod: it.Prod}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (t *Table) set(stateID int, sym grammar.Symbol, a Action) error {
	existing, ok := t.Action[stateID][sym]
	if ok && existing != a {
		return &ConflictError{State: stateID, Terminal: t.g.Name(sym), Existing: existing, New: a}
	}
	t.Action[stateID][sym] = a
	return nil
}

// Lookup returns the ACTION table entry for (state, terminal).
func (t *Table) Lookup(state int, terminal grammar.Symbol) (Action, bool) {
	a, ok := t.Action[state][terminal]
	return a, ok
}

// GotoState returns the GOTO table entry for (state, nonterminal).
func (t *Table) GotoState(state int, nonterminal grammar.Symbol) (int, bool) {
	s, ok := t.Goto[state][nonterminal.ID]
	return s, ok
}

// ExpectedTerminals returns, in deterministic order, every terminal symbol
// that has a defined ACTION in the given state -- used to build
// human-readable "expected X, Y, or Z" parse-error messages.
func (t *Table) ExpectedTerminals(state int) []grammar.Symbol {
	set := grammar.NewSymbolSet()
	for sym := range t.Action[state] {
		set.Add(sym)
	}
	return set.Ordered()
}

// String renders the table as a row-per-state, column-per-terminal grid of
// ACTION/GOTO entries, via rosed's table layout helper -- the same
// approach the canonical-LR(1) table dump in this project's lineage uses.
func (t *Table) String() string {
	terms := orderSymbols(allTerminals(t.g))
	nonterms := orderSymbols(allNonTerminals(t.g))

	headers := []string{"state"}
	for _, term := range terms {
		headers = append(headers, t.g.Name(term))
	}
	headers = append(headers, "|")
	for _, nt := range nonterms {
		headers = append(headers, t.g.Name(nt))
	}

	data := [][]string{headers}
	for i := range t.States {
		row := []string{fmt.Sprintf("%d", i)}
		for _, term := range terms {
			cell := ""
			if a, ok := t.Lookup(i, term); ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if s, ok := t.GotoState(i, nt); ok {
				cell = fmt.Sprintf("%d", s)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func allTerminals(g *grammar.Grammar) []grammar.Symbol {
	out := make([]grammar.Symbol, g.NumTerminals())
	for i := range out {
		out[i] = grammar.Symbol{Tag: grammar.TerminalSymbol, ID: i}
	}
	out = append(out, grammar.EndOfInput)
	return out
}

func allNonTerminals(g *grammar.Grammar) []grammar.Symbol {
	out := make([]grammar.Symbol, g.NumNonTerminals())
	for i := range out {
		out[i] = grammar.Symbol{Tag: grammar.NonTerminalSymbol, ID: i}
	}
	return out
}

