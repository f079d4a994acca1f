// Package lrtable builds a canonical LR(1) ACTION/GOTO table from a
// grammar.Grammar, following Algorithm 4.56 (purple dragon book): construct
// the canonical collection of LR(1) item sets via closure and GOTO, then
// read the table off the collection.
package lrtable

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rustlite/grammar"
)

// Item is the *core* of an LR(1) item: a production index and a dot
// position within that production's body (0..=len(body)). Lookahead symbols
// are not part of the item's identity -- two items with the same core are
// the same item, and their lookahead sets are unioned rather than kept as
// distinct per-lookahead items.
type Item struct {
	Prod int
	Dot  int
}

// AtEnd reports whether the dot is at the end of the production's body,
// i.e. the item is ready to reduce.
func (it Item) AtEnd(g *grammar.Grammar) bool {
	return it.Dot >= len(g.Productions[it.Prod].Body)
}

// NextSymbol returns the symbol immediately after the dot and true, or the
// zero Symbol and false if the dot is at the end.
func (it Item) NextSymbol(g *grammar.Grammar) (grammar.Symbol, bool) {
	body := g.Productions[it.Prod].Body
	if it.Dot >= len(body) {
		return grammar.Symbol{}, false
	}
	return body[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1}
}

func (it Item) String(g *grammar.Grammar) string {
	p := g.Productions[it.Prod]
	s := g.Name(p.Head) + " ->"
	for i, sym := range p.Body {
		if i == it.Dot {
			s += " ."
		}
		s += " " + g.Name(sym)
	}
	if it.Dot == len(p.Body) {
		s += " ."
	}
	return s
}

// ItemSet is a core-set of items, each carrying a unioned lookahead set,
// exactly one canonical LR(1) state's worth of items.
type ItemSet struct {
	Cores      []Item
	lookaheads map[Item]grammar.SymbolSet
	index      map[Item]int
}

func newItemSet() *ItemSet {
	return &ItemSet{
		lookaheads: map[Item]grammar.SymbolSet{},
		index:      map[Item]int{},
	}
}

// Add merges (item, lookaheads) into the set, unioning lookaheads into any
// existing item with the same core. Returns true if the set's observable
// state changed (new item added, or lookaheads grew).
func (s *ItemSet) Add(it Item, la grammar.SymbolSet) bool {
	changed := false
	existing, ok := s.lookaheads[it]
	if !ok {
		s.Cores = append(s.Cores, it)
		s.index[it] = len(s.Cores) - 1
		s.lookaheads[it] = la.Copy()
		return true
	}
	before := existing.Len()
	existing.AddAll(la)
	if existing.Len() != before {
		changed = true
	}
	return changed
}

// Lookaheads returns the unioned lookahead set carried by it in this set.
func (s *ItemSet) Lookaheads(it Item) grammar.SymbolSet {
	return s.lookaheads[it]
}

// coreKey returns a canonical (order-independent) identity for the set:
// its core items together with each core's lookahead set, used to
// recognize when GOTO lands on an already-seen state. Two sets with the
// same cores but different lookaheads get different keys.
func (s *ItemSet) coreKey() string {
	cores := append([]Item(nil), s.Cores...)
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].Prod != cores[j].Prod {
			return cores[i].Prod < cores[j].Prod
		}
		return cores[i].Dot < cores[j].Dot
	})
	key := ""
	for _, it := range cores {
		key += itemKey(it)
		for _, la := range s.lookaheads[it].Ordered() {
			key += la.String() + ","
		}
	}
	return key
}

func itemKey(it Item) string {
	return fmt.Sprintf("%d.%d;", it.Prod, it.Dot)
}
