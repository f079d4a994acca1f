// Package rustlite wires together the lex, grammar, lrtable, parser, and
// cst packages around the one fixed grammar for the Rust-lite subset
// language. It is the module's root package: callers construct a Frontend
// once and reuse it across any number of Parse/Tokenize calls.
package rustlite

import (
	"github.com/dekarrin/rustlite/grammar"
	"github.com/dekarrin/rustlite/token"
)

// kindToTerminal is filled in by buildGrammar and consulted by TerminalOf;
// kept at package scope because the grammar is a process-wide constant,
// not a per-Frontend value.
var kindToTerminal map[token.Kind]grammar.Symbol

// TerminalOf implements parser.TerminalOf for the Rust-lite grammar.
func TerminalOf(k token.Kind) (grammar.Symbol, bool) {
	sym, ok := kindToTerminal[k]
	return sym, ok
}

// buildGrammar constructs the fixed Rust-lite grammar: a function-oriented
// subset of Rust with i32 variables, if/else-if chains, while and loop
// blocks with break/continue, and C-style operator precedence. Three
// deliberate corrections from a naive transcription of this shape of
// grammar are folded in here: Factor reduces through a real Element
// production rather than a self-referential Factor -> Factor rule,
// LoopSentence has its own "loop SentenceBlock" production rather than
// aliasing WhileSentence, and Parameter routes through VarDeclareInner
// (instead of a bare "ID : Type") so a function parameter can carry the
// same optional leading "mut" a let-binding can.
func buildGrammar() *grammar.Grammar {
	g := grammar.New()
	kindToTerminal = map[token.Kind]grammar.Symbol{}

	term := func(k token.Kind) grammar.Symbol {
		s := g.Terminal(k.String())
		kindToTerminal[k] = s
		return s
	}
	nt := g.NonTerminal

	kindToTerminal[token.KindEOF] = grammar.EndOfInput

	// terminals
	tID := term(token.KindID)
	tNum := term(token.KindNum)
	tFn := term(token.KindFn)
	tLet := term(token.KindLet)
	tMut := term(token.KindMut)
	tIf := term(token.KindIf)
	tElse := term(token.KindElse)
	tWhile := term(token.KindWhile)
	tLoop := term(token.KindLoop)
	tBreak := term(token.KindBreak)
	tContinue := term(token.KindContinue)
	tReturn := term(token.KindReturn)
	tI32 := term(token.KindI32)
	tLParen := term(token.KindLParen)
	tRParen := term(token.KindRParen)
	tLBrace := term(token.KindLBrace)
	tRBrace := term(token.KindRBrace)
	tComma := term(token.KindComma)
	tSemi := term(token.KindSemi)
	tColon := term(token.KindColon)
	tArrow := term(token.KindArrow)
	tAssign := term(token.KindAssign)
	tEq := term(token.KindEq)
	tNeq := term(token.KindNeq)
	tLt := term(token.KindLt)
	tLe := term(token.KindLe)
	tGt := term(token.KindGt)
	tGe := term(token.KindGe)
	tPlus := term(token.KindPlus)
	tMinus := term(token.KindMinus)
	tStar := term(token.KindStar)
	tSlash := term(token.KindSlash)
	tPercent := term(token.KindPercent)
	// lexically reserved but not yet consumed by any production -- still
	// registered so the lexer's KindFor/KindIn/KindDot/KindDotDot/brackets
	// tokens map onto real terminals rather than failing TerminalOf, even
	// though the grammar never shifts them today.
	term(token.KindFor)
	term(token.KindIn)
	term(token.KindDot)
	term(token.KindDotDot)
	term(token.KindLBracket)
	term(token.KindRBracket)

	// non-terminals
	Program := nt("Program")
	DeclareList := nt("DeclareList")
	Declare := nt("Declare")
	FunctionDeclare := nt("FunctionDeclare")
	FunctionHeaderDeclare := nt("FunctionHeaderDeclare")
	SentenceBlock := nt("SentenceBlock")
	ParameterList := nt("ParameterList")
	Parameter := nt("Parameter")
	Type := nt("Type")
	SentenceList := nt("SentenceList")
	Sentence := nt("Sentence")
	VarDeclareInner := nt("VarDeclareInner")
	ReturnSentence := nt("ReturnSentence")
	VarDeclareSentence := nt("VarDeclareSentence")
	AssignSentence := nt("AssignSentence")
	Expression := nt("Expression")
	VarDeclareAndAssignSentence := nt("VarDeclareAndAssignSentence")
	AddExpression := nt("AddExpression")
	Item := nt("Item")
	Factor := nt("Factor")
	Element := nt("Element")
	CompareOperator := nt("CompareOperator")
	AddSubOperator := nt("AddSubOperator")
	MulDivOperator := nt("MulDivOperator")
	ArgumentList := nt("ArgumentList")
	IfSentence := nt("IfSentence")
	ElsePart := nt("ElsePart")
	AssignableItem := nt("AssignableItem")
	LoopSentence := nt("LoopSentence")
	WhileSentence := nt("WhileSentence")
	BreakSentence := nt("BreakSentence")
	ContinueSentence := nt("ContinueSentence")

	add := g.AddProduction

	// Program, declarations
	add(Program, DeclareList)
	add(DeclareList) // Empty
	add(DeclareList, Declare, DeclareList)
	add(Declare, FunctionDeclare)
	add(FunctionDeclare, FunctionHeaderDeclare, SentenceBlock)
	add(FunctionHeaderDeclare, tFn, tID, tLParen, ParameterList, tRParen, tArrow, Type)
	add(FunctionHeaderDeclare, tFn, tID, tLParen, ParameterList, tRParen)
	add(ParameterList) // Empty
	add(ParameterList, Parameter)
	add(ParameterList, Parameter, tComma, ParameterList)
	add(Parameter, VarDeclareInner)
	add(Type, tI32)

	// blocks and sentences
	add(SentenceBlock, tLBrace, SentenceList, tRBrace)
	add(SentenceList) // Empty
	add(SentenceList, Sentence, SentenceList)
	add(Sentence, tSemi)
	add(Sentence, ReturnSentence)
	add(Sentence, VarDeclareSentence)
	add(Sentence, VarDeclareAndAssignSentence)
	add(Sentence, AssignSentence)
	add(Sentence, Expression, tSemi)
	add(Sentence, IfSentence)
	add(Sentence, LoopSentence)
	add(Sentence, WhileSentence)
	add(Sentence, BreakSentence)
	add(Sentence, ContinueSentence)
	add(Sentence, SentenceBlock)

	add(ReturnSentence, tReturn, tSemi)
	add(ReturnSentence, tReturn, Expression, tSemi)

	add(VarDeclareInner, tID, tColon, Type)
	add(VarDeclareInner, tMut, tID, tColon, Type)
	add(VarDeclareSentence, tLet, VarDeclareInner, tSemi)
	add(VarDeclareAndAssignSentence, tLet, VarDeclareInner, tAssign, Expression, tSemi)

	add(AssignSentence, AssignableItem, tAssign, Expression, tSemi)
	add(AssignableItem, tID)

	add(BreakSentence, tBreak, tSemi)
	add(ContinueSentence, tContinue, tSemi)

	add(LoopSentence, tLoop, SentenceBlock)
	add(WhileSentence, tWhile, Expression, SentenceBlock)
	add(IfSentence, tIf, Expression, SentenceBlock, ElsePart)
	add(ElsePart) // Empty
	add(ElsePart, tElse, SentenceBlock)
	add(ElsePart, tElse, IfSentence)

	// expression precedence chain
	add(Expression, AddExpression)
	add(Expression, AddExpression, CompareOperator, AddExpression)
	add(CompareOperator, tEq)
	add(CompareOperator, tNeq)
	add(CompareOperator, tLt)
	add(CompareOperator, tLe)
	add(CompareOperator, tGt)
	add(CompareOperator, tGe)

	add(AddExpression, Item)
	add(AddExpression, AddExpression, AddSubOperator, Item)
	add(AddSubOperator, tPlus)
	add(AddSubOperator, tMinus)

	add(Item, Factor)
	add(Item, Item, MulDivOperator, Factor)
	add(MulDivOperator, tStar)
	add(MulDivOperator, tSlash)
	add(MulDivOperator, tPercent)

	add(Factor, Element)
	add(Factor, tMinus, Factor)

	add(Element, tNum)
	add(Element, tID)
	add(Element, tID, tLParen, ArgumentList, tRParen)
	add(Element, tLParen, Expression, tRParen)
	add(ArgumentList) // Empty
	add(ArgumentList, Expression)
	add(ArgumentList, Expression, tComma, ArgumentList)

	g.SetStart(Program)
	return g
}
