// Package token defines the source-position and token model shared by the
// lexer and parser.
package token

import "fmt"

// Position is an immutable byte offset / 1-based line / 1-based column
// tuple. Columns are counted in Unicode runes, not bytes or display width.
type Position struct {
	ByteOffset int
	Line       int
	Column     int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before other in source order.
func (p Position) Less(other Position) bool {
	return p.ByteOffset < other.ByteOffset
}

// Range is a half-open [Start, End) span of source positions.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Join returns the smallest range covering both r and other.
func (r Range) Join(other Range) Range {
	start, end := r.Start, r.End
	if other.Start.ByteOffset < start.ByteOffset {
		start = other.Start
	}
	if other.End.ByteOffset > end.ByteOffset {
		end = other.End
	}
	return Range{Start: start, End: end}
}

// Kind discriminates every token the lexer can produce.
type Kind int

const (
	EOF Kind = iota
	Error

	// Trivia
	Comment
	Whitespace
	Newline

	// Literals and identifiers
	Number
	String
	InterpolatedString
	Identifier
	True
	False
	Nil

	// Keywords
	And
	Break
	Continue
	Do
	Else
	Elseif
	End
	Export
	For
	Function
	If
	In
	Local
	Not
	Or
	Repeat
	Return
	Then
	Type
	Until
	While

	// Operators
	Plus
	Minus
	Star
	Slash
	DoubleSlash
	Percent
	Caret
	Hash
	Ampersand
	Tilde
	Pipe
	LtLt
	GtGt
	EqEq
	NotEq
	LessThan
	GreaterThan
	LessEq
	GreaterEq
	Assign
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	DoubleColon
	Semicolon
	Colon
	Comma
	Dot
	DotDot
	Vararg
	Arrow
	Question

	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	DoubleSlashAssign
	PercentAssign
	CaretAssign
	ConcatAssign
)

var keywords = map[string]Kind{
	"and":      And,
	"break":    Break,
	"continue": Continue,
	"do":       Do,
	"else":     Else,
	"elseif":   Elseif,
	"end":      End,
	"export":   Export,
	"false":    False,
	"for":      For,
	"function": Function,
	"if":       If,
	"in":       In,
	"local":    Local,
	"nil":      Nil,
	"not":      Not,
	"or":       Or,
	"repeat":   Repeat,
	"return":   Return,
	"then":     Then,
	"true":     True,
	"type":     Type,
	"until":    Until,
	"while":    While,
}

// LookupKeyword returns the keyword Kind for ident, or (Identifier, false)
// when ident is not a reserved word.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	return Identifier, false
}

// IsContextualKeyword reports whether kw may be treated as a plain
// identifier in positions where an identifier is grammatically required —
// Luau's defining quirk (table field names, member/method access).
func IsContextualKeyword(k Kind) bool {
	switch k {
	case Type, And, Or, End, Do, Then, If, Else, Elseif, For, While,
		Until, Repeat, Function, Local, Break, Continue, Return, Not, In, Export:
		return true
	default:
		return false
	}
}

// Token is {kind, lexeme, start, end}. The lexer preserves trivia tokens;
// the parser consumes only non-trivia but keeps a parallel trivia index.
type Token struct {
	Kind   Kind
	Lexeme string
	Start  Position
	End    Position
}

func (t Token) Range() Range { return Range{Start: t.Start, End: t.End} }

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Start)
}

// IsTrivia reports whether k carries no grammatical meaning.
func IsTrivia(k Kind) bool {
	switch k {
	case Comment, Whitespace, Newline:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindNames = map[Kind]string{
	EOF: "EOF", Error: "Error", Comment: "Comment", Whitespace: "Whitespace", Newline: "Newline",
	Number: "Number", String: "String", InterpolatedString: "InterpolatedString", Identifier: "Identifier",
	True: "True", False: "False", Nil: "Nil",
	And: "and", Break: "break", Continue: "continue", Do: "do", Else: "else", Elseif: "elseif",
	End: "end", Export: "export", For: "for", Function: "function", If: "if", In: "in",
	Local: "local", Not: "not", Or: "or", Repeat: "repeat", Return: "return", Then: "then",
	Type: "type", Until: "until", While: "while",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", DoubleSlash: "//", Percent: "%", Caret: "^",
	Hash: "#", Ampersand: "&", Tilde: "~", Pipe: "|", LtLt: "<<", GtGt: ">>",
	EqEq: "==", NotEq: "~=", LessThan: "<", GreaterThan: ">", LessEq: "<=", GreaterEq: ">=",
	Assign: "=", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	DoubleColon: "::", Semicolon: ";", Colon: ":", Comma: ",", Dot: ".", DotDot: "..",
	Vararg: "...", Arrow: "->", Question: "?",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	DoubleSlashAssign: "//=", PercentAssign: "%=", CaretAssign: "^=", ConcatAssign: "..=",
}
