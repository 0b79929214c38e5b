// Package parser implements the Luau parser: recursive descent with
// Pratt-style binary-operator precedence climbing, panic-mode error
// recovery, and doc-comment attachment.
//
// Key patterns (grounded on the teacher's pkg/parser):
//   - prefixParseFn/infixParseFn dispatch tables keyed by token kind
//   - a BlockContext stack kept by pushBlock/popBlock, and synchronize()
//     for panic-mode recovery up to the next syncSet token
//   - every AST node gets a Base.Span set once its extent is known
package parser

import (
	"fmt"
	"strings"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/docparser"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/lexer"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// Precedence levels, low to high (spec §4.3).
const (
	_ int = iota
	LOWEST
	OR
	AND
	COMPARE // < > <= >= ~= ==
	CONCAT  // ..
	SUM     // + -
	PRODUCT // * / // %
	UNARY   // unary - not #
	POWER   // ^ (right-assoc)
	SUFFIX  // . [ ( : ::
)

var precedences = map[token.Kind]int{
	token.Or:          OR,
	token.And:         AND,
	token.LessThan:    COMPARE,
	token.GreaterThan: COMPARE,
	token.LessEq:      COMPARE,
	token.GreaterEq:   COMPARE,
	token.NotEq:       COMPARE,
	token.EqEq:        COMPARE,
	token.DotDot:      CONCAT,
	token.Plus:        SUM,
	token.Minus:       SUM,
	token.Star:        PRODUCT,
	token.Slash:       PRODUCT,
	token.DoubleSlash: PRODUCT,
	token.Percent:     PRODUCT,
	token.Caret:       POWER,
	token.Dot:         SUFFIX,
	token.LBracket:    SUFFIX,
	token.LParen:      SUFFIX,
	token.LBrace:      SUFFIX,
	token.String:      SUFFIX,
	token.Colon:       SUFFIX,
	token.DoubleColon: SUFFIX,
}

// compoundAssignOps maps a compound-assignment token to the binary operator
// it desugars to (a += b ~=> a = a + b at the checker level); the
// CompoundAssignStatement node records the base operator directly.
var compoundAssignOps = map[token.Kind]token.Kind{
	token.PlusAssign:        token.Plus,
	token.MinusAssign:       token.Minus,
	token.StarAssign:        token.Star,
	token.SlashAssign:       token.Slash,
	token.DoubleSlashAssign: token.DoubleSlash,
	token.PercentAssign:     token.Percent,
	token.CaretAssign:       token.Caret,
	token.ConcatAssign:      token.DotDot,
}

// syncSet is the panic-mode synchronization token set (spec §4.3).
var syncSet = map[token.Kind]bool{
	token.End: true, token.Local: true, token.Function: true, token.If: true,
	token.While: true, token.For: true, token.Repeat: true, token.Return: true,
	token.Do: true, token.Type: true, token.Export: true, token.EOF: true,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// BlockContext records one open block. pushBlock/popBlock keep the stack
// current; no error message or recovery step reads it.
type BlockContext struct {
	Kind  string
	Start token.Position
}

// Parser turns a token stream into a Chunk plus the list of parse errors
// encountered along the way. It never panics or returns early, and parsing
// always produces a complete Chunk (spec §7). Unparseable expressions,
// statements and types become Error* nodes; other errors appear in Errors
// only.
type Parser struct {
	tokens     []token.Token
	significant []int // indices into tokens of every non-trivia token, EOF last
	pos        int    // index into significant

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn

	errors     []*Error
	blockStack []BlockContext
}

// New builds a Parser directly from a token stream (including trivia —
// required for doc-comment backward scanning).
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	for i, t := range tokens {
		if !token.IsTrivia(t.Kind) {
			p.significant = append(p.significant, i)
		}
	}
	if len(p.significant) == 0 || p.tokens[p.significant[len(p.significant)-1]].Kind != token.EOF {
		p.significant = append(p.significant, len(tokens))
		p.tokens = append(p.tokens, token.Token{Kind: token.EOF})
	}
	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.infixParseFns = make(map[token.Kind]infixParseFn)
	p.registerPrefixFns()
	p.registerInfixFns()
	return p
}

// ParseSource lexes src and parses it in one step — the common entry point
// for callers that don't need the raw token stream.
func ParseSource(src string) (*ast.Chunk, []*Error) {
	toks := lexer.Lex(src)
	p := New(toks)
	return p.ParseChunk(), p.errors
}

// Errors returns every parse error collected while parsing.
func (p *Parser) Errors() []*Error { return p.errors }

// ---- token stream helpers ----

func (p *Parser) cur() token.Token {
	return p.tokens[p.significant[p.pos]]
}

func (p *Parser) curSigIdx() int { return p.significant[p.pos] }

func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.significant) {
		i = len(p.significant) - 1
	}
	return p.tokens[p.significant[i]]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.significant)-1 {
		p.pos++
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur().Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek(1).Kind == k }

// curIsIdentLike reports whether the current token may be used where an
// identifier is grammatically expected — plain identifiers plus Luau's
// contextual keywords (spec §4.3's defining quirk).
func (p *Parser) curIsIdentLike() bool {
	k := p.cur().Kind
	return k == token.Identifier || token.IsContextualKeyword(k)
}

// expectIdent advances past an identifier-like token, recording an error
// and leaving the cursor in place if the current token can't serve as one.
func (p *Parser) expectIdent() (string, bool) {
	if !p.curIsIdentLike() {
		p.errorf("expected identifier, got %s", p.cur().Kind)
		return "", false
	}
	name := p.cur().Lexeme
	p.nextToken()
	return name, true
}

// expect advances past k, recording an error if the current token isn't k.
func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %s", k, p.cur().Kind)
	return false
}

func (p *Parser) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, &Error{Message: msg, Range: p.cur().Range()})
}

func (p *Parser) errorAt(rng token.Range, format string, args ...any) {
	p.errors = append(p.errors, &Error{Message: fmt.Sprintf(format, args...), Range: rng})
}

func (p *Parser) pushBlock(kind string) {
	p.blockStack = append(p.blockStack, BlockContext{Kind: kind, Start: p.cur().Start})
}

func (p *Parser) popBlock() {
	if len(p.blockStack) > 0 {
		p.blockStack = p.blockStack[:len(p.blockStack)-1]
	}
}

// synchronize advances past tokens until it reaches a member of the
// synchronization set or EOF (spec §4.3).
func (p *Parser) synchronize() {
	for !syncSet[p.cur().Kind] {
		p.nextToken()
	}
}

func (p *Parser) precedenceOf(k token.Kind) int {
	if prec, ok := precedences[k]; ok {
		return prec
	}
	return LOWEST
}

// rangeFrom builds a Range from a start position to the end of the token
// just consumed (p.cur() after advancing past it, or explicit end).
func (p *Parser) rangeFrom(start token.Position) token.Range {
	// end is the start of the current (not-yet-consumed) token's predecessor;
	// callers call this immediately after consuming the last token of a node,
	// so the previous significant token's End is the node's end.
	idx := p.pos - 1
	if idx < 0 {
		idx = 0
	}
	end := p.tokens[p.significant[idx]].End
	if !end.Less(start) && end != start {
		return token.Range{Start: start, End: end}
	}
	return token.Range{Start: start, End: p.cur().Start}
}

// ---- doc-comment attachment ----

// docCommentBefore scans the trivia stream backwards from the current
// token and collects the maximal run of contiguous `---` comment lines
// (spec §4.3), joining and parsing them as a doc comment.
func (p *Parser) docCommentBefore() *ast.DocComment {
	sigIdx := p.curSigIdx()
	start := 0
	if p.pos > 0 {
		start = p.significant[p.pos-1] + 1
	}
	span := p.tokens[start:sigIdx]

	var lines []string
	var blockStart, blockEnd token.Position
	sawBlankLine := false
	newlineStreak := 0
	for _, t := range span {
		switch t.Kind {
		case token.Newline:
			newlineStreak++
			if newlineStreak >= 2 {
				sawBlankLine = true
			}
		case token.Whitespace:
			// doesn't affect adjacency
		case token.Comment:
			trimmed := strings.TrimLeft(t.Lexeme, "-")
			isDocLine := strings.HasPrefix(t.Lexeme, "---")
			if sawBlankLine {
				lines = nil
				sawBlankLine = false
			}
			if isDocLine {
				if len(lines) == 0 {
					blockStart = t.Start
				}
				blockEnd = t.End
				lines = append(lines, strings.TrimSpace(trimmed))
			} else {
				lines = nil
			}
			newlineStreak = 0
		default:
			newlineStreak = 0
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return docparser.Parse(lines, token.Range{Start: blockStart, End: blockEnd})
}

// ---- entry point ----

// ParseChunk parses the full token stream into a Chunk. Top-level statement
// parsing never stops at the first error: each failed statement is
// synchronized past and parsing continues until EOF.
func (p *Parser) ParseChunk() *ast.Chunk {
	start := p.cur().Start
	var stmts []ast.Statement
	for !p.curIs(token.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			// Guard against any parse path that fails to consume input.
			p.nextToken()
		}
	}
	return &ast.Chunk{Rng: p.rangeFromTo(start, p.cur().Start), Statements: stmts}
}

func (p *Parser) rangeFromTo(start, end token.Position) token.Range {
	return token.Range{Start: start, End: end}
}
