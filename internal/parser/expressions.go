package parser

import (
	"strconv"
	"strings"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

func (p *Parser) registerPrefixFns() {
	p.prefixParseFns[token.Identifier] = p.parseIdentifier
	p.prefixParseFns[token.Nil] = p.parseNilLiteral
	p.prefixParseFns[token.True] = p.parseBoolLiteral
	p.prefixParseFns[token.False] = p.parseBoolLiteral
	p.prefixParseFns[token.Number] = p.parseNumberLiteral
	p.prefixParseFns[token.String] = p.parseStringLiteral
	p.prefixParseFns[token.InterpolatedString] = p.parseInterpolatedString
	p.prefixParseFns[token.Vararg] = p.parseVararg
	p.prefixParseFns[token.Function] = p.parseFunctionExpression
	p.prefixParseFns[token.LBrace] = p.parseTableConstructor
	p.prefixParseFns[token.LParen] = p.parseParenExpression
	p.prefixParseFns[token.Minus] = p.parseUnary
	p.prefixParseFns[token.Not] = p.parseUnary
	p.prefixParseFns[token.Hash] = p.parseUnary
	p.prefixParseFns[token.If] = p.parseIfExpression

	for _, kw := range []token.Kind{token.Type, token.And, token.Or, token.End, token.Do, token.Then,
		token.Else, token.Elseif, token.For, token.While, token.Until, token.Repeat,
		token.Local, token.Break, token.Continue, token.Return, token.In, token.Export} {
		p.prefixParseFns[kw] = p.parseIdentifier
	}
}

func (p *Parser) registerInfixFns() {
	binOps := []token.Kind{
		token.Or, token.And, token.LessThan, token.GreaterThan, token.LessEq, token.GreaterEq,
		token.NotEq, token.EqEq, token.DotDot, token.Plus, token.Minus, token.Star, token.Slash,
		token.DoubleSlash, token.Percent, token.Caret,
	}
	for _, op := range binOps {
		p.infixParseFns[op] = p.parseBinaryExpression
	}
	p.infixParseFns[token.LParen] = p.parseCallExpression
	p.infixParseFns[token.LBrace] = p.parseCallExpression
	p.infixParseFns[token.String] = p.parseCallExpression
	p.infixParseFns[token.LBracket] = p.parseIndexExpression
	p.infixParseFns[token.Dot] = p.parseMemberExpression
	p.infixParseFns[token.Colon] = p.parseMethodCallExpression
	p.infixParseFns[token.DoubleColon] = p.parseTypeCastExpression
}

// parseExpression is the Pratt-parsing entry point: parse a prefix
// expression, then repeatedly fold in infix operators whose precedence
// exceeds minPrec. `^` is right-associative so its recursive call uses
// POWER-1, letting a chain of `^` nest to the right.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur().Kind]
	if !ok {
		start := p.cur().Start
		p.errorf("no prefix parse function for %s", p.cur().Kind)
		p.nextToken()
		return &ast.ErrorExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "unexpected token in expression"}
	}
	left := prefix()

	for minPrec < p.precedenceOf(p.cur().Kind) {
		infix, ok := p.infixParseFns[p.cur().Kind]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	start := p.cur().Start
	name := p.cur().Lexeme
	p.nextToken()
	return &ast.Identifier{Base: ast.Base{Span: p.rangeFrom(start)}, Name: name}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	start := p.cur().Start
	p.nextToken()
	return &ast.NilLiteral{Base: ast.Base{Span: p.rangeFrom(start)}}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	start := p.cur().Start
	val := p.cur().Kind == token.True
	p.nextToken()
	return &ast.BoolLiteral{Base: ast.Base{Span: p.rangeFrom(start)}, Value: val}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	start := p.cur().Start
	raw := p.cur().Lexeme
	p.nextToken()
	return &ast.NumberLiteral{Base: ast.Base{Span: p.rangeFrom(start)}, Raw: raw, Value: parseNumber(raw)}
}

// parseNumber best-effort decodes a lexed numeric literal (decimal, hex,
// binary, with underscore separators) into its float64 value. A value the
// Go parser can't represent still keeps its Raw lexeme for diagnostics.
func parseNumber(raw string) float64 {
	clean := strings.ReplaceAll(raw, "_", "")
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return f
	}
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		if n, err := strconv.ParseInt(clean[2:], 16, 64); err == nil {
			return float64(n)
		}
	}
	if strings.HasPrefix(clean, "0b") || strings.HasPrefix(clean, "0B") {
		if n, err := strconv.ParseInt(clean[2:], 2, 64); err == nil {
			return float64(n)
		}
	}
	return 0
}

func (p *Parser) parseStringLiteral() ast.Expression {
	start := p.cur().Start
	raw := p.cur().Lexeme
	p.nextToken()
	return &ast.StringLiteral{Base: ast.Base{Span: p.rangeFrom(start)}, Raw: raw, Value: decodeStringLexeme(raw)}
}

// decodeStringLexeme strips quotes/long-bracket delimiters from a lexed
// string token, leaving the content a checker or formatter can use
// directly. Escape decoding beyond quote-stripping is left to callers that
// need the precise runtime value (outside this core's scope).
func decodeStringLexeme(raw string) string {
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		return raw[1 : len(raw)-1]
	}
	if strings.HasPrefix(raw, "[") {
		level := 0
		for 1+level < len(raw) && raw[1+level] == '=' {
			level++
		}
		delim := level + 2
		closer := "]" + strings.Repeat("=", level) + "]"
		if len(raw) >= 2*delim && raw[delim-1] == '[' && strings.HasSuffix(raw, closer) {
			return raw[delim : len(raw)-delim]
		}
	}
	return raw
}

// parseInterpolatedString implements spec §4.3's current stub: the whole
// backtick content becomes a single StringLiteral part. The AST still
// records the InterpolatedStringExpression wrapper so a later implementer
// can re-lex `{...}` spans into sub-expressions without touching callers.
func (p *Parser) parseInterpolatedString() ast.Expression {
	start := p.cur().Start
	raw := p.cur().Lexeme
	p.nextToken()
	content := raw
	if len(content) >= 2 {
		content = content[1 : len(content)-1]
	}
	return &ast.InterpolatedStringExpression{
		Base:  ast.Base{Span: p.rangeFrom(start)},
		Raw:   raw,
		Parts: []ast.StringPart{{Literal: content}},
	}
}

func (p *Parser) parseVararg() ast.Expression {
	start := p.cur().Start
	p.nextToken()
	return &ast.VarargExpression{Base: ast.Base{Span: p.rangeFrom(start)}}
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	p.nextToken() // consume 'function'
	return p.parseFunctionBody(nil)
}

func (p *Parser) parseUnary() ast.Expression {
	start := p.cur().Start
	op := p.cur().Kind
	p.nextToken()
	operand := p.parseExpression(UNARY)
	return &ast.UnaryExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Operator: op, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	start := left.Range().Start
	op := p.cur().Kind
	prec := p.precedenceOf(op)
	p.nextToken()
	// '..' and '^' are right-associative: recurse at prec-1 so a chain
	// like a^b^c parses as a^(b^c), and a..b..c as a..(b..c).
	nextMin := prec
	if op == token.Caret || op == token.DotDot {
		nextMin = prec - 1
	}
	right := p.parseExpression(nextMin)
	return &ast.BinaryExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Operator: op, Left: left, Right: right}
}

func (p *Parser) parseParenExpression() ast.Expression {
	start := p.cur().Start
	p.nextToken() // '('
	inner := p.parseExpression(LOWEST)
	p.expect(token.RParen)
	return &ast.ParenExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Inner: inner}
}

func (p *Parser) parseIfExpression() ast.Expression {
	start := p.cur().Start
	p.nextToken() // 'if'
	cond := p.parseExpression(LOWEST)
	p.expect(token.Then)
	then := p.parseExpression(LOWEST)
	var elseIfs []ast.ElseIfExpr
	for p.curIs(token.Elseif) {
		p.nextToken()
		c := p.parseExpression(LOWEST)
		p.expect(token.Then)
		t := p.parseExpression(LOWEST)
		elseIfs = append(elseIfs, ast.ElseIfExpr{Condition: c, Then: t})
	}
	var elseExpr ast.Expression
	if p.curIs(token.Else) {
		p.nextToken()
		elseExpr = p.parseExpression(LOWEST)
	} else {
		p.errorf("if-expression requires an else branch")
	}
	return &ast.IfExpression{
		Base: ast.Base{Span: p.rangeFrom(start)}, Condition: cond, Then: then, ElseIfs: elseIfs, Else: elseExpr,
	}
}

func (p *Parser) parseTableConstructor() ast.Expression {
	start := p.cur().Start
	p.nextToken() // '{'
	var fields []ast.TableField
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		fStart := p.cur().Start
		switch {
		case p.curIs(token.LBracket):
			p.nextToken()
			idx := p.parseExpression(LOWEST)
			p.expect(token.RBracket)
			p.expect(token.Assign)
			val := p.parseExpression(LOWEST)
			fields = append(fields, ast.TableField{Kind: ast.TableFieldComputed, Index: idx, Value: val, Rng: p.rangeFrom(fStart)})
		case p.curIsIdentLike() && p.peekIs(token.Assign):
			name := p.cur().Lexeme
			p.nextToken()
			p.nextToken() // '='
			val := p.parseExpression(LOWEST)
			fields = append(fields, ast.TableField{Kind: ast.TableFieldKeyed, Key: name, Value: val, Rng: p.rangeFrom(fStart)})
		default:
			val := p.parseExpression(LOWEST)
			fields = append(fields, ast.TableField{Kind: ast.TableFieldArray, Value: val, Rng: p.rangeFrom(fStart)})
		}
		if p.curIs(token.Comma) || p.curIs(token.Semicolon) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RBrace)
	return &ast.TableConstructorExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Fields: fields}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	start := callee.Range().Start
	var args []ast.Expression
	switch p.cur().Kind {
	case token.LParen:
		p.nextToken()
		if !p.curIs(token.RParen) {
			args = p.parseExpressionList()
		}
		p.expect(token.RParen)
	case token.LBrace:
		args = []ast.Expression{p.parseTableConstructor()}
	case token.String:
		args = []ast.Expression{p.parseStringLiteral()}
	}
	return &ast.CallExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Callee: callee, Args: args}
}

func (p *Parser) parseMethodCallExpression(object ast.Expression) ast.Expression {
	start := object.Range().Start
	p.nextToken() // ':'
	name, _ := p.expectIdent()
	var args []ast.Expression
	switch p.cur().Kind {
	case token.LParen:
		p.nextToken()
		if !p.curIs(token.RParen) {
			args = p.parseExpressionList()
		}
		p.expect(token.RParen)
	case token.LBrace:
		args = []ast.Expression{p.parseTableConstructor()}
	case token.String:
		args = []ast.Expression{p.parseStringLiteral()}
	default:
		p.errorf("expected call arguments after method name %q", name)
	}
	return &ast.MethodCallExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Object: object, Method: name, Args: args}
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	start := object.Range().Start
	p.nextToken() // '['
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBracket)
	return &ast.IndexExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Object: object, Index: idx}
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	start := object.Range().Start
	p.nextToken() // '.'
	name, _ := p.expectIdent()
	return &ast.MemberExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Object: object, Name: name}
}

func (p *Parser) parseTypeCastExpression(expr ast.Expression) ast.Expression {
	start := expr.Range().Start
	p.nextToken() // '::'
	t := p.parseTypeAnnotation()
	return &ast.TypeCastExpression{Base: ast.Base{Span: p.rangeFrom(start)}, Expr: expr, Type: t}
}
