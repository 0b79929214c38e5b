package parser

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// parseTypeAnnotation implements spec §4.3's type grammar:
//   union        := intersection ("|" intersection)*
//   intersection := primary ("&" primary)*
//   primary      := typeof(expr) | paren-or-function-type | table-type |
//                   variadic | literal | reference, with optional trailing '?'
func (p *Parser) parseTypeAnnotation() ast.TypeAnnotation {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() ast.TypeAnnotation {
	start := p.cur().Start
	first := p.parseIntersectionType()
	if !p.curIs(token.Pipe) {
		return first
	}
	members := []ast.TypeAnnotation{first}
	for p.curIs(token.Pipe) {
		p.nextToken()
		members = append(members, p.parseIntersectionType())
	}
	return &ast.UnionType{Base: ast.Base{Span: p.rangeFrom(start)}, Members: members}
}

func (p *Parser) parseIntersectionType() ast.TypeAnnotation {
	start := p.cur().Start
	first := p.parsePrimaryType()
	if !p.curIs(token.Ampersand) {
		return first
	}
	members := []ast.TypeAnnotation{first}
	for p.curIs(token.Ampersand) {
		p.nextToken()
		members = append(members, p.parsePrimaryType())
	}
	return &ast.IntersectionType{Base: ast.Base{Span: p.rangeFrom(start)}, Members: members}
}

func (p *Parser) parsePrimaryType() ast.TypeAnnotation {
	var t ast.TypeAnnotation
	switch {
	case p.curIs(token.Identifier) && p.cur().Lexeme == "typeof" && p.peekIs(token.LParen):
		t = p.parseTypeofType()
	case p.curIs(token.LParen):
		t = p.parseParenOrFunctionType()
	case p.curIs(token.LBrace):
		t = p.parseTableType()
	case p.curIs(token.Vararg):
		t = p.parseVariadicType()
	case p.curIs(token.String):
		t = p.parseStringLiteralType()
	case p.curIs(token.True) || p.curIs(token.False):
		t = p.parseBoolLiteralType()
	case p.curIs(token.Number):
		t = p.parseNumberLiteralType()
	case p.curIs(token.LessThan):
		start := p.cur().Start
		generics := p.parseGenericsOpt()
		t = p.parseFunctionType(start, generics, nil)
	case p.curIsIdentLike():
		t = p.parseReferenceType()
	default:
		start := p.cur().Start
		p.errorf("expected type, got %s", p.cur().Kind)
		p.nextToken()
		t = &ast.ErrorType{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "expected type"}
	}
	return t
}

func (p *Parser) parseTypeofType() ast.TypeAnnotation {
	start := p.cur().Start
	p.nextToken() // 'typeof'
	p.expect(token.LParen)
	expr := p.parseExpression(LOWEST)
	p.expect(token.RParen)
	return p.maybeOptional(start, &ast.TypeofType{Base: ast.Base{Span: p.rangeFrom(start)}, Expr: expr})
}

// parseParenOrFunctionType disambiguates `(T)` (a parenthesized type) from
// `(params) -> R` (a function type) by scanning ahead for a matching ')'
// followed by '->' — spec §4.3: "A parenthesized form with a following '->'
// is a function type; otherwise it is a single parenthesized type."
func (p *Parser) parseParenOrFunctionType() ast.TypeAnnotation {
	start := p.cur().Start
	if p.looksLikeFunctionType() {
		return p.parseFunctionType(start, nil, nil)
	}
	p.nextToken() // '('
	inner := p.parseTypeAnnotation()
	p.expect(token.RParen)
	return p.maybeOptional(start, &ast.ParenType{Base: ast.Base{Span: p.rangeFrom(start)}, Inner: inner})
}

// looksLikeFunctionType scans forward from the current '(' to its matching
// ')' (tracking nesting depth) and reports whether '->' follows.
func (p *Parser) looksLikeFunctionType() bool {
	depth := 0
	i := p.pos
	for {
		k := p.tokens[p.significant[i]].Kind
		switch k {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				next := p.tokens[p.significant[minInt(i+1, len(p.significant)-1)]].Kind
				return next == token.Arrow
			}
		case token.EOF:
			return false
		}
		i++
		if i >= len(p.significant) {
			return false
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (p *Parser) parseFunctionType(start token.Position, generics []ast.TypeParameter, this ast.TypeAnnotation) ast.TypeAnnotation {
	p.expect(token.LParen)
	var params []ast.FunctionTypeParam
	variadic := false
	var varargType ast.TypeAnnotation
	if !p.curIs(token.RParen) {
		for {
			if p.curIs(token.Vararg) {
				variadic = true
				p.nextToken()
				varargType = p.parseTypeAnnotation()
				break
			}
			name := ""
			if p.curIsIdentLike() && p.peekIs(token.Colon) {
				name = p.cur().Lexeme
				p.nextToken()
				p.nextToken() // ':'
			}
			typ := p.parseTypeAnnotation()
			params = append(params, ast.FunctionTypeParam{Name: name, Annotation: typ})
			if p.curIs(token.Comma) {
				p.nextToken()
				continue
			}
			break
		}
	}
	p.expect(token.RParen)
	p.expect(token.Arrow)
	ret := p.parseTypeAnnotation()
	ft := &ast.FunctionType{
		Base: ast.Base{Span: p.rangeFrom(start)}, Generics: generics, This: this,
		Params: params, Variadic: variadic, VarargType: varargType, Return: ret,
	}
	return p.maybeOptional(start, ft)
}

func (p *Parser) parseTableType() ast.TypeAnnotation {
	start := p.cur().Start
	p.nextToken() // '{'

	// Shorthand array form: `{ T }` with no key.
	if !p.curIs(token.RBrace) && !p.curIs(token.LBracket) && !(p.curIsIdentLike() && p.peekIs(token.Colon)) {
		elem := p.parseTypeAnnotation()
		if p.curIs(token.RBrace) {
			p.nextToken()
			return p.maybeOptional(start, &ast.TableType{Base: ast.Base{Span: p.rangeFrom(start)}, Array: true, ArrayElem: elem})
		}
		// Fall through: wasn't actually the shorthand form (rare); treat as
		// a single positional property named "1" to stay well-formed.
		tt := &ast.TableType{Base: ast.Base{Span: p.rangeFrom(start)}}
		tt.Properties = append(tt.Properties, ast.TableTypeProperty{Name: "1", Type: elem})
		for p.curIs(token.Comma) || p.curIs(token.Semicolon) {
			p.nextToken()
			p.parseTableTypeMember(tt)
		}
		p.expect(token.RBrace)
		return p.maybeOptional(start, tt)
	}

	tt := &ast.TableType{Base: ast.Base{Span: p.rangeFrom(start)}}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		p.parseTableTypeMember(tt)
		if p.curIs(token.Comma) || p.curIs(token.Semicolon) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.RBrace)
	return p.maybeOptional(start, tt)
}

func (p *Parser) parseTableTypeMember(tt *ast.TableType) {
	readonly := false
	if p.curIs(token.Identifier) && p.cur().Lexeme == "read" && (p.peekIs(token.LBracket) || p.curIsIdentLikeAt(1)) {
		readonly = true
		p.nextToken()
	}
	if p.curIs(token.LBracket) {
		p.nextToken()
		keyType := p.parseTypeAnnotation()
		p.expect(token.RBracket)
		p.expect(token.Colon)
		valType := p.parseTypeAnnotation()
		tt.Indexer = &ast.TableTypeIndexer{KeyType: keyType, ValueType: valType}
		return
	}
	name, _ := p.expectIdent()
	p.expect(token.Colon)
	typ := p.parseTypeAnnotation()
	_, optional := typ.(*ast.OptionalType)
	tt.Properties = append(tt.Properties, ast.TableTypeProperty{Name: name, Type: typ, Readonly: readonly, Optional: optional})
}

func (p *Parser) curIsIdentLikeAt(n int) bool {
	k := p.peek(n).Kind
	return k == token.Identifier || token.IsContextualKeyword(k)
}

func (p *Parser) parseVariadicType() ast.TypeAnnotation {
	start := p.cur().Start
	p.nextToken() // '...'
	elem := p.parsePrimaryType()
	return &ast.VariadicType{Base: ast.Base{Span: p.rangeFrom(start)}, Element: elem}
}

func (p *Parser) parseStringLiteralType() ast.TypeAnnotation {
	start := p.cur().Start
	raw := p.cur().Lexeme
	p.nextToken()
	lt := &ast.LiteralType{Base: ast.Base{Span: p.rangeFrom(start)}, Kind: ast.LiteralTypeString, StringValue: decodeStringLexeme(raw)}
	return p.maybeOptional(start, lt)
}

func (p *Parser) parseBoolLiteralType() ast.TypeAnnotation {
	start := p.cur().Start
	val := p.cur().Kind == token.True
	p.nextToken()
	lt := &ast.LiteralType{Base: ast.Base{Span: p.rangeFrom(start)}, Kind: ast.LiteralTypeBool, BoolValue: val}
	return p.maybeOptional(start, lt)
}

func (p *Parser) parseNumberLiteralType() ast.TypeAnnotation {
	start := p.cur().Start
	raw := p.cur().Lexeme
	p.nextToken()
	lt := &ast.LiteralType{Base: ast.Base{Span: p.rangeFrom(start)}, Kind: ast.LiteralTypeNumber, NumberValue: parseNumber(raw)}
	return p.maybeOptional(start, lt)
}

// parseReferenceType parses `Ident("." Ident)? ("<" type ("," type)* ">")?`
// with an optional trailing '?'. A leading '<' (a generic function type,
// `<T>(params) -> R`) is routed to parseFunctionType instead.
func (p *Parser) parseReferenceType() ast.TypeAnnotation {
	start := p.cur().Start
	if p.curIs(token.LessThan) {
		generics := p.parseGenericsOpt()
		return p.parseFunctionType(start, generics, nil)
	}
	name, _ := p.expectIdent()
	module := ""
	if p.curIs(token.Dot) {
		p.nextToken()
		module = name
		name, _ = p.expectIdent()
	}
	var typeArgs []ast.TypeAnnotation
	if p.curIs(token.LessThan) {
		p.nextToken()
		for {
			typeArgs = append(typeArgs, p.parseTypeAnnotation())
			if p.curIs(token.Comma) {
				p.nextToken()
				continue
			}
			break
		}
		p.expect(token.GreaterThan)
	}
	ref := &ast.TypeReference{Base: ast.Base{Span: p.rangeFrom(start)}, Module: module, Name: name, TypeArgs: typeArgs}
	return p.maybeOptional(start, ref)
}

// maybeOptional wraps t in an OptionalType if a trailing '?' follows.
func (p *Parser) maybeOptional(start token.Position, t ast.TypeAnnotation) ast.TypeAnnotation {
	if p.curIs(token.Question) {
		p.nextToken()
		return &ast.OptionalType{Base: ast.Base{Span: p.rangeFrom(start)}, Inner: t}
	}
	return t
}
