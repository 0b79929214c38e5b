package parser

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// parseStatement dispatches on the leading token (spec §4.3). The fallback
// path treats an unrecognized leading token as the start of an expression
// statement, which resolves to an assignment, compound assignment, or call
// statement depending on what follows.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Kind {
	case token.Semicolon:
		p.nextToken()
		return nil
	case token.Local:
		return p.parseLocal()
	case token.Function:
		return p.parseFunctionDecl()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Repeat:
		return p.parseRepeat()
	case token.For:
		return p.parseFor()
	case token.Do:
		return p.parseDo()
	case token.Return:
		return p.parseReturn()
	case token.Break:
		start := p.cur().Start
		p.nextToken()
		return &ast.BreakStatement{Base: ast.Base{Span: p.rangeFrom(start)}}
	case token.Continue:
		start := p.cur().Start
		p.nextToken()
		return &ast.ContinueStatement{Base: ast.Base{Span: p.rangeFrom(start)}}
	case token.Type:
		return p.parseTypeAlias(nil)
	case token.Export:
		return p.parseExport()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockUntil(terminators ...token.Kind) []ast.Statement {
	isTerm := func(k token.Kind) bool {
		for _, t := range terminators {
			if k == t {
				return true
			}
		}
		return false
	}
	var stmts []ast.Statement
	for !isTerm(p.cur().Kind) && !p.curIs(token.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.nextToken()
		}
	}
	return stmts
}

func (p *Parser) parseLocal() ast.Statement {
	doc := p.docCommentBefore()
	start := p.cur().Start
	p.nextToken() // consume 'local'

	if p.curIs(token.Function) {
		p.nextToken()
		name, _ := p.expectIdent()
		fn := p.parseFunctionBody(nil)
		return &ast.LocalFunctionDecl{
			Base: ast.Base{Span: p.rangeFrom(start)},
			Name: name,
			Fn:   fn,
			Doc:  doc,
		}
	}

	var names []string
	var nameRanges []token.Range
	var annotations []ast.TypeAnnotation
	for {
		nameStart := p.cur().Start
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		names = append(names, name)
		nameRanges = append(nameRanges, p.rangeFrom(nameStart))
		if p.curIs(token.Colon) {
			p.nextToken()
			annotations = append(annotations, p.parseTypeAnnotation())
		} else {
			annotations = append(annotations, nil)
		}
		if p.curIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}

	var inits []ast.Expression
	if p.curIs(token.Assign) {
		p.nextToken()
		inits = p.parseExpressionList()
	}

	return &ast.LocalDecl{
		Base:         ast.Base{Span: p.rangeFrom(start)},
		Names:        names,
		NameRanges:   nameRanges,
		Annotations:  annotations,
		Initializers: inits,
		Doc:          doc,
	}
}

// parseFunctionDecl parses `function a.b:c(...) ... end` / `function f(...) ... end`.
func (p *Parser) parseFunctionDecl() ast.Statement {
	doc := p.docCommentBefore()
	start := p.cur().Start
	p.nextToken() // consume 'function'

	var namePath []string
	first, _ := p.expectIdent()
	namePath = append(namePath, first)
	for p.curIs(token.Dot) {
		p.nextToken()
		name, _ := p.expectIdent()
		namePath = append(namePath, name)
	}
	method := ""
	var thisType ast.TypeAnnotation
	if p.curIs(token.Colon) {
		p.nextToken()
		method, _ = p.expectIdent()
		thisType = &ast.TypeReference{Name: "self"}
	}

	fn := p.parseFunctionBody(thisType)
	return &ast.FunctionDecl{
		Base:     ast.Base{Span: p.rangeFrom(start)},
		NamePath: namePath,
		Method:   method,
		Fn:       fn,
		Doc:      doc,
	}
}

// parseFunctionBody parses the `(params) -> T ... end` tail shared by
// function expressions, function declarations, and local function decls.
// thisAnnotation, when non-nil, is stamped as the implicit self parameter's
// type (spec §4.6's supplemented self-parameter inference).
func (p *Parser) parseFunctionBody(thisAnnotation ast.TypeAnnotation) *ast.FunctionExpression {
	start := p.cur().Start
	generics := p.parseGenericsOpt()
	p.expect(token.LParen)

	var params []ast.Param
	variadic := false
	var varargType ast.TypeAnnotation
	if !p.curIs(token.RParen) {
		for {
			if p.curIs(token.Vararg) {
				variadic = true
				p.nextToken()
				if p.curIs(token.Colon) {
					p.nextToken()
					varargType = p.parseTypeAnnotation()
				}
				break
			}
			pStart := p.cur().Start
			name, _ := p.expectIdent()
			var annotation ast.TypeAnnotation
			if p.curIs(token.Colon) {
				p.nextToken()
				annotation = p.parseTypeAnnotation()
			}
			_, optional := annotation.(*ast.OptionalType)
			params = append(params, ast.Param{Name: name, Annotation: annotation, Optional: optional, Rng: p.rangeFrom(pStart)})
			if p.curIs(token.Comma) {
				p.nextToken()
				continue
			}
			break
		}
	}
	p.expect(token.RParen)

	var returnType ast.TypeAnnotation
	if p.curIs(token.Colon) {
		p.nextToken()
		returnType = p.parseTypeAnnotation()
	} else if p.curIs(token.Arrow) {
		p.nextToken()
		returnType = p.parseTypeAnnotation()
	}

	p.pushBlock("function")
	body := p.parseBlockUntil(token.End)
	p.popBlock()
	if !p.expect(token.End) {
		p.synchronize()
	}

	return &ast.FunctionExpression{
		Base:       ast.Base{Span: p.rangeFrom(start)},
		Generics:   generics,
		This:       thisAnnotation,
		Params:     params,
		Variadic:   variadic,
		VarargType: varargType,
		ReturnType: returnType,
		Body:       body,
	}
}

func (p *Parser) parseGenericsOpt() []ast.TypeParameter {
	if !p.curIs(token.LessThan) {
		return nil
	}
	p.nextToken()
	var params []ast.TypeParameter
	for {
		name, _ := p.expectIdent()
		tp := ast.TypeParameter{Name: name}
		if p.curIs(token.Colon) {
			p.nextToken()
			tp.Constraint = p.parseTypeAnnotation()
		}
		if p.curIs(token.Assign) {
			p.nextToken()
			tp.Default = p.parseTypeAnnotation()
		}
		params = append(params, tp)
		if p.curIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(token.GreaterThan)
	return params
}

func (p *Parser) parseIf() ast.Statement {
	start := p.cur().Start
	p.nextToken() // 'if'
	cond := p.parseExpression(LOWEST)
	p.expect(token.Then)
	p.pushBlock("if")
	then := p.parseBlockUntil(token.Elseif, token.Else, token.End)
	p.popBlock()

	var elseIfs []ast.ElseIf
	for p.curIs(token.Elseif) {
		p.nextToken()
		c := p.parseExpression(LOWEST)
		p.expect(token.Then)
		p.pushBlock("elseif")
		body := p.parseBlockUntil(token.Elseif, token.Else, token.End)
		p.popBlock()
		elseIfs = append(elseIfs, ast.ElseIf{Condition: c, Body: body})
	}

	var elseBody []ast.Statement
	if p.curIs(token.Else) {
		p.nextToken()
		p.pushBlock("else")
		elseBody = p.parseBlockUntil(token.End)
		p.popBlock()
	}
	if !p.expect(token.End) {
		p.synchronize()
	}
	return &ast.IfStatement{
		Base:      ast.Base{Span: p.rangeFrom(start)},
		Condition: cond,
		Then:      then,
		ElseIfs:   elseIfs,
		Else:      elseBody,
	}
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.cur().Start
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	p.expect(token.Do)
	p.pushBlock("while")
	body := p.parseBlockUntil(token.End)
	p.popBlock()
	if !p.expect(token.End) {
		p.synchronize()
	}
	return &ast.WhileStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Condition: cond, Body: body}
}

func (p *Parser) parseRepeat() ast.Statement {
	start := p.cur().Start
	p.nextToken()
	p.pushBlock("repeat")
	body := p.parseBlockUntil(token.Until)
	p.popBlock()
	if !p.expect(token.Until) {
		p.synchronize()
		return &ast.RepeatStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Body: body}
	}
	cond := p.parseExpression(LOWEST)
	return &ast.RepeatStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Body: body, Condition: cond}
}

// parseFor dispatches between numeric-for and generic-for by looking ahead
// past the first name for '=' vs ',' / 'in'.
func (p *Parser) parseFor() ast.Statement {
	start := p.cur().Start
	p.nextToken() // 'for'

	firstName, _ := p.expectIdent()
	if p.curIs(token.Assign) {
		p.nextToken()
		from := p.parseExpression(LOWEST)
		p.expect(token.Comma)
		to := p.parseExpression(LOWEST)
		var step ast.Expression
		if p.curIs(token.Comma) {
			p.nextToken()
			step = p.parseExpression(LOWEST)
		}
		p.expect(token.Do)
		p.pushBlock("for")
		body := p.parseBlockUntil(token.End)
		p.popBlock()
		if !p.expect(token.End) {
			p.synchronize()
		}
		return &ast.NumericForStatement{
			Base: ast.Base{Span: p.rangeFrom(start)}, Variable: firstName,
			Start: from, Stop: to, Step: step, Body: body,
		}
	}

	names := []string{firstName}
	for p.curIs(token.Comma) {
		p.nextToken()
		n, _ := p.expectIdent()
		names = append(names, n)
	}
	p.expect(token.In)
	exprs := p.parseExpressionList()
	p.expect(token.Do)
	p.pushBlock("for")
	body := p.parseBlockUntil(token.End)
	p.popBlock()
	if !p.expect(token.End) {
		p.synchronize()
	}
	return &ast.GenericForStatement{
		Base: ast.Base{Span: p.rangeFrom(start)}, Names: names, Expressions: exprs, Body: body,
	}
}

func (p *Parser) parseDo() ast.Statement {
	start := p.cur().Start
	p.nextToken()
	p.pushBlock("do")
	body := p.parseBlockUntil(token.End)
	p.popBlock()
	if !p.expect(token.End) {
		p.synchronize()
	}
	return &ast.DoStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.cur().Start
	p.nextToken()
	var values []ast.Expression
	if !p.atBlockEnd() {
		values = p.parseExpressionList()
	}
	return &ast.ReturnStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Values: values}
}

// atBlockEnd reports whether the current token could plausibly end a
// return-value list: a block terminator, ';', or EOF.
func (p *Parser) atBlockEnd() bool {
	switch p.cur().Kind {
	case token.End, token.Else, token.Elseif, token.Until, token.Semicolon, token.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) parseTypeAlias(export *ast.ExportStatement) ast.Statement {
	doc := p.docCommentBefore()
	start := p.cur().Start
	p.nextToken() // 'type'
	name, _ := p.expectIdent()
	generics := p.parseGenericsOpt()
	p.expect(token.Assign)
	body := p.parseTypeAnnotation()
	alias := &ast.TypeAliasStatement{
		Base: ast.Base{Span: p.rangeFrom(start)}, Name: name, Generics: generics, Body: body, Doc: doc,
	}
	return alias
}

func (p *Parser) parseExport() ast.Statement {
	start := p.cur().Start
	p.nextToken() // 'export'
	if !p.curIs(token.Type) {
		p.errorf("expected 'type' after 'export', got %s", p.cur().Kind)
		p.synchronize()
		return &ast.ErrorStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "expected 'type' after 'export'"}
	}
	alias := p.parseTypeAlias(nil).(*ast.TypeAliasStatement)
	return &ast.ExportStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Alias: alias}
}

// parseExpressionStatement handles the fallback dispatch: an assignment
// (followed by '=' or ','), a compound assignment, or a call statement.
// Anything else is an ErrorStatement.
func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.cur().Start
	first := p.parseExpression(LOWEST)

	if op, ok := compoundAssignOps[p.cur().Kind]; ok {
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.CompoundAssignStatement{
			Base: ast.Base{Span: p.rangeFrom(start)}, Target: first, Operator: op, Value: value,
		}
	}

	if p.curIs(token.Assign) || p.curIs(token.Comma) {
		targets := []ast.Expression{first}
		for p.curIs(token.Comma) {
			p.nextToken()
			targets = append(targets, p.parseExpression(LOWEST))
		}
		if !p.expect(token.Assign) {
			return &ast.ErrorStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "expected '=' in assignment"}
		}
		values := p.parseExpressionList()
		return &ast.AssignStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Targets: targets, Values: values}
	}

	switch first.(type) {
	case *ast.CallExpression, *ast.MethodCallExpression:
		return &ast.CallStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Call: first}
	}

	if _, ok := first.(*ast.ErrorExpression); ok {
		p.synchronize()
		return &ast.ErrorStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "expected statement"}
	}

	p.errorAt(p.rangeFrom(start), "expression is not a statement")
	return &ast.ErrorStatement{Base: ast.Base{Span: p.rangeFrom(start)}, Message: "expression is not a statement"}
}

func (p *Parser) parseExpressionList() []ast.Expression {
	exprs := []ast.Expression{p.parseExpression(LOWEST)}
	for p.curIs(token.Comma) {
		p.nextToken()
		exprs = append(exprs, p.parseExpression(LOWEST))
	}
	return exprs
}
