package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/env"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

// inferExpression infers e's type bottom-up, firing diagnostics as side
// effects even when the caller discards the result (spec §4.6 "Walk").
func (c *Checker) inferExpression(e ast.Expression) types.Type {
	switch n := e.(type) {
	case *ast.NilLiteral:
		return types.Nil
	case *ast.BoolLiteral:
		return types.Literal{Base: types.LiteralBaseBoolean, BVal: n.Value}
	case *ast.NumberLiteral:
		return types.Literal{Base: types.LiteralBaseNumber, NVal: n.Value}
	case *ast.StringLiteral:
		return types.Literal{Base: types.LiteralBaseString, SVal: n.Value}
	case *ast.InterpolatedStringExpression:
		for _, part := range n.Parts {
			if part.Expression != nil {
				c.inferExpression(part.Expression)
			}
		}
		return types.String
	case *ast.VarargExpression:
		return c.varargType()
	case *ast.Identifier:
		return c.inferIdentifier(n)
	case *ast.FunctionExpression:
		return c.checkFunctionLiteral(n, nil)
	case *ast.TableConstructorExpression:
		return c.inferTableConstructor(n)
	case *ast.BinaryExpression:
		return c.inferBinaryExpr(n)
	case *ast.UnaryExpression:
		return c.inferUnaryExpr(n)
	case *ast.ParenExpression:
		return c.inferExpression(n.Inner)
	case *ast.CallExpression:
		return c.inferCallExpression(n)
	case *ast.MethodCallExpression:
		return c.inferMethodCallExpression(n)
	case *ast.IndexExpression:
		return c.inferIndexExpression(n)
	case *ast.MemberExpression:
		return c.inferMemberExpression(n)
	case *ast.IfExpression:
		return c.inferIfExpression(n)
	case *ast.TypeCastExpression:
		c.inferExpression(n.Expr)
		return c.resolveType(n.Type)
	case *ast.ErrorExpression:
		return types.ErrorType{Message: n.Message}
	default:
		return types.Unknown
	}
}

func (c *Checker) varargType() types.Type {
	if sym, ok := c.env.LookupSymbol("..."); ok {
		return sym.Type
	}
	return types.Any
}

func (c *Checker) inferIdentifier(n *ast.Identifier) types.Type {
	sym, ok := c.env.LookupSymbol(n.Name)
	if !ok {
		if c.ctx.Mode == types.ModeStrict {
			c.diags.errorf(E006, n.Range(), "unknown identifier %q", n.Name)
		}
		return types.Any
	}
	return sym.Type
}

func (c *Checker) inferIfExpression(n *ast.IfExpression) types.Type {
	c.inferExpression(n.Condition)
	thenType := c.inferExpression(n.Then)
	result := thenType
	for _, ei := range n.ElseIfs {
		c.inferExpression(ei.Condition)
		result = types.CommonType(result, c.inferExpression(ei.Then), c.ctx)
	}
	if n.Else != nil {
		result = types.CommonType(result, c.inferExpression(n.Else), c.ctx)
	}
	return result
}

func (c *Checker) inferUnaryExpr(n *ast.UnaryExpression) types.Type {
	operand := c.inferExpression(n.Operand)
	switch n.Operator {
	case token.Not:
		return types.Boolean
	case token.Hash:
		return types.Number
	case token.Minus:
		if !c.isNumericCompatible(operand) {
			c.diags.errorf(E011, n.Range(), "unary '-' requires a numeric-compatible operand, got %s", operand.String())
			return types.ErrorType{Message: "arithmetic operand mismatch"}
		}
		if isMathNamed(operand) || hasNumericSignature(operand) {
			return operand
		}
		return types.Number
	default:
		return types.Unknown
	}
}

func (c *Checker) inferBinaryExpr(n *ast.BinaryExpression) types.Type {
	if n.Operator == token.And {
		left := c.inferExpression(n.Left)
		ns := c.collectNarrowings(n.Left)
		c.env.EnterScope(env.ScopeConditional)
		c.applyNarrowings(ns)
		right := c.inferExpression(n.Right)
		c.env.ExitScope()
		return c.inferBinary(n.Operator, left, right, n.Range())
	}
	left := c.inferExpression(n.Left)
	right := c.inferExpression(n.Right)
	return c.inferBinary(n.Operator, left, right, n.Range())
}

func (c *Checker) inferTableConstructor(n *ast.TableConstructorExpression) types.Type {
	tbl := types.NewTable()
	var arrayElems []types.Type
	allArray := true
	for _, f := range n.Fields {
		switch f.Kind {
		case ast.TableFieldArray:
			arrayElems = append(arrayElems, c.inferExpression(f.Value))
		case ast.TableFieldKeyed:
			allArray = false
			tbl.Set(f.Key, types.Property{Type: c.widen(c.inferExpression(f.Value))})
		case ast.TableFieldComputed:
			allArray = false
			c.inferExpression(f.Index)
			tbl.Set("", types.Property{Type: c.widen(c.inferExpression(f.Value))})
		}
	}
	if allArray {
		tbl.Array = true
		if len(arrayElems) == 0 {
			tbl.ArrayElem = types.Unknown
		} else {
			elem := arrayElems[0]
			for _, e := range arrayElems[1:] {
				elem = types.CommonType(elem, c.widen(e), c.ctx)
			}
			tbl.ArrayElem = c.widen(elem)
		}
		tbl.Props = map[string]types.Property{}
		tbl.Names = nil
	}
	return tbl
}

// inferInitializerList maps a value-expression list onto `count` target
// slots, expanding the last expression when it is a multi-value form (a
// call or `...`) per spec §4.6's supplemented vararg/multi-return rule.
// Since Function carries a single Return type rather than a list, a
// multi-value last expression fills every remaining slot with that type —
// an approximation of true multi-return forced by the data model (see
// DESIGN.md).
func (c *Checker) inferInitializerList(exprs []ast.Expression, count int) []types.Type {
	out := make([]types.Type, 0, count)
	for i, e := range exprs {
		t := c.inferExpression(e)
		if i == len(exprs)-1 && isMultiValueExpr(e) {
			for len(out) < count {
				out = append(out, t)
			}
			continue
		}
		if len(out) < count {
			out = append(out, t)
		}
	}
	for len(out) < count {
		out = append(out, types.Nil)
	}
	return out
}

func isMultiValueExpr(e ast.Expression) bool {
	switch e.(type) {
	case *ast.CallExpression, *ast.MethodCallExpression, *ast.VarargExpression:
		return true
	}
	return false
}

// widen implements spec §4.6's literal-widening rule for mutable,
// unannotated local bindings.
func (c *Checker) widen(t types.Type) types.Type {
	switch v := types.Resolve(t).(type) {
	case types.Literal:
		return v.BaseType()
	default:
		if v.Kind() == types.KindNil {
			return types.Any
		}
		return t
	}
}
