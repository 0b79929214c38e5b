package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

// narrowing is one `x:IsA("ClassName")` fact extracted from a condition.
type narrowing struct {
	name string
	cls  *types.Class
}

// collectNarrowings recognizes `x:IsA("ClassName")`, optionally parenthesized
// and optionally combined with `and`, per spec §4.6's flow-narrowing rule.
func (c *Checker) collectNarrowings(cond ast.Expression) []narrowing {
	switch e := cond.(type) {
	case *ast.ParenExpression:
		return c.collectNarrowings(e.Inner)
	case *ast.BinaryExpression:
		if e.Operator == token.And {
			return append(c.collectNarrowings(e.Left), c.collectNarrowings(e.Right)...)
		}
		return nil
	case *ast.MethodCallExpression:
		if e.Method != "IsA" || len(e.Args) != 1 {
			return nil
		}
		id, ok := e.Object.(*ast.Identifier)
		if !ok {
			return nil
		}
		lit, ok := e.Args[0].(*ast.StringLiteral)
		if !ok {
			return nil
		}
		cls, ok := c.env.LookupClass(lit.Value)
		if !ok {
			return nil
		}
		return []narrowing{{name: id.Name, cls: cls}}
	}
	return nil
}

// applyNarrowings installs each narrowing into the current scope.
func (c *Checker) applyNarrowings(ns []narrowing) {
	for _, n := range ns {
		c.env.SetNarrowing(n.name, n.cls)
	}
}
