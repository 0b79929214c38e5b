package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

// tryMethodCallSpecialForm implements spec §4.6's "Method-call inference —
// special forms", consulted before generic member lookup on a method call.
// Returns (resultType, true) when a special form matched.
func (c *Checker) tryMethodCallSpecialForm(e *ast.MethodCallExpression, objectType types.Type) (types.Type, bool) {
	switch e.Method {
	case "GetService":
		if name, ok := stringArg(e.Args, 0); ok {
			if cls, ok := c.env.LookupClass(name); ok {
				return cls, true
			}
			return types.Any, true
		}
	case "Clone":
		if cls, ok := types.Resolve(objectType).(*types.Class); ok {
			return cls, true
		}
	case "FindFirstChildOfClass", "FindFirstChildWhichIsA",
		"FindFirstAncestorOfClass", "FindFirstAncestorWhichIsA":
		if name, ok := stringArg(e.Args, 0); ok {
			if cls, ok := c.env.LookupClass(name); ok {
				return types.NewOptional(cls), true
			}
			return types.NewOptional(types.Any), true
		}
	case "Wait":
		if tbl, ok := types.Resolve(objectType).(*types.Table); ok {
			if connect, ok := tbl.Get("Connect"); ok {
				if fn, ok := types.Resolve(connect.Type).(types.Function); ok && len(fn.Params) > 0 {
					return fn.Params[0].Type, true
				}
				return types.Any, true
			}
		}
	}
	return nil, false
}

// tryInstanceNewCall implements the `Instance.new("ClassName")` special
// form, matched on the call expression before generic callee inference.
func (c *Checker) tryInstanceNewCall(e *ast.CallExpression) (types.Type, bool) {
	member, ok := e.Callee.(*ast.MemberExpression)
	if !ok || member.Name != "new" {
		return nil, false
	}
	id, ok := member.Object.(*ast.Identifier)
	if !ok || id.Name != "Instance" {
		return nil, false
	}
	name, ok := stringArg(e.Args, 0)
	if !ok {
		return nil, false
	}
	if cls, ok := c.env.LookupClass(name); ok {
		return cls, true
	}
	if cls, ok := c.env.LookupClass("Instance"); ok {
		return cls, true
	}
	return types.Any, true
}

func stringArg(args []ast.Expression, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	lit, ok := args[i].(*ast.StringLiteral)
	if !ok {
		return "", false
	}
	return lit.Value, true
}

// commonChildType consults the type universe's common-children table when a
// member access misses on a known class — e.g. `workspace.Terrain`.
func (c *Checker) commonChildType(cls *types.Class, name string) (types.Type, bool) {
	if c.universe == nil {
		return nil, false
	}
	childName, ok := c.universe.CommonChildType(cls, name, func(k *types.Class) *types.Class { return k.Super })
	if !ok {
		return nil, false
	}
	if childCls, ok := c.env.LookupClass(childName); ok {
		return childCls, true
	}
	return types.Any, true
}
