package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

func (c *Checker) inferCallExpression(n *ast.CallExpression) types.Type {
	if rt, ok := c.tryInstanceNewCall(n); ok {
		for _, a := range n.Args {
			c.inferExpression(a)
		}
		return rt
	}
	calleeType := c.inferExpression(n.Callee)
	for _, a := range n.Args {
		c.inferExpression(a)
	}
	return c.applyCall(calleeType, n.Range())
}

func (c *Checker) inferMethodCallExpression(n *ast.MethodCallExpression) types.Type {
	objType := c.inferExpression(n.Object)
	if rt, ok := c.tryMethodCallSpecialForm(n, objType); ok {
		for _, a := range n.Args {
			c.inferExpression(a)
		}
		return rt
	}
	methodType := c.lookupMember(objType, n.Method, n.Range(), true)
	for _, a := range n.Args {
		c.inferExpression(a)
	}
	return c.applyCall(methodType, n.Range())
}

// applyCall implements calling a value of type calleeType. The spec's
// diagnostic taxonomy has no argument-count/type-mismatch code, so only
// callability (E007) is checked here; the return type is the declared
// Function.Return, defaulting to nil for a value-less call.
func (c *Checker) applyCall(calleeType types.Type, rng token.Range) types.Type {
	t := types.Resolve(calleeType)
	if types.IsError(t) {
		return t
	}
	switch t.Kind() {
	case types.KindAny, types.KindUnknown:
		return types.Any
	}
	fn, ok := t.(types.Function)
	if !ok {
		c.diags.errorf(E007, rng, "cannot call a value of type %s", t.String())
		return types.ErrorType{Message: "not callable"}
	}
	if fn.Return != nil {
		return fn.Return
	}
	return types.Nil
}

func (c *Checker) inferIndexExpression(n *ast.IndexExpression) types.Type {
	objType := c.inferExpression(n.Object)
	idxType := c.inferExpression(n.Index)
	t := types.Resolve(objType)
	switch t.Kind() {
	case types.KindAny, types.KindUnknown, types.KindError:
		return t
	}
	if tbl, ok := t.(*types.Table); ok {
		if tbl.Array {
			return tbl.ArrayElem
		}
		if lit, ok := types.Resolve(idxType).(types.Literal); ok && lit.Base == types.LiteralBaseString {
			if p, ok := tbl.Get(lit.SVal); ok {
				return p.Type
			}
		}
		if tbl.IndexVal != nil {
			return tbl.IndexVal
		}
		return types.Unknown
	}
	if t.Kind() == types.KindString {
		return types.String
	}
	return types.Unknown
}

func (c *Checker) inferMemberExpression(n *ast.MemberExpression) types.Type {
	objType := c.inferExpression(n.Object)
	return c.lookupMember(objType, n.Name, n.Range(), false)
}

// lookupMember is the generic-member-lookup entry point consulted after the
// method-call special forms have had their chance. It covers classes,
// tables, strings (via the stdlib string table), and unions of the above,
// applying the deprecated-tag warning (W001) and the case-sensitivity hint
// (W002) uniformly.
func (c *Checker) lookupMember(objType types.Type, name string, rng token.Range, isMethodCall bool) types.Type {
	t := types.Resolve(objType)
	if types.IsError(t) {
		return t
	}
	switch t.Kind() {
	case types.KindAny, types.KindUnknown:
		return types.Any
	case types.KindString:
		return c.stringMemberType(name, rng, isMethodCall)
	}
	if cls, ok := t.(*types.Class); ok {
		return c.classMemberType(cls, name, rng, isMethodCall)
	}
	if tbl, ok := t.(*types.Table); ok {
		return c.tableMemberType(tbl, name, rng, isMethodCall)
	}
	if u, ok := t.(types.Union); ok {
		var result types.Type
		for _, m := range u.Members {
			mt := c.lookupMember(m, name, rng, isMethodCall)
			if result == nil {
				result = mt
			} else {
				result = types.CommonType(result, mt, c.ctx)
			}
		}
		if result == nil {
			return types.Any
		}
		return result
	}
	c.missingMember(t, name, rng, isMethodCall)
	return types.ErrorType{Message: "member not found"}
}

func (c *Checker) missingMember(t types.Type, name string, rng token.Range, isMethodCall bool) {
	kind := "property"
	code := E009
	if isMethodCall {
		kind = "method"
		code = E008
	}
	c.diags.errorf(code, rng, "%s %q not found on %s", kind, name, t.String())
}

func (c *Checker) stringMemberType(name string, rng token.Range, isMethodCall bool) types.Type {
	sym, ok := c.env.LookupSymbol("string")
	if !ok {
		return types.Any
	}
	tbl, ok := types.Resolve(sym.Type).(*types.Table)
	if !ok {
		return types.Any
	}
	if p, ok := tbl.Get(name); ok {
		return p.Type
	}
	c.missingMember(types.String, name, rng, isMethodCall)
	return types.ErrorType{Message: "member not found"}
}

func (c *Checker) tableMemberType(tbl *types.Table, name string, rng token.Range, isMethodCall bool) types.Type {
	if p, ok := tbl.Get(name); ok {
		if p.Deprecated != "" {
			c.diags.warnf(W001, rng, []Tag{TagDeprecated}, "%q is deprecated: %s", name, p.Deprecated)
		}
		return p.Type
	}
	if canon, ok := suggestCanonical(name); ok {
		if p, ok := tbl.Get(canon); ok {
			c.diags.warnf(W002, rng, nil, "%q should be %q", name, canon)
			return p.Type
		}
	}
	if tbl.IndexVal != nil {
		return tbl.IndexVal
	}
	c.missingMember(tbl, name, rng, isMethodCall)
	return types.ErrorType{Message: "member not found"}
}

// classMemberType resolves a property, method, or event on a class
// (inherited chain included), falling back to the case-sensitivity hint and
// then the type universe's common-children lookup before giving up.
func (c *Checker) classMemberType(cls *types.Class, name string, rng token.Range, isMethodCall bool) types.Type {
	if t, deprecated, ok := c.classMemberDirect(cls, name, isMethodCall); ok {
		if deprecated != "" {
			c.diags.warnf(W001, rng, []Tag{TagDeprecated}, "%q is deprecated: %s", name, deprecated)
		}
		return t
	}
	if canon, ok := suggestCanonical(name); ok {
		if t, deprecated, ok := c.classMemberDirect(cls, canon, isMethodCall); ok {
			c.diags.warnf(W002, rng, nil, "%q should be %q", name, canon)
			if deprecated != "" {
				c.diags.warnf(W001, rng, []Tag{TagDeprecated}, "%q is deprecated: %s", canon, deprecated)
			}
			return t
		}
	}
	if !isMethodCall {
		if ct, ok := c.commonChildType(cls, name); ok {
			return ct
		}
	}
	c.missingMember(cls, name, rng, isMethodCall)
	return types.ErrorType{Message: "member not found"}
}

// classMemberDirect resolves name without the case-sensitivity or
// common-children fallbacks, returning any deprecation tag alongside the
// type so the caller can decide where to attach the W001 warning.
func (c *Checker) classMemberDirect(cls *types.Class, name string, isMethodCall bool) (types.Type, string, bool) {
	if isMethodCall {
		if m, ok := cls.LookupMethod(name); ok {
			return *m, "", true
		}
		return nil, "", false
	}
	if p, ok := cls.LookupProp(name); ok {
		return p.Type, p.Deprecated, true
	}
	if m, ok := cls.LookupMethod(name); ok {
		return *m, "", true
	}
	if ev, ok := cls.LookupEvent(name); ok {
		return ev, "", true
	}
	return nil, "", false
}
