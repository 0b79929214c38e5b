package checker

import (
	"strings"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/env"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

// resolveType turns a parsed type annotation into a checker-level Type.
func (c *Checker) resolveType(ann ast.TypeAnnotation) types.Type {
	if ann == nil {
		return types.Any
	}
	switch t := ann.(type) {
	case *ast.TypeReference:
		return c.resolveTypeReference(t)
	case *ast.LiteralType:
		return c.resolveLiteralType(t)
	case *ast.FunctionType:
		return c.resolveFunctionType(t)
	case *ast.TableType:
		return c.resolveTableType(t)
	case *ast.UnionType:
		members := make([]types.Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = c.resolveType(m)
		}
		return types.NewUnion(members...)
	case *ast.IntersectionType:
		members := make([]types.Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = c.resolveType(m)
		}
		return types.NewIntersection(members...)
	case *ast.OptionalType:
		return types.NewOptional(c.resolveType(t.Inner))
	case *ast.TypeofType:
		return c.inferExpression(t.Expr)
	case *ast.VariadicType:
		return types.Variadic{Element: c.resolveType(t.Element)}
	case *ast.ParenType:
		return c.resolveType(t.Inner)
	case *ast.ErrorType:
		return types.ErrorType{Message: t.Message}
	default:
		return types.Unknown
	}
}

func (c *Checker) resolveLiteralType(t *ast.LiteralType) types.Type {
	switch t.Kind {
	case ast.LiteralTypeString:
		return types.Literal{Base: types.LiteralBaseString, SVal: t.StringValue}
	case ast.LiteralTypeBool:
		return types.Literal{Base: types.LiteralBaseBoolean, BVal: t.BoolValue}
	case ast.LiteralTypeNumber:
		return types.Literal{Base: types.LiteralBaseNumber, NVal: t.NumberValue}
	default:
		return types.Unknown
	}
}

func (c *Checker) resolveFunctionType(t *ast.FunctionType) types.Type {
	params := make([]types.FuncParam, len(t.Params))
	for i, p := range t.Params {
		pt := c.resolveType(p.Annotation)
		_, optional := pt.(types.Optional)
		params[i] = types.FuncParam{Name: p.Name, Type: pt, Optional: optional}
	}
	var variadicOf types.Type
	if t.Variadic {
		variadicOf = c.resolveType(t.VarargType)
	}
	var this types.Type
	if t.This != nil {
		this = c.resolveType(t.This)
	}
	generics := make([]types.TypeParam, len(t.Generics))
	for i, g := range t.Generics {
		generics[i] = types.TypeParam{Name: g.Name}
	}
	return types.Function{
		Generics: generics, This: this, Params: params,
		Variadic: t.Variadic, VariadicOf: variadicOf, Return: c.resolveType(t.Return),
	}
}

func (c *Checker) resolveTableType(t *ast.TableType) types.Type {
	if t.Array {
		return &types.Table{Array: true, ArrayElem: c.resolveType(t.ArrayElem)}
	}
	tbl := types.NewTable()
	for _, p := range t.Properties {
		tbl.Set(p.Name, types.Property{
			Type: c.resolveType(p.Type), Readonly: p.Readonly, Optional: p.Optional, Deprecated: p.Deprecated,
		})
	}
	if t.Indexer != nil {
		tbl.IndexKey = c.resolveType(t.Indexer.KeyType)
		tbl.IndexVal = c.resolveType(t.Indexer.ValueType)
	}
	return tbl
}

// resolveTypeReference resolves a named type: primitives, `Enum.X`
// qualified references, type aliases (generic or not), classes, and enums.
// An unresolved name emits E010 and returns Any so later inference doesn't
// cascade unrelated failures off a missing type.
func (c *Checker) resolveTypeReference(t *ast.TypeReference) types.Type {
	if t.Module == "Enum" {
		if en, ok := c.env.LookupEnum(t.Name); ok {
			return en
		}
		return types.Reference{Name: t.Name, Module: "Enum"}
	}
	if t.Module == "" {
		if p, ok := primitiveByName(t.Name); ok {
			return p
		}
		if generic, ok := c.genericAliases[t.Name]; ok {
			return c.instantiateGeneric(generic, t.TypeArgs)
		}
		if alias, ok := c.env.LookupTypeAlias(t.Name); ok {
			return alias
		}
		if cls, ok := c.env.LookupClass(t.Name); ok {
			return cls
		}
		if en, ok := c.env.LookupEnum(t.Name); ok {
			return en
		}
	}
	c.diags.errorf(E010, t.Range(), "unknown type %q", t.Name)
	return types.Any
}

func primitiveByName(name string) (types.Type, bool) {
	switch name {
	case "nil":
		return types.Nil, true
	case "boolean", "bool":
		return types.Boolean, true
	case "number":
		return types.Number, true
	case "string":
		return types.String, true
	case "thread":
		return types.Thread, true
	case "buffer":
		return types.Buffer, true
	case "vector":
		return types.Vector, true
	case "any":
		return types.Any, true
	case "unknown":
		return types.Unknown, true
	case "never":
		return types.Never, true
	default:
		return nil, false
	}
}

// checkTypeAlias implements spec §4.6's two-phase alias binding. Generic
// aliases are stashed by name for on-demand instantiation (see
// instantiateGeneric); non-generic aliases use a types.Lazy placeholder so
// the body may refer to the alias name before it is fully resolved.
func (c *Checker) checkTypeAlias(stmt *ast.TypeAliasStatement) {
	if len(stmt.Generics) > 0 {
		c.genericAliases[stmt.Name] = stmt
		return
	}
	lazy := types.NewLazy(nil)
	c.env.DefineTypeAlias(stmt.Name, lazy)
	bodyType := c.resolveType(stmt.Body)
	lazy.Thunk = func() types.Type { return bodyType }
	c.env.DefineSymbol(stmt.Name, lazy, env.SymTypeAlias, false, docString(stmt.Doc))
}

// instantiateGeneric resolves generic[args] to a concrete type, caching by a
// string key of the argument list so recursive references within the alias
// body (e.g. `type List<T> = {value: T, next: List<T>?}`) resolve to the
// same instance instead of looping forever, and distinct argument tuples
// (List<number> vs List<string>) produce structurally distinct types.
func (c *Checker) instantiateGeneric(stmt *ast.TypeAliasStatement, argAnns []ast.TypeAnnotation) types.Type {
	args := make([]types.Type, len(stmt.Generics))
	for i := range stmt.Generics {
		if i < len(argAnns) {
			args[i] = c.resolveType(argAnns[i])
		} else if stmt.Generics[i].Default != nil {
			args[i] = c.resolveType(stmt.Generics[i].Default)
		} else {
			args[i] = types.Unknown
		}
	}
	key := stmt.Name + "<" + joinTypeStrings(args) + ">"
	if cached, ok := c.instantiations[key]; ok {
		return cached
	}
	lazy := types.NewLazy(nil)
	c.instantiations[key] = lazy

	c.env.EnterScope(env.ScopeBlock)
	for i, g := range stmt.Generics {
		c.env.DefineTypeAlias(g.Name, args[i])
	}
	bodyType := c.resolveType(stmt.Body)
	c.env.ExitScope()

	lazy.Thunk = func() types.Type { return bodyType }
	return lazy
}

func joinTypeStrings(ts []types.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
