package env

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

func TestDefineAndLookupSymbol(t *testing.T) {
	e := New()
	e.DefineSymbol("x", types.Number, SymVariable, true, "")

	sym, ok := e.LookupSymbol("x")
	if !ok {
		t.Fatalf("expected to find x")
	}
	if sym.Type != types.Number {
		t.Fatalf("expected x: number, got %v", sym.Type)
	}
}

func TestLookupSymbolWalksToParentScope(t *testing.T) {
	e := New()
	e.DefineSymbol("outer", types.String, SymVariable, false, "")
	e.EnterScope(ScopeBlock)

	sym, ok := e.LookupSymbol("outer")
	if !ok || sym.Type != types.String {
		t.Fatalf("expected inner scope to see outer symbol")
	}
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	e := New()
	e.DefineSymbol("x", types.Number, SymVariable, true, "")
	e.EnterScope(ScopeBlock)
	e.DefineSymbol("x", types.String, SymVariable, true, "")

	sym, _ := e.LookupSymbol("x")
	if sym.Type != types.String {
		t.Fatalf("expected inner definition to shadow outer, got %v", sym.Type)
	}

	e.ExitScope()
	sym, _ = e.LookupSymbol("x")
	if sym.Type != types.Number {
		t.Fatalf("expected outer definition to reappear after exiting the shadowing scope, got %v", sym.Type)
	}
}

func TestExitingGlobalScopePanics(t *testing.T) {
	e := New()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected ExitScope on the global scope to panic")
		}
	}()
	e.ExitScope()
}

func TestLookupSymbolMiss(t *testing.T) {
	e := New()
	if _, ok := e.LookupSymbol("nope"); ok {
		t.Fatalf("expected lookup miss for an undefined symbol")
	}
}

func TestTypeAliasLookupWalksScopeChain(t *testing.T) {
	e := New()
	e.DefineTypeAlias("Point", types.NewTable())
	e.EnterScope(ScopeBlock)

	if _, ok := e.LookupTypeAlias("Point"); !ok {
		t.Fatalf("expected to find Point from a nested scope")
	}
	if _, ok := e.LookupTypeAlias("Missing"); ok {
		t.Fatalf("did not expect to find an undefined alias")
	}
}

func TestClassAndEnumRegistriesAreEnvironmentGlobal(t *testing.T) {
	e := New()
	part := types.NewClass("Part")
	e.DefineClass(part)
	e.EnterScope(ScopeFunction)

	got, ok := e.LookupClass("Part")
	if !ok || got != part {
		t.Fatalf("expected class registry lookups to ignore scope nesting")
	}

	material := types.NewEnum("Material")
	e.DefineEnum(material)
	if got, ok := e.LookupEnum("Material"); !ok || got != material {
		t.Fatalf("expected to find the registered enum")
	}
}

func TestLookupTypeNamePrefersAliasOverClass(t *testing.T) {
	e := New()
	alias := types.NewTable()
	e.DefineClass(types.NewClass("Widget"))
	e.DefineTypeAlias("Widget", alias)

	got, ok := e.LookupTypeName("Widget")
	if !ok || got != types.Type(alias) {
		t.Fatalf("expected the type alias to take precedence over the class of the same name")
	}
}

func TestIsInLoopScopeStopsAtFunctionBoundary(t *testing.T) {
	e := New()
	e.EnterScope(ScopeLoop)
	if !e.IsInLoopScope() {
		t.Fatalf("expected to be inside a loop scope")
	}

	e.EnterScope(ScopeFunction)
	if e.IsInLoopScope() {
		t.Fatalf("expected a nested function scope to block break/continue validity")
	}

	e.EnterScope(ScopeBlock)
	if e.IsInLoopScope() {
		t.Fatalf("expected the function boundary to still apply through further nested blocks")
	}
}

func TestSetNarrowingOverridesLookupTypeWithinScope(t *testing.T) {
	e := New()
	e.DefineSymbol("part", types.NewUnion(types.NewClass("Part"), types.Nil), SymVariable, false, "")

	e.EnterScope(ScopeConditional)
	narrowClass := types.NewClass("Part")
	e.SetNarrowing("part", narrowClass)

	sym, ok := e.LookupSymbol("part")
	if !ok {
		t.Fatalf("expected to find narrowed symbol")
	}
	if sym.Type != types.Type(narrowClass) {
		t.Fatalf("expected narrowed type to take effect, got %v", sym.Type)
	}

	e.ExitScope()
	sym, _ = e.LookupSymbol("part")
	if _, ok := sym.Type.(types.Union); !ok {
		t.Fatalf("expected the narrowing to no longer apply outside its scope, got %T", sym.Type)
	}
}

func TestAllSymbolNamesCollectsAcrossScopeChainWithoutDuplicates(t *testing.T) {
	e := New()
	e.DefineSymbol("a", types.Number, SymVariable, false, "")
	e.EnterScope(ScopeBlock)
	e.DefineSymbol("b", types.Number, SymVariable, false, "")
	e.DefineSymbol("a", types.String, SymVariable, false, "") // shadow, still one name

	names := e.AllSymbolNames()
	seen := map[string]int{}
	for _, n := range names {
		seen[n]++
	}
	if seen["a"] != 1 || seen["b"] != 1 {
		t.Fatalf("expected each name once regardless of shadowing, got %v", seen)
	}
}
