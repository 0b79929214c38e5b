package env

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

func TestPopulateBuiltinsStdlibDefinesCoreGlobals(t *testing.T) {
	e := New()
	e.PopulateBuiltins(BundleStdlib)

	for _, name := range []string{"print", "pairs", "math", "string", "table", "task"} {
		if _, ok := e.LookupSymbol(name); !ok {
			t.Fatalf("expected stdlib bundle to define %q", name)
		}
	}
	if _, ok := e.LookupSymbol("Vector3"); ok {
		t.Fatalf("did not expect the stdlib bundle alone to define Vector3")
	}
}

func TestPopulateBuiltinsBundlesAreIndependentlySelectable(t *testing.T) {
	e := New()
	e.PopulateBuiltins(BundleRobloxDatatypes)

	if _, ok := e.LookupSymbol("Vector3"); !ok {
		t.Fatalf("expected the Roblox datatypes bundle to define Vector3")
	}
	if _, ok := e.LookupSymbol("print"); ok {
		t.Fatalf("did not expect the Roblox datatypes bundle alone to define stdlib globals")
	}
	if _, ok := e.LookupSymbol("getgenv"); ok {
		t.Fatalf("did not expect the Roblox datatypes bundle alone to define executor extensions")
	}
}

func TestPopulateBuiltinsExecutorExtensions(t *testing.T) {
	e := New()
	e.PopulateBuiltins(BundleExecutorExtensions)

	for _, name := range []string{"getgenv", "crypt", "readfile", "writefile"} {
		if _, ok := e.LookupSymbol(name); !ok {
			t.Fatalf("expected executor-extensions bundle to define %q", name)
		}
	}
}

func TestPopulateBuiltinsMultipleBundlesCombine(t *testing.T) {
	e := New()
	e.PopulateBuiltins(BundleStdlib, BundleRobloxDatatypes)

	if _, ok := e.LookupSymbol("print"); !ok {
		t.Fatalf("expected print from the stdlib bundle")
	}
	if _, ok := e.LookupSymbol("Vector3"); !ok {
		t.Fatalf("expected Vector3 from the Roblox datatypes bundle")
	}
}

func TestVector3ConstructorShape(t *testing.T) {
	e := New()
	e.PopulateBuiltins(BundleRobloxDatatypes)

	sym, ok := e.LookupSymbol("Vector3")
	if !ok {
		t.Fatalf("expected Vector3 global")
	}
	tbl, ok := sym.Type.(*types.Table)
	if !ok {
		t.Fatalf("expected Vector3 to be a table of constructors, got %T", sym.Type)
	}
	newProp, ok := tbl.Get("new")
	if !ok {
		t.Fatalf("expected Vector3.new to be defined")
	}
	ctor, ok := newProp.Type.(types.Function)
	if !ok {
		t.Fatalf("expected Vector3.new to be a function, got %T", newProp.Type)
	}
	ret, ok := ctor.Return.(*types.Table)
	if !ok {
		t.Fatalf("expected Vector3.new to return a table, got %T", ctor.Return)
	}
	for _, field := range []string{"X", "Y", "Z"} {
		if prop, ok := ret.Get(field); !ok || prop.Type != types.Number {
			t.Fatalf("expected Vector3 instance to have a numeric %s field", field)
		}
	}
}
