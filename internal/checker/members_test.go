package checker

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
)

func TestTableMemberTypeReturnsPropertyType(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	tbl := types.NewTable()
	tbl.Set("Name", types.Property{Type: types.String})

	got := c.tableMemberType(tbl, "Name", token.Range{}, false)
	if got != types.String {
		t.Fatalf("expected Name to resolve to string, got %v", got)
	}
}

func TestTableMemberTypeWarnsOnDeprecatedProperty(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	tbl := types.NewTable()
	tbl.Set("OldName", types.Property{Type: types.String, Deprecated: "use NewName instead"})

	c.tableMemberType(tbl, "OldName", token.Range{}, false)
	if len(c.diags.out) != 1 || c.diags.out[0].Code != W001 {
		t.Fatalf("expected a single W001 deprecation warning, got %+v", c.diags.out)
	}
}

func TestTableMemberTypeSuggestsCanonicalSpelling(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	tbl := types.NewTable()
	tbl.Set("GetChildren", types.Property{Type: types.Function{Return: types.Any}})

	got := c.tableMemberType(tbl, "getchildren", token.Range{}, false)
	if _, ok := got.(types.Function); !ok {
		t.Fatalf("expected the lowercase miss to still resolve via the canonical suggestion, got %T", got)
	}
	if len(c.diags.out) != 1 || c.diags.out[0].Code != W002 {
		t.Fatalf("expected a single W002 case-sensitivity hint, got %+v", c.diags.out)
	}
}

func TestTableMemberTypeMissingReportsE009(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	tbl := types.NewTable()

	got := c.tableMemberType(tbl, "nope", token.Range{}, false)
	if !types.IsError(got) {
		t.Fatalf("expected a missing table member to produce an ErrorType, got %T", got)
	}
	if len(c.diags.out) != 1 || c.diags.out[0].Code != E009 {
		t.Fatalf("expected a single E009 diagnostic, got %+v", c.diags.out)
	}
}

func TestTableMemberTypeMissingMethodReportsE008(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	tbl := types.NewTable()

	c.tableMemberType(tbl, "nope", token.Range{}, true)
	if len(c.diags.out) != 1 || c.diags.out[0].Code != E008 {
		t.Fatalf("expected a missing method call to produce an E008 diagnostic, got %+v", c.diags.out)
	}
}

func TestClassMemberTypeWalksInheritanceChain(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	base := types.NewClass("Instance")
	base.Props["Parent"] = types.Property{Type: types.Any}
	derived := types.NewClass("Part")
	derived.Super = base

	got := c.classMemberType(derived, "Parent", token.Range{}, false)
	if got != types.Any {
		t.Fatalf("expected Parent to be inherited from Instance, got %v", got)
	}
}

func TestApplyCallOnNonFunctionReportsE007(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	got := c.applyCall(types.String, token.Range{})
	if !types.IsError(got) {
		t.Fatalf("expected calling a non-function to produce an ErrorType, got %T", got)
	}
	if len(c.diags.out) != 1 || c.diags.out[0].Code != E007 {
		t.Fatalf("expected a single E007 diagnostic, got %+v", c.diags.out)
	}
}

func TestApplyCallReturnsDeclaredReturnType(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	fn := types.Function{Return: types.Number}
	if got := c.applyCall(fn, token.Range{}); got != types.Number {
		t.Fatalf("expected the function's declared return type, got %v", got)
	}
}

func TestApplyCallOnAnyIsPermissive(t *testing.T) {
	c := newTestChecker(types.ModeStrict)
	if got := c.applyCall(types.Any, token.Range{}); got != types.Any {
		t.Fatalf("expected calling any to produce any, got %v", got)
	}
	if len(c.diags.out) != 0 {
		t.Fatalf("did not expect a diagnostic when calling a value of type any, got %+v", c.diags.out)
	}
}
