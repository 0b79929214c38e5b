package types

import "testing"

var strict = Context{Mode: ModeStrict}
var nonStrict = Context{Mode: ModeNonStrict}

func TestIsSubtypeReflexiveForPrimitives(t *testing.T) {
	if !IsSubtype(Number, Number, strict) {
		t.Fatalf("expected number <: number")
	}
	if IsSubtype(Number, String, strict) {
		t.Fatalf("did not expect number <: string")
	}
}

func TestAnyAndUnknownSentinels(t *testing.T) {
	if !IsSubtype(String, Any, strict) {
		t.Fatalf("expected anything <: any")
	}
	if !IsSubtype(Any, Number, strict) {
		t.Fatalf("expected any <: anything")
	}
	if !IsSubtype(String, Unknown, strict) {
		t.Fatalf("expected anything <: unknown")
	}
	if IsSubtype(Unknown, Number, strict) {
		t.Fatalf("did not expect unknown <: number")
	}
}

func TestErrorAndNeverSentinels(t *testing.T) {
	if !IsSubtype(ErrorType{}, Number, strict) {
		t.Fatalf("expected Error <: anything, suppressing cascades")
	}
	if !IsSubtype(Never, Number, strict) {
		t.Fatalf("expected never <: anything")
	}
}

func TestNilIsSubtypeOfOptionalAndUnionWithNil(t *testing.T) {
	opt := NewOptional(Number)
	if !IsSubtype(Nil, opt, strict) {
		t.Fatalf("expected nil <: number?")
	}
	u := NewUnion(Number, Nil)
	if !IsSubtype(Nil, u, strict) {
		t.Fatalf("expected nil <: (number | nil)")
	}
	if IsSubtype(Nil, Number, strict) {
		t.Fatalf("did not expect nil <: number")
	}
}

func TestLiteralSubtypesBaseType(t *testing.T) {
	lit := Literal{Base: LiteralBaseString, SVal: "hi"}
	if !IsSubtype(lit, String, strict) {
		t.Fatalf("expected literal \"hi\" <: string")
	}
	if IsSubtype(lit, Number, strict) {
		t.Fatalf("did not expect literal \"hi\" <: number")
	}
	other := Literal{Base: LiteralBaseString, SVal: "bye"}
	if IsSubtype(lit, other, strict) {
		t.Fatalf("distinct literals should not be mutual subtypes")
	}
}

func TestUnionSubtyping(t *testing.T) {
	u := NewUnion(Number, String)
	if !IsSubtype(Number, u, strict) {
		t.Fatalf("expected number <: (number | string)")
	}
	if IsSubtype(Boolean, u, strict) {
		t.Fatalf("did not expect boolean <: (number | string)")
	}
	if !IsSubtype(u, NewUnion(Number, String, Boolean), strict) {
		t.Fatalf("expected (number|string) <: (number|string|boolean)")
	}
}

func TestFunctionSubtypingIsContravariantInParamsCovariantInReturn(t *testing.T) {
	// required is the contract a caller depends on: accepts only Number,
	// promises back Number|string.
	required := Function{
		Params: []FuncParam{{Type: Number}},
		Return: NewUnion(Number, String),
	}
	// substitute accepts a wider param set (safe: still handles every
	// Number a caller passes) and promises a narrower return (safe: every
	// Number it returns satisfies a caller expecting Number|string).
	substitute := Function{
		Params: []FuncParam{{Type: NewUnion(Number, String)}},
		Return: Number,
	}

	if !IsSubtype(substitute, required, strict) {
		t.Fatalf("expected wider-param/narrower-return function <: required function")
	}
	if IsSubtype(required, substitute, strict) {
		t.Fatalf("did not expect the required function <: substitute (narrower params, wider return)")
	}
}

func TestFunctionSubtypeOptionalTrailingParam(t *testing.T) {
	sup := Function{
		Params: []FuncParam{{Type: Number}, {Type: String, Optional: true}},
		Return: Nil,
	}
	sub := Function{
		Params: []FuncParam{{Type: Number}},
		Return: Nil,
	}
	if !IsSubtype(sub, sup, strict) {
		t.Fatalf("expected shorter param list to satisfy a supertype with a trailing optional param")
	}
}

func TestTableSubtypingRequiresProperties(t *testing.T) {
	sup := NewTable()
	sup.Set("x", Property{Type: Number})

	sub := NewTable()
	sub.Set("x", Property{Type: Number})
	sub.Set("y", Property{Type: String})

	if !IsSubtype(sub, sup, strict) {
		t.Fatalf("expected a table with extra properties to satisfy a narrower table type")
	}

	missing := NewTable()
	if IsSubtype(missing, sup, strict) {
		t.Fatalf("did not expect a table missing a required property to be a subtype")
	}
}

func TestTableOptionalPropertyCanBeAbsent(t *testing.T) {
	sup := NewTable()
	sup.Set("x", Property{Type: Number, Optional: true})

	empty := NewTable()
	if !IsSubtype(empty, sup, strict) {
		t.Fatalf("expected an optional property to be satisfiable by absence")
	}
}

func TestTableMutablePropertyIsInvariant(t *testing.T) {
	sup := NewTable()
	sup.Set("x", Property{Type: NewUnion(Number, String)})

	sub := NewTable()
	sub.Set("x", Property{Type: Number})

	if IsSubtype(sub, sup, strict) {
		t.Fatalf("expected a mutable property to be invariant, not covariant")
	}
}

func TestClassInheritanceSubtyping(t *testing.T) {
	base := NewClass("Instance")
	part := NewClass("Part")
	part.Super = base

	if !part.Inherits(base) {
		t.Fatalf("expected Part to inherit from Instance")
	}
	if !IsSubtype(part, base, strict) {
		t.Fatalf("expected Part <: Instance")
	}
	if IsSubtype(base, part, strict) {
		t.Fatalf("did not expect Instance <: Part")
	}
}

func TestClassPropertyLookupWalksSuperChain(t *testing.T) {
	base := NewClass("BasePart")
	base.Props["Position"] = Property{Type: Vector}
	part := NewClass("Part")
	part.Super = base

	p, ok := part.LookupProp("Position")
	if !ok || p.Type != Vector {
		t.Fatalf("expected Part to inherit Position from BasePart")
	}
}

func TestIsAssignableAllowsNumberToStringCoercionNonStrict(t *testing.T) {
	if IsAssignable(Number, String, strict) {
		t.Fatalf("did not expect number -> string coercion under strict mode")
	}
	if !IsAssignable(Number, String, nonStrict) {
		t.Fatalf("expected number -> string coercion under non-strict mode")
	}
}

func TestIsAssignableNumberToEnum(t *testing.T) {
	e := NewEnum("MaterialType")
	if !IsAssignable(Number, e, nonStrict) {
		t.Fatalf("expected number -> enum coercion under non-strict mode")
	}
	if IsAssignable(Number, e, strict) {
		t.Fatalf("did not expect number -> enum coercion under strict mode")
	}
}

func TestCommonTypePicksTheWiderType(t *testing.T) {
	if ct := CommonType(Number, Any, strict); ct != Any {
		t.Fatalf("expected CommonType(number, any) == any, got %v", ct)
	}
	u := CommonType(Number, String, strict)
	if _, ok := u.(Union); !ok {
		t.Fatalf("expected CommonType of unrelated types to be a union, got %T", u)
	}
}

func TestNarrowAndExcludeAreSymmetric(t *testing.T) {
	u := NewUnion(Number, String, Boolean)
	narrowed := Narrow(u, Number, strict)
	if !Equal(narrowed, Number) {
		t.Fatalf("expected Narrow to a single member to collapse to that member, got %v", narrowed)
	}
	excluded := Exclude(u, Number, strict)
	if !Equal(excluded, NewUnion(String, Boolean)) {
		t.Fatalf("expected Exclude to drop just the excluded member, got %v", excluded)
	}
}

func TestSameNameClassesCompareEqual(t *testing.T) {
	// The subtype engine treats two *Class values with the same name but
	// different identity as equal (Equal compares by name), mirroring
	// nominal class semantics. Generic alias instantiation (handled in
	// internal/checker) is responsible for giving structurally distinct
	// instantiations distinct identity where the spec requires it.
	a := NewClass("Foo")
	b := NewClass("Foo")
	if !Equal(a, b) {
		t.Fatalf("expected two classes with the same name to compare equal")
	}
}
