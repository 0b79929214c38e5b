package types

// Mode selects the checking regime. Nonstrict is permissive (any/unknown
// accepted bidirectionally, number<->string and number<->enum coercion
// allowed); Strict is tight; NoCheck disables checking entirely (callers
// skip invoking the subtype engine under NoCheck).
type Mode int

const (
	ModeNoCheck Mode = iota
	ModeNonStrict
	ModeStrict
)

// Context threads the checking mode (and room for future cross-references)
// through the subtype algebra.
type Context struct {
	Mode Mode
}

func (c Context) nonStrict() bool { return c.Mode == ModeNonStrict }

// IsSubtype decides whether sub is a subtype of sup under ctx, following the
// fifteen-rule decision procedure of spec §4.5.
func IsSubtype(sub, sup Type, ctx Context) bool {
	sub, sup = Resolve(sub), Resolve(sup)

	// Rule: named-reference equality / structural equality.
	if Equal(sub, sup) {
		return true
	}

	// Rule: Reference <-> structural Table of the same name (nominal-
	// structural bridge for Roblox datatypes). Documented heuristic, see
	// DESIGN.md Open Question 1.
	if br, ok := sub.(Reference); ok {
		if t, ok := sup.(*Table); ok && tableHasName(t, br.Name) {
			return true
		}
	}
	if br, ok := sup.(Reference); ok {
		if t, ok := sub.(*Table); ok && tableHasName(t, br.Name) {
			return true
		}
	}

	switch sub.Kind() {
	case KindAny, KindError:
		return true
	case KindNever:
		return true
	}
	switch sup.Kind() {
	case KindAny, KindUnknown:
		return true
	}

	if ctx.nonStrict() {
		if sub.Kind() == KindAny || sup.Kind() == KindAny {
			return true
		}
	}

	// nil <: Optional<T>, nil <: (union containing nil)
	if sub.Kind() == KindNil {
		if _, ok := sup.(Optional); ok {
			return true
		}
		if u, ok := sup.(Union); ok {
			for _, m := range u.Members {
				if Resolve(m).Kind() == KindNil {
					return true
				}
			}
		}
	}

	// Optional<T> vs Optional<U> / Optional<T> vs U | nil
	if subOpt, ok := sub.(Optional); ok {
		if supOpt, ok := sup.(Optional); ok {
			return IsSubtype(subOpt.Inner, supOpt.Inner, ctx)
		}
		if u, ok := sup.(Union); ok {
			rest, hasNil := withoutNil(u)
			if hasNil {
				return IsSubtype(subOpt.Inner, NewUnion(rest...), ctx)
			}
		}
		return false
	}
	if supOpt, ok := sup.(Optional); ok {
		return IsSubtype(sub, supOpt.Inner, ctx) || sub.Kind() == KindNil
	}

	// Union on the left: all members must be subtypes of sup.
	if u, ok := sub.(Union); ok {
		for _, m := range u.Members {
			if !IsSubtype(m, sup, ctx) {
				return false
			}
		}
		return true
	}
	// Union on the right: some member accepts sub.
	if u, ok := sup.(Union); ok {
		for _, m := range u.Members {
			if IsSubtype(sub, m, ctx) {
				return true
			}
		}
		return false
	}

	// Intersection on the right: all members must accept sub.
	if i, ok := sup.(Intersection); ok {
		for _, m := range i.Members {
			if !IsSubtype(sub, m, ctx) {
				return false
			}
		}
		return true
	}
	// Intersection on the left: some member must be a subtype.
	if i, ok := sub.(Intersection); ok {
		for _, m := range i.Members {
			if IsSubtype(m, sup, ctx) {
				return true
			}
		}
		return false
	}

	// Literal <: matching primitive; two literals match iff values equal.
	if l, ok := sub.(Literal); ok {
		if _, ok := sup.(Literal); ok {
			return Equal(sub, sup)
		}
		return IsSubtype(l.BaseType(), sup, ctx)
	}

	if fa, ok := sub.(Function); ok {
		if fb, ok := sup.(Function); ok {
			return functionSubtype(fa, fb, ctx)
		}
		return false
	}

	if ta, ok := sub.(*Table); ok {
		if tb, ok := sup.(*Table); ok {
			return tableSubtype(ta, tb, ctx)
		}
		if cb, ok := sup.(*Class); ok && ctx.nonStrict() {
			return tableStructurallyMatchesClass(ta, cb)
		}
		return false
	}

	if ca, ok := sub.(*Class); ok {
		if cb, ok := sup.(*Class); ok {
			return ca.Inherits(cb)
		}
		return false
	}

	return false
}

func withoutNil(u Union) ([]Type, bool) {
	var rest []Type
	found := false
	for _, m := range u.Members {
		if Resolve(m).Kind() == KindNil {
			found = true
			continue
		}
		rest = append(rest, m)
	}
	return rest, found
}

func tableHasName(t *Table, name string) bool {
	// Structural tables don't normally carry a name; this hook exists for
	// universes that tag Roblox-datatype tables with a synthetic `__name`
	// property so the nominal-structural bridge (rule 3) can recognize them.
	p, ok := t.Get("__name")
	if !ok {
		return false
	}
	lit, ok := p.Type.(Literal)
	return ok && lit.Base == LiteralBaseString && lit.SVal == name
}

// functionSubtype: contravariant in parameters, covariant in return. A
// shorter sub param list is permitted iff every missing sup position is
// optional or sub is variadic. An explicit `this` on sup requires a `this`
// on sub.
func functionSubtype(sub, sup Function, ctx Context) bool {
	if sup.This != nil && sub.This == nil {
		return false
	}
	if sup.This != nil && sub.This != nil && !IsSubtype(sup.This, sub.This, ctx) {
		return false
	}

	for i, supParam := range sup.Params {
		if i >= len(sub.Params) {
			if supParam.Optional || sub.Variadic {
				continue
			}
			return false
		}
		subParam := sub.Params[i]
		// contravariant: sup's param type must accept sub's declared type.
		if !IsSubtype(supParam.Type, subParam.Type, ctx) {
			return false
		}
	}
	if sub.Return == nil || sup.Return == nil {
		return sub.Return == sup.Return
	}
	return IsSubtype(sub.Return, sup.Return, ctx)
}

// tableSubtype: every property sup requires must exist on sub (or be
// optional). Readonly properties are covariant; mutable properties are
// invariant (two-way subtype). Indexers constrain the remaining shape.
func tableSubtype(sub, sup *Table, ctx Context) bool {
	for _, name := range sup.Names {
		supProp := sup.Props[name]
		subProp, ok := sub.Get(name)
		if !ok {
			if supProp.Optional {
				continue
			}
			return false
		}
		if supProp.Readonly {
			if !IsSubtype(subProp.Type, supProp.Type, ctx) {
				return false
			}
			continue
		}
		if !IsSubtype(subProp.Type, supProp.Type, ctx) || !IsSubtype(supProp.Type, subProp.Type, ctx) {
			return false
		}
	}

	if sup.IndexKey != nil {
		if sub.IndexKey != nil {
			return IsSubtype(sub.IndexKey, sup.IndexKey, ctx) && IsSubtype(sub.IndexVal, sup.IndexVal, ctx)
		}
		for _, name := range sub.Names {
			if !IsSubtype(sub.Props[name].Type, sup.IndexVal, ctx) {
				return false
			}
		}
	}
	return true
}

func tableStructurallyMatchesClass(t *Table, c *Class) bool {
	for cur := c; cur != nil; cur = cur.Super {
		for name, prop := range cur.Props {
			tp, ok := t.Get(name)
			if !ok || !IsSubtype(tp.Type, prop.Type, Context{Mode: ModeNonStrict}) {
				return false
			}
		}
		for name, m := range cur.Methods {
			tp, ok := t.Get(name)
			if !ok || !IsSubtype(tp.Type, *m, Context{Mode: ModeNonStrict}) {
				return false
			}
		}
	}
	return true
}

// IsAssignable = IsSubtype OR, in non-strict mode, a permitted coercion:
// number -> string; number/number-literal -> enum or Enum.* reference.
func IsAssignable(source, target Type, ctx Context) bool {
	if IsSubtype(source, target, ctx) {
		return true
	}
	if !ctx.nonStrict() {
		return false
	}
	source, target = Resolve(source), Resolve(target)
	if isNumericish(source) && target.Kind() == KindString {
		return true
	}
	if isNumericish(source) {
		if _, ok := target.(*Enum); ok {
			return true
		}
		if ref, ok := target.(Reference); ok && ref.Name == "Enum" {
			return true
		}
	}
	return false
}

func isNumericish(t Type) bool {
	if t.Kind() == KindNumber {
		return true
	}
	if l, ok := t.(Literal); ok {
		return l.Base == LiteralBaseNumber
	}
	return false
}

// CommonType returns b if a <: b, a if b <: a, else Union(a, b).
func CommonType(a, b Type, ctx Context) Type {
	if IsSubtype(a, b, ctx) {
		return b
	}
	if IsSubtype(b, a, ctx) {
		return a
	}
	return NewUnion(a, b)
}

// Narrow filters union members keeping those that are subtypes of guard.
func Narrow(t, guard Type, ctx Context) Type {
	t = Resolve(t)
	if u, ok := t.(Union); ok {
		var kept []Type
		for _, m := range u.Members {
			if IsSubtype(m, guard, ctx) {
				kept = append(kept, m)
			}
		}
		return NewUnion(kept...)
	}
	if IsSubtype(t, guard, ctx) {
		return t
	}
	return Never
}

// Exclude is the symmetric removal of Narrow.
func Exclude(t, x Type, ctx Context) Type {
	t = Resolve(t)
	if u, ok := t.(Union); ok {
		var kept []Type
		for _, m := range u.Members {
			if !IsSubtype(m, x, ctx) {
				kept = append(kept, m)
			}
		}
		return NewUnion(kept...)
	}
	if IsSubtype(t, x, ctx) {
		return Never
	}
	return t
}
