package types

// NewUnion flattens nested unions, deduplicates by structural equality,
// drops Never, collapses singletons, and short-circuits to Any when any
// member is Any.
func NewUnion(members ...Type) Type {
	flat := flattenUnion(members)
	var out []Type
	for _, m := range flat {
		if m.Kind() == KindAny {
			return Any
		}
		if m.Kind() == KindNever {
			continue
		}
		if !containsType(out, m) {
			out = append(out, m)
		}
	}
	switch len(out) {
	case 0:
		return Never
	case 1:
		return out[0]
	default:
		return Union{Members: out}
	}
}

func flattenUnion(members []Type) []Type {
	var out []Type
	for _, m := range members {
		m = Resolve(m)
		if u, ok := m.(Union); ok {
			out = append(out, flattenUnion(u.Members)...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

// NewIntersection flattens nested intersections, deduplicates, drops
// Unknown, collapses singletons, and short-circuits to Never when any
// member is Never.
func NewIntersection(members ...Type) Type {
	flat := flattenIntersection(members)
	var out []Type
	for _, m := range flat {
		if m.Kind() == KindNever {
			return Never
		}
		if m.Kind() == KindUnknown {
			continue
		}
		if !containsType(out, m) {
			out = append(out, m)
		}
	}
	switch len(out) {
	case 0:
		return Unknown
	case 1:
		return out[0]
	default:
		return Intersection{Members: out}
	}
}

func flattenIntersection(members []Type) []Type {
	var out []Type
	for _, m := range members {
		m = Resolve(m)
		if i, ok := m.(Intersection); ok {
			out = append(out, flattenIntersection(i.Members)...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

func containsType(set []Type, t Type) bool {
	for _, s := range set {
		if Equal(s, t) {
			return true
		}
	}
	return false
}

// NewOptional wraps inner in Optional, collapsing `T??` and `nil?` sensibly:
// Optional<nil> is just nil, Optional<Optional<T>> stays Optional<T>.
func NewOptional(inner Type) Type {
	inner = Resolve(inner)
	if inner.Kind() == KindNil {
		return Nil
	}
	if o, ok := inner.(Optional); ok {
		return o
	}
	if inner.Kind() == KindAny || inner.Kind() == KindUnknown {
		return inner
	}
	return Optional{Inner: inner}
}
