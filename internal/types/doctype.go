package types

import "strings"

// Lookup resolves a primitive/class/alias name to a Type. Implemented by
// internal/env so internal/types stays free of a dependency on the scope
// tree.
type Lookup interface {
	LookupTypeName(name string) (Type, bool)
}

// ParseDocTypeString resolves a doc-comment type string per spec §4.2's
// lazy grammar: a trailing '?' makes it Optional, '|' separates a union,
// a trailing "[]" makes it an array. Otherwise the string is looked up as
// a primitive, then via lookup (type alias, then class name). Unresolved
// strings yield (nil, false); the checker falls back to Unknown/Any.
func ParseDocTypeString(s string, lookup Lookup) (Type, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if strings.HasSuffix(s, "?") {
		inner, ok := ParseDocTypeString(strings.TrimSuffix(s, "?"), lookup)
		if !ok {
			return nil, false
		}
		return NewOptional(inner), true
	}
	if strings.Contains(s, "|") {
		parts := strings.Split(s, "|")
		members := make([]Type, 0, len(parts))
		for _, p := range parts {
			t, ok := ParseDocTypeString(strings.TrimSpace(p), lookup)
			if !ok {
				return nil, false
			}
			members = append(members, t)
		}
		return NewUnion(members...), true
	}
	if strings.HasSuffix(s, "[]") {
		inner, ok := ParseDocTypeString(strings.TrimSuffix(s, "[]"), lookup)
		if !ok {
			return nil, false
		}
		tbl := NewTable()
		tbl.Array = true
		tbl.ArrayElem = inner
		return tbl, true
	}
	if p, ok := primitiveByName(s); ok {
		return p, true
	}
	if lookup != nil {
		if t, ok := lookup.LookupTypeName(s); ok {
			return t, true
		}
	}
	return nil, false
}

func primitiveByName(name string) (Type, bool) {
	switch name {
	case "nil":
		return Nil, true
	case "boolean", "bool":
		return Boolean, true
	case "number":
		return Number, true
	case "string":
		return String, true
	case "thread":
		return Thread, true
	case "buffer":
		return Buffer, true
	case "vector":
		return Vector, true
	case "any":
		return Any, true
	case "unknown":
		return Unknown, true
	case "never":
		return Never, true
	default:
		return nil, false
	}
}
