// Package types implements the Luau type model: discriminated type
// variants, structural/nominal equality, and the subtyping engine that
// backs internal/checker's inference.
package types

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Type is the interface every type variant satisfies. Implementations are
// small value-ish structs; Classes and Enums are shared by reference across
// a check.
type Type interface {
	// Kind identifies the variant for switch dispatch.
	Kind() Kind
	// String renders the type for diagnostics and hover text.
	String() string
}

type Kind int

const (
	KindNil Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindThread
	KindBuffer
	KindVector
	KindLiteral
	KindFunction
	KindTable
	KindClass
	KindEnum
	KindUnion
	KindIntersection
	KindOptional
	KindVariadic
	KindTypeVariable
	KindReference
	KindAny
	KindUnknown
	KindNever
	KindError
	KindLazy
)

// ---- primitives & sentinels ----

type primitive struct {
	kind Kind
	name string
}

func (p primitive) Kind() Kind    { return p.kind }
func (p primitive) String() string { return p.name }

var (
	Nil     Type = primitive{KindNil, "nil"}
	Boolean Type = primitive{KindBoolean, "boolean"}
	Number  Type = primitive{KindNumber, "number"}
	String  Type = primitive{KindString, "string"}
	Thread  Type = primitive{KindThread, "thread"}
	Buffer  Type = primitive{KindBuffer, "buffer"}
	Vector  Type = primitive{KindVector, "vector"}
	Any     Type = primitive{KindAny, "any"}
	Unknown Type = primitive{KindUnknown, "unknown"}
	Never   Type = primitive{KindNever, "never"}
)

// ErrorType is the `Error{message}` sentinel: a type error that suppresses
// cascading diagnostics on anything built from it.
type ErrorType struct {
	Message string
}

func (ErrorType) Kind() Kind      { return KindError }
func (e ErrorType) String() string { return "<error: " + e.Message + ">" }

// IsError reports whether t is the Error sentinel.
func IsError(t Type) bool {
	_, ok := t.(ErrorType)
	return ok
}

// ---- literal types ----

type LiteralBase int

const (
	LiteralBaseString LiteralBase = iota
	LiteralBaseNumber
	LiteralBaseBoolean
)

// Literal is a literal type over a string/number/boolean value with its
// recorded base primitive.
type Literal struct {
	Base  LiteralBase
	SVal  string
	NVal  float64
	BVal  bool
}

func (Literal) Kind() Kind { return KindLiteral }

func (l Literal) String() string {
	switch l.Base {
	case LiteralBaseString:
		return fmt.Sprintf("%q", l.SVal)
	case LiteralBaseNumber:
		return formatNumber(l.NVal)
	default:
		if l.BVal {
			return "true"
		}
		return "false"
	}
}

// BaseType returns the primitive this literal widens to.
func (l Literal) BaseType() Type {
	switch l.Base {
	case LiteralBaseString:
		return String
	case LiteralBaseNumber:
		return Number
	default:
		return Boolean
	}
}

func formatNumber(n float64) string {
	s := fmt.Sprintf("%g", n)
	return s
}

// ---- function types ----

type TypeParam struct {
	Name       string
	Constraint Type
	Default    Type
}

type FuncParam struct {
	Name     string // optional
	Type     Type
	Optional bool
}

type Function struct {
	Generics    []TypeParam
	This        Type // nil when no explicit self
	Params      []FuncParam
	Variadic    bool
	VariadicOf  Type
	Return      Type
	Description string
	Example     string
}

func (Function) Kind() Kind { return KindFunction }

func (f Function) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.Name != "" {
			sb.WriteString(p.Name)
			sb.WriteString(": ")
		}
		sb.WriteString(p.Type.String())
		if p.Optional {
			sb.WriteString("?")
		}
	}
	if f.Variadic {
		if len(f.Params) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...")
		if f.VariadicOf != nil {
			sb.WriteString(f.VariadicOf.String())
		}
	}
	sb.WriteString(") -> ")
	if f.Return != nil {
		sb.WriteString(f.Return.String())
	} else {
		sb.WriteString("()")
	}
	return sb.String()
}

// ---- table types ----

type Property struct {
	Type       Type
	Readonly   bool
	Optional   bool
	Deprecated string // empty when not deprecated
}

// Table is an ordered-by-insertion map of property name to Property, plus an
// optional indexer and metatable. Array is set for the `{T}` shorthand.
type Table struct {
	Names     []string // insertion order
	Props     map[string]Property
	IndexKey  Type
	IndexVal  Type
	Metatable *Table
	Array     bool
	ArrayElem Type
}

func NewTable() *Table {
	return &Table{Props: make(map[string]Property)}
}

func (t *Table) Set(name string, p Property) {
	if _, exists := t.Props[name]; !exists {
		t.Names = append(t.Names, name)
	}
	t.Props[name] = p
}

func (t *Table) Get(name string) (Property, bool) {
	p, ok := t.Props[name]
	return p, ok
}

func (*Table) Kind() Kind { return KindTable }

func (t *Table) String() string {
	if t.Array {
		return "{" + elemString(t.ArrayElem) + "}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, name := range t.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		p := t.Props[name]
		if p.Readonly {
			sb.WriteString("read ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(p.Type.String())
	}
	if t.IndexKey != nil {
		if len(t.Names) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("[")
		sb.WriteString(t.IndexKey.String())
		sb.WriteString("]: ")
		sb.WriteString(t.IndexVal.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

func elemString(t Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}

// ---- class types ----

// Class is nominal by name, shared by reference across a check. Super is a
// non-owning pointer into the class registry.
type Class struct {
	Name       string
	Super      *Class
	Props      map[string]Property
	Methods    map[string]*Function
	Events     map[string]*Table // signal-shaped tables: {Connect: (fn)->conn}
	Tags       []string
	PropOrder  []string
	MethodOrder []string
}

func NewClass(name string) *Class {
	return &Class{
		Name:    name,
		Props:   make(map[string]Property),
		Methods: make(map[string]*Function),
		Events:  make(map[string]*Table),
	}
}

func (*Class) Kind() Kind    { return KindClass }
func (c *Class) String() string { return c.Name }

// Inherits reports whether c's inheritance chain reaches ancestor.
func (c *Class) Inherits(ancestor *Class) bool {
	for cur := c; cur != nil; cur = cur.Super {
		if cur == ancestor || cur.Name == ancestor.Name {
			return true
		}
	}
	return false
}

func (c *Class) LookupProp(name string) (Property, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if p, ok := cur.Props[name]; ok {
			return p, true
		}
	}
	return Property{}, false
}

func (c *Class) LookupMethod(name string) (*Function, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if m, ok := cur.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (c *Class) LookupEvent(name string) (*Table, bool) {
	for cur := c; cur != nil; cur = cur.Super {
		if e, ok := cur.Events[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// ---- enum types ----

type Enum struct {
	Name  string
	Items map[string]Type
}

func NewEnum(name string) *Enum { return &Enum{Name: name, Items: make(map[string]Type)} }

func (*Enum) Kind() Kind      { return KindEnum }
func (e *Enum) String() string { return e.Name }

// ---- composite types ----

type Union struct{ Members []Type }

func (Union) Kind() Kind { return KindUnion }
func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

type Intersection struct{ Members []Type }

func (Intersection) Kind() Kind { return KindIntersection }
func (i Intersection) String() string {
	parts := make([]string, len(i.Members))
	for j, m := range i.Members {
		parts[j] = m.String()
	}
	return strings.Join(parts, " & ")
}

type Optional struct{ Inner Type }

func (Optional) Kind() Kind      { return KindOptional }
func (o Optional) String() string { return o.Inner.String() + "?" }

type Variadic struct{ Element Type }

func (Variadic) Kind() Kind      { return KindVariadic }
func (v Variadic) String() string { return "..." + v.Element.String() }

// ---- type variables (reserved for future generics work) ----

var typeVarCounter int64

type TypeVariable struct {
	ID   int64
	Name string
}

func NewTypeVariable(name string) *TypeVariable {
	id := atomic.AddInt64(&typeVarCounter, 1)
	return &TypeVariable{ID: id, Name: name}
}

func (*TypeVariable) Kind() Kind { return KindTypeVariable }
func (t *TypeVariable) String() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("'%d", t.ID)
}

// ---- references ----

// Reference is a placeholder resolved late via the type universe or a
// TypeEnvironment's alias table.
type Reference struct {
	Name     string
	Module   string
	TypeArgs []Type
}

func (Reference) Kind() Kind { return KindReference }
func (r Reference) String() string {
	s := r.Name
	if r.Module != "" {
		s = r.Module + "." + s
	}
	if len(r.TypeArgs) > 0 {
		parts := make([]string, len(r.TypeArgs))
		for i, a := range r.TypeArgs {
			parts[i] = a.String()
		}
		s += "<" + strings.Join(parts, ", ") + ">"
	}
	return s
}

// ---- lazy types (two-phase alias binding) ----

// Lazy wraps a thunk resolved (and cached) on first use, enabling
// self-referential type aliases without cyclic ownership.
type Lazy struct {
	Thunk func() Type
	cache Type
}

func NewLazy(thunk func() Type) *Lazy { return &Lazy{Thunk: thunk} }

func (*Lazy) Kind() Kind { return KindLazy }

func (l *Lazy) String() string {
	return Resolve(l).String()
}

// Force resolves and caches the lazy type's value.
func (l *Lazy) Force() Type {
	if l.cache == nil {
		l.cache = l.Thunk()
	}
	return l.cache
}

// Resolve unwraps any number of nested Lazy layers. A Lazy whose Thunk is
// not yet set is mid-construction (a recursive alias referring to itself
// before its body finishes resolving) and is returned as-is rather than
// forced, so callers see the placeholder instead of crashing.
func Resolve(t Type) Type {
	for {
		l, ok := t.(*Lazy)
		if !ok || l.Thunk == nil {
			return t
		}
		t = l.Force()
	}
}

// ---- structural equality ----

// Equal implements the spec's structural-except-{class,enum,reference}
// equality rule: two types are equal iff their variants match and all
// subordinate types are equal recursively.
func Equal(a, b Type) bool {
	a, b = Resolve(a), Resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case primitive:
		return av.kind == b.(primitive).kind
	case ErrorType:
		return true
	case Literal:
		bv := b.(Literal)
		return av.Base == bv.Base && av.SVal == bv.SVal && av.NVal == bv.NVal && av.BVal == bv.BVal
	case Function:
		return functionEqual(av, b.(Function))
	case *Table:
		return tableEqual(av, b.(*Table))
	case *Class:
		bv := b.(*Class)
		return av == bv || av.Name == bv.Name
	case *Enum:
		bv := b.(*Enum)
		return av == bv || av.Name == bv.Name
	case Union:
		return setEqual(av.Members, b.(Union).Members)
	case Intersection:
		return setEqual(av.Members, b.(Intersection).Members)
	case Optional:
		return Equal(av.Inner, b.(Optional).Inner)
	case Variadic:
		return Equal(av.Element, b.(Variadic).Element)
	case *TypeVariable:
		return av == b.(*TypeVariable)
	case Reference:
		bv := b.(Reference)
		return av.Name == bv.Name && av.Module == bv.Module
	default:
		return a == b
	}
}

func functionEqual(a, b Function) bool {
	if len(a.Params) != len(b.Params) || a.Variadic != b.Variadic {
		return false
	}
	for i := range a.Params {
		if !Equal(a.Params[i].Type, b.Params[i].Type) || a.Params[i].Optional != b.Params[i].Optional {
			return false
		}
	}
	if (a.This == nil) != (b.This == nil) {
		return false
	}
	if a.This != nil && !Equal(a.This, b.This) {
		return false
	}
	return Equal(a.Return, b.Return)
}

func tableEqual(a, b *Table) bool {
	if a == b {
		return true
	}
	if len(a.Names) != len(b.Names) {
		return false
	}
	for _, name := range a.Names {
		pa, ok := a.Props[name]
		if !ok {
			return false
		}
		pb, ok := b.Props[name]
		if !ok {
			return false
		}
		if pa.Readonly != pb.Readonly || pa.Optional != pb.Optional || !Equal(pa.Type, pb.Type) {
			return false
		}
	}
	if (a.IndexKey == nil) != (b.IndexKey == nil) {
		return false
	}
	if a.IndexKey != nil && (!Equal(a.IndexKey, b.IndexKey) || !Equal(a.IndexVal, b.IndexVal)) {
		return false
	}
	return true
}

func setEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !used[j] && Equal(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
