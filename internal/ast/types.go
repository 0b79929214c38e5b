package ast

import "github.com/0neShot101/rbxdev-ls-sub001/internal/token"

// TypeReference is `Ident("." Ident)? ("<" type ("," type)* ">")?` with an
// optional trailing `?` folded into an OptionalType wrapper by the parser.
type TypeReference struct {
	Base
	Module   string // optional qualifier before '.'
	Name     string
	TypeArgs []TypeAnnotation
}

func (*TypeReference) typeAnnotationNode() {}

type LiteralTypeKind int

const (
	LiteralTypeString LiteralTypeKind = iota
	LiteralTypeBool
	LiteralTypeNumber
)

type LiteralType struct {
	Base
	Kind        LiteralTypeKind
	StringValue string
	BoolValue   bool
	NumberValue float64
}

func (*LiteralType) typeAnnotationNode() {}

// FunctionType is `(params) -> R`, generics and optional `this`.
type FunctionType struct {
	Base
	Generics   []TypeParameter
	This       TypeAnnotation
	Params     []FunctionTypeParam
	Variadic   bool
	VarargType TypeAnnotation
	Return     TypeAnnotation
}

type FunctionTypeParam struct {
	Name       string // optional; empty when anonymous
	Annotation TypeAnnotation
}

func (*FunctionType) typeAnnotationNode() {}

// TableType is `{ prop: T, [K]: V }`.
type TableType struct {
	Base
	Properties []TableTypeProperty
	Indexer    *TableTypeIndexer
	Array      bool // true for the shorthand `{T}` array form
	ArrayElem  TypeAnnotation
}

type TableTypeProperty struct {
	Name       string
	Type       TypeAnnotation
	Readonly   bool
	Optional   bool
	Deprecated string // empty when not deprecated
}

type TableTypeIndexer struct {
	KeyType   TypeAnnotation
	ValueType TypeAnnotation
}

func (*TableType) typeAnnotationNode() {}

type UnionType struct {
	Base
	Members []TypeAnnotation
}

func (*UnionType) typeAnnotationNode() {}

type IntersectionType struct {
	Base
	Members []TypeAnnotation
}

func (*IntersectionType) typeAnnotationNode() {}

type OptionalType struct {
	Base
	Inner TypeAnnotation
}

func (*OptionalType) typeAnnotationNode() {}

// TypeofType is `typeof(expr)`.
type TypeofType struct {
	Base
	Expr Expression
}

func (*TypeofType) typeAnnotationNode() {}

type VariadicType struct {
	Base
	Element TypeAnnotation
}

func (*VariadicType) typeAnnotationNode() {}

type ParenType struct {
	Base
	Inner TypeAnnotation
}

func (*ParenType) typeAnnotationNode() {}

type ErrorType struct {
	Base
	Message string
}

func (*ErrorType) typeAnnotationNode() {}

// helper constructors used by the parser to stamp Rng uniformly.
func NewRange(start, end token.Position) token.Range {
	return token.Range{Start: start, End: end}
}
