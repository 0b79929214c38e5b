// Package ast defines the discriminated statement, expression, and type
// annotation node set produced by internal/parser. Every node carries a
// Range; error nodes are well-formed placeholders so downstream passes
// never special-case missing data.
package ast

import "github.com/0neShot101/rbxdev-ls-sub001/internal/token"

// Node is the root interface every AST node satisfies.
type Node interface {
	Range() token.Range
}

// Statement is any node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// TypeAnnotation is any node occurring in type-annotation position.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// Chunk is the root of a parsed file: a sequence of statements.
type Chunk struct {
	Statements []Statement
	Rng        token.Range
}

func (c *Chunk) Range() token.Range { return c.Rng }

// DocComment is a parsed "---"-prefixed documentation block attached to a
// declaration.
type DocComment struct {
	Description string
	Params      []DocParam
	Returns     []DocReturn
	Fields      []DocField
	Type        string
	Class       string
	Deprecated  string
	IsDeprecated bool
	Rng         token.Range
}

type DocParam struct {
	Name        string
	Type        string
	Description string
}

type DocReturn struct {
	Type        string
	Description string
}

type DocField struct {
	Name        string
	Type        string
	Description string
}

// ---- embeddable node base ----

// Base supplies the Range() method every concrete node embeds. Constructed
// directly by the parser: ast.Base{Span: r}.
type Base struct {
	Span token.Range
}

func (b Base) Range() token.Range { return b.Span }
