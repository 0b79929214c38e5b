package ast

import "github.com/0neShot101/rbxdev-ls-sub001/internal/token"

// LocalDecl is `local a, b: T = 1, 2`.
type LocalDecl struct {
	Base
	Names        []string
	NameRanges   []token.Range
	Annotations  []TypeAnnotation // parallel to Names; nil entry means no annotation
	Initializers []Expression
	Doc          *DocComment
}

func (*LocalDecl) statementNode() {}

// LocalFunctionDecl is `local function f(...) ... end`.
type LocalFunctionDecl struct {
	Base
	Name string
	Fn   *FunctionExpression
	Doc  *DocComment
}

func (*LocalFunctionDecl) statementNode() {}

// FunctionDecl is `function a.b:c(...) ... end` (name path with optional
// method suffix) or a bare global `function f(...) ... end`.
type FunctionDecl struct {
	Base
	NamePath []string // dotted path, e.g. {"a", "b"}
	Method   string   // non-empty when declared with ':'
	Fn       *FunctionExpression
	Local    bool
	Doc      *DocComment
}

func (*FunctionDecl) statementNode() {}

// AssignStatement is `a, b = 1, 2`.
type AssignStatement struct {
	Base
	Targets []Expression
	Values  []Expression
}

func (*AssignStatement) statementNode() {}

// CompoundAssignStatement is `a += 1`.
type CompoundAssignStatement struct {
	Base
	Target   Expression
	Operator token.Kind
	Value    Expression
}

func (*CompoundAssignStatement) statementNode() {}

// IfStatement covers if/elseif/else.
type IfStatement struct {
	Base
	Condition Expression
	Then      []Statement
	ElseIfs   []ElseIf
	Else      []Statement // nil when absent
}

type ElseIf struct {
	Condition Expression
	Body      []Statement
}

func (*IfStatement) statementNode() {}

type WhileStatement struct {
	Base
	Condition Expression
	Body      []Statement
}

func (*WhileStatement) statementNode() {}

type RepeatStatement struct {
	Base
	Body      []Statement
	Condition Expression
}

func (*RepeatStatement) statementNode() {}

// NumericForStatement is `for i = start, stop, step do ... end`.
type NumericForStatement struct {
	Base
	Variable string
	Start    Expression
	Stop     Expression
	Step     Expression // nil when omitted
	Body     []Statement
}

func (*NumericForStatement) statementNode() {}

// GenericForStatement is `for k, v in expr do ... end`.
type GenericForStatement struct {
	Base
	Names       []string
	Expressions []Expression
	Body        []Statement
}

func (*GenericForStatement) statementNode() {}

type DoStatement struct {
	Base
	Body []Statement
}

func (*DoStatement) statementNode() {}

type ReturnStatement struct {
	Base
	Values []Expression
}

func (*ReturnStatement) statementNode() {}

type BreakStatement struct{ Base }

func (*BreakStatement) statementNode() {}

type ContinueStatement struct{ Base }

func (*ContinueStatement) statementNode() {}

// TypeAliasStatement is `type Name<G...> = T`.
type TypeAliasStatement struct {
	Base
	Name     string
	Generics []TypeParameter
	Body     TypeAnnotation
	Doc      *DocComment
}

func (*TypeAliasStatement) statementNode() {}

// ExportStatement wraps a type alias declared with `export type`.
type ExportStatement struct {
	Base
	Alias *TypeAliasStatement
}

func (*ExportStatement) statementNode() {}

// CallStatement is an expression statement whose suffix expression ends in
// a call.
type CallStatement struct {
	Base
	Call Expression // *CallExpression or *MethodCallExpression
}

func (*CallStatement) statementNode() {}

// ErrorStatement is a well-formed placeholder produced during panic-mode
// recovery. It satisfies the Statement interface so downstream passes never
// special-case missing data.
type ErrorStatement struct {
	Base
	Message string
}

func (*ErrorStatement) statementNode() {}

// TypeParameter is a generic parameter: name, optional constraint, optional
// default. Constraints/defaults are parsed but not yet enforced by the
// subtyping engine (spec Open Question: generics are a documented
// limitation, not a bug).
type TypeParameter struct {
	Name       string
	Constraint TypeAnnotation // nil when absent
	Default    TypeAnnotation // nil when absent
}
