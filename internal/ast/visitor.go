package ast

// Visitor is implemented by callers that want to walk a tree produced by
// internal/parser. Visit is called with every node Walk encounters; if it
// returns a non-nil Visitor, Walk recurses into the node's children using
// that (possibly different) visitor. Returning nil stops descent into the
// current node's children.
//
// Mirrors the shape of go/ast.Visitor deliberately: callers already know
// the idiom from the standard library.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses node and its children in a fixed, documented order:
// statements visit their expressions left-to-right, table fields in
// source order, and function literals walk parameters and the return
// annotation before the body.
func Walk(v Visitor, node Node) {
	if node == nil || v == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}

	switch n := node.(type) {
	case *Chunk:
		walkStatements(v, n.Statements)

	// ---- statements ----
	case *LocalDecl:
		for _, a := range n.Annotations {
			Walk(v, a)
		}
		walkExpressions(v, n.Initializers)
	case *LocalFunctionDecl:
		Walk(v, n.Fn)
	case *FunctionDecl:
		Walk(v, n.Fn)
	case *AssignStatement:
		walkExpressions(v, n.Targets)
		walkExpressions(v, n.Values)
	case *CompoundAssignStatement:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *IfStatement:
		Walk(v, n.Condition)
		walkStatements(v, n.Then)
		for _, ei := range n.ElseIfs {
			Walk(v, ei.Condition)
			walkStatements(v, ei.Body)
		}
		walkStatements(v, n.Else)
	case *WhileStatement:
		Walk(v, n.Condition)
		walkStatements(v, n.Body)
	case *RepeatStatement:
		walkStatements(v, n.Body)
		Walk(v, n.Condition)
	case *NumericForStatement:
		Walk(v, n.Start)
		Walk(v, n.Stop)
		if n.Step != nil {
			Walk(v, n.Step)
		}
		walkStatements(v, n.Body)
	case *GenericForStatement:
		walkExpressions(v, n.Expressions)
		walkStatements(v, n.Body)
	case *DoStatement:
		walkStatements(v, n.Body)
	case *ReturnStatement:
		walkExpressions(v, n.Values)
	case *BreakStatement, *ContinueStatement, *ErrorStatement:
		// leaves
	case *TypeAliasStatement:
		for _, g := range n.Generics {
			walkTypeParameter(v, g)
		}
		Walk(v, n.Body)
	case *ExportStatement:
		Walk(v, n.Alias)
	case *CallStatement:
		Walk(v, n.Call)

	// ---- expressions ----
	case *Identifier, *NilLiteral, *BoolLiteral, *NumberLiteral,
		*StringLiteral, *VarargExpression, *ErrorExpression:
		// leaves
	case *InterpolatedStringExpression:
		for _, p := range n.Parts {
			if p.Expression != nil {
				Walk(v, p.Expression)
			}
		}
	case *FunctionExpression:
		if n.This != nil {
			Walk(v, n.This)
		}
		for _, g := range n.Generics {
			walkTypeParameter(v, g)
		}
		for _, p := range n.Params {
			if p.Annotation != nil {
				Walk(v, p.Annotation)
			}
		}
		if n.VarargType != nil {
			Walk(v, n.VarargType)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		walkStatements(v, n.Body)
	case *TableConstructorExpression:
		for _, f := range n.Fields {
			if f.Index != nil {
				Walk(v, f.Index)
			}
			Walk(v, f.Value)
		}
	case *BinaryExpression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *UnaryExpression:
		Walk(v, n.Operand)
	case *CallExpression:
		Walk(v, n.Callee)
		walkExpressions(v, n.Args)
	case *MethodCallExpression:
		Walk(v, n.Object)
		walkExpressions(v, n.Args)
	case *IndexExpression:
		Walk(v, n.Object)
		Walk(v, n.Index)
	case *MemberExpression:
		Walk(v, n.Object)
	case *IfExpression:
		Walk(v, n.Condition)
		Walk(v, n.Then)
		for _, ei := range n.ElseIfs {
			Walk(v, ei.Condition)
			Walk(v, ei.Then)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *TypeCastExpression:
		Walk(v, n.Expr)
		Walk(v, n.Type)
	case *ParenExpression:
		Walk(v, n.Inner)

	// ---- type annotations ----
	case *TypeReference:
		for _, a := range n.TypeArgs {
			Walk(v, a)
		}
	case *LiteralType:
		// leaf
	case *FunctionType:
		if n.This != nil {
			Walk(v, n.This)
		}
		for _, g := range n.Generics {
			walkTypeParameter(v, g)
		}
		for _, p := range n.Params {
			if p.Annotation != nil {
				Walk(v, p.Annotation)
			}
		}
		if n.VarargType != nil {
			Walk(v, n.VarargType)
		}
		if n.Return != nil {
			Walk(v, n.Return)
		}
	case *TableType:
		if n.Array {
			Walk(v, n.ArrayElem)
		}
		for _, p := range n.Properties {
			Walk(v, p.Type)
		}
		if n.Indexer != nil {
			Walk(v, n.Indexer.KeyType)
			Walk(v, n.Indexer.ValueType)
		}
	case *UnionType:
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *IntersectionType:
		for _, m := range n.Members {
			Walk(v, m)
		}
	case *OptionalType:
		Walk(v, n.Inner)
	case *TypeofType:
		Walk(v, n.Expr)
	case *VariadicType:
		Walk(v, n.Element)
	case *ParenType:
		Walk(v, n.Inner)
	case *ErrorType:
		// leaf

	default:
		panic("ast.Walk: unexpected node type")
	}

	v.Visit(nil)
}

func walkTypeParameter(v Visitor, tp TypeParameter) {
	if tp.Constraint != nil {
		Walk(v, tp.Constraint)
	}
	if tp.Default != nil {
		Walk(v, tp.Default)
	}
}

func walkStatements(v Visitor, stmts []Statement) {
	for _, s := range stmts {
		Walk(v, s)
	}
}

func walkExpressions(v Visitor, exprs []Expression) {
	for _, e := range exprs {
		Walk(v, e)
	}
}

// WalkChunk walks a whole parsed file. Named per the external-interface
// surface alongside WalkStatement/WalkExpression/WalkTypeAnnotation; it is
// otherwise identical to calling Walk directly.
func WalkChunk(v Visitor, chunk *Chunk) { Walk(v, chunk) }

// WalkStatement walks a single statement and everything it contains.
func WalkStatement(v Visitor, stmt Statement) { Walk(v, stmt) }

// WalkExpression walks a single expression and everything it contains.
func WalkExpression(v Visitor, expr Expression) { Walk(v, expr) }

// WalkTypeAnnotation walks a single type annotation and everything it
// contains.
func WalkTypeAnnotation(v Visitor, t TypeAnnotation) { Walk(v, t) }

// inspector adapts a plain func(Node) bool into a Visitor, mirroring
// go/ast.Inspect.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses node in the same order as Walk, calling f for each
// node encountered (including a final nil once a subtree's children are
// exhausted, matching go/ast.Inspect). f returning false prunes descent
// into that node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
