// Package checker implements the bidirectional type checker: a single AST
// walk that enters and exits scopes in lockstep with block structure,
// infers expression types bottom-up, and reports diagnostics through the
// E0NN/W0NN taxonomy as it goes.
package checker

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/env"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ignorelines"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/universe"
)

// Options configures a single Check call.
type Options struct {
	Mode     types.Mode
	Universe universe.Universe
	Ignore   *ignorelines.Set
}

// Result is what a completed Check produces.
type Result struct {
	Diagnostics []Diagnostic
	Environment *env.Environment
	AllSymbols  []string
}

// funcFrame tracks the declared return type of the function currently being
// checked, so a nested ReturnStatement can be validated against it (E005).
type funcFrame struct {
	returnType types.Type
}

// Checker is the mutable state threaded through a single Check call. It is
// not safe for concurrent use; build a fresh Checker per check.
type Checker struct {
	env       *env.Environment
	ctx       types.Context
	diags     *diagSink
	universe  universe.Universe
	funcStack []*funcFrame

	genericAliases map[string]*ast.TypeAliasStatement
	instantiations map[string]types.Type
}

// Check type-checks chunk under opts and returns every diagnostic produced
// plus the populated environment, matching spec's
// check(ast, {mode, classes, enums, ignore_state?}) -> {diagnostics, environment, all_symbols}.
func Check(chunk *ast.Chunk, opts Options) Result {
	c := &Checker{
		env:            env.New(),
		ctx:            types.Context{Mode: opts.Mode},
		diags:          &diagSink{ignored: opts.Ignore},
		universe:       opts.Universe,
		genericAliases: make(map[string]*ast.TypeAliasStatement),
		instantiations: make(map[string]types.Type),
	}
	c.env.PopulateBuiltins(env.BundleStdlib)
	c.seedGlobals()

	c.env.EnterScope(env.ScopeModule)
	for _, stmt := range chunk.Statements {
		c.checkStatement(stmt)
	}
	c.env.ExitScope()

	return Result{
		Diagnostics: c.diags.out,
		Environment: c.env,
		AllSymbols:  c.env.AllSymbolNames(),
	}
}

// seedGlobals merges the universe's stdlib bundle and Roblox class/enum
// tables into the global scope, ahead of the module-level checking pass.
func (c *Checker) seedGlobals() {
	if c.universe == nil {
		return
	}
	for name, t := range c.universe.BuildStdlib() {
		c.env.DefineSymbol(name, t, env.SymGlobal, false, "")
	}
	for _, cls := range c.universe.BuildRobloxClasses() {
		c.env.DefineClass(cls)
	}
	for _, en := range c.universe.BuildEnums() {
		c.env.DefineEnum(en)
	}
}

func docString(d *ast.DocComment) string {
	if d == nil {
		return ""
	}
	return d.Description
}

func (c *Checker) checkBlock(stmts []ast.Statement) {
	for _, stmt := range stmts {
		c.checkStatement(stmt)
	}
}

// checkStatement dispatches over every statement variant, entering/exiting
// scopes in lockstep with block structure (spec §4.6 "Walk").
func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LocalDecl:
		c.checkLocalDecl(s)
	case *ast.LocalFunctionDecl:
		c.checkLocalFunctionDecl(s)
	case *ast.FunctionDecl:
		c.checkFunctionDecl(s)
	case *ast.AssignStatement:
		c.checkAssignStatement(s)
	case *ast.CompoundAssignStatement:
		c.checkCompoundAssignStatement(s)
	case *ast.IfStatement:
		c.checkIfStatement(s)
	case *ast.WhileStatement:
		c.inferExpression(s.Condition)
		c.env.EnterScope(env.ScopeLoop)
		c.checkBlock(s.Body)
		c.env.ExitScope()
	case *ast.RepeatStatement:
		c.env.EnterScope(env.ScopeLoop)
		c.checkBlock(s.Body)
		c.inferExpression(s.Condition) // repeat's condition sees the loop body's scope
		c.env.ExitScope()
	case *ast.NumericForStatement:
		c.checkNumericFor(s)
	case *ast.GenericForStatement:
		c.checkGenericFor(s)
	case *ast.DoStatement:
		c.env.EnterScope(env.ScopeBlock)
		c.checkBlock(s.Body)
		c.env.ExitScope()
	case *ast.ReturnStatement:
		c.checkReturnStatement(s)
	case *ast.BreakStatement:
		if !c.env.IsInLoopScope() {
			c.diags.errorf(E001, s.Range(), "break used outside a loop")
		}
	case *ast.ContinueStatement:
		if !c.env.IsInLoopScope() {
			c.diags.errorf(E001, s.Range(), "continue used outside a loop")
		}
	case *ast.TypeAliasStatement:
		c.checkTypeAlias(s)
	case *ast.ExportStatement:
		c.checkTypeAlias(s.Alias)
	case *ast.CallStatement:
		c.inferExpression(s.Call)
	case *ast.ErrorStatement:
		// well-formed recovery placeholder; nothing to check
	}
}

func (c *Checker) checkLocalDecl(s *ast.LocalDecl) {
	values := c.inferInitializerList(s.Initializers, len(s.Names))
	for i, name := range s.Names {
		var declared types.Type
		if i < len(s.Annotations) && s.Annotations[i] != nil {
			declared = c.resolveType(s.Annotations[i])
			if i < len(values) && !types.IsAssignable(values[i], declared, c.ctx) {
				c.diags.errorf(E002, s.NameRanges[i], "cannot assign %s to %s", values[i].String(), declared.String())
			}
		} else if i < len(values) {
			declared = c.widen(values[i])
		} else {
			declared = types.Any
		}
		c.env.DefineSymbol(name, declared, env.SymVariable, true, docString(s.Doc))
	}
}

func (c *Checker) checkLocalFunctionDecl(s *ast.LocalFunctionDecl) {
	// Defined before the body is checked so the function can recurse.
	placeholder := c.env.DefineSymbol(s.Name, types.Any, env.SymFunction, false, docString(s.Doc))
	fn := c.checkFunctionLiteral(s.Fn, nil)
	placeholder.Type = fn
}

// checkFunctionDecl handles `function a.b:c(...)`, inferring an implicit
// self parameter type for method declarations (the dotted path's owning
// table/class) per SPEC_FULL.md's self-parameter-inference supplement.
func (c *Checker) checkFunctionDecl(s *ast.FunctionDecl) {
	var thisType types.Type
	if s.Method != "" {
		thisType = c.resolveNamePathType(s.NamePath)
	}
	fn := c.checkFunctionLiteral(s.Fn, thisType)
	if len(s.NamePath) > 0 {
		kind := env.SymFunction
		if s.Local {
			kind = env.SymVariable
		}
		c.env.DefineSymbol(s.NamePath[0], fn, kind, false, docString(s.Doc))
	}
}

// resolveNamePathType walks a dotted declaration path (`a.b` in
// `function a.b:c(...)`) to find the table/class the method hangs off of,
// used as the inferred `self` type inside the body.
func (c *Checker) resolveNamePathType(path []string) types.Type {
	if len(path) == 0 {
		return types.Any
	}
	sym, ok := c.env.LookupSymbol(path[0])
	if !ok {
		return types.Any
	}
	var rng token.Range
	if sym.Declaration != nil {
		rng = *sym.Declaration
	}
	cur := sym.Type
	for _, seg := range path[1:] {
		cur = c.lookupMember(cur, seg, rng, false)
	}
	return cur
}

func (c *Checker) checkFunctionLiteral(fn *ast.FunctionExpression, thisType types.Type) types.Function {
	if thisType == nil && fn.This != nil {
		thisType = c.resolveType(fn.This)
	}

	params := make([]types.FuncParam, len(fn.Params))
	c.env.EnterScope(env.ScopeFunction)
	if thisType != nil {
		c.env.DefineSymbol("self", thisType, env.SymParameter, true, "")
	}
	for i, p := range fn.Params {
		pt := c.resolveType(p.Annotation)
		if p.Annotation == nil {
			pt = types.Any
		}
		params[i] = types.FuncParam{Name: p.Name, Type: pt, Optional: p.Optional}
		c.env.DefineSymbol(p.Name, pt, env.SymParameter, true, "")
	}
	var variadicOf types.Type
	if fn.Variadic {
		if fn.VarargType != nil {
			variadicOf = c.resolveType(fn.VarargType)
		} else {
			variadicOf = types.Any
		}
		c.env.DefineSymbol("...", variadicOf, env.SymParameter, true, "")
	}

	returnType := c.resolveType(fn.ReturnType)
	if fn.ReturnType == nil {
		returnType = types.Any
	}
	c.funcStack = append(c.funcStack, &funcFrame{returnType: returnType})
	c.checkBlock(fn.Body)
	c.funcStack = c.funcStack[:len(c.funcStack)-1]
	c.env.ExitScope()

	generics := make([]types.TypeParam, len(fn.Generics))
	for i, g := range fn.Generics {
		generics[i] = types.TypeParam{Name: g.Name}
	}

	return types.Function{
		Generics: generics, This: thisType, Params: params,
		Variadic: fn.Variadic, VariadicOf: variadicOf, Return: returnType,
	}
}

func (c *Checker) checkAssignStatement(s *ast.AssignStatement) {
	values := c.inferInitializerList(s.Values, len(s.Targets))
	for i, target := range s.Targets {
		targetType := c.inferExpression(target)
		if i >= len(values) {
			continue
		}
		if !types.IsAssignable(values[i], targetType, c.ctx) {
			c.diags.errorf(E002, target.Range(), "cannot assign %s to %s", values[i].String(), targetType.String())
		}
	}
}

func (c *Checker) checkCompoundAssignStatement(s *ast.CompoundAssignStatement) {
	targetType := c.inferExpression(s.Target)
	valueType := c.inferExpression(s.Value)
	result := c.inferBinary(s.Operator, targetType, valueType, s.Range())
	if !types.IsAssignable(result, targetType, c.ctx) && !isArithmeticOp(s.Operator) {
		c.diags.errorf(E003, s.Range(), "cannot assign %s to %s", result.String(), targetType.String())
	}
}

func (c *Checker) checkIfStatement(s *ast.IfStatement) {
	c.inferExpression(s.Condition)
	ns := c.collectNarrowings(s.Condition)

	c.env.EnterScope(env.ScopeConditional)
	c.applyNarrowings(ns)
	c.checkBlock(s.Then)
	c.env.ExitScope()

	for _, ei := range s.ElseIfs {
		c.inferExpression(ei.Condition)
		eins := c.collectNarrowings(ei.Condition)
		c.env.EnterScope(env.ScopeConditional)
		c.applyNarrowings(eins)
		c.checkBlock(ei.Body)
		c.env.ExitScope()
	}

	if s.Else != nil {
		c.env.EnterScope(env.ScopeConditional)
		c.checkBlock(s.Else)
		c.env.ExitScope()
	}
}

func (c *Checker) checkNumericFor(s *ast.NumericForStatement) {
	start := c.inferExpression(s.Start)
	stop := c.inferExpression(s.Stop)
	if !c.isNumericCompatible(start) {
		c.diags.errorf(E004, s.Start.Range(), "for-loop start bound must be numeric, got %s", start.String())
	}
	if !c.isNumericCompatible(stop) {
		c.diags.errorf(E004, s.Stop.Range(), "for-loop stop bound must be numeric, got %s", stop.String())
	}
	if s.Step != nil {
		step := c.inferExpression(s.Step)
		if !c.isNumericCompatible(step) {
			c.diags.errorf(E004, s.Step.Range(), "for-loop step must be numeric, got %s", step.String())
		}
	}
	c.env.EnterScope(env.ScopeLoop)
	c.env.DefineSymbol(s.Variable, types.Number, env.SymVariable, true, "")
	c.checkBlock(s.Body)
	c.env.ExitScope()
}

func (c *Checker) checkGenericFor(s *ast.GenericForStatement) {
	for _, e := range s.Expressions {
		c.inferExpression(e)
	}
	c.env.EnterScope(env.ScopeLoop)
	for _, name := range s.Names {
		c.env.DefineSymbol(name, types.Any, env.SymVariable, true, "")
	}
	c.checkBlock(s.Body)
	c.env.ExitScope()
}

func (c *Checker) checkReturnStatement(s *ast.ReturnStatement) {
	var actual types.Type = types.Nil
	if len(s.Values) > 0 {
		vals := c.inferInitializerList(s.Values, len(s.Values))
		actual = vals[0]
		for _, v := range vals[1:] {
			actual = types.CommonType(actual, v, c.ctx)
		}
	}
	if len(c.funcStack) == 0 {
		return
	}
	frame := c.funcStack[len(c.funcStack)-1]
	if frame.returnType == nil || frame.returnType.Kind() == types.KindAny {
		return
	}
	if !types.IsAssignable(actual, frame.returnType, c.ctx) {
		c.diags.errorf(E005, s.Range(), "cannot return %s, function declares %s", actual.String(), frame.returnType.String())
	}
}
