package parser

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
)

func parseOk(t *testing.T, src string) *ast.Chunk {
	t.Helper()
	chunk, errs := ParseSource(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return chunk
}

func TestParseLocalDeclWithAnnotationAndDoc(t *testing.T) {
	src := "--- Holds a player's score.\n--- @type number\nlocal score: number = 0\n"
	chunk := parseOk(t, src)
	if len(chunk.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(chunk.Statements))
	}
	decl, ok := chunk.Statements[0].(*ast.LocalDecl)
	if !ok {
		t.Fatalf("expected *ast.LocalDecl, got %T", chunk.Statements[0])
	}
	if len(decl.Names) != 1 || decl.Names[0] != "score" {
		t.Fatalf("unexpected names: %v", decl.Names)
	}
	if decl.Doc == nil {
		t.Fatal("expected doc comment to be attached")
	}
	if _, ok := decl.Annotations[0].(*ast.TypeReference); !ok {
		t.Fatalf("expected TypeReference annotation, got %T", decl.Annotations[0])
	}
}

func TestParseIfElseIf(t *testing.T) {
	src := `
if x > 0 then
	print("positive")
elseif x < 0 then
	print("negative")
else
	print("zero")
end
`
	chunk := parseOk(t, src)
	ifStmt, ok := chunk.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", chunk.Statements[0])
	}
	if len(ifStmt.ElseIfs) != 1 {
		t.Fatalf("expected 1 elseif, got %d", len(ifStmt.ElseIfs))
	}
	if len(ifStmt.Else) != 1 {
		t.Fatalf("expected else body of 1 statement, got %d", len(ifStmt.Else))
	}
}

func TestParseFunctionDeclMethodSuffix(t *testing.T) {
	chunk := parseOk(t, "function obj:doThing(a: number): boolean\n\treturn a > 0\nend\n")
	decl, ok := chunk.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", chunk.Statements[0])
	}
	if decl.Method != "doThing" {
		t.Fatalf("expected method name doThing, got %q", decl.Method)
	}
	if len(decl.Fn.Params) != 1 || decl.Fn.Params[0].Name != "a" {
		t.Fatalf("unexpected params: %+v", decl.Fn.Params)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	chunk := parseOk(t, "local x = 1 + 2 * 3\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	bin, ok := decl.Initializers[0].(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected top-level BinaryExpression, got %T", decl.Initializers[0])
	}
	if bin.Left.(*ast.NumberLiteral).Value != 1 {
		t.Fatalf("expected left operand 1")
	}
	rhs, ok := bin.Right.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected right operand to be the tighter-binding 2*3, got %T", bin.Right)
	}
	if rhs.Left.(*ast.NumberLiteral).Value != 2 || rhs.Right.(*ast.NumberLiteral).Value != 3 {
		t.Fatalf("unexpected rhs operands")
	}
}

func TestParseConcatRightAssociative(t *testing.T) {
	chunk := parseOk(t, `local s = "a" .. "b" .. "c"` + "\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	bin := decl.Initializers[0].(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.StringLiteral); !ok {
		t.Fatalf("expected left operand to be the single literal 'a' under right-assoc concat, got %T", bin.Left)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected right operand to be the nested b..c, got %T", bin.Right)
	}
}

func TestParseMethodCallAndIndexChain(t *testing.T) {
	chunk := parseOk(t, `local v = game:GetService("Workspace").Terrain` + "\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	member, ok := decl.Initializers[0].(*ast.MemberExpression)
	if !ok {
		t.Fatalf("expected MemberExpression at top, got %T", decl.Initializers[0])
	}
	if member.Name != "Terrain" {
		t.Fatalf("expected member name Terrain, got %q", member.Name)
	}
	if _, ok := member.Object.(*ast.MethodCallExpression); !ok {
		t.Fatalf("expected method call object, got %T", member.Object)
	}
}

func TestParseTableConstructorMixed(t *testing.T) {
	chunk := parseOk(t, `local t = {1, 2, x = 3, [4 + 1] = 5}` + "\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	tbl := decl.Initializers[0].(*ast.TableConstructorExpression)
	if len(tbl.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(tbl.Fields))
	}
	if tbl.Fields[2].Kind != ast.TableFieldKeyed || tbl.Fields[2].Key != "x" {
		t.Fatalf("expected keyed field x, got %+v", tbl.Fields[2])
	}
	if tbl.Fields[3].Kind != ast.TableFieldComputed {
		t.Fatalf("expected computed field, got %+v", tbl.Fields[3])
	}
}

func TestParseUnionAndOptionalType(t *testing.T) {
	chunk := parseOk(t, "local x: (number | string)? = nil\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	opt, ok := decl.Annotations[0].(*ast.OptionalType)
	if !ok {
		t.Fatalf("expected OptionalType, got %T", decl.Annotations[0])
	}
	if _, ok := opt.Inner.(*ast.ParenType); !ok {
		t.Fatalf("expected parenthesized union inside optional, got %T", opt.Inner)
	}
}

func TestParseFunctionType(t *testing.T) {
	chunk := parseOk(t, "local f: (number, string) -> boolean\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	ft, ok := decl.Annotations[0].(*ast.FunctionType)
	if !ok {
		t.Fatalf("expected FunctionType, got %T", decl.Annotations[0])
	}
	if len(ft.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(ft.Params))
	}
}

func TestParseTypeAliasAndExport(t *testing.T) {
	chunk := parseOk(t, "export type ID = number\ntype List<T> = {T}\n")
	exp, ok := chunk.Statements[0].(*ast.ExportStatement)
	if !ok {
		t.Fatalf("expected ExportStatement, got %T", chunk.Statements[0])
	}
	if exp.Alias.Name != "ID" {
		t.Fatalf("expected alias name ID, got %q", exp.Alias.Name)
	}
	alias, ok := chunk.Statements[1].(*ast.TypeAliasStatement)
	if !ok {
		t.Fatalf("expected TypeAliasStatement, got %T", chunk.Statements[1])
	}
	if len(alias.Generics) != 1 || alias.Generics[0].Name != "T" {
		t.Fatalf("unexpected generics: %+v", alias.Generics)
	}
	tt, ok := alias.Body.(*ast.TableType)
	if !ok || !tt.Array {
		t.Fatalf("expected array table type body, got %+v", alias.Body)
	}
}

func TestParseContextualKeywordAsFieldName(t *testing.T) {
	chunk := parseOk(t, "local t = {type = 1, [\"end\"] = 2}\n")
	decl := chunk.Statements[0].(*ast.LocalDecl)
	tbl := decl.Initializers[0].(*ast.TableConstructorExpression)
	if tbl.Fields[0].Key != "type" {
		t.Fatalf("expected contextual keyword 'type' accepted as field name, got %+v", tbl.Fields[0])
	}
}

func TestParseNumericAndGenericFor(t *testing.T) {
	chunk := parseOk(t, "for i = 1, 10, 2 do end\nfor k, v in pairs(t) do end\n")
	if _, ok := chunk.Statements[0].(*ast.NumericForStatement); !ok {
		t.Fatalf("expected NumericForStatement, got %T", chunk.Statements[0])
	}
	if _, ok := chunk.Statements[1].(*ast.GenericForStatement); !ok {
		t.Fatalf("expected GenericForStatement, got %T", chunk.Statements[1])
	}
}

func TestParseBreakOutsideLoopStillParses(t *testing.T) {
	// Parsing never rejects break outside a loop -- that's a checker (E001)
	// concern, not a syntax error (spec §7).
	chunk := parseOk(t, "break\n")
	if _, ok := chunk.Statements[0].(*ast.BreakStatement); !ok {
		t.Fatalf("expected BreakStatement, got %T", chunk.Statements[0])
	}
}

func TestParseErrorRecoveryMissingEnd(t *testing.T) {
	src := "if true then\n\tlocal x = 1\nlocal y = 2\n"
	_, errs := ParseSource(src)
	if len(errs) == 0 {
		t.Fatal("expected a parse error for the missing 'end'")
	}
}

func TestParseCompoundAssignment(t *testing.T) {
	chunk := parseOk(t, "x += 1\n")
	stmt, ok := chunk.Statements[0].(*ast.CompoundAssignStatement)
	if !ok {
		t.Fatalf("expected CompoundAssignStatement, got %T", chunk.Statements[0])
	}
	if stmt.Target.(*ast.Identifier).Name != "x" {
		t.Fatalf("unexpected target")
	}
}
