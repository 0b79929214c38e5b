package ast_test

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/parser"
)

type countingVisitor struct{ count *int }

func (v *countingVisitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	*v.count++
	return v
}

type stopAfterFirstVisitor struct{ count *int }

func (v *stopAfterFirstVisitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	*v.count++
	return nil
}

func mustParse(t *testing.T, src string) *ast.Chunk {
	t.Helper()
	chunk, errs := parser.ParseSource(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return chunk
}

func TestWalkVisitsEveryNode(t *testing.T) {
	chunk := mustParse(t, `
local x: number = 1
local function add(a: number, b: number): number
	return a + b
end
if x > 0 then
	print(x)
end
`)

	count := 0
	ast.Walk(&countingVisitor{count: &count}, chunk)

	if count < 10 {
		t.Fatalf("expected at least 10 nodes visited, got %d", count)
	}
}

func TestWalkNilVisitorStopsDescent(t *testing.T) {
	chunk := mustParse(t, `
local x = 1
local y = 2
`)

	count := 0
	ast.Walk(&stopAfterFirstVisitor{count: &count}, chunk)

	if count != 1 {
		t.Fatalf("expected descent to stop after the root, got %d visits", count)
	}
}

func TestInspectFindsFunctionLiterals(t *testing.T) {
	chunk := mustParse(t, `
local function outer()
	local function inner()
		return 1
	end
	return inner()
end
`)

	funcs := 0
	ast.Inspect(chunk, func(n ast.Node) bool {
		if _, ok := n.(*ast.FunctionExpression); ok {
			funcs++
		}
		return true
	})

	if funcs != 2 {
		t.Fatalf("expected 2 function literals, got %d", funcs)
	}
}

func TestWalkOrderStatementsLeftToRight(t *testing.T) {
	chunk := mustParse(t, `print(a, b, c)`)

	var names []string
	ast.Inspect(chunk, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			names = append(names, id.Name)
		}
		return true
	})

	want := []string{"print", "a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected identifiers %v, got %v", want, names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("expected identifier order %v, got %v", want, names)
		}
	}
}

func TestWalkTableFieldsInSourceOrder(t *testing.T) {
	chunk := mustParse(t, `local t = {1, 2, x = 3}`)

	var nums []float64
	ast.Inspect(chunk, func(n ast.Node) bool {
		if lit, ok := n.(*ast.NumberLiteral); ok {
			nums = append(nums, lit.Value)
		}
		return true
	})

	want := []float64{1, 2, 3}
	if len(nums) != len(want) {
		t.Fatalf("expected numeric literals %v in source order, got %v", want, nums)
	}
	for i, n := range want {
		if nums[i] != n {
			t.Fatalf("expected order %v, got %v", want, nums)
		}
	}
}

func TestWalkFunctionParamsBeforeBody(t *testing.T) {
	fn := mustParse(t, `local function f(a: number, b: number): number
	return a
end`).Statements[0].(*ast.LocalFunctionDecl).Fn

	var seenReturnType, seenBody bool
	ast.Inspect(fn, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.TypeReference:
			seenReturnType = true
		case *ast.ReturnStatement:
			if !seenReturnType {
				t.Fatalf("return type annotation should be walked before the body")
			}
			seenBody = true
		}
		return true
	})
	if !seenBody {
		t.Fatalf("expected to walk into the function body")
	}
}
