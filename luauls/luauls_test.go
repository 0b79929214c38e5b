package luauls

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/checker"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/universe"
)

func TestLexRoundTrip(t *testing.T) {
	src := "local x = 1 + 2"
	toks := Lex(src)
	var rebuilt string
	for _, tk := range toks {
		rebuilt += tk.Lexeme
	}
	if rebuilt != src {
		t.Fatalf("lexeme concatenation should reproduce the source, got %q want %q", rebuilt, src)
	}
}

func TestParseReportsNoErrorsForValidSource(t *testing.T) {
	chunk, errs := Parse(`local x = 1
print(x)`)
	if len(errs) != 0 {
		t.Fatalf("expected no parse errors, got %v", errs)
	}
	if len(chunk.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(chunk.Statements))
	}
}

func TestCheckFindsAssignmentMismatch(t *testing.T) {
	result, errs := Check(`local x: number = "hi"`, WithTypeCheck(false))
	if len(errs) != 0 {
		t.Fatalf("expected no parse errors, got %v", errs)
	}
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == "E002" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an E002 diagnostic, got %v", result.Diagnostics)
	}
}

func TestCheckWithUniverseResolvesClasses(t *testing.T) {
	result, _ := Check(`
local part = Instance.new("Part")
print(part.Position)
`, WithUniverse(universe.NewDemo()))
	for _, d := range result.Diagnostics {
		if d.Severity == checker.SeverityError {
			t.Fatalf("expected no error diagnostics, got %v", result.Diagnostics)
		}
	}
}
