package diagformat

import (
	"strings"
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/checker"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		diags       []checker.Diagnostic
		opts        Options
		wantContain []string
	}{
		{
			name:   "error with file, no color",
			source: "local x: number = \"hi\"",
			diags: []checker.Diagnostic{{
				Message:  `cannot assign string to number`,
				Range:    token.Range{Start: token.Position{Line: 1, Column: 7}},
				Severity: checker.SeverityError,
				Code:     "E002",
			}},
			opts: Options{File: "main.luau"},
			wantContain: []string{
				"main.luau:1:7",
				"error",
				"[E002]",
				"1 | local x: number = \"hi\"",
				"^",
				"cannot assign string to number",
			},
		},
		{
			name:   "warning without file",
			source: "local p = Instance.new(\"Part\")\nprint(p.position)",
			diags: []checker.Diagnostic{{
				Message:  `"position" should be "Position"`,
				Range:    token.Range{Start: token.Position{Line: 2, Column: 9}},
				Severity: checker.SeverityWarning,
				Code:     "W002",
			}},
			wantContain: []string{
				"2:9",
				"warning",
				"[W002]",
				"2 | print(p.position)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.source, tt.diags, tt.opts)
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatMultipleDiagnosticsSeparated(t *testing.T) {
	diags := []checker.Diagnostic{
		{Message: "a", Range: token.Range{Start: token.Position{Line: 1, Column: 1}}, Severity: checker.SeverityError, Code: "E000"},
		{Message: "b", Range: token.Range{Start: token.Position{Line: 2, Column: 1}}, Severity: checker.SeverityError, Code: "E001"},
	}
	got := Format("line1\nline2\n", diags, Options{})
	if strings.Count(got, "E000") != 1 || strings.Count(got, "E001") != 1 {
		t.Fatalf("expected both diagnostics rendered once each, got:\n%s", got)
	}
}
