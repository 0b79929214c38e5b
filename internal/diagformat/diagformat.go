// Package diagformat renders a checker.Diagnostic list as human-readable
// text: a header line, the offending source line, and a caret pointing at
// the column, optionally colored for a terminal.
package diagformat

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/checker"
)

// Options controls rendering.
type Options struct {
	File  string
	Color bool
}

// Format renders every diagnostic in order, separated by blank lines.
func Format(source string, diags []checker.Diagnostic, opts Options) string {
	var sb strings.Builder
	lines := strings.Split(source, "\n")
	for i, d := range diags {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(formatOne(lines, d, opts))
	}
	return sb.String()
}

func formatOne(lines []string, d checker.Diagnostic, opts Options) string {
	var sb strings.Builder

	sevWord := severityWord(d.Severity, opts.Color)
	loc := fmt.Sprintf("%d:%d", d.Range.Start.Line, d.Range.Start.Column)
	if opts.File != "" {
		loc = opts.File + ":" + loc
	}
	sb.WriteString(fmt.Sprintf("%s: %s [%s] %s\n", loc, sevWord, d.Code, d.Message))

	line := sourceLine(lines, d.Range.Start.Line)
	if line == "" {
		return sb.String()
	}
	prefix := fmt.Sprintf("%5d | ", d.Range.Start.Line)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")

	caretCol := d.Range.Start.Column - 1
	if caretCol < 0 {
		caretCol = 0
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+caretCol))
	caret := "^"
	if opts.Color {
		caret = colorFor(d.Severity).Sprint(caret)
	}
	sb.WriteString(caret)
	sb.WriteString("\n")

	return sb.String()
}

func sourceLine(lines []string, lineNum int) string {
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func severityWord(sev checker.Severity, useColor bool) string {
	word := sev.String()
	if !useColor {
		return word
	}
	return colorFor(sev).Sprint(word)
}

func colorFor(sev checker.Severity) *color.Color {
	switch sev {
	case checker.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case checker.SeverityWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
