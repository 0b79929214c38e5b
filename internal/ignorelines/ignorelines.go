// Package ignorelines parses @rbxls-ignore[-line]/@rbxls-disable[-next-line]/
// @rbxls-enable directive comments into a set of suppressed source lines.
package ignorelines

import (
	"strings"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// Set is the set of 1-based line numbers whose diagnostics are suppressed.
type Set struct {
	lines map[int]struct{}
}

func (s *Set) Ignored(line int) bool {
	if s == nil {
		return false
	}
	_, ok := s.lines[line]
	return ok
}

func newSet() *Set { return &Set{lines: make(map[int]struct{})} }

func (s *Set) add(line int) { s.lines[line] = struct{}{} }

func (s *Set) addRange(from, to int) {
	for l := from; l <= to; l++ {
		s.add(l)
	}
}

// Build scans comment tokens in line order, recognizing the directive
// comments documented in spec §4.7. lastLine is the last source line,
// used to close an unmatched trailing `@rbxls-disable`.
func Build(comments []token.Token, lastLine int) *Set {
	out := newSet()
	disableStart := -1

	for _, c := range comments {
		text := strings.TrimSpace(strings.TrimPrefix(c.Lexeme, "--"))
		line := c.Start.Line

		switch {
		case hasDirective(text, "@rbxls-ignore-line"):
			out.add(line)
		case hasDirective(text, "@rbxls-ignore"), hasDirective(text, "@rbxls-disable-next-line"):
			out.add(line + 1)
		case hasDirective(text, "@rbxls-disable"):
			if disableStart == -1 {
				disableStart = line
			}
		case hasDirective(text, "@rbxls-enable"):
			if disableStart != -1 {
				out.addRange(disableStart, line)
				disableStart = -1
			}
		}
	}

	if disableStart != -1 {
		out.addRange(disableStart, lastLine)
	}
	return out
}

func hasDirective(text, directive string) bool {
	text = strings.TrimSpace(text)
	return text == directive || strings.HasPrefix(text, directive+" ") || strings.HasPrefix(text, directive+"\t")
}
