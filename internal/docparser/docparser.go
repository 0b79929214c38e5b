// Package docparser parses a block of consecutive "---"-prefixed comment
// lines into a structured DocComment: free-text description plus @param,
// @return, @type, @class, @field, and @deprecated tags.
package docparser

import (
	"strings"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// Parse parses the given "---" lines (already stripped of their leading
// "---" marker and surrounding whitespace is not yet trimmed) into a
// DocComment spanning rng.
func Parse(lines []string, rng token.Range) *ast.DocComment {
	doc := &ast.DocComment{Rng: rng}
	var description []string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "@") {
			description = append(description, line)
			continue
		}

		tag, rest := splitTag(line)
		switch tag {
		case "@param":
			name, typ, desc := splitThree(rest)
			doc.Params = append(doc.Params, ast.DocParam{Name: name, Type: typ, Description: desc})
		case "@return":
			typ, desc := splitTwo(rest)
			doc.Returns = append(doc.Returns, ast.DocReturn{Type: typ, Description: desc})
		case "@field":
			name, typ, desc := splitThree(rest)
			doc.Fields = append(doc.Fields, ast.DocField{Name: name, Type: typ, Description: desc})
		case "@type":
			doc.Type = strings.TrimSpace(rest)
		case "@class":
			doc.Class = strings.TrimSpace(rest)
		case "@deprecated":
			doc.IsDeprecated = true
			msg := strings.TrimSpace(rest)
			if msg == "" {
				msg = "Deprecated"
			}
			doc.Deprecated = msg
		default:
			description = append(description, line)
		}
	}

	doc.Description = strings.TrimSpace(strings.Join(trimEmptyEdges(description), "\n"))
	return doc
}

func trimEmptyEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// splitTag splits a line like "@param name Type description" into its tag
// ("@param") and the remainder.
func splitTag(line string) (tag, rest string) {
	fields := strings.SplitN(line, " ", 2)
	tag = fields[0]
	if len(fields) == 2 {
		rest = fields[1]
	}
	return tag, rest
}

// splitTwo splits "Type description..." into a single whitespace-delimited
// type token and the remainder as description.
func splitTwo(s string) (typ, desc string) {
	s = strings.TrimSpace(s)
	fields := strings.SplitN(s, " ", 2)
	typ = fields[0]
	if len(fields) == 2 {
		desc = strings.TrimSpace(fields[1])
	}
	return typ, desc
}

// splitThree splits "name Type description..." into name, type, remainder.
func splitThree(s string) (name, typ, desc string) {
	s = strings.TrimSpace(s)
	fields := strings.SplitN(s, " ", 3)
	if len(fields) > 0 {
		name = fields[0]
	}
	if len(fields) > 1 {
		typ = fields[1]
	}
	if len(fields) > 2 {
		desc = strings.TrimSpace(fields[2])
	}
	return name, typ, desc
}
