package docparser

import (
	"testing"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

var zeroRange = token.Range{}

func TestParseDescriptionOnly(t *testing.T) {
	doc := Parse([]string{"Computes the sum of two numbers."}, zeroRange)
	if doc.Description != "Computes the sum of two numbers." {
		t.Fatalf("unexpected description: %q", doc.Description)
	}
	if len(doc.Params) != 0 || len(doc.Returns) != 0 {
		t.Fatalf("expected no tags, got %+v", doc)
	}
}

func TestParseTrimsBlankEdgeLines(t *testing.T) {
	doc := Parse([]string{"", "Hello.", "", "World.", ""}, zeroRange)
	if doc.Description != "Hello.\n\nWorld." {
		t.Fatalf("unexpected description: %q", doc.Description)
	}
}

func TestParseParamTag(t *testing.T) {
	doc := Parse([]string{"@param count number how many times to repeat"}, zeroRange)
	if len(doc.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(doc.Params))
	}
	p := doc.Params[0]
	if p.Name != "count" || p.Type != "number" || p.Description != "how many times to repeat" {
		t.Fatalf("unexpected param: %+v", p)
	}
}

func TestParseMultipleParams(t *testing.T) {
	doc := Parse([]string{
		"@param a number first",
		"@param b string second",
	}, zeroRange)
	if len(doc.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(doc.Params))
	}
	if doc.Params[0].Name != "a" || doc.Params[1].Name != "b" {
		t.Fatalf("expected params in source order, got %+v", doc.Params)
	}
}

func TestParseReturnTag(t *testing.T) {
	doc := Parse([]string{"@return boolean whether it succeeded"}, zeroRange)
	if len(doc.Returns) != 1 {
		t.Fatalf("expected 1 return, got %d", len(doc.Returns))
	}
	r := doc.Returns[0]
	if r.Type != "boolean" || r.Description != "whether it succeeded" {
		t.Fatalf("unexpected return: %+v", r)
	}
}

func TestParseFieldTag(t *testing.T) {
	doc := Parse([]string{"@field health number current hit points"}, zeroRange)
	if len(doc.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(doc.Fields))
	}
	f := doc.Fields[0]
	if f.Name != "health" || f.Type != "number" || f.Description != "current hit points" {
		t.Fatalf("unexpected field: %+v", f)
	}
}

func TestParseTypeAndClassTags(t *testing.T) {
	doc := Parse([]string{"@type Player", "@class PlayerController"}, zeroRange)
	if doc.Type != "Player" {
		t.Fatalf("expected Type %q, got %q", "Player", doc.Type)
	}
	if doc.Class != "PlayerController" {
		t.Fatalf("expected Class %q, got %q", "PlayerController", doc.Class)
	}
}

func TestParseDeprecatedWithMessage(t *testing.T) {
	doc := Parse([]string{"@deprecated use NewThing instead"}, zeroRange)
	if !doc.IsDeprecated {
		t.Fatalf("expected IsDeprecated true")
	}
	if doc.Deprecated != "use NewThing instead" {
		t.Fatalf("unexpected deprecated message: %q", doc.Deprecated)
	}
}

func TestParseDeprecatedWithoutMessageDefaults(t *testing.T) {
	doc := Parse([]string{"@deprecated"}, zeroRange)
	if !doc.IsDeprecated {
		t.Fatalf("expected IsDeprecated true")
	}
	if doc.Deprecated != "Deprecated" {
		t.Fatalf("expected default deprecated message, got %q", doc.Deprecated)
	}
}

func TestParseUnknownTagFallsBackToDescription(t *testing.T) {
	doc := Parse([]string{"@weirdtag not a real tag"}, zeroRange)
	if doc.Description != "@weirdtag not a real tag" {
		t.Fatalf("expected unknown tag folded into description, got %q", doc.Description)
	}
}

func TestParseRangeIsPreserved(t *testing.T) {
	rng := token.Range{
		Start: token.Position{Line: 3, Column: 1},
		End:   token.Position{Line: 5, Column: 10},
	}
	doc := Parse([]string{"hi"}, rng)
	if doc.Rng != rng {
		t.Fatalf("expected range to round-trip, got %+v", doc.Rng)
	}
}
