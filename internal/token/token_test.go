package token

import "testing"

func TestPositionLessComparesByteOffset(t *testing.T) {
	a := Position{ByteOffset: 5, Line: 2, Column: 1}
	b := Position{ByteOffset: 10, Line: 1, Column: 99}
	if !a.Less(b) {
		t.Fatalf("expected the earlier byte offset to sort first regardless of line/column")
	}
	if b.Less(a) {
		t.Fatalf("did not expect b to sort before a")
	}
}

func TestRangeJoinCoversBothRanges(t *testing.T) {
	r1 := Range{Start: Position{ByteOffset: 5}, End: Position{ByteOffset: 10}}
	r2 := Range{Start: Position{ByteOffset: 2}, End: Position{ByteOffset: 8}}

	joined := r1.Join(r2)
	if joined.Start.ByteOffset != 2 {
		t.Fatalf("expected joined start to be the earliest, got %d", joined.Start.ByteOffset)
	}
	if joined.End.ByteOffset != 10 {
		t.Fatalf("expected joined end to be the latest, got %d", joined.End.ByteOffset)
	}
}

func TestRangeJoinWithNestedRangeIsNoOp(t *testing.T) {
	outer := Range{Start: Position{ByteOffset: 0}, End: Position{ByteOffset: 20}}
	inner := Range{Start: Position{ByteOffset: 5}, End: Position{ByteOffset: 10}}

	joined := outer.Join(inner)
	if joined != outer {
		t.Fatalf("expected joining a contained range to leave the outer range unchanged, got %v", joined)
	}
}

func TestLookupKeywordRecognizesReservedWords(t *testing.T) {
	if k, ok := LookupKeyword("function"); !ok || k != Function {
		t.Fatalf("expected 'function' to resolve to the Function keyword kind")
	}
	if _, ok := LookupKeyword("notAKeyword"); ok {
		t.Fatalf("did not expect an arbitrary identifier to be a keyword")
	}
}

func TestIsContextualKeywordAllowsIdentifierPositions(t *testing.T) {
	for _, k := range []Kind{Type, And, Or, End, Function, Local} {
		if !IsContextualKeyword(k) {
			t.Fatalf("expected %s to be usable as a contextual identifier", k)
		}
	}
	if IsContextualKeyword(Identifier) {
		t.Fatalf("did not expect Identifier itself to be flagged as a contextual keyword")
	}
}

func TestIsTriviaClassifiesCommentsWhitespaceAndNewlines(t *testing.T) {
	for _, k := range []Kind{Comment, Whitespace, Newline} {
		if !IsTrivia(k) {
			t.Fatalf("expected %s to be trivia", k)
		}
	}
	if IsTrivia(Identifier) {
		t.Fatalf("did not expect Identifier to be trivia")
	}
}

func TestKindStringFallsBackForUnknownValues(t *testing.T) {
	if got := Plus.String(); got != "+" {
		t.Fatalf("expected Plus to stringify as '+', got %q", got)
	}
	unknown := Kind(10000)
	if got := unknown.String(); got != "Kind(10000)" {
		t.Fatalf("expected an unnamed kind to fall back to Kind(n), got %q", got)
	}
}

func TestTokenStringIncludesKindLexemeAndPosition(t *testing.T) {
	tok := Token{Kind: Identifier, Lexeme: "foo", Start: Position{Line: 1, Column: 3}}
	got := tok.String()
	want := `Identifier("foo")@1:3`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTokenRangeReflectsStartAndEnd(t *testing.T) {
	tok := Token{Start: Position{ByteOffset: 1}, End: Position{ByteOffset: 4}}
	r := tok.Range()
	if r.Start != tok.Start || r.End != tok.End {
		t.Fatalf("expected Range() to mirror the token's Start/End")
	}
}
