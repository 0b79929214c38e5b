package parser

import "github.com/0neShot101/rbxdev-ls-sub001/internal/token"

// Error is a syntactic failure: a message plus the source range it covers.
// Parsing never throws out of the top-level loop (spec §7). An unparseable
// expression, statement or type also leaves an Error* AST node in the tree;
// other errors (a missing expected token, for instance) are recorded only
// as an Error, and parsing continues as if the token were present.
type Error struct {
	Message string
	Range   token.Range
}

func (e *Error) Error() string { return e.Message }
