// Package luauls is the facade tying the lexer, parser, and checker layers
// together behind three entry points: Lex, Parse, and Check.
package luauls

import (
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ast"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/checker"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/ignorelines"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/lexer"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/parser"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/types"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/universe"
)

// Config holds the settings the functional options below set.
// preserveComments has no option and is not read by Lex, Parse or Check.
type Config struct {
	mode            types.Mode
	universe        universe.Universe
	preserveComments bool
}

// Option mutates a Config.
type Option func(*Config)

// WithTypeCheck selects strict mode when strict is true, nonstrict otherwise.
// NoCheck mode is only reachable via WithMode directly since it has no
// obvious boolean mapping.
func WithTypeCheck(strict bool) Option {
	return func(c *Config) {
		if strict {
			c.mode = types.ModeStrict
		} else {
			c.mode = types.ModeNonStrict
		}
	}
}

// WithMode sets the checking mode directly.
func WithMode(mode types.Mode) Option {
	return func(c *Config) { c.mode = mode }
}

// WithUniverse supplies the class/enum/stdlib tables the checker consults.
// Without this option Check runs against an empty universe: no Roblox
// classes, no Enum.* tables, and no globals beyond the standard-library
// bundle the checker always seeds.
func WithUniverse(u universe.Universe) Option {
	return func(c *Config) { c.universe = u }
}

func newConfig(opts []Option) Config {
	cfg := Config{mode: types.ModeNonStrict}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Lex tokenizes src, including trivia tokens (comments, whitespace).
func Lex(src string, opts ...Option) []token.Token {
	return lexer.Lex(src)
}

// Parse lexes and parses src into a Chunk, returning any parse errors
// accumulated during panic-mode recovery.
func Parse(src string, opts ...Option) (*ast.Chunk, []*parser.Error) {
	return parser.ParseSource(src)
}

// Check parses and then type-checks src, returning the full diagnostic list
// plus the populated environment.
func Check(src string, opts ...Option) (checker.Result, []*parser.Error) {
	cfg := newConfig(opts)

	chunk, perrs := parser.ParseSource(src)

	toks := lexer.Lex(src)
	var comments []token.Token
	for _, tk := range toks {
		if tk.Kind == token.Comment {
			comments = append(comments, tk)
		}
	}
	lastLine := 1
	if n := len(toks); n > 0 {
		lastLine = toks[n-1].Start.Line
	}

	result := checker.Check(chunk, checker.Options{
		Mode:     cfg.mode,
		Universe: cfg.universe,
		Ignore:   ignorelines.Build(comments, lastLine),
	})
	return result, perrs
}
