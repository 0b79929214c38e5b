package checker

import (
	"fmt"

	"github.com/0neShot101/rbxdev-ls-sub001/internal/ignorelines"
	"github.com/0neShot101/rbxdev-ls-sub001/internal/token"
)

// Severity is the diagnostic's display level.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Code is a stable diagnostic identifier in the E0NN/W0NN families. Editors
// and code-action collaborators match on these values directly.
type Code string

const (
	E000 Code = "E000" // reserved for an unclassified type error; not emitted by any pass today
	E001 Code = "E001" // break/continue outside a loop
	E002 Code = "E002" // assignment/initializer type mismatch
	E003 Code = "E003" // compound-assignment operand type mismatch
	E004 Code = "E004" // for-loop bound is not numeric
	E005 Code = "E005" // return type mismatch
	E006 Code = "E006" // unknown identifier (strict mode only)
	E007 Code = "E007" // callee is not callable
	E008 Code = "E008" // method not found on type
	E009 Code = "E009" // property not found on type
	E010 Code = "E010" // unknown named type
	E011 Code = "E011" // arithmetic operand type mismatch

	W001 Code = "W001" // deprecated member used
	W002 Code = "W002" // likely case-sensitivity mistake
)

// Tag annotates a diagnostic with editor-facing metadata (strikethrough for
// deprecated, fade for unnecessary code).
type Tag string

const (
	TagDeprecated  Tag = "deprecated"
	TagUnnecessary Tag = "unnecessary"
)

// Diagnostic is one reported finding.
type Diagnostic struct {
	Message  string
	Range    token.Range
	Severity Severity
	Code     Code
	Tags     []Tag
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", d.Range.Start, d.Severity, d.Code, d.Message)
}

// diagSink collects diagnostics and drops any whose start line falls in the
// ignored-line set, per spec §4.6's "dropped at push_diagnostic time".
type diagSink struct {
	out     []Diagnostic
	ignored *ignorelines.Set
}

func (s *diagSink) push(d Diagnostic) {
	if s.ignored != nil && s.ignored.Ignored(d.Range.Start.Line) {
		return
	}
	s.out = append(s.out, d)
}

func (s *diagSink) errorf(code Code, rng token.Range, format string, args ...any) {
	s.push(Diagnostic{Message: fmt.Sprintf(format, args...), Range: rng, Severity: SeverityError, Code: code})
}

func (s *diagSink) warnf(code Code, rng token.Range, tags []Tag, format string, args ...any) {
	s.push(Diagnostic{Message: fmt.Sprintf(format, args...), Range: rng, Severity: SeverityWarning, Code: code, Tags: tags})
}
