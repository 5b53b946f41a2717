// Package xltoken tokenizes and syntax-validates Excel formula strings: it
// exposes two entry points, ParseFormula for the formula grammar and
// ParseRefsInText for the secondary prose-scanning reference recognizer,
// and returns an ordered token.Stream or a ParseError pinpointing where the
// input stopped parsing.
package xltoken

import (
	"fmt"

	"github.com/hucsmn/xltoken/internal/grammar"
	"github.com/hucsmn/xltoken/peg"
	"github.com/hucsmn/xltoken/token"
)

// ParseError reports why a parse failed: either a committed ("must")
// failure at a specific rule, carrying a specific message, or a generic
// syntax error at the offset where the accepted prefix of the input ends
// (0 when nothing matched); the deepest offset an abandoned alternative
// reached is not tracked. A runtime error from the matcher (such as the
// peg loop limit) is reported with that error's text. Label is the
// opaque cookie passed to ParseFormula/ParseRefsInText, echoed back here
// for caller-side diagnostics.
type ParseError struct {
	Offset  int
	Line    int
	Column  int
	Label   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Label, e.Line+1, e.Column+1, e.Message)
}

func newParseError(c *peg.Cursor, offset int, message string) *ParseError {
	pos := c.PositionAt(offset)
	return &ParseError{
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
		Label:   c.Label(),
		Message: message,
	}
}

// run drives pat over the whole of input and converts peg's success/soft-
// failure/hard-failure trichotomy into (*token.Stream, *ParseError), per
// spec §4.4/§7: a hard failure becomes its own specific message; a parse
// that does not consume the entire input (including one that "succeeds"
// by matching nothing) is a generic syntax error; otherwise the collected
// Sink becomes the returned Stream.
func run(pat peg.Pattern, input, label, genericMessage string) (*token.Stream, *ParseError) {
	c := peg.NewCursor(input, label)
	sink, ok, err := peg.Run(pat, c)
	if err != nil {
		failure, isFailure := err.(*peg.Failure)
		if !isFailure {
			return nil, newParseError(c, c.Pos(), err.Error())
		}
		return nil, &ParseError{
			Offset:  failure.Pos.Offset,
			Line:    failure.Pos.Line,
			Column:  failure.Pos.Column,
			Label:   label,
			Message: failure.Message,
		}
	}
	if !ok || !c.AtEOF() {
		return nil, newParseError(c, c.Pos(), genericMessage)
	}
	return &token.Stream{Tokens: sink.Tokens()}, nil
}

// ParseFormula tokenizes and syntax-validates a complete Excel formula,
// e.g. "=SUM(A1:A10)". label is an opaque cookie echoed into any returned
// ParseError.
func ParseFormula(input, label string) (*token.Stream, *ParseError) {
	return run(grammar.Root(), input, label, "formula does not parse")
}

// ParseRefsInText scans arbitrary text (formula comments, prose) for
// A1-style cell and range references, emitting a token for each reference
// found and silently skipping everything else. It always consumes its
// entire input short of a hard failure inside a reference it has already
// committed to (e.g. an unterminated quoted sheet name).
func ParseRefsInText(input, label string) (*token.Stream, *ParseError) {
	return run(grammar.RefsInText(), input, label, "text does not parse")
}
