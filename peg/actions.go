package peg

import (
	"fmt"

	"github.com/hucsmn/xltoken/token"
)

// patternAction is the action slot described by spec §4.5: on a successful
// match it is handed the matched input slice and records a token. Because
// every combinator above rolls the Sink back on backtrack (Alt trying the
// next alternative, a qualifier's failed final attempt, Not/And testing),
// an Action's token never survives in the final stream unless the match it
// decorates became part of the accepted parse.
type patternAction struct {
	kind token.Kind
	pat  Pattern
}

// Action decorates pat so that, on a successful match, the exact matched
// substring is recorded as a token of the given kind. Actions compose: an
// Action nested inside another Action's pattern still emits its own token
// first (child actions fire before the parent's, in left-to-right
// completion order), since Seq/Alt preserve whatever the child already
// appended to the Sink before the parent itself appends.
func Action(kind token.Kind, pat Pattern) Pattern {
	return &patternAction{kind: kind, pat: pat}
}

func (pat *patternAction) match(c *Cursor, out *Sink) (bool, error) {
	start := c.Mark()
	ok, err := pat.pat.match(c, out)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	end := c.Mark()
	out.Emit(token.Token{
		Kind:   pat.kind,
		Lexeme: c.Slice(start, end),
		Start:  start,
		End:    end,
	})
	return true, nil
}

func (pat *patternAction) String() string {
	return fmt.Sprintf("%s{%s}", pat.kind, pat.pat)
}
