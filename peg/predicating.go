package peg

import "fmt"

var (
	// True always matches, consuming no text.
	True Pattern = patternBoolean{true}

	// False never matches.
	False Pattern = patternBoolean{false}

	// EOF matches only at the end of input, consuming no text.
	EOF Pattern = patternEOF{}
)

type (
	patternBoolean struct{ ok bool }

	patternEOF struct{}

	// patternLookahead implements positive (And) and negative (Not)
	// lookahead: it tests whether pat matches without ever consuming
	// input or keeping any token the tested match would have emitted.
	patternLookahead struct {
		not bool
		pat Pattern
	}
)

// Not is negative lookahead: it succeeds, consuming nothing, only if pat
// fails to match at the current position.
func Not(pat Pattern) Pattern {
	return &patternLookahead{not: true, pat: pat}
}

// And is positive lookahead: it succeeds, consuming nothing, only if pat
// matches at the current position.
func And(pat Pattern) Pattern {
	return &patternLookahead{not: false, pat: pat}
}

func (pat patternBoolean) match(c *Cursor, out *Sink) (bool, error) {
	return pat.ok, nil
}

func (patternEOF) match(c *Cursor, out *Sink) (bool, error) {
	return c.AtEOF(), nil
}

func (pat *patternLookahead) match(c *Cursor, out *Sink) (bool, error) {
	start := c.Mark()
	sinkMark := out.Mark()
	ok, err := pat.pat.match(c, out)
	c.Reset(start)
	out.Rollback(sinkMark)
	if err != nil {
		return false, err
	}
	if pat.not {
		return !ok, nil
	}
	return ok, nil
}

func (pat patternBoolean) String() string {
	if pat.ok {
		return "true"
	}
	return "false"
}

func (patternEOF) String() string { return "eof?" }

func (pat *patternLookahead) String() string {
	if pat.not {
		return fmt.Sprintf("!%s", pat.pat)
	}
	return fmt.Sprintf("&%s", pat.pat)
}
