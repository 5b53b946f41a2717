package peg

import "fmt"

// patternMust implements PEG "must": like Seq, but if pat fails to match,
// the failure is promoted from an ordinary backtrackable mismatch into a
// *Failure that aborts the whole parse instead of letting an enclosing
// ordered choice try another alternative. message describes what was
// expected, e.g. "closing quote".
type patternMust struct {
	message string
	pat     Pattern
}

// Must matches pat or aborts the parse with a *Failure carrying message
// and the cursor position where pat was entered.
func Must(message string, pat Pattern) Pattern {
	return &patternMust{message: message, pat: pat}
}

// IfMust matches guard; if guard matches, body must also match (Must
// semantics) or the parse aborts with message. If guard itself does not
// match, IfMust simply fails softly without consuming anything, exactly
// like Seq(guard, body) would, except the second half is committed.
func IfMust(message string, guard, body Pattern) Pattern {
	return Seq(guard, Must(message, body))
}

func (pat *patternMust) match(c *Cursor, out *Sink) (bool, error) {
	entry := c.Mark()
	ok, err := pat.pat.match(c, out)
	if err != nil {
		return false, err
	}
	if !ok {
		c.Reset(entry)
		return false, newFailure(c, pat.message)
	}
	return true, nil
}

func (pat *patternMust) String() string {
	return fmt.Sprintf("must(%q, %s)", pat.message, pat.pat)
}
