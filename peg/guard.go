package peg

import "fmt"

// patternGuard runs a cheap precondition before attempting pat, failing
// immediately (no consumption, no Sink writes) when the guard returns
// false. It exists so a package outside peg can plug a fast prefilter
// (a multi-pattern automaton, say) in front of an expensive Pattern without
// needing to implement the unexported Pattern.match method itself.
type patternGuard struct {
	check func(c *Cursor) bool
	pat   Pattern
}

// Guard matches pat only when check(c) reports true at the current cursor
// position; otherwise it fails softly without invoking pat at all.
func Guard(check func(c *Cursor) bool, pat Pattern) Pattern {
	return &patternGuard{check: check, pat: pat}
}

func (p *patternGuard) match(c *Cursor, out *Sink) (bool, error) {
	if !p.check(c) {
		return false, nil
	}
	return p.pat.match(c, out)
}

func (p *patternGuard) String() string {
	return fmt.Sprintf("guard(%s)", p.pat)
}
