package peg

// patternLazy defers building its underlying Pattern until match time. It
// exists so that mutually- or self-recursive grammar rules (Formula refers
// to FormulaBody which refers back to Formula, and so on) can be expressed
// as ordinary Go functions without the recursive construction running away
// at pattern-graph build time: wrap the recursive call site in Lazy and the
// recursion only actually unwinds once per input byte consumed, the same
// way the teacher's rule-table-and-name-lookup (Let/V) deferred resolution,
// just without needing a name registry.
type patternLazy struct {
	get func() Pattern
}

// Lazy returns a Pattern equivalent to get(), but does not call get until
// the returned Pattern is actually matched.
func Lazy(get func() Pattern) Pattern {
	return &patternLazy{get: get}
}

func (pat *patternLazy) match(c *Cursor, out *Sink) (bool, error) {
	return pat.get().match(c, out)
}

func (pat *patternLazy) String() string { return "lazy(...)" }
