// Package peg implements the small set of Parsing Expression Grammar
// primitives that the rest of this repository composes into the Excel
// formula grammar: a byte cursor (cursor.go), ordered-choice combinators
// (combining.go), lookahead predicates (predicating.go), literal and
// rune-class matchers (text.go, rune.go), commit/must semantics
// (commit.go) and buffered token actions (actions.go, sink.go).
//
// The design follows github.com/hucsmn/peg (ordered choice tries
// alternatives left to right and never backtracks into a later one once an
// earlier one wins; qualifiers are greedy; Not/And test without consuming).
// Unlike that library this package evaluates patterns with ordinary Go
// recursion over a *Cursor instead of a continuation-passing trampoline:
// Excel formulas nest shallowly (the grammar itself is bounded, see
// spec's "worst-case stack depth ... typically < 64"), so the trampoline's
// heap-allocated call stack — built to survive pathological, deeply
// left-nested grammars under a fixed native stack — has no grammar in this
// repository that would ever exercise it.
package peg

// Pattern is an abstract, composable, stateless predicate over a Cursor:
// it attempts to match starting at the cursor's current position. On
// success it advances the cursor past the match and returns true; on
// failure (ok == false, err == nil) it leaves the cursor exactly where it
// found it, so an enclosing ordered choice can try its next alternative.
// A non-nil err is a committed (hard) failure from Must/IfMust, or a
// runtime error such as a qualifier reaching DefaultLoopLimit: it must
// propagate to the top without any further alternative being attempted.
type Pattern interface {
	match(c *Cursor, out *Sink) (bool, error)
	String() string
}

// DefaultLoopLimit caps the number of iterations a single qualifier
// (Q0/Q1/Qmn/...) makes in one match; a qualifier that reaches it gives up
// with a runtime error. Zero-width iterations never approach the cap: a
// qualifier stops as soon as an iteration consumes nothing.
const DefaultLoopLimit = 10000

// Run matches pat against c starting at its current position. It returns
// the accumulated Sink on success. A non-nil error is a *Failure for a
// committed hard failure, or a plain peg error for a nil pattern or a
// qualifier that reached DefaultLoopLimit; an ordinary unsuccessful soft
// match is reported only via ok == false.
func Run(pat Pattern, c *Cursor) (sink *Sink, ok bool, err error) {
	if pat == nil {
		return nil, false, errorNilPattern
	}
	sink = &Sink{}
	ok, err = pat.match(c, sink)
	if err != nil {
		return nil, false, err
	}
	return sink, ok, nil
}
