package grammar

import (
	"github.com/hucsmn/xltoken/peg"
)

// nonRef is one non-reference run inside prose: a double-quoted run of
// text ("" escapes a quote; an unterminated one runs to the end of the
// input), a run of alphanumerics, or a run of anything else that is neither
// alphanumeric nor a quote. It never fails: at least one of its three
// alternatives always consumes at least one byte as long as the cursor is
// not at EOF, which RefsInText below relies on to guarantee progress.
func nonRef() peg.Pattern {
	quoted := peg.Seq(peg.T(`"`), peg.Q0(peg.Alt(peg.T(`""`), peg.NS(`"`))), peg.Alt(peg.T(`"`), peg.EOF))
	alnumRun := peg.Q1(peg.Alt(peg.R('0', '9'), peg.R('A', 'Z', 'a', 'z')))
	otherRun := peg.Q1(peg.NS(`"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz`))
	return peg.Alt(quoted, alnumRun, otherRun)
}

// RefsInText is the secondary, prose-scanning recognizer sketched in §6:
// it walks arbitrary text looking for A1-style references, emitting a
// token for each Reference it can match and silently skipping everything
// else. Unlike Root, it always succeeds (short of a hard failure
// inside a Reference it commits to, e.g. an unterminated quoted sheet
// name) and is expected to consume the entire input.
func RefsInText() peg.Pattern {
	step := peg.Seq(peg.Q01(peg.Lazy(Reference)), nonRef())
	return peg.Seq(peg.Q0(step), peg.Q01(peg.Lazy(Reference)))
}
