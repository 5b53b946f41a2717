package peg

import (
	"fmt"
	"strings"
)

type (
	patternSequence struct {
		pats []Pattern
	}

	patternAlternative struct {
		pats []Pattern
	}

	patternQualifier struct {
		min, max int // max < 0 means unbounded
		pat      Pattern
	}
)

// Seq matches patterns in order; it fails (without consuming anything) as
// soon as any pattern in the sequence fails.
func Seq(sequence ...Pattern) Pattern {
	if len(sequence) == 0 {
		return True
	}
	if len(sequence) == 1 {
		return sequence[0]
	}
	return &patternSequence{sequence}
}

// Alt is ordered choice: it tries each pattern in order and commits to the
// first one that matches. Later alternatives are never attempted once an
// earlier one succeeds, even if that dooms an enclosing rule to fail.
func Alt(choices ...Pattern) Pattern {
	if len(choices) == 0 {
		return False
	}
	if len(choices) == 1 {
		return choices[0]
	}
	return &patternAlternative{choices}
}

// Q0 matches pat repeated zero or more times (greedy).
func Q0(pat Pattern) Pattern { return &patternQualifier{min: 0, max: -1, pat: pat} }

// Q1 matches pat repeated one or more times (greedy).
func Q1(pat Pattern) Pattern { return &patternQualifier{min: 1, max: -1, pat: pat} }

// Q01 matches pat zero or one times.
func Q01(pat Pattern) Pattern { return &patternQualifier{min: 0, max: 1, pat: pat} }

// Qn matches pat repeated at least n times.
func Qn(n int, pat Pattern) Pattern {
	if n < 0 {
		n = 0
	}
	return &patternQualifier{min: n, max: -1, pat: pat}
}

// Qnn matches pat repeated exactly n times.
func Qnn(n int, pat Pattern) Pattern {
	if n <= 0 {
		return True
	}
	return &patternQualifier{min: n, max: n, pat: pat}
}

// Qmn matches pat repeated between m and n times (inclusive).
func Qmn(m, n int, pat Pattern) Pattern {
	if m > n {
		m, n = n, m
	}
	if m < 0 {
		m = 0
	}
	return &patternQualifier{min: m, max: n, pat: pat}
}

func (pat *patternSequence) match(c *Cursor, out *Sink) (bool, error) {
	start := c.Mark()
	sinkMark := out.Mark()
	for _, p := range pat.pats {
		ok, err := p.match(c, out)
		if err != nil {
			return false, err
		}
		if !ok {
			c.Reset(start)
			out.Rollback(sinkMark)
			return false, nil
		}
	}
	return true, nil
}

func (pat *patternAlternative) match(c *Cursor, out *Sink) (bool, error) {
	start := c.Mark()
	sinkMark := out.Mark()
	for _, p := range pat.pats {
		ok, err := p.match(c, out)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		c.Reset(start)
		out.Rollback(sinkMark)
	}
	return false, nil
}

func (pat *patternQualifier) match(c *Cursor, out *Sink) (bool, error) {
	start := c.Mark()
	sinkMark := out.Mark()
	count := 0
	for pat.max < 0 || count < pat.max {
		if count >= DefaultLoopLimit {
			return false, errorReachedLoopLimit
		}

		attemptStart := c.Mark()
		ok, err := pat.pat.match(c, out)
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		count++
		if c.Mark() == attemptStart {
			// Zero-width match: counting it once more is pointless
			// and would otherwise loop until DefaultLoopLimit, per
			// the "whitespace as operator" pitfall in the grammar
			// design notes. Stop as soon as progress stalls.
			break
		}
	}

	if count < pat.min {
		c.Reset(start)
		out.Rollback(sinkMark)
		return false, nil
	}
	return true, nil
}

func (pat *patternSequence) String() string {
	strs := make([]string, len(pat.pats))
	for i, p := range pat.pats {
		strs[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " "))
}

func (pat *patternAlternative) String() string {
	strs := make([]string, len(pat.pats))
	for i, p := range pat.pats {
		strs[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " | "))
}

func (pat *patternQualifier) String() string {
	switch {
	case pat.min == 0 && pat.max < 0:
		return fmt.Sprintf("%s *", pat.pat)
	case pat.min == 1 && pat.max < 0:
		return fmt.Sprintf("%s +", pat.pat)
	case pat.min == 0 && pat.max == 1:
		return fmt.Sprintf("[ %s ]", pat.pat)
	case pat.min == pat.max:
		return fmt.Sprintf("%s <%d>", pat.pat, pat.min)
	default:
		return fmt.Sprintf("%s <%d..%d>", pat.pat, pat.min, pat.max)
	}
}
