package peg

import (
	"fmt"
	"sort"
	"strings"
)

// Dot matches any single byte.
var Dot Pattern = patternAnyByte{}

type (
	patternAnyByte struct{}

	patternByteSet struct {
		not bool
		set string // sorted, de-duplicated
	}

	patternByteRange struct {
		not    bool
		ranges []struct{ low, high byte }
	}
)

// S matches a single byte that is a member of set.
func S(set string) Pattern {
	return &patternByteSet{not: false, set: sortedSet(set)}
}

// NS matches a single byte that is not a member of exclude.
func NS(exclude string) Pattern {
	return &patternByteSet{not: true, set: sortedSet(exclude)}
}

// R matches a single byte within any of the given [low, high] ranges,
// passed as alternating low, high pairs.
func R(bounds ...byte) Pattern {
	pat := &patternByteRange{}
	for i := 0; i+1 < len(bounds); i += 2 {
		pat.ranges = append(pat.ranges, struct{ low, high byte }{bounds[i], bounds[i+1]})
	}
	return pat
}

// NR matches a single byte outside of all the given [low, high] ranges.
func NR(bounds ...byte) Pattern {
	pat := R(bounds...).(*patternByteRange)
	pat.not = true
	return pat
}

func sortedSet(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	out := b[:0]
	for i, c := range b {
		if i == 0 || c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return string(out)
}

func (patternAnyByte) match(c *Cursor, out *Sink) (bool, error) {
	if c.AtEOF() {
		return false, nil
	}
	c.Advance(1)
	return true, nil
}

func (pat *patternByteSet) match(c *Cursor, out *Sink) (bool, error) {
	b, ok := c.PeekByte()
	if !ok {
		return false, nil
	}
	in := strings.IndexByte(pat.set, b) >= 0
	if in == pat.not {
		return false, nil
	}
	c.Advance(1)
	return true, nil
}

func (pat *patternByteRange) has(b byte) bool {
	for _, r := range pat.ranges {
		if b >= r.low && b <= r.high {
			return true
		}
	}
	return false
}

func (pat *patternByteRange) match(c *Cursor, out *Sink) (bool, error) {
	b, ok := c.PeekByte()
	if !ok {
		return false, nil
	}
	if pat.has(b) == pat.not {
		return false, nil
	}
	c.Advance(1)
	return true, nil
}

func (patternAnyByte) String() string { return "." }

func (pat *patternByteSet) String() string {
	if pat.not {
		return fmt.Sprintf("[^%s]", pat.set)
	}
	return fmt.Sprintf("[%s]", pat.set)
}

func (pat *patternByteRange) String() string {
	strs := make([]string, len(pat.ranges))
	for i, r := range pat.ranges {
		strs[i] = fmt.Sprintf("%c-%c", r.low, r.high)
	}
	prefix := ""
	if pat.not {
		prefix = "^"
	}
	return fmt.Sprintf("[%s%s]", prefix, strings.Join(strs, ""))
}
