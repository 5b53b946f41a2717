package peg

import (
	"testing"

	"github.com/hucsmn/xltoken/token"
)

type matchTestData struct {
	text string
	ok   bool
	full bool
	pat  Pattern
}

func runMatchTestData(t *testing.T, d matchTestData) {
	t.Helper()
	c := NewCursor(d.text, "test")
	_, ok, err := Run(d.pat, c)
	if err != nil {
		t.Fatalf("Run(%s, %q) returned unexpected hard failure: %v", d.pat, d.text, err)
	}
	if ok != d.ok {
		t.Fatalf("Run(%s, %q) => ok=%t, want %t", d.pat, d.text, ok, d.ok)
	}
	if ok {
		full := c.AtEOF()
		if full != d.full {
			t.Fatalf("Run(%s, %q) => consumed-all=%t, want %t", d.pat, d.text, full, d.full)
		}
	}
}

func TestSeqAlt(t *testing.T) {
	data := []matchTestData{
		{"ab", true, true, Seq(T("a"), T("b"))},
		{"ac", false, false, Seq(T("a"), T("b"))},
		{"a", true, true, Alt(T("a"), T("b"))},
		{"b", true, true, Alt(T("a"), T("b"))},
		{"c", false, false, Alt(T("a"), T("b"))},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestQualifiers(t *testing.T) {
	data := []matchTestData{
		{"", true, true, Q0(T("a"))},
		{"aaa", true, true, Q0(T("a"))},
		{"aaab", true, false, Q0(T("a"))},
		{"", false, false, Q1(T("a"))},
		{"a", true, true, Q1(T("a"))},
		{"", true, true, Q01(T("a"))},
		{"a", true, true, Q01(T("a"))},
		{"aa", true, false, Q01(T("a"))},
		{"aa", true, true, Qmn(1, 3, T("a"))},
		{"aaaa", true, false, Qmn(1, 3, T("a"))},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestLookahead(t *testing.T) {
	pat := Seq(T("a"), Not(T("b")))
	data := []matchTestData{
		{"ac", true, false, pat},
		{"ab", false, false, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}

	andPat := Seq(And(T("ab")), T("a"))
	runMatchTestData(t, matchTestData{"ab", true, false, andPat})
	runMatchTestData(t, matchTestData{"ac", false, false, andPat})
}

func TestTextSetLongestMatch(t *testing.T) {
	pat := TS("A", "AB", "ABC", "ABD")
	c := NewCursor("ABCDEF", "test")
	_, ok, err := Run(pat, c)
	if err != nil || !ok {
		t.Fatalf("TS did not match: ok=%t err=%v", ok, err)
	}
	if c.Pos() != 3 {
		t.Fatalf("TS did not prefer the longest member: consumed %d bytes, want 3", c.Pos())
	}
}

func TestMustCommits(t *testing.T) {
	pat := Seq(T("("), Must("expected closing paren", T(")")))
	c := NewCursor("(", "test")
	_, ok, err := Run(pat, c)
	if ok {
		t.Fatalf("expected failure")
	}
	if err == nil {
		t.Fatalf("expected a hard failure, got soft mismatch")
	}
	if _, isFailure := err.(*Failure); !isFailure {
		t.Fatalf("expected *Failure, got %T", err)
	}
}

func TestActionBuffersUntilAccepted(t *testing.T) {
	// The first alternative matches "a" and would emit a token for it,
	// but the whole Alt only succeeds via its second alternative because
	// the first one also requires an "x" after the "a". The first alternative's action
	// must not appear in the final stream (property P5).
	pat := Alt(
		Seq(Action(token.Cell, T("a")), T("x")),
		Action(token.NamedRange, T("ab")),
	)
	c := NewCursor("ab", "test")
	sink, ok, err := Run(pat, c)
	if err != nil || !ok {
		t.Fatalf("unexpected failure: ok=%t err=%v", ok, err)
	}
	toks := sink.Tokens()
	if len(toks) != 1 || toks[0].Kind != token.NamedRange {
		t.Fatalf("expected exactly one NamedRange token, got %v", toks)
	}
}
