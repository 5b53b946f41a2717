package peg

import "github.com/hucsmn/xltoken/token"

// Sink accumulates tokens emitted by successful actions (see Action, in
// actions.go). It is exclusively owned by one parse, the same way the
// teacher's capstack was owned by one ordered-choice frame: every
// combinator that may discard a tentative match (Alt trying the next
// alternative, a qualifier backtracking its last greedy attempt, Not/And
// testing without consuming) takes a Mark before recursing and calls
// Rollback on failure, so an action's effect is never visible unless its
// match became part of the accepted parse. This is what guarantees
// property P5 (no action fires for a branch that is later abandoned).
type Sink struct {
	tokens []token.Token
}

// Mark returns a checkpoint to roll back to.
func (s *Sink) Mark() int { return len(s.tokens) }

// Rollback discards every token emitted since mark.
func (s *Sink) Rollback(mark int) { s.tokens = s.tokens[:mark] }

// Emit appends a token to the sink.
func (s *Sink) Emit(tok token.Token) { s.tokens = append(s.tokens, tok) }

// Tokens returns the accumulated token slice.
func (s *Sink) Tokens() []token.Token { return s.tokens }
