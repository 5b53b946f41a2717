package peg

import (
	"fmt"
)

var (
	errorNilPattern       = errorf("the pattern is nil")
	errorReachedLoopLimit = errorf("loop limit is reached")
)

type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peg: " + err.value
}

// Failure is a hard (committed) parse failure, as opposed to an ordinary
// soft mismatch that lets an enclosing ordered choice backtrack. Once a
// Failure is produced by Must/IfMust, it propagates all the way to the top
// of the match without any further alternative being tried.
type Failure struct {
	Pos     Position
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Pos.String(), f.Message)
}

func newFailure(c *Cursor, message string) *Failure {
	return &Failure{Pos: c.Position(), Message: message}
}
