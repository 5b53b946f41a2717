package peg

// Cursor is a byte-level view over one parse's input. It is exclusively
// owned by a single parse invocation: the buffer is immutable, the offset
// is not. Marks are plain saved offsets, cheap to take and to restore.
type Cursor struct {
	src   string
	pos   int
	calc  *positionCalculator
	label string
}

// NewCursor creates a cursor positioned at the start of src. label is an
// opaque cookie echoed back into any ParseError built from this cursor.
func NewCursor(src, label string) *Cursor {
	return &Cursor{
		src:   src,
		pos:   0,
		calc:  &positionCalculator{text: src},
		label: label,
	}
}

// Mark returns the current offset, to be restored later with Reset.
func (c *Cursor) Mark() int { return c.pos }

// Reset rewinds the cursor to a previously taken mark.
func (c *Cursor) Reset(mark int) { c.pos = mark }

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Label returns the source label this cursor was created with.
func (c *Cursor) Label() string { return c.label }

// AtEOF reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.src) }

// Remaining returns the unconsumed suffix of the input.
func (c *Cursor) Remaining() string { return c.src[c.pos:] }

// PeekByte returns the byte at the cursor and true, or 0, false at EOF.
func (c *Cursor) PeekByte() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// PeekAt returns the byte n positions ahead of the cursor (n may be
// negative to look behind), or 0, false if that position is out of range.
func (c *Cursor) PeekAt(n int) (byte, bool) {
	p := c.pos + n
	if p < 0 || p >= len(c.src) {
		return 0, false
	}
	return c.src[p], true
}

// PeekN returns up to n bytes starting at the cursor without consuming
// them. The returned string may be shorter than n near EOF.
func (c *Cursor) PeekN(n int) string {
	end := c.pos + n
	if end > len(c.src) {
		end = len(c.src)
	}
	return c.src[c.pos:end]
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	rem := c.Remaining()
	if len(s) > len(rem) {
		return false
	}
	return rem[:len(s)] == s
}

// Advance moves the cursor forward n bytes. The caller is responsible for
// ensuring n bytes actually remain.
func (c *Cursor) Advance(n int) { c.pos += n }

// Slice returns the substring between two offsets taken from this cursor's
// input.
func (c *Cursor) Slice(start, end int) string { return c.src[start:end] }

// Len returns the total input length in bytes.
func (c *Cursor) Len() int { return len(c.src) }

// Position computes the line/column for the current offset.
func (c *Cursor) Position() Position { return c.calc.calculate(c.pos) }

// PositionAt computes the line/column for an arbitrary offset.
func (c *Cursor) PositionAt(offset int) Position { return c.calc.calculate(offset) }
