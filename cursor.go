package cursor

import (
	"fmt"
	"unicode/utf8"
)

// Cursor is a forward-only cursor over the code points of a string.
// It tracks the byte offset of its position in the original input so
// callers can slice out spans of consumed text.
//
// The zero value is an exhausted cursor over empty input; use New to
// create one over real input.
type Cursor struct {
	rest    string // unconsumed suffix of the input
	bytePos int    // bytes consumed from the start of the input
}

// New creates a cursor positioned at the start of input.
// An empty input is valid and yields an immediately exhausted cursor.
func New(input string) *Cursor {
	return &Cursor{rest: input}
}

// BytePos returns the number of bytes consumed so far. It is always a
// code point boundary in the original input, so input[:c.BytePos()] and
// input[c.BytePos():] are both well-formed.
func (c *Cursor) BytePos() int {
	return c.bytePos
}

// Remaining returns the unconsumed suffix of the input.
func (c *Cursor) Remaining() string {
	return c.rest
}

// Peek returns the next code point without advancing the cursor.
// The second result is false if the input is exhausted.
func (c *Cursor) Peek() (rune, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.rest)
	return r, true
}

// PeekTwo returns the next two code points without advancing the cursor.
// Each code point is independently present or absent: at the last code
// point of the input the result is (r, true, 0, false).
func (c *Cursor) PeekTwo() (rune, bool, rune, bool) {
	if len(c.rest) == 0 {
		return 0, false, 0, false
	}
	r1, size := utf8.DecodeRuneInString(c.rest)
	rest := c.rest[size:]
	if len(rest) == 0 {
		return r1, true, 0, false
	}
	r2, _ := utf8.DecodeRuneInString(rest)
	return r1, true, r2, true
}

// Bump advances past the next code point and returns it. The second
// result is false if the input is exhausted; in that case the cursor
// does not move, and further calls keep returning false.
func (c *Cursor) Bump() (rune, bool) {
	if len(c.rest) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[size:]
	c.bytePos += size
	return r, true
}

// BumpTwo advances past the next two code points and returns them,
// behaving exactly like two sequential Bump calls. The attempts are
// independent: if the input ends after the first, the result is
// (r, true, 0, false) and the position advances only by the first code
// point's byte length.
func (c *Cursor) BumpTwo() (rune, bool, rune, bool) {
	r1, ok1 := c.Bump()
	r2, ok2 := c.Bump()
	return r1, ok1, r2, ok2
}

// SkipWhile advances past code points while pred returns true for them.
// It stops at the first code point for which pred is false, or at the
// end of the input, without consuming that code point: after the call,
// Peek returns either a non-matching rune or no rune at all.
func (c *Cursor) SkipWhile(pred func(rune) bool) {
	start := len(c.rest)
	for len(c.rest) > 0 {
		r, size := utf8.DecodeRuneInString(c.rest)
		if !pred(r) {
			break
		}
		c.rest = c.rest[size:]
	}
	// Settle the byte position once for the whole run.
	c.bytePos += start - len(c.rest)
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.bytePos)
}
