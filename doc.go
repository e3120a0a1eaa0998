// Package cursor provides a minimal character-stream cursor for building
// lexers and tokenizers.
//
// The cursor package handles:
//
//   - Single-pass, forward-only traversal of a string's Unicode code points
//   - Lookahead of one or two code points without advancing (Peek, PeekTwo)
//   - Consumption of one or two code points at a time (Bump, BumpTwo)
//   - Conditional skipping that never eats the terminating rune (SkipWhile)
//   - Byte-offset tracking aligned to code point boundaries (BytePos)
//
// Byte Positions:
//
// BytePos reports how many bytes of the original input have been consumed.
// Each Bump advances it by the consumed rune's UTF-8 encoded length, so the
// offset is always a valid boundary for slicing the original string. A
// tokenizer records BytePos before and after a run of consumes to recover
// the matched span:
//
//	input := "123 foobar"
//	c := cursor.New(input)
//
//	start := c.BytePos()
//	c.SkipWhile(func(r rune) bool { return '0' <= r && r <= '9' })
//	number := input[start:c.BytePos()] // "123"
//
// Exhaustion is an ordinary outcome, not an error: Peek and Bump return a
// comma-ok pair whose second value is false once the input runs out, and
// further Bump calls keep returning false without moving BytePos.
//
// Speculative Lookahead:
//
// A Cursor is a small value over an immutable string, so copying one is
// cheap. To explore beyond two runes of lookahead, copy the cursor and
// advance the copy; the original is untouched:
//
//	probe := *c
//	probe.Bump() // c unaffected
//
// Thread Safety:
//
// A Cursor is mutated in place by Bump, BumpTwo, and SkipWhile and is meant
// for single-owner, sequential use. It is not safe for concurrent mutation;
// give each goroutine its own copy instead.
package cursor
