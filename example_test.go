package cursor_test

import (
	"fmt"

	cursor "github.com/LouisGariepy/simple-cursor"
)

// Example_lexing demonstrates slicing an input into lexeme spans using
// byte positions recorded around skips and bumps.
func Example_lexing() {
	input := "123 foobar竜<!>"
	c := cursor.New(input)

	// Scan the leading number
	numberStart := c.BytePos()
	c.SkipWhile(func(r rune) bool { return '0' <= r && r <= '9' })
	number := input[numberStart:c.BytePos()]

	// Consume the separating space
	space, _ := c.Bump()

	// Scan the identifier
	identStart := c.BytePos()
	c.SkipWhile(func(r rune) bool { return 'a' <= r && r <= 'z' })
	ident := input[identStart:c.BytePos()]

	fmt.Printf("number: %s\n", number)
	fmt.Printf("separator: %q\n", space)
	fmt.Printf("ident: %s\n", ident)
	fmt.Printf("rest: %s\n", c.Remaining())

	// Output:
	// number: 123
	// separator: ' '
	// ident: foobar
	// rest: 竜<!>
}

// Example_lookahead demonstrates two-rune lookahead without advancing.
func Example_lookahead() {
	c := cursor.New("<=")

	r1, _, r2, ok2 := c.PeekTwo()
	if ok2 && r1 == '<' && r2 == '=' {
		c.BumpTwo()
		fmt.Println("matched <=")
	}
	fmt.Println("position:", c.BytePos())

	// Output:
	// matched <=
	// position: 2
}
