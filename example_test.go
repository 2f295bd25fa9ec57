package fixedstring_test

import (
	"fmt"

	"github.com/rawbytedev/fixedstring"
)

func Example() {
	// Checked: an array literal longer than Cap4 would not compile.
	a := fixedstring.From(fixedstring.Cap4{'a', 'b'})

	// Truncating: the marker makes the data loss visible.
	b := fixedstring.FromString[fixedstring.Cap4](fixedstring.Truncate, "abcdef")

	// Unchecked: reports failure and leaves the value alone.
	ok := b.UnsafeAssign("too long")

	fmt.Println(a.String(), b.String(), ok, a.Less(&b))
	// Output: ab abcd false true
}
