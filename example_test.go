package mutf8_test

import (
	"fmt"

	"github.com/jpl-au/mutf8"
)

func Example() {
	// Convert ordinary text to Modified UTF-8. NUL and astral code
	// points are the only inputs that need rewriting.
	s := mutf8.FromUTF8("config\x00flags")

	fmt.Printf("% X\n", s.Bytes())
	fmt.Println(s.Quote())
	// Output: 63 6F 6E 66 69 67 C0 80 66 6C 61 67 73
	// "config\x00flags"
}

func ExampleFromBytes() {
	// A view wraps existing bytes without copying them.
	raw := []byte{'H', 'i', ' ', 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}
	s, err := mutf8.FromBytes(raw)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output: Hi 😀
}

func ExampleValidate() {
	// A literal NUL byte is never valid Modified UTF-8.
	err := mutf8.Validate([]byte{'o', 'k', 0x00})
	fmt.Println(err)
	// Output: mutf8: invalid 1-byte sequence at byte 2
}

func ExampleStr_JChars() {
	s, _ := mutf8.FromBytes([]byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80})
	it := s.JChars()
	for {
		u, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%04X\n", u)
	}
	// Output: D83D
	// DE00
}
