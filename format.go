// Display and debug rendering.
//
// A well-formed view is mostly ordinary UTF-8, so rendering alternates
// maximal runs that are already valid UTF-8 with single decode steps
// for the sequences UTF-8 rejects: the 2-byte NUL form, 6-byte
// surrogate pairs, and the overlong 2- and 3-byte encodings that
// validation (like Java) lets through.
package mutf8

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// UTF8 converts the view to an ordinary Go string. When the bytes are
// already valid standard UTF-8 (no encoded NULs, no surrogate pairs),
// the conversion is a single copy with no decoding. Otherwise the view
// is decoded rune by rune.
func (s Str) UTF8() string {
	if utf8.Valid(s) {
		return string(s)
	}
	return s.decode()
}

// String renders the view as ordinary text, decoding the exceptional
// encodings into the characters they denote. It implements
// fmt.Stringer.
func (s Str) String() string {
	return s.UTF8()
}

// decode walks the view by maximal valid-UTF-8 runs. At each run
// boundary one code point is decoded through the rune iterator and the
// cursor advances by its encoded length: 2 bytes for an overlong
// 2-byte form (NUL included), 3 for an overlong 3-byte form, 6 for a
// surrogate pair.
func (s Str) decode() string {
	var sb strings.Builder
	sb.Grow(len(s))
	b := []byte(s)
	for len(b) > 0 {
		n := validUTF8Prefix(b)
		sb.Write(b[:n])
		b = b[n:]
		if len(b) == 0 {
			break
		}
		it := Str(b).Runes()
		r, _ := it.Next()
		sb.WriteRune(r)
		switch {
		case b[0]&0xE0 == 0xC0:
			b = b[2:]
		case r < 0x10000:
			b = b[3:]
		default:
			b = b[6:]
		}
	}
	return sb.String()
}

// Quote renders the view as a double-quoted Go string literal with
// control and non-printable characters escaped.
func (s Str) Quote() string {
	if utf8.Valid(s) {
		return strconv.Quote(b2s(s))
	}
	return strconv.Quote(s.decode())
}

// validUTF8Prefix returns the length of the longest prefix of b that is
// valid standard UTF-8.
func validUTF8Prefix(b []byte) int {
	n := 0
	for n < len(b) {
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		n += size
	}
	return n
}
