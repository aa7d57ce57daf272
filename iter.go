// Layered decoding iterators.
//
// Three cursor types decode a view at increasing granularity: Bytes
// yields raw encoded bytes, JChars yields 16-bit code units with
// surrogate pairs left split (Java's char granularity), and Runes
// recombines pairs into Unicode scalar values. Each layer wraps the one
// below it, so the stages stay independently testable.
//
// All iterators assume a well-formed view, the invariant every Str
// carries by construction. They are finite, cheap to create, and not
// resumable across mutations of the underlying buffer.
package mutf8

import "unicode/utf16"

// Bytes iterates the raw encoded bytes of a view in either direction.
type Bytes struct {
	s    []byte
	head int
	tail int
}

// Bytes returns a byte iterator positioned at the start of the view.
func (s Str) Bytes() Bytes {
	return Bytes{s: s, head: 0, tail: len(s)}
}

// Next returns the next byte from the front.
func (it *Bytes) Next() (byte, bool) {
	if it.head >= it.tail {
		return 0, false
	}
	c := it.s[it.head]
	it.head++
	return c, true
}

// NextBack returns the next byte from the back.
func (it *Bytes) NextBack() (byte, bool) {
	if it.head >= it.tail {
		return 0, false
	}
	it.tail--
	return it.s[it.tail], true
}

// Len returns the exact number of bytes not yet yielded.
func (it *Bytes) Len() int {
	return it.tail - it.head
}

// JChars iterates a view as 16-bit code units. Each half of a surrogate
// pair is yielded as its own element.
type JChars struct {
	b Bytes
}

// JChars returns a code-unit iterator positioned at the start of the
// view.
func (s Str) JChars() JChars {
	return JChars{b: s.Bytes()}
}

// Next decodes and returns the next code unit.
func (it *JChars) Next() (uint16, bool) {
	first, ok := it.b.Next()
	if !ok {
		return 0, false
	}
	if first&0x80 == 0 {
		return uint16(first), true
	}
	if first&0xE0 == 0xC0 {
		// Well-formed input guarantees the continuation byte exists.
		next, _ := it.b.Next()
		return uint16(first&0x1F)<<6 | uint16(next&0x3F), true
	}
	next1, _ := it.b.Next()
	next2, _ := it.b.Next()
	return uint16(first&0x0F)<<12 | uint16(next1&0x3F)<<6 | uint16(next2&0x3F), true
}

// Remaining bounds the number of code units left: at least one per
// three bytes (every unit 3 bytes), at most one per byte (all ASCII).
func (it *JChars) Remaining() (min, max int) {
	n := it.b.Len()
	return n / 3, n
}

// Runes iterates a view as Unicode scalar values, recombining surrogate
// pairs into single runes above U+FFFF.
type Runes struct {
	jc JChars
}

// Runes returns a rune iterator positioned at the start of the view.
func (s Str) Runes() Runes {
	return Runes{jc: s.JChars()}
}

// Next returns the next scalar value.
func (it *Runes) Next() (rune, bool) {
	u, ok := it.jc.Next()
	if !ok {
		return 0, false
	}
	if u >= surrHighMin && u <= surrHighMax {
		// Well-formed input guarantees the low half follows.
		low, _ := it.jc.Next()
		return utf16.DecodeRune(rune(u), rune(low)), true
	}
	return rune(u), true
}

// Remaining bounds the number of runes left: the code-unit lower bound
// halves (every unit could be half a pair) and the upper bound carries
// through unchanged.
func (it *Runes) Remaining() (min, max int) {
	lo, hi := it.jc.Remaining()
	return lo / 2, hi
}
