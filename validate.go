// Modified UTF-8 validation.
//
// A single left-to-right scan classifies every byte, carrying one piece
// of state: the position of a decoded high surrogate that is still
// waiting for its low half. The pairing rule makes error precedence
// matter: an unpaired surrogate is reported before whatever unrelated
// malformation follows it, so repair tooling sees the real defect.
//
// The scan is O(n) with no backtracking; multi-byte sequences consume a
// bounded lookahead of one or two continuation bytes.
package mutf8

import "unicode/utf16"

// Surrogate ranges, as 16-bit code units.
const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

// noPair marks the pending-surrogate state as empty.
const noPair = -1

// Validate reports whether b is well-formed Modified UTF-8. It returns
// nil on success and a *ValidationError locating the first defect
// otherwise.
func Validate(b []byte) error {
	if e := validate(b); e != nil {
		return e
	}
	return nil
}

// Valid reports whether b is well-formed Modified UTF-8.
func Valid(b []byte) bool {
	return validate(b) == nil
}

// ValidString reports whether the bytes of s are well-formed Modified
// UTF-8. The string is scanned in place, without copying.
func ValidString(s string) bool {
	return validate(s2b(s)) == nil
}

// validate is the scanner behind all validating constructors. The
// returned error is nil for well-formed input; callers exposing it as
// the error interface must convert explicitly so a nil *ValidationError
// never escapes as a non-nil error.
func validate(b []byte) *ValidationError {
	n := len(b)
	pairPos := noPair // offset of the pending high surrogate's lead byte
	i := 0
	for i < n {
		c := b[i]
		switch {
		case c == 0x00:
			// A literal NUL is never valid; NUL is always 0xC0 0x80.
			if pairPos != noPair {
				return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
			}
			return &ValidationError{ValidUpTo: i, ErrorLen: 1}

		case c&0xC0 == 0x80:
			// Continuation byte with no preceding lead.
			if pairPos != noPair {
				return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
			}
			return &ValidationError{ValidUpTo: i, ErrorLen: 1}

		case c&0xE0 == 0xC0:
			// Two-byte sequence. A 2-byte unit can never be a low
			// surrogate, so a pending pair is already broken here.
			if pairPos != noPair {
				return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
			}
			if i+1 >= n {
				return &ValidationError{ValidUpTo: i + 1, ErrorLen: ErrorLenUnknown}
			}
			if b[i+1]&0xC0 != 0x80 {
				return &ValidationError{ValidUpTo: i, ErrorLen: 2}
			}
			i += 2

		case c&0xF0 == 0xE0:
			// Three-byte sequence; decode it before judging the pairing
			// state, because the low half of a pair is itself 3 bytes.
			if i+1 >= n {
				return &ValidationError{ValidUpTo: i + 1, ErrorLen: ErrorLenUnknown}
			}
			if b[i+1]&0xC0 != 0x80 {
				return &ValidationError{ValidUpTo: i, ErrorLen: 3}
			}
			if i+2 >= n {
				return &ValidationError{ValidUpTo: i + 2, ErrorLen: ErrorLenUnknown}
			}
			if b[i+2]&0xC0 != 0x80 {
				return &ValidationError{ValidUpTo: i, ErrorLen: 3}
			}
			u := uint16(c&0x0F)<<12 | uint16(b[i+1]&0x3F)<<6 | uint16(b[i+2]&0x3F)
			switch {
			case u >= surrHighMin && u <= surrHighMax:
				if pairPos != noPair {
					// Two consecutive high surrogates.
					return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
				}
				pairPos = i
			case u >= surrLowMin && u <= surrLowMax:
				if pairPos == noPair {
					// A low surrogate with nothing to pair with.
					return &ValidationError{ValidUpTo: i, ErrorLen: 3}
				}
				high := uint16(b[pairPos]&0x0F)<<12 |
					uint16(b[pairPos+1]&0x3F)<<6 |
					uint16(b[pairPos+2]&0x3F)
				if utf16.DecodeRune(rune(high), rune(u)) == 0xFFFD {
					return &ValidationError{ValidUpTo: pairPos, ErrorLen: 6}
				}
				pairPos = noPair
			default:
				if pairPos != noPair {
					return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
				}
			}
			i += 3

		case c&0xF0 == 0xF0:
			// Four-byte (or longer) lead bytes never occur; code points
			// above U+FFFF are encoded as surrogate pairs instead.
			return &ValidationError{ValidUpTo: i, ErrorLen: 1}

		default:
			// ASCII, 0x01–0x7F.
			if pairPos != noPair {
				return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
			}
			i++
		}
	}
	if pairPos != noPair {
		// Buffer ended after a lone high surrogate.
		return &ValidationError{ValidUpTo: pairPos, ErrorLen: 3}
	}
	return nil
}
