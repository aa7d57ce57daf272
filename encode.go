// Encoding: runes in, Modified UTF-8 bytes out.
//
// Single scalars are encoded by magnitude, 1, 2, or 3 bytes within the
// BMP, or two independent 3-byte surrogate halves (6 bytes) above it.
// FromUTF8 converts whole Go strings and never fails: the only inputs
// the encoding rejects that a UTF-8 string can contain are literal NUL
// bytes and code points above U+FFFF, and both have a defined rewrite.
package mutf8

import (
	"unicode/utf16"
	"unicode/utf8"
)

// MaxBytes is the maximum number of bytes a single rune can occupy.
const MaxBytes = 6

// RuneLen returns the number of bytes needed to encode r: 1–3 within
// the BMP (2 for NUL), 6 above it. Surrogate halves and out-of-range
// values encode as U+FFFD and count as 3.
func RuneLen(r rune) int {
	switch {
	case r == 0:
		return 2
	case r < 0:
		return 3 // U+FFFD
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	case r <= utf8.MaxRune:
		return 6
	default:
		return 3 // U+FFFD
	}
}

// EncodeRune writes the Modified UTF-8 encoding of r into dst and
// returns the number of bytes written. dst must be large enough to hold
// the encoding (MaxBytes always suffices); if it is not, EncodeRune
// panics on the out-of-range write. Surrogate halves and values above
// utf8.MaxRune encode as U+FFFD, mirroring unicode/utf8.
func EncodeRune(dst []byte, r rune) int {
	switch {
	case r == 0:
		// NUL always takes the overlong two-byte form.
		dst[0] = 0xC0
		dst[1] = 0x80
		return 2
	case r < 0:
		return encodeBMP(dst, 0xFFFD)
	case r < 0x10000:
		if r >= surrHighMin && r <= surrLowMax {
			r = 0xFFFD
		}
		return encodeBMP(dst, uint16(r))
	case r <= utf8.MaxRune:
		high, low := utf16.EncodeRune(r)
		n := encodeBMP(dst, uint16(high))
		return n + encodeBMP(dst[n:], uint16(low))
	default:
		return encodeBMP(dst, 0xFFFD)
	}
}

// encodeBMP writes one UTF-16 code unit using the 1/2/3-byte rules.
// A zero unit takes the 1-byte form here; EncodeRune intercepts NUL
// before it reaches this point, and a zero unit cannot otherwise occur.
func encodeBMP(dst []byte, u uint16) int {
	switch {
	case u < 0x80:
		dst[0] = byte(u)
		return 1
	case u < 0x800:
		dst[0] = 0xC0 | byte(u>>6)
		dst[1] = 0x80 | byte(u)&0x3F
		return 2
	default:
		dst[0] = 0xE0 | byte(u>>12)
		dst[1] = 0x80 | byte(u>>6)&0x3F
		dst[2] = 0x80 | byte(u)&0x3F
		return 3
	}
}

// AppendRune appends the Modified UTF-8 encoding of r to dst and
// returns the extended slice.
func AppendRune(dst []byte, r rune) []byte {
	var buf [MaxBytes]byte
	n := EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// FromUTF8 converts an ordinary Go string into an owned Modified UTF-8
// String. The conversion never fails.
//
// The common case, BMP text with no embedded NUL, is already
// well-formed and costs one validation scan plus one copy. On a
// validation failure the valid prefix is copied, the offending code
// point is re-encoded (NUL as 0xC0 0x80, astral code points as a
// surrogate pair), and the remaining tail is re-validated; the loop
// repeats until the tail is clean. Bytes that are not valid UTF-8 to
// begin with are replaced with U+FFFD, so the result always validates.
func FromUTF8(s string) String {
	b := s2b(s)
	e := validate(b)
	if e == nil {
		return String{b: []byte(s)}
	}
	out := make([]byte, 0, len(s)+4)
	for {
		p := repairStart(b, e)
		out = append(out, b[:p]...)
		b = b[p:]
		// Re-encode exactly one code point. DecodeRune returns
		// (U+FFFD, 1) for bytes that are not valid UTF-8, which both
		// repairs them and guarantees progress.
		r, size := utf8.DecodeRune(b)
		out = AppendRune(out, r)
		b = b[size:]
		if e = validate(b); e == nil {
			return String{b: append(out, b...)}
		}
	}
}

// repairStart returns the offset of the code point to re-encode. For
// truncation errors ValidUpTo points inside the partial sequence, so
// back up over its continuation bytes and lead byte to keep the copied
// prefix well-formed.
func repairStart(b []byte, e *ValidationError) int {
	p := e.ValidUpTo
	if e.ErrorLen == ErrorLenUnknown {
		for p > 0 && b[p-1]&0xC0 == 0x80 {
			p--
		}
		if p > 0 && b[p-1] >= 0xC0 {
			p--
		}
	}
	// Truncations and malformed follow-on sequences are reported at
	// their own offset even when a high surrogate is still awaiting its
	// low half, so the prefix can end with the lone high half. Back over
	// it as well; DecodeRune then rewrites its bytes as U+FFFD. A paired
	// high cannot sit here, because its low half would be the last three
	// bytes instead (lead 0xED, second byte 0xB0 or above).
	if p >= 3 && b[p-3] == 0xED && b[p-2] >= 0xA0 && b[p-2] <= 0xAF {
		p -= 3
	}
	return p
}
