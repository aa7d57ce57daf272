// The borrowed view type.
//
// Str is a plain byte slice carrying the Modified UTF-8 validity
// invariant by construction: every Str produced by a validating
// constructor, or derived from one, denotes a byte sequence that
// Validate accepts. The view never owns storage: it aliases whatever
// buffer it was built from, so it costs nothing to create and nothing
// to pass around.
package mutf8

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

// Str is a borrowed view over well-formed Modified UTF-8 bytes. It
// aliases the underlying buffer; converting a []byte with FromBytes
// performs no copy. The zero value is the empty string.
//
// Mutating methods (MakeASCIILower, MakeASCIIUpper) write through to
// the underlying buffer. All other methods are read-only.
type Str []byte

// FromBytes validates b and returns it reinterpreted as a Str, sharing
// the same storage. It returns a *ValidationError if b is not
// well-formed Modified UTF-8.
func FromBytes(b []byte) (Str, error) {
	if e := validate(b); e != nil {
		return nil, e
	}
	return Str(b), nil
}

// FromBytesUnchecked reinterprets b as a Str without validating it.
//
// The caller must guarantee that Validate(b) would succeed. Feeding
// bytes that were not produced by this package or previously validated
// breaks every invariant downstream: iterators will read out of
// bounds, formatting will emit garbage. There is no runtime check.
func FromBytesUnchecked(b []byte) Str {
	return Str(b)
}

// Len returns the length of the view in encoded bytes, not characters.
func (s Str) Len() int { return len(s) }

// IsASCII reports whether every byte is below 0x80. No lead or
// continuation byte of a multi-byte sequence is ever below 0x80, so a
// byte-wise check is sufficient.
func (s Str) IsASCII() bool {
	for _, c := range s {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// MakeASCIILower folds ASCII uppercase letters to lowercase in place.
// Only bytes in 'A'–'Z' change; multi-byte sequences are untouched
// because their bytes never fall in the ASCII letter range, so the
// validity invariant holds without re-scanning.
func (s Str) MakeASCIILower() {
	for i, c := range s {
		if 'A' <= c && c <= 'Z' {
			s[i] = c | 0x20
		}
	}
}

// MakeASCIIUpper folds ASCII lowercase letters to uppercase in place.
func (s Str) MakeASCIIUpper() {
	for i, c := range s {
		if 'a' <= c && c <= 'z' {
			s[i] = c &^ 0x20
		}
	}
}

// Equal reports whether two views hold identical encoded bytes, not
// whether they render to the same text; validation admits overlong
// forms, and an overlong spelling compares unequal to the short one.
func (s Str) Equal(o Str) bool {
	return bytes.Equal(s, o)
}

// Compare returns -1, 0, or +1 ordering the views byte-wise
// lexicographically, consistent with the raw encoded bytes.
func (s Str) Compare(o Str) int {
	return bytes.Compare(s, o)
}

// Hash64 returns a 64-bit hash of the encoded bytes. Views that compare
// Equal hash identically.
func (s Str) Hash64() uint64 {
	return xxh3.Hash(s)
}

// Clone copies the view into an owned String.
func (s Str) Clone() String {
	return String{b: bytes.Clone(s)}
}

// UTF16 decodes the view into UTF-16 code units. Surrogate pairs are
// kept split, matching Java's char-level representation.
func (s Str) UTF16() []uint16 {
	out := make([]uint16, 0, len(s))
	it := s.JChars()
	for {
		u, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, u)
	}
}
