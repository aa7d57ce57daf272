// The owned buffer type.
//
// String owns its bytes exclusively, unlike Str which aliases someone
// else's buffer. Constant pool entries hold a String so their text
// survives the read buffer they were parsed from.
package mutf8

import "bytes"

// String is an owned, well-formed Modified UTF-8 buffer. The zero value
// is the empty string. All read operations go through the Str view.
type String struct {
	b []byte
}

// NewString validates b and wraps it in an owned String. The slice is
// retained, not copied; the caller must not modify it afterwards. On
// failure the returned *DecodeError carries b back to the caller
// together with the position of the defect.
func NewString(b []byte) (String, error) {
	if e := validate(b); e != nil {
		return String{}, &DecodeError{Bytes: b, Err: e}
	}
	return String{b: b}, nil
}

// NewStringUnchecked wraps b without validating it. The caller must
// guarantee that Validate(b) would succeed; see FromBytesUnchecked.
func NewStringUnchecked(b []byte) String {
	return String{b: b}
}

// Str returns the borrowed view over the buffer. The view aliases the
// String's storage and is valid as long as the String is not appended
// to concurrently.
func (s String) Str() Str { return Str(s.b) }

// Len returns the length in encoded bytes.
func (s String) Len() int { return len(s.b) }

// Bytes returns a copy of the encoded bytes.
func (s String) Bytes() []byte {
	return bytes.Clone(s.b)
}

// AppendStr appends the contents of v. Concatenating two well-formed
// buffers is well-formed: no sequence may span the boundary because a
// view never ends mid-sequence or with an unpaired high surrogate.
func (s *String) AppendStr(v Str) {
	s.b = append(s.b, v...)
}

// AppendRune appends the Modified UTF-8 encoding of r; see EncodeRune
// for how surrogate halves and out-of-range runes are handled.
func (s *String) AppendRune(r rune) {
	s.b = AppendRune(s.b, r)
}

// Equal reports whether both buffers hold identical encoded bytes.
func (s String) Equal(o String) bool { return s.Str().Equal(o.Str()) }

// Compare orders the buffers byte-wise lexicographically.
func (s String) Compare(o String) int { return s.Str().Compare(o.Str()) }

// Hash64 returns a 64-bit hash of the encoded bytes.
func (s String) Hash64() uint64 { return s.Str().Hash64() }

// IsASCII reports whether every byte is below 0x80.
func (s String) IsASCII() bool { return s.Str().IsASCII() }

// UTF16 decodes the buffer into UTF-16 code units.
func (s String) UTF16() []uint16 { return s.Str().UTF16() }

// UTF8 converts the buffer to an ordinary Go string; see Str.UTF8.
func (s String) UTF8() string { return s.Str().UTF8() }

// String renders the buffer as ordinary text; see Str.String.
func (s String) String() string { return s.Str().String() }

// Quote renders the buffer as a quoted, escaped literal; see Str.Quote.
func (s String) Quote() string { return s.Str().Quote() }
