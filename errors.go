// Package mutf8 implements the Modified UTF-8 text encoding used by the
// Java class-file format for all textual constants.
//
// Modified UTF-8 is standard UTF-8 with two deviations: the NUL code
// point is always encoded as the two-byte overlong sequence 0xC0 0x80
// (a literal 0x00 byte never appears in a well-formed buffer), and code
// points above U+FFFF are never encoded as a 4-byte sequence; they are
// split into a UTF-16 surrogate pair with each half independently
// encoded as 3 bytes, giving 6 bytes total.
//
// The package provides a validator with precise error positions, a
// borrowed view type (Str) that reinterprets validated bytes without
// copying, an owned buffer type (String), layered decoding iterators
// (bytes, 16-bit code units, runes), encoding routines, and an
// infallible conversion from ordinary Go strings.
package mutf8

import "fmt"

// ErrorLenUnknown is the ErrorLen value reported when the input ends in
// the middle of a multi-byte sequence, so the length of the erroneous
// sequence cannot be determined.
const ErrorLenUnknown = 0

// ValidationError describes the first malformed sequence found while
// scanning a byte buffer. ValidUpTo is the byte offset of the defect;
// everything before it decodes cleanly. ErrorLen is the length of the
// erroneous sequence (1, 2, 3, or 6 bytes), or ErrorLenUnknown when
// the buffer was truncated mid-sequence. Callers doing incremental
// repair skip ErrorLen bytes at ValidUpTo and resume scanning there.
type ValidationError struct {
	ValidUpTo int
	ErrorLen  int
}

func (e *ValidationError) Error() string {
	if e.ErrorLen == ErrorLenUnknown {
		return fmt.Sprintf("mutf8: truncated sequence at byte %d", e.ValidUpTo)
	}
	return fmt.Sprintf("mutf8: invalid %d-byte sequence at byte %d", e.ErrorLen, e.ValidUpTo)
}

// DecodeError is returned when constructing an owned String from bytes
// that fail validation. It keeps the rejected bytes so callers can
// report or inspect them instead of losing the input.
type DecodeError struct {
	Bytes []byte
	Err   *ValidationError
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("mutf8: cannot decode %d bytes: %v", len(e.Bytes), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
