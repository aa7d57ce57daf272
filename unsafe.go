// Zero-copy string/byte reinterpretation.
//
// Validation and formatting sit on the class-loading hot path, so
// scanning a string must not copy it first. s2b aliases a string's
// bytes as a read-only []byte; callers must never write through the
// result or let it outlive the string. b2s is the inverse and is only
// safe while the byte slice is not mutated. Both are confined to
// transient, read-only uses inside this package.
package mutf8

import "unsafe"

// s2b returns a []byte sharing the storage of s. The result must be
// treated as immutable.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// b2s returns a string sharing the storage of b. The caller must not
// mutate b while the string is in use.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
