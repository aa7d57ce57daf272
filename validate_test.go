package mutf8

import (
	"errors"
	"testing"
)

func TestValidateWellFormed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"ascii", []byte("hello, world")},
		{"two byte", []byte{0xC3, 0xA9}},                               // é
		{"three byte", []byte{0xE4, 0xB8, 0xAD}},                       // 中
		{"encoded nul", []byte{0xC0, 0x80}},                            // U+0000
		{"overlong two byte", []byte{0xC1, 0x81}},                      // U+0041
		{"overlong three byte", []byte{0xE0, 0x80, 0x80}},              // U+0000
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}}, // U+1F600
		{"mixed", []byte{'A', 0xC3, 0xA9, 0xE4, 0xB8, 0xAD, 0xC0, 0x80, 'z'}},
		{"pair between ascii", []byte{'a', 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.data); err != nil {
				t.Errorf("Validate(% X) = %v, want nil", tt.data, err)
			}
			if !Valid(tt.data) {
				t.Errorf("Valid(% X) = false, want true", tt.data)
			}
		})
	}
}

func TestValidateMalformed(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		validUpTo int
		errorLen  int
	}{
		{"literal nul", []byte{0x00}, 0, 1},
		{"nul after prefix", []byte{'a', 'b', 0x00}, 2, 1},
		{"stray continuation", []byte{0x80}, 0, 1},
		{"continuation after ascii", []byte{'a', 0xBF}, 1, 1},
		{"truncated two byte", []byte{0xC0}, 1, ErrorLenUnknown},
		{"bad two byte continuation", []byte{0xC3, 0x28}, 0, 2},
		{"truncated three byte", []byte{0xE0}, 1, ErrorLenUnknown},
		{"three byte missing last", []byte{0xE4, 0xB8}, 2, ErrorLenUnknown},
		{"bad first continuation", []byte{0xE4, 0x28, 0xAD}, 0, 3},
		{"bad second continuation", []byte{0xE4, 0xB8, 0x28}, 0, 3},
		{"four byte emoji", []byte{0xF0, 0x9F, 0x98, 0x80}, 0, 1},
		{"lead 0xFF", []byte{0xFF, 0x80, 0x80}, 0, 1},
		{"lone high at end", []byte{0xED, 0xA0, 0xBD}, 0, 3},
		{"high then ascii", []byte{0xED, 0xA0, 0xBD, 'A'}, 0, 3},
		{"high then nul", []byte{0xED, 0xA0, 0xBD, 0x00}, 0, 3},
		{"high then continuation", []byte{0xED, 0xA0, 0xBD, 0x80}, 0, 3},
		{"high then two byte", []byte{0xED, 0xA0, 0xBD, 0xC3, 0xA9}, 0, 3},
		{"high then high", []byte{0xED, 0xA0, 0xBD, 0xED, 0xA0, 0xBD}, 0, 3},
		{"high then plain three byte", []byte{0xED, 0xA0, 0xBD, 0xE4, 0xB8, 0xAD}, 0, 3},
		{"lone low surrogate", []byte{0xED, 0xB8, 0x80}, 0, 3},
		{"lone low after ascii", []byte{'x', 0xED, 0xB8, 0x80}, 1, 3},
		// A 0xF0 lead is reported where it stands, even mid-pair.
		{"high then four byte lead", []byte{0xED, 0xA0, 0xBD, 0xF0}, 3, 1},
		// Truncation inside the would-be low half is reported as
		// truncation, at the point the buffer ran out.
		{"high then truncated", []byte{0xED, 0xA0, 0xBD, 0xE4}, 4, ErrorLenUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if err == nil {
				t.Fatalf("Validate(% X) = nil, want error", tt.data)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate error type = %T, want *ValidationError", err)
			}
			if verr.ValidUpTo != tt.validUpTo {
				t.Errorf("ValidUpTo = %d, want %d", verr.ValidUpTo, tt.validUpTo)
			}
			if verr.ErrorLen != tt.errorLen {
				t.Errorf("ErrorLen = %d, want %d", verr.ErrorLen, tt.errorLen)
			}
			if Valid(tt.data) {
				t.Errorf("Valid(% X) = true, want false", tt.data)
			}
		})
	}
}

func TestValidateFourByteLeadAlwaysFails(t *testing.T) {
	// Every lead byte in 0xF0–0xFF fails with length 1 regardless of
	// what follows.
	for lead := 0xF0; lead <= 0xFF; lead++ {
		data := []byte{byte(lead), 0x80, 0x80, 0x80}
		err := Validate(data)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("lead 0x%02X: got %v, want *ValidationError", lead, err)
		}
		if verr.ValidUpTo != 0 || verr.ErrorLen != 1 {
			t.Errorf("lead 0x%02X: got (%d, %d), want (0, 1)", lead, verr.ValidUpTo, verr.ErrorLen)
		}
	}
}

func TestValidString(t *testing.T) {
	if !ValidString("plain ascii") {
		t.Error("ValidString(ascii) = false, want true")
	}
	if ValidString("embedded \x00 nul") {
		t.Error("ValidString with literal NUL = true, want false")
	}
	if ValidString("emoji \U0001F600") {
		t.Error("ValidString with 4-byte sequence = true, want false")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := Validate([]byte{0xE0})
	if got := err.Error(); got != "mutf8: truncated sequence at byte 1" {
		t.Errorf("Error() = %q", got)
	}
	err = Validate([]byte{0x00})
	if got := err.Error(); got != "mutf8: invalid 1-byte sequence at byte 0" {
		t.Errorf("Error() = %q", got)
	}
}
