package mutf8

import "testing"

func TestStringRendersPlainText(t *testing.T) {
	s := mustStr(t, []byte("java/lang/Object"))
	if got := s.String(); got != "java/lang/Object" {
		t.Errorf("String = %q", got)
	}
}

func TestStringRendersEncodedNul(t *testing.T) {
	s := mustStr(t, []byte{'a', 0xC0, 0x80, 'b'})
	if got := s.String(); got != "a\x00b" {
		t.Errorf("String = %q, want %q", got, "a\x00b")
	}
}

func TestStringRendersSurrogatePair(t *testing.T) {
	s := mustStr(t, []byte{'<', 0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80, '>'})
	if got := s.String(); got != "<\U0001F600>" {
		t.Errorf("String = %q, want %q", got, "<\U0001F600>")
	}
}

func TestStringAlternatingRuns(t *testing.T) {
	// Valid runs and exceptional encodings interleaved.
	s := mustStr(t, []byte{
		0xC0, 0x80,
		'a', 0xC3, 0xA9,
		0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80,
		0xC0, 0x80,
		'z',
	})
	want := "\x00aé\U0001F600\x00z"
	if got := s.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestStringRendersOverlongEncodings(t *testing.T) {
	// Validation checks continuation bits only, as Java does, so
	// overlong 2- and 3-byte forms are accepted and render as the code
	// points they denote.
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"two byte ascii", []byte{0xC1, 0x81}, "A"},
		{"two byte control", []byte{0xC0, 0x81}, "\x01"},
		{"three byte nul", []byte{0xE0, 0x80, 0x80}, "\x00"},
		{"between runs", []byte{'x', 0xC1, 0xA0, 'y'}, "x`y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustStr(t, tt.data).String(); got != tt.want {
				t.Errorf("String(% X) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestUTF8MatchesString(t *testing.T) {
	views := [][]byte{
		[]byte("ascii"),
		{0xC0, 0x80},
		{0xC1, 0x81},
		{0xE0, 0x80, 0x80},
		{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80},
		{'a', 0xE4, 0xB8, 0xAD, 0xC0, 0x80},
	}
	for _, b := range views {
		s := mustStr(t, b)
		if s.UTF8() != s.String() {
			t.Errorf("UTF8 and String disagree for % X: %q vs %q", b, s.UTF8(), s.String())
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("abc"), `"abc"`},
		{"encoded nul", []byte{'a', 0xC0, 0x80, 'b'}, `"a\x00b"`},
		{"tab and newline", []byte("a\tb\n"), `"a\tb\n"`},
		{"printable unicode", []byte{0xE4, 0xB8, 0xAD}, `"中"`},
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, `"😀"`},
		{"overlong nul", []byte{0xE0, 0x80, 0x80}, `"\x00"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustStr(t, tt.data).Quote(); got != tt.want {
				t.Errorf("Quote(% X) = %s, want %s", tt.data, got, tt.want)
			}
		})
	}
}
