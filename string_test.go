package mutf8

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
)

func TestStringZeroValue(t *testing.T) {
	var s String
	if s.Len() != 0 {
		t.Errorf("zero value Len = %d, want 0", s.Len())
	}
	if got := s.UTF8(); got != "" {
		t.Errorf("zero value UTF8 = %q, want empty", got)
	}
}

func TestStringStrView(t *testing.T) {
	s := FromUTF8("abc")
	v := s.Str()
	if !v.Equal(Str("abc")) {
		t.Errorf("Str view = % X", []byte(v))
	}
}

func TestStringBytesCopies(t *testing.T) {
	s := FromUTF8("abc")
	b := s.Bytes()
	b[0] = 'x'
	if got := s.UTF8(); got != "abc" {
		t.Errorf("buffer mutated through Bytes copy: %q", got)
	}
}

func TestStringEqualityAndHash(t *testing.T) {
	a := FromUTF8("name\x00desc")
	b := FromUTF8("name\x00desc")
	c := FromUTF8("other")

	if !a.Equal(b) {
		t.Error("equal buffers are not Equal")
	}
	if a.Hash64() != b.Hash64() {
		t.Error("equal buffers hash differently")
	}
	if a.Equal(c) || a.Compare(c) == 0 {
		t.Error("distinct buffers compare equal")
	}
}

func TestStringMarshalJSON(t *testing.T) {
	s := FromUTF8("a\x00b\U0001F600")
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back String
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(s) {
		t.Errorf("round trip = % X, want % X", back.Bytes(), s.Bytes())
	}
}

func TestStringUncheckedSharesStorage(t *testing.T) {
	b := []byte("abc")
	s := NewStringUnchecked(b)
	b[0] = 'x'
	if got := s.UTF8(); got != "xbc" {
		t.Errorf("UTF8 = %q, want %q", got, "xbc")
	}
}

func TestNewStringRetainsSlice(t *testing.T) {
	b := []byte("abc")
	s, err := NewString(b)
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if !bytes.Equal(s.Str(), b) {
		t.Errorf("view = % X, want % X", []byte(s.Str()), b)
	}
}
