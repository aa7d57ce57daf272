// JSON interop.
//
// JSON cannot carry Modified UTF-8 directly, so a String marshals as
// its decoded text and unmarshals through the infallible FromUTF8
// conversion. Round-tripping through JSON preserves content, not the
// raw encoded bytes (an encoded NUL comes back as an encoded NUL, but
// the JSON form holds the character).
package mutf8

import (
	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the buffer as a JSON string of its decoded text.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.UTF8())
}

// UnmarshalJSON decodes a JSON string and converts it with FromUTF8.
func (s *String) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*s = FromUTF8(text)
	return nil
}
