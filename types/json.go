package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// canonicalHex formats the canonical form of v as a fully padded lowercase
// hex string with the 0x prefix.
func canonicalHex(v Value) string {
	return "0x" + hex.EncodeToString(v.Marshal())
}

func marshalCanonical(v Value) ([]byte, error) {
	return json.Marshal(canonicalHex(v))
}

// unmarshalFlexible decodes the flexible JSON form into v: a string holding
// the textual form, or a bare number. Any other JSON shape fails with
// ErrUnsupportedJSONShape.
func unmarshalFlexible(v Value, data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty document", ErrUnsupportedJSONShape)
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return setString(v, s)
	case '[', '{', 't', 'f', 'n':
		return fmt.Errorf("%w: expected a string or number, got %s", ErrUnsupportedJSONShape, shapeName(data[0]))
	default:
		// A bare number token is parsed from its raw text.
		return setString(v, string(data))
	}
}

func shapeName(lead byte) string {
	switch lead {
	case '[':
		return "an array"
	case '{':
		return "an object"
	case 't', 'f':
		return "a bool"
	default:
		return "null"
	}
}

// UnmarshalSlice decodes a JSON array elementwise into a slice of values.
// An element failure is returned with the element index prepended.
func UnmarshalSlice[T any, PT interface {
	*T
	json.Unmarshaler
}](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected an array", ErrUnsupportedJSONShape)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}
	out := make([]T, len(raw))
	for i := range raw {
		if err := PT(&out[i]).UnmarshalJSON(raw[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return out, nil
}
