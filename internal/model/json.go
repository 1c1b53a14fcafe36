package model

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON renders v as compact JSON with HTML escaping disabled.
// Comparison operators appear verbatim in the report records, so `>` must
// never be emitted as the escape sequence \u003e.
func EncodeJSON(v any) ([]byte, error) {
	return encodeJSON(v, "")
}

// EncodeJSONIndent renders v as two-space indented JSON with HTML escaping
// disabled.
func EncodeJSONIndent(v any) ([]byte, error) {
	return encodeJSON(v, "  ")
}

func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	// Encode terminates the stream with a newline the callers do not want.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
