// Package jsonutil provides shared helpers for decoding JSON payloads with
// contextual error messages.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// A JSON null or an empty array both yield a non-nil empty slice.
// Any other top-level value is an error.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s: empty body", context)
	}
	if trimmed[0] != '[' && !bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%s: expected JSON array", context)
	}
	var entries []T
	if err := UnmarshalWithContext(trimmed, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// MarshalIndent encodes v as two-space indented JSON followed by a newline.
func MarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
