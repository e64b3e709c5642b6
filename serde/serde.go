// SPDX-License-Identifier: MIT
// Package: cssel/serde
//
// serde.go — ToJSON / FromJSON over encoding/json, with sentinel-wrapped
// decode errors per the library-wide error policy (see selector/errors.go).

package serde

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode indicates that FromJSON received a payload that does not
// decode into the requested type (malformed JSON or mismatched shape).
// Usage: if errors.Is(err, ErrDecode) { /* reject the payload */ }.
var ErrDecode = errors.New("serde: cannot decode payload")

// ToJSON encodes v as a compact JSON string.
// It fails only for values encoding/json cannot represent (channels,
// funcs, cyclic data); plain records never error.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("ToJSON: %w", err)
	}

	return string(data), nil
}

// FromJSON decodes data into a fresh T and returns it by value. Because
// the result is a concrete T rather than a generic map, T's full method
// set is available on the returned value — deserialization revives
// behavior, not just fields.
//
// On failure the zero T is returned alongside an error wrapping ErrDecode.
func FromJSON[T any](data string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		var zero T

		return zero, fmt.Errorf("FromJSON: %v: %w", err, ErrDecode)
	}

	return v, nil
}
