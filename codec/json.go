// SPDX-License-Identifier: MIT
// Package: selkit/codec

package codec

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ToJSON serializes v as compact JSON.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("ToJSON: %w: %v", ErrEncode, err)
	}
	return string(data), nil
}

// FromJSON decodes data into a new T, populating same-named fields.
// With WithStrict, keys that match no field of a struct T are reported as
// ErrSchemaMismatch (all of them, sorted by key) and nothing is returned.
func FromJSON[T any](data string, opts ...Option) (T, error) {
	var out T
	cfg := newConfig(opts...)

	if cfg.strict {
		if st, ok := structType(reflect.TypeOf((*T)(nil)).Elem()); ok {
			var doc map[string]json.RawMessage
			if err := json.Unmarshal([]byte(data), &doc); err != nil {
				return out, fmt.Errorf("FromJSON: %w: %v", ErrNotObject, err)
			}
			if err := unknownKeys(doc, fieldNames(st, "json"), cfg.logger); err != nil {
				return out, fmt.Errorf("FromJSON: %w", err)
			}
		}
	}

	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return out, fmt.Errorf("FromJSON: %w: %v", ErrDecode, err)
	}
	return out, nil
}
