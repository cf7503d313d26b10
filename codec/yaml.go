// SPDX-License-Identifier: MIT
// Package: selkit/codec

package codec

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

// ToYAML serializes v as a YAML document.
func ToYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("ToYAML: %w: %v", ErrEncode, err)
	}
	return string(data), nil
}

// FromYAML is the YAML counterpart of FromJSON. Struct fields are matched the
// way goccy/go-yaml matches them: the yaml tag, else the lowercased field name.
// Key case is significant, unlike FromJSON.
func FromYAML[T any](data string, opts ...Option) (T, error) {
	var out T
	cfg := newConfig(opts...)

	if err := yaml.Unmarshal([]byte(data), &out); err != nil {
		return out, fmt.Errorf("FromYAML: %w: %v", ErrDecode, err)
	}
	if !cfg.strict {
		return out, nil
	}
	if _, ok := structType(reflect.TypeOf((*T)(nil)).Elem()); !ok {
		return out, nil
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return out, fmt.Errorf("FromYAML: %w: %v", ErrNotObject, err)
	}

	// The lenient pass succeeded, so a failure here can only be a key the
	// decoder has no field for.
	var strict T
	dec := yaml.NewDecoder(strings.NewReader(data), yaml.DisallowUnknownField())
	if err := dec.Decode(&strict); err != nil && !errors.Is(err, io.EOF) {
		cfg.logger.Debug("codec unknown key", zap.Error(err))
		var zero T
		return zero, fmt.Errorf("FromYAML: %w: %v", ErrSchemaMismatch, err)
	}
	return strict, nil
}
