// SPDX-License-Identifier: MIT
// Package: selkit/codec
//
// fields.go — the field set of a struct type, as seen by a tag-driven decoder.

package codec

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// structType returns the struct type behind t (dereferencing pointers).
func structType(t reflect.Type) (reflect.Type, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// fieldNames lists the document keys a struct accepts under tag ("json" or
// "yaml"). Untagged embedded structs are flattened, "-" fields are skipped.
func fieldNames(t reflect.Type, tag string) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			if et, ok := structType(f.Type); ok {
				names = append(names, fieldNames(et, tag)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// unknownKeys reports every key of doc without a matching name, in sorted
// order, each wrapped as ErrSchemaMismatch and combined with multierr.
func unknownKeys[V any](doc map[string]V, known []string, log *zap.Logger) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs error
	for _, k := range keys {
		if !matches(k, known) {
			log.Debug("codec unknown key", zap.String("key", k))
			errs = multierr.Append(errs, fmt.Errorf("%w: unknown field %q", ErrSchemaMismatch, k))
		}
	}
	return errs
}

func matches(key string, known []string) bool {
	for _, n := range known {
		if strings.EqualFold(key, n) {
			return true
		}
	}
	return false
}
