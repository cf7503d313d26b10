// SPDX-License-Identifier: MIT
// Package codec serializes arbitrary values to JSON or YAML and decodes them
// back into a caller-chosen type.
//
// Decoding populates same-named fields of the target type. By default unknown
// keys are ignored; WithStrict reports each of them as ErrSchemaMismatch:
//
//	r, err := codec.FromJSON[shape.Rectangle](`{"width":2,"height":3,"depth":4}`, codec.WithStrict())
//	// errors.Is(err, codec.ErrSchemaMismatch) == true
//
// Field matching follows encoding/json: struct tags first, then the Go field
// name, compared case-insensitively. YAML follows goccy/go-yaml instead: the
// yaml tag or the lowercased field name, compared exactly.
//
// Errors:
//
//	ErrEncode         - the value could not be serialized.
//	ErrDecode         - the document is malformed or does not fit the target type.
//	ErrSchemaMismatch - strict mode only: a key has no matching field.
//	ErrNotObject      - strict mode only: a struct target received a non-object document.
package codec
