// SPDX-License-Identifier: MIT
// Package: selkit/codec
//
// errors.go — sentinel errors. Callers match with errors.Is; functions add
// their own name as context.

package codec

import "errors"

var (
	// ErrEncode indicates that a value could not be serialized.
	ErrEncode = errors.New("codec: encode failed")

	// ErrDecode indicates a malformed document or a type mismatch while decoding.
	ErrDecode = errors.New("codec: decode failed")

	// ErrSchemaMismatch indicates a document key with no matching field (strict mode).
	ErrSchemaMismatch = errors.New("codec: schema mismatch")

	// ErrNotObject indicates a non-object document decoded into a struct (strict mode).
	ErrNotObject = errors.New("codec: document is not an object")
)
