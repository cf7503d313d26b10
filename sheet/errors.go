// SPDX-License-Identifier: MIT
// Package: selkit/sheet
//
// errors.go — sentinel errors. Load aggregates independent validation failures
// with multierr; each one still matches its sentinel through errors.Is.

package sheet

import "errors"

var (
	// ErrParse indicates malformed YAML or keys the sheet format does not define.
	ErrParse = errors.New("sheet: parse failed")

	// ErrEmptyName indicates an entry without a name.
	ErrEmptyName = errors.New("sheet: empty selector name")

	// ErrDuplicateName indicates two entries sharing a name.
	ErrDuplicateName = errors.New("sheet: duplicate selector name")

	// ErrBadEntry indicates an entry with both or neither of parts/combine,
	// or a part that is not a single "kind: value" pair.
	ErrBadEntry = errors.New("sheet: malformed selector entry")

	// ErrUnknownKind indicates a part key that names no fragment kind.
	ErrUnknownKind = errors.New("sheet: unknown fragment kind")

	// ErrUnknownSelector indicates a reference to an undefined name.
	ErrUnknownSelector = errors.New("sheet: unknown selector")

	// ErrCycle indicates entries that combine themselves.
	ErrCycle = errors.New("sheet: reference cycle")
)
