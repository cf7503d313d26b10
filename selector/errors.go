// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Messages are fixed and form part of the public contract.
//   • Builder methods attach their own name with %w, e.g. "ID: <sentinel>".

package selector

import (
	"errors"
	"fmt"
)

// ErrOrderViolation indicates a fragment whose kind ranks lower than the last
// appended fragment (e.g. an id after a class).
var ErrOrderViolation = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

// ErrDuplicateFragment indicates a second element, id or pseudo-element in one selector.
var ErrDuplicateFragment = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")

// ErrUnknownKind indicates a Kind outside the six ranked fragment kinds
// passed to Builder.Append.
var ErrUnknownKind = errors.New("selector: unknown fragment kind")

// methodError prefixes err with the builder method that produced it.
func methodError(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
