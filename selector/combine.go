// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// combine.go — joining built selectors with combinators.

package selector

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Operand is anything Combine can render. *Builder and Raw implement it.
type Operand interface {
	Build() (string, error)
}

// Raw is an already rendered selector string used as a Combine operand.
type Raw string

// Build returns r unchanged.
func (r Raw) Build() (string, error) {
	return string(r), nil
}

// Combine renders a and b (resetting them) and returns a new Builder holding
// the single fragment "<a> <combinator> <b>". One space is always added on
// each side of the combinator, whatever it contains, so Combine(x, " ", y)
// yields three spaces between x and y.
//
// The combinator is not validated. Operand errors are carried by the returned
// builder and surface from its Build, aggregated when both operands failed.
//
// Complexity: O(len(a)+len(b)).
func Combine(a Operand, combinator string, b Operand, opts ...Option) *Builder {
	out := New(opts...)

	left, errA := a.Build()
	right, errB := b.Build()
	if err := multierr.Combine(errA, errB); err != nil {
		out.err = err
		out.log.Debug("selector combine rejected", zap.String("combinator", combinator), zap.Error(err))
		return out
	}

	compound := left + " " + combinator + " " + right
	if err := out.state.Append(compound, KindCompound); err != nil {
		out.err = err
		return out
	}
	out.log.Debug("selector combined",
		zap.String("left", left),
		zap.String("combinator", combinator),
		zap.String("right", right))
	return out
}
