// SPDX-License-Identifier: MIT
// Package selector builds CSS selector strings through a fluent, order-aware API.
//
// A selector is assembled from fragments of six kinds. Each kind has a fixed rank
// and fragments must be appended in non-decreasing rank order:
//
//	element (1) → #id (10) → .class (20) → [attribute] (30) → :pseudo-class (40) → ::pseudo-element (50)
//
// Element, id and pseudo-element are singletons: each may occur at most once in a
// selector. Classes, attributes and pseudo-classes may repeat.
//
// Quick start:
//
//	s := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
//	// s == `a[href$=".png"]:focus`
//
//	s = selector.Combine(
//		selector.Element("ul").Class("menu"),
//		selector.Child,
//		selector.Element("li"),
//	).Stringify()
//	// s == "ul.menu > li"
//
// Errors:
//
// Fluent calls cannot return an error without breaking the chain, so a Builder
// keeps the first failure (ErrOrderViolation or ErrDuplicateFragment) and turns
// every later call into a no-op. Build returns it; Err inspects it.
//
//	if _, err := selector.Class("y").ID("x").Build(); errors.Is(err, selector.ErrOrderViolation) {
//		// fix the call order
//	}
//
// Rendering is destructive: Build and Stringify reset the builder, so a second
// Stringify on the same builder returns "". Combine renders both operands.
//
// Concurrency: a Builder is not safe for concurrent use; confine each one to a
// single goroutine.
package selector
