// Package selkit is a small toolkit of object utilities centred on an
// order-aware CSS selector builder.
//
// Subpackages:
//
//	selector/ — fluent selector builder: element → #id → .class → [attr] → :pseudo-class → ::pseudo-element,
//	            singleton checks and combinators (Combine)
//	sheet/    — named selector definitions loaded from YAML and rendered on demand
//	shape/    — Rectangle factory with Area
//	codec/    — generic JSON/YAML round-trip helpers with an optional strict schema check
//	cmd/selkit — command-line front end for build, combine and render
//
// Quick example:
//
//	selector.Combine(
//		selector.Element("ul").Class("menu"),
//		selector.Child,
//		selector.Element("li").PseudoClass("hover"),
//	).Stringify() // "ul.menu > li:hover"
//
//	go get github.com/katalvlaran/selkit
package selkit
