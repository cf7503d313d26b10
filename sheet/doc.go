// SPDX-License-Identifier: MIT
// Package sheet loads named selector definitions from YAML and renders them
// through the selector builder.
//
// A sheet lists selectors in order. Each entry either spells out its parts,
// one "kind: value" pair per part in CSS order, or combines two other entries
// by name:
//
//	selectors:
//	  - name: image-link
//	    parts:
//	      - element: a
//	      - attr: 'href$=".png"'
//	      - pseudo-class: focus
//	  - name: caption
//	    parts:
//	      - element: figcaption
//	  - name: figure-caption
//	    combine: {left: image-link, combinator: "+", right: caption}
//
// Every Render rebuilds the selector from its definition, so an entry can be
// referenced any number of times even though rendering resets a builder.
//
// Errors:
//
//	ErrParse           - malformed YAML or unexpected keys.
//	ErrEmptyName       - an entry without a name.
//	ErrDuplicateName   - two entries with the same name.
//	ErrBadEntry        - an entry with both or neither of parts/combine, or a malformed part.
//	ErrUnknownKind     - a part key that is not a fragment kind.
//	ErrUnknownSelector - a reference to a name the sheet does not define.
//	ErrCycle           - entries that combine themselves, directly or indirectly.
//
// Ordering and duplicate errors from the selector package propagate unchanged.
package sheet
