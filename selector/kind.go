// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// kind.go — fragment kinds, their ranks and CSS sigils.

package selector

// Kind identifies the type of a selector fragment. Its integer value is the
// fragment's rank: a fragment may never follow one of a strictly higher rank.
type Kind int

const (
	// KindCompound is the unranked kind of a combined selector produced by Combine.
	KindCompound Kind = 0
	// KindElement is a type selector such as "div".
	KindElement Kind = 1
	// KindID is an id selector such as "#main".
	KindID Kind = 10
	// KindClass is a class selector such as ".container".
	KindClass Kind = 20
	// KindAttribute is an attribute selector such as "[href]".
	KindAttribute Kind = 30
	// KindPseudoClass is a pseudo-class such as ":focus".
	KindPseudoClass Kind = 40
	// KindPseudoElement is a pseudo-element such as "::before".
	KindPseudoElement Kind = 50
)

// Canonical CSS combinators. Combine treats the token as opaque text, so any
// other string is accepted as well.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)

// CanonicalOrder lists the ranked kinds in the order they must appear.
func CanonicalOrder() []Kind {
	return []Kind{KindElement, KindID, KindClass, KindAttribute, KindPseudoClass, KindPseudoElement}
}

// Singleton reports whether at most one fragment of k may occur in a selector.
func (k Kind) Singleton() bool {
	switch k {
	case KindElement, KindID, KindPseudoElement:
		return true
	}
	return false
}

// Format applies the CSS sigil of k to value.
func (k Kind) Format(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// String returns the hyphenated CSS name of the kind ("pseudo-class", ...).
func (k Kind) String() string {
	switch k {
	case KindCompound:
		return "compound"
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// ParseKind maps a CSS kind name to its Kind. "attr" is accepted as an alias of
// "attribute". The second result is false for unknown names.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "element":
		return KindElement, true
	case "id":
		return KindID, true
	case "class":
		return KindClass, true
	case "attr", "attribute":
		return KindAttribute, true
	case "pseudo-class":
		return KindPseudoClass, true
	case "pseudo-element":
		return KindPseudoElement, true
	default:
		return 0, false
	}
}
