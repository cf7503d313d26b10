// SPDX-License-Identifier: MIT
// Package: selkit/sheet

package sheet

// document is the top-level YAML shape.
type document struct {
	Selectors []Entry `yaml:"selectors"`
}

// Entry is one named selector definition. Exactly one of Parts and Combine is set.
type Entry struct {
	Name    string       `yaml:"name"`
	Parts   []Part       `yaml:"parts,omitempty"`
	Combine *Combination `yaml:"combine,omitempty"`
}

// Part is a single "kind: value" pair, e.g. {"pseudo-class": "focus"}.
type Part map[string]string

// Combination joins two entries, referenced by name, with a combinator.
type Combination struct {
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Rendered is the output of RenderAll for one entry.
type Rendered struct {
	Name     string
	Selector string
}
