// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// state.go — the ordered fragment accumulator behind every Builder.
//
// Invariants:
//   • ranks is parallel to fragments and non-decreasing at all times.
//   • Append never mutates on failure.
//   • Render resets fragments, ranks and singleton flags.

package selector

import "strings"

// State accumulates rendered fragments in insertion order and enforces the
// rank ordering between them. Singleton bookkeeping lives here too, but the
// "at most once" check is the caller's job (see Builder).
//
// The zero value is an empty, ready-to-use state.
type State struct {
	fragments []string
	ranks     []Kind

	seenElement       bool
	seenID            bool
	seenPseudoElement bool
}

// NewState returns an empty state.
func NewState() *State {
	return &State{}
}

// Append adds fragment with the rank of kind. It fails with ErrOrderViolation,
// leaving the state untouched, when kind ranks strictly lower than the last
// appended fragment. Equal ranks may repeat.
//
// Complexity: amortized O(1).
func (s *State) Append(fragment string, kind Kind) error {
	if last, ok := s.Last(); ok && kind < last {
		return ErrOrderViolation
	}
	s.fragments = append(s.fragments, fragment)
	s.ranks = append(s.ranks, kind)
	return nil
}

// Render concatenates all fragments with no separator and resets the state,
// so calling it twice in a row returns "" the second time.
//
// Complexity: O(total fragment length).
func (s *State) Render() string {
	out := s.Snapshot()
	s.Reset()
	return out
}

// Snapshot renders the current fragments without resetting.
func (s *State) Snapshot() string {
	return strings.Join(s.fragments, "")
}

// Reset empties the state and clears every singleton flag.
func (s *State) Reset() {
	s.fragments = s.fragments[:0]
	s.ranks = s.ranks[:0]
	s.seenElement, s.seenID, s.seenPseudoElement = false, false, false
}

// Len returns the number of fragments appended since the last reset.
func (s *State) Len() int {
	return len(s.fragments)
}

// Last returns the kind of the most recently appended fragment.
func (s *State) Last() (Kind, bool) {
	if len(s.ranks) == 0 {
		return 0, false
	}
	return s.ranks[len(s.ranks)-1], true
}

// Seen reports whether the singleton kind k is already present.
// It is always false for non-singleton kinds.
func (s *State) Seen(k Kind) bool {
	switch k {
	case KindElement:
		return s.seenElement
	case KindID:
		return s.seenID
	case KindPseudoElement:
		return s.seenPseudoElement
	}
	return false
}

// mark records the singleton kind k as present.
func (s *State) mark(k Kind) {
	switch k {
	case KindElement:
		s.seenElement = true
	case KindID:
		s.seenID = true
	case KindPseudoElement:
		s.seenPseudoElement = true
	}
}
