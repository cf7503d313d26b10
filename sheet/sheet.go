// SPDX-License-Identifier: MIT
// Package: selkit/sheet
//
// sheet.go — loading, validation and rendering.
//
// Contract:
//   • Load validates structure and references; nothing is rendered.
//   • Render rebuilds from definitions on every call (no cached builders).
//   • RenderAll keeps file order and reports every failing entry.

package sheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/selkit/selector"
)

// Sheet is a validated, immutable set of selector definitions.
type Sheet struct {
	entries []Entry
	index   map[string]int
	log     *zap.Logger
}

// Load decodes a sheet from r and validates it. An empty document yields an
// empty sheet. All validation failures are returned together.
func Load(r io.Reader, opts ...Option) (*Sheet, error) {
	cfg := newConfig(opts...)

	var doc document
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrParse, err)
	}

	s := &Sheet{
		entries: doc.Selectors,
		index:   make(map[string]int, len(doc.Selectors)),
		log:     cfg.logger,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.log.Debug("sheet loaded", zap.Int("selectors", len(s.entries)))
	return s, nil
}

// validate fills the name index and checks every entry.
func (s *Sheet) validate() error {
	var errs error
	for i, e := range s.entries {
		switch _, dup := s.index[e.Name]; {
		case e.Name == "":
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyName))
		case dup:
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w: %q", i, ErrDuplicateName, e.Name))
		default:
			s.index[e.Name] = i
		}
		errs = multierr.Append(errs, validateEntry(i, e))
	}
	if errs != nil {
		return errs
	}

	// References are checked once every name is known.
	for i, e := range s.entries {
		if e.Combine == nil {
			continue
		}
		for _, ref := range []string{e.Combine.Left, e.Combine.Right} {
			if _, ok := s.index[ref]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("entry %d (%s): %w: %q", i, e.Name, ErrUnknownSelector, ref))
			}
		}
	}
	return errs
}

func validateEntry(i int, e Entry) error {
	if (len(e.Parts) > 0) == (e.Combine != nil) {
		return fmt.Errorf("entry %d (%s): %w: exactly one of parts or combine is required", i, e.Name, ErrBadEntry)
	}
	if c := e.Combine; c != nil {
		if c.Left == "" || c.Right == "" {
			return fmt.Errorf("entry %d (%s): %w: combine needs left and right", i, e.Name, ErrBadEntry)
		}
		return nil
	}

	var errs error
	for j, p := range e.Parts {
		if len(p) != 1 {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%s) part %d: %w: want one kind, got %d", i, e.Name, j, ErrBadEntry, len(p)))
			continue
		}
		for key := range p {
			if _, ok := selector.ParseKind(key); !ok {
				errs = multierr.Append(errs, fmt.Errorf("entry %d (%s) part %d: %w: %q", i, e.Name, j, ErrUnknownKind, key))
			}
		}
	}
	return errs
}

// Names returns the entry names in file order.
func (s *Sheet) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Render builds the named selector. Selector ordering and duplicate errors
// propagate and match their selector sentinels.
func (s *Sheet) Render(name string) (string, error) {
	b, err := s.builder(name, map[string]bool{})
	if err != nil {
		return "", fmt.Errorf("Render %q: %w", name, err)
	}
	out, err := b.Build()
	if err != nil {
		s.log.Debug("sheet selector failed", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("Render %q: %w", name, err)
	}
	s.log.Debug("sheet selector rendered", zap.String("name", name), zap.String("selector", out))
	return out, nil
}

// RenderAll renders every entry in file order. Failing entries are skipped in
// the result and their errors are returned together.
func (s *Sheet) RenderAll() ([]Rendered, error) {
	out := make([]Rendered, 0, len(s.entries))
	var errs error
	for _, e := range s.entries {
		sel, err := s.Render(e.Name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out = append(out, Rendered{Name: e.Name, Selector: sel})
	}
	return out, errs
}

// builder resolves name into a fresh builder. visiting holds the names on the
// current resolution path.
func (s *Sheet) builder(name string, visiting map[string]bool) (*selector.Builder, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("%w: %q", ErrCycle, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	e := s.entries[i]
	if c := e.Combine; c != nil {
		left, err := s.builder(c.Left, visiting)
		if err != nil {
			return nil, err
		}
		right, err := s.builder(c.Right, visiting)
		if err != nil {
			return nil, err
		}
		return selector.Combine(left, c.Combinator, right, selector.WithLogger(s.log)), nil
	}

	b := selector.New(selector.WithLogger(s.log))
	for _, p := range e.Parts {
		for key, value := range p {
			kind, _ := selector.ParseKind(key)
			b.Append(kind, value)
		}
	}
	return b, nil
}
