// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// builder.go — the fluent facade over State.
//
// Design contract:
//   • A Builder owns exactly one *State (composition, no embedding).
//   • Every fluent method returns the receiver, so calls chain.
//   • The first failure is sticky: later fluent calls are no-ops until Build.
//   • Singleton flags are checked before any mutation and set only after a
//     successful Append, so a rejected call leaves the state untouched.

package selector

import "go.uber.org/zap"

// Method names used as error context.
const (
	MethodElement       = "Element"
	MethodID            = "ID"
	MethodClass         = "Class"
	MethodAttr          = "Attr"
	MethodPseudoClass   = "PseudoClass"
	MethodPseudoElement = "PseudoElement"
)

// Builder assembles one selector at a time. Create it with New or with one of
// the package-level factories (Element, ID, Class, ...).
type Builder struct {
	state *State
	err   error
	log   *zap.Logger
}

// New returns an empty Builder.
func New(opts ...Option) *Builder {
	cfg := newConfig(opts...)
	return &Builder{state: NewState(), log: cfg.logger}
}

// Element appends a type selector. Singleton.
func (b *Builder) Element(v string) *Builder {
	return b.add(MethodElement, KindElement, v)
}

// ID appends "#v". Singleton.
func (b *Builder) ID(v string) *Builder {
	return b.add(MethodID, KindID, v)
}

// Class appends ".v". May repeat.
func (b *Builder) Class(v string) *Builder {
	return b.add(MethodClass, KindClass, v)
}

// Attr appends "[v]". The attribute expression is used verbatim. May repeat.
func (b *Builder) Attr(v string) *Builder {
	return b.add(MethodAttr, KindAttribute, v)
}

// PseudoClass appends ":v". May repeat.
func (b *Builder) PseudoClass(v string) *Builder {
	return b.add(MethodPseudoClass, KindPseudoClass, v)
}

// PseudoElement appends "::v". Singleton.
func (b *Builder) PseudoElement(v string) *Builder {
	return b.add(MethodPseudoElement, KindPseudoElement, v)
}

// MethodAppend prefixes errors for kinds Append does not accept.
const MethodAppend = "Append"

// Append adds v as a fragment of kind k, applying the kind's sigil. It is the
// dynamic form of the typed methods and is what declarative callers (sheets,
// the CLI) use; errors carry the matching typed method name. Only the six
// ranked kinds are accepted; any other Kind, KindCompound included, fails
// with ErrUnknownKind.
func (b *Builder) Append(k Kind, v string) *Builder {
	method, ok := kindMethods[k]
	if !ok {
		if b.err != nil {
			return b
		}
		return b.fail(MethodAppend, v, k, ErrUnknownKind)
	}
	return b.add(method, k, v)
}

// kindMethods maps each ranked kind to its typed method.
var kindMethods = map[Kind]string{
	KindElement:       MethodElement,
	KindID:            MethodID,
	KindClass:         MethodClass,
	KindAttribute:     MethodAttr,
	KindPseudoClass:   MethodPseudoClass,
	KindPseudoElement: MethodPseudoElement,
}

// add is the single mutation path for all fluent methods.
func (b *Builder) add(method string, k Kind, v string) *Builder {
	if b.err != nil {
		return b
	}
	fragment := k.Format(v)

	if k.Singleton() && b.state.Seen(k) {
		return b.fail(method, fragment, k, ErrDuplicateFragment)
	}
	if err := b.state.Append(fragment, k); err != nil {
		return b.fail(method, fragment, k, err)
	}
	if k.Singleton() {
		b.state.mark(k)
	}

	b.log.Debug("selector fragment appended",
		zap.String("fragment", fragment),
		zap.Stringer("kind", k),
		zap.String("selector", b.state.Snapshot()))
	return b
}

func (b *Builder) fail(method, fragment string, k Kind, err error) *Builder {
	b.err = methodError(method, err)
	b.log.Debug("selector fragment rejected",
		zap.String("fragment", fragment),
		zap.Stringer("kind", k),
		zap.Error(b.err))
	return b
}

// Err returns the first error recorded since the last Build, if any.
func (b *Builder) Err() error {
	return b.err
}

// Len returns the number of fragments accepted since the last Build.
func (b *Builder) Len() int {
	return b.state.Len()
}

// Build renders the selector and resets the builder for reuse. If a fluent
// call failed, Build discards the partial selector and returns ("", err); the
// error is cleared as well.
func (b *Builder) Build() (string, error) {
	if err := b.err; err != nil {
		b.err = nil
		b.state.Reset()
		return "", err
	}
	out := b.state.Render()
	b.log.Debug("selector rendered", zap.String("selector", out))
	return out, nil
}

// Stringify is Build without the error: an errored builder yields "".
// Like Build it resets the builder, so a second call returns "".
func (b *Builder) Stringify() string {
	out, _ := b.Build()
	return out
}

// Element starts a new selector with a type selector.
func Element(v string) *Builder { return New().Element(v) }

// ID starts a new selector with "#v".
func ID(v string) *Builder { return New().ID(v) }

// Class starts a new selector with ".v".
func Class(v string) *Builder { return New().Class(v) }

// Attr starts a new selector with "[v]".
func Attr(v string) *Builder { return New().Attr(v) }

// PseudoClass starts a new selector with ":v".
func PseudoClass(v string) *Builder { return New().PseudoClass(v) }

// PseudoElement starts a new selector with "::v".
func PseudoElement(v string) *Builder { return New().PseudoElement(v) }
