// SPDX-License-Identifier: MIT
package selector_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/selkit/selector"
)

// BuilderSuite exercises the fluent facade and the package factories.
type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

// TestAttributeAndPseudoClass covers the canonical link example.
func (s *BuilderSuite) TestAttributeAndPseudoClass() {
	got := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
	s.Equal(`a[href$=".png"]:focus`, got)
}

// TestIDWithRepeatedClasses covers repeating a non-singleton kind.
func (s *BuilderSuite) TestIDWithRepeatedClasses() {
	got := selector.ID("main").Class("container").Class("editable").Stringify()
	s.Equal("#main.container.editable", got)
}

func (s *BuilderSuite) TestFullCanonicalOrder() {
	got, err := selector.Element("input").
		ID("email").
		Class("field").
		Attr("type=email").
		Attr("required").
		PseudoClass("focus").
		PseudoClass("not(:disabled)").
		PseudoElement("placeholder").
		Build()
	s.Require().NoError(err)
	s.Equal("input#email.field[type=email][required]:focus:not(:disabled)::placeholder", got)
}

// TestNonSingletonConcatenation checks that any non-decreasing chain of
// repeatable kinds renders as the plain concatenation of formatted fragments.
func (s *BuilderSuite) TestNonSingletonConcatenation() {
	type step struct {
		kind  selector.Kind
		value string
	}
	chains := [][]step{
		{{selector.KindClass, "a"}},
		{{selector.KindClass, "a"}, {selector.KindClass, "b"}, {selector.KindAttribute, "c"}},
		{{selector.KindAttribute, "x=1"}, {selector.KindPseudoClass, "hover"}, {selector.KindPseudoClass, "active"}},
		{{selector.KindClass, "a"}, {selector.KindPseudoClass, "first-child"}},
	}
	for _, chain := range chains {
		b := selector.New()
		var want strings.Builder
		for _, st := range chain {
			b.Append(st.kind, st.value)
			want.WriteString(st.kind.Format(st.value))
		}
		got, err := b.Build()
		s.Require().NoError(err)
		s.Equal(want.String(), got)
	}
}

// TestDuplicateSingletons checks every singleton kind is rejected a second time.
func (s *BuilderSuite) TestDuplicateSingletons() {
	cases := map[string]*selector.Builder{
		"element":        selector.Element("a").Element("a"),
		"id":             selector.ID("x").ID("y"),
		"pseudo-element": selector.PseudoElement("before").PseudoElement("after"),
	}
	for name, b := range cases {
		_, err := b.Build()
		s.Require().ErrorIs(err, selector.ErrDuplicateFragment, name)
		s.NotErrorIs(err, selector.ErrOrderViolation, name)
	}
}

// TestDuplicateCheckedBeforeOrder: a duplicate element after a class reports
// the duplicate, not the ordering problem.
func (s *BuilderSuite) TestDuplicateCheckedBeforeOrder() {
	_, err := selector.Element("a").Class("x").Element("b").Build()
	s.ErrorIs(err, selector.ErrDuplicateFragment)
}

func (s *BuilderSuite) TestOrderViolation() {
	_, err := selector.Class("y").ID("x").Build()
	s.Require().ErrorIs(err, selector.ErrOrderViolation)
	s.Contains(err.Error(), selector.MethodID+": ")
	s.Contains(err.Error(), "element, id, class, attribute, pseudo-class, pseudo-element")
}

// TestReusableAfterFailure: Build drops the failed selector and the builder
// accepts a new one.
func (s *BuilderSuite) TestReusableAfterFailure() {
	b := selector.Class("y").ID("x")
	s.Require().Error(b.Err())
	s.Equal(1, b.Len(), "rejected fragment must not be stored")

	_, err := b.Build()
	s.Require().Error(err)
	s.NoError(b.Err(), "Build clears the sticky error")

	got, err := b.ID("x").Build()
	s.Require().NoError(err)
	s.Equal("#x", got)
}

func (s *BuilderSuite) TestStickyErrorIgnoresLaterCalls() {
	b := selector.Element("a").Element("b")
	first := b.Err()
	s.Require().ErrorIs(first, selector.ErrDuplicateFragment)

	b.Class("ok").ID("late")
	s.Equal(first, b.Err(), "only the first failure is kept")
	s.Equal(1, b.Len())
	s.Equal("", b.Stringify(), "no partial selector on error")
}

func (s *BuilderSuite) TestStringifyResets() {
	b := selector.Element("div").Class("x")
	s.Equal("div.x", b.Stringify())
	s.Equal("", b.Stringify())

	// Singleton flags are reset as well, so the builder is reusable.
	s.Equal("span", b.Element("span").Stringify())
}

func (s *BuilderSuite) TestFactoriesStartFreshBuilders() {
	s.Equal("p", selector.Element("p").Stringify())
	s.Equal("#p", selector.ID("p").Stringify())
	s.Equal(".p", selector.Class("p").Stringify())
	s.Equal("[p]", selector.Attr("p").Stringify())
	s.Equal(":p", selector.PseudoClass("p").Stringify())
	s.Equal("::p", selector.PseudoElement("p").Stringify())

	a, b := selector.Element("a"), selector.Element("b")
	s.NotSame(a, b)
	s.Equal("a", a.Stringify())
	s.Equal("b", b.Stringify())
}

func (s *BuilderSuite) TestChainingReturnsSameBuilder() {
	b := selector.New()
	s.Same(b, b.Element("a"))
	s.Same(b, b.Class("x"))
	s.Same(b, b.ID("late")) // even on failure
}

// TestNoContentValidation: fragment text is used verbatim.
func (s *BuilderSuite) TestNoContentValidation() {
	s.Equal("#1 2.]", selector.ID("1 2").Class("]").Stringify())
	s.Equal(".", selector.Class("").Stringify())
}

func TestWithLogger_RecordsFragments(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := selector.New(selector.WithLogger(zap.New(core)))

	b.Element("a").Element("b")
	_, err := b.Build()
	require.Error(t, err)

	require.Equal(t, 1, logs.FilterMessage("selector fragment appended").Len())
	rejected := logs.FilterMessage("selector fragment rejected").All()
	require.Len(t, rejected, 1)
	require.Equal(t, "b", rejected[0].ContextMap()["fragment"])
	require.Equal(t, "element", rejected[0].ContextMap()["kind"])

	got, err := b.Class("x").Build()
	require.NoError(t, err)
	require.Equal(t, ".x", got)
	require.Equal(t, 1, logs.FilterMessage("selector rendered").Len())
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { selector.WithLogger(nil) })
}

func TestBuilder_WithTestLogger(t *testing.T) {
	b := selector.New(selector.WithLogger(zaptest.NewLogger(t)))
	got, err := b.Element("li").PseudoClass("nth-child(2n+1)").Build()
	require.NoError(t, err)
	require.Equal(t, "li:nth-child(2n+1)", got)
}

func TestBuilder_ErrorsAreDistinct(t *testing.T) {
	_, err := selector.PseudoElement("before").Class("x").Build()
	require.True(t, errors.Is(err, selector.ErrOrderViolation))
	require.False(t, errors.Is(err, selector.ErrDuplicateFragment))
}

// TestAppend_UsesTypedMethodNames: dynamic appends report the same context as
// the typed methods.
func TestAppend_UsesTypedMethodNames(t *testing.T) {
	_, err := selector.New().Append(selector.KindClass, "y").Append(selector.KindID, "x").Build()
	require.ErrorIs(t, err, selector.ErrOrderViolation)
	require.True(t, strings.HasPrefix(err.Error(), selector.MethodID+": "), err.Error())

	_, err = selector.New().Append(selector.KindPseudoElement, "a").Append(selector.KindPseudoElement, "b").Build()
	require.ErrorIs(t, err, selector.ErrDuplicateFragment)
	require.True(t, strings.HasPrefix(err.Error(), selector.MethodPseudoElement+": "), err.Error())
}

func TestAppend_RejectsUnrankedKinds(t *testing.T) {
	for _, k := range []selector.Kind{selector.Kind(7), selector.KindCompound, selector.Kind(-1)} {
		b := selector.New().Append(k, "x")
		require.ErrorIs(t, b.Err(), selector.ErrUnknownKind, "kind %d", int(k))
		require.True(t, strings.HasPrefix(b.Err().Error(), selector.MethodAppend+": "))
		require.Zero(t, b.Len())
		require.Equal(t, "", b.Stringify())
	}

	// A sticky error from an earlier call wins.
	b := selector.Element("a").Element("b").Append(selector.Kind(7), "x")
	require.ErrorIs(t, b.Err(), selector.ErrDuplicateFragment)
}
