package matcher

import (
	"path"

	"proxy-generator/descriptor"
)

// Matcher is a boolean predicate over a method descriptor. Matchers are
// pure values: Matches must not mutate the descriptor or retain state.
type Matcher interface {
	Matches(m *descriptor.Method) bool
}

// conjunction matches when every member matches.
type conjunction struct {
	members []Matcher
}

func (c conjunction) Matches(m *descriptor.Method) bool {
	for _, member := range c.members {
		if !member.Matches(m) {
			return false
		}
	}

	return true
}

// disjunction matches when any member matches.
type disjunction struct {
	members []Matcher
}

func (d disjunction) Matches(m *descriptor.Method) bool {
	for _, member := range d.members {
		if member.Matches(m) {
			return true
		}
	}

	return false
}

// negation inverts its inner matcher.
type negation struct {
	inner Matcher
}

func (n negation) Matches(m *descriptor.Method) bool {
	return !n.inner.Matches(m)
}

// And returns a matcher that matches when all of ms match.
// With no arguments it matches everything.
func And(ms ...Matcher) Matcher {
	return conjunction{members: ms}
}

// Or returns a matcher that matches when any of ms matches.
// With no arguments it matches nothing.
func Or(ms ...Matcher) Matcher {
	return disjunction{members: ms}
}

// Not returns a matcher inverting m.
func Not(m Matcher) Matcher {
	return negation{inner: m}
}

type anyMatcher struct{}

func (anyMatcher) Matches(*descriptor.Method) bool { return true }

type noneMatcher struct{}

func (noneMatcher) Matches(*descriptor.Method) bool { return false }

// Any returns a matcher that matches every method.
func Any() Matcher { return anyMatcher{} }

// None returns a matcher that matches no method.
func None() Matcher { return noneMatcher{} }

type kindMatcher struct {
	kind descriptor.MethodKind
}

func (k kindMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.Kind == k.kind
}

// IsMethod returns a matcher for plain (non-constructor) methods.
func IsMethod() Matcher {
	return kindMatcher{kind: descriptor.MethodKindMethod}
}

// IsConstructor returns a matcher for constructor functions.
func IsConstructor() Matcher {
	return kindMatcher{kind: descriptor.MethodKindConstructor}
}

type syntheticMatcher struct{}

func (syntheticMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.IsSynthetic()
}

// IsSynthetic returns a matcher for compiler- or generator-produced methods.
func IsSynthetic() Matcher {
	return syntheticMatcher{}
}

// FinalizerName is the conventional cleanup hook recognized by IsFinalizer.
const FinalizerName = "Finalize"

type finalizerMatcher struct{}

func (finalizerMatcher) Matches(m *descriptor.Method) bool {
	return m != nil &&
		m.Kind == descriptor.MethodKindMethod &&
		m.Name == FinalizerName &&
		len(m.Params) == 0
}

// IsFinalizer returns a matcher for the parameterless Finalize cleanup hook.
func IsFinalizer() Matcher {
	return finalizerMatcher{}
}

type declaredByMatcher struct {
	id descriptor.TypeID
}

func (d declaredByMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.DeclaredBy != nil && m.DeclaredBy.ID == d.id
}

// DeclaredBy returns a matcher for methods declared by the given type.
// A nil type yields a matcher that matches nothing.
func DeclaredBy(t *descriptor.Type) Matcher {
	if t == nil {
		return None()
	}

	return declaredByMatcher{id: t.ID}
}

type namedMatcher struct {
	name string
}

func (n namedMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.Name == n.name
}

// Named returns a matcher for methods with exactly the given name.
func Named(name string) Matcher {
	return namedMatcher{name: name}
}

type nameGlobMatcher struct {
	pattern string
}

func (g nameGlobMatcher) Matches(m *descriptor.Method) bool {
	if m == nil {
		return false
	}

	ok, err := path.Match(g.pattern, m.Name)

	return err == nil && ok
}

// NameMatches returns a matcher testing method names against a glob pattern
// (path.Match syntax, e.g. "Get*"). A malformed pattern matches nothing.
func NameMatches(pattern string) Matcher {
	return nameGlobMatcher{pattern: pattern}
}

type exportedMatcher struct{}

func (exportedMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.Modifiers.Has(descriptor.ModifierExported)
}

// IsExported returns a matcher for exported methods.
func IsExported() Matcher {
	return exportedMatcher{}
}

type abstractMatcher struct{}

func (abstractMatcher) Matches(m *descriptor.Method) bool {
	return m != nil && m.IsAbstract()
}

// IsAbstract returns a matcher for methods declared without a body.
func IsAbstract() Matcher {
	return abstractMatcher{}
}
