package forge

import (
	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/internal/common"
	"proxy-generator/matcher"
)

// RegistryEntry is one behavior-override rule: a method selection, the
// behavior applied to it and the attribute appender factory for its methods.
type RegistryEntry struct {
	Matcher  matcher.Matcher
	Behavior Behavior
	Factory  attribute.Factory
}

// MethodRegistry is a priority-ordered, prepend-only list of behavior rules.
// It is a priority list, not a map: several entries may match the same
// method and the head-to-tail scan order breaks the tie, so the most
// recently added rule wins on overlap.
//
// Registries are immutable; Prepend returns a new registry and never touches
// the receiver.
type MethodRegistry struct {
	entries []RegistryEntry
}

// NewMethodRegistry returns an empty registry.
func NewMethodRegistry() *MethodRegistry {
	return &MethodRegistry{}
}

// Prepend returns a new registry with the given rule at the head.
// The receiver is unchanged. Nil arguments are rejected before any
// allocation.
func (r *MethodRegistry) Prepend(m matcher.Matcher, b Behavior, f attribute.Factory) (*MethodRegistry, error) {
	switch {
	case m == nil:
		return nil, ErrNilMatcher
	case b == nil:
		return nil, ErrNilBehavior
	case f == nil:
		return nil, ErrNilFactory
	}

	return r.prepend(RegistryEntry{Matcher: m, Behavior: b, Factory: f}), nil
}

// prepend inserts an already-validated entry at the head.
func (r *MethodRegistry) prepend(e RegistryEntry) *MethodRegistry {
	return &MethodRegistry{entries: common.Prepended(r.entries, e)}
}

// Entries returns the rules in resolution order, head to tail.
func (r *MethodRegistry) Entries() []RegistryEntry {
	return common.Clone(r.entries)
}

// Len returns the number of rules.
func (r *MethodRegistry) Len() int {
	return len(r.entries)
}

// Lookup resolves a concrete method against the registry: the first entry,
// head to tail, whose matcher matches wins. The second result is false when
// no entry matches, in which case the engine applies its pass-through
// default.
func (r *MethodRegistry) Lookup(m *descriptor.Method) (RegistryEntry, bool) {
	for _, e := range r.entries {
		if e.Matcher.Matches(m) {
			return e, true
		}
	}

	return RegistryEntry{}, false
}
