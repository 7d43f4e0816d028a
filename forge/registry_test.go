package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-generator/attribute"
	"proxy-generator/descriptor"
	"proxy-generator/matcher"
)

// namedMethod builds a minimal plain-method descriptor for registry tests.
func namedMethod(name string) *descriptor.Method {
	return &descriptor.Method{
		Name: name,
		Kind: descriptor.MethodKindMethod,
	}
}

func TestMethodRegistry_Prepend(t *testing.T) {
	t.Parallel()

	empty := NewMethodRegistry()

	one, err := empty.Prepend(matcher.Named("Charge"), Stub(), attribute.NoOpFactory())
	require.NoError(t, err)

	two, err := one.Prepend(matcher.Named("Refund"), Abstract, attribute.NoOpFactory())
	require.NoError(t, err)

	// Each prepend produced a new registry; the originals are untouched.
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	// Most recent rule sits at the head.
	entries := two.Entries()
	assert.Equal(t, Abstract, entries[0].Behavior)
	assert.Equal(t, Stub(), entries[1].Behavior)
}

func TestMethodRegistry_PrependRejectsNil(t *testing.T) {
	t.Parallel()

	r := NewMethodRegistry()

	_, err := r.Prepend(nil, Stub(), attribute.NoOpFactory())
	assert.ErrorIs(t, err, ErrNilMatcher)

	_, err = r.Prepend(matcher.Any(), nil, attribute.NoOpFactory())
	assert.ErrorIs(t, err, ErrNilBehavior)

	_, err = r.Prepend(matcher.Any(), Stub(), nil)
	assert.ErrorIs(t, err, ErrNilFactory)

	// The failed calls left the registry usable and empty.
	assert.Equal(t, 0, r.Len())
}

func TestMethodRegistry_LookupFirstMatchWins(t *testing.T) {
	t.Parallel()

	// P1 matches {a, b}; P2 matches {b, c}. Registering P1 then P2 places
	// P2 at the head, so the most recently declared rule wins on overlap.
	p1 := matcher.Or(matcher.Named("a"), matcher.Named("b"))
	p2 := matcher.Or(matcher.Named("b"), matcher.Named("c"))

	behaviorOne := Delegate("one")
	behaviorTwo := Delegate("two")

	r, err := NewMethodRegistry().Prepend(p1, behaviorOne, attribute.NoOpFactory())
	require.NoError(t, err)

	r, err = r.Prepend(p2, behaviorTwo, attribute.NoOpFactory())
	require.NoError(t, err)

	entryA, ok := r.Lookup(namedMethod("a"))
	require.True(t, ok)
	assert.Equal(t, behaviorOne, entryA.Behavior)

	entryB, ok := r.Lookup(namedMethod("b"))
	require.True(t, ok)
	assert.Equal(t, behaviorTwo, entryB.Behavior)

	entryC, ok := r.Lookup(namedMethod("c"))
	require.True(t, ok)
	assert.Equal(t, behaviorTwo, entryC.Behavior)
}

func TestMethodRegistry_LookupNoMatch(t *testing.T) {
	t.Parallel()

	r, err := NewMethodRegistry().Prepend(matcher.Named("Charge"), Stub(), attribute.NoOpFactory())
	require.NoError(t, err)

	_, ok := r.Lookup(namedMethod("Observe"))
	assert.False(t, ok)

	_, ok = NewMethodRegistry().Lookup(namedMethod("Charge"))
	assert.False(t, ok)
}

func TestMethodRegistry_EntriesIsACopy(t *testing.T) {
	t.Parallel()

	r, err := NewMethodRegistry().Prepend(matcher.Any(), Stub(), attribute.NoOpFactory())
	require.NoError(t, err)

	entries := r.Entries()
	entries[0] = RegistryEntry{}

	fresh := r.Entries()
	require.Len(t, fresh, 1)
	assert.Equal(t, Stub(), fresh[0].Behavior)
}
