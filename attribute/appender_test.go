package attribute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sink records annotation names in the order they arrive.
type sink struct {
	names []string
}

func (s *sink) AddAnnotation(a Annotation) {
	s.names = append(s.names, a.Name)
}

func (s *sink) AddParameterAnnotation(index int, a Annotation) {
	s.names = append(s.names, fmt.Sprintf("param[%d]:%s", index, a.Name))
}

func TestNoOp(t *testing.T) {
	t.Parallel()

	target := &sink{}

	NoOpAppender().Apply(target)
	NoOpFactory().Make(nil).Apply(target)
	NoOpType().Apply(target)

	assert.Empty(t, target.names)
	assert.Equal(t, NoOpFactory(), NoOpFactory())
}

func TestForAnnotations(t *testing.T) {
	t.Parallel()

	f := ForAnnotations(
		Annotation{Name: "traced"},
		Annotation{Name: "audited", Values: map[string]string{"level": "info"}},
	)

	target := &sink{}
	f.Make(nil).Apply(target)

	assert.Equal(t, []string{"traced", "audited"}, target.names)
}

func TestForParameterAnnotations(t *testing.T) {
	t.Parallel()

	f := ForParameterAnnotations(1, Annotation{Name: "validated"})

	target := &sink{}
	f.Make(nil).Apply(target)

	assert.Equal(t, []string{"param[1]:validated"}, target.names)
}

func TestCompound(t *testing.T) {
	t.Parallel()

	t.Run("applies members in argument order", func(t *testing.T) {
		t.Parallel()

		f, err := Compound(
			ForAnnotations(Annotation{Name: "first"}),
			ForAnnotations(Annotation{Name: "second"}),
			ForParameterAnnotations(0, Annotation{Name: "third"}),
		)
		require.NoError(t, err)

		target := &sink{}
		f.Make(nil).Apply(target)

		assert.Equal(t, []string{"first", "second", "param[0]:third"}, target.names)
	})

	t.Run("flattens nested compounds", func(t *testing.T) {
		t.Parallel()

		inner, err := Compound(
			ForAnnotations(Annotation{Name: "a"}),
			ForAnnotations(Annotation{Name: "b"}),
		)
		require.NoError(t, err)

		outer, err := Compound(inner, ForAnnotations(Annotation{Name: "c"}))
		require.NoError(t, err)

		target := &sink{}
		outer.Make(nil).Apply(target)

		assert.Equal(t, []string{"a", "b", "c"}, target.names)
	})

	t.Run("single member is returned as-is", func(t *testing.T) {
		t.Parallel()

		only := ForAnnotations(Annotation{Name: "solo"})

		f, err := Compound(only)
		require.NoError(t, err)
		assert.Equal(t, only, f)
	})

	t.Run("rejects nil members", func(t *testing.T) {
		t.Parallel()

		_, err := Compound(ForAnnotations(), nil)
		assert.ErrorIs(t, err, ErrNilFactory)
	})
}

func TestTypeForAnnotations(t *testing.T) {
	t.Parallel()

	a := TypeForAnnotations(Annotation{Name: "generated"}, Annotation{Name: "traced"})

	target := &sink{}
	a.Apply(target)

	assert.Equal(t, []string{"generated", "traced"}, target.names)
}

func TestCompoundType(t *testing.T) {
	t.Parallel()

	combined, err := CompoundType(
		TypeForAnnotations(Annotation{Name: "x"}),
		TypeForAnnotations(Annotation{Name: "y"}),
	)
	require.NoError(t, err)

	target := &sink{}
	combined.Apply(target)

	assert.Equal(t, []string{"x", "y"}, target.names)

	_, err = CompoundType(nil)
	assert.ErrorIs(t, err, ErrNilFactory)
}
