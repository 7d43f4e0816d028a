package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty[[]int](nil))
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
}

func TestClone(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Clone[[]int](nil))
	assert.Nil(t, Clone([]int{}))

	src := []string{"a", "b"}
	out := Clone(src)

	assert.Equal(t, src, out)

	out[0] = "changed"
	assert.Equal(t, "a", src[0])
}

func TestPrepended(t *testing.T) {
	t.Parallel()

	src := []int{2, 3}
	out := Prepended(src, 1)

	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{2, 3}, src)

	assert.Equal(t, []int{1}, Prepended[[]int](nil, 1))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := First([]string{"head", "tail"})
	assert.True(t, ok)
	assert.Equal(t, "head", v)

	v, ok = First[[]string](nil)
	assert.False(t, ok)
	assert.Zero(t, v)
}
