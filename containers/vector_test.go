package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clapdb/arena"
)

func TestVectorAppendAndAt(t *testing.T) {
	a := arena.New()
	defer a.Close()

	v := NewVector[int](a.Resource(), 2)
	v.Append(1, 2, 3)

	require.Equal(t, 3, v.Len())
	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, want, v.At(i))
	}
}

func TestVectorGrowsBeyondInitialCapacity(t *testing.T) {
	a := arena.New()
	defer a.Close()

	v := NewVector[int](a.Resource(), 1)
	for i := 0; i < 100; i++ {
		v.Append(i)
	}
	require.Equal(t, 100, v.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, v.At(i))
	}
}

func TestVectorSetOverwritesElement(t *testing.T) {
	a := arena.New()
	defer a.Close()

	v := NewVector[int](a.Resource(), 4)
	v.Append(1, 2, 3)
	v.Set(1, 99)
	assert.Equal(t, 99, v.At(1))
}

func TestVectorSliceReflectsContents(t *testing.T) {
	a := arena.New()
	defer a.Close()

	v := NewVector[int](a.Resource(), 4)
	v.Append(5, 6, 7)

	assert.Equal(t, []int{5, 6, 7}, v.Slice())
}

func TestNewVectorZeroCapacityStartsEmpty(t *testing.T) {
	a := arena.New()
	defer a.Close()

	v := NewVector[int](a.Resource(), 0)
	require.Equal(t, 0, v.Len())
	v.Append(1)
	assert.Equal(t, 1, v.Len())
}
