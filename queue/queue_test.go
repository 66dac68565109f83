package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	q := NewFIFO(1, 2, 3)
	require.Equal(t, 3, q.Len())

	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestFIFOPushAfterDrain(t *testing.T) {
	q := NewFIFO[string]()
	q.Push("a")
	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", got)

	q.Push("b")
	q.Push("c")
	assert.Equal(t, 2, q.Len())
	got, _ = q.Pop()
	assert.Equal(t, "b", got)
}

func TestFIFOFilter(t *testing.T) {
	q := NewFIFO(1, 2, 3, 4, 5)
	_, _ = q.Pop() // drop 1 so the ring has a non-zero head

	q.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, 2, q.Len())

	got, _ := q.Pop()
	assert.Equal(t, 2, got)
	got, _ = q.Pop()
	assert.Equal(t, 4, got)
}

func TestFIFOFilterAll(t *testing.T) {
	q := NewFIFO(1, 2)
	q.Filter(func(int) bool { return false })
	assert.Equal(t, 0, q.Len())
	_, ok := q.Pop()
	assert.False(t, ok)
}
