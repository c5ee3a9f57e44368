package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/pqueue"
)

func TestQueue_PopsInPriorityOrder(t *testing.T) {
	q := pqueue.New()
	q.Push(grid.Coord{0, 0}, 5)
	q.Push(grid.Coord{1, 1}, 1)
	q.Push(grid.Coord{2, 2}, 3)

	require.Equal(t, 3, q.Size())
	assert.Equal(t, grid.Coord{1, 1}, q.Pop())
	assert.Equal(t, grid.Coord{2, 2}, q.Pop())
	assert.Equal(t, grid.Coord{0, 0}, q.Pop())
	assert.Equal(t, 0, q.Size())
}

func TestQueue_Contains(t *testing.T) {
	q := pqueue.New()
	c := grid.Coord{3, 4}
	assert.False(t, q.Contains(c))
	q.Push(c, 1)
	assert.True(t, q.Contains(c))
	q.Pop()
	assert.False(t, q.Contains(c))
}

func TestQueue_PopEmptyPanics(t *testing.T) {
	q := pqueue.New()
	assert.Panics(t, func() { q.Pop() })
}
