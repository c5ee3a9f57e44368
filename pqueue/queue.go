package pqueue

import (
	"container/heap"

	"github.com/katalvlaran/wayfield/grid"
)

// entry is one (coord, key) pair stored in the heap.
type entry struct {
	coord grid.Coord
	key   float64
}

// innerHeap is the container/heap.Interface implementation backing Queue.
// It never imports Queue's membership map directly — Queue keeps both the
// heap and the map in sync on every mutation so innerHeap stays a plain
// slice-based min-heap, exactly as lvlath's nodePQ is.
type innerHeap []entry

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Queue is a min-heap over grid.Coord keyed by float64, with O(1)
// membership testing. The zero value is not usable; construct with New.
type Queue struct {
	h         innerHeap
	contained map[grid.Coord]struct{}
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{
		h:         make(innerHeap, 0, grid.FieldResR*grid.FieldResC),
		contained: make(map[grid.Coord]struct{}, grid.FieldResR*grid.FieldResC),
	}
}

// Push inserts coord with the given priority key. Pushing a coord already
// present in the queue is legal but not how integration/los use this type —
// callers are expected to check Contains first to keep a no-duplicate-
// pushes frontier.
func (q *Queue) Push(coord grid.Coord, key float64) {
	heap.Push(&q.h, entry{coord: coord, key: key})
	q.contained[coord] = struct{}{}
}

// Pop removes and returns the coord with the smallest key. Panics if the
// queue is empty — callers must check Size first.
func (q *Queue) Pop() grid.Coord {
	if q.h.Len() == 0 {
		panic("pqueue: Pop called on empty queue")
	}
	e := heap.Pop(&q.h).(entry)
	delete(q.contained, e.coord)
	return e.coord
}

// Size returns the number of entries currently in the queue.
func (q *Queue) Size() int { return q.h.Len() }

// Contains reports whether coord currently has an entry in the queue.
func (q *Queue) Contains(coord grid.Coord) bool {
	_, ok := q.contained[coord]
	return ok
}
