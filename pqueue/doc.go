// Package pqueue implements an indexed min-heap over grid.Coord, keyed by a
// float64 priority, for the relaxation-style algorithms in integration and
// los: push, pop-min, size, and — critically — a Contains membership test.
//
// The shape mirrors katalvlaran/lvlath's dijkstra.nodePQ (a slice-backed
// container/heap.Interface with Len/Less/Swap/Push/Pop), extended with a
// coordinate-keyed membership map so callers can implement a "push only if
// not already in the frontier" no-duplicate-entries policy, instead of
// lvlath's lazy stale-entry-on-pop approach.
//
// Complexity: Push/Pop are O(log n); Contains and Size are O(1).
package pqueue
