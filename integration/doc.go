// Package integration implements the multi-source Dijkstra integration
// field builder: given a set of zero-cost seed cells and a chunk's
// cost/blocker view, it computes, for every cell, the minimum accumulated
// cost-base along any 4-connected passable path from any seed.
//
// The algorithm is katalvlaran/lvlath's dijkstra package re-targeted from a
// string-keyed *core.Graph to a fixed grid.Coord grid: a frontier
// (pqueue.Queue) seeded externally at key 0, popped in increasing-key
// order, each passable cardinal neighbour relaxed and pushed only if it
// isn't already in the frontier — the same "lazy decrease-key, no stale
// duplicates" discipline lvlath's dijkstra.go documents, just backed by an
// indexed heap with a real Contains instead of post-pop staleness checks.
//
// Complexity: O(FieldResR*FieldResC*log(FieldResR*FieldResC)).
package integration
