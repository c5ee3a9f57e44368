// Package flowfield derives a discrete per-cell direction field from an
// integration field, and implements the portal-edge fixup that redirects
// zero-cost portal-band cells toward the connected chunk.
//
// For each cell with finite, non-zero integration, Build scans the 4
// cardinal and 4 diagonal neighbours in the fixed order N, S, E, W, NW, NE,
// SW, SE and picks the first one attaining the minimum
// integration among neighbours reachable under the corner-safety rule: a
// diagonal is only a candidate when both cardinal cells sharing an edge
// with it are finite, so a flow vector never clips an impassable corner.
// This fixed-order scan, and the corner-safety predicate itself, are
// carried over exactly from the source engine's flow_dir and
// fixup_portal_edges (see DESIGN.md).
package flowfield
