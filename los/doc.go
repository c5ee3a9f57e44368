// Package los builds the line-of-sight field for one chunk: per-cell
// visibility plus a wavefront-blocked mask cast as shadow lines from
// obstacle corners.
//
// Build runs a modified BFS seeded either at the destination tile (the
// chunk containing the target) or at the visible/blocked cells copied from
// the previous chunk's field along a shared edge (continuation across a
// chunk boundary). Corner detection and Bresenham shadow casting are
// exported separately (IsLOSCorner, CastShadowLine) so they can be unit
// tested in isolation, matching how the source engine's static helpers map
// onto this package's files.
package los
