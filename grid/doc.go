// Package grid defines the fixed-size tile coordinate space shared by every
// field builder in wayfield: the (r, c) addressing scheme, the compile-time
// grid constants, the read-only cost/blocker view builders consume, and the
// two neighbour-enumeration variants (pathing and line-of-sight) the rest of
// the module is built on.
//
// Grid dimensions are compile-time constants rather than runtime
// configuration — there is no loader, no config struct, nothing to
// misconfigure at runtime. This mirrors the fixed-shape arrays the original
// navigation core (a C engine) declares at compile time, and keeps field
// builders allocation-free on their hot path: a *DenseChunk holds inline
// fixed-size arrays, never a slice-of-slices built cell by cell.
//
// Complexity: every operation in this package is O(1) except construction,
// which is O(FieldResR*FieldResC).
package grid
