// Package direction defines the 9-entry direction enum (8 compass points
// plus NONE) flow fields are built from, and the static lookup table
// mapping each direction to a unit XZ vector.
//
// World coordinate skew: X increases toward the negative chunk-column axis
// in this engine's world frame (the navigation core's world, not a Go
// convention), so Dir.Vector() encodes "west" as +X. This must never be
// "corrected": downstream steering code agrees with this convention,
// matching the source engine's g_flow_dir_lookup table exactly.
package direction
