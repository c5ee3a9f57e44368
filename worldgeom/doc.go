// Package worldgeom implements the small set of world-XZ geometry formulas
// this navigation core needs directly (ChunkBounds, TileForPos), plus the
// TileBoundsFunc hook type for the one query that genuinely belongs to an
// external map-geometry collaborator: the bounding box of a tile in world
// coordinates.
//
// X increases "westward" in this world frame — ChunkBounds computes x_max
// from mapPos and places x_min one chunk width further east (smaller X) —
// and this convention must agree with direction.Dir.Vector().
package worldgeom
