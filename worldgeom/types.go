package worldgeom

import "github.com/katalvlaran/wayfield/grid"

// Vec3 is a 3-D world position; only X and Z participate in the ground
// plane this package's formulas operate in (Y is left for the caller's
// renderer/physics to use and is never read here).
type Vec3 struct {
	X, Y, Z float64
}

// XZ projects v onto the ground plane.
func (v Vec3) XZ() grid.Vec2 { return grid.Vec2{X: v.X, Z: v.Z} }

// Box is a tile's world-space bounding box, as returned by a
// TileBoundsFunc: a corner (X,Z) — the one with the largest X and the
// smallest Z — plus a (Width,Height) extent, matching the source engine's
// struct box {x, z, width, height}. Center derives the midpoint from it.
type Box struct {
	X, Z          float64
	Width, Height float64
}

// Center returns the box's center point in the XZ plane.
func (b Box) Center() grid.Vec2 {
	return grid.Vec2{X: b.X - b.Width/2, Z: b.Z + b.Height/2}
}

// BoxXZ is a chunk's world-space bounding rectangle.
type BoxXZ struct {
	XMin, XMax float64
	ZMin, ZMax float64
}

// Resolution describes the map's tile grid at both the per-chunk and
// per-field granularity, as consumed by TileBoundsFunc implementations.
type Resolution struct {
	ChunkWidth, ChunkHeight int // tiles per chunk, e.g. grid.TilesPerChunkWidth/Height
	FieldResC, FieldResR    int // field cells per chunk, e.g. grid.FieldResC/FieldResR
}

// TileDesc identifies a single tile by its owning chunk and its row/col
// within that chunk's field — the same addressing scheme a LOS shadow
// line needs to reach across a chunk boundary to the original target.
type TileDesc struct {
	ChunkR, ChunkC int
	TileR, TileC   int
}

// TileBoundsFunc is the external map-geometry hook: given a resolution, the
// map's origin position, and a tile descriptor, return that tile's
// world-space bounding box. wayfield never implements this itself — the
// owning map module does — because tile geometry (irregular terrain,
// elevation, etc.) is outside this navigation core's scope.
type TileBoundsFunc func(res Resolution, mapPos Vec3, desc TileDesc) Box

// ChunkBounds returns chunk's world-XZ bounding rectangle. X increases
// westward: x_max is mapPos.X minus chunkC chunk-widths, and x_min is one
// chunk-width further east (smaller X).
func ChunkBounds(mapPos Vec3, chunkR, chunkC int) BoxXZ {
	chunkXDim := float64(grid.TilesPerChunkWidth * grid.XCoordsPerTile)
	chunkZDim := float64(grid.TilesPerChunkHeight * grid.ZCoordsPerTile)

	xMax := mapPos.X - float64(chunkC)*chunkXDim
	xMin := xMax - chunkXDim

	zMin := mapPos.Z + float64(chunkR)*chunkZDim
	zMax := zMin + chunkZDim

	return BoxXZ{XMin: xMin, XMax: xMax, ZMin: zMin, ZMax: zMax}
}

// TileForPos maps a world-XZ position, known to lie within bounds, to its
// tile coordinate. Results are clamped to the last valid row/column.
func TileForPos(bounds BoxXZ, xz grid.Vec2) grid.Coord {
	navTileWidth := float64(grid.XCoordsPerTile) / (float64(grid.FieldResC) / float64(grid.TilesPerChunkWidth))
	navTileHeight := float64(grid.ZCoordsPerTile) / (float64(grid.FieldResR) / float64(grid.TilesPerChunkHeight))

	r := int((xz.Z - bounds.ZMin) / navTileHeight)
	c := grid.FieldResC - int((xz.X-bounds.XMin)/navTileWidth)

	if r > grid.FieldResR-1 {
		r = grid.FieldResR - 1
	}
	if c > grid.FieldResC-1 {
		c = grid.FieldResC - 1
	}
	if r < 0 {
		r = 0
	}
	if c < 0 {
		c = 0
	}
	return grid.Coord{R: r, C: c}
}
