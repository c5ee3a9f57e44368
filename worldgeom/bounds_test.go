package worldgeom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/worldgeom"
)

func TestChunkBounds_OriginChunk(t *testing.T) {
	mapPos := worldgeom.Vec3{X: 0, Y: 0, Z: 0}
	b := worldgeom.ChunkBounds(mapPos, 0, 0)

	chunkX := float64(grid.TilesPerChunkWidth * grid.XCoordsPerTile)
	chunkZ := float64(grid.TilesPerChunkHeight * grid.ZCoordsPerTile)

	assert.Equal(t, 0.0, b.XMax)
	assert.Equal(t, -chunkX, b.XMin)
	assert.Equal(t, 0.0, b.ZMin)
	assert.Equal(t, chunkZ, b.ZMax)
}

func TestChunkBounds_WestwardX(t *testing.T) {
	mapPos := worldgeom.Vec3{X: 1000, Y: 0, Z: 0}
	b0 := worldgeom.ChunkBounds(mapPos, 0, 0)
	b1 := worldgeom.ChunkBounds(mapPos, 0, 1)

	// Increasing chunk column moves the bounding box further east (smaller
	// X), per the package's X-increases-westward convention.
	assert.Less(t, b1.XMax, b0.XMax)
}

func TestTileForPos_ClampsToLastValidIndex(t *testing.T) {
	bounds := worldgeom.BoxXZ{XMin: 0, XMax: 800, ZMin: 0, ZMax: 800}
	// Far past ZMax (last row) and far past XMin, i.e. east of the chunk
	// (last column).
	c := worldgeom.TileForPos(bounds, grid.Vec2{X: -10000, Z: 10000})
	assert.Equal(t, grid.FieldResR-1, c.R)
	assert.Equal(t, grid.FieldResC-1, c.C)
}

func TestTileForPos_XMaxIsFirstColumn(t *testing.T) {
	bounds := worldgeom.BoxXZ{XMin: 0, XMax: 800, ZMin: 0, ZMax: 800}
	// X increases westward, so the chunk's XMax edge (its western edge) is
	// column 0, and XMin (its eastern edge) is the last column.
	atMax := worldgeom.TileForPos(bounds, grid.Vec2{X: bounds.XMax, Z: bounds.ZMin})
	atMin := worldgeom.TileForPos(bounds, grid.Vec2{X: bounds.XMin, Z: bounds.ZMin})
	assert.Equal(t, 0, atMax.R)
	assert.Equal(t, 0, atMax.C)
	assert.Equal(t, grid.FieldResC-1, atMin.C)
}
