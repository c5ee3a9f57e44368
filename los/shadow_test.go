package los_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/los"
	"github.com/katalvlaran/wayfield/worldgeom"
)

// testTileBounds is a minimal, self-consistent TileBoundsFunc: one tile per
// field cell, using the same X-increases-westward / row-increases-south
// convention as worldgeom.ChunkBounds/TileForPos.
func testTileBounds(res worldgeom.Resolution, mapPos worldgeom.Vec3, desc worldgeom.TileDesc) worldgeom.Box {
	bounds := worldgeom.ChunkBounds(mapPos, desc.ChunkR, desc.ChunkC)
	tileW := float64(grid.XCoordsPerTile) / (float64(grid.FieldResC) / float64(grid.TilesPerChunkWidth))
	tileH := float64(grid.ZCoordsPerTile) / (float64(grid.FieldResR) / float64(grid.TilesPerChunkHeight))

	centerX := bounds.XMax - (float64(desc.TileC)+0.5)*tileW
	centerZ := bounds.ZMin + (float64(desc.TileR)+0.5)*tileH

	return worldgeom.Box{X: centerX + tileW/2, Z: centerZ - tileH/2, Width: tileW, Height: tileH}
}

func TestCastShadowLine_ExtendsAwayFromTarget(t *testing.T) {
	mapPos := worldgeom.Vec3{}
	res := worldgeom.Resolution{
		ChunkWidth: grid.TilesPerChunkWidth, ChunkHeight: grid.TilesPerChunkHeight,
		FieldResC: grid.FieldResC, FieldResR: grid.FieldResR,
	}
	target := worldgeom.TileDesc{ChunkR: 0, ChunkC: 0, TileR: 7, TileC: 7}
	corner := worldgeom.TileDesc{ChunkR: 0, ChunkC: 0, TileR: 4, TileC: 4}

	out := &los.Field{}
	los.CastShadowLine(target, corner, res, mapPos, testTileBounds, out)

	// The target sits to the southeast of the corner; the shadow must walk
	// northwest, away from it, starting at the corner itself.
	for _, cell := range [][2]int{{4, 4}, {3, 3}, {2, 2}, {1, 1}, {0, 0}} {
		assert.True(t, out.Cells[cell[0]][cell[1]].WavefrontBlocked, "cell %v", cell)
	}
	assert.False(t, out.Cells[5][5].WavefrontBlocked)
	assert.False(t, out.Cells[7][7].WavefrontBlocked)
}

func TestCastShadowLine_AlwaysMarksCornerEvenAtGridEdge(t *testing.T) {
	mapPos := worldgeom.Vec3{}
	res := worldgeom.Resolution{
		ChunkWidth: grid.TilesPerChunkWidth, ChunkHeight: grid.TilesPerChunkHeight,
		FieldResC: grid.FieldResC, FieldResR: grid.FieldResR,
	}
	target := worldgeom.TileDesc{ChunkR: 0, ChunkC: 0, TileR: 0, TileC: 0}
	corner := worldgeom.TileDesc{ChunkR: 0, ChunkC: 0, TileR: 0, TileC: 0}

	out := &los.Field{}
	los.CastShadowLine(target, corner, res, mapPos, testTileBounds, out)

	// Corner and target coincide: the slope is zero, but the do/while walk
	// still marks the starting cell before any termination check.
	assert.True(t, out.Cells[0][0].WavefrontBlocked)
}
