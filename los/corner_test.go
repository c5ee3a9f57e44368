package los_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/los"
)

func TestIsLOSCorner_OpenChunkHasNoCorners(t *testing.T) {
	dc := grid.NewDenseChunk()
	for r := 0; r < grid.FieldResR; r++ {
		for c := 0; c < grid.FieldResC; c++ {
			assert.False(t, los.IsLOSCorner(dc, r, c), "r=%d c=%d", r, c)
		}
	}
}

func TestIsLOSCorner_IsolatedCellIsNeverACorner(t *testing.T) {
	// A single impassable cell surrounded by passable cells on every
	// cardinal side is symmetric on both axes, so it never satisfies the
	// asymmetric-blocked corner definition. Its open cardinal neighbours
	// do qualify (each has the obstacle on one side of one axis), but the
	// LOS builder only tests occluding cells for corners, so an isolated
	// obstacle never starts a shadow line.
	dc := grid.NewDenseChunk()
	dc.SetCostBase(4, 4, grid.CostImpassable)

	assert.False(t, los.IsLOSCorner(dc, 4, 4))
	assert.True(t, los.IsLOSCorner(dc, 3, 4))
	assert.True(t, los.IsLOSCorner(dc, 5, 4))
	assert.True(t, los.IsLOSCorner(dc, 4, 3))
	assert.True(t, los.IsLOSCorner(dc, 4, 5))
}

func TestIsLOSCorner_WallEdgeIsACorner(t *testing.T) {
	dc := grid.NewDenseChunk()
	dc.SetCostBase(4, 4, grid.CostImpassable)
	dc.SetCostBase(4, 5, grid.CostImpassable)

	// The wall's own end cells: vertical neighbours are symmetric
	// (passable above and below), but horizontal neighbours are not.
	assert.True(t, los.IsLOSCorner(dc, 4, 4))
	assert.True(t, los.IsLOSCorner(dc, 4, 5))

	// The passable cells flanking the wall on either side are corners too.
	assert.True(t, los.IsLOSCorner(dc, 4, 3))
	assert.True(t, los.IsLOSCorner(dc, 4, 6))
}

func TestIsLOSCorner_BoundaryAxisIsSkipped(t *testing.T) {
	dc := grid.NewDenseChunk()
	dc.SetBlockers(0, 4, 1)
	// Row 0 has no "up" neighbour; the vertical axis is skipped entirely,
	// so this cannot be a corner via that axis regardless of blockers.
	assert.False(t, los.IsLOSCorner(dc, 0, 4))
}
