package integration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/integration"
	"github.com/katalvlaran/wayfield/internal/fixture"
)

// TestBuild_S2_WallGapFixture loads a wall-with-a-gap chunk from its YAML
// fixture rather than carving it out by hand, exercising the same routing
// TestBuild_WallWithGap does against the on-disk S2 scenario.
func TestBuild_S2_WallGapFixture(t *testing.T) {
	dc, err := fixture.LoadChunk("../testdata/s2_wall_gap.yaml")
	require.NoError(t, err)

	f, err := integration.Build(dc, []grid.Coord{{7, 3}})
	require.NoError(t, err)

	want := abs(0-4) + abs(0-3) + abs(4-7) + abs(3-3)
	require.Equal(t, float64(want), f.At(0, 0))
}
