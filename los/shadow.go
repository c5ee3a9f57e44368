package los

import (
	"math"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/worldgeom"
)

// bresenhamScale converts a normalized slope into integer deltas while
// preserving three digits of precision. Every port of this algorithm must
// use exactly this factor: downstream LOS determinism depends on which
// cells the walk visits.
const bresenhamScale = 1000

// CastShadowLine casts a shadow line into the chunk, starting at corner and
// walking away from target, marking every visited cell WavefrontBlocked.
// tileBounds resolves a tile descriptor to its world-space bounding box;
// res and mapPos are passed through unchanged.
//
// The walk always marks corner itself before taking its first step (a
// do/while, not a while), and terminates the step *after* it leaves the
// grid in either dimension — so at least one cell is always marked.
func CastShadowLine(target, corner worldgeom.TileDesc, res worldgeom.Resolution, mapPos worldgeom.Vec3, tileBounds worldgeom.TileBoundsFunc, out *Field) {
	targetCenter := tileBounds(res, mapPos, target).Center()
	cornerCenter := tileBounds(res, mapPos, corner).Center()

	slopeX := targetCenter.X - cornerCenter.X
	slopeZ := targetCenter.Z - cornerCenter.Z
	if mag := math.Hypot(slopeX, slopeZ); mag > 0 {
		slopeX /= mag
		slopeZ /= mag
	}

	dx := int(math.Abs(slopeX * bresenhamScale))
	dy := -int(math.Abs(slopeZ * bresenhamScale))
	sx := -1
	if slopeX > 0 {
		sx = 1
	}
	sy := -1
	if slopeZ < 0 {
		sy = 1
	}
	err := dx + dy

	r, c := corner.TileR, corner.TileC
	for {
		out.Cells[r][c].WavefrontBlocked = true

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c += sx
		}
		if e2 <= dx {
			err += dx
			r += sy
		}

		if r < 0 || r >= grid.FieldResR || c < 0 || c >= grid.FieldResC {
			return
		}
	}
}
