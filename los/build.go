package los

import (
	"math"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/pqueue"
	"github.com/katalvlaran/wayfield/worldgeom"
)

// Build produces the LOS field for one chunk. target is the destination
// tile the whole route is converging on, possibly in another chunk.
// tileBounds/res/mapPos are the world-geometry hooks shadow casting needs.
//
// Case A — chunkCoord is target's own chunk: the target tile is the single
// seed, at integration 0; prevLOS must be nil.
//
// Case B — any other chunk: prevLOS must be the adjacent chunk's already-
// built field. The shared edge is copied cell-for-cell; copied
// WavefrontBlocked cells cast a fresh shadow line into this chunk's
// interior, and copied Visible cells seed the BFS at cost 0.
//
// Panics if prevLOS's nil-ness disagrees with which case applies: a
// prevLOS was supplied for the destination chunk, or omitted for a
// non-destination chunk.
func Build(chunk grid.CostView, chunkCoord grid.Coord, target worldgeom.TileDesc, res worldgeom.Resolution, mapPos worldgeom.Vec3, tileBounds worldgeom.TileBoundsFunc, prevLOS *Field) *Field {
	isDestination := chunkCoord.R == target.ChunkR && chunkCoord.C == target.ChunkC
	if isDestination == (prevLOS != nil) {
		panic("los: prevLOS must be nil for the destination chunk and non-nil otherwise")
	}

	out := &Field{Chunk: chunkCoord}
	frontier := pqueue.New()

	var integ [grid.FieldResR][grid.FieldResC]float64
	for r := range integ {
		for c := range integ[r] {
			integ[r][c] = math.Inf(1)
		}
	}

	if isDestination {
		seed := grid.Coord{R: target.TileR, C: target.TileC}
		integ[seed.R][seed.C] = 0
		frontier.Push(seed, 0)
	} else {
		seedFromPrevEdge(chunk, chunkCoord, target, res, mapPos, tileBounds, prevLOS, out, frontier, &integ)
	}

	for frontier.Size() > 0 {
		curr := frontier.Pop()
		currCost := integ[curr.R][curr.C]

		blocked := func(r, c int) bool { return out.Cells[r][c].WavefrontBlocked }
		for _, n := range grid.LOSNeighbours(chunk, curr, blocked) {
			if n.Cost > 1 {
				if !IsLOSCorner(chunk, n.Coord.R, n.Coord.C) {
					continue
				}
				src := worldgeom.TileDesc{
					ChunkR: chunkCoord.R, ChunkC: chunkCoord.C,
					TileR: n.Coord.R, TileC: n.Coord.C,
				}
				CastShadowLine(target, src, res, mapPos, tileBounds, out)
				continue
			}

			out.Cells[n.Coord.R][n.Coord.C].Visible = true
			tentative := currCost + 1
			if tentative < integ[n.Coord.R][n.Coord.C] {
				integ[n.Coord.R][n.Coord.C] = tentative
				if !frontier.Contains(n.Coord) {
					frontier.Push(n.Coord, tentative)
				}
			}
		}
	}

	padWavefront(out)
	return out
}

// seedFromPrevEdge copies the edge shared with prevLOS.Chunk into out, then
// reacts to each copied cell exactly as the source engine does: a
// wavefront-blocked cell casts a fresh shadow line, a visible cell seeds
// the frontier at cost 0. The two checks are independent, not else-if.
func seedFromPrevEdge(chunk grid.CostView, chunkCoord grid.Coord, target worldgeom.TileDesc, res worldgeom.Resolution, mapPos worldgeom.Vec3, tileBounds worldgeom.TileBoundsFunc, prevLOS *Field, out *Field, frontier *pqueue.Queue, integ *[grid.FieldResR][grid.FieldResC]float64) {
	seed := func(r, c int) {
		cell := out.Cells[r][c]
		if cell.WavefrontBlocked {
			src := worldgeom.TileDesc{ChunkR: chunkCoord.R, ChunkC: chunkCoord.C, TileR: r, TileC: c}
			CastShadowLine(target, src, res, mapPos, tileBounds, out)
		}
		if cell.Visible {
			integ[r][c] = 0
			frontier.Push(grid.Coord{R: r, C: c}, 0)
		}
	}

	switch {
	case prevLOS.Chunk.R < chunkCoord.R:
		for c := 0; c < grid.FieldResC; c++ {
			out.Cells[0][c] = prevLOS.Cells[grid.FieldResR-1][c]
			seed(0, c)
		}
	case prevLOS.Chunk.R > chunkCoord.R:
		for c := 0; c < grid.FieldResC; c++ {
			out.Cells[grid.FieldResR-1][c] = prevLOS.Cells[0][c]
			seed(grid.FieldResR-1, c)
		}
	case prevLOS.Chunk.C < chunkCoord.C:
		for r := 0; r < grid.FieldResR; r++ {
			out.Cells[r][0] = prevLOS.Cells[r][grid.FieldResC-1]
			seed(r, 0)
		}
	case prevLOS.Chunk.C > chunkCoord.C:
		for r := 0; r < grid.FieldResR; r++ {
			out.Cells[r][grid.FieldResC-1] = prevLOS.Cells[r][0]
			seed(r, grid.FieldResC-1)
		}
	default:
		panic("los: prevLOS.Chunk is not adjacent to chunkCoord")
	}
}

// padWavefront clears Visible on every wavefront-blocked cell and its 8
// Moore neighbours: a cell adjacent to a shadow line may not admit a clear
// ray to the target from every interior point, so visibility there is
// marked conservatively false.
func padWavefront(out *Field) {
	for r := 0; r < grid.FieldResR; r++ {
		for c := 0; c < grid.FieldResC; c++ {
			if !out.Cells[r][c].WavefrontBlocked {
				continue
			}
			for rr := r - 1; rr <= r+1; rr++ {
				for cc := c - 1; cc <= c+1; cc++ {
					if rr < 0 || rr >= grid.FieldResR || cc < 0 || cc >= grid.FieldResC {
						continue
					}
					out.Cells[rr][cc].Visible = false
				}
			}
		}
	}
}
