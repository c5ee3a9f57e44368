package flowfield

import (
	"math"

	"github.com/katalvlaran/wayfield/direction"
	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/integration"
)

// Field is a FieldResR x FieldResC array of per-cell flow directions. Its
// zero value is entirely direction.None: a freshly allocated Field already
// represents "arrived" everywhere, which is the correct starting point for
// a caller stacking builds across disjoint passable islands in one chunk.
type Field [grid.FieldResR][grid.FieldResC]direction.Dir

// At returns the direction at (r,c).
func (f *Field) At(r, c int) direction.Dir { return f[r][c] }

// candidate is one of the 8 neighbours considered when resolving a cell's
// flow direction, in the fixed tie-break scan order below.
type candidate struct {
	dir    direction.Dir
	dr, dc int
}

var scanOrder = [8]candidate{
	{direction.N, -1, 0},
	{direction.S, 1, 0},
	{direction.E, 0, 1},
	{direction.W, 0, -1},
	{direction.NW, -1, -1},
	{direction.NE, -1, 1},
	{direction.SW, 1, -1},
	{direction.SE, 1, 1},
}

// isDiagonal reports whether c is one of the four diagonal candidates.
func (c candidate) isDiagonal() bool {
	return c.dr != 0 && c.dc != 0
}

// Build derives a flow Field from intf. Cells with integration +Inf are
// left untouched in out (the caller's zero/pre-populated value survives).
// Cells with integration 0 become direction.None. Every other finite cell
// gets the direction toward its minimum-integration neighbour, scanning
// candidates in the fixed order above and honoring the corner-safety rule
// for diagonals.
func Build(intf *integration.Field, out *Field) {
	for r := 0; r < grid.FieldResR; r++ {
		for c := 0; c < grid.FieldResC; c++ {
			v := intf.At(r, c)
			if math.IsInf(v, 1) {
				continue
			}
			if v == 0 {
				out[r][c] = direction.None
				continue
			}
			out[r][c] = resolve(intf, r, c)
		}
	}
}

// resolve picks the flow direction for one finite, non-zero cell.
func resolve(intf *integration.Field, r, c int) direction.Dir {
	minCost := math.Inf(1)
	valid := [8]bool{}

	for i, cand := range scanOrder {
		nr, nc := r+cand.dr, c+cand.dc
		if !(grid.Coord{nr, nc}).InBounds() {
			continue
		}
		if cand.isDiagonal() {
			// Corner safety: both cardinal cells sharing an edge with this
			// diagonal must be finite, else the diagonal is not a candidate.
			side1 := intf.At(r+cand.dr, c)
			side2 := intf.At(r, c+cand.dc)
			if math.IsInf(side1, 1) || math.IsInf(side2, 1) {
				continue
			}
		}
		valid[i] = true
		if v := intf.At(nr, nc); v < minCost {
			minCost = v
		}
	}

	if math.IsInf(minCost, 1) {
		panic("flowfield: finite cell has no finite neighbour")
	}

	for i, cand := range scanOrder {
		if !valid[i] {
			continue
		}
		nr, nc := r+cand.dr, c+cand.dc
		if intf.At(nr, nc) == minCost {
			return cand.dir
		}
	}
	panic("flowfield: unreachable — a valid minimum candidate must exist")
}
