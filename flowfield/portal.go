package flowfield

import (
	"github.com/katalvlaran/wayfield/direction"
	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/integration"
)

// FixupPortalEdges overrides the flow direction of every zero-integration
// cell (a portal seed cell) to point toward connectedChunk, which must
// differ from chunk in exactly one of row/column by exactly 1. Without
// this fixup the portal band's zero integration would resolve to
// direction.None, stranding agents on the chunk border instead of pushing
// them into the next chunk.
//
// Panics if chunk/connectedChunk are not exactly one cardinal step apart.
func FixupPortalEdges(intf *integration.Field, out *Field, chunk, connectedChunk grid.Coord) {
	dr := connectedChunk.R - chunk.R
	dc := connectedChunk.C - chunk.C

	var dir direction.Dir
	switch {
	case dr == -1 && dc == 0:
		dir = direction.N
	case dr == 1 && dc == 0:
		dir = direction.S
	case dr == 0 && dc == -1:
		dir = direction.W
	case dr == 0 && dc == 1:
		dir = direction.E
	default:
		panic("flowfield: portal connects to a non-adjacent or identical chunk")
	}

	for r := 0; r < grid.FieldResR; r++ {
		for c := 0; c < grid.FieldResC; c++ {
			if intf.At(r, c) == 0 {
				out[r][c] = dir
			}
		}
	}
}
