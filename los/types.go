package los

import "github.com/katalvlaran/wayfield/grid"

// Cell is one field cell's independent visibility/shadow bits.
type Cell struct {
	// Visible reports whether the target is line-of-sight reachable from
	// this cell under the conservative BFS+shadow rules below.
	Visible bool
	// WavefrontBlocked reports whether this cell lies on a shadow line
	// cast from a LOS corner.
	WavefrontBlocked bool
}

// Field is the per-chunk line-of-sight result: a FieldResR x FieldResC
// grid of Cells, tagged with the chunk coordinate it describes.
type Field struct {
	Chunk grid.Coord
	Cells [grid.FieldResR][grid.FieldResC]Cell
}

// Visible reports the Visible bit at (r,c).
func (f *Field) Visible(r, c int) bool { return f.Cells[r][c].Visible }

// WavefrontBlocked reports the WavefrontBlocked bit at (r,c).
func (f *Field) WavefrontBlocked(r, c int) bool { return f.Cells[r][c].WavefrontBlocked }
