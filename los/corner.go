package los

import "github.com/katalvlaran/wayfield/grid"

// IsLOSCorner reports whether (r,c) is a LOS corner: the cell sits at the
// transition from passable to impassable along one axis while being free
// along the other.
//
// This checks each axis independently and returns true if *either* axis is
// asymmetrically blocked — not a single XOR across both axes — matching
// the source engine's is_LOS_corner, which early-returns true on the first
// axis that qualifies. An axis is skipped entirely when (r,c) sits on the
// grid boundary for that axis.
func IsLOSCorner(chunk grid.CostView, r, c int) bool {
	if r > 0 && r < grid.FieldResR-1 {
		up := !grid.Passable(chunk, r-1, c)
		down := !grid.Passable(chunk, r+1, c)
		if up != down {
			return true
		}
	}
	if c > 0 && c < grid.FieldResC-1 {
		left := !grid.Passable(chunk, r, c-1)
		right := !grid.Passable(chunk, r, c+1)
		if left != right {
			return true
		}
	}
	return false
}
