package direction

import (
	"math"

	"github.com/katalvlaran/wayfield/grid"
)

// Dir is a discrete flow direction: one of the 8 compass points, or NONE.
type Dir int

const (
	None Dir = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

// invSqrt2 is 1/sqrt(2), used for the four diagonal unit vectors.
var invSqrt2 = 1.0 / math.Sqrt2

// vectors is the static 9-entry lookup table, indexed by Dir, mapping each
// direction to a unit vector in the world's XZ plane. X increases
// "westward" in this world frame (see package doc) and this table must not
// be translated to a conventional +X-is-east convention.
var vectors = [9]grid.Vec2{
	None: {X: 0, Z: 0},
	N:    {X: 0, Z: -1},
	S:    {X: 0, Z: 1},
	E:    {X: -1, Z: 0},
	W:    {X: 1, Z: 0},
	NW:   {X: invSqrt2, Z: -invSqrt2},
	NE:   {X: -invSqrt2, Z: -invSqrt2},
	SW:   {X: invSqrt2, Z: invSqrt2},
	SE:   {X: -invSqrt2, Z: invSqrt2},
}

// Vector returns d's unit XZ vector.
func (d Dir) Vector() grid.Vec2 {
	return vectors[d]
}

// String renders d's compass name, or "NONE".
func (d Dir) String() string {
	switch d {
	case None:
		return "NONE"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "INVALID"
	}
}
