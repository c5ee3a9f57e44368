package grid

// cardinalOffsets is the fixed N,S,E,W scan order used by both neighbour
// enumerations in this package. Diagonals are deliberately never emitted
// here: diagonal motion is resolved only by the flow-field builder, under
// the corner-safety rule.
var cardinalOffsets = [4]Coord{
	{-1, 0}, // N
	{1, 0},  // S
	{0, 1},  // E
	{0, -1}, // W
}

// Neighbour is one cardinal neighbour of a cell, together with the cost a
// caller should charge to step onto it.
type Neighbour struct {
	Coord Coord
	Cost  uint8
}

// PathingNeighbours enumerates the in-bounds cardinal neighbours of center
// over chunk. If onlyPassable is set, cells with CostBase==CostImpassable
// or Blockers>0 are excluded. The returned cost for each neighbour is its
// CostBase, except that a blocked cell (Blockers>0) always reports
// CostImpassable as its cost, even when onlyPassable is false — so a caller
// that isn't filtering by passability still observes the obstruction.
//
// Returns at most 4 neighbours.
func PathingNeighbours(chunk CostView, center Coord, onlyPassable bool) []Neighbour {
	out := make([]Neighbour, 0, 4)
	for _, d := range cardinalOffsets {
		n := Coord{center.R + d.R, center.C + d.C}
		if !n.InBounds() {
			continue
		}
		blocked := chunk.CostBase(n.R, n.C) == CostImpassable || chunk.Blockers(n.R, n.C) > 0
		if onlyPassable && blocked {
			continue
		}
		cost := chunk.CostBase(n.R, n.C)
		if chunk.Blockers(n.R, n.C) > 0 {
			cost = CostImpassable
		}
		out = append(out, Neighbour{Coord: n, Cost: cost})
	}
	if len(out) > 4 {
		panic("grid: neighbour enumeration overflowed its 4-slot budget")
	}
	return out
}

// LOSBlocked reports whether (r,c) is marked wavefront-blocked in an
// LOS field. Passed as a predicate so this package need not import los,
// avoiding an import cycle (los imports grid).
type LOSBlocked func(r, c int) bool

// LOSNeighbours enumerates the in-bounds cardinal neighbours of center,
// excluding any neighbour for which blocked reports true (the LOS field's
// wavefront_blocked bit). Unlike PathingNeighbours it does not pre-filter
// by passability; the LOS builder inspects CostBase itself to decide
// whether a neighbour is an occluder.
//
// Returns at most 4 neighbours.
func LOSNeighbours(chunk CostView, center Coord, blocked LOSBlocked) []Neighbour {
	out := make([]Neighbour, 0, 4)
	for _, d := range cardinalOffsets {
		n := Coord{center.R + d.R, center.C + d.C}
		if !n.InBounds() {
			continue
		}
		if blocked(n.R, n.C) {
			continue
		}
		cost := chunk.CostBase(n.R, n.C)
		if chunk.Blockers(n.R, n.C) > 0 {
			cost = CostImpassable
		}
		out = append(out, Neighbour{Coord: n, Cost: cost})
	}
	if len(out) > 4 {
		panic("grid: neighbour enumeration overflowed its 4-slot budget")
	}
	return out
}
