package integration

import (
	"math"

	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/pqueue"
)

// Field is a FieldResR x FieldResC array of accumulated minimum costs.
// Every reachable cell holds the minimum accumulated cost_base along any
// 4-connected passable path from any seed; unreachable cells hold +Inf;
// seed cells hold 0.
type Field [grid.FieldResR][grid.FieldResC]float64

// At returns the integration value at (r,c).
func (f *Field) At(r, c int) float64 { return f[r][c] }

// Reachable reports whether (r,c) was reached from any seed.
func (f *Field) Reachable(r, c int) bool { return !math.IsInf(f[r][c], 1) }

// newField returns a Field initialized to +Inf everywhere.
func newField() *Field {
	f := &Field{}
	for r := range f {
		for c := range f[r] {
			f[r][c] = math.Inf(1)
		}
	}
	return f
}

// Build runs multi-source Dijkstra over chunk, seeded at every coordinate
// in seeds with integration 0. Returns ErrNoSeeds if seeds is empty.
//
// Every cell in a seed's connected passable component ends up holding the
// minimum cost-to-any-seed; all other cells remain +Inf.
func Build(chunk grid.CostView, seeds []grid.Coord) (*Field, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}

	f := newField()
	frontier := pqueue.New()
	for _, s := range seeds {
		f[s.R][s.C] = 0
		if !frontier.Contains(s) {
			frontier.Push(s, 0)
		}
	}

	for frontier.Size() > 0 {
		curr := frontier.Pop()
		currCost := f[curr.R][curr.C]

		for _, n := range grid.PathingNeighbours(chunk, curr, true) {
			tentative := currCost + float64(n.Cost)
			if tentative < f[n.Coord.R][n.Coord.C] {
				f[n.Coord.R][n.Coord.C] = tentative
				if !frontier.Contains(n.Coord) {
					frontier.Push(n.Coord, tentative)
				}
			}
		}
	}

	return f, nil
}
