package field

import (
	"github.com/katalvlaran/wayfield/entityquery"
	"github.com/katalvlaran/wayfield/fieldid"
	"github.com/katalvlaran/wayfield/flowfield"
	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/integration"
	"github.com/katalvlaran/wayfield/los"
	"github.com/katalvlaran/wayfield/target"
	"github.com/katalvlaran/wayfield/worldgeom"
)

// Fields bundles one chunk's integration, flow, and identity results —
// everything BuildFlowField produces from a single target resolution.
type Fields struct {
	ID          fieldid.ID
	Integration *integration.Field
	Flow        *flowfield.Field
}

// BuildFlowField resolves t against chunk/chunkCoord, runs the integration
// build, derives the flow field, and (for Portal targets) applies the
// portal-edge fixup — the composition the external path planner calls to
// get one chunk's movement vectors.
// loc and dipl are only consulted when t is an Enemies target.
func BuildFlowField(chunk grid.CostView, chunkCoord grid.Coord, t target.Target, loc entityquery.Locator, dipl entityquery.DiplomacyOracle) (*Fields, error) {
	seeds := target.Resolve(t, loc, dipl)

	intf, err := integration.Build(chunk, seeds)
	if err != nil {
		return nil, err
	}

	flow := &flowfield.Field{}
	flowfield.Build(intf, flow)

	if p, ok := t.(target.Portal); ok {
		flowfield.FixupPortalEdges(intf, flow, chunkCoord, p.ConnectedChunk)
	}

	return &Fields{
		ID:          fieldid.Encode(t, chunkCoord),
		Integration: intf,
		Flow:        flow,
	}, nil
}

// BuildLOS builds (or continues) the line-of-sight field for one chunk —
// the composition the external path planner calls to get one chunk's
// visibility mask. See los.Build for the full case-A/case-B contract.
func BuildLOS(chunk grid.CostView, chunkCoord grid.Coord, losTarget worldgeom.TileDesc, res worldgeom.Resolution, mapPos worldgeom.Vec3, tileBounds worldgeom.TileBoundsFunc, prevLOS *los.Field) *los.Field {
	return los.Build(chunk, chunkCoord, losTarget, res, mapPos, tileBounds, prevLOS)
}
