// Package field is the public facade an external path planner calls: one
// entry point to build the integration+flow pair for a target, and one to
// build (or continue) a chunk's line-of-sight field. It composes target,
// integration, flowfield, los, and fieldid without introducing any new
// algorithmic behavior of its own.
//
// BuildFlowField returns the unwrapped sentinel errors of the composed
// integration/target packages — callers branch with errors.Is against
// those packages' exported sentinels, not against anything defined here.
// Caller-contract violations (an unrecognized target descriptor, an
// enemies target with no hostile tiles, an ambiguous portal direction, a
// prevLOS argument that disagrees with the destination chunk) panic
// instead of returning an error, in the composed packages themselves.
package field
