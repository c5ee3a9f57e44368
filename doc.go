// Package wayfield is the flow-field navigation core of a real-time
// strategy engine: given a destination on a tiled chunk of the world map,
// it produces per-cell movement vectors and line-of-sight masks so large
// groups of agents can pathfind without per-agent A*.
//
// 🧭 What is wayfield?
//
//	A synchronous, in-memory navigation library that brings together:
//
//	  • Multi-source Dijkstra integration over a weighted grid (integration)
//	  • A derived flow field honoring diagonal-corner-cutting safety (flowfield)
//	  • A line-of-sight wavefront via BFS + Bresenham shadow casting (los)
//	  • Seamless propagation of fields across chunk boundaries (los continuation)
//
// ✨ Why this shape?
//
//   - Deterministic    — every build is a pure function of its inputs and a
//     one-shot entity snapshot; no hidden state, no goroutines
//   - Cache-friendly   — fields carry a 64-bit deterministic identity (fieldid)
//   - Allocation-light — fields are fixed-shape arrays sized by compile-time
//     grid constants, never heap-churned slices of slices
//   - Pure Go           — no cgo, no network, no persistence
//
// Everything lives in subpackages; this root package is documentation only:
//
//	grid/        — coordinate space, cost/blocker view, neighbour enumeration
//	pqueue/      — indexed min-heap frontier shared by integration and los
//	integration/ — multi-source Dijkstra integration field builder
//	flowfield/   — direction field builder + portal-edge fixup
//	los/         — BFS visibility, LOS-corner detection, shadow casting
//	target/      — tagged-union target descriptor + seed resolution
//	entityquery/ — entity/diplomacy hooks consumed by Enemies targets
//	worldgeom/   — world-XZ bounding-box hooks and formulas
//	direction/   — 8-compass-point + NONE direction/vector table
//	fieldid/     — deterministic 64-bit field identity encoding
//	field/       — public facade: BuildFlowField, BuildLOS
//
// Dive into DESIGN.md for the full design rationale and dependency ledger.
package wayfield
