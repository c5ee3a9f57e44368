// Package entityquery defines the narrow hooks target resolution uses to
// interpret an Enemies target: "entities intersecting a rectangle" and
// "are these two factions at war". Entity simulation, combat, and
// diplomacy logic themselves are explicitly out of scope — this package
// only names the boundary wayfield queries across.
package entityquery
