package entityquery

import "github.com/katalvlaran/wayfield/grid"

// FactionID identifies one faction in the diplomacy/combat simulation.
type FactionID int

// Entity is the minimal view of a simulated entity target resolution
// needs: enough to filter for hostile, combat-capable units and locate
// their tile.
type Entity struct {
	FactionID     FactionID
	CombatCapable bool
	Pos           grid.Vec2 // world-XZ position
}

// Locator answers "entities intersecting a rectangle", queried once per
// Enemies target resolution.
type Locator interface {
	EntitiesInRect(min, max grid.Vec2) []Entity
}

// DiplomacyOracle answers "are these two factions at war".
type DiplomacyOracle interface {
	AtWar(a, b FactionID) bool
}
