package fieldid

import (
	"github.com/katalvlaran/wayfield/grid"
	"github.com/katalvlaran/wayfield/target"
)

// ID is a 64-bit deterministic field identity, suitable as a cache key.
type ID uint64

// Tag occupies the top byte of every ID and identifies which Target variant
// produced it. The original engine's enum values were not present in the
// retrieved source; these are stable, arbitrarily chosen constants — only
// the bit position (byte 7) is load-bearing, not the literal tag values.
type Tag uint8

const (
	TagTile    Tag = 1
	TagPortal  Tag = 2
	TagEnemies Tag = 3
)

// Encode computes the ID for t resolved against chunk, using this byte
// layout:
//
//	PORTAL:  tag<<56 | ep0.r<<40 | ep0.c<<32 | ep1.r<<24 | ep1.c<<16 | chunk.r<<8 | chunk.c
//	TILE:    tag<<56 | tile.r<<24 | tile.c<<16 | chunk.r<<8 | chunk.c
//	ENEMIES: tag<<56 | factionID<<24 | chunk.r<<8 | chunk.c
//
// Unused bytes are zero. Panics on an unrecognized Target implementation.
func Encode(t target.Target, chunk grid.Coord) ID {
	switch v := t.(type) {
	case target.Tile:
		return ID(uint64(TagTile)<<56 |
			uint64(uint8(v.R))<<24 |
			uint64(uint8(v.C))<<16 |
			uint64(uint8(chunk.R))<<8 |
			uint64(uint8(chunk.C)))

	case target.Portal:
		return ID(uint64(TagPortal)<<56 |
			uint64(uint8(v.Endpoint0.R))<<40 |
			uint64(uint8(v.Endpoint0.C))<<32 |
			uint64(uint8(v.Endpoint1.R))<<24 |
			uint64(uint8(v.Endpoint1.C))<<16 |
			uint64(uint8(chunk.R))<<8 |
			uint64(uint8(chunk.C)))

	case target.Enemies:
		return ID(uint64(TagEnemies)<<56 |
			uint64(uint8(v.FactionID))<<24 |
			uint64(uint8(chunk.R))<<8 |
			uint64(uint8(chunk.C)))

	default:
		panic("fieldid: unknown target descriptor type")
	}
}
