// Package world provides the level grid, room and corridor geometry, and
// dungeon generation.
package world

// TileType is the terrain of a single level cell.
type TileType uint8

const (
	// Wall is solid rock. It is the zero value, so fresh levels are solid.
	Wall TileType = iota
	// Ground is an open floor cell.
	Ground
	// RoomWall is the ring of wall drawn around a room.
	RoomWall
)

// IsWalkable returns true if the tile can be walked on.
func (t TileType) IsWalkable() bool {
	return t == Ground
}

// BlocksSight returns true if the tile is opaque.
func (t TileType) BlocksSight() bool {
	return t == Wall || t == RoomWall
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	switch t {
	case Ground:
		return '.'
	case RoomWall:
		return '+'
	default:
		return '#'
	}
}

func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Ground:
		return "ground"
	case RoomWall:
		return "room_wall"
	default:
		return "unknown"
	}
}
