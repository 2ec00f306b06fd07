package world

import (
	"iter"
	"strings"
)

// Level is the game map: a grid of tiles.
type Level struct {
	*Grid[TileType]
}

// NewLevel creates a level filled with walls.
func NewLevel(width, height int) (*Level, error) {
	g, err := NewGrid[TileType](width, height)
	if err != nil {
		return nil, err
	}
	return &Level{Grid: g}, nil
}

// NewLevelDim creates a level with the given extent.
func NewLevelDim(dim Dim) (*Level, error) {
	return NewLevel(dim.Width, dim.Height)
}

// MaxPos returns the bottom-right cell of the level.
func (l *Level) MaxPos() Pos {
	return l.Dim().MaxPos()
}

// IsPassable returns true if p is inside the level and walkable.
// Positions outside the level are never passable.
func (l *Level) IsPassable(p Pos) bool {
	return l.IsValid(p) && l.At(p).IsWalkable()
}

// BlocksSight returns true if p is opaque. Positions outside the level block sight.
func (l *Level) BlocksSight(p Pos) bool {
	return !l.IsValid(p) || l.At(p).BlocksSight()
}

// Dig sets every position in ps to Ground.
func (l *Level) Dig(ps iter.Seq[Pos]) {
	for p := range ps {
		l.Set(p, Ground)
	}
}

// PutWalls sets every position in ps to RoomWall.
func (l *Level) PutWalls(ps iter.Seq[Pos]) {
	for p := range ps {
		l.Set(p, RoomWall)
	}
}

// String renders the level one row per line using tile runes.
func (l *Level) String() string {
	var b strings.Builder
	b.Grow((l.Width() + 1) * l.Height())
	for p, t := range l.All() {
		b.WriteRune(t.Rune())
		if p.X == l.Width()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
