package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/cavern/internal/gamedata"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 90
	DefaultHeight = 45

	defaultMinRoomSize = 6
	defaultMaxRoomSize = 10
	defaultMaxRooms    = 30
	defaultMinMonsters = 20
	defaultMaxMonsters = 30
)

// ErrInvalidStrategy is returned by Validate and Generate for unusable configurations.
var ErrInvalidStrategy = errors.New("invalid generation strategy")

// RoomStrategy bounds the size and placement of sampled rooms.
// Room extents follow NewRoom: a room of dimension d spans d+1 cells.
type RoomStrategy struct {
	MinDim, MaxDim Dim
	MinPos, MaxPos Pos // inclusive bounds for room interiors
}

// MonsterRange is an inclusive range of monster counts.
type MonsterRange struct {
	Min, Max int
}

// GenerationStrategy configures Generate. It carries no behavior.
type GenerationStrategy struct {
	Dim       Dim
	Rooms     RoomStrategy
	MaxRooms  int
	Monsters  MonsterRange
	Templates *gamedata.EnemyRegistry
}

// DefaultStrategy returns the standard 90x45 layout with 6..10 sized rooms.
func DefaultStrategy(templates *gamedata.EnemyRegistry) GenerationStrategy {
	return StrategyFor(Dim{Width: DefaultWidth, Height: DefaultHeight}, templates)
}

// StrategyFor returns the default room and monster settings for a level of
// the given extent, leaving a one-cell margin for wall rings.
func StrategyFor(dim Dim, templates *gamedata.EnemyRegistry) GenerationStrategy {
	return GenerationStrategy{
		Dim: dim,
		Rooms: RoomStrategy{
			MinDim: Dim{Width: defaultMinRoomSize, Height: defaultMinRoomSize},
			MaxDim: Dim{Width: defaultMaxRoomSize, Height: defaultMaxRoomSize},
			MinPos: Pos{X: 1, Y: 1},
			MaxPos: dim.MaxPos().Offset(-1, -1),
		},
		MaxRooms:  defaultMaxRooms,
		Monsters:  MonsterRange{Min: defaultMinMonsters, Max: defaultMaxMonsters},
		Templates: templates,
	}
}

// Validate checks the strategy before any sampling happens.
func (s GenerationStrategy) Validate() error {
	if s.Dim.Width <= 0 || s.Dim.Height <= 0 || s.Dim.Width > MaxCells/s.Dim.Height {
		return fmt.Errorf("%w: level dimensions %v", ErrInvalidStrategy, s.Dim)
	}
	r := s.Rooms
	if r.MinDim.Width <= 0 || r.MinDim.Height <= 0 {
		return fmt.Errorf("%w: minimum room dimensions %v must be positive", ErrInvalidStrategy, r.MinDim)
	}
	if r.MaxDim.Width < r.MinDim.Width || r.MaxDim.Height < r.MinDim.Height {
		return fmt.Errorf("%w: maximum room dimensions %v below minimum %v", ErrInvalidStrategy, r.MaxDim, r.MinDim)
	}
	if r.MinPos.X <= 0 || r.MinPos.Y <= 0 {
		return fmt.Errorf("%w: minimum room position %v must leave a border", ErrInvalidStrategy, r.MinPos)
	}
	if limit := s.Dim.MaxPos().Offset(-1, -1); r.MaxPos.X > limit.X || r.MaxPos.Y > limit.Y {
		return fmt.Errorf("%w: maximum room position %v outside %v", ErrInvalidStrategy, r.MaxPos, limit)
	}
	if r.MaxPos.X-r.MaxDim.Width < r.MinPos.X || r.MaxPos.Y-r.MaxDim.Height < r.MinPos.Y {
		return fmt.Errorf("%w: position range %v-%v too small for rooms of %v", ErrInvalidStrategy, r.MinPos, r.MaxPos, r.MaxDim)
	}
	if s.MaxRooms < 0 {
		return fmt.Errorf("%w: max rooms %d is negative", ErrInvalidStrategy, s.MaxRooms)
	}
	if s.Monsters.Min < 0 || s.Monsters.Max < s.Monsters.Min {
		return fmt.Errorf("%w: monster range [%d,%d]", ErrInvalidStrategy, s.Monsters.Min, s.Monsters.Max)
	}
	if s.Monsters.Max > 0 && (s.Templates == nil || s.Templates.TotalWeight() <= 0) {
		return fmt.Errorf("%w: monsters requested without templates", ErrInvalidStrategy)
	}
	return nil
}
