package world

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
)

// Rand is the random source used by generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawn places one monster template on a cell.
type Spawn struct {
	Template *gamedata.EnemyDef
	Pos      Pos
}

// Layout is everything Generate placed besides the tiles themselves.
type Layout struct {
	Rooms       []Room
	Corridors   []LCorridor
	PlayerStart Pos
	Spawns      []Spawn
}

// RoomIndexAt returns the index of the room containing p, or -1 if not in a room.
func (l *Layout) RoomIndexAt(p Pos) int {
	for i, room := range l.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// Generate carves a new level according to strategy.
//
// Rooms are sampled up to MaxRooms times and discarded when they intersect an
// accepted room, so fewer rooms than MaxRooms is normal. Accepted rooms are
// sorted by center and chained with one corridor each. Interiors are dug
// first, then wall rings, then corridors, so corridors cut through walls.
func Generate(ctx context.Context, rng Rand, strategy GenerationStrategy) (*Level, *Layout, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if err := strategy.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid strategy")
		return nil, nil, err
	}

	startTime := time.Now()
	log := logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"dim":       strategy.Dim.String(),
	})

	level, err := NewLevelDim(strategy.Dim)
	if err != nil {
		return nil, nil, fmt.Errorf("allocate level: %w", err)
	}

	rooms, err := placeRooms(rng, strategy, log)
	if err != nil {
		return nil, nil, err
	}

	corridors, err := connectRooms(rng, rooms, log)
	if err != nil {
		return nil, nil, err
	}

	for _, room := range rooms {
		level.Dig(room.Positions())
	}
	for _, room := range rooms {
		level.PutWalls(room.Walls())
	}
	for _, c := range corridors {
		level.Dig(c.Positions())
	}

	layout := &Layout{Rooms: rooms, Corridors: corridors}
	if len(rooms) > 0 {
		layout.PlayerStart = rooms[0].Center()
	} else {
		layout.PlayerStart = Pos{X: strategy.Dim.Width / 2, Y: strategy.Dim.Height / 2}
		log.WithField("fallback_pos", layout.PlayerStart.String()).Warn("No rooms generated, using fallback player start.")
	}
	layout.Spawns = placeMonsters(rng, strategy, layout, log)

	span.SetAttributes(
		attribute.Int("dungeon.width", strategy.Dim.Width),
		attribute.Int("dungeon.height", strategy.Dim.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.corridor_count", len(corridors)),
		attribute.Int("dungeon.monster_count", len(layout.Spawns)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.WithFields(logrus.Fields{
		"rooms":    len(rooms),
		"monsters": len(layout.Spawns),
	}).Debug("Dungeon generated.")

	return level, layout, nil
}

// sampleRoom draws one room uniformly within the strategy bounds.
func sampleRoom(rng Rand, s RoomStrategy) (Room, error) {
	width := randRange(rng, s.MinDim.Width, s.MaxDim.Width)
	height := randRange(rng, s.MinDim.Height, s.MaxDim.Height)
	x := randRange(rng, s.MinPos.X, s.MaxPos.X-width)
	y := randRange(rng, s.MinPos.Y, s.MaxPos.Y-height)
	return NewRoom(Pos{X: x, Y: y}, Dim{Width: width, Height: height})
}

func placeRooms(rng Rand, strategy GenerationStrategy, log logrus.FieldLogger) ([]Room, error) {
	rooms := make([]Room, 0, strategy.MaxRooms)
	for attempt := range strategy.MaxRooms {
		room, err := sampleRoom(rng, strategy.Rooms)
		if err != nil {
			return nil, fmt.Errorf("sample room: %w", err)
		}
		conflict := slices.ContainsFunc(rooms, room.Intersects)
		log.WithFields(logrus.Fields{
			"attempt":  attempt,
			"room":     room.String(),
			"accepted": !conflict,
		}).Trace("Room attempt.")
		if !conflict {
			rooms = append(rooms, room)
		}
	}
	slices.SortFunc(rooms, func(a, b Room) int {
		return a.Center().Compare(b.Center())
	})
	return rooms, nil
}

func connectRooms(rng Rand, rooms []Room, log logrus.FieldLogger) ([]LCorridor, error) {
	if len(rooms) < 2 {
		return nil, nil
	}
	corridors := make([]LCorridor, 0, len(rooms)-1)
	for i := 1; i < len(rooms); i++ {
		prev, cur := rooms[i-1], rooms[i]
		c, err := NewLCorridor(prev.Center(), cur.Center(), rng.Intn(2) == 0)
		if err != nil {
			return nil, fmt.Errorf("connect %v and %v: %w", prev, cur, err)
		}
		log.WithFields(logrus.Fields{
			"index":    i,
			"corridor": c.String(),
		}).Trace("Connecting rooms.")
		corridors = append(corridors, c)
	}
	return corridors, nil
}

// placeMonsters draws cells without replacement from room interiors, skipping
// the player start, and assigns each a weighted template.
func placeMonsters(rng Rand, strategy GenerationStrategy, layout *Layout, log logrus.FieldLogger) []Spawn {
	count := randRange(rng, strategy.Monsters.Min, strategy.Monsters.Max)
	if count == 0 {
		return nil
	}

	var free []Pos
	for _, room := range layout.Rooms {
		for p := range room.Positions() {
			if p != layout.PlayerStart {
				free = append(free, p)
			}
		}
	}

	spawns := make([]Spawn, 0, count)
	for range count {
		if len(free) == 0 {
			log.WithFields(logrus.Fields{
				"requested": count,
				"placed":    len(spawns),
			}).Warn("No more free cells left for monsters.")
			break
		}
		template := strategy.Templates.SpawnRandom(rng)
		i := rng.Intn(len(free))
		spawns = append(spawns, Spawn{Template: template, Pos: free[i]})
		free = slices.Delete(free, i, i+1)
	}
	return spawns
}

func randRange(rng Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}
