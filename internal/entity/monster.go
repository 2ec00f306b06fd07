package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/world"
)

// Monster represents a hostile creature on the level.
type Monster struct {
	Def       *gamedata.EnemyDef // Template the monster was built from
	Name      string             // Display name (e.g., "Orc")
	Symbol    rune               // Display symbol
	Pos       world.Pos          // Position on the level
	RoomIndex int                // Index of the room it spawned in (-1 if not in a room)
	HP        int                // Current hit points
	MaxHP     int                // Maximum hit points
}

// NewMonster creates a monster from a data-driven template.
func NewMonster(def *gamedata.EnemyDef, pos world.Pos, roomIndex int) *Monster {
	return &Monster{
		Def:       def,
		Name:      def.Name,
		Symbol:    def.GlyphRune(),
		Pos:       pos,
		RoomIndex: roomIndex,
		HP:        def.HP,
		MaxHP:     def.HP,
	}
}

// MonstersFromLayout builds one monster per spawn of a generated layout.
func MonstersFromLayout(layout *world.Layout) []*Monster {
	monsters := make([]*Monster, 0, len(layout.Spawns))
	for _, s := range layout.Spawns {
		monsters = append(monsters, NewMonster(s.Template, s.Pos, layout.RoomIndexAt(s.Pos)))
	}
	return monsters
}

// Color returns the tcell color for this monster.
func (m *Monster) Color() tcell.Color {
	return m.Def.TCellColor()
}

// ID returns the monster's template identifier.
func (m *Monster) ID() string {
	return m.Def.ID
}

func (m *Monster) GetName() string { return m.Name }

// IsAlive returns true if the monster has HP remaining.
func (m *Monster) IsAlive() bool { return m.HP > 0 }

func (m *Monster) GetHP() int      { return m.HP }
func (m *Monster) GetAttack() int  { return m.Def.Attack }
func (m *Monster) GetDefense() int { return m.Def.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (m *Monster) TakeDamage(amount int) int {
	return takeDamage(&m.HP, amount)
}
