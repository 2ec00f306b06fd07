// Package entity provides the player and the monsters that share the level.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/fov"
	"github.com/samdwyer/cavern/internal/world"
)

// Default player stats.
const (
	PlayerHP      = 30
	PlayerAttack  = 5
	PlayerDefense = 2
)

// Player is the hero walking the level.
type Player struct {
	Name    string
	Symbol  rune        // Display symbol ('@')
	Pos     world.Pos   // Current position on the level
	Vision  *fov.Vision // Field of view and explored memory
	HP      int
	MaxHP   int
	Attack  int
	Defense int
}

// NewPlayer creates a player at pos who sees sightRadius cells.
func NewPlayer(pos world.Pos, sightRadius int) *Player {
	return &Player{
		Name:    "Player",
		Symbol:  '@',
		Pos:     pos,
		Vision:  fov.NewVision(sightRadius),
		HP:      PlayerHP,
		MaxHP:   PlayerHP,
		Attack:  PlayerAttack,
		Defense: PlayerDefense,
	}
}

// Move steps the player one cell in direction d without any checks.
func (p *Player) Move(d world.Dir) {
	p.Pos = p.Pos.Add(d)
}

// Color returns the tcell color used to draw the player.
func (p *Player) Color() tcell.Color {
	return tcell.ColorRed
}

func (p *Player) GetName() string { return p.Name }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

func (p *Player) GetHP() int      { return p.HP }
func (p *Player) GetAttack() int  { return p.Attack }
func (p *Player) GetDefense() int { return p.Defense }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	return takeDamage(&p.HP, amount)
}

func takeDamage(hp *int, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, *hp)
	*hp -= actual
	return actual
}
