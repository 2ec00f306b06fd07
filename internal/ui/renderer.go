package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/world"
)

// Renderer handles drawing the game to a backend.
type Renderer struct {
	backend Backend

	// RevealAll draws the whole level and every monster, ignoring fog of war.
	RevealAll bool
}

// NewRenderer creates a new renderer for the given backend.
func NewRenderer(backend Backend) *Renderer {
	return &Renderer{backend: backend}
}

// Render draws the level as the player sees it, then the monsters in view,
// then the player on top. Cells in view are drawn normally, remembered cells
// dimmed, and unexplored cells not at all. A non-empty message goes on the
// row below the level.
func (r *Renderer) Render(level *world.Level, player *entity.Player, monsters []*entity.Monster, message string) {
	r.backend.Clear()

	vision := player.Vision
	for p, tile := range level.All() {
		switch {
		case r.RevealAll || vision.IsVisible(p):
			r.backend.Render(p, tile.Rune(), tileColor(tile), false)
		case vision.Remembers(p):
			r.backend.Render(p, tile.Rune(), tileColor(tile), true)
		}
	}

	for _, m := range monsters {
		if m.IsAlive() && (r.RevealAll || vision.IsVisible(m.Pos)) {
			r.backend.Render(m.Pos, m.Symbol, m.Color(), false)
		}
	}

	r.backend.Render(player.Pos, player.Symbol, player.Color(), false)

	if message != "" {
		r.renderMessage(message, level.Height())
	}
	r.backend.Show()
}

// tileColor returns the appropriate color for a tile type.
func tileColor(tile world.TileType) tcell.Color {
	switch tile {
	case world.Ground:
		return tcell.ColorGray
	case world.RoomWall:
		return tcell.ColorOlive
	default:
		return tcell.ColorWhite
	}
}

// renderMessage displays a message on row y.
func (r *Renderer) renderMessage(msg string, y int) {
	x := 0
	for _, ch := range msg {
		r.backend.Render(world.Pos{X: x, Y: y}, ch, tcell.ColorWhite, false)
		x++
	}
}
