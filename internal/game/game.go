// Package game provides the main game loop and state management.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavern/internal/combat"
	"github.com/samdwyer/cavern/internal/config"
	"github.com/samdwyer/cavern/internal/entity"
	"github.com/samdwyer/cavern/internal/gamedata"
	"github.com/samdwyer/cavern/internal/logger"
	"github.com/samdwyer/cavern/internal/telemetry"
	"github.com/samdwyer/cavern/internal/ui"
	"github.com/samdwyer/cavern/internal/world"
)

// Screen is a backend that also delivers terminal events.
// ui.TerminalBackend implements it.
type Screen interface {
	ui.Backend
	PollEvent() tcell.Event
	Sync()
}

// Game holds the entire game state.
type Game struct {
	screen   Screen
	renderer *ui.Renderer
	level    *world.Level
	layout   *world.Layout
	player   *entity.Player
	monsters []*entity.Monster
	message  string
	running  bool
	log      *logrus.Entry
}

// New generates a level from cfg and places the player and monsters on it.
func New(ctx context.Context, cfg config.Config, templates *gamedata.EnemyRegistry, screen Screen) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	defer initSpan.End()

	seed := cfg.ResolveSeed()
	log := logger.Log.WithField("component", "game")

	level, layout, err := world.Generate(ctx, rand.New(rand.NewSource(seed)), cfg.Strategy(templates))
	if err != nil {
		initSpan.RecordError(err)
		return nil, fmt.Errorf("generate level: %w", err)
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		level:    level,
		layout:   layout,
		player:   entity.NewPlayer(layout.PlayerStart, cfg.SightRadius),
		monsters: entity.MonstersFromLayout(layout),
		running:  true,
		log:      log,
	}
	g.player.Vision.Refresh(level, g.player.Pos)

	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(layout.Rooms)),
		attribute.Int("dungeon.monsters", len(g.monsters)),
		attribute.Int("player.start_x", layout.PlayerStart.X),
		attribute.Int("player.start_y", layout.PlayerStart.Y),
	)
	if len(layout.Rooms) == 0 {
		initSpan.SetAttributes(attribute.String("warning", "no rooms generated, using fallback position"))
	}
	log.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    len(layout.Rooms),
		"monsters": len(g.monsters),
	}).Info("Game initialized.")

	return g, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	for g.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.player.Vision.Refresh(g.level, g.player.Pos)
		g.renderer.Render(g.level, g.player, g.monsters, g.message)

		// Handle input (blocking)
		g.handleInput()
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized.
		g.running = false
	}
}

// HandleKey applies the command bound to a key press.
func (g *Game) HandleKey(key tcell.Key, r rune) {
	cmd, ok := CommandForKey(key, r)
	switch {
	case !ok:
		return
	case cmd.Quit:
		g.running = false
	default:
		g.TryMove(cmd.Move)
	}
}

// TryMove moves the player one step in direction d. Stepping into a living
// monster attacks it instead. Moves into cells that are not walkable are
// rejected. It reports whether the turn was used.
func (g *Game) TryMove(d world.Dir) bool {
	target := g.player.Pos.Add(d)

	if i := g.monsterAt(target); i >= 0 {
		m := g.monsters[i]
		result := combat.Attack(g.player, m)
		g.message = result.Message
		g.log.WithFields(logrus.Fields{
			"monster": m.ID(),
			"pos":     target.String(),
			"damage":  result.Damage,
			"killed":  result.Killed,
		}).Debug("Player attacks.")
		if result.Killed {
			g.monsters = slices.Delete(g.monsters, i, i+1)
		}
		return true
	}

	if !g.level.IsPassable(target) {
		g.log.WithField("target", target.String()).Trace("Move rejected.")
		return false
	}

	g.player.Move(d)
	g.message = ""
	g.player.Vision.Refresh(g.level, g.player.Pos)
	return true
}

// monsterAt returns the index of the living monster at p, or -1.
func (g *Game) monsterAt(p world.Pos) int {
	return slices.IndexFunc(g.monsters, func(m *entity.Monster) bool {
		return m.IsAlive() && m.Pos == p
	})
}

// Running reports whether the game loop should continue.
func (g *Game) Running() bool { return g.running }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Level returns the current level.
func (g *Game) Level() *world.Level { return g.level }

// Layout returns what the generator placed on the level.
func (g *Game) Layout() *world.Layout { return g.layout }

// Monsters returns the living monsters.
func (g *Game) Monsters() []*entity.Monster { return g.monsters }

// Message returns the last combat message.
func (g *Game) Message() string { return g.message }
