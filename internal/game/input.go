package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/world"
)

// Command is what a key press asks the game to do.
type Command struct {
	Quit bool
	Move world.Dir
}

var runeMoves = map[rune]world.Dir{
	'k': world.North,
	'j': world.South,
	'h': world.West,
	'l': world.East,
	'y': world.NorthWest,
	'u': world.NorthEast,
	'b': world.SouthWest,
	'n': world.SouthEast,
}

// CommandForKey maps a key press to a command. Arrows and hjkl move in the
// four cardinal directions, yubn move diagonally, and q, Esc or Ctrl-C quit.
// It returns false for keys with no binding.
func CommandForKey(key tcell.Key, r rune) (Command, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Quit: true}, true
	case tcell.KeyUp:
		return Command{Move: world.North}, true
	case tcell.KeyDown:
		return Command{Move: world.South}, true
	case tcell.KeyLeft:
		return Command{Move: world.West}, true
	case tcell.KeyRight:
		return Command{Move: world.East}, true
	case tcell.KeyRune:
		if r == 'q' || r == 'Q' {
			return Command{Quit: true}, true
		}
		if d, ok := runeMoves[r]; ok {
			return Command{Move: d}, true
		}
	}
	return Command{}, false
}
