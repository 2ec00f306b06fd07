// Package ui draws levels through a player's fog of war onto pluggable backends.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/world"
)

// Backend is anything that can show glyphs on a cell grid.
type Backend interface {
	// Clear blanks the whole surface.
	Clear()
	// Render draws glyph at pos. Dimmed cells are remembered but not in view.
	Render(pos world.Pos, glyph rune, color tcell.Color, dimmed bool)
	// Show presents everything drawn since the last Clear.
	Show()
}

// RememberedColor is the foreground used for dimmed cells.
const RememberedColor = tcell.ColorDarkGray

// TerminalBackend wraps tcell.Screen as a Backend.
type TerminalBackend struct {
	screen tcell.Screen
}

// NewTerminalBackend creates and initializes a new terminal screen.
func NewTerminalBackend() (*TerminalBackend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalBackendFor(s)
}

// NewTerminalBackendFor initializes an existing screen, such as a
// tcell.SimulationScreen, and wraps it.
func NewTerminalBackendFor(s tcell.Screen) (*TerminalBackend, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &TerminalBackend{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (b *TerminalBackend) Close() {
	b.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (b *TerminalBackend) PollEvent() tcell.Event {
	return b.screen.PollEvent()
}

// Clear clears the screen buffer.
func (b *TerminalBackend) Clear() {
	b.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (b *TerminalBackend) Show() {
	b.screen.Show()
}

// Render sets a single cell's content.
func (b *TerminalBackend) Render(pos world.Pos, glyph rune, color tcell.Color, dimmed bool) {
	style := tcell.StyleDefault.Foreground(color)
	if dimmed {
		style = tcell.StyleDefault.Foreground(RememberedColor)
	}
	b.screen.SetContent(pos.X, pos.Y, glyph, nil, style)
}

// Size returns the current terminal dimensions.
func (b *TerminalBackend) Size() (width, height int) {
	return b.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (b *TerminalBackend) Sync() {
	b.screen.Sync()
}
