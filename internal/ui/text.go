package ui

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavern/internal/world"
)

type textCell struct {
	glyph  rune
	dimmed bool
}

// TextBackend renders into an in-memory character grid. Show writes the grid
// to the configured writer, if any. Colors are dropped.
type TextBackend struct {
	cells *world.Grid[textCell]
	out   io.Writer
	shown int
}

// NewTextBackend creates a width x height text surface that writes each
// shown frame to out. out may be nil.
func NewTextBackend(width, height int, out io.Writer) (*TextBackend, error) {
	cells, err := world.NewGrid[textCell](width, height)
	if err != nil {
		return nil, err
	}
	b := &TextBackend{cells: cells, out: out}
	b.Clear()
	return b, nil
}

// Clear fills the surface with spaces.
func (b *TextBackend) Clear() {
	b.cells.Fill(textCell{glyph: ' '})
}

// Render stores glyph at pos. Positions outside the surface are ignored.
func (b *TextBackend) Render(pos world.Pos, glyph rune, _ tcell.Color, dimmed bool) {
	if b.cells.IsValid(pos) {
		b.cells.Set(pos, textCell{glyph: glyph, dimmed: dimmed})
	}
}

// Show writes the current frame.
func (b *TextBackend) Show() {
	b.shown++
	if b.out != nil {
		io.WriteString(b.out, b.String())
	}
}

// Frames returns how many times Show was called.
func (b *TextBackend) Frames() int { return b.shown }

// At returns the glyph at pos and whether it was drawn dimmed.
func (b *TextBackend) At(pos world.Pos) (rune, bool) {
	c := b.cells.At(pos)
	return c.glyph, c.dimmed
}

// String returns the surface one row per line.
func (b *TextBackend) String() string {
	var sb strings.Builder
	width := b.cells.Width()
	sb.Grow((width + 1) * b.cells.Height())
	for p, c := range b.cells.All() {
		sb.WriteRune(c.glyph)
		if p.X == width-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
