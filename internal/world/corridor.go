package world

import (
	"errors"
	"fmt"
	"iter"
)

// ErrDegenerateCorridor is returned when a corridor would start and end on the same cell.
var ErrDegenerateCorridor = errors.New("corridor endpoints must differ")

// LCorridor is a one-bend corridor between two cells.
type LCorridor struct {
	From, To Pos
	// HorizontalFirst runs the horizontal leg along From's row and the
	// vertical leg along To's column. Otherwise the vertical leg runs along
	// From's column and the horizontal leg along To's row.
	HorizontalFirst bool
}

// NewLCorridor creates a corridor from one cell to another.
func NewLCorridor(from, to Pos, horizontalFirst bool) (LCorridor, error) {
	if from == to {
		return LCorridor{}, fmt.Errorf("%w: %v", ErrDegenerateCorridor, from)
	}
	return LCorridor{From: from, To: to, HorizontalFirst: horizontalFirst}, nil
}

// Bend returns the corner cell where the two legs meet.
func (c LCorridor) Bend() Pos {
	if c.HorizontalFirst {
		return Pos{X: c.To.X, Y: c.From.Y}
	}
	return Pos{X: c.From.X, Y: c.To.Y}
}

// Positions yields every corridor cell exactly once: the horizontal leg
// first, then the vertical leg without the shared bend.
func (c LCorridor) Positions() iter.Seq[Pos] {
	bend := c.Bend()
	row, col := bend.Y, bend.X
	return func(yield func(Pos) bool) {
		x0, x1 := min(c.From.X, c.To.X), max(c.From.X, c.To.X)
		for x := x0; x <= x1; x++ {
			if !yield(Pos{X: x, Y: row}) {
				return
			}
		}
		y0, y1 := min(c.From.Y, c.To.Y), max(c.From.Y, c.To.Y)
		for y := y0; y <= y1; y++ {
			if y == row {
				continue
			}
			if !yield(Pos{X: col, Y: y}) {
				return
			}
		}
	}
}

func (c LCorridor) String() string {
	return fmt.Sprintf("corridor[%v-%v-%v]", c.From, c.Bend(), c.To)
}
