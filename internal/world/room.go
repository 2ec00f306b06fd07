package world

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidRoom is returned when a room would touch the level border or has no extent.
var ErrInvalidRoom = errors.New("invalid room")

// Room represents a rectangular room in the dungeon.
// From and To are the inclusive top-left and bottom-right interior cells.
type Room struct {
	From, To Pos
}

// NewRoom creates a room with its top-left interior cell at from and
// To = from + dim. from must leave a one-cell border for the wall ring.
func NewRoom(from Pos, dim Dim) (Room, error) {
	if from.X <= 0 || from.Y <= 0 {
		return Room{}, fmt.Errorf("%w: origin %v must be positive", ErrInvalidRoom, from)
	}
	if dim.Width <= 0 || dim.Height <= 0 {
		return Room{}, fmt.Errorf("%w: dimensions %v must be positive", ErrInvalidRoom, dim)
	}
	return Room{
		From: from,
		To:   Pos{X: from.X + dim.Width, Y: from.Y + dim.Height},
	}, nil
}

// Width returns To.X - From.X.
func (r Room) Width() int { return r.To.X - r.From.X }

// Height returns To.Y - From.Y.
func (r Room) Height() int { return r.To.Y - r.From.Y }

// Center returns the center coordinates of the room, rounded down.
func (r Room) Center() Pos {
	return Pos{X: (r.From.X + r.To.X) / 2, Y: (r.From.Y + r.To.Y) / 2}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(p Pos) bool {
	return p.X >= r.From.X && p.X <= r.To.X && p.Y >= r.From.Y && p.Y <= r.To.Y
}

// ContainsOrTouches returns true if p is inside the room or on its wall ring.
func (r Room) ContainsOrTouches(p Pos) bool {
	return p.X >= r.From.X-1 && p.X <= r.To.X+1 && p.Y >= r.From.Y-1 && p.Y <= r.To.Y+1
}

// Intersects returns true if some interior cell of one room lies inside or on
// the wall ring of the other. The relation is symmetric; rooms that do not
// intersect have at least one cell between their interiors.
func (r Room) Intersects(other Room) bool {
	return r.To.X >= other.From.X-1 &&
		other.To.X >= r.From.X-1 &&
		r.To.Y >= other.From.Y-1 &&
		other.To.Y >= r.From.Y-1
}

// Positions yields every interior cell in row-major order.
func (r Room) Positions() iter.Seq[Pos] {
	return Span(r.From, r.To)
}

// Walls yields the ring of cells exactly one step outside the room:
// the top and bottom rows including the corners, then the side columns.
func (r Room) Walls() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for x := r.From.X - 1; x <= r.To.X+1; x++ {
			if !yield(Pos{X: x, Y: r.From.Y - 1}) || !yield(Pos{X: x, Y: r.To.Y + 1}) {
				return
			}
		}
		for y := r.From.Y; y <= r.To.Y; y++ {
			if !yield(Pos{X: r.From.X - 1, Y: y}) || !yield(Pos{X: r.To.X + 1, Y: y}) {
				return
			}
		}
	}
}

// Corners returns the NW, NE, SW and SE interior corners.
func (r Room) Corners() [4]Pos {
	return [4]Pos{
		r.From,
		{X: r.To.X, Y: r.From.Y},
		{X: r.From.X, Y: r.To.Y},
		r.To,
	}
}

func (r Room) String() string {
	return fmt.Sprintf("room[%v-%v]", r.From, r.To)
}
