package world

import (
	"errors"
	"fmt"
	"iter"
)

// MaxCells caps the number of cells a grid may allocate.
const MaxCells = 1_000_000

// ErrInvalidDim is returned for grid dimensions that are empty or too large.
var ErrInvalidDim = errors.New("invalid grid dimensions")

// Grid is a dense, bounds-checked 2D container stored row-major.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// NewGrid allocates a width*height grid of zero values.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDim, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDim, width, height, MaxCells)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// Tabulate builds a grid by evaluating f for every cell in row-major order.
func Tabulate[T any](dim Dim, f func(Pos) T) (*Grid[T], error) {
	g, err := NewGrid[T](dim.Width, dim.Height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = f(g.ToPos(i))
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Dim returns the grid extent.
func (g *Grid[T]) Dim() Dim { return Dim{Width: g.width, Height: g.height} }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// IsValid reports whether p addresses a cell of the grid.
func (g *Grid[T]) IsValid(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// ToIndex converts a position to its offset in the backing store.
// It panics if p is out of bounds.
func (g *Grid[T]) ToIndex(p Pos) int {
	g.mustBeValid(p)
	return p.X + p.Y*g.width
}

// ToPos converts an offset in the backing store to its position.
// It panics if i is out of range.
func (g *Grid[T]) ToPos(i int) Pos {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("world: index %d out of range [0,%d)", i, len(g.cells)))
	}
	return Pos{X: i % g.width, Y: i / g.width}
}

// At returns the cell at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Pos) T {
	return g.cells[g.ToIndex(p)]
}

// Set stores v at p. It panics if p is out of bounds.
func (g *Grid[T]) Set(p Pos, v T) {
	g.cells[g.ToIndex(p)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// All yields every position with its cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i, v := range g.cells {
			if !yield(g.ToPos(i), v) {
				return
			}
		}
	}
}

// Values yields every cell in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Positions yields every valid position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Pos] {
	return Span(Pos{}, g.Dim().MaxPos())
}

func (g *Grid[T]) mustBeValid(p Pos) {
	if !g.IsValid(p) {
		panic(fmt.Sprintf("world: position %v out of bounds for %dx%d grid", p, g.width, g.height))
	}
}
