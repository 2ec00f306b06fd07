package world

import (
	"cmp"
	"fmt"
	"iter"
)

// Pos is a cell coordinate on a level.
type Pos struct {
	X, Y int
}

// String returns the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the neighbour of p one step in direction d.
func (p Pos) Add(d Dir) Pos {
	return Pos{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Offset returns p shifted by dx, dy.
func (p Pos) Offset(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Compare orders positions by coordinate sum, then by X.
// It is a total order: equal sums and equal X imply equal Y.
func (p Pos) Compare(o Pos) int {
	if c := cmp.Compare(p.X+p.Y, o.X+o.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, o.X)
}

// Dim is the extent of a grid.
type Dim struct {
	Width, Height int
}

// MaxPos returns the bottom-right cell of a grid with this extent.
func (d Dim) MaxPos() Pos {
	return Pos{X: d.Width - 1, Y: d.Height - 1}
}

// Area returns the number of cells.
func (d Dim) Area() int {
	return d.Width * d.Height
}

func (d Dim) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Dir is a single step on the grid.
type Dir struct {
	DX, DY int
}

var (
	Here      = Dir{0, 0}
	North     = Dir{0, -1}
	South     = Dir{0, 1}
	West      = Dir{-1, 0}
	East      = Dir{1, 0}
	NorthWest = Dir{-1, -1}
	NorthEast = Dir{1, -1}
	SouthWest = Dir{-1, 1}
	SouthEast = Dir{1, 1}
)

// Span yields every position of the inclusive rectangle from..to in row-major
// order (x fastest). It yields nothing when from is not <= to componentwise.
func Span(from, to Pos) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for y := from.Y; y <= to.Y; y++ {
			for x := from.X; x <= to.X; x++ {
				if !yield(Pos{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
