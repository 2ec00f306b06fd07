// Package fov computes line of sight over a level and tracks what each viewer
// has seen.
//
// Visibility uses symmetric shadowcasting: the plane around the origin is
// split into four quadrants, each scanned row by row outwards while opaque
// cells narrow the lit slope range. Slopes are kept as exact integer
// fractions. A transparent cell is visible when its center lies inside the
// lit range, which makes visibility between transparent cells symmetric.
// Opaque cells are visible when any part of them is lit.
//
// Distance is Euclidean: a cell at offset (dx, dy) is in range when
// dx*dx + dy*dy <= radius*radius.
package fov

import (
	"fmt"

	"github.com/samdwyer/cavern/internal/world"
)

// Mask is a per-cell boolean grid with the level's dimensions.
type Mask = world.Grid[bool]

// Compute returns the cells visible from origin within radius. The origin is
// always visible; radius 0 sees the origin only. Cells outside the level are
// treated as opaque. It panics if origin is outside the level.
func Compute(level *world.Level, origin world.Pos, radius int) *Mask {
	if !level.IsValid(origin) {
		panic(fmt.Sprintf("fov: origin %v outside %v level", origin, level.Dim()))
	}
	mask := newMask(level.Dim())
	mask.Set(origin, true)
	if radius <= 0 {
		return mask
	}

	c := caster{level: level, mask: mask, origin: origin, radius: radius}
	for _, dir := range [4]cardinal{north, east, south, west} {
		c.scan(dir, row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}
	return mask
}

func newMask(dim world.Dim) *Mask {
	m, err := world.NewGrid[bool](dim.Width, dim.Height)
	if err != nil {
		panic(fmt.Sprintf("fov: %v", err))
	}
	return m
}

type cardinal uint8

const (
	north cardinal = iota
	east
	south
	west
)

// slope is the fraction num/den with den > 0.
type slope struct {
	num, den int
}

type row struct {
	depth      int
	start, end slope
}

// minCol rounds depth*start to the nearest column, ties upward.
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol rounds depth*end to the nearest column, ties downward.
func (r row) maxCol() int {
	return -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
}

// isSymmetric reports whether the center of the cell at col lies within the row's slopes.
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// tileSlope is the slope of the left edge of the cell at (depth, col).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

type caster struct {
	level  *world.Level
	mask   *Mask
	origin world.Pos
	radius int
}

func (c *caster) transform(dir cardinal, depth, col int) world.Pos {
	o := c.origin
	switch dir {
	case north:
		return world.Pos{X: o.X + col, Y: o.Y - depth}
	case south:
		return world.Pos{X: o.X + col, Y: o.Y + depth}
	case east:
		return world.Pos{X: o.X + depth, Y: o.Y + col}
	default:
		return world.Pos{X: o.X - depth, Y: o.Y + col}
	}
}

func (c *caster) reveal(p world.Pos) {
	dx, dy := p.X-c.origin.X, p.Y-c.origin.Y
	if dx*dx+dy*dy <= c.radius*c.radius && c.mask.IsValid(p) {
		c.mask.Set(p, true)
	}
}

func (c *caster) scan(dir cardinal, r row) {
	if r.depth > c.radius {
		return
	}
	first, last := r.minCol(), r.maxCol()
	var prevOpaque, hasPrev bool
	for col := first; col <= last; col++ {
		p := c.transform(dir, r.depth, col)
		opaque := c.level.BlocksSight(p)

		if opaque || r.isSymmetric(col) {
			c.reveal(p)
		}
		if hasPrev && prevOpaque && !opaque {
			r.start = tileSlope(r.depth, col)
		}
		if hasPrev && !prevOpaque && opaque {
			next := r.next()
			next.end = tileSlope(r.depth, col)
			c.scan(dir, next)
		}
		prevOpaque, hasPrev = opaque, true
	}
	if hasPrev && !prevOpaque {
		c.scan(dir, r.next())
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
