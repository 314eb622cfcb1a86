// Package grid models the arena: a fixed cols×rows tiling of a continuous
// world, a per-cell walkability matrix and the mappings between the two spaces.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// ErrInvalidDimensions is returned by New for empty grids or non-positive sizes.
var ErrInvalidDimensions = errors.New("grid: dimensions must be positive")

// World owns the grid dimensions and the walkable matrix.
// Walkability is mutated only while a round is being set up.
type World struct {
	cols, rows int
	tile       geom.Vec
	walkable   []bool
}

// New creates a world of cols×rows tiles covering width×height world units.
// Every cell starts walkable.
func New(cols, rows int, width, height float64) (*World, error) {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells over %gx%g", ErrInvalidDimensions, cols, rows, width, height)
	}
	w := &World{
		cols:     cols,
		rows:     rows,
		tile:     geom.Vec{X: width / float64(cols), Y: height / float64(rows)},
		walkable: make([]bool, cols*rows),
	}
	w.Reset()
	return w, nil
}

// Cols returns the number of columns.
func (w *World) Cols() int { return w.cols }

// Rows returns the number of rows.
func (w *World) Rows() int { return w.rows }

// TileSize returns the extent of one cell in world units.
func (w *World) TileSize() geom.Vec { return w.tile }

// Size returns the extent of the whole arena in world units.
func (w *World) Size() geom.Vec {
	return geom.Vec{X: w.tile.X * float64(w.cols), Y: w.tile.Y * float64(w.rows)}
}

// InBounds reports whether c lies inside the grid.
func (w *World) InBounds(c geom.Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < w.cols && c.Y < w.rows
}

// ID returns the row-major scalar id of c.
func (w *World) ID(c geom.Cell) int { return c.Y*w.cols + c.X }

// CellOf is the inverse of ID.
func (w *World) CellOf(id int) geom.Cell { return geom.Cell{X: id % w.cols, Y: id / w.cols} }

// CellToWorld returns the top-left corner of c.
func (w *World) CellToWorld(c geom.Cell) geom.Vec {
	return geom.Vec{X: float64(c.X) * w.tile.X, Y: float64(c.Y) * w.tile.Y}
}

// CellCenter returns the center of c. Agents steer toward cell centers.
func (w *World) CellCenter(c geom.Cell) geom.Vec {
	return geom.Vec{X: (float64(c.X) + 0.5) * w.tile.X, Y: (float64(c.Y) + 0.5) * w.tile.Y}
}

// WorldToCell maps a position to the cell containing it. No bounds check is
// made; positions left of or above the arena map to negative cells.
func (w *World) WorldToCell(p geom.Vec) geom.Cell {
	return geom.Cell{
		X: int(math.Floor(p.X / w.tile.X)),
		Y: int(math.Floor(p.Y / w.tile.Y)),
	}
}

// IsWalkable reports whether agents may occupy c. Cells outside the grid are
// never walkable.
func (w *World) IsWalkable(c geom.Cell) bool {
	if !w.InBounds(c) {
		return false
	}
	return w.walkable[w.ID(c)]
}

// IsWalkableAt reports whether the cell containing p is walkable.
func (w *World) IsWalkableAt(p geom.Vec) bool {
	return w.IsWalkable(w.WorldToCell(p))
}

// SetWalkable changes the walkability of c. Out-of-bounds cells are ignored.
func (w *World) SetWalkable(c geom.Cell, walkable bool) {
	if !w.InBounds(c) {
		return
	}
	w.walkable[w.ID(c)] = walkable
}

// Reset marks every cell walkable.
func (w *World) Reset() {
	for i := range w.walkable {
		w.walkable[i] = true
	}
}

// WalkableCount returns the number of walkable cells.
func (w *World) WalkableCount() int {
	n := 0
	for _, ok := range w.walkable {
		if ok {
			n++
		}
	}
	return n
}

// Walkable returns a copy of the walkability matrix in row-major order.
func (w *World) Walkable() []bool {
	out := make([]bool, len(w.walkable))
	copy(out, w.walkable)
	return out
}
