// Package geom holds the integer grid cell and real-valued vector types shared
// by the arena, the navigation graph and the agents.
package geom

import (
	"fmt"
	"math"
)

// Cell is a discrete grid location (column, row).
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell { return Cell{X: x, Y: y} }

// Add returns c+o.
func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

// Sub returns c-o.
func (c Cell) Sub(o Cell) Cell { return Cell{X: c.X - o.X, Y: c.Y - o.Y} }

// Scale returns c multiplied by k.
func (c Cell) Scale(k int) Cell { return Cell{X: c.X * k, Y: c.Y * k} }

// Len returns the Euclidean magnitude of c.
func (c Cell) Len() float64 { return math.Hypot(float64(c.X), float64(c.Y)) }

// Manhattan returns |dx|+|dy| between c and o.
func (c Cell) Manhattan(o Cell) int { return Abs(c.X-o.X) + Abs(c.Y-o.Y) }

// Adjacent reports whether o is one of the eight neighbours of c.
func (c Cell) Adjacent(o Cell) bool {
	dx, dy := Abs(c.X-o.X), Abs(c.Y-o.Y)
	return dx <= 1 && dy <= 1 && dx+dy > 0
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
