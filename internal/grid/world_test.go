package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/huntgrid/internal/geom"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(32, 24, 640, 480)
	require.NoError(t, err)
	return w
}

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		cols, rows    int
		width, height float64
	}{
		{"zero cols", 0, 10, 100, 100},
		{"negative rows", 10, -1, 100, 100},
		{"zero width", 10, 10, 0, 100},
		{"negative height", 10, 10, 100, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols, tt.rows, tt.width, tt.height)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestNew_AllWalkable(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, 32*24, w.WalkableCount())
	assert.Equal(t, geom.Vec{X: 20, Y: 20}, w.TileSize())
	assert.Equal(t, geom.Vec{X: 640, Y: 480}, w.Size())
}

func TestCoordinateMapping(t *testing.T) {
	w := newTestWorld(t)

	tests := []struct {
		name       string
		cell       geom.Cell
		wantCorner geom.Vec
		wantCenter geom.Vec
	}{
		{"origin", geom.C(0, 0), geom.Vec{X: 0, Y: 0}, geom.Vec{X: 10, Y: 10}},
		{"interior", geom.C(3, 2), geom.Vec{X: 60, Y: 40}, geom.Vec{X: 70, Y: 50}},
		{"last cell", geom.C(31, 23), geom.Vec{X: 620, Y: 460}, geom.Vec{X: 630, Y: 470}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCorner, w.CellToWorld(tt.cell))
			assert.Equal(t, tt.wantCenter, w.CellCenter(tt.cell))
			assert.Equal(t, tt.cell, w.WorldToCell(tt.wantCorner))
			assert.Equal(t, tt.cell, w.WorldToCell(tt.wantCenter))
		})
	}
}

func TestWorldToCell_NegativeFloors(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, geom.C(-1, 0), w.WorldToCell(geom.Vec{X: -0.5, Y: 3}))
	assert.False(t, w.IsWalkableAt(geom.Vec{X: -0.5, Y: 3}))
}

func TestIDRoundTrip(t *testing.T) {
	w := newTestWorld(t)
	for _, c := range []geom.Cell{geom.C(0, 0), geom.C(31, 0), geom.C(0, 1), geom.C(17, 9)} {
		assert.Equal(t, c, w.CellOf(w.ID(c)))
	}
	assert.Equal(t, 1*32+5, w.ID(geom.C(5, 1)))
}

func TestWalkability(t *testing.T) {
	w := newTestWorld(t)
	c := geom.C(4, 5)

	w.SetWalkable(c, false)
	assert.False(t, w.IsWalkable(c))
	assert.False(t, w.IsWalkableAt(w.CellCenter(c)))
	assert.Equal(t, 32*24-1, w.WalkableCount())

	w.SetWalkable(geom.C(-1, 100), false) // ignored
	assert.Equal(t, 32*24-1, w.WalkableCount())

	assert.False(t, w.IsWalkable(geom.C(32, 0)), "out of bounds is never walkable")

	snapshot := w.Walkable()
	w.Reset()
	assert.True(t, w.IsWalkable(c))
	assert.False(t, snapshot[w.ID(c)], "Walkable returns a copy")
}
