package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ugaemi/huntgrid/internal/geom"
	"github.com/ugaemi/huntgrid/internal/grid"
	"github.com/ugaemi/huntgrid/internal/nav"
)

func newFinder(w *grid.World) *nav.Finder {
	return nav.NewFinder(nav.Build(w))
}

func TestHunterTick_StepsTowardFirstWaypoint(t *testing.T) {
	w := newWorld(t, 5, 1)
	h := NewHunter(Follower, w, geom.C(0, 0), 1.0, newFinder(w))
	ctx := PolicyContext{Runner: geom.C(4, 0), Goal: geom.C(4, 0), Walkable: w}

	start := h.Position
	assert.True(t, h.Tick(ctx, w))
	assert.Equal(t, geom.C(1, 0), h.Destination, "destination is the next waypoint, not the runner")
	assert.InDelta(t, 1.0, h.Position.Sub(start).Len(), 1e-9)
	assert.InDelta(t, 1.0, h.Heading.X, 1e-9)
}

func TestHunterTick_StaysOnDestination(t *testing.T) {
	w := newWorld(t, 5, 5)
	h := NewHunter(Follower, w, geom.C(2, 2), 1.0, newFinder(w))
	ctx := PolicyContext{Runner: geom.C(2, 2), Goal: geom.C(4, 4), Walkable: w}

	start := h.Position
	assert.False(t, h.Tick(ctx, w))
	assert.Equal(t, start, h.Position)
	assert.Equal(t, geom.C(2, 2), h.Destination)
}

func TestHunterTick_UnreachableStaysPut(t *testing.T) {
	w := newWorld(t, 5, 3, geom.C(2, 0), geom.C(2, 1), geom.C(2, 2))
	h := NewHunter(Follower, w, geom.C(0, 1), 1.0, newFinder(w))
	ctx := PolicyContext{Runner: geom.C(4, 1), Goal: geom.C(4, 0), Walkable: w}

	start := h.Position
	for range 5 {
		assert.False(t, h.Tick(ctx, w))
	}
	assert.Equal(t, start, h.Position)
}

func TestHunterTick_RoutesAroundWall(t *testing.T) {
	// Wall on column 2 with a gap at the bottom row.
	w := newWorld(t, 5, 5, geom.C(2, 0), geom.C(2, 1), geom.C(2, 2), geom.C(2, 3))
	h := NewHunter(Follower, w, geom.C(0, 0), 10.0, newFinder(w))
	ctx := PolicyContext{Runner: geom.C(4, 0), Goal: geom.C(4, 4), Walkable: w}

	prev := h.Cell(w)
	for range 20 {
		h.Tick(ctx, w)
		c := h.Cell(w)
		assert.True(t, w.IsWalkable(c))
		assert.LessOrEqual(t, geom.Abs(c.X-prev.X), 1)
		assert.LessOrEqual(t, geom.Abs(c.Y-prev.Y), 1)
		prev = c
	}
	assert.Equal(t, geom.C(4, 0), h.Cell(w))
}
