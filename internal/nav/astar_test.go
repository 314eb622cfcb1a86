package nav

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// requireConnectedPath checks that consecutive path cells are graph neighbours
// and that the reported cost matches the sum of edge costs.
func requireConnectedPath(t *testing.T, g *Graph, r Result) {
	t.Helper()
	total := 0.0
	for i := 1; i < len(r.Nodes); i++ {
		cost, ok := g.Cost(r.Nodes[i-1], r.Nodes[i])
		require.True(t, ok, "step %d is not an edge", i)
		total += cost
	}
	assert.InDelta(t, total, r.Cost, 1e-9)
}

func TestSearch_StraightLine(t *testing.T) {
	g := Build(newWorld(t, 6, 3))
	f := NewFinder(g)

	r := f.SearchCells(geom.C(0, 1), geom.C(5, 1))
	require.True(t, r.Reachable())
	assert.Equal(t, []geom.Cell{
		geom.C(0, 1), geom.C(1, 1), geom.C(2, 1), geom.C(3, 1), geom.C(4, 1), geom.C(5, 1),
	}, cellsOf(r, g))
	assert.InDelta(t, 5.0, r.Cost, 1e-9)
}

func TestSearch_OptimalDetour(t *testing.T) {
	// 5x5 with a wall at x=2, rows 2..4. The open-field answer from (1,1) to
	// (3,3) is two diagonals through (2,2); with the wall the best route is
	// four orthogonal steps around its top.
	open := NewFinder(Build(newWorld(t, 5, 5)))
	r := open.SearchCells(geom.C(1, 1), geom.C(3, 3))
	require.True(t, r.Reachable())
	assert.InDelta(t, 2*math.Sqrt2, r.Cost, 1e-9)

	g := Build(newWorld(t, 5, 5, geom.C(2, 2), geom.C(2, 3), geom.C(2, 4)))
	f := NewFinder(g)
	r = f.SearchCells(geom.C(1, 1), geom.C(3, 3))
	require.True(t, r.Reachable())
	assert.InDelta(t, 4.0, r.Cost, 1e-9)
	assert.Equal(t, geom.C(1, 1), cellsOf(r, g)[0])
	assert.Equal(t, geom.C(3, 3), cellsOf(r, g)[len(r.Nodes)-1])
	requireConnectedPath(t, g, r)
	for _, c := range cellsOf(r, g) {
		assert.False(t, c.X == 2 && c.Y >= 2, "path enters the wall at %v", c)
	}
}

func TestSearch_Unreachable(t *testing.T) {
	wall := []geom.Cell{geom.C(2, 0), geom.C(2, 1), geom.C(2, 2), geom.C(2, 3)}
	g := Build(newWorld(t, 5, 4, wall...))
	f := NewFinder(g)

	tests := []struct {
		name     string
		from, to geom.Cell
	}{
		{"across a full wall", geom.C(0, 0), geom.C(4, 3)},
		{"into the wall", geom.C(0, 0), geom.C(2, 1)},
		{"from the wall", geom.C(2, 1), geom.C(0, 0)},
		{"out of bounds", geom.C(0, 0), geom.C(9, 9)},
		{"negative cell", geom.C(-1, 0), geom.C(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := f.SearchCells(tt.from, tt.to)
			assert.Equal(t, Unreachable, r.Status)
			assert.Empty(t, r.Nodes)
			_, ok := r.Next()
			assert.False(t, ok)
		})
	}

	// a failed search leaves the finder usable
	r := f.SearchCells(geom.C(0, 0), geom.C(1, 3))
	assert.True(t, r.Reachable())
}

func TestSearch_SameEndpoints(t *testing.T) {
	g := Build(newWorld(t, 3, 3))
	r := NewFinder(g).SearchCells(geom.C(1, 1), geom.C(1, 1))

	assert.True(t, r.Reachable())
	assert.Len(t, r.Nodes, 1)
	_, ok := r.Next()
	assert.False(t, ok, "a single-node path has no waypoint")
}

func TestSearch_NextWaypoint(t *testing.T) {
	g := Build(newWorld(t, 4, 4))
	r := NewFinder(g).SearchCells(geom.C(0, 0), geom.C(3, 3))

	next, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, geom.C(1, 1), g.CellOf(next))
	assert.InDelta(t, 3*math.Sqrt2, r.Cost, 1e-9)
}

func TestSearch_Deterministic(t *testing.T) {
	blocked := []geom.Cell{geom.C(3, 1), geom.C(3, 2), geom.C(3, 3), geom.C(5, 5), geom.C(6, 2)}
	g := Build(newWorld(t, 9, 7, blocked...))

	first := NewFinder(g).SearchCells(geom.C(0, 3), geom.C(8, 3))
	require.True(t, first.Reachable())
	requireConnectedPath(t, g, first)

	reused := NewFinder(g)
	for i := 0; i < 5; i++ {
		reused.SearchCells(geom.C(8, 6), geom.C(0, 0))
		again := reused.SearchCells(geom.C(0, 3), geom.C(8, 3))
		assert.Equal(t, first.Nodes, again.Nodes)
		assert.Equal(t, first.Cost, again.Cost)
	}
}

func TestSearch_MatchesDijkstraCost(t *testing.T) {
	blocked := []geom.Cell{
		geom.C(1, 1), geom.C(2, 1), geom.C(3, 1), geom.C(3, 2), geom.C(3, 3),
		geom.C(5, 0), geom.C(5, 1), geom.C(5, 2), geom.C(5, 4), geom.C(6, 4),
	}
	g := Build(newWorld(t, 8, 6, blocked...))
	f := NewFinder(g)
	start, _ := g.NodeAt(geom.C(0, 0))
	dist := dijkstra(g, start)

	for id := 0; id < g.Size(); id++ {
		if !g.HasNode(id) || id == start {
			continue
		}
		r := f.Search(start, id)
		if math.IsInf(dist[id], 1) {
			assert.False(t, r.Reachable())
			continue
		}
		require.True(t, r.Reachable(), "node %v", g.CellOf(id))
		assert.InDelta(t, dist[id], r.Cost, 1e-9, "node %v", g.CellOf(id))
	}
}

// dijkstra is a quadratic reference implementation used to check optimality.
func dijkstra(g *Graph, start int) []float64 {
	dist := make([]float64, g.Size())
	done := make([]bool, g.Size())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for {
		u := -1
		for i := range dist {
			if !done[i] && !math.IsInf(dist[i], 1) && (u == -1 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u == -1 {
			return dist
		}
		done[u] = true
		for _, e := range g.Neighbors(u) {
			if d := dist[u] + e.Cost; d < dist[e.To] {
				dist[e.To] = d
			}
		}
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "unreachable", Unreachable.String())
	assert.Equal(t, "unknown", Status(9).String())
}

// cellsOf converts a path to grid cells.
func cellsOf(r Result, g *Graph) []geom.Cell {
	cells := make([]geom.Cell, len(r.Nodes))
	for i, id := range r.Nodes {
		cells[i] = g.CellOf(id)
	}
	return cells
}
