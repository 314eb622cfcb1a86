// Package nav builds the navigation graph of an arena and searches it with A*.
package nav

import (
	"math"
	"sort"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// Walkability is the view of the arena the graph builder needs.
type Walkability interface {
	Cols() int
	Rows() int
	IsWalkable(c geom.Cell) bool
}

// Edge is one directed half of an undirected move between two cells.
type Edge struct {
	To   int
	Cost float64
}

type offset struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

// forwardOffsets are the neighbours a row-major sweep links to. The reverse
// direction of each edge is added at the same time, so every undirected edge
// is produced exactly once.
var forwardOffsets = [...]offset{
	{dx: 1, dy: -1, cost: math.Sqrt2, diagonal: true}, // upper right
	{dx: 1, dy: 0, cost: 1},                           // right
	{dx: 1, dy: 1, cost: math.Sqrt2, diagonal: true},  // lower right
	{dx: 0, dy: 1, cost: 1},                           // below
}

// Graph holds the walkable cells of an arena and the legal moves between them.
// Node ids are row-major cell ids (y*cols + x).
type Graph struct {
	cols, rows int
	nodes      []bool
	edges      [][]Edge
	edgeCount  int
}

// Build creates the navigation graph for the current walkability of w.
func Build(w Walkability) *Graph {
	cols, rows := w.Cols(), w.Rows()
	g := &Graph{
		cols:  cols,
		rows:  rows,
		nodes: make([]bool, cols*rows),
		edges: make([][]Edge, cols*rows),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			from := geom.C(x, y)
			if !w.IsWalkable(from) {
				continue
			}
			g.nodes[g.ID(from)] = true

			for _, o := range forwardOffsets {
				to := geom.C(x+o.dx, y+o.dy)
				if !w.IsWalkable(to) {
					continue
				}
				// No corner cutting: both cells flanking a diagonal must be open.
				if o.diagonal && (!w.IsWalkable(geom.C(x+o.dx, y)) || !w.IsWalkable(geom.C(x, y+o.dy))) {
					continue
				}
				g.link(g.ID(from), g.ID(to), o.cost)
			}
		}
	}

	for _, adj := range g.edges {
		sort.Slice(adj, func(i, j int) bool { return adj[i].To < adj[j].To })
	}
	return g
}

// ID returns the row-major node id of c. It does not check bounds.
func (g *Graph) ID(c geom.Cell) int { return c.Y*g.cols + c.X }

func (g *Graph) link(a, b int, cost float64) {
	g.edges[a] = append(g.edges[a], Edge{To: b, Cost: cost})
	g.edges[b] = append(g.edges[b], Edge{To: a, Cost: cost})
	g.edgeCount++
}

// Cols returns the grid width the graph was built for.
func (g *Graph) Cols() int { return g.cols }

// Rows returns the grid height the graph was built for.
func (g *Graph) Rows() int { return g.rows }

// Size returns the number of cell ids, walkable or not.
func (g *Graph) Size() int { return len(g.nodes) }

// HasNode reports whether id is a walkable cell of the graph.
func (g *Graph) HasNode(id int) bool {
	return id >= 0 && id < len(g.nodes) && g.nodes[id]
}

// NodeCount returns the number of walkable cells.
func (g *Graph) NodeCount() int {
	n := 0
	for _, ok := range g.nodes {
		if ok {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Neighbors returns the edges leaving id, sorted by destination id.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id int) []Edge {
	if !g.HasNode(id) {
		return nil
	}
	return g.edges[id]
}

// Cost returns the cost of the edge a→b and whether it exists.
func (g *Graph) Cost(a, b int) (float64, bool) {
	for _, e := range g.Neighbors(a) {
		if e.To == b {
			return e.Cost, true
		}
	}
	return 0, false
}

// CellOf converts a node id back to its grid cell.
func (g *Graph) CellOf(id int) geom.Cell { return geom.C(id%g.cols, id/g.cols) }

// NodeAt returns the node id of c and whether c is a walkable in-bounds cell.
func (g *Graph) NodeAt(c geom.Cell) (int, bool) {
	if c.X < 0 || c.Y < 0 || c.X >= g.cols || c.Y >= g.rows {
		return -1, false
	}
	id := g.ID(c)
	return id, g.nodes[id]
}
