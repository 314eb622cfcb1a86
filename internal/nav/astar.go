package nav

import (
	"container/heap"
	"math"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// Status tells whether a search reached its target.
type Status int

const (
	Found Status = iota
	Unreachable
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Result is the outcome of one path query.
type Result struct {
	Status Status
	Nodes  []int   // from..to inclusive, empty when unreachable
	Cost   float64 // sum of edge costs along Nodes
}

// Reachable reports whether a path was found.
func (r Result) Reachable() bool { return r.Status == Found }

// Next returns the waypoint after the start node. It is false when the target
// is unreachable or the path has a single node.
func (r Result) Next() (int, bool) {
	if r.Status != Found || len(r.Nodes) < 2 {
		return -1, false
	}
	return r.Nodes[1], true
}

var unreachable = Result{Status: Unreachable}

// searchNode is an entry of the open set.
type searchNode struct {
	id    int
	f     float64
	index int // heap index, -1 once popped
}

// openSet orders by f-score, breaking ties on the lower node id so that a
// fixed graph and query always expand in the same order.
type openSet []*searchNode

func (h openSet) Len() int { return len(h) }
func (h openSet) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].id < h[j].id
}
func (h openSet) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openSet) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *openSet) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// Finder runs A* over a Graph. Scratch buffers are reused between searches,
// so a Finder must not be shared between goroutines.
type Finder struct {
	graph *Graph

	open     openSet
	gScore   []float64
	cameFrom []int
	closed   []bool
	entries  []*searchNode
}

// NewFinder creates a path finder over g.
func NewFinder(g *Graph) *Finder {
	n := g.Size()
	return &Finder{
		graph:    g,
		open:     make(openSet, 0, 64),
		gScore:   make([]float64, n),
		cameFrom: make([]int, n),
		closed:   make([]bool, n),
		entries:  make([]*searchNode, n),
	}
}

// Graph returns the graph being searched.
func (f *Finder) Graph() *Graph { return f.graph }

// SearchCells is Search over grid cells.
func (f *Finder) SearchCells(from, to geom.Cell) Result {
	a, ok := f.graph.NodeAt(from)
	if !ok {
		return unreachable
	}
	b, ok := f.graph.NodeAt(to)
	if !ok {
		return unreachable
	}
	return f.Search(a, b)
}

// Search returns the cheapest path from one node to another. Callers are
// expected to handle from == to themselves; it yields a single-node path.
func (f *Finder) Search(from, to int) Result {
	g := f.graph
	if !g.HasNode(from) || !g.HasNode(to) {
		return unreachable
	}
	if from == to {
		return Result{Status: Found, Nodes: []int{from}}
	}

	f.reset()
	goal := g.CellOf(to)

	f.gScore[from] = 0
	f.push(from, f.heuristic(from, goal))

	for f.open.Len() > 0 {
		current := heap.Pop(&f.open).(*searchNode)
		if current.id == to {
			return f.reconstruct(from, to)
		}
		f.closed[current.id] = true

		for _, e := range g.Neighbors(current.id) {
			if f.closed[e.To] {
				continue
			}
			tentative := f.gScore[current.id] + e.Cost
			if tentative >= f.gScore[e.To] {
				continue
			}
			f.cameFrom[e.To] = current.id
			f.gScore[e.To] = tentative
			score := tentative + f.heuristic(e.To, goal)

			if entry := f.entries[e.To]; entry != nil && entry.index >= 0 {
				entry.f = score
				heap.Fix(&f.open, entry.index)
				continue
			}
			f.push(e.To, score)
		}
	}

	return unreachable
}

func (f *Finder) reset() {
	f.open = f.open[:0]
	for i := range f.gScore {
		f.gScore[i] = math.Inf(1)
		f.cameFrom[i] = -1
		f.closed[i] = false
		f.entries[i] = nil
	}
}

func (f *Finder) push(id int, score float64) {
	n := &searchNode{id: id, f: score}
	f.entries[id] = n
	heap.Push(&f.open, n)
}

// heuristic is the Euclidean distance in grid units, which never
// overestimates with unit orthogonal and √2 diagonal costs.
func (f *Finder) heuristic(id int, goal geom.Cell) float64 {
	return f.graph.CellOf(id).Sub(goal).Len()
}

func (f *Finder) reconstruct(from, to int) Result {
	var nodes []int
	for id := to; id != -1; id = f.cameFrom[id] {
		nodes = append(nodes, id)
		if id == from {
			break
		}
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return Result{Status: Found, Nodes: nodes, Cost: f.gScore[to]}
}
