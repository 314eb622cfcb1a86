package game

import (
	"fmt"
	"math/rand"

	"github.com/ugaemi/huntgrid/internal/geom"
	"github.com/ugaemi/huntgrid/internal/grid"
	"github.com/ugaemi/huntgrid/internal/nav"
)

// HunterSpec describes one hunter to spawn.
type HunterSpec struct {
	Kind  Kind
	Start geom.Cell
	Speed float64
}

// Layout is a fully specified round: the world's walkability must already
// reflect the obstacles.
type Layout struct {
	Goal        geom.Cell
	Obstacles   []geom.Cell
	RunnerStart geom.Cell
	RunnerSpeed float64
	Hunters     []HunterSpec
}

// Simulation holds one round's world, navigation graph and agents and
// advances them one tick at a time. It is not safe for concurrent use.
type Simulation struct {
	World     *grid.World
	Graph     *nav.Graph
	Finder    *nav.Finder
	Goal      geom.Cell
	Obstacles []geom.Cell
	Runner    *Runner
	Hunters   []*Hunter
}

// NewSimulation builds the navigation graph for w and spawns the agents of l.
func NewSimulation(w *grid.World, l Layout) (*Simulation, error) {
	if !w.IsWalkable(l.Goal) {
		return nil, fmt.Errorf("goal %v: %w", l.Goal, ErrNoWalkableCell)
	}
	if !w.IsWalkable(l.RunnerStart) {
		return nil, fmt.Errorf("runner start %v: %w", l.RunnerStart, ErrNoWalkableCell)
	}

	g := nav.Build(w)
	s := &Simulation{
		World:     w,
		Graph:     g,
		Finder:    nav.NewFinder(g),
		Goal:      l.Goal,
		Obstacles: l.Obstacles,
		Runner:    NewRunner(w, l.RunnerStart, l.RunnerSpeed),
		Hunters:   make([]*Hunter, 0, len(l.Hunters)),
	}
	for _, spec := range l.Hunters {
		if !w.IsWalkable(spec.Start) {
			return nil, fmt.Errorf("%s start %v: %w", spec.Kind, spec.Start, ErrNoWalkableCell)
		}
		s.Hunters = append(s.Hunters, NewHunter(spec.Kind, w, spec.Start, spec.Speed, s.Finder))
	}
	return s, nil
}

// NewRound resets w and generates a random round: goal, obstacles, runner,
// then one hunter of each kind.
func NewRound(w *grid.World, settings Settings, rng *rand.Rand) (*Simulation, error) {
	w.Reset()
	rules := NewRules(w, rng)

	obstacles, err := rules.PlaceObstacles(settings.Obstacles)
	if err != nil {
		return nil, err
	}

	l := Layout{
		Goal:        rules.Goal(),
		Obstacles:   obstacles,
		RunnerStart: rules.RunnerStart(),
		RunnerSpeed: settings.Speeds.Runner,
	}
	for _, kind := range Kinds {
		start, err := rules.HunterStart(l.RunnerStart)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		l.Hunters = append(l.Hunters, HunterSpec{Kind: kind, Start: start, Speed: settings.Speeds.For(kind)})
	}

	return NewSimulation(w, l)
}

// RunnerCell returns the runner's current cell.
func (s *Simulation) RunnerCell() geom.Cell {
	return s.Runner.Cell(s.World)
}

// HunterCells returns every hunter's current cell in hunter order.
func (s *Simulation) HunterCells() []geom.Cell {
	cells := make([]geom.Cell, len(s.Hunters))
	for i, h := range s.Hunters {
		cells[i] = h.Cell(s.World)
	}
	return cells
}

// Step advances the round by one tick: the runner moves, the win is checked,
// then each hunter decides and moves in order and the loss is checked.
// Hunters see the runner's new position and the positions hunters earlier in
// the order have just moved to.
func (s *Simulation) Step() Outcome {
	s.Runner.Tick(s.World)
	if CheckWon(s.RunnerCell(), s.Goal) {
		return OutcomeEscaped
	}

	for i, h := range s.Hunters {
		h.Tick(s.policyContext(i), s.World)
	}

	if CheckLost(s.RunnerCell(), s.HunterCells()) {
		return OutcomeCaught
	}
	return OutcomeNone
}

// policyContext builds the view hunter i decides from. Partners are the other
// hunters in order, with hunter i left out.
func (s *Simulation) policyContext(i int) PolicyContext {
	ctx := PolicyContext{
		Runner:   s.RunnerCell(),
		Goal:     s.Goal,
		Walkable: s.World,
	}

	n := 0
	for j, h := range s.Hunters {
		if j == i {
			continue
		}
		if n == len(ctx.Partners) {
			break
		}
		ctx.Partners[n] = h.Cell(s.World)
		n++
	}
	ctx.HasPartners = n == len(ctx.Partners)
	return ctx
}

// SetRunnerDestination points the runner at c. It fails without changing
// anything when c is outside the arena or blocked.
func (s *Simulation) SetRunnerDestination(c geom.Cell) error {
	if !s.World.InBounds(c) {
		return fmt.Errorf("destination %v: %w", c, ErrOutOfBounds)
	}
	if !s.World.IsWalkable(c) {
		return fmt.Errorf("destination %v: %w", c, ErrNotWalkable)
	}
	s.Runner.Destination = c
	return nil
}

// NextRunnerWaypoint returns the first step of the cheapest path from the
// runner to the goal, or false when the runner is on the goal or cut off.
func (s *Simulation) NextRunnerWaypoint() (geom.Cell, bool) {
	from := s.RunnerCell()
	if from == s.Goal {
		return geom.Cell{}, false
	}
	next, ok := s.Finder.SearchCells(from, s.Goal).Next()
	if !ok {
		return geom.Cell{}, false
	}
	return s.Graph.CellOf(next), true
}
