package game

import (
	"encoding/json"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// Space is the part of the arena agents move through.
type Space interface {
	CellCenter(c geom.Cell) geom.Vec
	WorldToCell(p geom.Vec) geom.Cell
	IsWalkable(c geom.Cell) bool
	IsWalkableAt(p geom.Vec) bool
}

// Role tells the runner apart from the hunters.
type Role int

const (
	RoleRunner Role = iota
	RoleHunter
)

func (r Role) String() string {
	switch r {
	case RoleRunner:
		return "runner"
	case RoleHunter:
		return "hunter"
	default:
		return "none"
	}
}

// MarshalJSON serializes Role as a string.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Agent is the movable part shared by the runner and the hunters.
type Agent struct {
	Position    geom.Vec  `json:"position"`
	Destination geom.Cell `json:"destination"`
	Speed       float64   `json:"speed"`
	// Heading is the last nonzero displacement, kept for display.
	Heading geom.Vec `json:"heading"`
}

// NewAgent places an agent at the center of start, standing still.
func NewAgent(sp Space, start geom.Cell, speed float64) Agent {
	return Agent{
		Position:    sp.CellCenter(start),
		Destination: start,
		Speed:       speed,
	}
}

// Cell returns the grid cell the agent stands on.
func (a *Agent) Cell(sp Space) geom.Cell {
	return sp.WorldToCell(a.Position)
}

// Advance moves the agent at most Speed units toward the center of its
// destination cell. A step that would land on a non-walkable cell is dropped.
// It reports whether the position changed.
func (a *Agent) Advance(sp Space) bool {
	delta := sp.CellCenter(a.Destination).Sub(a.Position).ClampLen(a.Speed)
	if delta.IsZero() {
		return false
	}
	a.Heading = delta

	next := a.Position.Add(delta)
	if !sp.IsWalkableAt(next) {
		return false
	}
	a.Position = next
	return true
}

// Runner is the fleeing agent. Its destination is set from outside.
type Runner struct {
	Agent
}

// NewRunner creates the runner at start.
func NewRunner(sp Space, start geom.Cell, speed float64) *Runner {
	return &Runner{Agent: NewAgent(sp, start, speed)}
}

// Tick advances the runner toward its current destination.
func (r *Runner) Tick(sp Space) bool {
	return r.Advance(sp)
}
