package round

import (
	"github.com/google/uuid"

	"github.com/ugaemi/huntgrid/internal/game"
	"github.com/ugaemi/huntgrid/internal/geom"
)

// Snapshot is a read-only copy of a round at one tick.
type Snapshot struct {
	Session  uuid.UUID       `json:"session"`
	Round    uuid.UUID       `json:"round"`
	Tick     int             `json:"tick"`
	State    game.RoundState `json:"state"`
	Goal     geom.Cell       `json:"goal"`
	Cols     int             `json:"cols"`
	Rows     int             `json:"rows"`
	TileSize geom.Vec        `json:"tile_size"`
	Walkable []bool          `json:"walkable"`
	Agents   []AgentView     `json:"agents"`
}

// AgentView is one agent in a Snapshot. The runner comes first, then the
// hunters in update order.
type AgentView struct {
	Role     game.Role `json:"role"`
	Kind     string    `json:"kind,omitempty"`
	Position geom.Vec  `json:"position"`
	Cell     geom.Cell `json:"cell"`
	Heading  geom.Vec  `json:"heading"`
}

// Runner returns the runner's view.
func (s Snapshot) Runner() AgentView { return s.Agents[0] }

// Hunters returns the hunters' views.
func (s Snapshot) Hunters() []AgentView { return s.Agents[1:] }

// snapshot must be called with s.mu held.
func (s *Session) snapshot() Snapshot {
	sim := s.sim
	w := sim.World

	agents := make([]AgentView, 0, 1+len(sim.Hunters))
	agents = append(agents, AgentView{
		Role:     game.RoleRunner,
		Position: sim.Runner.Position,
		Cell:     sim.Runner.Cell(w),
		Heading:  sim.Runner.Heading,
	})
	for _, h := range sim.Hunters {
		agents = append(agents, AgentView{
			Role:     game.RoleHunter,
			Kind:     h.Kind.String(),
			Position: h.Position,
			Cell:     h.Cell(w),
			Heading:  h.Heading,
		})
	}

	return Snapshot{
		Session:  s.ID,
		Round:    s.roundID,
		Tick:     s.tick,
		State:    s.state,
		Goal:     sim.Goal,
		Cols:     w.Cols(),
		Rows:     w.Rows(),
		TileSize: w.TileSize(),
		Walkable: w.Walkable(),
		Agents:   agents,
	}
}
