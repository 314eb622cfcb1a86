package game

import (
	"github.com/ugaemi/huntgrid/internal/geom"
	"github.com/ugaemi/huntgrid/internal/nav"
)

// Hunter is a pursuing agent. Every tick it picks a destination with its
// policy, plans a fresh path there and steps toward the first waypoint.
type Hunter struct {
	Agent
	Kind Kind `json:"kind"`

	finder *nav.Finder
}

// NewHunter creates a hunter of the given kind at start. The finder is shared
// by all hunters of a round.
func NewHunter(kind Kind, sp Space, start geom.Cell, speed float64, finder *nav.Finder) *Hunter {
	return &Hunter{
		Agent:  NewAgent(sp, start, speed),
		Kind:   kind,
		finder: finder,
	}
}

// Tick runs one decision and movement step. A hunter that is already on its
// destination, or cannot reach it, stays put. It reports whether it moved.
func (h *Hunter) Tick(ctx PolicyContext, sp Space) bool {
	h.Destination = h.Kind.Destination(ctx)

	from := h.Cell(sp)
	if from == h.Destination {
		return false
	}

	path := h.finder.SearchCells(from, h.Destination)
	next, ok := path.Next()
	if !ok {
		return false
	}

	h.Destination = h.finder.Graph().CellOf(next)
	return h.Advance(sp)
}
