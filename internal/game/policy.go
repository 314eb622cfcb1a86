package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// Kind selects a hunter's targeting policy.
type Kind int

const (
	Follower Kind = iota
	Interceptor
	RouteCutter
)

// ErrUnknownKind is returned when decoding a hunter kind name that does not exist.
var ErrUnknownKind = errors.New("game: unknown hunter kind")

// Kinds lists every hunter policy in spawn order.
var Kinds = [...]Kind{Follower, Interceptor, RouteCutter}

func (k Kind) String() string {
	switch k {
	case Follower:
		return "follower"
	case Interceptor:
		return "interceptor"
	case RouteCutter:
		return "route_cutter"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Kind as a string.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON deserializes Kind from a string.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for _, kind := range Kinds {
		if kind.String() == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Walkability answers whether a cell may be occupied.
type Walkability interface {
	IsWalkable(c geom.Cell) bool
}

// PolicyContext is the read-only view of the world a policy decides from.
type PolicyContext struct {
	Runner geom.Cell
	Goal   geom.Cell
	// Partners are the cells of the two other hunters in hunter order.
	// Only meaningful when HasPartners is set.
	Partners    [2]geom.Cell
	HasPartners bool
	Walkable    Walkability
}

// Destination returns the cell a hunter of kind k should head for.
func (k Kind) Destination(ctx PolicyContext) geom.Cell {
	switch k {
	case Interceptor:
		return intercept(ctx)
	case RouteCutter:
		return cutRoute(ctx)
	default:
		return ctx.Runner
	}
}

// intercept aims halfway between the runner and the goal.
func intercept(ctx PolicyContext) geom.Cell {
	mid := geom.C((ctx.Runner.X+ctx.Goal.X)/2, (ctx.Runner.Y+ctx.Goal.Y)/2)
	return WalkToward(mid, ctx.Runner, ctx.Walkable)
}

// cutRoute takes the free corner of the rectangle spanned by the two other
// hunters. Each candidate is scored with one partner's x against the other
// partner's y: (x1,y2) scores |gx-x1|+|gy-y2| and (x2,y1) scores
// |gx-x2|+|gy-y1|. Ties go to (x2,y1).
func cutRoute(ctx PolicyContext) geom.Cell {
	if !ctx.HasPartners {
		return ctx.Runner
	}
	one, two := ctx.Partners[0], ctx.Partners[1]
	g := ctx.Goal

	d1 := geom.Abs(g.X-one.X) + geom.Abs(g.Y-two.Y)
	d2 := geom.Abs(g.X-two.X) + geom.Abs(g.Y-one.Y)

	corner := geom.C(two.X, one.Y)
	if d1 < d2 {
		corner = geom.C(one.X, two.Y)
	}
	return WalkToward(corner, ctx.Runner, ctx.Walkable)
}

// WalkToward moves c one cell at a time toward target until it lands on a
// walkable cell. Each step closes the axis with the larger gap, y on ties.
// The runner's cell is always walkable, so the walk ends at the latest there,
// after at most the Manhattan distance between the two cells.
func WalkToward(c, target geom.Cell, walk Walkability) geom.Cell {
	for c != target && !walk.IsWalkable(c) {
		gx, gy := c.X-target.X, c.Y-target.Y
		if geom.Abs(gx) > geom.Abs(gy) {
			c.X -= geom.Sign(gx)
		} else {
			c.Y -= geom.Sign(gy)
		}
	}
	return c
}
