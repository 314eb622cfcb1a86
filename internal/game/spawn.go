package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ugaemi/huntgrid/internal/geom"
	"github.com/ugaemi/huntgrid/internal/grid"
)

var (
	ErrNoWalkableCell = errors.New("game: no walkable cell available for placement")
	ErrOutOfBounds    = errors.New("game: cell is outside the arena")
	ErrNotWalkable    = errors.New("game: cell is not walkable")
)

// Rules owns the goal and the placement of everything in a round.
type Rules struct {
	world *grid.World
	rng   *rand.Rand
	goal  geom.Cell
}

// NewRules creates the rules for a new round and places the goal.
func NewRules(w *grid.World, rng *rand.Rand) *Rules {
	r := &Rules{world: w, rng: rng}
	r.PlaceGoal()
	return r
}

// Goal returns the cell the runner must reach.
func (r *Rules) Goal() geom.Cell { return r.goal }

// PlaceGoal puts the goal on a random row of the last column.
func (r *Rules) PlaceGoal() geom.Cell {
	r.goal = geom.C(r.world.Cols()-1, r.rng.Intn(r.world.Rows()))
	return r.goal
}

// RunnerStart returns a random row of the first column.
func (r *Rules) RunnerStart() geom.Cell {
	return geom.C(0, r.rng.Intn(r.world.Rows()))
}

// HunterStart returns a walkable cell near the horizontal center, in a band
// at the top or bottom edge, whichever half the runner is not in.
func (r *Rules) HunterStart(runner geom.Cell) (geom.Cell, error) {
	cols, rows := r.world.Cols(), r.world.Rows()
	minX := cols/2 - cols/8
	bandH := rows/8 + 1
	bottom := runner.Y < rows/2

	toCell := func(x, y int) geom.Cell {
		if bottom {
			y = rows - 1 - y
		}
		return geom.C(x, y)
	}

	c, err := r.sample(func() geom.Cell {
		return toCell(minX+r.rng.Intn(cols/4+1), r.rng.Intn(bandH))
	}, func(yield func(geom.Cell) bool) {
		for y := 0; y < bandH; y++ {
			for x := minX; x <= minX+cols/4; x++ {
				if !yield(toCell(x, y)) {
					return
				}
			}
		}
	})
	if err != nil {
		return geom.Cell{}, fmt.Errorf("hunter start: %w", err)
	}
	return c, nil
}

// sample draws candidates until one is walkable. After maxPlacementAttempts
// misses it scans the whole band in order, so a band without any walkable
// cell fails instead of spinning.
func (r *Rules) sample(draw func() geom.Cell, band func(yield func(geom.Cell) bool)) (geom.Cell, error) {
	for range maxPlacementAttempts {
		if c := draw(); r.world.IsWalkable(c) {
			return c, nil
		}
	}
	for c := range band {
		if r.world.IsWalkable(c) {
			return c, nil
		}
	}
	return geom.Cell{}, ErrNoWalkableCell
}
