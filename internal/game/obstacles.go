package game

import (
	"fmt"

	"github.com/ugaemi/huntgrid/internal/geom"
)

// PlaceObstacle blocks a random walkable cell outside the first and last
// columns and returns it. Keeping those columns clear leaves the runner start
// and the goal reachable by construction.
func (r *Rules) PlaceObstacle() (geom.Cell, error) {
	cols, rows := r.world.Cols(), r.world.Rows()
	if cols < 3 {
		return geom.Cell{}, fmt.Errorf("obstacle: %d columns leave no interior: %w", cols, ErrNoWalkableCell)
	}

	c, err := r.sample(func() geom.Cell {
		return geom.C(r.rng.Intn(cols-2)+1, r.rng.Intn(rows))
	}, func(yield func(geom.Cell) bool) {
		for y := 0; y < rows; y++ {
			for x := 1; x < cols-1; x++ {
				if !yield(geom.C(x, y)) {
					return
				}
			}
		}
	})
	if err != nil {
		return geom.Cell{}, fmt.Errorf("obstacle: %w", err)
	}

	r.world.SetWalkable(c, false)
	return c, nil
}

// PlaceObstacles places n obstacles, each on its own cell.
func (r *Rules) PlaceObstacles(n int) ([]geom.Cell, error) {
	placed := make([]geom.Cell, 0, n)
	for i := 0; i < n; i++ {
		c, err := r.PlaceObstacle()
		if err != nil {
			return placed, fmt.Errorf("placing obstacle %d of %d: %w", i+1, n, err)
		}
		placed = append(placed, c)
	}
	return placed, nil
}
