package game

import "github.com/ugaemi/huntgrid/internal/geom"

// CheckWon returns true if the runner stands on the goal cell.
func CheckWon(runner, goal geom.Cell) bool {
	return runner == goal
}

// CheckLost returns true if any hunter shares the runner's cell.
func CheckLost(runner geom.Cell, hunters []geom.Cell) bool {
	return len(Catchers(runner, hunters)) > 0
}
