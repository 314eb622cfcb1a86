package game

import "github.com/ugaemi/huntgrid/internal/geom"

// Catchers returns the indices of the hunters standing on the runner's cell.
// Capture is a same-tile event, not a distance check.
func Catchers(runner geom.Cell, hunters []geom.Cell) []int {
	var idx []int
	for i, h := range hunters {
		if h == runner {
			idx = append(idx, i)
		}
	}
	return idx
}
