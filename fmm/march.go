package fmm

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/internal/fmath"
)

// isFrozen reports whether a cell value is final. Far cells hold the
// sentinel maximum of T; anything strictly below it is frozen.
func isFrozen[T constraints.Float](d T) bool {
	return d < fmath.MaxValue[T]()
}

// march drains the narrow band: pop the smallest tentative arrival time,
// discard it if the cell froze earlier (stale duplicate), otherwise
// freeze the cell and relax its face-neighbours. On return every cell
// reachable from the band is frozen, in non-decreasing arrival-time
// order.
func march[T constraints.Float](solver Solver[T], band *narrowBand[T], distances *grid.Grid[T]) error {
	for !band.empty() {
		distance, index := band.pop()

		// Multiple tentative entries per cell are allowed; only the first
		// pop freezes. Skipping this check would overwrite final values.
		if isFrozen(distances.At(index)) {
			continue
		}

		distances.Set(index, distance)
		if err := updateNeighbors(index, solver, distances, band); err != nil {
			return err
		}
	}

	return nil
}

// updateNeighbors solves for each in-bounds, non-frozen face-neighbour of
// index and pushes the result into the band. Distances are not written to
// the grid here; the cell freezes only when popped.
func updateNeighbors[T constraints.Float](index []int, solver Solver[T], distances *grid.Grid[T], band *narrowBand[T]) error {
	size := distances.Size()
	dims := len(size)
	neighbor := make([]int, dims)

	for i := 0; i < dims; i++ {
		for _, dir := range [2]int{-1, +1} {
			copy(neighbor, index)
			neighbor[i] += dir

			if !grid.Inside(neighbor, size) || isFrozen(distances.At(neighbor)) {
				continue
			}

			distance, err := solver.Solve(neighbor, distances)
			if err != nil {
				return err
			}
			owned := make([]int, dims)
			copy(owned, neighbor)
			band.push(distance, owned)
		}
	}

	return nil
}
