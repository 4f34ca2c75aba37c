package fmm

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/internal/fmath"
)

// validateGridSize rejects empty sizes and non-positive elements before
// any buffer is allocated.
func validateGridSize(size []int) error {
	if len(size) == 0 {
		return grid.ErrInvalidDimension
	}
	for _, s := range size {
		if s < 1 {
			return fmt.Errorf("%w: got %v", grid.ErrInvalidGridSize, size)
		}
	}

	return nil
}

// validateSolver checks the solver against the distance grid size: the
// spacing dimensionality must match, and a varying-speed solver's grid
// must share the distance grid's shape.
func validateSolver[T constraints.Float](size []int, solver Solver[T]) error {
	if solver == nil {
		return ErrNilSolver
	}

	if spacing := solver.GridSpacing(); len(spacing) != len(size) {
		return fmt.Errorf("%w: solver spacing has %d dimensions, grid has %d",
			ErrSizeMismatch, len(spacing), len(size))
	}

	if gridded, ok := solver.(speedGridded); ok {
		speedSize := gridded.SpeedGridSize()
		if len(speedSize) != len(size) {
			return fmt.Errorf("%w: speed grid size %v, distance grid size %v",
				ErrSizeMismatch, speedSize, size)
		}
		for i, s := range speedSize {
			if s != size[i] {
				return fmt.Errorf("%w: speed grid size %v, distance grid size %v",
					ErrSizeMismatch, speedSize, size)
			}
		}
	}

	return nil
}

// validateBoundary checks the frozen input against the grid before any
// computation: a non-empty set, matching index/distance counts, in-bounds
// indices of the right dimensionality, admissible distance values,
// pairwise-distinct indices, and at least one non-frozen cell left to
// march. nonNegative additionally rejects negative distances (the
// unsigned variant).
//
// Checks run in the order listed; the first failure aborts.
func validateBoundary[T constraints.Float](size []int, indices [][]int, distances []T, nonNegative bool) error {
	if len(indices) == 0 {
		return ErrEmptyFrozenSet
	}
	if len(indices) != len(distances) {
		return fmt.Errorf("%w: %d frozen indices, %d frozen distances",
			ErrSizeMismatch, len(indices), len(distances))
	}

	dims := len(size)
	strides := grid.Strides(size)
	seen := make(map[int]struct{}, len(indices))

	for i, index := range indices {
		if len(index) != dims {
			return fmt.Errorf("%w: frozen index %v has %d dimensions, grid has %d",
				ErrSizeMismatch, index, len(index), dims)
		}
		if !grid.Inside(index, size) {
			return fmt.Errorf("%w: index %v, grid size %v", ErrIndexOutOfGrid, index, size)
		}

		// ±MaxValue is rejected in both variants: +MaxValue is the far
		// sentinel, and the signed flip would turn −MaxValue into it.
		d := distances[i]
		if fmath.IsNaN(d) || !isFrozen(fmath.Abs(d)) || (nonNegative && d < 0) {
			return fmt.Errorf("%w: got %v at index %v", ErrInvalidFrozenDistance, d, index)
		}

		linear := index[0]
		for k := 1; k < dims; k++ {
			linear += index[k] * strides[k-1]
		}
		if _, dup := seen[linear]; dup {
			return fmt.Errorf("%w: index %v", ErrDuplicateIndex, index)
		}
		seen[linear] = struct{}{}
	}

	// All indices are unique and inside, so a count comparison suffices.
	if len(indices) == grid.LinearSize(size) {
		return ErrWholeGridFrozen
	}

	return nil
}
