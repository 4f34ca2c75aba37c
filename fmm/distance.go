package fmm

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/eikonal"
	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/internal/fmath"
)

// UnsignedDistance computes non-negative arrival times for every cell of
// a grid of the given size, starting from frozen cells with prescribed
// non-negative distances and propagating with the supplied solver.
//
// The returned buffer is dense, laid out first axis fastest, and owned by
// the caller. Frozen input cells keep their exact prescribed values.
//
// Preconditions and validation (in order):
//  1. size must be non-empty (grid.ErrInvalidDimension) with positive
//     elements (grid.ErrInvalidGridSize).
//  2. solver must be non-nil and dimensioned like size; a varying-speed
//     solver's grid must share size's shape (ErrNilSolver, ErrSizeMismatch).
//  3. The frozen set must be non-empty, consistent, in-bounds, duplicate
//     free, with finite non-negative distances, and smaller than the grid
//     (ErrEmptyFrozenSet, ErrSizeMismatch, ErrIndexOutOfGrid,
//     ErrInvalidFrozenDistance, ErrDuplicateIndex, ErrWholeGridFrozen).
//
// A solve failure (eikonal.ErrNoRealRoot) aborts the computation and no
// buffer is returned.
//
// Complexity: O(M log M) time, O(M) memory, for M grid cells.
func UnsignedDistance[T constraints.Float](size []int, frozenIndices [][]int, frozenDistances []T, solver Solver[T]) ([]T, error) {
	// 1) Validate the grid shape before touching anything else.
	if err := validateGridSize(size); err != nil {
		return nil, err
	}

	// 2) Validate the solver against the grid shape.
	if err := validateSolver(size, solver); err != nil {
		return nil, err
	}

	// 3) Validate the frozen set; distances must be non-negative here.
	if err := validateBoundary(size, frozenIndices, frozenDistances, true); err != nil {
		return nil, err
	}

	// 4) Allocate the distance buffer filled with the far sentinel and
	//    view it as a grid.
	buffer := newSentinelBuffer[T](grid.LinearSize(size))
	distances, err := grid.New(size, buffer)
	if err != nil {
		return nil, err
	}

	// 5) Write the boundary condition with multiplier +1.
	setBoundaryCondition(frozenIndices, frozenDistances, T(1), distances)

	// 6) Seed the narrow band from the frozen cells' face-neighbours.
	band, err := initialUnsignedNarrowBand(frozenIndices, distances, solver)
	if err != nil {
		return nil, err
	}

	// 7) March until every cell is frozen.
	if err = march(solver, band, distances); err != nil {
		return nil, err
	}

	return buffer, nil
}

// SignedDistance computes signed arrival times for every cell of a grid
// of the given size: negative inside the closed interface described by
// the frozen cells, positive outside. dx is the grid spacing and speed
// the uniform propagation speed; propagation uses the first-order
// uniform-speed solver.
//
// Frozen input cells keep their exact prescribed signed values. The
// interface must be closed: every vertex-connected component of the
// frozen set needs at least one hole to march into, otherwise
// ErrUnsupportedTopology is returned.
//
// Preconditions and validation (in order):
//  1. size must be non-empty (grid.ErrInvalidDimension) with positive
//     elements, and at least two-dimensional (grid.ErrInvalidGridSize).
//  2. dx and speed must be admissible (eikonal.ErrInvalidGridSpacing,
//     eikonal.ErrInvalidSpeed) and dx dimensioned like size
//     (ErrSizeMismatch).
//  3. The frozen set must be non-empty, consistent, in-bounds, duplicate
//     free, with finite (possibly negative) distances, and smaller than
//     the grid.
//
// The pipeline marches the inside first, negates every finite cell —
// restoring the frozen inputs' original signs and making inside cells
// negative — and only then seeds and marches the outside. The two marches
// share the distance buffer, so this order is load-bearing.
//
// Complexity: O(M log M) time, O(M) memory, for M grid cells.
func SignedDistance[T constraints.Float](size []int, dx []T, speed T, frozenIndices [][]int, frozenDistances []T) ([]T, error) {
	// 1) Validate the grid shape; signing needs a topology, so one
	//    dimension is not enough.
	if err := validateGridSize(size); err != nil {
		return nil, err
	}
	if len(size) < 2 {
		return nil, fmt.Errorf("%w: signed distance requires at least two dimensions, got %d",
			grid.ErrInvalidGridSize, len(size))
	}

	// 2) Build the solver; its constructor validates dx and speed.
	solver, err := eikonal.NewUniform(dx, speed)
	if err != nil {
		return nil, err
	}
	if err = validateSolver[T](size, solver); err != nil {
		return nil, err
	}

	// 3) Validate the frozen set; negative distances are welcome here.
	if err = validateBoundary(size, frozenIndices, frozenDistances, false); err != nil {
		return nil, err
	}

	// 4) Allocate the sentinel-filled buffer and write the boundary
	//    condition flipped (multiplier −1): the inside march runs on
	//    negated values so that the interface's inward distances are the
	//    small non-negative ones.
	buffer := newSentinelBuffer[T](grid.LinearSize(size))
	distances, err := grid.New(size, buffer)
	if err != nil {
		return nil, err
	}
	setBoundaryCondition(frozenIndices, frozenDistances, T(-1), distances)

	// 5) Topology analysis: split the interface's surroundings into
	//    inside and outside seed cells.
	insideSeeds, outsideSeeds, err := initialSignedSeeds(frozenIndices, size)
	if err != nil {
		return nil, err
	}

	// 6) March the inside.
	band := newNarrowBand[T]()
	if err = seedNarrowBand(insideSeeds, distances, solver, band); err != nil {
		return nil, err
	}
	if err = march(solver, band, distances); err != nil {
		return nil, err
	}

	// 7) Negate every finite cell: frozen inputs revert to their original
	//    signs, marched inside cells become negative. Far cells (the
	//    outside) still hold the sentinel and are untouched.
	for i, d := range buffer {
		if d < fmath.MaxValue[T]() {
			buffer[i] = -d
		}
	}

	// 8) March the outside on the same buffer. Seeding after the flip is
	//    what keeps outside arrival times positive.
	band = newNarrowBand[T]()
	if err = seedNarrowBand(outsideSeeds, distances, solver, band); err != nil {
		return nil, err
	}
	if err = march(solver, band, distances); err != nil {
		return nil, err
	}

	return buffer, nil
}

// newSentinelBuffer allocates a distance buffer with every cell far.
func newSentinelBuffer[T constraints.Float](n int) []T {
	buffer := make([]T, n)
	sentinel := fmath.MaxValue[T]()
	for i := range buffer {
		buffer[i] = sentinel
	}

	return buffer
}

// setBoundaryCondition writes multiplier·distance into each frozen cell.
// Inputs are pre-validated; this only mutates the grid.
func setBoundaryCondition[T constraints.Float](indices [][]int, distances []T, multiplier T, dst *grid.Grid[T]) {
	for i, index := range indices {
		dst.Set(index, multiplier*distances[i])
	}
}
