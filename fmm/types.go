// Package fmm defines the solver capability and sentinel errors for the
// fmm subpackage of github.com/katalvlaran/fastmarch.
package fmm

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
)

// Sentinel errors returned by the entry points.
var (
	// ErrNilSolver indicates that a nil solver was passed to UnsignedDistance.
	ErrNilSolver = errors.New("fmm: solver is nil")

	// ErrSizeMismatch indicates mismatched sizes between inputs: frozen
	// index and distance counts, index dimensionality, solver spacing
	// dimensionality, or speed grid shape versus the distance grid.
	ErrSizeMismatch = errors.New("fmm: input sizes do not match")

	// ErrEmptyFrozenSet indicates that no frozen cells were supplied.
	ErrEmptyFrozenSet = errors.New("fmm: frozen set is empty")

	// ErrIndexOutOfGrid indicates a frozen index outside the grid.
	ErrIndexOutOfGrid = errors.New("fmm: frozen index outside grid")

	// ErrDuplicateIndex indicates that the same frozen index was supplied twice.
	ErrDuplicateIndex = errors.New("fmm: duplicate frozen index")

	// ErrWholeGridFrozen indicates that the frozen set covers the whole
	// grid, leaving nothing to march.
	ErrWholeGridFrozen = errors.New("fmm: whole grid frozen")

	// ErrInvalidFrozenDistance indicates a frozen distance that is NaN, not
	// below the sentinel maximum in magnitude, or negative where only non-negative
	// distances are allowed.
	ErrInvalidFrozenDistance = errors.New("fmm: invalid frozen distance")

	// ErrUnsupportedTopology indicates an open (non-closed) interface in
	// signed mode: a frozen component with a single dilation band has no
	// inside and cannot be signed.
	ErrUnsupportedTopology = errors.New("fmm: open interface component, topology unsupported")
)

// Solver is the capability consumed by the march: derive the arrival time
// of the cell at index from the frozen cells of distances. All four
// solver variants of package eikonal satisfy it.
//
// Solve is called only for in-bounds, non-frozen indices.
type Solver[T constraints.Float] interface {
	Solve(index []int, distances *grid.Grid[T]) (T, error)
	GridSpacing() []T
}

// speedGridded is implemented by varying-speed solvers; entry-point
// validation uses it to enforce that the speed grid and the distance grid
// share a shape.
type speedGridded interface {
	SpeedGridSize() []int
}
