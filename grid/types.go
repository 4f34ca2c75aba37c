// Package grid defines the view types and sentinel errors for the
// grid subpackage of github.com/katalvlaran/fastmarch.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidGridSize indicates a grid size with a zero or negative element.
	ErrInvalidGridSize = errors.New("grid: size elements must be positive")
	// ErrCellBufferSize indicates a cell buffer whose length does not match
	// the linear size of the grid.
	ErrCellBufferSize = errors.New("grid: cell buffer length does not match grid size")
	// ErrInvalidDimension indicates a dimensionality below one.
	ErrInvalidDimension = errors.New("grid: dimensionality must be at least one")
	// ErrEmptyIndices indicates a bounding box was requested for an empty index set.
	ErrEmptyIndices = errors.New("grid: cannot compute bounding box of no indices")
)

// Extent is a closed integer interval [Min, Max] along one axis.
type Extent struct {
	Min, Max int
}

// Grid is a strided N-dimensional view over a borrowed flat cell buffer.
// The zero value is not usable; construct with New. The view holds the
// buffer by reference and must not outlive it.
type Grid[T any] struct {
	size    []int
	strides []int
	cells   []T
}
