package grid

import "fmt"

// LinearSize returns the product of the elements of size, i.e. the number
// of cells in a grid of that size. Elements < 1 make the result
// meaningless; validate with New or Inside first.
// Complexity: O(N).
func LinearSize(size []int) int {
	n := 1
	for _, s := range size {
		n *= s
	}

	return n
}

// Strides returns the multipliers that map an N-dimensional index to a
// linear index with the first axis fastest: strides[0] = s₁,
// strides[1] = s₁·s₂, and so on. The returned slice has length N−1; the
// first axis always has an implicit stride of one.
// Complexity: O(N).
func Strides(size []int) []int {
	strides := make([]int, len(size)-1)
	stride := 1
	for i := 1; i < len(size); i++ {
		stride *= size[i-1]
		strides[i-1] = stride
	}

	return strides
}

// Inside reports whether index lies within a grid of the given size.
// Index and size must have the same length.
// Complexity: O(N).
func Inside(index, size []int) bool {
	for i, x := range index {
		if x < 0 || x >= size[i] {
			return false
		}
	}

	return true
}

// New constructs a strided view of cells as an N-dimensional grid of the
// given size. It deep-copies size to keep the view immutable, but borrows
// cells: mutations through Set are visible in the caller's buffer.
//
// Returns ErrInvalidGridSize if any size element is < 1, ErrInvalidDimension
// if size is empty, and ErrCellBufferSize if len(cells) ≠ LinearSize(size).
// Complexity: O(N).
func New[T any](size []int, cells []T) (*Grid[T], error) {
	if len(size) == 0 {
		return nil, ErrInvalidDimension
	}
	for _, s := range size {
		if s < 1 {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidGridSize, size)
		}
	}
	if LinearSize(size) != len(cells) {
		return nil, fmt.Errorf("%w: size %v needs %d cells, buffer has %d",
			ErrCellBufferSize, size, LinearSize(size), len(cells))
	}

	owned := make([]int, len(size))
	copy(owned, size)

	return &Grid[T]{
		size:    owned,
		strides: Strides(owned),
		cells:   cells,
	}, nil
}

// Size returns the grid size. The slice is owned by the view; callers
// must not modify it.
func (g *Grid[T]) Size() []int {
	return g.size
}

// Dims returns the dimensionality N of the grid.
func (g *Grid[T]) Dims() int {
	return len(g.size)
}

// Len returns the number of cells in the grid.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Linear maps an N-dimensional index to its position in the flat buffer.
// No range checking; callers pre-validate with Inside.
// Complexity: O(N).
func (g *Grid[T]) Linear(index []int) int {
	k := index[0]
	for i := 1; i < len(index); i++ {
		k += index[i] * g.strides[i-1]
	}

	return k
}

// At returns the cell value at index. No range checking.
func (g *Grid[T]) At(index []int) T {
	return g.cells[g.Linear(index)]
}

// Set writes v into the cell at index. No range checking.
func (g *Grid[T]) Set(index []int, v T) {
	g.cells[g.Linear(index)] = v
}
