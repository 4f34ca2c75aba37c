package grid

// FaceNeighborOffsets returns the 2N offset vectors of the cells sharing
// a face with a given cell: each vector has a single ±1 coordinate and
// zeros elsewhere. Offsets for the same axis are adjacent in the result,
// +1 before −1.
//
// Returns ErrInvalidDimension if dims < 1.
// Complexity: O(N²).
func FaceNeighborOffsets(dims int) ([][]int, error) {
	if dims < 1 {
		return nil, ErrInvalidDimension
	}

	offsets := make([][]int, 2*dims)
	for i := 0; i < dims; i++ {
		pos := make([]int, dims)
		neg := make([]int, dims)
		pos[i] = +1
		neg[i] = -1
		offsets[2*i+0] = pos
		offsets[2*i+1] = neg
	}

	return offsets, nil
}

// VertexNeighborOffsets returns the 3^N−1 non-zero offset vectors with
// every coordinate in {−1, 0, +1}: all cells sharing at least a vertex
// with a given cell.
//
// Returns ErrInvalidDimension if dims < 1.
// Complexity: O(N·3^N).
func VertexNeighborOffsets(dims int) ([][]int, error) {
	if dims < 1 {
		return nil, ErrInvalidDimension
	}

	size := make([]int, dims)
	for i := range size {
		size[i] = 3
	}
	it, err := NewIndexIterator(size)
	if err != nil {
		return nil, err
	}

	offsets := make([][]int, 0, pow(3, dims)-1)
	for ok := true; ok; ok = it.Next() {
		offset := it.Index()
		zero := true
		for i := range offset {
			offset[i]--
			if offset[i] != 0 {
				zero = false
			}
		}
		if !zero {
			offsets = append(offsets, offset)
		}
	}

	return offsets, nil
}

// pow returns base^exponent for small non-negative integer exponents.
func pow(base, exponent int) int {
	p := 1
	for i := 0; i < exponent; i++ {
		p *= base
	}

	return p
}
