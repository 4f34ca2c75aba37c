package grid

// IndexIterator enumerates every index of a grid size in row-major order,
// last axis fastest. The iterator starts positioned on the all-zero index.
//
// Typical use:
//
//	it, _ := NewIndexIterator(size)
//	for ok := true; ok; ok = it.Next() {
//	    visit(it.Index())
//	}
type IndexIterator struct {
	size  []int
	index []int
}

// NewIndexIterator returns an iterator over all indices of size.
// Returns ErrInvalidGridSize if any size element is < 1, or
// ErrInvalidDimension if size is empty.
func NewIndexIterator(size []int) (*IndexIterator, error) {
	if len(size) == 0 {
		return nil, ErrInvalidDimension
	}
	for _, s := range size {
		if s < 1 {
			return nil, ErrInvalidGridSize
		}
	}

	owned := make([]int, len(size))
	copy(owned, size)

	return &IndexIterator{
		size:  owned,
		index: make([]int, len(size)),
	}, nil
}

// Index returns a copy of the current index.
func (it *IndexIterator) Index() []int {
	index := make([]int, len(it.index))
	copy(index, it.index)

	return index
}

// Next advances to the following index, incrementing the last axis first
// and carrying into earlier axes. It returns false once all indices have
// been visited.
// Complexity: amortized O(1), worst case O(N) on a carry.
func (it *IndexIterator) Next() bool {
	for i := len(it.index) - 1; i >= 0; i-- {
		if it.index[i] < it.size[i]-1 {
			it.index[i]++

			return true
		}
		it.index[i] = 0
	}

	return false
}
