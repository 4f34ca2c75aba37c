package grid

// BoundingBox returns the per-axis closed extents covering all indices.
// Every index must have the same length.
//
// Returns ErrEmptyIndices if indices is empty.
// Complexity: O(len(indices)·N).
func BoundingBox(indices [][]int) ([]Extent, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyIndices
	}

	bbox := make([]Extent, len(indices[0]))
	for i := range bbox {
		bbox[i] = Extent{Min: indices[0][i], Max: indices[0][i]}
	}
	for _, index := range indices[1:] {
		for i, x := range index {
			if x < bbox[i].Min {
				bbox[i].Min = x
			}
			if x > bbox[i].Max {
				bbox[i].Max = x
			}
		}
	}

	return bbox, nil
}

// HyperVolume returns the number of cells enclosed by bbox, counting both
// endpoints on each axis.
// Complexity: O(N).
func HyperVolume(bbox []Extent) int {
	volume := 1
	for _, e := range bbox {
		volume *= e.Max - e.Min + 1
	}

	return volume
}
