package fmm

import "github.com/katalvlaran/fastmarch/grid"

// Label-grid cell states for connectivity analysis.
const (
	labelBackground uint8 = iota
	labelForeground
	labelLabelled
)

// connectedComponents partitions indices into groups that are mutually
// reachable via chains of steps from offsets. Indices must be in-bounds
// and pairwise distinct within a grid of the given size.
//
// A label grid is painted foreground for the index set; each
// still-foreground index starts a new component that is collected by a
// depth-first flood fill over an explicit stack, promoting reached
// foreground cells to labelled.
//
// Time: O(M + len(indices)·len(offsets)) for M grid cells.
func connectedComponents(indices [][]int, size []int, offsets [][]int) ([][][]int, error) {
	if len(indices) == 0 {
		return nil, nil
	}

	labels, err := grid.New(size, make([]uint8, grid.LinearSize(size)))
	if err != nil {
		return nil, err
	}
	for _, index := range indices {
		labels.Set(index, labelForeground)
	}

	dims := len(size)
	var components [][][]int
	neighbor := make([]int, dims)

	for _, index := range indices {
		if labels.At(index) != labelForeground {
			continue // already part of an earlier component
		}

		labels.Set(index, labelLabelled)
		component := [][]int{index}
		stack := [][]int{index}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, offset := range offsets {
				for i := 0; i < dims; i++ {
					neighbor[i] = top[i] + offset[i]
				}
				if grid.Inside(neighbor, size) && labels.At(neighbor) == labelForeground {
					labels.Set(neighbor, labelLabelled)
					owned := make([]int, dims)
					copy(owned, neighbor)
					component = append(component, owned)
					stack = append(stack, owned)
				}
			}
		}
		components = append(components, component)
	}

	return components, nil
}

// dilationBands surrounds the index set with its vertex-dilated shell and
// splits the shell into face-connected bands.
//
// The dilation works in a grid padded by one cell on every side so that
// indices on the boundary of the original grid dilate outward; bands are
// translated back into the original frame afterwards, dropping cells that
// fall outside. A closed index set yields one outer band plus one band
// per hole; an open set yields a single band.
func dilationBands(indices [][]int, size []int) ([][][]int, error) {
	if len(indices) == 0 {
		return nil, nil
	}

	dims := len(size)
	padded := make([]int, dims)
	for i, s := range size {
		padded[i] = s + 2
	}

	dilation, err := grid.New(padded, make([]uint8, grid.LinearSize(padded)))
	if err != nil {
		return nil, err
	}

	// Foreground in padded coordinates.
	shifted := make([]int, dims)
	for _, index := range indices {
		for i, x := range index {
			shifted[i] = x + 1
		}
		dilation.Set(shifted, labelForeground)
	}

	// Dilate: every background vertex-neighbour of a foreground cell
	// becomes part of the shell. Padding guarantees the neighbours are
	// in-bounds of the padded grid.
	vertexOffsets, err := grid.VertexNeighborOffsets(dims)
	if err != nil {
		return nil, err
	}
	var dilated [][]int
	neighbor := make([]int, dims)
	for _, index := range indices {
		for _, offset := range vertexOffsets {
			for i, x := range index {
				neighbor[i] = x + 1 + offset[i]
			}
			if dilation.At(neighbor) == labelBackground {
				dilation.Set(neighbor, labelLabelled)
				owned := make([]int, dims)
				copy(owned, neighbor)
				dilated = append(dilated, owned)
			}
		}
	}

	// Split the shell into face-connected bands.
	faceOffsets, err := grid.FaceNeighborOffsets(dims)
	if err != nil {
		return nil, err
	}
	components, err := connectedComponents(dilated, padded, faceOffsets)
	if err != nil {
		return nil, err
	}

	// Translate back, dropping cells outside the original grid.
	var bands [][][]int
	for _, component := range components {
		var band [][]int
		for _, index := range component {
			translated := make([]int, dims)
			inside := true
			for i, x := range index {
				translated[i] = x - 1
				if translated[i] < 0 || translated[i] >= size[i] {
					inside = false
				}
			}
			if inside {
				band = append(band, translated)
			}
		}
		if len(band) > 0 {
			bands = append(bands, band)
		}
	}

	return bands, nil
}
