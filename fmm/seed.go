package fmm

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
)

// Seed-grid cell states used while building initial narrow bands.
const (
	seedBackground uint8 = iota
	seedFrozen
	seedNarrow
)

// initialUnsignedNarrowBand builds the initial narrow band for the
// unsigned march: every in-bounds, non-frozen face-neighbour of a frozen
// cell receives a tentative arrival time from the solver. A seed label
// grid deduplicates cells that neighbour several frozen cells, so each
// enters the band exactly once.
func initialUnsignedNarrowBand[T constraints.Float](frozenIndices [][]int, distances *grid.Grid[T], solver Solver[T]) (*narrowBand[T], error) {
	size := distances.Size()
	dims := len(size)

	seeds, err := grid.New(size, make([]uint8, distances.Len()))
	if err != nil {
		return nil, err
	}

	band := newNarrowBand[T]()
	neighbor := make([]int, dims)
	for _, frozenIndex := range frozenIndices {
		for i := 0; i < dims; i++ {
			for _, dir := range [2]int{-1, +1} {
				copy(neighbor, frozenIndex)
				neighbor[i] += dir

				if !grid.Inside(neighbor, size) {
					continue
				}
				if isFrozen(distances.At(neighbor)) || seeds.At(neighbor) != seedBackground {
					continue
				}

				distance, err := solver.Solve(neighbor, distances)
				if err != nil {
					return nil, err
				}
				owned := make([]int, dims)
				copy(owned, neighbor)
				band.push(distance, owned)
				seeds.Set(neighbor, seedNarrow)
			}
		}
	}

	return band, nil
}

// initialSignedSeeds splits the neighbourhood of the frozen set into
// inside and outside narrow-band seed cells.
//
// Frozen cells are grouped into components under vertex connectivity;
// each component's dilation bands are ordered by descending bounding-box
// hyper-volume, making the first band the outer one and the rest inner
// (holes). A component with a single band has no hole — the interface is
// open and signing is impossible.
//
// A dilation cell becomes a seed only if it has at least one frozen
// face-neighbour; the rest of the band is reached by the march itself.
// Outer bands of distinct components may overlap, so the shared seed grid
// admits each cell once; inner bands are disjoint by construction.
func initialSignedSeeds(frozenIndices [][]int, size []int) (inside, outside [][]int, err error) {
	vertexOffsets, err := grid.VertexNeighborOffsets(len(size))
	if err != nil {
		return nil, nil, err
	}
	components, err := connectedComponents(frozenIndices, size, vertexOffsets)
	if err != nil {
		return nil, nil, err
	}

	seeds, err := grid.New(size, make([]uint8, grid.LinearSize(size)))
	if err != nil {
		return nil, nil, err
	}
	for _, frozenIndex := range frozenIndices {
		seeds.Set(frozenIndex, seedFrozen)
	}

	for _, component := range components {
		bands, err := dilationBands(component, size)
		if err != nil {
			return nil, nil, err
		}
		if len(bands) == 1 {
			return nil, nil, fmt.Errorf("%w: component of %d cells has a single dilation band",
				ErrUnsupportedTopology, len(component))
		}

		// Descending bounding-box hyper-volume: the outer band first.
		volumes := make([]int, len(bands))
		for i, band := range bands {
			bbox, err := grid.BoundingBox(band)
			if err != nil {
				return nil, nil, err
			}
			volumes[i] = grid.HyperVolume(bbox)
		}
		order := make([]int, len(bands))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return volumes[order[i]] > volumes[order[j]]
		})

		outside = promoteSeeds(bands[order[0]], seeds, outside)
		for _, k := range order[1:] {
			inside = promoteSeeds(bands[k], seeds, inside)
		}
	}

	return inside, outside, nil
}

// promoteSeeds appends to dst every band cell that is still background
// and face-adjacent to a frozen cell, marking it narrow-band in seeds.
func promoteSeeds(band [][]int, seeds *grid.Grid[uint8], dst [][]int) [][]int {
	size := seeds.Size()
	dims := len(size)
	neighbor := make([]int, dims)

	for _, index := range band {
		if seeds.At(index) != seedBackground {
			continue // frozen, or already promoted via an overlapping band
		}

		promoted := false
		for i := 0; i < dims && !promoted; i++ {
			for _, dir := range [2]int{-1, +1} {
				copy(neighbor, index)
				neighbor[i] += dir
				if grid.Inside(neighbor, size) && seeds.At(neighbor) == seedFrozen {
					seeds.Set(index, seedNarrow)
					dst = append(dst, index)
					promoted = true

					break
				}
			}
		}
	}

	return dst
}

// seedNarrowBand pushes a tentative arrival time for every seed index.
// Seeds are guaranteed non-frozen by construction.
func seedNarrowBand[T constraints.Float](seedIndices [][]int, distances *grid.Grid[T], solver Solver[T], band *narrowBand[T]) error {
	for _, index := range seedIndices {
		distance, err := solver.Solve(index, distances)
		if err != nil {
			return err
		}
		band.push(distance, index)
	}

	return nil
}
