package fmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastmarch/fmm"
)

// TestSignedDistance_Ring is the 5×5 end-to-end scenario: the eight cells
// around (2,2) frozen at 0. The centre is the hole and comes out negative
// (exactly −1/√2 from its four frozen face-neighbours), the ring keeps
// its zeros, and everything beyond the ring is positive.
func TestSignedDistance_Ring(t *testing.T) {
	field, err := fmm.SignedDistance([]int{5, 5}, []float64{1, 1}, 1.0,
		ringIndices(), ringValues(0))
	require.NoError(t, err)

	at := func(x, y int) float64 { return field[x+5*y] }

	require.InDelta(t, -1/math.Sqrt2, at(2, 2), exactDelta)
	for _, index := range ringIndices() {
		require.InDelta(t, 0.0, at(index[0], index[1]), 0, "ring cell %v", index)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				continue // ring or hole
			}
			require.Greater(t, at(x, y), 0.0, "outside cell (%d,%d)", x, y)
		}
	}
}

// TestSignedDistance_OpenRow is the 4×4 scenario: a frozen row has no
// hole, the topology is open, and the call fails.
func TestSignedDistance_OpenRow(t *testing.T) {
	indices := [][]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	field, err := fmm.SignedDistance([]int{4, 4}, []float64{1, 1}, 1.0,
		indices, []float64{0, 0, 0, 0})
	require.ErrorIs(t, err, fmm.ErrUnsupportedTopology)
	require.Nil(t, field)
}

// TestSignedDistance_SingleCellOpen: one frozen cell has a single
// dilation band and is likewise open.
func TestSignedDistance_SingleCellOpen(t *testing.T) {
	_, err := fmm.SignedDistance([]int{5, 5}, []float64{1, 1}, 1.0,
		[][]int{{2, 2}}, []float64{0})
	require.ErrorIs(t, err, fmm.ErrUnsupportedTopology)
}

// TestSignedDistance_PreservesFrozenValues verifies frozen inputs keep
// their exact signed magnitudes through the double march and flip.
func TestSignedDistance_PreservesFrozenValues(t *testing.T) {
	values := ringValues(0.125)
	field, err := fmm.SignedDistance([]int{5, 5}, []float64{1, 1}, 1.0,
		ringIndices(), values)
	require.NoError(t, err)

	for i, index := range ringIndices() {
		require.Equal(t, values[i], field[index[0]+5*index[1]], "ring cell %v", index)
	}
}

// TestSignedDistance_EveryCellFinite verifies both marches together
// freeze the whole grid: no sentinel survives, signs split inside from
// outside.
func TestSignedDistance_EveryCellFinite(t *testing.T) {
	field, err := fmm.SignedDistance([]int{7, 7}, []float64{1, 1}, 1.0,
		offsetRingIndices(3, 3), ringValues(0))
	require.NoError(t, err)

	negative := 0
	for i, d := range field {
		require.Less(t, math.Abs(d), math.MaxFloat64, "cell %d still far", i)
		if d < 0 {
			negative++
		}
	}
	// The only strictly negative cell is the hole at (3,3).
	require.Equal(t, 1, negative)
}

// TestSignedDistance_Shell3D runs the signed pipeline in three
// dimensions: a hollow 3×3×3 shell centred in a 5×5×5 grid. The single
// hole cell solves from six frozen zeros, −1/√3 exactly; the grid
// corners stay outside and positive.
func TestSignedDistance_Shell3D(t *testing.T) {
	var shell [][]int
	var values []float64
	for z := 1; z <= 3; z++ {
		for y := 1; y <= 3; y++ {
			for x := 1; x <= 3; x++ {
				if x == 2 && y == 2 && z == 2 {
					continue
				}
				shell = append(shell, []int{x, y, z})
				values = append(values, 0)
			}
		}
	}

	field, err := fmm.SignedDistance([]int{5, 5, 5}, []float64{1, 1, 1}, 1.0, shell, values)
	require.NoError(t, err)

	at := func(x, y, z int) float64 { return field[x+5*y+25*z] }

	require.InDelta(t, -1/math.Sqrt(3), at(2, 2, 2), exactDelta)
	for _, corner := range [][3]int{{0, 0, 0}, {4, 4, 4}, {0, 4, 0}, {4, 0, 4}} {
		require.Greater(t, at(corner[0], corner[1], corner[2]), 0.0, "corner %v", corner)
	}
}

// TestSignedDistance_TwoComponents places two separate closed rings on
// one grid: both holes come out negative, the shared outside positive.
func TestSignedDistance_TwoComponents(t *testing.T) {
	indices := append(offsetRingIndices(2, 2), offsetRingIndices(8, 8)...)
	values := make([]float64, len(indices))

	field, err := fmm.SignedDistance([]int{11, 11}, []float64{1, 1}, 1.0, indices, values)
	require.NoError(t, err)

	at := func(x, y int) float64 { return field[x+11*y] }

	require.Less(t, at(2, 2), 0.0, "first hole")
	require.Less(t, at(8, 8), 0.0, "second hole")
	require.Greater(t, at(5, 5), 0.0, "between the rings")
	require.Greater(t, at(0, 10), 0.0, "far corner")
}

// offsetRingIndices returns the eight cells surrounding (cx,cy).
func offsetRingIndices(cx, cy int) [][]int {
	var ring [][]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ring = append(ring, []int{cx + dx, cy + dy})
		}
	}

	return ring
}
