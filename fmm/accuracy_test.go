package fmm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fastmarch/eikonal"
	"github.com/katalvlaran/fastmarch/fmm"
)

// diskSeed freezes every cell within the given radius of the centre of
// an n×n grid at its exact Euclidean distance, so that the march starts
// from an accurate band instead of a single singular point.
func diskSeed(n int, radius float64) (indices [][]int, distances []float64) {
	c := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			r := math.Hypot(float64(x-c), float64(y-c))
			if r <= radius {
				indices = append(indices, []int{x, y})
				distances = append(distances, r)
			}
		}
	}

	return indices, distances
}

// euclideanErrors marches the given solver over an n×n grid seeded with
// the exact disk and returns per-cell absolute errors against Euclidean
// distance from the centre.
func euclideanErrors(t *testing.T, n int, solver fmm.Solver[float64]) []float64 {
	t.Helper()

	indices, distances := diskSeed(n, 2.5)
	field, err := fmm.UnsignedDistance([]int{n, n}, indices, distances, solver)
	require.NoError(t, err)

	c := n / 2
	errs := make([]float64, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			want := math.Hypot(float64(x-c), float64(y-c))
			errs = append(errs, math.Abs(field[x+n*y]-want))
		}
	}

	return errs
}

// TestAccuracy_FirstOrderBound: with an exact initial band the
// first-order field stays within a small multiple of dx of Euclidean
// distance over the whole grid.
func TestAccuracy_FirstOrderBound(t *testing.T) {
	solver, err := eikonal.NewUniform([]float64{1, 1}, 1.0)
	require.NoError(t, err)

	errs := euclideanErrors(t, 21, solver)
	require.Less(t, floats.Max(errs), 1.0, "max error")
	require.Less(t, stat.Mean(errs, nil), 0.4, "mean error")
}

// TestAccuracy_HighAccuracyImproves: the high-accuracy solver does not
// do worse than first order in the mean, and keeps the same hard bound.
func TestAccuracy_HighAccuracyImproves(t *testing.T) {
	first, err := eikonal.NewUniform([]float64{1, 1}, 1.0)
	require.NoError(t, err)
	high, err := eikonal.NewHighAccuracyUniform([]float64{1, 1}, 1.0)
	require.NoError(t, err)

	firstErrs := euclideanErrors(t, 21, first)
	highErrs := euclideanErrors(t, 21, high)

	require.Less(t, floats.Max(highErrs), 1.0, "max error")
	require.LessOrEqual(t, stat.Mean(highErrs, nil), stat.Mean(firstErrs, nil)+0.01,
		"high-accuracy mean error above first-order")
}

// TestAccuracy_UniformSpeedScalesField: with F = 2 every arrival time is
// half the F = 1 value.
func TestAccuracy_UniformSpeedScalesField(t *testing.T) {
	slow, err := eikonal.NewUniform([]float64{1, 1}, 1.0)
	require.NoError(t, err)
	fast, err := eikonal.NewUniform([]float64{1, 1}, 2.0)
	require.NoError(t, err)

	fieldSlow, err := fmm.UnsignedDistance([]int{9, 9}, [][]int{{4, 4}}, []float64{0}, slow)
	require.NoError(t, err)
	fieldFast, err := fmm.UnsignedDistance([]int{9, 9}, [][]int{{4, 4}}, []float64{0}, fast)
	require.NoError(t, err)

	for i := range fieldSlow {
		require.InDelta(t, fieldSlow[i]/2, fieldFast[i], 1e-9, "cell %d", i)
	}
}

// TestAccuracy_GradientMagnitude: away from the seed disk the discrete
// gradient magnitude of the computed field approaches 1, the defining
// property of a distance field with F = 1.
func TestAccuracy_GradientMagnitude(t *testing.T) {
	const n = 31
	solver, err := eikonal.NewUniform([]float64{1, 1}, 1.0)
	require.NoError(t, err)

	indices, distances := diskSeed(n, 2.5)
	field, err := fmm.UnsignedDistance([]int{n, n}, indices, distances, solver)
	require.NoError(t, err)

	at := func(x, y int) float64 { return field[x+n*y] }
	c := n / 2

	var magnitudes []float64
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			if math.Hypot(float64(x-c), float64(y-c)) < 4 {
				continue // skip the seeded disk and its rim
			}
			gx := (at(x+1, y) - at(x-1, y)) / 2
			gy := (at(x, y+1) - at(x, y-1)) / 2
			magnitudes = append(magnitudes, math.Hypot(gx, gy))
		}
	}

	require.NotEmpty(t, magnitudes)
	require.InDelta(t, 1.0, stat.Mean(magnitudes, nil), 0.1)
}
