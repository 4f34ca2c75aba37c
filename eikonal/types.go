// Package eikonal defines solver types and sentinel errors for the
// eikonal subpackage of github.com/katalvlaran/fastmarch.
package eikonal

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
)

// Sentinel errors returned by solver construction and Solve.
var (
	// ErrInvalidGridSpacing indicates a grid spacing that is empty, or has an
	// element that is zero, negative or NaN.
	ErrInvalidGridSpacing = errors.New("eikonal: grid spacing elements must be positive")

	// ErrInvalidSpeed indicates a propagation speed that is zero, negative or NaN.
	ErrInvalidSpeed = errors.New("eikonal: speed must be positive")

	// ErrSpeedBufferSize indicates a speed buffer whose length does not match
	// the linear size of the speed grid.
	ErrSpeedBufferSize = errors.New("eikonal: speed buffer length does not match grid size")

	// ErrNoRealRoot indicates that the upwind quadratic has no admissible
	// solution: the discriminant is negative or the larger root is negative.
	// This means the frozen neighbour data is inconsistent (ill-posed
	// boundary values) and the computation cannot continue.
	ErrNoRealRoot = errors.New("eikonal: quadratic has no non-negative real root")
)

// spacingBase carries the grid spacing shared by every solver variant.
// invSpacingSq caches 1/dxₖ², the aₖ coefficients of the quadratic.
type spacingBase[T constraints.Float] struct {
	spacing      []T
	invSpacingSq []T
}

// GridSpacing returns a copy of the solver's grid spacing.
func (b *spacingBase[T]) GridSpacing() []T {
	spacing := make([]T, len(b.spacing))
	copy(spacing, b.spacing)

	return spacing
}

// uniformBase carries the single speed scalar of the uniform variants.
type uniformBase[T constraints.Float] struct {
	spacingBase[T]
	speed T
}

// Speed returns the uniform propagation speed, guaranteed positive and
// non-NaN by construction.
func (b *uniformBase[T]) Speed() T {
	return b.speed
}

// varyingBase carries the speed grid of the varying variants. The speed
// buffer is borrowed, not copied; it must outlive the solver.
type varyingBase[T constraints.Float] struct {
	spacingBase[T]
	speed *grid.Grid[T]
}

// SpeedAt returns the propagation speed at index, guaranteed positive and
// non-NaN by construction. No range checking; callers pre-validate.
func (b *varyingBase[T]) SpeedAt(index []int) T {
	return b.speed.At(index)
}

// SpeedGridSize returns the size of the speed grid. Used by entry-point
// validation to enforce that speed and distance grids share a shape.
func (b *varyingBase[T]) SpeedGridSize() []int {
	return b.speed.Size()
}

// Uniform solves the first-order upwind quadratic with uniform speed.
type Uniform[T constraints.Float] struct {
	uniformBase[T]
}

// HighAccuracyUniform solves the second-order upwind quadratic with
// uniform speed, falling back to first order per axis where no qualifying
// second neighbour exists.
type HighAccuracyUniform[T constraints.Float] struct {
	uniformBase[T]
}

// Varying solves the first-order upwind quadratic with a per-cell speed
// read from a grid of the same shape as the distance grid.
type Varying[T constraints.Float] struct {
	varyingBase[T]
}

// HighAccuracyVarying solves the second-order upwind quadratic with a
// per-cell speed read from a grid of the same shape as the distance grid.
type HighAccuracyVarying[T constraints.Float] struct {
	varyingBase[T]
}
