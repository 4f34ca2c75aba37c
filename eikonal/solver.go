package eikonal

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/fastmarch/grid"
	"github.com/katalvlaran/fastmarch/internal/fmath"
)

// NewUniform constructs a first-order solver with the given grid spacing
// and a uniform propagation speed.
//
// Returns ErrInvalidGridSpacing or ErrInvalidSpeed on invalid parameters.
func NewUniform[T constraints.Float](spacing []T, speed T) (*Uniform[T], error) {
	base, err := newUniformBase(spacing, speed)
	if err != nil {
		return nil, err
	}

	return &Uniform[T]{uniformBase: base}, nil
}

// NewHighAccuracyUniform constructs a high-accuracy solver with the given
// grid spacing and a uniform propagation speed.
//
// Returns ErrInvalidGridSpacing or ErrInvalidSpeed on invalid parameters.
func NewHighAccuracyUniform[T constraints.Float](spacing []T, speed T) (*HighAccuracyUniform[T], error) {
	base, err := newUniformBase(spacing, speed)
	if err != nil {
		return nil, err
	}

	return &HighAccuracyUniform[T]{uniformBase: base}, nil
}

// NewVarying constructs a first-order solver whose speed varies per cell.
// speedSize must equal the distance grid size the solver will be used
// with; the speed buffer is borrowed, not copied.
//
// Returns ErrInvalidGridSpacing, ErrSpeedBufferSize, or ErrInvalidSpeed
// (wrapping the offending sample position) on invalid parameters.
func NewVarying[T constraints.Float](spacing []T, speedSize []int, speed []T) (*Varying[T], error) {
	base, err := newVaryingBase(spacing, speedSize, speed)
	if err != nil {
		return nil, err
	}

	return &Varying[T]{varyingBase: base}, nil
}

// NewHighAccuracyVarying constructs a high-accuracy solver whose speed
// varies per cell. speedSize must equal the distance grid size the solver
// will be used with; the speed buffer is borrowed, not copied.
//
// Returns ErrInvalidGridSpacing, ErrSpeedBufferSize, or ErrInvalidSpeed
// (wrapping the offending sample position) on invalid parameters.
func NewHighAccuracyVarying[T constraints.Float](spacing []T, speedSize []int, speed []T) (*HighAccuracyVarying[T], error) {
	base, err := newVaryingBase(spacing, speedSize, speed)
	if err != nil {
		return nil, err
	}

	return &HighAccuracyVarying[T]{varyingBase: base}, nil
}

// Solve returns the arrival time for the cell at index, derived from its
// frozen face-neighbours in distances.
func (s *Uniform[T]) Solve(index []int, distances *grid.Grid[T]) (T, error) {
	return solveCell(index, distances, s.speed, s.invSpacingSq)
}

// Solve returns the arrival time for the cell at index, derived from its
// frozen face-neighbours in distances with second-order stencils where
// available.
func (s *HighAccuracyUniform[T]) Solve(index []int, distances *grid.Grid[T]) (T, error) {
	return solveCellHighAccuracy(index, distances, s.speed, s.spacing, s.invSpacingSq)
}

// Solve returns the arrival time for the cell at index, derived from its
// frozen face-neighbours in distances using the speed sample at index.
func (s *Varying[T]) Solve(index []int, distances *grid.Grid[T]) (T, error) {
	return solveCell(index, distances, s.speed.At(index), s.invSpacingSq)
}

// Solve returns the arrival time for the cell at index, derived from its
// frozen face-neighbours in distances with second-order stencils where
// available, using the speed sample at index.
func (s *HighAccuracyVarying[T]) Solve(index []int, distances *grid.Grid[T]) (T, error) {
	return solveCellHighAccuracy(index, distances, s.speed.At(index), s.spacing, s.invSpacingSq)
}

// newUniformBase validates and assembles the shared state of the two
// uniform-speed variants.
func newUniformBase[T constraints.Float](spacing []T, speed T) (uniformBase[T], error) {
	base, err := newSpacingBase(spacing)
	if err != nil {
		return uniformBase[T]{}, err
	}
	if fmath.IsNaN(speed) || speed <= 0 {
		return uniformBase[T]{}, fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}

	return uniformBase[T]{spacingBase: base, speed: speed}, nil
}

// newVaryingBase validates and assembles the shared state of the two
// varying-speed variants. Every speed sample is checked up front so that
// Solve can assume F > 0 at any queried index.
func newVaryingBase[T constraints.Float](spacing []T, speedSize []int, speed []T) (varyingBase[T], error) {
	base, err := newSpacingBase(spacing)
	if err != nil {
		return varyingBase[T]{}, err
	}

	speedGrid, err := grid.New(speedSize, speed)
	if err != nil {
		return varyingBase[T]{}, fmt.Errorf("%w: %v", ErrSpeedBufferSize, err)
	}
	for i, f := range speed {
		if fmath.IsNaN(f) || f <= 0 {
			return varyingBase[T]{}, fmt.Errorf("%w: sample %d is %v", ErrInvalidSpeed, i, f)
		}
	}

	return varyingBase[T]{spacingBase: base, speed: speedGrid}, nil
}

// newSpacingBase validates the grid spacing and caches 1/dxₖ².
func newSpacingBase[T constraints.Float](spacing []T) (spacingBase[T], error) {
	if len(spacing) == 0 {
		return spacingBase[T]{}, fmt.Errorf("%w: spacing is empty", ErrInvalidGridSpacing)
	}
	for _, dx := range spacing {
		if fmath.IsNaN(dx) || dx <= 0 {
			return spacingBase[T]{}, fmt.Errorf("%w: got %v", ErrInvalidGridSpacing, spacing)
		}
	}

	owned := make([]T, len(spacing))
	copy(owned, spacing)
	invSq := make([]T, len(spacing))
	for i, dx := range owned {
		invSq[i] = 1 / (dx * dx)
	}

	return spacingBase[T]{spacing: owned, invSpacingSq: invSq}, nil
}

// solveCell assembles and solves the first-order upwind quadratic for the
// cell at index. Axes without a frozen neighbour contribute nothing.
func solveCell[T constraints.Float](index []int, distances *grid.Grid[T], speed T, invSpacingSq []T) (T, error) {
	size := distances.Size()
	dims := len(size)
	neighbor := make([]int, dims)

	// q[0] + q[1]·t + q[2]·t² = 0, seeded with the speed term.
	q := [3]T{-1 / (speed * speed), 0, 0}

	for i := 0; i < dims; i++ {
		// Smallest frozen neighbour along axis i, both directions.
		// Non-frozen cells hold the sentinel maximum and never qualify.
		minDistance := fmath.MaxValue[T]()
		for _, dir := range [2]int{+1, -1} {
			copy(neighbor, index)
			neighbor[i] += dir
			if grid.Inside(neighbor, size) {
				if d := distances.At(neighbor); d < minDistance {
					minDistance = d
				}
			}
		}

		if minDistance < fmath.MaxValue[T]() {
			a := invSpacingSq[i]
			q[0] += minDistance * minDistance * a
			q[1] += -2 * minDistance * a
			q[2] += a
		}
	}

	return solveQuadratic(q)
}

// solveCellHighAccuracy assembles and solves the upwind quadratic with
// second-order stencils: where the neighbour two cells further in the
// upwind direction is frozen with an arrival time no larger than the
// adjacent neighbour's, the axis uses the effective value
// t̃ = (4m − m⁽²⁾)/3 with coefficient 9/(4·dx²); otherwise the axis falls
// back to the first-order term.
func solveCellHighAccuracy[T constraints.Float](index []int, distances *grid.Grid[T], speed T, spacing, invSpacingSq []T) (T, error) {
	size := distances.Size()
	dims := len(size)
	neighbor := make([]int, dims)
	neighbor2 := make([]int, dims)

	q := [3]T{-1 / (speed * speed), 0, 0}

	for i := 0; i < dims; i++ {
		minDistance := fmath.MaxValue[T]()
		minDistance2 := fmath.MaxValue[T]()
		for _, dir := range [2]int{+1, -1} {
			copy(neighbor, index)
			neighbor[i] += dir
			if !grid.Inside(neighbor, size) {
				continue
			}
			d := distances.At(neighbor)
			if d < minDistance {
				minDistance = d
				// A two-step value found on the other side belongs to the
				// adjacent neighbour just replaced; drop it.
				minDistance2 = fmath.MaxValue[T]()

				// The two-step neighbour qualifies only with an arrival
				// time no larger than the adjacent one; upwind data must
				// not increase toward the target.
				copy(neighbor2, neighbor)
				neighbor2[i] += dir
				if grid.Inside(neighbor2, size) {
					if d2 := distances.At(neighbor2); d2 <= d {
						minDistance2 = d2
					}
				}
			}
		}

		if minDistance < fmath.MaxValue[T]() {
			if minDistance2 < fmath.MaxValue[T]() {
				alpha := 9 / (4 * spacing[i] * spacing[i])
				t := (4*minDistance - minDistance2) / 3
				q[0] += t * t * alpha
				q[1] += -2 * t * alpha
				q[2] += alpha
			} else {
				a := invSpacingSq[i]
				q[0] += minDistance * minDistance * a
				q[1] += -2 * minDistance * a
				q[2] += a
			}
		}
	}

	return solveQuadratic(q)
}

// solveQuadratic returns the larger real root of
// q[0] + q[1]·x + q[2]·x² = 0.
//
// Returns ErrNoRealRoot if the discriminant is negative or the larger
// root is negative; either means the upwind configuration admits no
// arrival time.
func solveQuadratic[T constraints.Float](q [3]T) (T, error) {
	discriminant := q[1]*q[1] - 4*q[2]*q[0]
	if discriminant < 0 {
		return 0, fmt.Errorf("%w: negative discriminant %v", ErrNoRealRoot, discriminant)
	}

	root := (-q[1] + fmath.Sqrt(discriminant)) / (2 * q[2])
	if root < 0 {
		return 0, fmt.Errorf("%w: negative root %v", ErrNoRealRoot, root)
	}

	return root, nil
}
