// Package eikonal implements the per-cell solvers of the fast marching
// method: given a target cell and a distance grid whose frozen cells
// carry final arrival times, a solver derives the target's arrival time
// from its frozen face-neighbours by solving a quadratic.
//
// Discretisation:
//
//	For target cell I the arrival time t solves
//
//	    Σ_k aₖ·(t − mₖ)² = 1/F(I)²
//
//	where the sum ranges over axes k with at least one frozen neighbour,
//	mₖ is the smallest frozen-neighbour arrival time along axis k, and
//	aₖ = 1/dxₖ². Assembled as q₀ + q₁·t + q₂·t² = 0, the larger root is
//	the upwind solution.
//
// Variants (a closed set of four, {first-order, high-accuracy} ×
// {uniform, varying}):
//
//   - Uniform             – first-order, one speed scalar F for the whole grid.
//   - HighAccuracyUniform – second-order upwind where a qualifying second
//     frozen neighbour exists two cells further along the axis, with
//     effective value t̃ₖ = (4mₖ − mₖ⁽²⁾)/3 and coefficient 9/(4·dxₖ²);
//     first-order fallback per axis otherwise.
//   - Varying, HighAccuracyVarying – same stencils, but F(I) is read from
//     a speed grid of the same shape as the distance grid.
//
// All four satisfy the solver capability consumed by package fmm:
//
//	Solve(index []int, distances *grid.Grid[T]) (T, error)
//
// Errors (sentinel):
//
//   - ErrInvalidGridSpacing if any spacing element is ≤ 0 or NaN.
//   - ErrInvalidSpeed       if the scalar speed or any speed sample is ≤ 0 or NaN.
//   - ErrSpeedBufferSize    if the speed buffer length does not match its grid size.
//   - ErrNoRealRoot         if the quadratic has a negative discriminant or a
//     negative larger root; this signals inconsistent upwind data and aborts
//     the whole computation.
//
// Solve does not range-check the target index; callers pre-validate, as
// everywhere on the marching hot path.
//
// Complexity: Solve is O(N²) in the dimensionality N (each of the N axes
// reads its neighbours through O(N) index arithmetic); the high-accuracy
// variants read a doubled stencil.
package eikonal
