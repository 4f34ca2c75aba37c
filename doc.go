// Package fastmarch is a fast-marching-method toolkit for computing
// approximate solutions of the Eikonal equation |∇T(x)| = 1/F(x) on
// regular N-dimensional Cartesian grids.
//
// 🚀 What is fastmarch?
//
//	A focused numerical library that brings together:
//		• Strided grid views: N-dimensional indexing over flat cell buffers
//		• Cell solvers: first-order and high-accuracy upwind Eikonal updates,
//		  uniform or spatially varying speed
//		• Narrow-band marching: a Dijkstra-like monotone sweep that freezes
//		  cells in order of increasing arrival time
//		• Topology analysis: connected components and dilation bands that
//		  split a closed interface into inside and outside
//
// ✨ Why choose fastmarch?
//
//   - Predictable – fail-fast validation with sentinel errors, no panics on bad input
//   - Precise – generic over float32/float64, faithful upwind discretisation
//   - Pure Go – no cgo, single-threaded, caller-owned buffers
//   - Small API – two entry points plus four solver constructors
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/    — strided views, index iteration, neighbour-offset tables
//	eikonal/ — per-cell quadratic solvers (the four speed/accuracy variants)
//	fmm/     — narrow-band seeding, the march loop, UnsignedDistance and
//	           SignedDistance entry points
//
// Quick ASCII example (2-D, one frozen seed in the centre):
//
//	    ·───·───·
//	    │ √2│ 1 │        arrival times spread outward
//	    ·───0───·        from the frozen cell,
//	    │ 1 │ √2│        approximating Euclidean distance
//	    ·───·───·
//
// Dive into the package docs of fmm for entry-point semantics, error
// kinds, and the signed-distance pipeline.
//
//	go get github.com/katalvlaran/fastmarch/fmm
package fastmarch
