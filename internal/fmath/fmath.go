// Package fmath provides scalar math helpers that are generic over the
// two supported floating-point cell types, float32 and float64.
//
// The float64 paths dispatch to the standard library math package; the
// float32 paths dispatch to github.com/chewxy/math32 so that single
// precision stays in single precision throughout a solve.
package fmath

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Sqrt returns the square root of x in the precision of T.
func Sqrt[T constraints.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T constraints.Float](x T) bool {
	// NaN is the only value that does not equal itself; works for both
	// float32 and float64 without boxing.
	return x != x
}

// MaxValue returns the largest finite value representable by T.
// Distance grids use it as the sentinel for cells whose arrival time is
// not yet known: a cell is frozen iff its value is strictly below it.
func MaxValue[T constraints.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.MaxFloat32)
	default:
		maxFloat64 := math.MaxFloat64

		return T(maxFloat64)
	}
}
