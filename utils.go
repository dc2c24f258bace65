package aabb

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

const (
	// epsilon64 is the float64 machine epsilon, half a unit in the last place of 1. For IEEE this is 2^{-53}.
	epsilon64 = 0x1p-53
	// epsilon32 is the float32 counterpart of epsilon64.
	epsilon32 = 0x1p-24
)

// MachineEpsilon returns half the distance from 1 to the next representable
// value of T, the bound on the relative error of a single rounded operation.
func MachineEpsilon[T Float]() T {
	if is32[T]() {
		return epsilon32
	}
	return epsilon64
}

// Gamma returns a conservative bound on the relative error accumulated by n
// sequential floating point operations of type T: (n*eps)/(1-n*eps).
// Gamma(0) is 0 and the result grows with n while n*eps < 1.
func Gamma[T Float](n int) T {
	ne := T(n) * MachineEpsilon[T]()
	return ne / (1 - ne)
}

// Lerp linearly interpolates between a and b. t outside [0,1] extrapolates.
func Lerp[T Scalar](t float64, a, b T) T {
	return T((1-t)*float64(a) + t*float64(b))
}

// Midpoint returns the value halfway between a and b without forming a+b,
// so it does not overflow for any pair of finite values. Integer results
// are within one half of the exact midpoint.
func Midpoint[T Scalar](a, b T) T {
	ha, hb := a/2, b/2
	// Remainders are zero for floats barring subnormal rounding.
	ra, rb := a-2*ha, b-2*hb
	return ha + hb + (ra+rb)/2
}

// SaturatingAdd returns x+d clamped to [Lowest, Highest] instead of wrapping.
func SaturatingAdd[T Scalar](x, d T) T {
	r := x + d
	switch {
	case d > 0 && (r < x || r > Highest[T]()):
		return Highest[T]()
	case d < 0 && (r > x || r < Lowest[T]()):
		return Lowest[T]()
	}
	return r
}

// SaturatingSub returns x-d clamped to [Lowest, Highest] instead of wrapping.
func SaturatingSub[T Scalar](x, d T) T {
	r := x - d
	switch {
	case d > 0 && (r > x || r < Lowest[T]()):
		return Lowest[T]()
	case d < 0 && (r < x || r > Highest[T]()):
		return Highest[T]()
	}
	return r
}

// Clamp x between a and b, assume a <= b
func Clamp[T Scalar](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Float](x T) T {
	if is32[T]() {
		return T(math32.Floor(float32(x)))
	}
	return T(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Float](x T) T {
	if is32[T]() {
		return T(math32.Ceil(float32(x)))
	}
	return T(math.Ceil(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func is32[T Float]() bool {
	var v T
	return unsafe.Sizeof(v) == 4
}
