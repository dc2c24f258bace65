/*
Package aabb holds the scalar layer shared by the d2 and d3 bounding volume
packages: numeric constraints, representable limits and the floating point
error model used to bound accumulated rounding error.
*/
package aabb

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is a numeric type a vector, point or box can be built on.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is a floating point scalar.
type Float interface {
	constraints.Float
}

// Integer is an integer scalar. Lattice enumeration is only defined over these.
type Integer interface {
	constraints.Integer
}

// Highest returns the largest finite value representable by T.
func Highest[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = math.MaxFloat64
	case *float32:
		*p = math.MaxFloat32
	case *int:
		*p = math.MaxInt
	default:
		setLimit(reflect.ValueOf(&v).Elem(), true)
	}
	return v
}

// Lowest returns the smallest finite value representable by T. For floating
// point types this is -Highest, not the smallest positive number.
func Lowest[T Scalar]() T {
	var v T
	switch p := any(&v).(type) {
	case *float64:
		*p = -math.MaxFloat64
	case *float32:
		*p = -math.MaxFloat32
	case *int:
		*p = math.MinInt
	default:
		setLimit(reflect.ValueOf(&v).Elem(), false)
	}
	return v
}

// setLimit handles named scalar types and the less common builtin widths.
func setLimit(v reflect.Value, high bool) {
	switch v.Kind() {
	case reflect.Float32:
		v.SetFloat(pick(high, math.MaxFloat32, -math.MaxFloat32))
	case reflect.Float64:
		v.SetFloat(pick(high, math.MaxFloat64, -math.MaxFloat64))
	case reflect.Int:
		v.SetInt(pick[int64](high, math.MaxInt, math.MinInt))
	case reflect.Int8:
		v.SetInt(pick[int64](high, math.MaxInt8, math.MinInt8))
	case reflect.Int16:
		v.SetInt(pick[int64](high, math.MaxInt16, math.MinInt16))
	case reflect.Int32:
		v.SetInt(pick[int64](high, math.MaxInt32, math.MinInt32))
	case reflect.Int64:
		v.SetInt(pick[int64](high, math.MaxInt64, math.MinInt64))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if high {
			v.SetUint(math.MaxUint64 >> (64 - 8*v.Type().Size()))
		} else {
			v.SetUint(0)
		}
	default:
		panic("aabb: unsupported scalar kind " + v.Kind().String())
	}
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
