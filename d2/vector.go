package d2

import (
	"math"

	"github.com/soypat/aabb"
)

// Vec is a 2D displacement.
type Vec[T aabb.Scalar] [2]T

// Point is a 2D position.
type Point[T aabb.Scalar] [2]T

// Elem returns a vector with all components set to sides.
func Elem[T aabb.Scalar](sides T) Vec[T] {
	return Vec[T]{sides, sides}
}

func (a Vec[T]) Point() Point[T] { return Point[T](a) }

func (p Point[T]) Vec() Vec[T] { return Vec[T](p) }

// Add returns the point displaced by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{p[0] + v[0], p[1] + v[1]}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return Vec[T]{p[0] - q[0], p[1] - q[1]}
}

func (a Vec[T]) Add(b Vec[T]) Vec[T] { return Vec[T]{a[0] + b[0], a[1] + b[1]} }

func (a Vec[T]) Sub(b Vec[T]) Vec[T] { return Vec[T]{a[0] - b[0], a[1] - b[1]} }

func (a Vec[T]) Scale(k T) Vec[T] { return Vec[T]{k * a[0], k * a[1]} }

func (a Vec[T]) Neg() Vec[T] { return Vec[T]{-a[0], -a[1]} }

func (a Vec[T]) Dot(b Vec[T]) T { return a[0]*b[0] + a[1]*b[1] }

func (a Vec[T]) Norm2() T { return a.Dot(a) }

// Norm returns the length of a.
func (a Vec[T]) Norm() float64 { return math.Sqrt(float64(a.Norm2())) }

// MinElem return a vector with the minimum components of two vectors.
func MinElem[V ~[2]T, T aabb.Scalar](a, b V) V {
	return V{min(a[0], b[0]), min(a[1], b[1])}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem[V ~[2]T, T aabb.Scalar](a, b V) V {
	return V{max(a[0], b[0]), max(a[1], b[1])}
}

// FloorElem returns the component-wise floor of a.
func FloorElem[V ~[2]T, T aabb.Float](a V) V {
	return V{aabb.Floor(a[0]), aabb.Floor(a[1])}
}

// CeilElem returns the component-wise ceiling of a.
func CeilElem[V ~[2]T, T aabb.Float](a V) V {
	return V{aabb.Ceil(a[0]), aabb.Ceil(a[1])}
}

// AbsElem returns the component-wise absolute value. Integer vectors are not supported.
func AbsElem[V ~[2]T, T aabb.Float](a V) V {
	return V{aabb.Abs(a[0]), aabb.Abs(a[1])}
}

// Permute returns a vector whose axis 0 is a[x] and axis 1 is a[y].
func Permute[V ~[2]T, T aabb.Scalar](a V, x, y int) V {
	return V{a[x], a[y]}
}

// Distance2 returns the squared euclidean distance between a and b.
func Distance2[V ~[2]T, T aabb.Scalar](a, b V) float64 {
	dx := float64(a[0]) - float64(b[0])
	dy := float64(a[1]) - float64(b[1])
	return dx*dx + dy*dy
}

// Distance returns the euclidean distance between a and b.
func Distance[V ~[2]T, T aabb.Scalar](a, b V) float64 {
	return math.Hypot(float64(a[0])-float64(b[0]), float64(a[1])-float64(b[1]))
}

// LerpElem returns (1-t)*a + t*b computed per component.
func LerpElem[V ~[2]T, T aabb.Scalar](t float64, a, b V) V {
	return V{aabb.Lerp(t, a[0], b[0]), aabb.Lerp(t, a[1], b[1])}
}

// EqualWithin reports whether both components of a and b differ by at most tol.
func EqualWithin[V ~[2]T, T aabb.Scalar](a, b V, tol T) bool {
	return absDiff(a[0], b[0]) <= tol && absDiff(a[1], b[1]) <= tol
}

func absDiff[T aabb.Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Overlap1D returns true if the 1D segments a and b, stored as {lo, hi}, overlap.
func Overlap1D[T aabb.Scalar](a, b Vec[T]) bool {
	return a[1] >= b[0] && b[1] >= a[0]
}
