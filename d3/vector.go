package d3

import (
	"math"

	"github.com/soypat/aabb"
)

// Vec is a 3D displacement.
type Vec[T aabb.Scalar] [3]T

// Point is a 3D position.
type Point[T aabb.Scalar] [3]T

// Elem returns a vector with all components set to sides.
func Elem[T aabb.Scalar](sides T) Vec[T] {
	return Vec[T]{sides, sides, sides}
}

// Point returns the point displaced by a from the origin.
func (a Vec[T]) Point() Point[T] { return Point[T](a) }

// Vec returns the displacement of the point from the origin.
func (p Point[T]) Vec() Vec[T] { return Vec[T](p) }

// Add returns the point displaced by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return Vec[T]{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

func (a Vec[T]) Add(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec[T]) Sub(b Vec[T]) Vec[T] {
	return Vec[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec[T]) Scale(k T) Vec[T] {
	return Vec[T]{k * a[0], k * a[1], k * a[2]}
}

func (a Vec[T]) Neg() Vec[T] {
	return Vec[T]{-a[0], -a[1], -a[2]}
}

func (a Vec[T]) Dot(b Vec[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec[T]) Cross(b Vec[T]) Vec[T] {
	return Vec[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm2 returns the squared length of a.
func (a Vec[T]) Norm2() T { return a.Dot(a) }

// Norm returns the length of a.
func (a Vec[T]) Norm() float64 { return math.Sqrt(float64(a.Norm2())) }

// MinElem return a vector with the minimum components of two vectors.
func MinElem[V ~[3]T, T aabb.Scalar](a, b V) V {
	return V{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem[V ~[3]T, T aabb.Scalar](a, b V) V {
	return V{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// FloorElem returns the component-wise floor of a.
func FloorElem[V ~[3]T, T aabb.Float](a V) V {
	return V{aabb.Floor(a[0]), aabb.Floor(a[1]), aabb.Floor(a[2])}
}

// CeilElem returns the component-wise ceiling of a.
func CeilElem[V ~[3]T, T aabb.Float](a V) V {
	return V{aabb.Ceil(a[0]), aabb.Ceil(a[1]), aabb.Ceil(a[2])}
}

// AbsElem returns the component-wise absolute value. It is not defined
// for integer vectors.
func AbsElem[V ~[3]T, T aabb.Float](a V) V {
	return V{aabb.Abs(a[0]), aabb.Abs(a[1]), aabb.Abs(a[2])}
}

// Permute reorders the axes of a so that the result's axis i is a's axis at index i.
func Permute[V ~[3]T, T aabb.Scalar](a V, x, y, z int) V {
	return V{a[x], a[y], a[z]}
}

// Distance2 returns the squared euclidean distance between a and b.
func Distance2[V ~[3]T, T aabb.Scalar](a, b V) float64 {
	dx := float64(a[0]) - float64(b[0])
	dy := float64(a[1]) - float64(b[1])
	dz := float64(a[2]) - float64(b[2])
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the euclidean distance between a and b. Unlike Distance2
// it does not overflow for distances near the float64 limit.
func Distance[V ~[3]T, T aabb.Scalar](a, b V) float64 {
	dx := float64(a[0]) - float64(b[0])
	dy := float64(a[1]) - float64(b[1])
	dz := float64(a[2]) - float64(b[2])
	return math.Hypot(math.Hypot(dx, dy), dz)
}

// LerpElem returns (1-t)*a + t*b computed per component.
func LerpElem[V ~[3]T, T aabb.Scalar](t float64, a, b V) V {
	return V{aabb.Lerp(t, a[0], b[0]), aabb.Lerp(t, a[1], b[1]), aabb.Lerp(t, a[2], b[2])}
}

// EqualWithin reports whether every component of a and b differs by at most tol.
func EqualWithin[V ~[3]T, T aabb.Scalar](a, b V, tol T) bool {
	return absDiff(a[0], b[0]) <= tol &&
		absDiff(a[1], b[1]) <= tol &&
		absDiff(a[2], b[2]) <= tol
}

// absDiff is |a-b| without requiring signed T.
func absDiff[T aabb.Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Max returns the largest component of a.
func Max[V ~[3]T, T aabb.Scalar](a V) T {
	return max(a[0], a[1], a[2])
}

// Min returns the smallest component of a.
func Min[V ~[3]T, T aabb.Scalar](a V) T {
	return min(a[0], a[1], a[2])
}
