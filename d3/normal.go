package d3

import "github.com/soypat/aabb"

// Normal is a surface normal. It is kept apart from Vec since normals do not
// transform like displacements.
type Normal[T aabb.Scalar] [3]T

// NormalOf reinterprets v as a normal.
func NormalOf[T aabb.Scalar](v Vec[T]) Normal[T] { return Normal[T](v) }

func (n Normal[T]) Vec() Vec[T] { return Vec[T](n) }

func (n Normal[T]) Neg() Normal[T] { return Normal[T]{-n[0], -n[1], -n[2]} }

func (n Normal[T]) Dot(w Normal[T]) T {
	return n[0]*w[0] + n[1]*w[1] + n[2]*w[2]
}

// AbsDot returns |n·w|.
func AbsDot[T aabb.Float](n, w Normal[T]) T {
	return aabb.Abs(n.Dot(w))
}

// FaceForward flips n so it lies in the same hemisphere as v.
func FaceForward[T aabb.Scalar](n Normal[T], v Vec[T]) Normal[T] {
	if n.Dot(NormalOf(v)) < 0 {
		return n.Neg()
	}
	return n
}
