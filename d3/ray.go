package d3

import (
	"math"

	"github.com/soypat/aabb"
)

// Ray is a half line starting at O in direction D, limited to parameters
// in [0, TMax].
type Ray[T aabb.Float] struct {
	O    Point[T]
	D    Vec[T]
	TMax T
	Time T
}

// NewRay returns an unbounded ray at time 0.
func NewRay[T aabb.Float](o Point[T], d Vec[T]) Ray[T] {
	return Ray[T]{O: o, D: d, TMax: T(math.Inf(1))}
}

// At returns the point at parameter t along the ray.
func (r Ray[T]) At(t T) Point[T] {
	return r.O.Add(r.D.Scale(t))
}

// RayDifferential carries two auxiliary rays offset by one pixel in x and y,
// used to estimate the footprint of the main ray.
type RayDifferential[T aabb.Float] struct {
	Ray[T]
	RxO, RyO         Point[T]
	RxD, RyD         Vec[T]
	HasDifferentials bool
}

// ScaleDifferentials scales the auxiliary ray offsets by s, as when the
// sample spacing differs from one pixel.
func (r *RayDifferential[T]) ScaleDifferentials(s T) {
	r.RxO = r.O.Add(r.RxO.Sub(r.O).Scale(s))
	r.RyO = r.O.Add(r.RyO.Sub(r.O).Scale(s))
	r.RxD = r.D.Add(r.RxD.Sub(r.D).Scale(s))
	r.RyD = r.D.Add(r.RyD.Sub(r.D).Scale(s))
}

// IntersectRay returns the parametric interval [t0, t1] where r is inside b.
// The far slab distance is enlarged by 2*Gamma(3) so rounding cannot make a
// grazing ray miss. ok is false when r misses b within [0, r.TMax].
func IntersectRay[T aabb.Float](b Box[T], r Ray[T]) (t0, t1 T, ok bool) {
	t1 = r.TMax
	for i := 0; i < 3; i++ {
		invD := 1 / r.D[i]
		tNear := (b.Min[i] - r.O[i]) * invD
		tFar := (b.Max[i] - r.O[i]) * invD
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		tFar *= 1 + 2*aabb.Gamma[T](3)
		// Comparisons are written so a NaN slab leaves the interval unchanged.
		if tNear > t0 {
			t0 = tNear
		}
		if tFar < t1 {
			t1 = tFar
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
