package d3

import (
	"math/rand"

	"github.com/soypat/aabb"
)

// Box is a 3d axis aligned bounding box. A Box is either valid, with Min <= Max
// on every axis, or the empty box returned by Empty.
type Box[T aabb.Scalar] struct {
	Min, Max Point[T]
}

// Empty returns the empty box. Its extremes are inverted so that it is the
// identity element of Union.
func Empty[T aabb.Scalar]() Box[T] {
	hi, lo := aabb.Highest[T](), aabb.Lowest[T]()
	return Box[T]{
		Min: Point[T]{hi, hi, hi},
		Max: Point[T]{lo, lo, lo},
	}
}

// BoxOf returns the degenerate box containing only p.
func BoxOf[T aabb.Scalar](p Point[T]) Box[T] {
	return Box[T]{Min: p, Max: p}
}

// NewBox returns the smallest box containing p1 and p2. Argument order does not matter.
func NewBox[T aabb.Scalar](p1, p2 Point[T]) Box[T] {
	return Box[T]{Min: MinElem(p1, p2), Max: MaxElem(p1, p2)}
}

// BoundsOf returns the smallest box containing all points. It returns the
// empty box when called with no points.
func BoundsOf[T aabb.Scalar](points ...Point[T]) Box[T] {
	b := Empty[T]()
	for _, p := range points {
		b = UnionPoint(b, p)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (a Box[T]) IsEmpty() bool {
	return a.Min[0] > a.Max[0] || a.Min[1] > a.Max[1] || a.Min[2] > a.Max[2]
}

// At returns Min for i == 0 and Max for i == 1. Any other index panics.
func (a Box[T]) At(i int) Point[T] {
	switch i {
	case 0:
		return a.Min
	case 1:
		return a.Max
	}
	panic("d3.Box: index out of range")
}

// Set assigns Min for i == 0 and Max for i == 1. Any other index panics.
// Set does not reorder components; the caller keeps Min <= Max.
func (a *Box[T]) Set(i int, p Point[T]) {
	switch i {
	case 0:
		a.Min = p
	case 1:
		a.Max = p
	default:
		panic("d3.Box: index out of range")
	}
}

// Corner returns corner i of the box, 0 <= i < 8. Bit b of i picks Max (set)
// or Min (clear) on axis b, so Corner(1) = (Max.X, Min.Y, Min.Z) and
// Corner(6) = (Min.X, Max.Y, Max.Z).
func (a Box[T]) Corner(i int) Point[T] {
	if i < 0 || i > 7 {
		panic("d3.Box: corner index out of range")
	}
	return Point[T]{
		a.At(i & 1)[0],
		a.At((i >> 1) & 1)[1],
		a.At((i >> 2) & 1)[2],
	}
}

// Corners returns all box corners ordered by Corner index.
func (a Box[T]) Corners() [8]Point[T] {
	var c [8]Point[T]
	for i := range c {
		c[i] = a.Corner(i)
	}
	return c
}

// Diagonal returns the vector from Min to Max. It is negative for the empty
// float box; for integer boxes the empty box's diagonal wraps around.
func (a Box[T]) Diagonal() Vec[T] {
	return a.Max.Sub(a.Min)
}

// SurfaceArea returns the total area of the six faces.
func (a Box[T]) SurfaceArea() T {
	d := a.Diagonal()
	return 2 * (d[0]*d[1] + d[0]*d[2] + d[1]*d[2])
}

// Volume returns the product of the box extents.
func (a Box[T]) Volume() T {
	d := a.Diagonal()
	return d[0] * d[1] * d[2]
}

// MaximumExtent returns the axis along which the box is longest, used to pick
// a split axis. Ties go to the later axis: X only wins when strictly longest.
func (a Box[T]) MaximumExtent() int {
	d := a.Diagonal()
	if d[0] > d[1] && d[0] > d[2] {
		return 0
	} else if d[1] > d[2] {
		return 1
	}
	return 2
}

// Lerp interpolates between Min and Max on each axis by the matching
// component of t. t is not clamped.
func (a Box[T]) Lerp(t Vec[float64]) Point[T] {
	return Point[T]{
		aabb.Lerp(t[0], a.Min[0], a.Max[0]),
		aabb.Lerp(t[1], a.Min[1], a.Max[1]),
		aabb.Lerp(t[2], a.Min[2], a.Max[2]),
	}
}

// Offset returns the position of p relative to the box, 0 at Min and 1 at Max.
// Axes with non-positive extent keep the raw offset from Min.
func (a Box[T]) Offset(p Point[T]) Vec[T] {
	o := p.Sub(a.Min)
	for i := range o {
		if a.Max[i] > a.Min[i] {
			o[i] /= a.Max[i] - a.Min[i]
		}
	}
	return o
}

// BoundingSphere returns the center of the box and the radius of the sphere
// through its corners. The radius is 0 when the center is outside the box.
func (a Box[T]) BoundingSphere() (center Point[T], radius float64) {
	center = a.Center()
	if Contains(center, a) {
		radius = Distance(center, a.Max)
	}
	return center, radius
}

// Center returns the midpoint of Min and Max. Integer centers are within one
// half of the exact midpoint.
func (a Box[T]) Center() Point[T] {
	return Point[T]{
		aabb.Midpoint(a.Min[0], a.Max[0]),
		aabb.Midpoint(a.Min[1], a.Max[1]),
		aabb.Midpoint(a.Min[2], a.Max[2]),
	}
}

// Translate translates a 3d box.
func (a Box[T]) Translate(v Vec[T]) Box[T] {
	return Box[T]{a.Min.Add(v), a.Max.Add(v)}
}

// Equal tests the equality of 3d boxes within tol.
func (a Box[T]) Equal(b Box[T], tol T) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// UnionPoint returns the smallest box containing b and p.
func UnionPoint[T aabb.Scalar](b Box[T], p Point[T]) Box[T] {
	return Box[T]{
		Min: MinElem(b.Min, p),
		Max: MaxElem(b.Max, p),
	}
}

// Union returns the smallest box enclosing both boxes.
func Union[T aabb.Scalar](b1, b2 Box[T]) Box[T] {
	return Box[T]{
		Min: MinElem(b1.Min, b2.Min),
		Max: MaxElem(b1.Max, b2.Max),
	}
}

// Intersect returns the region shared by both boxes, or the empty box when
// they do not overlap.
func Intersect[T aabb.Scalar](b1, b2 Box[T]) Box[T] {
	b := Box[T]{
		Min: MaxElem(b1.Min, b2.Min),
		Max: MinElem(b1.Max, b2.Max),
	}
	if b.IsEmpty() {
		return Empty[T]()
	}
	return b
}

// Overlap reports whether the boxes share at least one point. Touching faces count.
func Overlap[T aabb.Scalar](b1, b2 Box[T]) bool {
	x := b1.Max[0] >= b2.Min[0] && b1.Min[0] <= b2.Max[0]
	y := b1.Max[1] >= b2.Min[1] && b1.Min[1] <= b2.Max[1]
	z := b1.Max[2] >= b2.Min[2] && b1.Min[2] <= b2.Max[2]
	return x && y && z
}

// Contains checks if the 3d box contains the given point (considering bounds as inside).
func Contains[T aabb.Scalar](p Point[T], b Box[T]) bool {
	return b.Min[0] <= p[0] && p[0] <= b.Max[0] &&
		b.Min[1] <= p[1] && p[1] <= b.Max[1] &&
		b.Min[2] <= p[2] && p[2] <= b.Max[2]
}

// ContainsExclusive is like Contains but points on the Max faces are outside,
// so a point on a face shared by two adjoining boxes belongs to exactly one.
func ContainsExclusive[T aabb.Scalar](p Point[T], b Box[T]) bool {
	return b.Min[0] <= p[0] && p[0] < b.Max[0] &&
		b.Min[1] <= p[1] && p[1] < b.Max[1] &&
		b.Min[2] <= p[2] && p[2] < b.Max[2]
}

// Expand grows the box by d on every side. A negative d shrinks it and
// yields the empty box once an axis inverts. The empty box stays empty.
// Corners saturate at the limits of T instead of wrapping.
func Expand[T aabb.Scalar](b Box[T], d T) Box[T] {
	if b.IsEmpty() {
		return b
	}
	for i := range b.Min {
		b.Min[i] = aabb.SaturatingSub(b.Min[i], d)
		b.Max[i] = aabb.SaturatingAdd(b.Max[i], d)
	}
	if b.IsEmpty() {
		return Empty[T]()
	}
	return b
}

// MinMaxDist2 returns the minimum and maximum dist * dist from a point to a box.
// Points within the box have minimum distance = 0.
func MinMaxDist2[T aabb.Float](a Box[T], p Point[T]) (minDist2, maxDist2 T) {
	var near, far Vec[T]
	for i := range p {
		near[i] = aabb.Clamp(p[i], a.Min[i], a.Max[i]) - p[i]
		far[i] = max(aabb.Abs(a.Min[i]-p[i]), aabb.Abs(a.Max[i]-p[i]))
	}
	return near.Norm2(), far.Norm2()
}

// RandomPoint returns a random point within a bounding box drawn from rng.
func RandomPoint[T aabb.Float](b Box[T], rng *rand.Rand) Point[T] {
	return Point[T]{
		randomRange(rng, b.Min[0], b.Max[0]),
		randomRange(rng, b.Min[1], b.Max[1]),
		randomRange(rng, b.Min[2], b.Max[2]),
	}
}

// randomRange returns a random T in [a,b)
func randomRange[T aabb.Float](rng *rand.Rand, a, b T) T {
	return a + (b-a)*T(rng.Float64())
}
