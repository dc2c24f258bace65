package d2

import (
	"math/rand"

	"github.com/soypat/aabb"
)

// Box is a 2d bounding box. A Box is either valid, with Min <= Max on both
// axes, or the empty box returned by Empty.
type Box[T aabb.Scalar] struct {
	Min, Max Point[T]
}

// Empty returns the empty box, the identity element of Union.
func Empty[T aabb.Scalar]() Box[T] {
	hi, lo := aabb.Highest[T](), aabb.Lowest[T]()
	return Box[T]{Min: Point[T]{hi, hi}, Max: Point[T]{lo, lo}}
}

// BoxOf returns the degenerate box containing only p.
func BoxOf[T aabb.Scalar](p Point[T]) Box[T] {
	return Box[T]{p, p}
}

// NewBox returns the smallest box containing p1 and p2.
func NewBox[T aabb.Scalar](p1, p2 Point[T]) Box[T] {
	return Box[T]{MinElem(p1, p2), MaxElem(p1, p2)}
}

// BoundsOf returns the smallest box containing all points.
func BoundsOf[T aabb.Scalar](points ...Point[T]) Box[T] {
	b := Empty[T]()
	for _, p := range points {
		b = UnionPoint(b, p)
	}
	return b
}

// IsEmpty reports whether the box contains no points.
func (a Box[T]) IsEmpty() bool {
	return a.Min[0] > a.Max[0] || a.Min[1] > a.Max[1]
}

// At returns Min for i == 0 and Max for i == 1. Any other index panics.
func (a Box[T]) At(i int) Point[T] {
	switch i {
	case 0:
		return a.Min
	case 1:
		return a.Max
	}
	panic("d2.Box: index out of range")
}

// Set assigns Min for i == 0 and Max for i == 1. Any other index panics.
func (a *Box[T]) Set(i int, p Point[T]) {
	switch i {
	case 0:
		a.Min = p
	case 1:
		a.Max = p
	default:
		panic("d2.Box: index out of range")
	}
}

// Corner returns corner i of the box, 0 <= i < 4. Bit 0 of i selects X from
// Max, bit 1 selects Y from Max.
func (a Box[T]) Corner(i int) Point[T] {
	if i < 0 || i > 3 {
		panic("d2.Box: corner index out of range")
	}
	return Point[T]{a.At(i & 1)[0], a.At((i >> 1) & 1)[1]}
}

// Corners returns the box corners ordered by Corner index.
func (a Box[T]) Corners() [4]Point[T] {
	return [4]Point[T]{
		a.Corner(0), // bl
		a.Corner(1), // br
		a.Corner(2), // tl
		a.Corner(3), // tr
	}
}

// Diagonal returns the vector from Min to Max. It is negative for the empty
// float box; for integer boxes the empty box's diagonal wraps around.
func (a Box[T]) Diagonal() Vec[T] {
	return a.Max.Sub(a.Min)
}

// SurfaceArea returns the area of the box.
func (a Box[T]) SurfaceArea() T {
	d := a.Diagonal()
	return d[0] * d[1]
}

// MaximumExtent returns the longest axis. Y wins ties.
func (a Box[T]) MaximumExtent() int {
	d := a.Diagonal()
	if d[0] > d[1] {
		return 0
	}
	return 1
}

// Lerp interpolates between Min and Max per axis. t is not clamped.
func (a Box[T]) Lerp(t Vec[float64]) Point[T] {
	return Point[T]{
		aabb.Lerp(t[0], a.Min[0], a.Max[0]),
		aabb.Lerp(t[1], a.Min[1], a.Max[1]),
	}
}

// Offset returns the position of p relative to the box, 0 at Min and 1 at Max.
// Axes with non-positive extent keep the raw offset from Min.
func (a Box[T]) Offset(p Point[T]) Vec[T] {
	o := p.Sub(a.Min)
	if a.Max[0] > a.Min[0] {
		o[0] /= a.Max[0] - a.Min[0]
	}
	if a.Max[1] > a.Min[1] {
		o[1] /= a.Max[1] - a.Min[1]
	}
	return o
}

// BoundingSphere returns the center of the box and the radius of the circle
// through its corners, 0 when the center is outside the box.
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
	return Point[T]{aabb.Midpoint(a.Min[0], a.Max[0]), aabb.Midpoint(a.Min[1], a.Max[1])}
}

// Translate translates a 2d box.
func (a Box[T]) Translate(v Vec[T]) Box[T] {
	return Box[T]{a.Min.Add(v), a.Max.Add(v)}
}

// Equal test the equality of 2d boxes.
func (a Box[T]) Equal(b Box[T], tol T) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// UnionPoint enlarges a 2d box to include a point.
func UnionPoint[T aabb.Scalar](b Box[T], p Point[T]) Box[T] {
	return Box[T]{MinElem(b.Min, p), MaxElem(b.Max, p)}
}

// Union returns a box enclosing two 2d boxes.
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

// Overlap reports whether the boxes share at least one point. Touching edges count.
func Overlap[T aabb.Scalar](b1, b2 Box[T]) bool {
	return Overlap1D(Vec[T]{b1.Min[0], b1.Max[0]}, Vec[T]{b2.Min[0], b2.Max[0]}) &&
		Overlap1D(Vec[T]{b1.Min[1], b1.Max[1]}, Vec[T]{b2.Min[1], b2.Max[1]})
}

// Contains checks if the 2d box contains the given point (considering bounds as inside).
func Contains[T aabb.Scalar](p Point[T], b Box[T]) bool {
	return b.Min[0] <= p[0] && b.Min[1] <= p[1] &&
		p[0] <= b.Max[0] && p[1] <= b.Max[1]
}

// ContainsExclusive is like Contains but points on the Max edges are outside.
// Tiles sharing an edge then never both claim a point on it.
func ContainsExclusive[T aabb.Scalar](p Point[T], b Box[T]) bool {
	return b.Min[0] <= p[0] && b.Min[1] <= p[1] &&
		p[0] < b.Max[0] && p[1] < b.Max[1]
}

// Expand grows the box by d on every side. The empty box stays empty and a
// box shrunk past zero extent becomes empty. Corners saturate at the limits
// of T instead of wrapping.
func Expand[T aabb.Scalar](b Box[T], d T) Box[T] {
	if b.IsEmpty() {
		return b
	}
	b = Box[T]{
		Min: Point[T]{aabb.SaturatingSub(b.Min[0], d), aabb.SaturatingSub(b.Min[1], d)},
		Max: Point[T]{aabb.SaturatingAdd(b.Max[0], d), aabb.SaturatingAdd(b.Max[1], d)},
	}
	if b.IsEmpty() {
		return Empty[T]()
	}
	return b
}

// RandomPoint returns a random point within a bounding box drawn from rng.
func RandomPoint[T aabb.Float](b Box[T], rng *rand.Rand) Point[T] {
	return Point[T]{
		randomRange(rng, b.Min[0], b.Max[0]),
		randomRange(rng, b.Min[1], b.Max[1]),
	}
}

// randomRange returns a random T in [a,b)
func randomRange[T aabb.Float](rng *rand.Rand, a, b T) T {
	return a + (b-a)*T(rng.Float64())
}
