package d2

import (
	"iter"

	"github.com/soypat/aabb"
)

// Lattice enumerates the integer points p of a box with
// Min.X <= p.X < Max.X and Min.Y <= p.Y < Max.Y in row-major order,
// X varying fastest. A box with no extent on an axis has no lattice points.
//
// A Lattice holds a copy of its box. Each Begin or All call starts an
// independent traversal.
type Lattice[T aabb.Integer] struct {
	bounds Box[T]
}

// NewLattice returns the lattice of integer points of b.
func NewLattice[T aabb.Integer](b Box[T]) *Lattice[T] {
	return &Lattice[T]{bounds: b}
}

// Bounds returns the enumerated box.
func (l *Lattice[T]) Bounds() Box[T] { return l.bounds }

func (l *Lattice[T]) degenerate() bool {
	return l.bounds.Min[0] >= l.bounds.Max[0] || l.bounds.Min[1] >= l.bounds.Max[1]
}

// Len returns the number of lattice points.
func (l *Lattice[T]) Len() int {
	if l.degenerate() {
		return 0
	}
	// Widen before subtracting so narrow integer types do not wrap.
	b := l.bounds
	return (int(b.Max[0]) - int(b.Min[0])) * (int(b.Max[1]) - int(b.Min[1]))
}

// Begin returns a cursor at the first lattice point.
func (l *Lattice[T]) Begin() Cursor[T] {
	return Cursor[T]{p: l.bounds.Min, l: l}
}

// End returns the cursor one past the last lattice point: X at Min.X and Y
// one row past the last. For a lattice without points End equals Begin.
func (l *Lattice[T]) End() Cursor[T] {
	if l.degenerate() {
		return l.Begin()
	}
	return Cursor[T]{p: Point[T]{l.bounds.Min[0], l.bounds.Max[1]}, l: l}
}

// All returns an iterator over the lattice points.
func (l *Lattice[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		end := l.End()
		for c := l.Begin(); !c.Equal(end); c.Advance() {
			if !yield(c.Point()) {
				return
			}
		}
	}
}

// PointI converts a float point to the integer lattice point containing it.
func PointI[T aabb.Integer, F aabb.Float](p Point[F]) Point[T] {
	f := FloorElem(p)
	return Point[T]{T(f[0]), T(f[1])}
}

// Cursor is a position in a lattice traversal. The zero value is not usable;
// obtain cursors from Lattice.Begin or Lattice.End.
type Cursor[T aabb.Integer] struct {
	p Point[T]
	l *Lattice[T]
}

// Point returns the lattice point under the cursor.
func (c Cursor[T]) Point() Point[T] { return c.p }

// Advance moves the cursor to the next lattice point. Advancing the End
// cursor is undefined.
func (c *Cursor[T]) Advance() {
	c.p[0]++
	if c.p[0] == c.l.bounds.Max[0] {
		c.p[0] = c.l.bounds.Min[0]
		c.p[1]++
	}
}

// Equal reports whether c and other are at the same point of the same lattice.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.p == other.p && c.l == other.l
}
