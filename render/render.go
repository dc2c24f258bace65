// Package render turns bounding volumes into data other programs can draw:
// line-list wireframes for GPU pipelines and triangle meshes written as STL.
package render

import (
	"github.com/soypat/aabb/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle, vertices in counter-clockwise order when seen
// from the side its normal points to.
type Triangle3 struct {
	V [3]d3.Point[float64]
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() d3.Vec[float64] {
	e1 := r3.Sub(d3.R3(t.V[1]), d3.R3(t.V[0]))
	e2 := r3.Sub(d3.R3(t.V[2]), d3.R3(t.V[0]))
	return d3.FromR3(r3.Unit(r3.Cross(e1, e2))).Vec()
}

// Degenerate returns true if two vertices of the triangle coincide within tol.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

// Bounds returns the box enclosing all triangle vertices, or the empty box
// for an empty model.
func Bounds(model []Triangle3) d3.Box[float64] {
	bb := d3.Empty[float64]()
	for _, t := range model {
		bb = d3.Union(bb, d3.BoundsOf(t.V[:]...))
	}
	return bb
}
