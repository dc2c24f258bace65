package render

import (
	"github.com/soypat/aabb"
	"github.com/soypat/aabb/d2"
	"github.com/soypat/aabb/d3"
)

// White is the default wireframe color.
var White = d3.Vec[float32]{1, 1, 1}

// BoxEdges is the line list drawing the 12 edges of a box whose vertices are
// stored in d3.Box.Corner order. The two corners of every edge differ on
// exactly one axis.
var BoxEdges = [24]uint32{
	0, 1, 0, 2, 2, 3, 3, 1,
	0, 4, 1, 5, 2, 6, 3, 7,
	4, 5, 4, 6, 6, 7, 5, 7,
}

// RectEdges is the line list drawing the 4 edges of a rectangle whose
// vertices are stored in d2.Box.Corner order.
var RectEdges = [8]uint32{0, 1, 1, 3, 3, 2, 2, 0}

// Vertex is the position and color layout of a wireframe vertex buffer.
type Vertex struct {
	Position d3.Point[float32]
	Color    d3.Vec[float32]
}

// Wireframe is the vertex and index data of a box drawn as a line list.
type Wireframe struct {
	Vertices [8]Vertex
	Indices  [24]uint32
}

// NewWireframe returns the wireframe of b with all vertices colored color.
// The empty box yields a wireframe with inverted corners; check b.IsEmpty first.
func NewWireframe[T aabb.Scalar](b d3.Box[T], color d3.Vec[float32]) Wireframe {
	w := Wireframe{Indices: BoxEdges}
	for i := range w.Vertices {
		c := b.Corner(i)
		w.Vertices[i] = Vertex{
			Position: d3.Point[float32]{float32(c[0]), float32(c[1]), float32(c[2])},
			Color:    color,
		}
	}
	return w
}

// Lines returns the wireframe edges as point pairs.
func (w Wireframe) Lines() (lines [12][2]d3.Point[float32]) {
	for i := range lines {
		lines[i][0] = w.Vertices[w.Indices[2*i]].Position
		lines[i][1] = w.Vertices[w.Indices[2*i+1]].Position
	}
	return lines
}

// Wireframe2 is the vertex and index data of a rectangle drawn as a line
// list in the z=0 plane.
type Wireframe2 struct {
	Vertices [4]Vertex
	Indices  [8]uint32
}

// NewWireframe2 returns the wireframe of a 2d box.
func NewWireframe2[T aabb.Scalar](b d2.Box[T], color d3.Vec[float32]) Wireframe2 {
	w := Wireframe2{Indices: RectEdges}
	for i := range w.Vertices {
		c := b.Corner(i)
		w.Vertices[i] = Vertex{
			Position: d3.Point[float32]{float32(c[0]), float32(c[1]), 0},
			Color:    color,
		}
	}
	return w
}

// Lines returns the wireframe edges as point pairs.
func (w Wireframe2) Lines() (lines [4][2]d3.Point[float32]) {
	for i := range lines {
		lines[i][0] = w.Vertices[w.Indices[2*i]].Position
		lines[i][1] = w.Vertices[w.Indices[2*i+1]].Position
	}
	return lines
}
