package render

import (
	"io"

	"github.com/soypat/aabb"
	"github.com/soypat/aabb/d3"
)

// boxFaces indexes box corners (d3.Box.Corner order) into 12 triangles
// wound counter-clockwise when seen from outside, two per face in the
// order -X, +X, -Y, +Y, -Z, +Z.
var boxFaces = [12][3]int{
	{0, 4, 6}, {0, 6, 2},
	{1, 3, 7}, {1, 7, 5},
	{0, 1, 5}, {0, 5, 4},
	{2, 6, 7}, {2, 7, 3},
	{0, 2, 3}, {0, 3, 1},
	{4, 5, 7}, {4, 7, 6},
}

// BoxTriangles returns the 12 outward facing triangles of the surface of b.
// Boxes without volume have no surface to mesh and yield nil.
func BoxTriangles[T aabb.Scalar](b d3.Box[T]) []Triangle3 {
	fb := toFloat64(b)
	d := fb.Diagonal()
	if d[0] <= 0 || d[1] <= 0 || d[2] <= 0 {
		return nil
	}
	c := fb.Corners()
	model := make([]Triangle3, len(boxFaces))
	for i, f := range boxFaces {
		model[i] = Triangle3{V: [3]d3.Point[float64]{c[f[0]], c[f[1]], c[f[2]]}}
	}
	return model
}

func toFloat64[T aabb.Scalar](b d3.Box[T]) d3.Box[float64] {
	return d3.Box[float64]{
		Min: d3.Point[float64]{float64(b.Min[0]), float64(b.Min[1]), float64(b.Min[2])},
		Max: d3.Point[float64]{float64(b.Max[0]), float64(b.Max[1]), float64(b.Max[2])},
	}
}

// boxRenderer streams the meshes of a set of boxes.
type boxRenderer struct {
	todo      []d3.Box[float64]
	unwritten triangle3Buffer
}

// NewBoxRenderer returns a Renderer producing the surface triangles of every
// box, in argument order.
func NewBoxRenderer[T aabb.Scalar](boxes ...d3.Box[T]) Renderer {
	todo := make([]d3.Box[float64], len(boxes))
	for i := range boxes {
		todo[i] = toFloat64(boxes[i])
	}
	return &boxRenderer{
		todo:      todo,
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, len(boxFaces))},
	}
}

func (br *boxRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	for br.unwritten.Len() < len(dst) && len(br.todo) > 0 {
		br.unwritten.Write(BoxTriangles(br.todo[0]))
		br.todo = br.todo[1:]
	}
	if br.unwritten.Len() == 0 {
		return 0, io.EOF
	}
	return br.unwritten.Read(dst), nil
}
