package d3

import (
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR3 converts a gonum vector to a point.
func FromR3(v r3.Vec) Point[float64] {
	return Point[float64]{v.X, v.Y, v.Z}
}

// R3 converts a point to a gonum vector.
func R3(p Point[float64]) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// FromR3Box converts a gonum box. Corners are copied as is, so an inverted
// box, Empty included, stays empty. Use NewBox to sort the corners of an
// unordered box.
func FromR3Box(b r3.Box) Box[float64] {
	return Box[float64]{Min: FromR3(b.Min), Max: FromR3(b.Max)}
}

// R3Box converts a box to a gonum box.
func R3Box(b Box[float64]) r3.Box {
	return r3.Box{Min: R3(b.Min), Max: R3(b.Max)}
}

// FromMS3 converts a single precision glgl vector to a point.
func FromMS3(v ms3.Vec) Point[float32] {
	return Point[float32]{v.X, v.Y, v.Z}
}

// MS3 converts a point to a single precision glgl vector.
func MS3(p Point[float32]) ms3.Vec {
	return ms3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// FromMS3Box converts a glgl box. Corners are copied as is.
func FromMS3Box(b ms3.Box) Box[float32] {
	return Box[float32]{Min: FromMS3(b.Min), Max: FromMS3(b.Max)}
}

// MS3Box converts a box to a glgl box.
func MS3Box(b Box[float32]) ms3.Box {
	return ms3.Box{Min: MS3(b.Min), Max: MS3(b.Max)}
}
