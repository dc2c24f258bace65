package d2

import (
	"github.com/soypat/glgl/math/ms2"
	"gonum.org/v1/gonum/spatial/r2"
)

// FromR2 converts a gonum vector to a point.
func FromR2(v r2.Vec) Point[float64] { return Point[float64]{v.X, v.Y} }

func R2(p Point[float64]) r2.Vec { return r2.Vec{X: p[0], Y: p[1]} }

// FromR2Box converts a gonum box. Corners are copied as is, so an inverted
// box stays empty; use NewBox to sort corners of an unordered box.
func FromR2Box(b r2.Box) Box[float64] {
	return Box[float64]{Min: FromR2(b.Min), Max: FromR2(b.Max)}
}

func R2Box(b Box[float64]) r2.Box {
	return r2.Box{Min: R2(b.Min), Max: R2(b.Max)}
}

// FromMS2 converts a single precision glgl vector to a point.
func FromMS2(v ms2.Vec) Point[float32] { return Point[float32]{v.X, v.Y} }

func MS2(p Point[float32]) ms2.Vec { return ms2.Vec{X: p[0], Y: p[1]} }

// FromMS2Box converts a glgl box. Corners are copied as is.
func FromMS2Box(b ms2.Box) Box[float32] {
	return Box[float32]{Min: FromMS2(b.Min), Max: FromMS2(b.Max)}
}

func MS2Box(b Box[float32]) ms2.Box {
	return ms2.Box{Min: MS2(b.Min), Max: MS2(b.Max)}
}
