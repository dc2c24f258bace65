package d3

import (
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestR3RoundTrip(t *testing.T) {
	b := NewBox(Point[float64]{-1, 2, -3}, Point[float64]{4, -5, 6})
	if got := FromR3Box(R3Box(b)); got != b {
		t.Errorf("got %v, want %v", got, b)
	}
	if got := FromR3Box(R3Box(Empty[float64]())); got != Empty[float64]() {
		t.Errorf("empty round trip got %v", got)
	}
	gb := r3.Box{Min: r3.Vec{X: 1, Y: 1, Z: 1}, Max: r3.Vec{X: 0, Y: 2, Z: 0}}
	if !FromR3Box(gb).IsEmpty() {
		t.Error("inverted gonum box converted to a valid box")
	}
	got := NewBox(FromR3(gb.Min), FromR3(gb.Max))
	want := Box[float64]{Min: Point[float64]{0, 1, 0}, Max: Point[float64]{1, 2, 1}}
	if got != want {
		t.Errorf("sorted gonum corners got %v, want %v", got, want)
	}
	// gonum and our box agree on size.
	gb = R3Box(got)
	if R3(got.Diagonal().Point()) != r3.Sub(gb.Max, gb.Min) {
		t.Error("diagonal does not match gonum size")
	}
}

func TestMS3RoundTrip(t *testing.T) {
	b := NewBox(Point[float32]{0, 0, 0}, Point[float32]{1, 0.5, 2})
	mb := MS3Box(b)
	if mb.Max != (ms3.Vec{X: 1, Y: 0.5, Z: 2}) {
		t.Errorf("ms3 max got %v", mb.Max)
	}
	if got := FromMS3Box(mb); got != b {
		t.Errorf("got %v, want %v", got, b)
	}
	if got := FromMS3Box(MS3Box(Empty[float32]())); !got.IsEmpty() || got != Empty[float32]() {
		t.Errorf("empty round trip got %v", got)
	}
	c := ms3.NewCenteredBox(ms3.Vec{}, ms3.Vec{X: 2, Y: 2, Z: 2})
	if got := FromMS3Box(c); got != NewBox(Point[float32]{-1, -1, -1}, Point[float32]{1, 1, 1}) {
		t.Errorf("centered box got %v", got)
	}
}
