package d2

import (
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCornerOrder(t *testing.T) {
	b := NewBox(Point[int]{0, 0}, Point[int]{1, 1})
	want := [4]Point[int]{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if got := b.Corners(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Error("Corner(4) did not panic")
		}
	}()
	b.Corner(4)
}

func TestUnion(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	region := NewBox(Point[float32]{-1, -1}, Point[float32]{1, 1})
	for i := 0; i < 100; i++ {
		p := RandomPoint(region, rng)
		if got := UnionPoint(Empty[float32](), p); got != BoxOf(p) {
			t.Fatalf("union(empty, %v) got %v", p, got)
		}
		a := NewBox(p, RandomPoint(region, rng))
		b := NewBox(RandomPoint(region, rng), RandomPoint(region, rng))
		c := BoundsOf(RandomPoint(region, rng), RandomPoint(region, rng), RandomPoint(region, rng))
		if Union(a, b) != Union(b, a) {
			t.Fatal("union not commutative")
		}
		if Union(a, Union(b, c)) != Union(Union(a, b), c) {
			t.Fatal("union not associative")
		}
		if !Overlap(a, a) || Overlap(a, b) != Overlap(b, a) {
			t.Fatal("overlap not reflexive or symmetric")
		}
	}
}

func TestMaximumExtent(t *testing.T) {
	for _, test := range []struct {
		diag Vec[int]
		want int
	}{
		{Vec[int]{2, 2}, 1},
		{Vec[int]{3, 2}, 0},
		{Vec[int]{2, 3}, 1},
		{Vec[int]{0, 0}, 1},
	} {
		b := Box[int]{Max: test.diag.Point()}
		if got := b.MaximumExtent(); got != test.want {
			t.Errorf("diagonal %v got axis %d, want %d", test.diag, got, test.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	b := NewBox(Point[float64]{1, 1}, Point[float64]{4, 3})
	if got := b.SurfaceArea(); got != 6 {
		t.Errorf("area got %g, want 6", got)
	}
	c, r := b.BoundingSphere()
	if c != (Point[float64]{2.5, 2}) || math.Abs(r-math.Hypot(1.5, 1)) > 1e-15 {
		t.Errorf("bounding circle got %v %g", c, r)
	}
	if got := b.Offset(Point[float64]{2.5, 3}); got != (Vec[float64]{0.5, 1}) {
		t.Errorf("offset got %v", got)
	}
	if got := b.Lerp(Vec[float64]{0.5, 1}); got != (Point[float64]{2.5, 3}) {
		t.Errorf("lerp got %v", got)
	}
	ib := NewBox(Point[int]{0, 0}, Point[int]{4, 2})
	if got := ib.Offset(Point[int]{2, 1}); got != (Vec[int]{0, 0}) {
		t.Errorf("integer offset truncates, got %v", got)
	}
}

func TestPredicates(t *testing.T) {
	b := NewBox(Point[int]{0, 0}, Point[int]{2, 2})
	right := b.Translate(Vec[int]{2, 0})
	edge := Point[int]{2, 1}
	if !Contains(edge, b) || !Contains(edge, right) {
		t.Error("inclusive containment on shared edge")
	}
	if ContainsExclusive(edge, b) || !ContainsExclusive(edge, right) {
		t.Error("exclusive containment should assign shared edge to right box")
	}
	if !Overlap(b, right) {
		t.Error("touching boxes overlap")
	}
	if got := Intersect(b, right); got != NewBox(Point[int]{2, 0}, Point[int]{2, 2}) {
		t.Errorf("intersect got %v", got)
	}
	if got := Intersect(b, b.Translate(Vec[int]{5, 5})); got != Empty[int]() {
		t.Errorf("disjoint intersect got %v", got)
	}
	if got := Expand(b, 1); got != NewBox(Point[int]{-1, -1}, Point[int]{3, 3}) {
		t.Errorf("expand got %v", got)
	}
}

func TestVectorAlgebra(t *testing.T) {
	v := Vec[float32]{-1.25, 2.75}
	if FloorElem(v) != (Vec[float32]{-2, 2}) || CeilElem(v) != (Vec[float32]{-1, 3}) {
		t.Error("floor/ceil")
	}
	if AbsElem(v) != (Vec[float32]{1.25, 2.75}) {
		t.Error("abs")
	}
	if Permute(v, 1, 0) != (Vec[float32]{2.75, -1.25}) {
		t.Error("permute")
	}
	if Distance(Point[int]{0, 0}, Point[int]{3, 4}) != 5 {
		t.Error("distance")
	}
	if LerpElem(0.5, Point[float64]{0, 2}, Point[float64]{2, 0}) != (Point[float64]{1, 1}) {
		t.Error("lerp")
	}
}

func TestInterop(t *testing.T) {
	b := NewBox(Point[float64]{-1, 0}, Point[float64]{2, 3})
	if got := FromR2Box(R2Box(b)); got != b {
		t.Errorf("r2 round trip got %v", got)
	}
	if got := FromR2Box(r2.Box{Min: r2.Vec{X: 1, Y: 1}, Max: r2.Vec{X: 0, Y: 0}}); !got.IsEmpty() {
		t.Errorf("inverted r2 box got valid box %v", got)
	}
	if got := FromR2Box(R2Box(Empty[float64]())); got != Empty[float64]() {
		t.Errorf("empty r2 round trip got %v", got)
	}
	if got := FromMS2Box(MS2Box(Empty[float32]())); got != Empty[float32]() {
		t.Errorf("empty ms2 round trip got %v", got)
	}
	fb := NewBox(Point[float32]{0, 0}, Point[float32]{0.5, 1})
	if got := FromMS2Box(MS2Box(fb)); got != fb {
		t.Errorf("ms2 round trip got %v", got)
	}
	if MS2(fb.Max) != (ms2.Vec{X: 0.5, Y: 1}) {
		t.Error("ms2 vector")
	}
}

func TestOverlap1D(t *testing.T) {
	for _, test := range []struct {
		a, b Vec[int]
		want bool
	}{
		{Vec[int]{0, 2}, Vec[int]{1, 3}, true},
		{Vec[int]{0, 2}, Vec[int]{2, 3}, true}, // touching
		{Vec[int]{0, 2}, Vec[int]{3, 4}, false},
		{Vec[int]{-5, 5}, Vec[int]{-1, 1}, true},
	} {
		if got := Overlap1D(test.a, test.b); got != test.want {
			t.Errorf("Overlap1D(%v, %v) got %v, want %v", test.a, test.b, got, test.want)
		}
		if got := Overlap1D(test.b, test.a); got != test.want {
			t.Errorf("Overlap1D(%v, %v) got %v, want %v", test.b, test.a, got, test.want)
		}
	}
}

func TestNarrowIntegerBoxes(t *testing.T) {
	b := NewBox(Point[int8]{100, -120}, Point[int8]{120, -100})
	c, r := b.BoundingSphere()
	if c != (Point[int8]{110, -110}) {
		t.Errorf("int8 center got %v, want [110 -110]", c)
	}
	if want := 10 * math.Sqrt2; math.Abs(r-want) > 1e-12 {
		t.Errorf("int8 radius got %v, want %v", r, want)
	}
	fb := Box[float32]{Min: Point[float32]{3e38, 0}, Max: Point[float32]{math.MaxFloat32, 2}}
	if fc := fb.Center(); math.IsInf(float64(fc[0]), 0) || fc[0] < 3e38 || fc[1] != 1 {
		t.Errorf("float32 center got %v", fc)
	}

	u := NewBox(Point[uint8]{0, 0}, Point[uint8]{5, 5})
	if got := Expand(u, 1); got != NewBox(Point[uint8]{0, 0}, Point[uint8]{6, 6}) {
		t.Errorf("uint8 expand got %v", got)
	}
	i := NewBox(Point[int]{0, 0}, Point[int]{math.MaxInt, 0})
	if got := Expand(i, 2); got.IsEmpty() || got.Max[0] != math.MaxInt || got.Min[1] != -2 {
		t.Errorf("int expand got %v", got)
	}
}
