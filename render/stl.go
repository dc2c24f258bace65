package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/aabb/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
	// triangles streamed per io.Copy chunk by CreateSTL.
	trianglesInBuffer = 1 << 10
)

var (
	errEmptyModel               = errors.New("empty triangle slice")
	errCalculatedNormalMismatch = errors.New("STL triangle normal not approximately equal to normal calculated from vertices")
)

// CreateSTL writes the triangles produced by r to a binary STL file at path.
func CreateSTL(path string, r Renderer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Header written last, once the triangle count is known.
	_, err = file.Seek(stlHeaderSize, io.SeekStart)
	if err != nil {
		return err
	}
	rd := &stlReader{r: r}
	n, err := io.CopyBuffer(file, rd, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return fmt.Errorf("writing STL triangles: %w", err)
	}
	if n == 0 {
		return errEmptyModel
	}
	_, err = file.WriteAt(stlHeader(int(n/stlTriangleSize)), 0)
	return err
}

// WriteSTL writes model triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errEmptyModel
	}
	if _, err := w.Write(stlHeader(len(model))); err != nil {
		return err
	}
	var b [stlTriangleSize]byte
	for _, triangle := range model {
		newSTLTriangle(triangle).put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads a binary STL model. Triangles whose stored normal disagrees
// with their winding are still returned alongside a non-nil error.
func ReadSTL(r io.Reader) (output []Triangle3, readErr error) {
	var header [stlHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, fmt.Errorf("STL header read failed: %w", err)
	}
	count := binary.LittleEndian.Uint32(header[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf            [stlTriangleSize]byte
		i              int
		normMismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errCalculatedNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i, count, readErr)
		}
	}()
	output = make([]Triangle3, 0, count)
	for i = 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d := getSTLTriangle(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errCalculatedNormalMismatch) {
				return nil, err
			}
			normMismatches++
			readErr = fmt.Errorf("%w (%d triangles)", errCalculatedNormalMismatch, normMismatches)
		}
		output = append(output, d.triangle())
	}
	return output, readErr
}

// stlReader exposes a Renderer as an io.Reader of STL triangle records.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]Triangle3
}

func (sr *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(sr.buf))
	if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	var (
		err error
		it  int // triangles written to b
		nt  int
	)
	for it < ntMax && err == nil {
		nt, err = sr.r.ReadTriangles(sr.buf[:ntMax-it])
		for _, triangle := range sr.buf[:nt] {
			newSTLTriangle(triangle).put(b[it*stlTriangleSize:])
			it++
		}
	}
	return it * stlTriangleSize, err
}

// stlHeader returns the 80 byte blank comment followed by the triangle count.
func stlHeader(count int) []byte {
	var h [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(h[80:], uint32(count))
	return h[:]
}

// stlTriangle is an STL facet record: normal and three vertices in single
// precision followed by an unused 2 byte attribute count.
type stlTriangle struct {
	N d3.Vec[float32]
	V [3]d3.Point[float32]
}

func newSTLTriangle(t Triangle3) stlTriangle {
	return stlTriangle{
		N: d3.Vec[float32](to32(t.Normal())),
		V: [3]d3.Point[float32]{to32(t.V[0]), to32(t.V[1]), to32(t.V[2])},
	}
}

func to32[V ~[3]float64](v V) d3.Point[float32] {
	return d3.Point[float32]{float32(v[0]), float32(v[1]), float32(v[2])}
}

// floats returns the record's 12 values in file order.
func (t stlTriangle) floats() (f [12]float32) {
	copy(f[:3], t.N[:])
	for i, v := range t.V {
		copy(f[3+3*i:], v[:])
	}
	return f
}

func (t stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1] // early bounds check
	for i, v := range t.floats() {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func getSTLTriangle(b []byte) (t stlTriangle) {
	_ = b[stlTriangleSize-1]
	f := func(i int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:])) }
	t.N = d3.Vec[float32]{f(0), f(1), f(2)}
	for i := range t.V {
		t.V[i] = d3.Point[float32]{f(3 + 3*i), f(4 + 3*i), f(5 + 3*i)}
	}
	return t
}

func (t stlTriangle) validate() error {
	const (
		degenerateTol = 1e-12
		normalTol     = 5e-2
	)
	for i, v := range t.floats() {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			if i < 3 {
				return errors.New("inf/NaN STL triangle normal")
			}
			return errors.New("inf/NaN STL triangle vertex")
		}
	}
	if d3.EqualWithin(t.V[0], t.V[1], degenerateTol) ||
		d3.EqualWithin(t.V[1], t.V[2], degenerateTol) ||
		d3.EqualWithin(t.V[2], t.V[0], degenerateTol) {
		return errors.New("triangle is degenerate")
	}
	if !d3.EqualWithin(t.windingNormal(), t.N, normalTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

// windingNormal is the unit normal implied by the vertex order.
func (t stlTriangle) windingNormal() d3.Vec[float32] {
	tri := t.triangle()
	n := r3.Unit(r3.Cross(
		r3.Sub(d3.R3(tri.V[1]), d3.R3(tri.V[0])),
		r3.Sub(d3.R3(tri.V[2]), d3.R3(tri.V[0])),
	))
	return d3.Vec[float32]{float32(n.X), float32(n.Y), float32(n.Z)}
}

func (t stlTriangle) triangle() (tri Triangle3) {
	for i, v := range t.V {
		tri.V[i] = d3.Point[float64]{float64(v[0]), float64(v[1]), float64(v[2])}
	}
	return tri
}
