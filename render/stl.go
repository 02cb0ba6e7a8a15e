package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 84
	stlFacetSize  = 50
	// facetsPerChunk is the number of facets encoded per Read call when streaming.
	facetsPerChunk = 1 << 10
)

var (
	errEmptyModel = errors.New("no triangles to write")
	// errNormalMismatch is returned when a facet's stored normal disagrees with
	// the normal computed from its vertices. High resolution models may trigger it
	// while still being usable.
	errNormalMismatch = errors.New("stored facet normal differs from vertex winding normal")
)

// stlHeader is the 80 byte comment followed by the facet count.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlFacet is a single binary STL record in float32 precision.
type stlFacet struct {
	Normal ms3.Vec
	Tri    ms3.Triangle
}

func newFacet(t Triangle3) stlFacet {
	var f stlFacet
	for i := range t {
		f.Tri[i] = toMS3(t[i])
	}
	f.Normal = f.windingNormal()
	return f
}

func toMS3(v r3.Vec) ms3.Vec {
	return ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromMS3(v ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// windingNormal computes the facet normal from its vertices. Vertices are
// scaled up before the cross product to keep precision on small facets.
func (f stlFacet) windingNormal() ms3.Vec {
	a := ms3.Scale(10, f.Tri[0])
	e1 := ms3.Sub(ms3.Scale(10, f.Tri[1]), a)
	e2 := ms3.Sub(ms3.Scale(10, f.Tri[2]), a)
	n := ms3.Cross(e1, e2)
	l := ms3.Norm(n)
	if l == 0 || math32.IsNaN(l) {
		return ms3.Vec{}
	}
	return ms3.Scale(1/l, n)
}

func (f stlFacet) put(b []byte) {
	_ = b[stlFacetSize-1]
	putVec(b, f.Normal)
	putVec(b[12:], f.Tri[0])
	putVec(b[24:], f.Tri[1])
	putVec(b[36:], f.Tri[2])
	binary.LittleEndian.PutUint16(b[48:], 0) // attribute byte count.
}

func (f *stlFacet) get(b []byte) {
	_ = b[stlFacetSize-1]
	f.Normal = getVec(b)
	f.Tri[0] = getVec(b[12:])
	f.Tri[1] = getVec(b[24:])
	f.Tri[2] = getVec(b[36:])
}

func putVec(b []byte, v ms3.Vec) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

func getVec(b []byte) ms3.Vec {
	return ms3.Vec{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b)),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func badVec(v ms3.Vec) bool {
	return math32.IsNaN(v.X) || math32.IsInf(v.X, 0) ||
		math32.IsNaN(v.Y) || math32.IsInf(v.Y, 0) ||
		math32.IsNaN(v.Z) || math32.IsInf(v.Z, 0)
}

func closeVec(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol && math32.Abs(a.Y-b.Y) <= tol && math32.Abs(a.Z-b.Z) <= tol
}

func (f stlFacet) validate() error {
	const normTol = 5e-2
	if badVec(f.Normal) {
		return errors.New("inf/NaN facet normal")
	}
	if badVec(f.Tri[0]) || badVec(f.Tri[1]) || badVec(f.Tri[2]) {
		return errors.New("inf/NaN facet vertex")
	}
	if closeVec(f.Tri[0], f.Tri[1], 0) || closeVec(f.Tri[1], f.Tri[2], 0) || closeVec(f.Tri[2], f.Tri[0], 0) {
		return errors.New("degenerate facet")
	}
	calc := f.windingNormal()
	flipped := ms3.Scale(-1, calc)
	if !closeVec(calc, f.Normal, normTol) && !closeVec(flipped, f.Normal, normTol) {
		return errNormalMismatch
	}
	return nil
}

func (f stlFacet) triangle() Triangle3 {
	return Triangle3{fromMS3(f.Tri[0]), fromMS3(f.Tri[1]), fromMS3(f.Tri[2])}
}

// WriteSTL writes the triangles to w as a binary STL file.
// Triangles with non-finite vertices should be removed beforehand
// with DropNonFinite since STL readers reject them.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errEmptyModel
	}
	if uint64(len(model)) > math.MaxUint32 {
		return fmt.Errorf("%d triangles exceed STL facet count limit", len(model))
	}
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	buf := make([]byte, stlFacetSize*min(len(model), facetsPerChunk))
	for len(model) > 0 {
		n := min(len(model), facetsPerChunk)
		for i, t := range model[:n] {
			newFacet(t).put(buf[i*stlFacetSize:])
		}
		if _, err := w.Write(buf[:n*stlFacetSize]); err != nil {
			return err
		}
		model = model[n:]
	}
	return nil
}

// CreateSTL streams the triangles of r into a binary STL file at path.
// The facet count is written once the renderer is exhausted.
func CreateSTL(path string, r Renderer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	// Header is written last.
	if _, err = file.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	n, err := io.CopyBuffer(file, &stlEncoder{r: r}, make([]byte, stlFacetSize*facetsPerChunk))
	if err != nil {
		return err
	}
	if n == 0 {
		return errEmptyModel
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	header := stlHeader{Count: uint32(n / stlFacetSize)}
	return binary.Write(file, binary.LittleEndian, &header)
}

// stlEncoder adapts a Renderer into an io.Reader of binary STL facets.
type stlEncoder struct {
	r   Renderer
	buf [facetsPerChunk]Triangle3
}

func (e *stlEncoder) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlFacetSize, len(e.buf))
	if ntMax == 0 {
		return 0, errors.New("STL encoder needs room for at least one facet")
	}
	nt, err := e.r.ReadTriangles(e.buf[:ntMax])
	if nt > ntMax {
		panic("bug: ReadTriangles returned more triangles than requested")
	}
	for i, t := range e.buf[:nt] {
		newFacet(t).put(b[i*stlFacetSize:])
	}
	return nt * stlFacetSize, err
}

// ReadSTL decodes a binary STL stream. Facets whose stored normal does not
// match their winding are still returned along with an error wrapping the
// mismatch so callers may choose to ignore it.
func ReadSTL(r io.Reader) (output []Triangle3, readErr error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("EOF while reading STL header")
		}
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 facets")
	}
	var (
		buf        [stlFacetSize]byte
		f          stlFacet
		i          int
		mismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL facets read: %w", i, header.Count, readErr)
		}
	}()
	output = make([]Triangle3, 0, min(int(header.Count), 1<<20))
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		f.get(buf[:])
		if err := f.validate(); err != nil {
			if !errors.Is(err, errNormalMismatch) {
				return nil, err
			}
			mismatches++
			readErr = err
		}
		output = append(output, f.triangle())
	}
	if mismatches > 0 {
		readErr = fmt.Errorf("%d facets: %w", mismatches, readErr)
	}
	return output, readErr
}
