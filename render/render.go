package render

import (
	"io"
	"math"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once every
// triangle has been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 [3]r3.Vec

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two of the triangle's vertices are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Finite returns true if no vertex component is NaN or infinite.
func (t Triangle3) Finite() bool {
	return d3.IsFinite(t[0]) && d3.IsFinite(t[1]) && d3.IsFinite(t[2])
}

// Area returns the area of the triangle.
func (t Triangle3) Area() float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0])))
}

// Triangulate splits every polygon of m with three or more vertices into
// a triangle fan anchored at its first vertex. Degenerate polygons with
// fewer vertices are skipped. Open meshes have no facets and yield none.
func Triangulate(m paramsurf.Mesh) []Triangle3 {
	if m.Open {
		return nil
	}
	n := 0
	for _, poly := range m.Polygons {
		if len(poly) >= 3 {
			n += len(poly) - 2
		}
	}
	tris := make([]Triangle3, 0, n)
	for _, poly := range m.Polygons {
		tris = appendFan(tris, m.Points, poly)
	}
	return tris
}

func appendFan(dst []Triangle3, pts []r3.Vec, poly []int) []Triangle3 {
	for i := 2; i < len(poly); i++ {
		dst = append(dst, Triangle3{pts[poly[0]], pts[poly[i-1]], pts[poly[i]]})
	}
	return dst
}

// DropNonFinite filters out triangles with NaN or infinite vertices, which
// singular surfaces produce near their poles. It returns the kept triangles,
// reusing the storage of tris, and the number dropped.
func DropNonFinite(tris []Triangle3) (kept []Triangle3, dropped int) {
	kept = tris[:0]
	for _, t := range tris {
		if t.Finite() {
			kept = append(kept, t)
		} else {
			dropped++
		}
	}
	return kept, dropped
}

// DropDegenerate filters out triangles with two vertices within tol of each
// other, such as those sampled at the poles of a sphere. It returns the kept
// triangles, reusing the storage of tris, and the number dropped.
func DropDegenerate(tris []Triangle3, tol float64) (kept []Triangle3, dropped int) {
	kept = tris[:0]
	for _, t := range tris {
		if t.Degenerate(tol) {
			dropped++
		} else {
			kept = append(kept, t)
		}
	}
	return kept, dropped
}

// meshRenderer streams the triangulated polygons of a mesh.
type meshRenderer struct {
	m         paramsurf.Mesh
	next      int // next polygon to triangulate.
	unwritten triangle3Buffer
	// finiteOnly drops triangles with non-finite vertices.
	finiteOnly bool
	dropped    int
}

// NewMeshRenderer returns a Renderer over the polygons of m. Polygons are
// triangulated as fans; see Triangulate.
func NewMeshRenderer(m paramsurf.Mesh) *meshRenderer {
	mr := &meshRenderer{m: m, unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 8)}}
	if m.Open {
		mr.next = len(m.Polygons)
	}
	return mr
}

// NewFiniteMeshRenderer is like NewMeshRenderer but skips triangles with
// NaN or infinite vertices. Dropped reports how many were skipped.
func NewFiniteMeshRenderer(m paramsurf.Mesh) *meshRenderer {
	r := NewMeshRenderer(m)
	r.finiteOnly = true
	return r
}

// Dropped returns the number of non-finite triangles skipped so far.
func (mr *meshRenderer) Dropped() int { return mr.dropped }

// ReadTriangles writes triangles rendered from the mesh into the argument buffer.
// returns number of triangles written and an error if present.
func (mr *meshRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	n += mr.unwritten.Read(dst)
	for n < len(dst) && mr.next < len(mr.m.Polygons) {
		poly := mr.m.Polygons[mr.next]
		mr.next++
		for i := 2; i < len(poly); i++ {
			t := Triangle3{mr.m.Points[poly[0]], mr.m.Points[poly[i-1]], mr.m.Points[poly[i]]}
			if mr.finiteOnly && !t.Finite() {
				mr.dropped++
				continue
			}
			if n < len(dst) {
				dst[n] = t
				n++
			} else {
				mr.unwritten.Write([]Triangle3{t})
			}
		}
	}
	if n == 0 && mr.unwritten.Len() == 0 && mr.next >= len(mr.m.Polygons) {
		return 0, io.EOF
	}
	return n, nil
}

// Float32Bounds returns the maximum absolute coordinate of the triangles,
// useful to check a model fits in float32 storage.
func Float32Bounds(tris []Triangle3) float64 {
	max := 0.0
	for _, t := range tris {
		for _, v := range t {
			max = math.Max(max, d3.Max(r3.Vec{X: math.Abs(v.X), Y: math.Abs(v.Y), Z: math.Abs(v.Z)}))
		}
	}
	return max
}
