package paramsurf

import "gonum.org/v1/gonum/spatial/r3"

// RenderMode selects the polygon topology emitted by SampleMesh.
type RenderMode uint8

const (
	// RenderAlternate emits one triangle per grid cell, skipping every other
	// triangle of the cell. It draws half as many facets as RenderTriangles.
	RenderAlternate RenderMode = iota + 1
	// RenderTriangles emits both triangles of every grid cell.
	RenderTriangles
	// RenderQuads emits one quadrilateral per grid cell.
	RenderQuads
)

func (m RenderMode) String() string {
	switch m {
	case RenderAlternate:
		return "alternate"
	case RenderTriangles:
		return "triangles"
	case RenderQuads:
		return "quads"
	}
	return "RenderMode(?)"
}

// ParseRenderMode returns the RenderMode named by its String form.
func ParseRenderMode(s string) (RenderMode, bool) {
	for m := RenderAlternate; m <= RenderQuads; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// polylineBuilder accumulates points into polylines with move/draw semantics.
// A move starts a new polyline and every draw extends the current one by one
// point and one edge.
type polylineBuilder struct {
	m    Mesh
	last int
}

func (b *polylineBuilder) move(p r3.Vec) {
	b.last = len(b.m.Points)
	b.m.Points = append(b.m.Points, p)
	b.m.Polygons = append(b.m.Polygons, []int{b.last})
}

func (b *polylineBuilder) draw(p r3.Vec) {
	idx := len(b.m.Points)
	b.m.Points = append(b.m.Points, p)
	b.m.Edges = append(b.m.Edges, Edge{b.last, idx})
	cur := len(b.m.Polygons) - 1
	b.m.Polygons[cur] = append(b.m.Polygons[cur], idx)
	b.last = idx
}

// SampleAlongU returns the family of iso-curves of constant u. One open polyline
// is emitted per u sample, walking v over its whole domain. Each polyline starts
// with a move to (u, v.Begin) followed by a draw at every v sample, so it holds
// one more point than there are v samples.
func SampleAlongU(s Surface) Mesh {
	return sampleCurves(s, s.u, s.v, false)
}

// SampleAlongV returns the family of iso-curves of constant v. It is SampleAlongU
// with the roles of u and v swapped.
func SampleAlongV(s Surface) Mesh {
	return sampleCurves(s, s.v, s.u, true)
}

// sampleCurves walks outer and, for each outer value, the complete inner domain.
// If swap is set outer is the v parameter.
func sampleCurves(s Surface, outer, inner Domain, swap bool) Mesh {
	if s.IsZero() || outer.Validate() != nil || inner.Validate() != nil {
		return Mesh{}
	}
	at := s.Point
	if swap {
		at = func(u, v float64) r3.Vec { return s.Point(v, u) }
	}
	no, ni := outer.Samples(), inner.Samples()
	var b polylineBuilder
	b.m.Open = true
	if no > 0 && ni > 0 {
		b.m.Points = make([]r3.Vec, 0, no*(ni+1))
		b.m.Edges = make([]Edge, 0, no*ni)
		b.m.Polygons = make([][]int, 0, no)
	}
	for a := outer.Begin; a <= outer.End; a += outer.Step {
		b.move(at(a, inner.Begin))
		for c := inner.Begin; c <= inner.End; c += inner.Step {
			b.draw(at(a, c))
		}
	}
	return b.m
}

// SampleMesh samples the surface over a full (v,u) grid and connects neighbouring
// samples into polygons according to mode. Points are stored v-major, so the
// sample at grid position (iv, iu) has index iv*nu+iu where nu is the number of
// u samples. A grid of nu by nv samples has (nu-1)*(nv-1) cells.
//
// The grid bounds are relaxed by half a step so that floating point accumulation
// does not drop the last row or column. Unknown modes behave like RenderAlternate.
func SampleMesh(s Surface, mode RenderMode) Mesh {
	nu, nv := s.u.gridSamples(), s.v.gridSamples()
	if s.IsZero() || nu == 0 || nv == 0 {
		return Mesh{}
	}
	points := make([]r3.Vec, 0, nu*nv)
	vmax := s.v.End + s.v.Step/2
	umax := s.u.End + s.u.Step/2
	for v := s.v.Begin; v <= vmax; v += s.v.Step {
		row := 0
		for u := s.u.Begin; u <= umax; u += s.u.Step {
			points = append(points, s.Point(u, v))
			row++
		}
		if row != nu {
			panic("bug: inconsistent grid row length")
		}
	}
	cells := (nu - 1) * (nv - 1)
	var polys [][]int
	switch mode {
	case RenderTriangles:
		polys = make([][]int, 0, 2*cells)
	default:
		polys = make([][]int, 0, cells)
	}
	for iv := 0; iv < nv-1; iv++ {
		for iu := 0; iu < nu-1; iu++ {
			a := iv*nu + iu
			b := (iv+1)*nu + iu
			c := (iv+1)*nu + iu + 1
			d := iv*nu + iu + 1
			switch mode {
			case RenderQuads:
				polys = append(polys, []int{a, d, c, b})
			case RenderTriangles:
				polys = append(polys, []int{a, c, b}, []int{a, d, c})
			default:
				polys = append(polys, []int{a, c, b})
			}
		}
	}
	return Mesh{Points: points, Polygons: polys}
}

// GridSize returns the number of u and v samples SampleMesh uses for s.
func GridSize(s Surface) (nu, nv int) {
	return s.u.gridSamples(), s.v.gridSamples()
}
