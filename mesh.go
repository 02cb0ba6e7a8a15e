package paramsurf

import (
	"fmt"

	"github.com/soypat/paramsurf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Edge joins two points of a Mesh by index.
type Edge [2]int

// Mesh is sampled surface geometry. Edges and Polygons reference Points by
// position. Polygons are implicitly closed facets: the first index is not
// repeated at the end. Polylines produced by the iso-curve samplers are
// stored as Polygons as well with Open set; their segments are listed in
// Edges. Facet meshes may list wireframe Edges too.
type Mesh struct {
	Points   []r3.Vec
	Edges    []Edge
	Polygons [][]int
	// Open is set when Polygons hold open polylines instead of facets.
	Open bool
}

// Validate checks that every edge and polygon index references a point of m.
func (m Mesh) Validate() error {
	n := len(m.Points)
	for i, e := range m.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("edge %d %v out of range for %d points", i, e, n)
		}
	}
	for i, poly := range m.Polygons {
		if len(poly) == 0 {
			return fmt.Errorf("polygon %d is empty", i)
		}
		for _, idx := range poly {
			if idx < 0 || idx >= n {
				return fmt.Errorf("polygon %d index %d out of range for %d points", i, idx, n)
			}
		}
	}
	return nil
}

// Empty reports whether the mesh has no points.
func (m Mesh) Empty() bool { return len(m.Points) == 0 }

// Bounds returns the bounding box of the finite points of the mesh.
// Non-finite points produced by singular surfaces are ignored.
func (m Mesh) Bounds() (r3.Box, bool) {
	bb, ok := d3.Set(m.Points).Bounds()
	return r3.Box(bb), ok
}

// Polyline returns the points of the i'th polygon in order.
func (m Mesh) Polyline(i int) []r3.Vec {
	poly := m.Polygons[i]
	line := make([]r3.Vec, len(poly))
	for j, idx := range poly {
		line[j] = m.Points[idx]
	}
	return line
}

// Clone returns a deep copy of m.
func (m Mesh) Clone() Mesh {
	c := Mesh{
		Points: append([]r3.Vec(nil), m.Points...),
		Edges:  append([]Edge(nil), m.Edges...),
		Open:   m.Open,
	}
	if m.Polygons != nil {
		c.Polygons = make([][]int, len(m.Polygons))
		for i := range m.Polygons {
			c.Polygons[i] = append([]int(nil), m.Polygons[i]...)
		}
	}
	return c
}

// Transform returns a copy of m with fn applied to every point.
// Topology is shared with m.
func (m Mesh) Transform(fn func(r3.Vec) r3.Vec) Mesh {
	pts := make([]r3.Vec, len(m.Points))
	for i, p := range m.Points {
		pts[i] = fn(p)
	}
	return Mesh{Points: pts, Edges: m.Edges, Polygons: m.Polygons, Open: m.Open}
}

// Scale returns m with every point scaled by k about the origin.
func (m Mesh) Scale(k float64) Mesh {
	return m.Transform(func(p r3.Vec) r3.Vec { return r3.Scale(k, p) })
}

// Rotate returns m rotated by angle radians about axis through the origin.
func (m Mesh) Rotate(axis r3.Vec, angle float64) Mesh {
	q := d3.RotationQuat(axis, angle)
	return m.Transform(func(p r3.Vec) r3.Vec { return d3.Rotate(q, p) })
}

// Translate returns m with every point displaced by t.
func (m Mesh) Translate(t r3.Vec) Mesh {
	return m.Transform(func(p r3.Vec) r3.Vec { return r3.Add(p, t) })
}
