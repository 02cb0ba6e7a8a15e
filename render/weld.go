package render

import (
	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface  = weldPoints{}
	_ kdtree.Comparable = weldPoint{}
)

// Weld merges points of m closer than tol to each other, such as the seams
// where a closed surface meets itself, and returns the welded mesh. Points
// keep their order of first appearance. Edges collapsed to a single point are
// dropped and consecutive repeated polygon indices are merged.
//
// Polylines of an open mesh are kept while they span two points. Facets are
// dropped once fewer than three distinct vertices remain. Non-finite points
// are never merged and a negative tol is treated as zero.
func Weld(m paramsurf.Mesh, tol float64) paramsurf.Mesh {
	if len(m.Points) == 0 {
		return m.Clone()
	}
	if tol < 0 {
		tol = 0
	}
	rep := weldRepresentatives(m.Points, tol)
	// Compact surviving points.
	newIndex := make([]int, len(m.Points))
	out := paramsurf.Mesh{Open: m.Open}
	for i, r := range rep {
		if r == i {
			newIndex[i] = len(out.Points)
			out.Points = append(out.Points, m.Points[i])
		}
	}
	for i, r := range rep {
		newIndex[i] = newIndex[r]
	}
	for _, e := range m.Edges {
		a, b := newIndex[e[0]], newIndex[e[1]]
		if a != b {
			out.Edges = append(out.Edges, paramsurf.Edge{a, b})
		}
	}
	polylines := m.Open
	for _, poly := range m.Polygons {
		welded := make([]int, 0, len(poly))
		for _, idx := range poly {
			ni := newIndex[idx]
			if len(welded) > 0 && welded[len(welded)-1] == ni {
				continue
			}
			welded = append(welded, ni)
		}
		if !polylines && len(welded) > 1 && welded[0] == welded[len(welded)-1] {
			// Last vertex welded onto the first.
			welded = welded[:len(welded)-1]
		}
		if (!polylines && len(welded) < 3) || len(welded) < 2 {
			continue
		}
		out.Polygons = append(out.Polygons, welded)
	}
	return out
}

// weldRepresentatives returns for every point the lowest index of a point
// within tol of it, following chains so representatives are stable.
func weldRepresentatives(pts []r3.Vec, tol float64) []int {
	rep := make([]int, len(pts))
	finite := make(weldPoints, 0, len(pts))
	for i, p := range pts {
		rep[i] = i
		if d3.IsFinite(p) {
			finite = append(finite, weldPoint{p: p, idx: i})
		}
	}
	if len(finite) == 0 {
		return rep
	}
	// The tree partitions its argument in place.
	tree := kdtree.New(append(weldPoints(nil), finite...), false)
	tol2 := tol * tol
	for _, q := range finite {
		keep := kdtree.NewDistKeeper(tol2)
		tree.NearestSet(keep, q)
		best := q.idx
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // sentinel.
			}
			if j := c.Comparable.(weldPoint).idx; j < best {
				best = j
			}
		}
		// Points earlier in the slice have already been resolved.
		rep[q.idx] = rep[best]
	}
	return rep
}

// weldPoint is a mesh point tagged with its original index.
type weldPoint struct {
	p   r3.Vec
	idx int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a weldPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return d3.Component(a.p, int(d)) - d3.Component(b.(weldPoint).p, int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a weldPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a weldPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.p, b.(weldPoint).p))
}

type weldPoints []weldPoint

func (p weldPoints) Index(i int) kdtree.Comparable { return p[i] }

func (p weldPoints) Len() int { return len(p) }

// Pivot partitions the list based on the dimension specified.
func (p weldPoints) Pivot(d kdtree.Dim) int {
	pl := weldPlane{dim: int(d), points: p}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

func (p weldPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type weldPlane struct {
	dim    int
	points weldPoints
}

func (p weldPlane) Less(i, j int) bool {
	return d3.Component(p.points[i].p, p.dim) < d3.Component(p.points[j].p, p.dim)
}

func (p weldPlane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }

func (p weldPlane) Len() int { return len(p.points) }

func (p weldPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
