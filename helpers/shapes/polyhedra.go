package shapes

import (
	"math"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Facets of the polyhedra are wound counter clockwise seen from outside.

var (
	cubeCorners = []r3.Vec{
		{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1},
	}
	cubeFaces = [][]int{
		{0, 1, 2, 3}, {1, 5, 6, 2}, {5, 4, 7, 6},
		{4, 0, 3, 7}, {4, 5, 1, 0}, {3, 2, 6, 7},
	}
	icosahedronFaces = [][]int{
		{4, 8, 7}, {4, 7, 9}, {5, 6, 11}, {5, 10, 6}, {0, 4, 3},
		{0, 3, 5}, {2, 7, 1}, {2, 1, 6}, {8, 0, 11}, {8, 11, 1},
		{9, 10, 3}, {9, 2, 10}, {8, 4, 0}, {11, 0, 5}, {4, 9, 3},
		{5, 3, 10}, {7, 8, 1}, {6, 1, 11}, {7, 2, 9}, {6, 10, 2},
	}
)

func checkSize(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return badParam("size %g must be positive and finite", s)
	}
	return nil
}

// Cube returns the cube of half side s centered at the origin:
// 8 points and 6 square facets.
func Cube(s float64) (paramsurf.Mesh, error) {
	if err := checkSize(s); err != nil {
		return paramsurf.Mesh{}, err
	}
	var m paramsurf.Mesh
	appendBox(&m, r3.Vec{}, s)
	return withOutline(m), nil
}

// Pyramid returns a square based pyramid with base half side s on the XY
// plane and apex at height 1.5*s.
func Pyramid(s float64) (paramsurf.Mesh, error) {
	if err := checkSize(s); err != nil {
		return paramsurf.Mesh{}, err
	}
	m := paramsurf.Mesh{
		Points: []r3.Vec{
			{X: -s, Y: -s}, {X: s, Y: -s}, {X: s, Y: s}, {X: -s, Y: s},
			{Z: 1.5 * s},
		},
		Polygons: [][]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}, {0, 3, 2, 1}},
	}
	return withOutline(m), nil
}

// Tetrahedron returns the regular tetrahedron inscribed in the cube of half
// side s.
func Tetrahedron(s float64) (paramsurf.Mesh, error) {
	if err := checkSize(s); err != nil {
		return paramsurf.Mesh{}, err
	}
	m := paramsurf.Mesh{
		Points: []r3.Vec{
			{X: s, Y: s, Z: s}, {X: s, Y: -s, Z: -s},
			{X: -s, Y: s, Z: -s}, {X: -s, Y: -s, Z: s},
		},
		Polygons: [][]int{{0, 1, 2}, {1, 3, 2}, {0, 2, 3}, {0, 3, 1}},
	}
	return withOutline(m), nil
}

func icosahedronPoints(r float64) []r3.Vec {
	phi := (1 + math.Sqrt(5)) / 2
	tau := phi / math.Sqrt(1+phi*phi) * r
	one := 1 / math.Sqrt(1+phi*phi) * r
	return []r3.Vec{
		{X: tau, Y: one}, {X: -tau, Y: one}, {X: -tau, Y: -one}, {X: tau, Y: -one},
		{X: one, Z: tau}, {X: one, Z: -tau}, {X: -one, Z: -tau}, {X: -one, Z: tau},
		{Y: tau, Z: one}, {Y: -tau, Z: one}, {Y: -tau, Z: -one}, {Y: tau, Z: -one},
	}
}

// Icosahedron returns the regular icosahedron of circumradius r:
// 12 points, 30 edges and 20 triangles.
func Icosahedron(r float64) (paramsurf.Mesh, error) {
	if err := checkSize(r); err != nil {
		return paramsurf.Mesh{}, err
	}
	m := paramsurf.Mesh{Points: icosahedronPoints(r)}
	for _, f := range icosahedronFaces {
		m.Polygons = append(m.Polygons, append([]int(nil), f...))
	}
	return withOutline(m), nil
}

// Dodecahedron returns the regular dodecahedron of circumradius r:
// 20 points, 30 edges and 12 pentagons. It is built as the dual of the
// icosahedron, one point per icosahedron facet.
func Dodecahedron(r float64) (paramsurf.Mesh, error) {
	if err := checkSize(r); err != nil {
		return paramsurf.Mesh{}, err
	}
	ico := icosahedronPoints(1)
	var m paramsurf.Mesh
	for _, f := range icosahedronFaces {
		c := r3.Add(r3.Add(ico[f[0]], ico[f[1]]), ico[f[2]])
		m.Points = append(m.Points, r3.Scale(r, r3.Unit(c)))
	}
	// Walk the facets around every icosahedron vertex. The facet following
	// (v, a, b) is the one where b comes right after v.
	for v := range ico {
		var start = -1
		for fi, f := range icosahedronFaces {
			if cornerIndex(f, v) >= 0 {
				start = fi
				break
			}
		}
		poly := []int{start}
		for cur := start; ; {
			f := icosahedronFaces[cur]
			b := f[(cornerIndex(f, v)+2)%3]
			next := -1
			for fi, g := range icosahedronFaces {
				if k := cornerIndex(g, v); k >= 0 && g[(k+1)%3] == b {
					next = fi
					break
				}
			}
			if next == start {
				break
			}
			poly = append(poly, next)
			cur = next
		}
		m.Polygons = append(m.Polygons, poly)
	}
	return withOutline(m), nil
}

// cornerIndex returns the position of v in facet f or -1.
func cornerIndex(f []int, v int) int {
	for i, idx := range f {
		if idx == v {
			return i
		}
	}
	return -1
}
