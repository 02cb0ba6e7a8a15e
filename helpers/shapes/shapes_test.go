package shapes

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

type shapeCase struct {
	name                    string
	gen                     func() (paramsurf.Mesh, error)
	points, edges, polygons int
	convex                  bool
}

func checkShapes(t *testing.T, cases []shapeCase) {
	t.Helper()
	for _, tc := range cases {
		m, err := tc.gen()
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %v", tc.name, err)
		}
		if m.Open {
			t.Errorf("%s: facet mesh marked open", tc.name)
		}
		if len(m.Points) != tc.points || len(m.Edges) != tc.edges || len(m.Polygons) != tc.polygons {
			t.Errorf("%s: got %d points, %d edges, %d polygons; want %d, %d, %d", tc.name,
				len(m.Points), len(m.Edges), len(m.Polygons), tc.points, tc.edges, tc.polygons)
		}
		checkOutline(t, tc.name, m)
		if tc.convex {
			checkOutward(t, tc.name, m)
		}
	}
}

// checkOutline verifies edges are unique and every polygon side is an edge.
func checkOutline(t *testing.T, name string, m paramsurf.Mesh) {
	t.Helper()
	key := func(a, b int) paramsurf.Edge {
		if b < a {
			a, b = b, a
		}
		return paramsurf.Edge{a, b}
	}
	edges := make(map[paramsurf.Edge]bool)
	for _, e := range m.Edges {
		k := key(e[0], e[1])
		if edges[k] {
			t.Errorf("%s: duplicate edge %v", name, e)
		}
		edges[k] = true
	}
	for i, poly := range m.Polygons {
		for j, a := range poly {
			if b := poly[(j+1)%len(poly)]; !edges[key(a, b)] {
				t.Errorf("%s: side %d-%d of polygon %d missing from edges", name, a, b, i)
			}
		}
	}
}

// checkOutward verifies facets of a convex solid are wound counter
// clockwise seen from outside.
func checkOutward(t *testing.T, name string, m paramsurf.Mesh) {
	t.Helper()
	var center r3.Vec
	for _, p := range m.Points {
		center = r3.Add(center, p)
	}
	center = r3.Scale(1/float64(len(m.Points)), center)
	for i := range m.Polygons {
		line := m.Polyline(i)
		var n, c r3.Vec
		for j, p := range line {
			n = r3.Add(n, r3.Cross(p, line[(j+1)%len(line)]))
			c = r3.Add(c, p)
		}
		c = r3.Scale(1/float64(len(line)), c)
		if r3.Dot(n, r3.Sub(c, center)) <= 0 {
			t.Errorf("%s: polygon %d %v faces inwards", name, i, m.Polygons[i])
		}
	}
}

func checkEdgeLengths(t *testing.T, name string, m paramsurf.Mesh) {
	t.Helper()
	want := r3.Norm(r3.Sub(m.Points[m.Edges[0][1]], m.Points[m.Edges[0][0]]))
	for _, e := range m.Edges {
		got := r3.Norm(r3.Sub(m.Points[e[1]], m.Points[e[0]]))
		if math.Abs(got-want) > 1e-9*want {
			t.Errorf("%s: edge %v length %g, want %g", name, e, got, want)
		}
	}
}

func TestPolyhedra(t *testing.T) {
	checkShapes(t, []shapeCase{
		{"cube", func() (paramsurf.Mesh, error) { return Cube(2) }, 8, 12, 6, true},
		{"pyramid", func() (paramsurf.Mesh, error) { return Pyramid(2) }, 5, 8, 5, true},
		{"tetrahedron", func() (paramsurf.Mesh, error) { return Tetrahedron(2) }, 4, 6, 4, true},
		{"icosahedron", func() (paramsurf.Mesh, error) { return Icosahedron(2) }, 12, 30, 20, true},
		{"dodecahedron", func() (paramsurf.Mesh, error) { return Dodecahedron(2) }, 20, 30, 12, true},
	})
	for _, gen := range []func(float64) (paramsurf.Mesh, error){Tetrahedron, Icosahedron, Dodecahedron} {
		m, err := gen(3)
		if err != nil {
			t.Fatal(err)
		}
		checkEdgeLengths(t, "regular", m)
	}
	ico, _ := Icosahedron(3)
	dod, _ := Dodecahedron(3)
	for _, p := range append(ico.Points, dod.Points...) {
		if math.Abs(r3.Norm(p)-3) > 1e-12 {
			t.Errorf("point %v not on circumsphere of radius 3", p)
		}
	}
	for _, poly := range dod.Polygons {
		if len(poly) != 5 {
			t.Errorf("dodecahedron facet %v is not a pentagon", poly)
		}
	}
	cube, _ := Cube(2)
	bb, _ := cube.Bounds()
	if bb.Min != (r3.Vec{X: -2, Y: -2, Z: -2}) || bb.Max != (r3.Vec{X: 2, Y: 2, Z: 2}) {
		t.Errorf("cube of half side 2 bounds %v", bb)
	}
}

func TestRevolve(t *testing.T) {
	checkShapes(t, []shapeCase{
		{"cylinder", func() (paramsurf.Mesh, error) { return Cylinder(50, 200, 30) }, 60, 90, 32, true},
		{"cone", func() (paramsurf.Mesh, error) { return Cone(100, 200, 63) }, 64, 126, 64, true},
		{"frustum", func() (paramsurf.Mesh, error) { return Frustum(100, 50, 150, 63) }, 126, 189, 65, true},
		{"inverted cone", func() (paramsurf.Mesh, error) { return Frustum(0, 50, 150, 8) }, 9, 16, 9, true},
		{"sphere", func() (paramsurf.Mesh, error) { return Sphere(200, 20, 20) }, 382, 780, 400, true},
		{"sphere coarse", func() (paramsurf.Mesh, error) { return Sphere(1, 2, 3) }, 5, 9, 6, true},
		{"tube", func() (paramsurf.Mesh, error) {
			return Tube(40, Ring{R: 90, Z: 0}, Ring{R: 120, Z: 120})
		}, 80, 120, 40, false},
		{"calyx", func() (paramsurf.Mesh, error) {
			return Tube(10, Ring{R: 90, Z: 0}, Ring{R: 135, Z: 60}, Ring{R: 30, Z: 180})
		}, 30, 50, 20, false},
	})
	sphere, _ := Sphere(2, 8, 12)
	for _, p := range sphere.Points {
		if math.Abs(r3.Norm(p)-2) > 1e-12 {
			t.Errorf("sphere point %v off radius 2", p)
		}
	}
}

func TestFractals(t *testing.T) {
	checkShapes(t, []shapeCase{
		{"sponge 1", func() (paramsurf.Mesh, error) { return Sponge(3, 1) }, 20 * 8, 20 * 12, 20 * 6, false},
		{"sponge 2", func() (paramsurf.Mesh, error) { return Sponge(3, 2) }, 400 * 8, 400 * 12, 400 * 6, false},
		{"flake 1", func() (paramsurf.Mesh, error) { return Flake(3, 1) }, 7 * 8, 7 * 12, 7 * 6, false},
		{"flake 3", func() (paramsurf.Mesh, error) { return Flake(3, 3) }, 343 * 8, 343 * 12, 343 * 6, false},
	})
	for _, gen := range []func(float64, int) (paramsurf.Mesh, error){Sponge, Flake} {
		m, err := gen(3, 2)
		if err != nil {
			t.Fatal(err)
		}
		bb, _ := m.Bounds()
		size := r3.Sub(bb.Max, bb.Min)
		if math.Abs(size.X-3) > 1e-12 || math.Abs(size.Y-3) > 1e-12 || math.Abs(size.Z-3) > 1e-12 {
			t.Errorf("fractal of side 3 spans %v", size)
		}
		checkEdgeLengths(t, "fractal", m)
	}
	sponge, _ := Sponge(3, 1)
	if got := r3.Norm(r3.Sub(sponge.Points[1], sponge.Points[0])); math.Abs(got-1) > 1e-12 {
		t.Errorf("depth 1 sponge cube side %g, want 1", got)
	}
}

func TestCalabiYau(t *testing.T) {
	for _, exponent := range []int{1, 3, 5} {
		quads := exponent * exponent * 50
		checkShapes(t, []shapeCase{
			{"calabi-yau", func() (paramsurf.Mesh, error) { return CalabiYau(exponent, 0.5) }, 4 * quads, 4 * quads, quads, false},
		})
		m, _ := CalabiYau(exponent, 0.5)
		for _, p := range m.Points {
			if math.IsNaN(p.X+p.Y+p.Z) || math.IsInf(p.X+p.Y+p.Z, 0) {
				t.Fatalf("exponent %d: non-finite point %v", exponent, p)
			}
			// |z1| and |z2| stay below cosh²(π/2) on the sampled patch.
			if r3.Norm(p) > 10 {
				t.Fatalf("exponent %d: point %v far from the origin", exponent, p)
			}
		}
	}
	// Projection only mixes the imaginary parts into Z.
	a, _ := CalabiYau(3, 0)
	b, _ := CalabiYau(3, math.Pi/2)
	for i := range a.Points {
		if a.Points[i].X != b.Points[i].X || a.Points[i].Y != b.Points[i].Y {
			t.Fatalf("point %d real parts differ: %v %v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestGenerate(t *testing.T) {
	names := Names()
	if len(names) != 16 || !sort.StringsAreSorted(names) {
		t.Fatalf("unexpected shape names %v", names)
	}
	for _, name := range names {
		m, err := Generate(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if m.Empty() || len(m.Edges) == 0 || len(m.Polygons) == 0 || m.Open {
			t.Errorf("%s: %d points, %d edges, %d polygons, open %v", name,
				len(m.Points), len(m.Edges), len(m.Polygons), m.Open)
		}
	}
	if _, err := Generate("hypercube"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("unknown shape error %v", err)
	}
}

func TestBadParameters(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for i, gen := range []func() (paramsurf.Mesh, error){
		func() (paramsurf.Mesh, error) { return Cube(0) },
		func() (paramsurf.Mesh, error) { return Cube(nan) },
		func() (paramsurf.Mesh, error) { return Pyramid(-1) },
		func() (paramsurf.Mesh, error) { return Dodecahedron(inf) },
		func() (paramsurf.Mesh, error) { return Cylinder(0, 1, 8) },
		func() (paramsurf.Mesh, error) { return Cone(-1, 1, 8) },
		func() (paramsurf.Mesh, error) { return Frustum(0, 0, 1, 8) },
		func() (paramsurf.Mesh, error) { return Frustum(1, 1, 0, 8) },
		func() (paramsurf.Mesh, error) { return Frustum(1, 1, 1, 2) },
		func() (paramsurf.Mesh, error) { return Frustum(1, 1, 1, paramsurf.MaxSamples+1) },
		func() (paramsurf.Mesh, error) { return Sphere(1, 1, 8) },
		func() (paramsurf.Mesh, error) { return Sphere(1, 8, 2) },
		func() (paramsurf.Mesh, error) { return Tube(8, Ring{R: 1}) },
		func() (paramsurf.Mesh, error) { return Tube(8, Ring{R: 1}, Ring{R: 0, Z: 1}) },
		func() (paramsurf.Mesh, error) { return Tube(8, Ring{R: 1}, Ring{R: 1, Z: nan}) },
		func() (paramsurf.Mesh, error) { return Sponge(1, 0) },
		func() (paramsurf.Mesh, error) { return Sponge(1, 4) },
		func() (paramsurf.Mesh, error) { return Flake(1, 5) },
		func() (paramsurf.Mesh, error) { return CalabiYau(0, 0) },
		func() (paramsurf.Mesh, error) { return CalabiYau(17, 0) },
		func() (paramsurf.Mesh, error) { return CalabiYau(3, nan) },
	} {
		m, err := gen()
		if !errors.Is(err, ErrBadParameter) {
			t.Errorf("case %d: got error %v", i, err)
		}
		if !m.Empty() {
			t.Errorf("case %d: got %d points with error", i, len(m.Points))
		}
	}
}
