// Package shapes generates polyhedra, solids of revolution, cube fractals and
// the Calabi-Yau surface as facet meshes. Every mesh carries the outline of
// its facets as wireframe edges.
package shapes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrUnknownShape is returned by Generate for names not listed by Names.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrBadParameter is returned for sizes, counts or levels a shape can not be built with.
	ErrBadParameter = errors.New("bad shape parameter")
)

func badParam(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadParameter, fmt.Sprintf(format, args...))
}

// generators holds the shapes available by name, with their default parameters.
var generators = map[string]func() (paramsurf.Mesh, error){
	"cube":           func() (paramsurf.Mesh, error) { return Cube(200) },
	"pyramid":        func() (paramsurf.Mesh, error) { return Pyramid(200) },
	"tetrahedron":    func() (paramsurf.Mesh, error) { return Tetrahedron(200) },
	"icosahedron":    func() (paramsurf.Mesh, error) { return Icosahedron(200) },
	"dodecahedron":   func() (paramsurf.Mesh, error) { return Dodecahedron(200) },
	"cylinder":       func() (paramsurf.Mesh, error) { return Cylinder(50, 200, 30) },
	"cone":           func() (paramsurf.Mesh, error) { return Cone(100, 200, 63) },
	"conicalFrustum": func() (paramsurf.Mesh, error) { return Frustum(100, 50, 150, 63) },
	"sphere":         func() (paramsurf.Mesh, error) { return Sphere(200, 20, 20) },
	"tube": func() (paramsurf.Mesh, error) {
		return Tube(40, Ring{R: 90, Z: 0}, Ring{R: 120, Z: 120})
	},
	"diamond": func() (paramsurf.Mesh, error) {
		return Tube(10, Ring{R: 150, Z: 0}, Ring{R: 225, Z: 100}, Ring{R: 150, Z: 200})
	},
	"doubleDiamond": func() (paramsurf.Mesh, error) {
		return Tube(10, Ring{R: 150, Z: 0}, Ring{R: 225, Z: 100}, Ring{R: 150, Z: 200}, Ring{R: 225, Z: 300}, Ring{R: 100, Z: 400})
	},
	"calyx": func() (paramsurf.Mesh, error) {
		return Tube(40, Ring{R: 90, Z: 0}, Ring{R: 135, Z: 60}, Ring{R: 90, Z: 120}, Ring{R: 60, Z: 150},
			Ring{R: 30, Z: 180}, Ring{R: 30, Z: 300}, Ring{R: 135, Z: 330})
	},
	"sponge": func() (paramsurf.Mesh, error) { return Sponge(300, 2) },
	"flake":  func() (paramsurf.Mesh, error) { return Flake(300, 3) },
	"calabiYau": func() (paramsurf.Mesh, error) {
		m, err := CalabiYau(6, 3)
		return m.Scale(100), err
	},
}

// Names returns the names accepted by Generate in lexical order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate builds the named shape with its default parameters.
func Generate(name string) (paramsurf.Mesh, error) {
	gen, ok := generators[name]
	if !ok {
		return paramsurf.Mesh{}, fmt.Errorf("%w %q", ErrUnknownShape, name)
	}
	return gen()
}

// withOutline sets the edges of m to the sides of its polygons. Every side
// shared by two polygons is listed once, in order of first appearance.
func withOutline(m paramsurf.Mesh) paramsurf.Mesh {
	seen := make(map[paramsurf.Edge]bool)
	m.Edges = make([]paramsurf.Edge, 0, 2*len(m.Polygons))
	for _, poly := range m.Polygons {
		for i, a := range poly {
			b := poly[(i+1)%len(poly)]
			key := paramsurf.Edge{a, b}
			if b < a {
				key = paramsurf.Edge{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			m.Edges = append(m.Edges, paramsurf.Edge{a, b})
		}
	}
	return m
}

// appendBox appends an axis aligned cube of half side h centered at c.
func appendBox(m *paramsurf.Mesh, c r3.Vec, h float64) {
	base := len(m.Points)
	for _, p := range cubeCorners {
		m.Points = append(m.Points, r3.Add(c, r3.Scale(h, p)))
	}
	for _, face := range cubeFaces {
		poly := make([]int, len(face))
		for i, idx := range face {
			poly[i] = base + idx
		}
		m.Polygons = append(m.Polygons, poly)
	}
}
