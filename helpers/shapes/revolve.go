package shapes

import (
	"math"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ring is one cross section of a Tube: a circle of radius R at height Z.
type Ring struct {
	R, Z float64
}

// ring appends n points on the circle of radius r at height z, starting on
// the +X axis and turning counter clockwise about Z. A zero radius appends
// a single point. It returns the indices of the circle.
func ring(m *paramsurf.Mesh, r, z float64, n int) []int {
	if r == 0 {
		m.Points = append(m.Points, r3.Vec{Z: z})
		idx := make([]int, n)
		for j := range idx {
			idx[j] = len(m.Points) - 1
		}
		return idx
	}
	idx := make([]int, n)
	for j := range idx {
		sin, cos := math.Sincos(2 * math.Pi * float64(j) / float64(n))
		idx[j] = len(m.Points)
		m.Points = append(m.Points, r3.Vec{X: r * cos, Y: r * sin, Z: z})
	}
	return idx
}

// band appends the side facets joining ring lo to ring hi. Facets touching
// a collapsed ring are triangles.
func band(m *paramsurf.Mesh, lo, hi []int) {
	n := len(lo)
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		poly := []int{lo[j], lo[k], hi[k], hi[j]}
		switch {
		case lo[j] == lo[k]:
			poly = []int{lo[j], hi[k], hi[j]}
		case hi[j] == hi[k]:
			poly = []int{lo[j], lo[k], hi[j]}
		}
		m.Polygons = append(m.Polygons, poly)
	}
}

func checkSegments(n, least int) error {
	if n < least || n > paramsurf.MaxSamples {
		return badParam("%d segments out of range [%d, %d]", n, least, paramsurf.MaxSamples)
	}
	return nil
}

func checkRadius(r float64) error {
	if !(r >= 0) || math.IsInf(r, 0) {
		return badParam("radius %g must be non-negative and finite", r)
	}
	return nil
}

// Frustum returns the closed conical frustum of height h along Z centered
// at the origin, with bottom radius rb and top radius rt, approximated by
// n segments. A zero radius collapses that end to an apex.
func Frustum(rb, rt, h float64, n int) (paramsurf.Mesh, error) {
	switch {
	case checkRadius(rb) != nil:
		return paramsurf.Mesh{}, checkRadius(rb)
	case checkRadius(rt) != nil:
		return paramsurf.Mesh{}, checkRadius(rt)
	case rb == 0 && rt == 0:
		return paramsurf.Mesh{}, badParam("frustum needs a non-zero radius")
	case checkSize(h) != nil:
		return paramsurf.Mesh{}, checkSize(h)
	case checkSegments(n, 3) != nil:
		return paramsurf.Mesh{}, checkSegments(n, 3)
	}
	var m paramsurf.Mesh
	bottom := ring(&m, rb, -h/2, n)
	top := ring(&m, rt, h/2, n)
	band(&m, bottom, top)
	if rb > 0 {
		base := make([]int, n)
		for j := range base {
			base[j] = bottom[n-1-j]
		}
		m.Polygons = append(m.Polygons, base)
	}
	if rt > 0 {
		m.Polygons = append(m.Polygons, append([]int(nil), top...))
	}
	return withOutline(m), nil
}

// Cylinder returns the closed cylinder of radius r and height h along Z:
// 2n points, n side quads and two caps.
func Cylinder(r, h float64, n int) (paramsurf.Mesh, error) {
	if r == 0 {
		return paramsurf.Mesh{}, badParam("cylinder radius must be positive")
	}
	return Frustum(r, r, h, n)
}

// Cone returns the closed cone of base radius r and height h along Z with
// its apex on +Z: n+1 points, n side triangles and the base.
func Cone(r, h float64, n int) (paramsurf.Mesh, error) {
	if r == 0 {
		return paramsurf.Mesh{}, badParam("cone radius must be positive")
	}
	return Frustum(r, 0, h, n)
}

// Sphere returns the latitude-longitude sphere of radius r centered at the
// origin with lats bands and longs meridians. The poles are single points
// so the first and last bands are triangles.
func Sphere(r float64, lats, longs int) (paramsurf.Mesh, error) {
	switch {
	case checkSize(r) != nil:
		return paramsurf.Mesh{}, checkSize(r)
	case checkSegments(lats, 2) != nil:
		return paramsurf.Mesh{}, checkSegments(lats, 2)
	case checkSegments(longs, 3) != nil:
		return paramsurf.Mesh{}, checkSegments(longs, 3)
	}
	var m paramsurf.Mesh
	prev := ring(&m, 0, r, longs)
	for i := 1; i <= lats; i++ {
		sin, cos := math.Sincos(math.Pi * float64(i) / float64(lats))
		rho := r * sin
		if i == lats {
			rho = 0
		}
		cur := ring(&m, rho, r*cos, longs)
		// Walking down from the north pole, so lower ring first.
		band(&m, cur, prev)
		prev = cur
	}
	return withOutline(m), nil
}

// Tube returns the open surface of revolution about Z through the given
// cross sections, each approximated by n segments. Ends are not capped.
func Tube(n int, profile ...Ring) (paramsurf.Mesh, error) {
	if len(profile) < 2 {
		return paramsurf.Mesh{}, badParam("tube needs at least 2 rings, got %d", len(profile))
	}
	if err := checkSegments(n, 3); err != nil {
		return paramsurf.Mesh{}, err
	}
	var m paramsurf.Mesh
	var prev []int
	for i, rg := range profile {
		if !(rg.R > 0) || math.IsInf(rg.R, 0) || math.IsNaN(rg.Z) || math.IsInf(rg.Z, 0) {
			return paramsurf.Mesh{}, badParam("ring %d: radius %g at height %g", i, rg.R, rg.Z)
		}
		cur := ring(&m, rg.R, rg.Z, n)
		if prev != nil {
			band(&m, prev, cur)
		}
		prev = cur
	}
	return withOutline(m), nil
}
