package shapes

import (
	"math"
	"math/cmplx"

	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Patch resolution of the Calabi-Yau surface: x spans [0, π/2) and y spans
// [-π/2, π/2) in steps of π/10.
const (
	calabiYauStep = math.Pi / 10
	calabiYauNX   = 5
	calabiYauNY   = 10
)

// CalabiYau returns a 3D projection of the Calabi-Yau quintic cross section
// of the given exponent. The surface is made of exponent² patches, one per
// pair of phases (k1, k2), each sampled as calabiYauNX by calabiYauNY
// quads with unshared corners. projection is the angle mixing the two
// imaginary parts into Z.
func CalabiYau(exponent int, projection float64) (paramsurf.Mesh, error) {
	if exponent < 1 || exponent > 16 {
		return paramsurf.Mesh{}, badParam("exponent %d out of range [1, 16]", exponent)
	}
	if math.IsNaN(projection) || math.IsInf(projection, 0) {
		return paramsurf.Mesh{}, badParam("projection %g must be finite", projection)
	}
	n := float64(exponent)
	sinP, cosP := math.Sincos(projection)
	at := func(x, y float64, k1, k2 int) r3.Vec {
		w := complex(x, y)
		z1 := cmplx.Exp(complex(0, 2*math.Pi*float64(k1)/n)) * cmplx.Pow(cmplx.Cos(w), complex(2/n, 0))
		z2 := cmplx.Exp(complex(0, 2*math.Pi*float64(k2)/n)) * cmplx.Pow(cmplx.Sin(w), complex(2/n, 0))
		return r3.Vec{X: real(z1), Y: real(z2), Z: imag(z1)*cosP + imag(z2)*sinP}
	}
	quads := exponent * exponent * calabiYauNX * calabiYauNY
	m := paramsurf.Mesh{
		Points:   make([]r3.Vec, 0, 4*quads),
		Polygons: make([][]int, 0, quads),
	}
	const d = calabiYauStep
	for k1 := 0; k1 < exponent; k1++ {
		for k2 := 0; k2 < exponent; k2++ {
			for i := 0; i < calabiYauNX; i++ {
				x := float64(i) * d
				for j := 0; j < calabiYauNY; j++ {
					y := -math.Pi/2 + float64(j)*d
					base := len(m.Points)
					m.Points = append(m.Points,
						at(x, y, k1, k2), at(x+d, y, k1, k2),
						at(x+d, y+d, k1, k2), at(x, y+d, k1, k2))
					m.Polygons = append(m.Polygons, []int{base, base + 1, base + 2, base + 3})
				}
			}
		}
	}
	return withOutline(m), nil
}
