package shapes

import (
	"github.com/soypat/paramsurf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sponge returns the Menger sponge of side s at the given depth, from 1 to
// 3, as 20^depth separate cubes of side s/3^depth.
func Sponge(s float64, depth int) (paramsurf.Mesh, error) {
	return cubeFractal(s, depth, 3, func(sum int) bool { return sum > 1 })
}

// Flake returns the Menger flake of side s at the given depth, from 1 to 4,
// as 7^depth separate cubes of side s/3^depth: every level keeps the center
// cube and its six face neighbours.
func Flake(s float64, depth int) (paramsurf.Mesh, error) {
	return cubeFractal(s, depth, 4, func(sum int) bool { return sum <= 1 })
}

// cubeFractal subdivides the cube of side s in 27 and recurses into the
// subcubes kept by keep, given the sum of the absolute offsets of a subcube.
func cubeFractal(s float64, depth, maxDepth int, keep func(sum int) bool) (paramsurf.Mesh, error) {
	if err := checkSize(s); err != nil {
		return paramsurf.Mesh{}, err
	}
	if depth < 1 || depth > maxDepth {
		return paramsurf.Mesh{}, badParam("depth %d out of range [1, %d]", depth, maxDepth)
	}
	centers := []r3.Vec{{}}
	side := s
	for level := 0; level < depth; level++ {
		side /= 3
		next := make([]r3.Vec, 0, 20*len(centers))
		for _, c := range centers {
			for i := -1; i <= 1; i++ {
				for j := -1; j <= 1; j++ {
					for k := -1; k <= 1; k++ {
						if !keep(abs(i) + abs(j) + abs(k)) {
							continue
						}
						offset := r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}
						next = append(next, r3.Add(c, r3.Scale(side, offset)))
					}
				}
			}
		}
		centers = next
	}
	var m paramsurf.Mesh
	m.Points = make([]r3.Vec, 0, 8*len(centers))
	m.Polygons = make([][]int, 0, 6*len(centers))
	for _, c := range centers {
		appendBox(&m, c, side/2)
	}
	return withOutline(m), nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
