package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// faceStride is the number of values per face record of the mesh JSON
// format: three vertex indices followed by five metadata fields.
const faceStride = 8

// meshJSON is the flat-array mesh asset layout.
type meshJSON struct {
	Vertices     []float64     `json:"vertices"`
	Faces        []float64     `json:"faces"`
	MorphTargets []morphTarget `json:"morphTargets"`
}

type morphTarget struct {
	Name     string    `json:"name,omitempty"`
	Vertices []float64 `json:"vertices"`
}

// DecodeMeshJSON reads a mesh asset with flat "vertices" triples, "faces"
// records of eight values each and optional "morphTargets". Only the first
// three values of each face record are used. Every morph target holds
// alternative positions for the points of the mesh.
func DecodeMeshJSON(r io.Reader) (m paramsurf.Mesh, morphs [][]r3.Vec, err error) {
	var raw meshJSON
	if err = json.NewDecoder(r).Decode(&raw); err != nil {
		return m, nil, fmt.Errorf("decoding mesh JSON: %w", err)
	}
	m.Points, err = makePoints(raw.Vertices)
	if err != nil {
		return paramsurf.Mesh{}, nil, fmt.Errorf("vertices: %w", err)
	}
	if len(raw.Faces)%faceStride != 0 {
		return paramsurf.Mesh{}, nil, fmt.Errorf("faces length %d not a multiple of %d", len(raw.Faces), faceStride)
	}
	m.Polygons = make([][]int, 0, len(raw.Faces)/faceStride)
	for off := 0; off < len(raw.Faces); off += faceStride {
		face := make([]int, 3)
		for i, f := range raw.Faces[off : off+3] {
			idx := int(f)
			if float64(idx) != f || idx < 0 || idx >= len(m.Points) {
				return paramsurf.Mesh{}, nil, fmt.Errorf("face %d: bad vertex index %v for %d vertices", off/faceStride, f, len(m.Points))
			}
			face[i] = idx
		}
		m.Polygons = append(m.Polygons, face)
	}
	for i, mt := range raw.MorphTargets {
		pts, err := makePoints(mt.Vertices)
		if err != nil {
			return paramsurf.Mesh{}, nil, fmt.Errorf("morph target %d: %w", i, err)
		}
		if len(pts) != len(m.Points) {
			return paramsurf.Mesh{}, nil, fmt.Errorf("morph target %d has %d vertices, mesh has %d", i, len(pts), len(m.Points))
		}
		morphs = append(morphs, pts)
	}
	return m, morphs, nil
}

func makePoints(flat []float64) ([]r3.Vec, error) {
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("length %d not a multiple of 3", len(flat))
	}
	pts := make([]r3.Vec, len(flat)/3)
	for i := range pts {
		pts[i] = r3.Vec{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
	}
	return pts, nil
}

// EncodeMeshJSON writes m in the layout read by DecodeMeshJSON. Polygons are
// fan triangulated and face metadata fields are zero. Polylines (polygons
// with fewer than three indices) are not representable and are skipped.
// Points must be finite; see DropNonFinite and Weld.
func EncodeMeshJSON(w io.Writer, m paramsurf.Mesh, morphs ...[]r3.Vec) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Open {
		return errOpenMesh
	}
	raw := meshJSON{MorphTargets: []morphTarget{}}
	var err error
	raw.Vertices, err = flatPoints(m.Points)
	if err != nil {
		return err
	}
	raw.Faces = make([]float64, 0, faceStride*len(m.Polygons))
	for _, poly := range m.Polygons {
		for i := 2; i < len(poly); i++ {
			var rec [faceStride]float64
			rec[0], rec[1], rec[2] = float64(poly[0]), float64(poly[i-1]), float64(poly[i])
			raw.Faces = append(raw.Faces, rec[:]...)
		}
	}
	for i, pts := range morphs {
		if len(pts) != len(m.Points) {
			return fmt.Errorf("morph target %d has %d vertices, mesh has %d", i, len(pts), len(m.Points))
		}
		flat, err := flatPoints(pts)
		if err != nil {
			return fmt.Errorf("morph target %d: %w", i, err)
		}
		raw.MorphTargets = append(raw.MorphTargets, morphTarget{Name: fmt.Sprintf("morph%03d", i), Vertices: flat})
	}
	return json.NewEncoder(w).Encode(raw)
}

var (
	errNonFiniteVertex = errors.New("non-finite vertex")
	errOpenMesh        = errors.New("mesh JSON holds facets, got open polylines")
)

func flatPoints(pts []r3.Vec) ([]float64, error) {
	flat := make([]float64, 0, 3*len(pts))
	for i, p := range pts {
		if !d3.IsFinite(p) {
			return nil, fmt.Errorf("vertex %d %v: %w", i, p, errNonFiniteVertex)
		}
		flat = append(flat, p.X, p.Y, p.Z)
	}
	return flat, nil
}

// Interpolate returns the points of a morph between from and to at parameter
// t in [0, 1]. Both slices must have the same length.
func Interpolate(from, to []r3.Vec, t float64) []r3.Vec {
	if len(from) != len(to) {
		panic("render: morph targets of different length")
	}
	t = math.Max(0, math.Min(1, t))
	out := make([]r3.Vec, len(from))
	for i := range from {
		out[i] = r3.Add(from[i], r3.Scale(t, r3.Sub(to[i], from[i])))
	}
	return out
}
