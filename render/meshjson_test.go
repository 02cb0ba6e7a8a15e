package render_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tetraJSON = `{
	"vertices": [0,0,0, 1,0,0, 0,1,0, 0,0,1],
	"faces": [
		0,1,2, 9,9,9,9,9,
		0,1,3, 0,0,0,0,0,
		1,2,3, 0,0,0,0,0
	],
	"morphTargets": [
		{"name": "up", "vertices": [0,0,1, 1,0,1, 0,1,1, 0,0,2]}
	]
}`

func TestDecodeMeshJSON(t *testing.T) {
	m, morphs, err := render.DecodeMeshJSON(strings.NewReader(tetraJSON))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, []r3.Vec{{}, {X: 1}, {Y: 1}, {Z: 1}}, m.Points)
	assert.Equal(t, [][]int{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}}, m.Polygons)
	require.Len(t, morphs, 1)
	assert.Equal(t, r3.Vec{Z: 2}, morphs[0][3])

	half := render.Interpolate(m.Points, morphs[0], 0.5)
	assert.Equal(t, r3.Vec{X: 1, Z: 0.5}, half[1])
}

func TestMeshJSONRoundTrip(t *testing.T) {
	m := paramsurf.SampleMesh(gridSurface(t), paramsurf.RenderQuads)
	var buf bytes.Buffer
	err := render.EncodeMeshJSON(&buf, m, m.Scale(2).Points)
	require.NoError(t, err)

	got, morphs, err := render.DecodeMeshJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Points, got.Points)
	assert.Equal(t, render.Triangulate(m), render.Triangulate(got))
	require.Len(t, morphs, 1)
	assert.Equal(t, m.Scale(2).Points, morphs[0])
}

func TestMeshJSONErrors(t *testing.T) {
	for _, input := range []string{
		`{"vertices": [0,0], "faces": []}`,
		`{"vertices": [0,0,0], "faces": [0,0,0]}`,
		`{"vertices": [0,0,0], "faces": [0,0,1, 0,0,0,0,0]}`,
		`{"vertices": [0,0,0], "faces": [0,0,0.5, 0,0,0,0,0]}`,
		`{"vertices": [0,0,0], "faces": [], "morphTargets": [{"vertices": [1,1,1, 2,2,2]}]}`,
		`{"vertices": [0,0,0]`,
		`[]`,
	} {
		_, _, err := render.DecodeMeshJSON(strings.NewReader(input))
		assert.Error(t, err, input)
	}
	m := paramsurf.SampleMesh(gridSurface(t), paramsurf.RenderQuads)
	m.Points[0].X = math.NaN()
	assert.Error(t, render.EncodeMeshJSON(&bytes.Buffer{}, m))
	err := render.EncodeMeshJSON(&bytes.Buffer{}, paramsurf.Mesh{Points: []r3.Vec{{}}, Polygons: [][]int{{1}}})
	assert.Error(t, err)
	err = render.EncodeMeshJSON(&bytes.Buffer{}, paramsurf.SampleAlongV(gridSurface(t)))
	assert.Error(t, err, "open polylines are not facets")
}
