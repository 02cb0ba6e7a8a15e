package paramsurf_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/paramsurf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCatalogIsoCurves(t *testing.T) {
	cat := paramsurf.DefaultCatalog()
	for i := 0; i < cat.Len(); i++ {
		s := cat.At(i)
		t.Run(s.Name(), func(t *testing.T) {
			u, v := s.U(), s.V()
			require.LessOrEqual(t, u.Begin, u.End)
			require.LessOrEqual(t, v.Begin, v.End)
			nu, nv := u.Samples(), v.Samples()

			along := paramsurf.SampleAlongU(s)
			require.NoError(t, along.Validate())
			assert.NotEmpty(t, along.Points)
			assert.Len(t, along.Points, nu*(nv+1))
			assert.Len(t, along.Edges, nu*nv)
			assert.Len(t, along.Polygons, nu)

			along = paramsurf.SampleAlongV(s)
			require.NoError(t, along.Validate())
			assert.NotEmpty(t, along.Points)
			assert.Len(t, along.Points, nv*(nu+1))
			assert.Len(t, along.Polygons, nv)
		})
	}
}

func TestCatalogMeshes(t *testing.T) {
	cat := paramsurf.DefaultCatalog()
	for i := 0; i < cat.Len(); i++ {
		s := cat.At(i)
		nu, nv := paramsurf.GridSize(s)
		cells := (nu - 1) * (nv - 1)
		for _, mode := range []paramsurf.RenderMode{paramsurf.RenderAlternate, paramsurf.RenderTriangles, paramsurf.RenderQuads} {
			m := paramsurf.SampleMesh(s, mode)
			if err := m.Validate(); err != nil {
				t.Fatalf("%s %s: %v", s.Name(), mode, err)
			}
			if len(m.Points) != nu*nv {
				t.Errorf("%s %s: got %d points, want %d", s.Name(), mode, len(m.Points), nu*nv)
			}
			want := cells
			if mode == paramsurf.RenderTriangles {
				want *= 2
			}
			if len(m.Polygons) != want {
				t.Errorf("%s %s: got %d polygons, want %d", s.Name(), mode, len(m.Polygons), want)
			}
		}
	}
}

func TestIsoCurvePolylines(t *testing.T) {
	s, err := paramsurf.NewSurface("plane", paramsurf.Params{},
		paramsurf.Domain{Begin: 0, End: 2, Step: 1},
		paramsurf.Domain{Begin: 0, End: 1, Step: 0.5},
		1,
		func(p paramsurf.Params, u, v float64) float64 { return u },
		func(p paramsurf.Params, u, v float64) float64 { return v },
		func(p paramsurf.Params, u, v float64) float64 { return 0 },
	)
	require.NoError(t, err)
	m := paramsurf.SampleAlongU(s)
	require.Len(t, m.Polygons, 3)
	// Move to v.Begin followed by draws at every v sample.
	assert.Equal(t, []r3.Vec{{X: 1}, {X: 1}, {X: 1, Y: 0.5}, {X: 1, Y: 1}}, m.Polyline(1))
	assert.Equal(t, paramsurf.Edge{4, 5}, m.Edges[3])
	assert.True(t, m.Open)

	m = paramsurf.SampleAlongV(s)
	require.Len(t, m.Polygons, 3)
	assert.Equal(t, []r3.Vec{{Y: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, m.Polyline(2))
}

func TestSampleMeshGrid(t *testing.T) {
	// 5x5 samples, 4x4 cells.
	s, err := paramsurf.NewSurfaceXYZ("grid5", paramsurf.Params{},
		paramsurf.Domain{Begin: 0, End: 4, Step: 1},
		paramsurf.Domain{Begin: 0, End: 4, Step: 1},
		1,
		func(p paramsurf.Params, u, v float64) r3.Vec { return r3.Vec{X: u, Y: v} },
	)
	require.NoError(t, err)
	nu, nv := paramsurf.GridSize(s)
	require.Equal(t, 5, nu)
	require.Equal(t, 5, nv)

	quads := paramsurf.SampleMesh(s, paramsurf.RenderQuads)
	require.NoError(t, quads.Validate())
	assert.Len(t, quads.Polygons, 16)
	for _, q := range quads.Polygons {
		assert.Len(t, q, 4)
	}
	// First cell corners a=(0,0) d=(1,0) c=(1,1) b=(0,1) in (u,v).
	assert.Equal(t, []int{0, 1, 6, 5}, quads.Polygons[0])
	assert.Empty(t, quads.Edges)
	assert.False(t, quads.Open)

	tris := paramsurf.SampleMesh(s, paramsurf.RenderTriangles)
	assert.Len(t, tris.Polygons, 32)
	assert.Equal(t, []int{0, 6, 5}, tris.Polygons[0])
	assert.Equal(t, []int{0, 1, 6}, tris.Polygons[1])

	alt := paramsurf.SampleMesh(s, paramsurf.RenderAlternate)
	assert.Len(t, alt.Polygons, 16)
	assert.Equal(t, tris.Points, alt.Points)
}

func TestSampleMeshRoundingTolerance(t *testing.T) {
	// 0.1 does not accumulate exactly to 1.0; the last grid line must survive.
	s, err := paramsurf.NewSurfaceXYZ("tenths", paramsurf.Params{},
		paramsurf.Domain{Begin: 0, End: 1, Step: 0.1},
		paramsurf.Domain{Begin: 0, End: 0, Step: 1},
		1,
		func(p paramsurf.Params, u, v float64) r3.Vec { return r3.Vec{X: u} },
	)
	require.NoError(t, err)
	nu, nv := paramsurf.GridSize(s)
	assert.Equal(t, 11, nu)
	assert.Equal(t, 1, nv)
	m := paramsurf.SampleMesh(s, paramsurf.RenderQuads)
	assert.Len(t, m.Points, 11)
	assert.Empty(t, m.Polygons)
}

func TestSelectSameSurfaceTwice(t *testing.T) {
	cat := paramsurf.DefaultCatalog()
	for _, name := range []string{"Sphere 1", "Limpet Torus", "Rose", "kidney"} {
		first, err := cat.Select(cat.First(), name)
		require.NoError(t, err)
		second, err := cat.Select(first, name)
		require.NoError(t, err)
		assert.Equal(t, first.Info(), second.Info())
		for _, sample := range []func(paramsurf.Surface) paramsurf.Mesh{
			paramsurf.SampleAlongU,
			paramsurf.SampleAlongV,
			func(s paramsurf.Surface) paramsurf.Mesh { return paramsurf.SampleMesh(s, paramsurf.RenderTriangles) },
		} {
			a, b := sample(first), sample(second)
			if !sameMesh(a, b) {
				t.Errorf("%s: sampling not deterministic", name)
			}
		}
	}
}

func TestSphereAtOrigin(t *testing.T) {
	cat := paramsurf.DefaultCatalog()
	s, err := cat.Select(cat.First(), "Sphere 1")
	require.NoError(t, err)
	info := s.Info()
	assert.Equal(t, paramsurf.Sphere1, s.Kind())
	assert.Equal(t, 4.0, info.A)
	assert.Equal(t, 4.0, info.B)
	assert.Equal(t, 4.5, info.C)
	assert.Equal(t, paramsurf.Domain{Begin: -math.Pi / 2, End: math.Pi / 2, Step: 0.2}, info.U)
	assert.Equal(t, paramsurf.Domain{Begin: -math.Pi, End: math.Pi, Step: 0.2}, info.V)
	assert.Equal(t, r3.Vec{X: 4}, s.Point(0, 0))
	assert.InDelta(t, 4.5, s.Point(math.Pi/2, 0).Z, 1e-12)
}

func TestSelectUnknownSurface(t *testing.T) {
	cat := paramsurf.DefaultCatalog()
	prev, err := cat.Select(cat.First(), "Torus 1")
	require.NoError(t, err)
	var got paramsurf.Surface
	assert.NotPanics(t, func() {
		got, err = cat.Select(prev, "Torus 42")
	})
	assert.True(t, errors.Is(err, paramsurf.ErrUnknownSurface))
	assert.Equal(t, prev.Info(), got.Info())
	assert.Equal(t, "Torus 1", got.Name())
}

func TestNonFiniteSamplesKept(t *testing.T) {
	s, err := paramsurf.NewSurface("hyperbola", paramsurf.Params{},
		paramsurf.Domain{Begin: -1, End: 1, Step: 1},
		paramsurf.Domain{Begin: 0, End: 0, Step: 1},
		1,
		func(p paramsurf.Params, u, v float64) float64 { return 1 / u },
		func(p paramsurf.Params, u, v float64) float64 { return 0 / u },
		func(p paramsurf.Params, u, v float64) float64 { return 0 },
	)
	require.NoError(t, err)
	m := paramsurf.SampleAlongU(s)
	require.Len(t, m.Points, 6)
	assert.True(t, math.IsInf(m.Points[2].X, 1))
	assert.True(t, math.IsNaN(m.Points[2].Y))
	bb, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, r3.Box{Min: r3.Vec{X: -1}, Max: r3.Vec{X: 1}}, bb)
}

func TestInvalidDomains(t *testing.T) {
	fx := func(p paramsurf.Params, u, v float64) float64 { return u }
	for _, d := range []paramsurf.Domain{
		{Begin: 0, End: 1, Step: 0},
		{Begin: 0, End: 1, Step: -1},
		{Begin: math.NaN(), End: 1, Step: 1},
		{Begin: 0, End: math.Inf(1), Step: 1},
		// The step vanishes against the magnitude of the bounds.
		{Begin: 1e17, End: 1e17 + 1000, Step: 1},
		{Begin: 0, End: 1e17, Step: 1},
		// Too many samples.
		{Begin: 0, End: 1e9, Step: 1e-9},
		{Begin: -math.MaxFloat64, End: math.MaxFloat64, Step: 1e300},
	} {
		_, err := paramsurf.NewSurface("bad", paramsurf.Params{}, d, paramsurf.Domain{End: 1, Step: 1}, 1, fx, fx, fx)
		assert.ErrorIs(t, err, paramsurf.ErrInvalidDomain, "domain %+v", d)
		assert.Zero(t, d.Samples())
	}
	limit := paramsurf.Domain{Begin: 0, End: paramsurf.MaxSamples, Step: 1}
	assert.NoError(t, limit.Validate())
	assert.Equal(t, paramsurf.MaxSamples+1, limit.Samples())
	// Reversed domains are valid but empty.
	s, err := paramsurf.NewSurface("reversed", paramsurf.Params{}, paramsurf.Domain{Begin: 1, End: 0, Step: 1}, paramsurf.Domain{End: 1, Step: 1}, 1, fx, fx, fx)
	require.NoError(t, err)
	assert.True(t, paramsurf.SampleAlongU(s).Empty())
	assert.True(t, paramsurf.SampleMesh(s, paramsurf.RenderQuads).Empty())
	assert.True(t, paramsurf.SampleAlongU(paramsurf.Surface{}).Empty())
}

func TestParseRenderMode(t *testing.T) {
	for _, mode := range []paramsurf.RenderMode{paramsurf.RenderAlternate, paramsurf.RenderTriangles, paramsurf.RenderQuads} {
		got, ok := paramsurf.ParseRenderMode(mode.String())
		assert.True(t, ok)
		assert.Equal(t, mode, got)
	}
	_, ok := paramsurf.ParseRenderMode("wireframe")
	assert.False(t, ok)
}

func sameMesh(a, b paramsurf.Mesh) bool {
	if len(a.Points) != len(b.Points) || len(a.Edges) != len(b.Edges) || len(a.Polygons) != len(b.Polygons) {
		return false
	}
	for i := range a.Points {
		if !sameFloat(a.Points[i].X, b.Points[i].X) || !sameFloat(a.Points[i].Y, b.Points[i].Y) || !sameFloat(a.Points[i].Z, b.Points[i].Z) {
			return false
		}
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			return false
		}
	}
	for i := range a.Polygons {
		if len(a.Polygons[i]) != len(b.Polygons[i]) {
			return false
		}
		for j := range a.Polygons[i] {
			if a.Polygons[i][j] != b.Polygons[i][j] {
				return false
			}
		}
	}
	return true
}

// sameFloat is float equality where NaN equals NaN.
func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
