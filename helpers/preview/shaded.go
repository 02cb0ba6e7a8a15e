// Package preview renders still images of sampled surfaces: a shaded
// perspective view of triangles and an orthographic wireframe plot of
// polylines.
package preview

import (
	"errors"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/paramsurf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and colors of a shaded preview. Positions refer
// to the model after it has been fit into the bi-unit cube.
type View struct {
	Eye    r3.Vec
	Center r3.Vec
	Up     r3.Vec
	Light  r3.Vec // direction towards the light.
	Near   float64
	Far    float64
	FovY   float64 // vertical field of view in degrees.
	Width  int
	Height int
	// Supersample renders at a multiple of the output size before
	// downsampling for antialiasing.
	Supersample int
	Color       string // hex object color.
	Background  string // hex background color.
}

// DefaultView looks at the origin from the first octant with Z up.
func DefaultView() View {
	return View{
		Eye:         r3.Vec{X: 3, Y: 2, Z: 2},
		Up:          r3.Vec{Z: 1},
		Light:       r3.Vec{X: -0.75, Y: 1, Z: 0.25},
		Near:        1,
		Far:         10,
		FovY:        30,
		Width:       640,
		Height:      480,
		Supersample: 2,
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

var errNoTriangles = errors.New("no drawable triangles")

func vec(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }

// Shade renders the triangles with phong shading and returns the image.
// Non-finite and degenerate triangles are skipped.
func Shade(tris []render.Triangle3, view View) (image.Image, error) {
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("preview: image size must be positive")
	}
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}
	faces := make([]*fauxgl.Triangle, 0, len(tris))
	for _, t := range tris {
		if !t.Finite() || t.Degenerate(0) {
			continue
		}
		faces = append(faces, fauxgl.NewTriangleForPoints(vec(t[0]), vec(t[1]), vec(t[2])))
	}
	if len(faces) == 0 {
		return nil, errNoTriangles
	}
	mesh := fauxgl.NewTriangleMesh(faces)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(view.Background))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(vec(view.Eye), vec(view.Center), vec(view.Up)).Perspective(view.FovY, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, vec(view.Light).Normalize(), vec(view.Eye))
	shader.ObjectColor = fauxgl.HexColor(view.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// ShadedPNG renders the triangles as Shade does and encodes the result as PNG.
func ShadedPNG(w io.Writer, tris []render.Triangle3, view View) error {
	img, err := Shade(tris, view)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
