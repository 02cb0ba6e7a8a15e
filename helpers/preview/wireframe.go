package preview

import (
	"errors"
	"image/color"
	"path/filepath"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/internal/d3"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Identity is the rotation that leaves a mesh as is.
var Identity = quat.Number{Real: 1}

// Rotation returns the rotation of angle radians about the axis (x, y, z).
// Rotations compose with Then.
func Rotation(x, y, z, angle float64) quat.Number {
	return d3.RotationQuat(r3.Vec{X: x, Y: y, Z: z}, angle)
}

// Then returns the rotation applying a and then b.
func Then(a, b quat.Number) quat.Number { return d3.Compose(a, b) }

// Wireframe projects the mesh orthographically onto the XY plane after
// rotating it by rot. Open meshes are drawn as polylines and facet meshes
// as closed polygon outlines. Lines are broken at
// non-finite points.
func Wireframe(m paramsurf.Mesh, rot quat.Number, title string) (*plot.Plot, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	closed := !m.Open
	style := color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	var lines int
	for _, poly := range m.Polygons {
		idx := poly
		if closed && len(poly) > 2 {
			idx = append(append(make([]int, 0, len(poly)+1), poly...), poly[0])
		}
		var xys plotter.XYs
		flush := func() error {
			if len(xys) >= 2 {
				l, err := plotter.NewLine(xys)
				if err != nil {
					return err
				}
				l.LineStyle.Width = vg.Points(0.5)
				l.LineStyle.Color = style
				p.Add(l)
				lines++
			}
			xys = nil
			return nil
		}
		for _, i := range idx {
			pt := m.Points[i]
			if !d3.IsFinite(pt) {
				if err := flush(); err != nil {
					return nil, err
				}
				continue
			}
			pt = d3.Rotate(rot, pt)
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	if lines == 0 {
		return nil, errors.New("preview: mesh has no drawable lines")
	}
	return p, nil
}

// SaveWireframe writes the wireframe of m to path. The image format is
// chosen from the extension: .svg, .png, .pdf, .eps, .jpg or .tif.
func SaveWireframe(path string, m paramsurf.Mesh, rot quat.Number, title string, width, height vg.Length) error {
	p, err := Wireframe(m, rot, title)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == "" {
		return errors.New("preview: missing image extension in " + path)
	}
	return p.Save(width, height, path)
}
