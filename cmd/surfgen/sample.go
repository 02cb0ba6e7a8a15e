package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/helpers/matter"
	"github.com/soypat/paramsurf/helpers/preview"
	"github.com/soypat/paramsurf/helpers/shapes"
	"github.com/soypat/paramsurf/internal/d3"
	"github.com/soypat/paramsurf/render"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

func runSample(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	cfg, err := parseFlags(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Surface, "surface", cfg.Surface, "catalog surface name")
		fs.StringVar(&cfg.Shape, "shape", cfg.Shape, "generated shape name, overrides -surface: "+strings.Join(shapes.Names(), ", "))
		fs.StringVar(&cfg.Along, "along", cfg.Along, "sampler: u, v or mesh")
		fs.StringVar(&cfg.Render, "render", cfg.Render, "mesh topology: alternate, triangles or quads")
		fs.Float64Var(&cfg.Weld, "weld", cfg.Weld, "merge points closer than this distance, 0 disables")
		fs.BoolVar(&cfg.Scaled, "scaled", cfg.Scaled, "multiply geometry by the surface display scale")
		fs.StringVar(&cfg.Material, "material", cfg.Material, "compensate shrinkage of a print material: pla or abs")
		fs.StringVar(&cfg.Output, "o", cfg.Output, "output file: .stl, .json, .yaml, .png, .svg or .pdf; summary to stdout if empty")
		fs.IntVar(&cfg.Preview.Width, "width", cfg.Preview.Width, "image width in pixels")
		fs.IntVar(&cfg.Preview.Height, "height", cfg.Preview.Height, "image height in pixels")
	})
	if err != nil {
		return err
	}
	var (
		src meshSource
		m   paramsurf.Mesh
	)
	if cfg.Shape != "" {
		src.name = cfg.Shape
		m, err = shapes.Generate(cfg.Shape)
		if err != nil {
			return err
		}
	} else {
		cat := paramsurf.DefaultCatalog()
		s, err := cat.Select(cat.First(), cfg.Surface)
		if err != nil {
			return err
		}
		info := s.Info()
		src = meshSource{name: s.Name(), info: &info}
		m, err = sample(s, cfg)
		if err != nil {
			return err
		}
	}
	m, err = postProcess(m, cfg)
	if err != nil {
		return err
	}
	slog.Debug("sampled", "source", src.name, "along", cfg.Along, "points", len(m.Points), "polygons", len(m.Polygons))
	if cfg.Output == "" {
		return writeSummary(stdout, src, m)
	}
	return writeMesh(cfg.Output, src, m, cfg)
}

// meshSource names what a mesh was sampled or generated from.
type meshSource struct {
	name string
	info *paramsurf.SurfaceInfo // nil for generated shapes.
}

func sample(s paramsurf.Surface, cfg Config) (paramsurf.Mesh, error) {
	var m paramsurf.Mesh
	switch cfg.Along {
	case "u":
		m = paramsurf.SampleAlongU(s)
	case "v":
		m = paramsurf.SampleAlongV(s)
	case "mesh":
		mode, ok := paramsurf.ParseRenderMode(cfg.Render)
		if !ok {
			return m, fmt.Errorf("%w: unknown render mode %q", errUsage, cfg.Render)
		}
		m = paramsurf.SampleMesh(s, mode)
	default:
		return m, fmt.Errorf("%w: -along must be u, v or mesh, got %q", errUsage, cfg.Along)
	}
	if cfg.Scaled {
		m = m.Scale(s.Scale())
	}
	return m, nil
}

// postProcess applies welding and shrink compensation to a sampled or
// generated mesh.
func postProcess(m paramsurf.Mesh, cfg Config) (paramsurf.Mesh, error) {
	if cfg.Weld > 0 {
		before := len(m.Points)
		m = render.Weld(m, cfg.Weld)
		slog.Info("welded points", "before", before, "after", len(m.Points))
	}
	if cfg.Material != "" {
		mat, err := matter.Lookup(cfg.Material)
		if err != nil {
			return m, fmt.Errorf("%w: %v", errUsage, err)
		}
		m = mat.Scale(m)
		slog.Debug("shrink compensation", "material", mat, "factor", mat.ScaleFactor())
	}
	return m, nil
}

// meshSummary is the YAML report of a sampled mesh.
type meshSummary struct {
	Surface   *paramsurf.SurfaceInfo `yaml:"surface,omitempty"`
	Shape     string                 `yaml:"shape,omitempty"`
	Points    int                    `yaml:"points"`
	NonFinite int                    `yaml:"nonFinite"`
	Edges     int                    `yaml:"edges"`
	Polygons  int                    `yaml:"polygons"`
	Min       []float64              `yaml:"min,flow,omitempty"`
	Max       []float64              `yaml:"max,flow,omitempty"`
	Size      []float64              `yaml:"size,flow,omitempty"`
	Centroid  []float64              `yaml:"centroid,flow,omitempty"`
}

func summarize(src meshSource, m paramsurf.Mesh) meshSummary {
	sum := meshSummary{
		Surface:  src.info,
		Points:   len(m.Points),
		Edges:    len(m.Edges),
		Polygons: len(m.Polygons),
	}
	if src.info == nil {
		sum.Shape = src.name
	}
	finite := make(d3.Set, 0, len(m.Points))
	for _, p := range m.Points {
		if d3.IsFinite(p) {
			finite = append(finite, p)
		}
	}
	sum.NonFinite = len(m.Points) - len(finite)
	if bb, ok := finite.Bounds(); ok {
		size, c := bb.Size(), finite.Centroid()
		sum.Min = []float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
		sum.Max = []float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
		sum.Size = []float64{size.X, size.Y, size.Z}
		sum.Centroid = []float64{c.X, c.Y, c.Z}
	}
	return sum
}

func writeSummary(w io.Writer, src meshSource, m paramsurf.Mesh) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summarize(src, m)); err != nil {
		return err
	}
	return enc.Close()
}

func writeMesh(path string, src meshSource, m paramsurf.Mesh, cfg Config) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".stl":
		return writeSTL(path, m, cfg.Weld > 0)
	case ".svg", ".pdf", ".eps":
		return writeWireframe(path, src.name, m, cfg.Preview)
	case ".png":
		if m.Open {
			return writeWireframe(path, src.name, m, cfg.Preview)
		}
		return writeShaded(path, m, cfg.Preview)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	switch ext {
	case ".json":
		return render.EncodeMeshJSON(fp, m)
	case ".yaml", ".yml":
		return writeSummary(fp, src, m)
	}
	return fmt.Errorf("%w: unsupported output extension %q", errUsage, ext)
}

// writeSTL writes the facets of m. Welded meshes are streamed straight
// to the file since welding already removed degenerate facets.
func writeSTL(path string, m paramsurf.Mesh, welded bool) error {
	if m.Open {
		return fmt.Errorf("%w: STL output requires -along mesh", errUsage)
	}
	r := render.NewFiniteMeshRenderer(m)
	if welded {
		err := render.CreateSTL(path, r)
		slog.Info("wrote STL", "path", path, "droppedNonFinite", r.Dropped())
		return err
	}
	tris, err := render.RenderAll(r)
	if err != nil {
		return err
	}
	tris, degenerate := render.DropDegenerate(tris, 0)
	if maxAbs := render.Float32Bounds(tris); maxAbs > math.MaxFloat32 {
		return fmt.Errorf("model coordinate %g overflows STL float32 storage", maxAbs)
	}
	slog.Info("writing STL", "path", path, "triangles", len(tris), "droppedNonFinite", r.Dropped(), "droppedDegenerate", degenerate)
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.WriteSTL(fp, tris); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func viewRotation(p PreviewConfig) quat.Number {
	const deg = math.Pi / 180
	spin := preview.Rotation(0, 0, 1, p.Spin*deg)
	tilt := preview.Rotation(1, 0, 0, -p.Tilt*deg)
	return preview.Then(spin, tilt)
}

func writeWireframe(path, title string, m paramsurf.Mesh, p PreviewConfig) error {
	// 96 pixels per inch.
	w := vg.Length(p.Width) * vg.Inch / 96
	h := vg.Length(p.Height) * vg.Inch / 96
	return preview.SaveWireframe(path, m, viewRotation(p), title, w, h)
}

func writeShaded(path string, m paramsurf.Mesh, p PreviewConfig) (err error) {
	tris, dropped := render.DropNonFinite(render.Triangulate(m))
	if dropped > 0 {
		slog.Info("dropped non-finite triangles", "count", dropped)
	}
	view := preview.DefaultView()
	view.Width, view.Height = p.Width, p.Height
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	return preview.ShadedPNG(fp, tris, view)
}
