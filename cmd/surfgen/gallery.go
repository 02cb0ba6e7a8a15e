package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/soypat/paramsurf"
)

const figFolder = "fig"

var galleryTmpl = template.Must(template.New("gallery").Parse(`# Surface gallery

| Surface | A | B | C | D | Preview | Size | Time |
|---|---|---|---|---|---|---|---|
{{range .}}| {{.Info.Name}} | {{.Info.A}} | {{.Info.B}} | {{.Info.C}} | {{.Info.D}} | ![{{.Info.Name}}]({{.PNGResult}}) | {{.PNGSize}} | {{.ExecutionTime}} |
{{end}}`))

type galleryEntry struct {
	Info paramsurf.SurfaceInfo

	// Following values set during execution.

	PNGResult     string
	PNGSize       string
	ExecutionTime string
}

// runGallery renders a shaded preview of every catalog surface and an
// index README.md listing them.
func runGallery(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gallery", flag.ContinueOnError)
	cfg, err := parseFlags(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Gallery.Dir, "dir", cfg.Gallery.Dir, "output folder")
		fs.StringVar(&cfg.Gallery.Render, "render", cfg.Gallery.Render, "mesh topology: alternate, triangles or quads")
		fs.IntVar(&cfg.Preview.Width, "width", cfg.Preview.Width, "image width in pixels")
		fs.IntVar(&cfg.Preview.Height, "height", cfg.Preview.Height, "image height in pixels")
	})
	if err != nil {
		return err
	}
	dir := cfg.Gallery.Dir
	if err := os.MkdirAll(filepath.Join(dir, figFolder), 0o777); err != nil {
		return err
	}
	sampleCfg := cfg
	sampleCfg.Along = "mesh"
	sampleCfg.Render = cfg.Gallery.Render
	cat := paramsurf.DefaultCatalog()
	entries := make([]galleryEntry, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		s := cat.At(i)
		tstart := time.Now()
		m, err := sample(s, sampleCfg)
		if err != nil {
			return err
		}
		pngName := filepath.Join(figFolder, slug(s.Name())+".png")
		err = writeShaded(filepath.Join(dir, pngName), m, cfg.Preview)
		if err != nil {
			// Surfaces made entirely of non-finite samples can not be shaded.
			slog.Warn("skipping surface", "surface", s.Name(), "err", err)
			continue
		}
		size, err := humanSize(filepath.Join(dir, pngName))
		if err != nil {
			return err
		}
		entries = append(entries, galleryEntry{
			Info:          s.Info(),
			PNGResult:     filepath.ToSlash(pngName),
			PNGSize:       size,
			ExecutionTime: fmt.Sprintf("%gs", time.Since(tstart).Round(time.Millisecond).Seconds()),
		})
	}
	output, err := os.Create(filepath.Join(dir, "README.md"))
	if err != nil {
		return err
	}
	if err := galleryTmpl.Execute(output, entries); err != nil {
		output.Close()
		return err
	}
	fmt.Fprintf(stdout, "%d surfaces rendered to %s\n", len(entries), dir)
	return output.Close()
}

// slug turns a surface name into a file name.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

func humanSize(fileName string) (size string, err error) {
	const (
		kB = 1000
		MB = 1000 * kB
		GB = 1000 * MB
	)
	info, err := os.Stat(fileName)
	if err != nil {
		return "", err
	}
	bytes := info.Size()
	switch {
	case bytes < 10*kB:
		size = fmt.Sprintf("%dB", bytes)
	case bytes < 10*MB:
		size = fmt.Sprintf("%dkB", bytes/kB)
	case bytes < 10*GB:
		size = fmt.Sprintf("%dMB", bytes/MB)
	default:
		size = fmt.Sprintf("%dGB", bytes/GB)
	}
	return size, nil
}
