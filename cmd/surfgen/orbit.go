package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/soypat/paramsurf"
	"github.com/soypat/paramsurf/helpers/nbody"
	"github.com/soypat/paramsurf/helpers/preview"
	"gonum.org/v1/plot/vg"
)

func runOrbit(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("orbit", flag.ContinueOnError)
	cfg, err := parseFlags(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.IntVar(&cfg.Orbit.Steps, "steps", cfg.Orbit.Steps, "number of integration steps")
		fs.Float64Var(&cfg.Orbit.DT, "dt", cfg.Orbit.DT, "integration step in years")
		fs.IntVar(&cfg.Orbit.Every, "every", cfg.Orbit.Every, "record positions every this many steps")
		fs.StringVar(&cfg.Orbit.Output, "o", cfg.Orbit.Output, "orbit trace image: .svg, .png or .pdf")
	})
	if err != nil {
		return err
	}
	oc := cfg.Orbit
	if oc.Steps < 0 || oc.DT <= 0 {
		return fmt.Errorf("%w: need non-negative -steps and positive -dt", errUsage)
	}
	sys, err := nbody.NewSystem(nbody.Jovian()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%.9f\n", sys.Energy())
	var trace paramsurf.Mesh
	if oc.Output != "" {
		trace = sys.Trace(oc.Steps, oc.DT, oc.Every)
	} else {
		for i := 0; i < oc.Steps; i++ {
			sys.Advance(oc.DT)
		}
	}
	fmt.Fprintf(stdout, "%.9f\n", sys.Energy())
	for _, b := range sys.Bodies() {
		slog.Debug("body", "name", b.Name, "x", b.Pos.X, "y", b.Pos.Y, "z", b.Pos.Z)
	}
	if oc.Output == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(oc.Output)) {
	case ".svg", ".png", ".pdf", ".eps":
	default:
		return fmt.Errorf("%w: orbit output must be an image, got %q", errUsage, oc.Output)
	}
	w := vg.Length(cfg.Preview.Width) * vg.Inch / 96
	h := vg.Length(cfg.Preview.Height) * vg.Inch / 96
	return preview.SaveWireframe(oc.Output, trace, preview.Identity, "Jovian planets", w, h)
}
