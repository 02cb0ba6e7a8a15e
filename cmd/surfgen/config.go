package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every setting of surfgen. It is read from an optional TOML
// file and command line flags take precedence over it.
type Config struct {
	Verbose bool `toml:"verbose"`

	Surface string `toml:"surface"`
	// Shape names a generated shape to use instead of Surface.
	Shape string `toml:"shape"`
	// Along selects the sampler: "u" or "v" for iso-curves, "mesh" for the grid.
	Along  string  `toml:"along"`
	Render string  `toml:"render"`
	Weld   float64 `toml:"weld"`
	// Scaled multiplies the geometry by the display scale of the surface.
	Scaled bool `toml:"scaled"`
	// Material names a print material to compensate shrinkage for.
	Material string `toml:"material"`
	Output   string `toml:"output"`
	Format   string `toml:"format"`

	Preview PreviewConfig `toml:"preview"`
	Orbit   OrbitConfig   `toml:"orbit"`
	Gallery GalleryConfig `toml:"gallery"`
}

// PreviewConfig configures image outputs.
type PreviewConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Tilt rotates wireframes about the X axis, in degrees.
	Tilt float64 `toml:"tilt"`
	// Spin rotates wireframes about the Z axis before tilting, in degrees.
	Spin float64 `toml:"spin"`
}

type OrbitConfig struct {
	Steps  int     `toml:"steps"`
	DT     float64 `toml:"dt"`
	Every  int     `toml:"every"`
	Output string  `toml:"output"`
}

type GalleryConfig struct {
	Dir    string `toml:"dir"`
	Render string `toml:"render"`
}

func defaultConfig() Config {
	return Config{
		Surface: "Sphere 1",
		Along:   "mesh",
		Render:  "triangles",
		Format:  "yaml",
		Preview: PreviewConfig{Width: 640, Height: 480, Tilt: 60, Spin: 30},
		Orbit:   OrbitConfig{Steps: 1000, DT: 0.01, Every: 10},
		Gallery: GalleryConfig{Dir: "gallery", Render: "triangles"},
	}
}

// loadConfig decodes the TOML file at path over cfg. Keys missing from the
// file keep their current value.
func loadConfig(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("%s: unknown keys:\n%s", path, serr.String())
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseFlags parses args into fs and resolves the final configuration:
// defaults, then the -config file if any, then flags explicitly set. bind
// registers the command's flags on fs pointing into its argument.
func parseFlags(fs *flag.FlagSet, args []string, bind func(fs *flag.FlagSet, cfg *Config)) (Config, error) {
	var (
		flagCfg    = defaultConfig()
		configPath string
	)
	fs.StringVar(&configPath, "config", "", "TOML configuration file")
	fs.BoolVar(&flagCfg.Verbose, "v", flagCfg.Verbose, "verbose logging")
	bind(fs, &flagCfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := defaultConfig()
	if configPath != "" {
		if err := loadConfig(&cfg, configPath); err != nil {
			return Config{}, err
		}
	}
	// Rebind on the resolved config and replay the flags the user set.
	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	overlay.String("config", "", "")
	overlay.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "")
	bind(overlay, &cfg)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err == nil {
			err = overlay.Set(f.Name, f.Value.String())
		}
	})
	if err != nil {
		return Config{}, err
	}
	setupLogging(cfg.Verbose)
	return cfg, nil
}

var logOutput io.Writer = os.Stderr

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level})))
}
