package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/paramsurf"
	"gopkg.in/yaml.v3"
)

func runList(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	if _, err := parseFlags(fs, args, func(*flag.FlagSet, *Config) {}); err != nil {
		return err
	}
	for _, name := range paramsurf.DefaultCatalog().Names() {
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func runInfo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	all := true
	cfg, err := parseFlags(fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.Surface, "surface", cfg.Surface, "surface name, all surfaces if not set")
		fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: yaml, json or toml")
	})
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "surface" {
			all = false
		}
	})
	cat := paramsurf.DefaultCatalog()
	var infos []paramsurf.SurfaceInfo
	if all {
		for i := 0; i < cat.Len(); i++ {
			infos = append(infos, cat.At(i).Info())
		}
	} else {
		s, err := cat.Lookup(cfg.Surface)
		if err != nil {
			return err
		}
		infos = append(infos, s.Info())
	}
	return encodeInfos(stdout, cfg.Format, infos)
}

func encodeInfos(w io.Writer, format string, infos []paramsurf.SurfaceInfo) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "toml":
		// TOML documents are tables at the top level.
		return toml.NewEncoder(w).Encode(struct {
			Surfaces []paramsurf.SurfaceInfo `toml:"surface"`
		}{infos})
	}
	return fmt.Errorf("%w: unknown format %q", errUsage, format)
}
