// Command surfgen samples the catalog of parametric surfaces and exports
// the geometry as STL, mesh JSON, YAML summaries or preview images.
//
// Usage:
//
//	surfgen list
//	surfgen info [-surface name] [-format yaml|json|toml]
//	surfgen sample -surface name [-along u|v|mesh] [-render alternate|triangles|quads] [-weld tol] [-scaled] [-material pla|abs] [-o file]
//	surfgen orbit [-steps n] [-dt step] [-every n] [-o file]
//	surfgen gallery [-dir folder] [-render mode]
//
// Every command accepts -config file.toml and -v.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout io.Writer) error
}

var commands = []command{
	{name: "list", usage: "list catalog surface names", run: runList},
	{name: "info", usage: "print surface parameters", run: runInfo},
	{name: "sample", usage: "sample a surface and write geometry", run: runSample},
	{name: "orbit", usage: "integrate the Jovian planets and report energy", run: runOrbit},
	{name: "gallery", usage: "render a preview of every catalog surface", run: runGallery},
}

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	} else if err != nil {
		slog.Error("surfgen failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errUsage
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(args[1:], stdout)
		}
	}
	printUsage(os.Stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: surfgen <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
}
