// stltool is a CLI utility for inspecting and converting STL files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stlview/internal/logger"
	"github.com/Faultbox/stlview/pkg/stl"
)

// errUsage marks bad command lines; the usage text has already been printed.
var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "check":
		err = cmdCheck(os.Stdout, args)
	case "convert", "conv":
		err = cmdConvert(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `stltool - STL mesh utility

Usage:
  stltool <command> [options]

Commands:
  info [-workers N] [-unindexed] <file.stl>   Show format, counts and bounds
  check [-workers N] <file.stl>               Verify parallel decode matches a single worker
  convert [-ascii] [-name S] <in.stl> <out>   Re-encode as binary (default) or ASCII STL

Common options:
  -v    Log decoder diagnostics to stderr

Examples:
  stltool info part.stl
  stltool check -workers 16 part.stl
  stltool convert -ascii part.stl part_ascii.stl`)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	verbose *bool
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs, commonFlags{verbose: fs.Bool("v", false, "Log decoder diagnostics")}
}

// parse parses args and sets up logging. It requires at least minArgs
// positional arguments.
func parse(fs *flag.FlagSet, c commonFlags, args []string, minArgs int, usage string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < minArgs {
		fmt.Fprintln(fs.Output(), "Usage: stltool "+usage)
		return errUsage
	}

	level := "warn"
	if *c.verbose {
		level = "debug"
	}
	return logger.Init(level, "")
}

func loaderOptions(workers int, unindexed bool) stl.Options {
	return stl.Options{
		MaxWorkers: workers,
		Unindexed:  unindexed,
		Logger:     logger.Named("loader"),
	}
}

func cmdInfo(w io.Writer, args []string) error {
	fs, common := newFlagSet("info")
	workers := fs.Int("workers", 0, "Maximum decode workers (0 = one per CPU)")
	unindexed := fs.Bool("unindexed", false, "Skip vertex deduplication")
	if err := parse(fs, common, args, 1, "info [-workers N] [-unindexed] <file.stl>"); err != nil {
		return err
	}

	path := fs.Arg(0)
	start := time.Now()
	model, err := stl.NewLoader(loaderOptions(*workers, *unindexed)).Run(path)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	name := strings.TrimSpace(model.Name)
	if name == "" {
		name = "(none)"
	}

	fmt.Fprintf(w, "File:      %s\n", path)
	fmt.Fprintf(w, "Format:    %s\n", model.Format)
	fmt.Fprintf(w, "Name:      %s\n", name)
	fmt.Fprintf(w, "Triangles: %d\n", model.TriangleCount())
	fmt.Fprintf(w, "Vertices:  %d\n", len(model.Vertices))
	fmt.Fprintf(w, "Indices:   %d\n", len(model.Indices))
	if model.Bounds.Empty() {
		fmt.Fprintln(w, "Bounds:    (empty)")
	} else {
		b := model.Bounds
		fmt.Fprintf(w, "Bounds:    x [%g, %g]  y [%g, %g]  z [%g, %g]\n",
			b.X.Min, b.X.Max, b.Y.Min, b.Y.Max, b.Z.Min, b.Z.Max)
		fmt.Fprintf(w, "Size:      %s\n", b.Size())
	}
	fmt.Fprintf(w, "Decoded:   %v\n", elapsed.Round(time.Microsecond))
	return nil
}

func cmdCheck(w io.Writer, args []string) error {
	fs, common := newFlagSet("check")
	workers := fs.Int("workers", runtime.NumCPU(), "Worker count to compare against a single worker")
	if err := parse(fs, common, args, 1, "check [-workers N] <file.stl>"); err != nil {
		return err
	}

	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading STL file: %w", err)
	}

	serial, err := stl.NewLoader(loaderOptions(1, false)).Decode(data)
	if err != nil {
		return fmt.Errorf("single worker: %w", err)
	}
	parallel, err := stl.NewLoader(loaderOptions(*workers, false)).Decode(data)
	if err != nil {
		return fmt.Errorf("%d workers: %w", *workers, err)
	}

	if err := compareModels(serial, parallel); err != nil {
		return fmt.Errorf("%d workers: %w", *workers, err)
	}

	fmt.Fprintf(w, "OK: %d triangles, %d vertices with 1 worker, %d vertices with up to %d workers\n",
		serial.TriangleCount(), len(serial.Vertices), len(parallel.Vertices), *workers)
	return nil
}

// compareModels checks that two decodes of the same file describe the same
// triangles and bounds. Vertex counts may differ between worker counts.
func compareModels(want, got *stl.ModelData) error {
	if err := want.Validate(); err != nil {
		return err
	}
	if err := got.Validate(); err != nil {
		return err
	}
	if want.TriangleCount() != got.TriangleCount() {
		return fmt.Errorf("triangle count %d, want %d", got.TriangleCount(), want.TriangleCount())
	}
	if want.Bounds != got.Bounds {
		return fmt.Errorf("bounds %+v, want %+v", got.Bounds, want.Bounds)
	}
	for i := 0; i < want.TriangleCount(); i++ {
		a, b := want.Triangle(i), got.Triangle(i)
		for j := range a {
			if !a[j].Equal(b[j]) {
				return fmt.Errorf("triangle %d vertex %d is %s, want %s", i, j, b[j], a[j])
			}
		}
	}
	return nil
}

func cmdConvert(w io.Writer, args []string) error {
	fs, common := newFlagSet("convert")
	ascii := fs.Bool("ascii", false, "Write ASCII STL instead of binary")
	name := fs.String("name", "", "Solid name (default: source name or file name)")
	if err := parse(fs, common, args, 2, "convert [-ascii] [-name S] <in.stl> <out.stl>"); err != nil {
		return err
	}

	in, out := fs.Arg(0), fs.Arg(1)
	model, err := stl.NewLoader(loaderOptions(0, false)).Run(in)
	if err != nil {
		return err
	}

	solid := *name
	if solid == "" {
		solid = strings.TrimSpace(model.Name)
	}
	if solid == "" {
		solid = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	encode, format := stl.EncodeBinary, stl.FormatBinary
	if *ascii {
		encode, format = stl.EncodeASCII, stl.FormatASCII
	}
	if err := encode(f, solid, model.Triangles()); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Debug("converted", zap.String("in", in), zap.String("out", out), zap.Stringer("format", format))
	fmt.Fprintf(w, "Wrote %d triangles to %s (%s)\n", model.TriangleCount(), out, format)
	return nil
}
