package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// imageFlags holds image discovery flags.
type imageFlags struct {
	dir    string
	prefix string
}

// catalogFlags holds content catalog flags.
type catalogFlags struct {
	dir  string
	name string
}

// outputFlags holds output flags.
type outputFlags struct {
	path   string
	format string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	images  imageFlags
	catalog catalogFlags
	output  outputFlags
	locale  string
	key     string
	workers int
}

// seriesFlags holds all flags for the series command.
type seriesFlags struct {
	common commonFlags
	images imageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug events and timing")
}

// addImageFlags adds image discovery flags to a FlagSet.
func addImageFlags(fs *flag.FlagSet, f *imageFlags) {
	fs.StringVarP(&f.dir, "images", "i", "", "image directory")
	fs.StringVar(&f.prefix, "prefix", "", "web path images are served under (default /images)")
}

// addCatalogFlags adds catalog flags to a FlagSet.
func addCatalogFlags(fs *flag.FlagSet, f *catalogFlags) {
	fs.StringVar(&f.dir, "catalog", "", "custom catalog directory")
	fs.StringVar(&f.name, "catalog-name", "", "catalog name without .yaml (default biography)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file (default stdout)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: json, yaml")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &renderFlags{}

	fs.StringVarP(&f.locale, "locale", "l", "", "locale to render, comma list or \"all\"")
	fs.StringVarP(&f.key, "key", "k", "", "dotted key of the biography in messages files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)
	addCatalogFlags(fs, &f.catalog)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, flagError(err)
	}

	return f, fs.Args(), nil
}

// parseSeriesFlags parses series command flags.
func parseSeriesFlags(args []string, usage io.Writer) (*seriesFlags, error) {
	fs := flag.NewFlagSet("series", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &seriesFlags{}

	addCommonFlags(fs, &f.common)
	addImageFlags(fs, &f.images)

	fs.Usage = func() { printSeriesUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, flagError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, fs.Arg(0))
	}

	return f, nil
}

// flagError keeps ErrHelp intact and marks other parse errors as usage errors.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}
