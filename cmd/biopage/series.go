package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	biopage "github.com/alnah/go-biopage"
	"github.com/alnah/go-biopage/internal/hints"
	"github.com/alnah/go-biopage/internal/pipeline"
)

// runSeries executes the series command: it lists the image directory and
// prints each series key with its web paths, slot 1 first.
func runSeries(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseSeriesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ)
	}

	cfg, err := loadConfig(flags.common.config, env.Environ)
	if err != nil {
		return err
	}
	if flags.images.dir != "" {
		cfg.Images.Dir = flags.images.dir
	}
	if flags.images.prefix != "" {
		cfg.Images.PublicPrefix = flags.images.prefix
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Images.Dir == "" {
		return fmt.Errorf("%w%s", ErrNoImagesDir, hints.ForImagesDir(""))
	}

	names, err := biopage.NewDirLister(cfg.Images.Dir).List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w%s", biopage.ErrListImages, err, hints.ForImagesDir(cfg.Images.Dir))
	}

	if flags.common.verbose {
		for _, name := range names {
			if _, ok := pipeline.ParseSeriesFile(name); !ok {
				fmt.Fprintf(env.Stderr, "skipped: %s\n", name)
			}
		}
	}

	series := biopage.GroupSeries(names, cfg.Images.PublicPrefix)
	if len(series) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "no image series in %s\n", cfg.Images.Dir)
		}
		return nil
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range series.Keys() {
		fmt.Fprintf(tw, "%s\t%s\n", key, strings.Join(series.Get(key), " "))
	}
	return tw.Flush()
}
