package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	biopage "github.com/alnah/go-biopage"
	"github.com/alnah/go-biopage/internal/config"
	"github.com/alnah/go-biopage/internal/fileutil"
	"github.com/alnah/go-biopage/internal/hints"
	"github.com/alnah/go-biopage/internal/yamlutil"
)

// allLocales selects every locale that has a messages file.
const allLocales = "all"

// renderOutput is the document written by the render command.
type renderOutput struct {
	Pages []*biopage.Page `json:"pages" yaml:"pages"`
}

// runRender executes the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkers, flags.workers)
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ)
	}

	cfg, err := loadConfig(flags.common.config, env.Environ)
	if err != nil {
		return err
	}
	mergeRenderFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := biopage.LoadCatalog(cfg.Catalog.Dir, cfg.Catalog.Name)
	if err != nil {
		if errors.Is(err, biopage.ErrCatalogNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForCatalogNotFound(catalogName(cfg)))
		}
		return err
	}

	locales, err := selectLocales(flags.locale, cfg, catalog)
	if err != nil {
		return err
	}

	inputs, err := readInputs(locales, cfg)
	if err != nil {
		return err
	}

	opts := []biopage.Option{
		biopage.WithCatalog(catalog),
		biopage.WithPublicPrefix(cfg.Images.PublicPrefix),
	}
	if cfg.Images.Dir != "" {
		opts = append(opts, biopage.WithLister(imageLister(cfg)))
	} else if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "warning: no image directory, sections render without illustrations%s\n", hints.ForImagesDir(""))
	}
	if flags.common.verbose {
		opts = append(opts, biopage.WithLogger(slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	svc := biopage.New(opts...)

	start := env.Now()
	pages, err := biopage.RenderAll(ctx, svc, inputs, flags.workers)
	if err != nil {
		if errors.Is(err, biopage.ErrListImages) {
			return fmt.Errorf("%w%s", err, hints.ForImagesDir(cfg.Images.Dir))
		}
		return err
	}
	if flags.common.verbose {
		printPageStats(env, pages, env.Now().Sub(start))
	}

	data, err := encodePages(pages, cfg.FormatOrDefault())
	if err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		_, err := env.Stdout.Write(data)
		return err
	}
	if err := fileutil.WriteFileAtomic(cfg.Output.Path, data, 0o644); err != nil {
		if errors.Is(err, fileutil.ErrParentDir) {
			return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Rendered %d page(s) to %s\n", len(pages), cfg.Output.Path)
	}
	return nil
}

// mergeRenderFlags applies flags and positional messages files on top of
// the configuration. Flags have the highest precedence.
func mergeRenderFlags(flags *renderFlags, positional []string, cfg *config.Config) {
	if flags.key != "" {
		cfg.Content.Key = flags.key
	}
	if flags.images.dir != "" {
		cfg.Images.Dir = flags.images.dir
	}
	if flags.images.prefix != "" {
		cfg.Images.PublicPrefix = flags.images.prefix
	}
	if flags.catalog.dir != "" {
		cfg.Catalog.Dir = flags.catalog.dir
	}
	if flags.catalog.name != "" {
		cfg.Catalog.Name = flags.catalog.name
	}
	if flags.output.path != "" {
		cfg.Output.Path = flags.output.path
	}
	if flags.output.format != "" {
		cfg.Output.Format = flags.output.format
	}

	if len(positional) > 0 && cfg.Content.Messages == nil {
		cfg.Content.Messages = make(map[string]string, len(positional))
	}
	for _, path := range positional {
		cfg.Content.Messages[localeFromPath(path)] = path
	}
}

// localeFromPath derives the locale from a messages filename:
// "messages/ua.json" is "ua".
func localeFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// catalogName returns the configured catalog name or the built-in default.
func catalogName(cfg *config.Config) string {
	if cfg.Catalog.Name == "" {
		return biopage.DefaultCatalogName
	}
	return cfg.Catalog.Name
}

// selectLocales resolves the locales to render.
// Priority: --locale > config locales > every locale with a messages file.
// Each locale must be in the catalog and have a messages file.
func selectLocales(flagValue string, cfg *config.Config, catalog *biopage.Catalog) ([]string, error) {
	var requested []string
	switch {
	case strings.EqualFold(strings.TrimSpace(flagValue), allLocales):
		requested = cfg.MessagesLocales()
	case flagValue != "":
		requested = strings.Split(flagValue, ",")
	case len(cfg.Locales) > 0:
		requested = cfg.Locales
	default:
		requested = cfg.MessagesLocales()
	}

	locales := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, raw := range requested {
		locale := strings.ToLower(strings.TrimSpace(raw))
		if locale == "" || seen[locale] {
			continue
		}
		seen[locale] = true

		if !catalog.HasLocale(locale) {
			return nil, fmt.Errorf("%w: %q%s", ErrInvalidLocale, raw, hints.ForLocale(catalog.Locales))
		}
		if _, ok := cfg.Content.Messages[locale]; !ok {
			return nil, fmt.Errorf("%w for locale %q%s", ErrNoMessages, locale,
				hints.ForMessages())
		}
		locales = append(locales, locale)
	}

	if len(locales) == 0 {
		return nil, fmt.Errorf("%w given%s", ErrNoMessages, hints.ForMessages())
	}
	return locales, nil
}

// readInputs reads and decodes the messages file of each locale.
func readInputs(locales []string, cfg *config.Config) ([]biopage.Input, error) {
	inputs := make([]biopage.Input, 0, len(locales))
	for _, locale := range locales {
		path := cfg.Content.Messages[locale]

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadMessages, err)
		}

		content, err := biopage.LoadContent(data, cfg.Content.Key)
		if err != nil {
			if errors.Is(err, biopage.ErrContentNotFound) {
				return nil, fmt.Errorf("%s: %w%s", path, err, hints.ForContentKey(cfg.Content.Key))
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		inputs = append(inputs, biopage.Input{Locale: locale, Content: content})
	}
	return inputs, nil
}

// imageLister lists the configured image directory, cached across the
// renders of one run when a TTL is set.
func imageLister(cfg *config.Config) biopage.Lister {
	lister := biopage.NewDirLister(cfg.Images.Dir)
	if cfg.Images.CacheTTL > 0 {
		return biopage.NewCachedLister(lister, cfg.Images.CacheTTL)
	}
	return lister
}

// encodePages serializes pages in the requested format.
func encodePages(pages []*biopage.Page, format string) ([]byte, error) {
	out := renderOutput{Pages: pages}

	switch format {
	case config.FormatYAML:
		return yamlutil.Marshal(out)
	default:
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// printPageStats prints per-page statistics in verbose mode.
func printPageStats(env *Environment, pages []*biopage.Page, elapsed time.Duration) {
	for _, page := range pages {
		images := 0
		for _, section := range page.Sections {
			images += len(section.Images)
		}
		fmt.Fprintf(env.Stderr, "  %s: %d sections, %d images\n", page.Locale, len(page.Sections), images)
	}
	fmt.Fprintf(env.Stderr, "Rendered %d page(s) in %v\n", len(pages), elapsed.Round(time.Millisecond))
}
