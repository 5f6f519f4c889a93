package biopage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alnah/go-biopage/internal/assets"
	"github.com/alnah/go-biopage/internal/gallery"
	"github.com/alnah/go-biopage/internal/pipeline"
)

// Service builds biography pages. It is safe for concurrent use.
type Service struct {
	catalog      *assets.Catalog
	aliases      pipeline.AliasTable
	lister       gallery.Lister
	publicPrefix string
	logger       *slog.Logger
}

// New creates a Service with the built-in catalog and no images.
// Use options to customize behavior (e.g., WithLister).
func New(opts ...Option) *Service {
	s := &Service{
		publicPrefix: pipeline.DefaultPublicPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		s.catalog = assets.DefaultCatalog()
	}
	if s.lister == nil {
		s.lister = gallery.StaticLister(nil)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.aliases = s.catalog.AliasTable()

	return s
}

// WithCatalog sets the content catalog.
// Panics if c is nil (programmer error).
func WithCatalog(c *Catalog) Option {
	if c == nil {
		panic("biopage: WithCatalog catalog must not be nil")
	}
	return func(s *Service) {
		s.catalog = c
	}
}

// WithLister sets where images are discovered.
// Panics if l is nil (programmer error).
func WithLister(l Lister) Option {
	if l == nil {
		panic("biopage: WithLister lister must not be nil")
	}
	return func(s *Service) {
		s.lister = l
	}
}

// WithPublicPrefix sets the web path images are served under.
// An empty prefix keeps the default "/images".
func WithPublicPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.publicPrefix = prefix
		}
	}
}

// WithLogger sets the logger for debug events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// Catalog returns the catalog used by the service.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Render builds the page for one locale.
// The only failure sources are a cancelled context and an image listing
// error (wrapping ErrListImages); content is never rejected.
func (s *Service) Render(ctx context.Context, input Input) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	locale := s.catalog.ResolveLocale(input.Locale)
	if requested := strings.ToLower(strings.TrimSpace(input.Locale)); requested != locale {
		s.logger.Debug("locale not in catalog, using default", "requested", input.Locale, "locale", locale)
	}

	series, err := gallery.Discover(ctx, s.lister, s.publicPrefix)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("images discovered", "locale", locale, "series", len(series))

	split := pipeline.Segment(input.Content, s.catalog.HeadingsFor(locale))
	if isFallback(input.Content, split) {
		s.logger.Debug("no heading recognized, using a single section", "locale", locale, "paragraphs", input.Content.Len())
	}

	tokens := s.catalog.TokensFor(locale)
	labels := s.catalog.LabelsFor(locale)

	page := &Page{
		Locale:   locale,
		Intro:    paragraphViews(split.IntroParagraphs, tokens),
		Sections: make([]SectionView, 0, len(split.Sections)),
		Legend: Legend{
			Label:    labels.Legend,
			NavLabel: labels.LegendNav,
			Entries:  make([]LegendEntry, 0, len(split.Sections)),
		},
	}

	for _, section := range split.Sections {
		sources := s.aliases.Resolve(section.Title, series)
		if len(sources) == 0 {
			s.logger.Debug("section has no illustration", "locale", locale, "section", section.ID, "title", section.Title)
		}

		page.Sections = append(page.Sections, SectionView{
			ID:         section.ID,
			Title:      section.Title,
			Paragraphs: paragraphViews(section.Paragraphs, tokens),
			Images:     images(sources, labels.ImageAlt),
			SplitAt:    (len(section.Paragraphs) + 1) / 2,
		})
		page.Legend.Entries = append(page.Legend.Entries, LegendEntry{
			ID:    section.ID,
			Title: section.Title,
			Href:  "#" + section.ID,
		})
	}

	return page, nil
}

// paragraphViews tokenizes paragraphs.
func paragraphViews(paragraphs []pipeline.ParagraphWithID, tokens []pipeline.Token) []ParagraphView {
	views := make([]ParagraphView, len(paragraphs))
	for i, p := range paragraphs {
		views[i] = ParagraphView{
			ID:    p.ID,
			Bold:  p.Bold,
			Spans: pipeline.Tokenize(p.Text, tokens),
		}
	}
	return views
}

// images numbers alt texts from 1 in slot order.
func images(sources []string, alt string) []Image {
	out := make([]Image, len(sources))
	for i, src := range sources {
		out[i] = Image{
			Src: src,
			Alt: strings.TrimSpace(fmt.Sprintf("%s %d", alt, i+1)),
		}
	}
	return out
}

// isFallback reports whether a flat stream was wrapped in the synthesized
// section because no heading matched.
func isFallback(content Content, split SplitResult) bool {
	return !content.IsStructured() &&
		len(split.IntroParagraphs) == 0 &&
		len(split.Sections) == 1 &&
		split.Sections[0].Title == pipeline.FallbackSectionTitle &&
		len(split.Sections[0].Paragraphs) == content.Len()
}
