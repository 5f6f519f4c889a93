package biopage

import (
	"context"

	"github.com/alnah/go-biopage/internal/gallery"
	"github.com/alnah/go-biopage/internal/pipeline"
)

// FallbackSectionTitle titles the section synthesized when a flat stream has
// no recognized heading.
const FallbackSectionTitle = pipeline.FallbackSectionTitle

// DefaultPublicPrefix is the web path images are served under by default.
const DefaultPublicPrefix = pipeline.DefaultPublicPrefix

// Segment splits content into intro paragraphs and titled sections.
// Flat streams are split on exact (trimmed) matches against headings.
func Segment(content Content, headings []string) SplitResult {
	return pipeline.Segment(content, headings)
}

// NormalizeToken canonicalizes text into a comparable slug such as
// "beginning-in-the-gym". It is idempotent.
func NormalizeToken(s string) string {
	return pipeline.NormalizeToken(s)
}

// NormalizeHeading is NormalizeToken with hyphens turned into spaces.
func NormalizeHeading(s string) string {
	return pipeline.NormalizeHeading(s)
}

// GroupSeries pairs "<name>-1" and "<name>-2" image files into series.
func GroupSeries(filenames []string, publicPrefix string) SeriesMap {
	return pipeline.GroupSeries(filenames, publicPrefix)
}

// Discover lists images through lister and groups them into series.
// A listing failure wraps ErrListImages.
func Discover(ctx context.Context, lister Lister, publicPrefix string) (SeriesMap, error) {
	return gallery.Discover(ctx, lister, publicPrefix)
}

// NewAliasTable builds an alias table from heading phrases to series keys.
func NewAliasTable(raw map[string]string) AliasTable {
	return pipeline.NewAliasTable(raw)
}

// Tokenize splits text into plain and styled spans.
func Tokenize(text string, tokens []Token) []Span {
	return pipeline.Tokenize(text, tokens)
}
