package biopage

import (
	"github.com/alnah/go-biopage/internal/pipeline"
)

// Pipeline types shared with the segmentation and tokenization stages.
type (
	Paragraph       = pipeline.Paragraph
	ParagraphWithID = pipeline.ParagraphWithID
	Section         = pipeline.Section
	SplitResult     = pipeline.SplitResult
	AuthoredSection = pipeline.AuthoredSection
	Structured      = pipeline.Structured
	Content         = pipeline.Content
	SeriesMap       = pipeline.SeriesMap
	AliasTable      = pipeline.AliasTable
	Token           = pipeline.Token
	Span            = pipeline.Span
)

// FlatContent wraps a flat paragraph stream.
func FlatContent(paragraphs []Paragraph) Content {
	return pipeline.FlatContent(paragraphs)
}

// StructuredContent wraps a pre-sectioned document.
func StructuredContent(s Structured) Content {
	return pipeline.StructuredContent(s)
}

// Input contains render parameters.
type Input struct {
	Locale  string  // Requested locale; unknown values use the catalog default
	Content Content // Biography paragraphs (required)
}

// Page is the render-ready model of the biography page for one locale.
type Page struct {
	Locale   string          `json:"locale" yaml:"locale"`
	Intro    []ParagraphView `json:"intro" yaml:"intro"`
	Sections []SectionView   `json:"sections" yaml:"sections"`
	Legend   Legend          `json:"legend" yaml:"legend"`
}

// ParagraphView is a paragraph split into spans.
type ParagraphView struct {
	ID    string `json:"id" yaml:"id"`
	Bold  bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Spans []Span `json:"spans" yaml:"spans"`
}

// Text returns the source text of the paragraph.
func (p ParagraphView) Text() string {
	return pipeline.JoinSpans(p.Spans)
}

// SectionView is a titled section with its illustrations.
// SplitAt is the index of the first paragraph of the second half, used by
// two-column layouts that place one image beside each half.
type SectionView struct {
	ID         string          `json:"id" yaml:"id"`
	Title      string          `json:"title" yaml:"title"`
	Paragraphs []ParagraphView `json:"paragraphs" yaml:"paragraphs"`
	Images     []Image         `json:"images" yaml:"images"`
	SplitAt    int             `json:"splitAt" yaml:"splitAt"`
}

// Image is one illustration of a section.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Legend is the section navigation of the page.
type Legend struct {
	Label    string        `json:"label" yaml:"label"`
	NavLabel string        `json:"navLabel" yaml:"navLabel"`
	Entries  []LegendEntry `json:"entries" yaml:"entries"`
}

// LegendEntry links to one section.
type LegendEntry struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// Option configures a Service.
type Option func(*Service)
