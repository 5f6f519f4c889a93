package pipeline

import "fmt"

// FallbackSectionTitle titles the single section synthesized when a flat
// paragraph stream contains no recognized heading.
const FallbackSectionTitle = "Biography"

// Paragraph id prefixes.
const (
	flatIDPrefix    = "biography"
	introIDPrefix   = "biography-intro"
	sectionIDPrefix = "bio-section"

	// idTextLength is the number of leading text characters baked into an id.
	idTextLength = 24
)

// Paragraph is one unit of translated biography text.
type Paragraph struct {
	Text string `json:"text" yaml:"text"`
	Bold bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
}

// ParagraphWithID is a Paragraph carrying a stable list key.
// Ids are derived from position and text and are unique on a best-effort basis.
type ParagraphWithID struct {
	Paragraph `yaml:",inline"`
	ID        string `json:"id" yaml:"id"`
}

// Section is a titled, ordered run of paragraphs.
type Section struct {
	ID         string            `json:"id" yaml:"id"`
	Title      string            `json:"title" yaml:"title"`
	Paragraphs []ParagraphWithID `json:"paragraphs" yaml:"paragraphs"`
}

// SplitResult partitions a biography into intro paragraphs and sections.
type SplitResult struct {
	IntroParagraphs []ParagraphWithID `json:"introParagraphs" yaml:"introParagraphs"`
	Sections        []Section         `json:"sections" yaml:"sections"`
}

// AuthoredSection is a section whose heading was written explicitly by the
// content author rather than detected in a flat stream.
type AuthoredSection struct {
	Heading string      `json:"heading" yaml:"heading"`
	Body    []Paragraph `json:"body" yaml:"body"`
}

// Structured is the pre-sectioned content shape.
type Structured struct {
	Intro    []Paragraph       `json:"intro,omitempty" yaml:"intro,omitempty"`
	Sections []AuthoredSection `json:"sections" yaml:"sections"`
}

// Content is either a flat paragraph stream or a Structured document.
// A non-nil Structured selects the structured shape; otherwise Flat is used.
type Content struct {
	Flat       []Paragraph
	Structured *Structured
}

// FlatContent wraps a flat paragraph stream.
func FlatContent(paragraphs []Paragraph) Content {
	return Content{Flat: paragraphs}
}

// StructuredContent wraps a pre-sectioned document.
func StructuredContent(s Structured) Content {
	return Content{Structured: &s}
}

// IsStructured reports whether c holds the pre-sectioned shape.
func (c Content) IsStructured() bool {
	return c.Structured != nil
}

// Len returns the number of paragraphs in c, authored headings excluded.
func (c Content) Len() int {
	if !c.IsStructured() {
		return len(c.Flat)
	}
	n := len(c.Structured.Intro)
	for _, s := range c.Structured.Sections {
		n += len(s.Body)
	}
	return n
}

// Segment turns content into intro paragraphs and sections.
// Flat streams are split on exact (trimmed) matches against headings;
// structured content is converted section by section. Segment never fails:
// malformed input is accepted as-is.
func Segment(content Content, headings []string) SplitResult {
	if content.IsStructured() {
		return fromStructured(*content.Structured)
	}
	return splitFlat(withIDs(content.Flat, flatIDPrefix), headings)
}

// splitFlat walks paragraphs in order, opening a new section on each heading.
func splitFlat(paragraphs []ParagraphWithID, headings []string) SplitResult {
	headingSet := make(map[string]struct{}, len(headings))
	for _, h := range headings {
		headingSet[TrimText(h)] = struct{}{}
	}

	intro := make([]ParagraphWithID, 0)
	sections := make([]Section, 0)
	var current *Section

	for _, p := range paragraphs {
		trimmed := TrimText(p.Text)
		if _, isHeading := headingSet[trimmed]; isHeading {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{
				ID:         sectionID(len(sections) + 1),
				Title:      trimmed,
				Paragraphs: make([]ParagraphWithID, 0),
			}
			continue
		}

		if current != nil {
			current.Paragraphs = append(current.Paragraphs, p)
		} else {
			intro = append(intro, p)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	// The page layout is section-based; a bare intro becomes one section.
	if len(sections) == 0 && len(intro) > 0 {
		return SplitResult{
			IntroParagraphs: make([]ParagraphWithID, 0),
			Sections: []Section{{
				ID:         sectionID(1),
				Title:      FallbackSectionTitle,
				Paragraphs: intro,
			}},
		}
	}

	return SplitResult{IntroParagraphs: intro, Sections: sections}
}

// fromStructured assigns ids to authored content. No heading detection.
func fromStructured(s Structured) SplitResult {
	sections := make([]Section, len(s.Sections))
	for i, authored := range s.Sections {
		sections[i] = Section{
			ID:         sectionID(i + 1),
			Title:      authored.Heading,
			Paragraphs: withIDs(authored.Body, fmt.Sprintf("biography-section-%d", i+1)),
		}
	}

	return SplitResult{
		IntroParagraphs: withIDs(s.Intro, introIDPrefix),
		Sections:        sections,
	}
}

// withIDs decorates paragraphs with ids of the form prefix-index-text.
func withIDs(paragraphs []Paragraph, prefix string) []ParagraphWithID {
	out := make([]ParagraphWithID, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = ParagraphWithID{
			Paragraph: p,
			ID:        ParagraphID(prefix, i, p.Text),
		}
	}
	return out
}

// ParagraphID builds the list key for the paragraph at index.
// Only the first 24 characters of text are used.
func ParagraphID(prefix string, index int, text string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, index, truncateRunes(text, idTextLength))
}

func sectionID(n int) string {
	return fmt.Sprintf("%s-%d", sectionIDPrefix, n)
}

// truncateRunes returns at most n leading runes of s.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
