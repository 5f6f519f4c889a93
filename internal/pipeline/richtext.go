package pipeline

import "strings"

// SpanText is the kind of spans holding unstyled text.
const SpanText = "text"

// Token is a literal substring that receives special rendering.
type Token struct {
	Literal string // Text searched for in paragraphs
	Kind    string // Span kind emitted on a match, e.g. "slogan", "link"
	Display string // Optional replacement shown instead of Literal
	Href    string // Optional link target
}

// Span is a contiguous run of paragraph text.
// Text always holds the source text so spans can be joined back losslessly.
type Span struct {
	Kind    string `json:"kind" yaml:"kind"`
	Text    string `json:"text" yaml:"text"`
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
	Href    string `json:"href,omitempty" yaml:"href,omitempty"`
}

// Rendered returns the text a renderer should show for the span.
func (s Span) Rendered() string {
	if s.Display != "" {
		return s.Display
	}
	return s.Text
}

// Tokenize splits text into plain and styled spans.
// At each step the token occurring earliest after the cursor wins; on equal
// positions the token listed first wins. Tokens with an empty literal are
// ignored. Empty text yields no spans.
func Tokenize(text string, tokens []Token) []Span {
	spans := make([]Span, 0, 1)
	cursor := 0

	for cursor < len(text) {
		next := -1
		var match Token

		for _, tok := range tokens {
			if tok.Literal == "" {
				continue
			}
			idx := strings.Index(text[cursor:], tok.Literal)
			if idx == -1 {
				continue
			}
			idx += cursor
			if next == -1 || idx < next {
				next = idx
				match = tok
			}
		}

		if next == -1 {
			spans = append(spans, Span{Kind: SpanText, Text: text[cursor:]})
			break
		}

		if next > cursor {
			spans = append(spans, Span{Kind: SpanText, Text: text[cursor:next]})
		}

		spans = append(spans, Span{
			Kind:    match.Kind,
			Text:    match.Literal,
			Display: match.Display,
			Href:    match.Href,
		})
		cursor = next + len(match.Literal)
	}

	return spans
}

// JoinSpans concatenates the source text of spans.
func JoinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
