package biopage

import (
	"errors"
	"fmt"

	"github.com/alnah/go-biopage/internal/yamlutil"
)

// DefaultContentKey is where next-intl style messages files keep the biography.
const DefaultContentKey = "aboutPage.biography"

// DecodeContent decodes biography content from YAML or JSON.
// A sequence of {text, bold} items is a flat stream; a mapping with intro and
// sections is a structured document.
func DecodeContent(data []byte) (Content, error) {
	return LoadContent(data, "")
}

// LoadContent decodes the biography found at the dotted key of a messages
// file. An empty key selects the whole document.
//
// Returns ErrContentNotFound if the key is absent, ErrEmptyContent if it
// holds no paragraphs, and ErrInvalidContent if it has another shape.
func LoadContent(data []byte, key string) (Content, error) {
	node, err := yamlutil.Select(data, key)
	switch {
	case errors.Is(err, yamlutil.ErrKeyNotFound):
		return Content{}, fmt.Errorf("%w: key %q", ErrContentNotFound, key)
	case errors.Is(err, yamlutil.ErrNilData):
		return Content{}, ErrEmptyContent
	case err != nil:
		return Content{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	switch kind := node.Kind(); kind {
	case yamlutil.KindSequence:
		var paragraphs []Paragraph
		if err := node.DecodeStrict(&paragraphs); err != nil {
			return Content{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		if len(paragraphs) == 0 {
			return Content{}, ErrEmptyContent
		}
		return FlatContent(paragraphs), nil

	case yamlutil.KindMapping:
		var s Structured
		if err := node.DecodeStrict(&s); err != nil {
			return Content{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		content := StructuredContent(s)
		if len(s.Sections) == 0 && content.Len() == 0 {
			return Content{}, ErrEmptyContent
		}
		return content, nil

	case yamlutil.KindNull:
		return Content{}, ErrEmptyContent

	default:
		return Content{}, fmt.Errorf("%w: expected a list of paragraphs or a mapping with sections, got %s", ErrInvalidContent, kind)
	}
}
