package biopage

import (
	"errors"

	"github.com/alnah/go-biopage/internal/assets"
	"github.com/alnah/go-biopage/internal/gallery"
)

// Sentinel errors for library operations.
var (
	// ErrListImages indicates the image directory could not be listed.
	ErrListImages = gallery.ErrListImages

	// Content loading errors.
	ErrContentNotFound = errors.New("biography content not found")
	ErrEmptyContent    = errors.New("biography content is empty")
	ErrInvalidContent  = errors.New("invalid biography content")

	// Catalog errors.
	ErrCatalogNotFound    = assets.ErrCatalogNotFound
	ErrCatalogParse       = assets.ErrCatalogParse
	ErrInvalidCatalog     = assets.ErrInvalidCatalog
	ErrInvalidCatalogPath = assets.ErrInvalidBasePath
)
