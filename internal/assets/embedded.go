package assets

import (
	"embed"
	"fmt"
)

//go:embed catalogs/*.yaml
var catalogs embed.FS

// EmbeddedLoader loads catalogs from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadCatalog loads a catalog from embedded assets by name.
func (e *EmbeddedLoader) LoadCatalog(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := catalogs.ReadFile("catalogs/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
