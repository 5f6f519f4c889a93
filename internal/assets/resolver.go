package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the catalog is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded catalogs are used.
// If customBasePath is set, custom catalogs take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadCatalog loads a catalog, trying custom loader first if available.
func (r *AssetResolver) LoadCatalog(name string) ([]byte, error) {
	// If no custom loader, use embedded directly
	if r.custom == nil {
		return r.embedded.LoadCatalog(name)
	}

	data, err := r.custom.LoadCatalog(name)
	if err == nil {
		return data, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !isNotFoundError(err) {
		return nil, err
	}

	return r.embedded.LoadCatalog(name)
}

// isNotFoundError checks if the error indicates the catalog was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrCatalogNotFound)
}

// HasCustomLoader returns true if a custom catalog loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
