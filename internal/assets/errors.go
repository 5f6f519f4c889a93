package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrCatalogNotFound indicates the requested catalog does not exist.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrCatalogParse indicates the catalog is not valid YAML or has unknown fields.
	ErrCatalogParse = errors.New("failed to parse catalog")

	// ErrInvalidCatalog indicates the catalog parsed but is incomplete.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
