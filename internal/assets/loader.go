package assets

// AssetLoader defines the contract for loading raw catalog files.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadCatalog loads a catalog by name (without .yaml extension).
	// Returns ErrCatalogNotFound if the catalog doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadCatalog(name string) ([]byte, error)
}
