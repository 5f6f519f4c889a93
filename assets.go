package biopage

import (
	"io/fs"
	"time"

	"github.com/alnah/go-biopage/internal/assets"
	"github.com/alnah/go-biopage/internal/gallery"
)

// DefaultCatalogName is the name of the built-in catalog.
const DefaultCatalogName = assets.DefaultCatalogName

// Catalog holds per-locale headings, the alias table, special tokens and UI
// labels. See LoadCatalog.
type Catalog = assets.Catalog

// TokenSpec describes one special token of a Catalog.
type TokenSpec = assets.TokenSpec

// Labels holds the localized UI strings of a Catalog.
type Labels = assets.Labels

// DefaultCatalog returns the built-in English/Ukrainian catalog.
func DefaultCatalog() *Catalog {
	return assets.DefaultCatalog()
}

// LoadCatalog loads the catalog called name (without .yaml extension).
// If dir is empty, only the built-in catalogs are searched.
// If dir is set, {dir}/{name}.yaml takes precedence with fallback to the
// built-in catalog of the same name.
//
// Returns ErrInvalidCatalogPath if dir is set but not a readable directory,
// ErrCatalogNotFound if no catalog has that name, and ErrCatalogParse or
// ErrInvalidCatalog if the file is malformed.
func LoadCatalog(dir, name string) (*Catalog, error) {
	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultCatalogName
	}
	return assets.LoadCatalog(resolver, name)
}

// Lister returns the filenames in an image directory.
// Implement it to discover images from another backend.
type Lister = gallery.Lister

// NewDirLister lists a directory on the local filesystem.
func NewDirLister(dir string) Lister {
	return gallery.NewDirLister(dir)
}

// NewFSLister lists dir inside fsys, for example an embed.FS.
func NewFSLister(fsys fs.FS, dir string) Lister {
	return gallery.NewFSLister(fsys, dir)
}

// NewStaticLister returns a Lister with a fixed set of filenames.
func NewStaticLister(names ...string) Lister {
	return gallery.StaticLister(names)
}

// NewCachedLister caches the listing of inner for ttl.
// Use it in long-running servers to avoid a directory read per request.
func NewCachedLister(inner Lister, ttl time.Duration) Lister {
	return gallery.NewCache(1, ttl).Wrap("images", inner)
}
