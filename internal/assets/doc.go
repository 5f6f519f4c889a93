// Package assets provides the content catalog of the biography page.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default catalog)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to the
// EmbeddedLoader only when the catalog is not found. Parse and I/O errors in a
// custom catalog are reported, never masked by the embedded one.
//
// # Catalog Content
//
// A catalog is one YAML file, {basePath}/{name}.yaml, holding per-locale
// heading sets, the locale-agnostic alias table, special tokens with
// locale-specific display variants, and UI labels. See Catalog.
//
// # Security
//
// Catalog names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
