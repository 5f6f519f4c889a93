package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// catalogExt is the extension of catalog files in a catalog directory.
const catalogExt = ".yaml"

// FilesystemLoader reads catalog files from a user-supplied catalog directory,
// such as the one named by catalog.dir in biopage.yaml.
type FilesystemLoader struct {
	dir string
}

// NewFilesystemLoader opens a catalog directory. The directory is resolved to
// an absolute, symlink-free path once, so later containment checks compare
// like with like.
//
// Returns ErrInvalidBasePath if dir is empty, missing, not a directory, or
// cannot be listed.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty catalog directory", ErrInvalidBasePath)
	}

	resolved, err := resolvePath(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: catalog directory %s does not exist", ErrInvalidBasePath, resolved)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is a file, want a catalog directory", ErrInvalidBasePath, resolved)
	}

	if _, err := os.ReadDir(resolved); err != nil {
		return nil, fmt.Errorf("%w: cannot list catalog directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{dir: resolved}, nil
}

// LoadCatalog reads {dir}/{name}.yaml. The name must pass ValidateAssetName
// and the file, after symlinks, must stay inside the catalog directory.
func (f *FilesystemLoader) LoadCatalog(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(f.dir, name+catalogExt)
	if err := f.contains(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- contained in the catalog directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q in %s", ErrCatalogNotFound, name, f.dir)
	case err != nil:
		return nil, fmt.Errorf("%w: catalog %q: %v", ErrAssetRead, name, err)
	}
	return data, nil
}

// contains rejects catalog paths that resolve outside the catalog directory,
// including through a symlinked catalog file.
func (f *FilesystemLoader) contains(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}

	rel, err := filepath.Rel(f.dir, resolved)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: catalog resolves outside %s", ErrPathTraversal, f.dir)
	}
	return nil
}

// resolvePath returns the absolute form of path with symlinks followed.
// A path that does not exist yet keeps its absolute, unresolved form.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, nil
	}
	return abs, nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
