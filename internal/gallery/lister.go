package gallery

import (
	"context"
	"io/fs"
	"os"
	"slices"
)

// Lister returns the filenames (not paths) of the regular files in one
// image directory. Order is unspecified.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// DirLister lists a directory on the local filesystem.
type DirLister struct {
	Dir string
}

// NewDirLister creates a DirLister for dir.
func NewDirLister(dir string) *DirLister {
	return &DirLister{Dir: dir}
}

// List returns the names of regular files in the directory.
// Subdirectories, symlinks and other special files are skipped.
func (l *DirLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}
	return regularNames(entries), nil
}

// FSLister lists a directory of an fs.FS.
type FSLister struct {
	FS  fs.FS
	Dir string
}

// NewFSLister creates an FSLister for dir inside fsys. Use "." for the root.
func NewFSLister(fsys fs.FS, dir string) *FSLister {
	return &FSLister{FS: fsys, Dir: dir}
}

// List returns the names of regular files in the directory.
func (l *FSLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.FS, l.Dir)
	if err != nil {
		return nil, err
	}
	return regularNames(entries), nil
}

func regularNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names
}

// StaticLister returns a fixed listing. Useful for tests and for callers that
// already know their asset set.
type StaticLister []string

// List returns a copy of the fixed listing.
func (l StaticLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone([]string(l)), nil
}

// Compile-time interface checks.
var (
	_ Lister = (*DirLister)(nil)
	_ Lister = (*FSLister)(nil)
	_ Lister = StaticLister(nil)
)
