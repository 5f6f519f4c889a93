package main

import (
	"errors"
	"os"

	biopage "github.com/alnah/go-biopage"
	"github.com/alnah/go-biopage/internal/assets"
	"github.com/alnah/go-biopage/internal/config"
)

// Exit codes for biopage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, catalog, or content
	ExitIO      = 3 // Unreadable input, image directory, or output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, biopage.ErrListImages) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrReadMessages) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigEnv) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, biopage.ErrContentNotFound) ||
		errors.Is(err, biopage.ErrEmptyContent) ||
		errors.Is(err, biopage.ErrInvalidContent) ||
		errors.Is(err, biopage.ErrCatalogNotFound) ||
		errors.Is(err, biopage.ErrCatalogParse) ||
		errors.Is(err, biopage.ErrInvalidCatalog) ||
		errors.Is(err, biopage.ErrInvalidCatalogPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidLocale) ||
		errors.Is(err, ErrNoMessages) ||
		errors.Is(err, ErrNoImagesDir) ||
		errors.Is(err, ErrInvalidWorkers) {
		return ExitUsage
	}

	return ExitGeneral
}
