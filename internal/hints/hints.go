// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-biopage/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForImagesDir returns hints for image directory listing errors.
// In containers, the directory usually has to be mounted first.
func ForImagesDir(dir string) string {
	var hints []string

	if dir == "" {
		hints = append(hints, "set --images or BIOPAGE_IMAGES_DIR")
	} else if !fileutil.DirExists(dir) {
		hints = append(hints, "check that "+dir+" exists and is a directory")
	}

	if IsInContainer() && os.Getenv("BIOPAGE_IMAGES_DIR") == "" {
		hints = append(hints, "mount the images directory into the container")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-biopage/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-biopage") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForCatalogNotFound returns hints for catalog lookup errors.
func ForCatalogNotFound(name string) string {
	return format("catalogs are read from <dir>/" + name + ".yaml; omit --catalog to use the built-in one")
}

// ForContentKey returns hints for a messages key that selects nothing.
func ForContentKey(key string) string {
	return format("the biography must sit under \"" + key + "\"; change it with --key")
}

// ForMessages returns hints for a locale without messages file.
func ForMessages() string {
	return format("pass messages files as arguments (e.g. messages/ua.json) or set content.messages in the config")
}

// ForLocale returns hints listing the accepted locales.
func ForLocale(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + ", all")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
