package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-biopage/internal/config"
	"github.com/alnah/go-biopage/internal/hints"
)

// envConfigName names the config file when --config is not given.
const envConfigName = "BIOPAGE_CONFIG"

// knownEnvVars lists valid BIOPAGE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfigName:                  true,
	"BIOPAGE_CONTENT_KEY":          true,
	"BIOPAGE_IMAGES_DIR":           true,
	"BIOPAGE_IMAGES_PUBLIC_PREFIX": true,
	"BIOPAGE_IMAGES_CACHE_TTL":     true,
	"BIOPAGE_CATALOG_DIR":          true,
	"BIOPAGE_CATALOG_NAME":         true,
	"BIOPAGE_OUTPUT_FORMAT":        true,
	"BIOPAGE_OUTPUT_PATH":          true,
	"BIOPAGE_LOCALES":              true,
}

// warnUnknownEnvVars logs warnings for unrecognized BIOPAGE_* variables.
// Helps catch typos like BIOPAGE_IMAGE_DIR instead of BIOPAGE_IMAGES_DIR.
func warnUnknownEnvVars(w io.Writer, environ map[string]string) {
	names := make([]string, 0)
	for name := range environ {
		if strings.HasPrefix(name, "BIOPAGE_") && !knownEnvVars[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// loadConfig builds the effective configuration below CLI flags:
// defaults, then the config file (flag name, else BIOPAGE_CONFIG), then
// BIOPAGE_* overrides.
func loadConfig(flagName string, environ map[string]string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = environ[envConfigName]
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg, environ); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configSearchPaths lists where a config name is looked up, for hints.
func configSearchPaths(name string) []string {
	paths := []string{name + ".yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "go-biopage", name+".yaml"))
	}
	return paths
}
