package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-biopage/internal/fileutil"
	"github.com/alnah/go-biopage/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigEnv       = errors.New("failed to parse environment")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxKeyLength    = 256  // Dotted messages key
	MaxPrefixLength = 512  // Public URL prefix
	MaxLocaleLength = 10   // "en", "ua", "pt-br"
	MaxLocales      = 16
)

// Defaults.
const (
	DefaultContentKey   = "aboutPage.biography"
	DefaultPublicPrefix = "/images"
	DefaultCacheTTL     = time.Minute
	DefaultFormat       = FormatJSON
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration for page rendering.
// Environment variables (BIOPAGE_*) override values read from file.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Images  ImagesConfig  `yaml:"images"`
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Locales []string      `yaml:"locales" env:"BIOPAGE_LOCALES"`
}

// ContentConfig locates the biography in translation message files.
type ContentConfig struct {
	// Messages maps a locale to its messages file, e.g. {en: messages/en.json}.
	Messages map[string]string `yaml:"messages"`
	// Key is the dotted path of the biography inside each messages file.
	Key string `yaml:"key" env:"BIOPAGE_CONTENT_KEY"`
}

// ImagesConfig defines where biography images are discovered.
type ImagesConfig struct {
	Dir          string        `yaml:"dir" env:"BIOPAGE_IMAGES_DIR"`
	PublicPrefix string        `yaml:"publicPrefix" env:"BIOPAGE_IMAGES_PUBLIC_PREFIX"`
	CacheTTL     time.Duration `yaml:"cacheTTL" env:"BIOPAGE_IMAGES_CACHE_TTL"`
}

// CatalogConfig defines catalog loading options.
type CatalogConfig struct {
	Dir  string `yaml:"dir" env:"BIOPAGE_CATALOG_DIR"`   // Empty = use embedded catalog
	Name string `yaml:"name" env:"BIOPAGE_CATALOG_NAME"` // Empty = "biography"
}

// OutputConfig defines how rendered pages are written.
type OutputConfig struct {
	Format string `yaml:"format" env:"BIOPAGE_OUTPUT_FORMAT"` // "json" or "yaml"
	Path   string `yaml:"path" env:"BIOPAGE_OUTPUT_PATH"`     // Empty = stdout
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for locale, path := range c.Content.Messages {
		if err := validateFieldLength("content.messages key", locale, MaxLocaleLength); err != nil {
			return err
		}
		if err := validateFieldLength("content.messages."+locale, path, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("content.key", c.Content.Key, MaxKeyLength); err != nil {
		return err
	}
	if strings.HasPrefix(c.Content.Key, ".") || strings.HasSuffix(c.Content.Key, ".") || strings.Contains(c.Content.Key, "..") {
		return fmt.Errorf("%w: content.key %q has an empty segment", ErrInvalidValue, c.Content.Key)
	}

	if err := validateFieldLength("images.dir", c.Images.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("images.publicPrefix", c.Images.PublicPrefix, MaxPrefixLength); err != nil {
		return err
	}
	if c.Images.PublicPrefix != "" && !strings.HasPrefix(c.Images.PublicPrefix, "/") {
		return fmt.Errorf("%w: images.publicPrefix %q must start with /", ErrInvalidValue, c.Images.PublicPrefix)
	}
	if c.Images.CacheTTL < 0 {
		return fmt.Errorf("%w: images.cacheTTL must not be negative, got %s", ErrInvalidValue, c.Images.CacheTTL)
	}

	if err := validateFieldLength("catalog.dir", c.Catalog.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("catalog.name", c.Catalog.Name, MaxKeyLength); err != nil {
		return err
	}

	if c.Output.Format != "" {
		switch strings.ToLower(c.Output.Format) {
		case FormatJSON, FormatYAML:
			// valid
		default:
			return fmt.Errorf("%w: output.format %q (must be json or yaml)", ErrInvalidValue, c.Output.Format)
		}
	}
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}

	if len(c.Locales) > MaxLocales {
		return fmt.Errorf("%w: locales (%d entries, max %d)", ErrFieldTooLong, len(c.Locales), MaxLocales)
	}
	for i, locale := range c.Locales {
		if err := validateFieldLength(fmt.Sprintf("locales[%d]", i), locale, MaxLocaleLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Key: DefaultContentKey},
		Images:  ImagesConfig{PublicPrefix: DefaultPublicPrefix, CacheTTL: DefaultCacheTTL},
		Output:  OutputConfig{Format: DefaultFormat},
	}
}

// FormatOrDefault returns the normalized output format.
func (c *Config) FormatOrDefault() string {
	if c.Output.Format == "" {
		return DefaultFormat
	}
	return strings.ToLower(c.Output.Format)
}

// MessagesLocales returns the locales that have a messages file, sorted.
func (c *Config) MessagesLocales() []string {
	locales := make([]string, 0, len(c.Content.Messages))
	for locale := range c.Content.Messages {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Values absent from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides cfg with BIOPAGE_* variables found in environ.
// A nil environ reads the process environment. Only variables that are set
// change cfg; the result is validated.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigEnv, err)
	}
	return cfg.Validate()
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-biopage/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-biopage", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
