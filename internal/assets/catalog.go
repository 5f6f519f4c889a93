package assets

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-biopage/internal/pipeline"
	"github.com/alnah/go-biopage/internal/yamlutil"
)

// DefaultCatalogName is the catalog shipped with the binary.
const DefaultCatalogName = "biography"

// Catalog is the static, per-locale configuration of the biography page:
// the heading sets used for segmentation, the cross-locale alias table, the
// special tokens highlighted in paragraphs, and UI labels.
type Catalog struct {
	DefaultLocale string              `yaml:"defaultLocale"`
	Locales       []string            `yaml:"locales"`
	Headings      map[string][]string `yaml:"headings"`
	Aliases       map[string]string   `yaml:"aliases"`
	Tokens        []TokenSpec         `yaml:"tokens"`
	Labels        map[string]Labels   `yaml:"labels"`
}

// TokenSpec describes a literal that receives special rendering.
// Display maps a locale to an alternative inline rendering of Literal.
type TokenSpec struct {
	Literal string            `yaml:"literal"`
	Kind    string            `yaml:"kind"`
	Href    string            `yaml:"href,omitempty"`
	Display map[string]string `yaml:"display,omitempty"`
}

// Labels holds locale-specific UI strings attached to the page model.
type Labels struct {
	Legend    string `yaml:"legend"`
	LegendNav string `yaml:"legendNav"`
	ImageAlt  string `yaml:"imageAlt"`
}

// ParseCatalog decodes and validates catalog YAML.
// Unknown fields are rejected so typos in hand-edited catalogs surface early.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yamlutil.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	c.foldLocales()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// normalizeLocale folds a locale tag to the form the catalog is keyed by.
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// foldLocales rewrites every locale tag and locale-keyed map in the catalog
// to lower case, so "pt-BR" and "pt-br" name the same locale.
func (c *Catalog) foldLocales() {
	c.DefaultLocale = normalizeLocale(c.DefaultLocale)
	for i, locale := range c.Locales {
		c.Locales[i] = normalizeLocale(locale)
	}
	c.Headings = foldKeys(c.Headings)
	c.Labels = foldKeys(c.Labels)
	for i := range c.Tokens {
		c.Tokens[i].Display = foldKeys(c.Tokens[i].Display)
	}
}

func foldKeys[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[normalizeLocale(k)] = v
	}
	return out
}

// Validate checks that every declared locale is fully described.
func (c *Catalog) Validate() error {
	if len(c.Locales) == 0 {
		return fmt.Errorf("%w: no locales declared", ErrInvalidCatalog)
	}
	if !slices.Contains(c.Locales, c.DefaultLocale) {
		return fmt.Errorf("%w: default locale %q not in locales %v", ErrInvalidCatalog, c.DefaultLocale, c.Locales)
	}
	for i, locale := range c.Locales {
		if slices.Contains(c.Locales[:i], locale) {
			return fmt.Errorf("%w: locale %q declared twice", ErrInvalidCatalog, locale)
		}
		if len(c.Headings[locale]) == 0 {
			return fmt.Errorf("%w: no headings for locale %q", ErrInvalidCatalog, locale)
		}
		if _, ok := c.Labels[locale]; !ok {
			return fmt.Errorf("%w: no labels for locale %q", ErrInvalidCatalog, locale)
		}
	}
	for i, tok := range c.Tokens {
		if tok.Literal == "" {
			return fmt.Errorf("%w: tokens[%d].literal is empty", ErrInvalidCatalog, i)
		}
		if tok.Kind == "" {
			return fmt.Errorf("%w: tokens[%d].kind is empty", ErrInvalidCatalog, i)
		}
	}
	return nil
}

// HasLocale reports whether locale is declared by the catalog.
// The comparison ignores case.
func (c *Catalog) HasLocale(locale string) bool {
	return slices.Contains(c.Locales, normalizeLocale(locale))
}

// ResolveLocale maps a requested locale onto a supported one, falling back
// to the default locale for unknown or empty values.
func (c *Catalog) ResolveLocale(value string) string {
	value = normalizeLocale(value)
	if c.HasLocale(value) {
		return value
	}
	return c.DefaultLocale
}

// HeadingsFor returns the heading set of locale.
func (c *Catalog) HeadingsFor(locale string) []string {
	return slices.Clone(c.Headings[normalizeLocale(locale)])
}

// LabelsFor returns the UI labels of locale.
func (c *Catalog) LabelsFor(locale string) Labels {
	return c.Labels[normalizeLocale(locale)]
}

// TokensFor returns the tokenizer configuration for locale, with the
// locale's display variant applied where one exists.
func (c *Catalog) TokensFor(locale string) []pipeline.Token {
	locale = normalizeLocale(locale)
	tokens := make([]pipeline.Token, len(c.Tokens))
	for i, spec := range c.Tokens {
		tokens[i] = pipeline.Token{
			Literal: spec.Literal,
			Kind:    spec.Kind,
			Href:    spec.Href,
			Display: spec.Display[locale],
		}
	}
	return tokens
}

// AliasTable builds the normalized alias table.
func (c *Catalog) AliasTable() pipeline.AliasTable {
	return pipeline.NewAliasTable(c.Aliases)
}

// LoadCatalog loads and parses the named catalog through loader.
func LoadCatalog(loader AssetLoader, name string) (*Catalog, error) {
	data, err := loader.LoadCatalog(name)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// DefaultCatalog parses the embedded default catalog.
// It panics if the embedded file is invalid, which is a build defect.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(NewEmbeddedLoader(), DefaultCatalogName)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded catalog: %v", err))
	}
	return c
}
