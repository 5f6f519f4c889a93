package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-biopage/internal/pipeline"
)

// Notes:
// - The embedded catalog is the production data set; tests pin the properties
//   other packages rely on (locale coverage, alias symmetry) rather than its
//   exact wording.

const minimalCatalog = `
defaultLocale: en
locales: [en]
headings:
  en: [Childhood]
labels:
  en:
    legend: Legend
    legendNav: Nav
    imageAlt: Photo
`

// ---------------------------------------------------------------------------
// ParseCatalog
// ---------------------------------------------------------------------------

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"minimal", minimalCatalog, nil},
		{"not yaml", "defaultLocale: [en", ErrCatalogParse},
		{"unknown field", minimalCatalog + "extra: true\n", ErrCatalogParse},
		{"no locales", "defaultLocale: en\n", ErrInvalidCatalog},
		{
			name:    "default locale undeclared",
			input:   strings.Replace(minimalCatalog, "defaultLocale: en", "defaultLocale: ua", 1),
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "locale without headings",
			input:   strings.Replace(minimalCatalog, "locales: [en]", "locales: [en, ua]", 1),
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "locale declared twice",
			input:   strings.Replace(minimalCatalog, "locales: [en]", "locales: [en, EN]", 1),
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "token without literal",
			input:   minimalCatalog + "tokens:\n  - kind: link\n",
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "token without kind",
			input:   minimalCatalog + "tokens:\n  - literal: example.com\n",
			wantErr: ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := ParseCatalog([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseCatalog() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && c == nil {
				t.Fatal("ParseCatalog() returned nil catalog")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Default catalog
// ---------------------------------------------------------------------------

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()

	for _, locale := range []string{"en", "ua"} {
		if !c.HasLocale(locale) {
			t.Errorf("HasLocale(%q) = false, want true", locale)
		}
		if got := len(c.HeadingsFor(locale)); got != 8 {
			t.Errorf("len(HeadingsFor(%q)) = %d, want 8", locale, got)
		}
		if c.LabelsFor(locale).ImageAlt == "" {
			t.Errorf("LabelsFor(%q).ImageAlt is empty", locale)
		}
	}
	if c.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q, want %q", c.DefaultLocale, "en")
	}
}

func TestDefaultCatalog_HeadingsAliasToSameSeries(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	aliases := c.AliasTable()
	en := c.HeadingsFor("en")
	ua := c.HeadingsFor("ua")

	for i := range en {
		enKey, ok := aliases.Lookup(en[i])
		if !ok {
			t.Errorf("no alias for %q", en[i])
			continue
		}
		uaKey, ok := aliases.Lookup(ua[i])
		if !ok {
			t.Errorf("no alias for %q", ua[i])
			continue
		}
		if enKey != uaKey {
			t.Errorf("heading %d: en alias %q != ua alias %q", i, enKey, uaKey)
		}
	}
}

func TestDefaultCatalog_ChildhoodResolves(t *testing.T) {
	t.Parallel()

	series := pipeline.SeriesMap{"childhood": {"/images/childhood-1.jpg", "/images/childhood-2.jpg"}}
	got := DefaultCatalog().AliasTable().Resolve("Дитинство", series)
	if len(got) != 2 || got[0] != "/images/childhood-1.jpg" {
		t.Errorf("Resolve(Дитинство) = %v, want both childhood images", got)
	}
}

// ---------------------------------------------------------------------------
// Locale helpers
// ---------------------------------------------------------------------------

func TestCatalog_ResolveLocale(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"ua", "ua"},
		{" UA ", "ua"},
		{"fr", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := c.ResolveLocale(tt.input); got != tt.want {
				t.Errorf("ResolveLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCatalog_MixedCaseLocale(t *testing.T) {
	t.Parallel()

	c, err := ParseCatalog([]byte(`
defaultLocale: en
locales: [en, pt-BR]
headings:
  en: [Childhood]
  pt-BR: [Infância]
labels:
  en: {legend: Legend, legendNav: Nav, imageAlt: Photo}
  pt-BR: {legend: Legenda, legendNav: Navegação, imageAlt: Foto}
tokens:
  - literal: example.com
    kind: link
    display:
      pt-BR: exemplo
`))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	for _, requested := range []string{"pt-BR", "pt-br", " PT-BR "} {
		if got := c.ResolveLocale(requested); got != "pt-br" {
			t.Errorf("ResolveLocale(%q) = %q, want %q", requested, got, "pt-br")
		}
		if !c.HasLocale(requested) {
			t.Errorf("HasLocale(%q) = false, want true", requested)
		}
	}
	if got := c.HeadingsFor("pt-BR"); len(got) != 1 || got[0] != "Infância" {
		t.Errorf("HeadingsFor(pt-BR) = %v", got)
	}
	if got := c.LabelsFor("pt-br").ImageAlt; got != "Foto" {
		t.Errorf("LabelsFor(pt-br).ImageAlt = %q, want Foto", got)
	}
	if got := c.TokensFor("pt-BR")[0].Display; got != "exemplo" {
		t.Errorf("TokensFor(pt-BR) display = %q, want exemplo", got)
	}
}

func TestCatalog_HeadingsForReturnsCopy(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	h := c.HeadingsFor("en")
	h[0] = "mutated"
	if c.HeadingsFor("en")[0] == "mutated" {
		t.Error("HeadingsFor() should return a copy")
	}
}

func TestCatalog_TokensFor(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()

	en := c.TokensFor("en")
	ua := c.TokensFor("ua")
	if len(en) != 2 || len(ua) != 2 {
		t.Fatalf("len(TokensFor) = %d/%d, want 2/2", len(en), len(ua))
	}

	if en[0].Kind != "slogan" || en[0].Display != "" {
		t.Errorf("en slogan = %+v, want kind slogan without display variant", en[0])
	}
	if !strings.Contains(ua[0].Display, "ЦЕ,\u00a0ТО") {
		t.Errorf("ua slogan display %q should keep a non-breaking space", ua[0].Display)
	}
	if ua[0].Literal != en[0].Literal {
		t.Error("display variants must not change the searched literal")
	}
	if en[1].Kind != "link" || en[1].Href != "https://wnbfukraine.com.ua" {
		t.Errorf("link token = %+v", en[1])
	}
}

func TestCatalog_TokensForTokenizesSlogan(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	slogan := c.Tokens[0].Literal
	text := "Motto: " + slogan + " Visit wnbfukraine.com.ua today."

	spans := pipeline.Tokenize(text, c.TokensFor("ua"))
	if got := pipeline.JoinSpans(spans); got != text {
		t.Fatalf("JoinSpans() = %q, want %q", got, text)
	}

	var kinds []string
	for _, s := range spans {
		kinds = append(kinds, s.Kind)
	}
	want := []string{"text", "slogan", "text", "link", "text"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("span kinds = %v, want %v", kinds, want)
	}
}
