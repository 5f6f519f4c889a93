package main

import (
	"errors"
	"slices"
	"strings"
	"testing"

	biopage "github.com/alnah/go-biopage"
	"github.com/alnah/go-biopage/internal/config"
)

// ---------------------------------------------------------------------------
// TestLocaleFromPath - Locale derived from messages filename
// ---------------------------------------------------------------------------

func TestLocaleFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"messages/ua.json", "ua"},
		{"en.yaml", "en"},
		{"/srv/site/messages/EN.json", "en"},
		{"ua", "ua"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := localeFromPath(tt.input); got != tt.want {
				t.Errorf("localeFromPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeRenderFlags - Flags override configuration
// ---------------------------------------------------------------------------

func TestMergeRenderFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Images.Dir = "from-config"
	cfg.Content.Messages = map[string]string{"en": "config/en.json", "ua": "config/ua.json"}

	flags := &renderFlags{
		key:     "home.bio",
		images:  imageFlags{prefix: "/static"},
		catalog: catalogFlags{dir: "catalogs", name: "athlete"},
		output:  outputFlags{path: "out.json", format: "yaml"},
	}
	mergeRenderFlags(flags, []string{"cli/ua.json"}, cfg)

	if cfg.Content.Key != "home.bio" {
		t.Errorf("Content.Key = %q", cfg.Content.Key)
	}
	if cfg.Images.Dir != "from-config" {
		t.Errorf("Images.Dir = %q, empty flag should keep config", cfg.Images.Dir)
	}
	if cfg.Images.PublicPrefix != "/static" {
		t.Errorf("Images.PublicPrefix = %q", cfg.Images.PublicPrefix)
	}
	if cfg.Catalog.Dir != "catalogs" || cfg.Catalog.Name != "athlete" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Output.Path != "out.json" || cfg.Output.Format != "yaml" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Content.Messages["ua"] != "cli/ua.json" || cfg.Content.Messages["en"] != "config/en.json" {
		t.Errorf("Messages = %v", cfg.Content.Messages)
	}
}

func TestMergeRenderFlags_NilMessages(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Content.Messages = nil

	mergeRenderFlags(&renderFlags{}, []string{"en.json"}, cfg)
	if cfg.Content.Messages["en"] != "en.json" {
		t.Errorf("Messages = %v", cfg.Content.Messages)
	}
}

// ---------------------------------------------------------------------------
// TestSelectLocales - Locale selection and validation
// ---------------------------------------------------------------------------

func TestSelectLocales(t *testing.T) {
	t.Parallel()

	catalog := biopage.DefaultCatalog()

	tests := []struct {
		name          string
		flag          string
		configLocales []string
		messages      map[string]string
		want          []string
		wantErr       error
	}{
		{
			name:     "default renders every messages file",
			messages: map[string]string{"ua": "ua.json", "en": "en.json"},
			want:     []string{"en", "ua"},
		},
		{
			name:          "config locales restrict",
			configLocales: []string{"ua"},
			messages:      map[string]string{"ua": "ua.json", "en": "en.json"},
			want:          []string{"ua"},
		},
		{
			name:          "flag beats config",
			flag:          "en",
			configLocales: []string{"ua"},
			messages:      map[string]string{"ua": "ua.json", "en": "en.json"},
			want:          []string{"en"},
		},
		{
			name:          "all ignores config locales",
			flag:          "ALL",
			configLocales: []string{"ua"},
			messages:      map[string]string{"ua": "ua.json", "en": "en.json"},
			want:          []string{"en", "ua"},
		},
		{
			name:     "comma list keeps order and drops duplicates",
			flag:     "ua, en,ua,",
			messages: map[string]string{"ua": "ua.json", "en": "en.json"},
			want:     []string{"ua", "en"},
		},
		{
			name:     "unknown locale",
			flag:     "fr",
			messages: map[string]string{"fr": "fr.json"},
			wantErr:  ErrInvalidLocale,
		},
		{
			name:     "default renders every messages file including unknown",
			messages: map[string]string{"en": "en.json", "de": "de.json"},
			wantErr:  ErrInvalidLocale,
		},
		{
			name:     "locale without messages",
			flag:     "ua",
			messages: map[string]string{"en": "en.json"},
			wantErr:  ErrNoMessages,
		},
		{
			name:    "nothing to render",
			wantErr: ErrNoMessages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Locales = tt.configLocales
			cfg.Content.Messages = tt.messages

			got, err := selectLocales(tt.flag, cfg, catalog)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("selectLocales() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && !slices.Equal(got, tt.want) {
				t.Errorf("selectLocales() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEncodePages - Output serialization
// ---------------------------------------------------------------------------

func TestEncodePages(t *testing.T) {
	t.Parallel()

	pages := []*biopage.Page{{
		Locale:   "ua",
		Intro:    []biopage.ParagraphView{},
		Sections: []biopage.SectionView{{ID: "bio-section-1", Title: "Дитинство", Paragraphs: []biopage.ParagraphView{}, Images: []biopage.Image{}}},
		Legend:   biopage.Legend{Label: "Легенда", Entries: []biopage.LegendEntry{}},
	}}

	tests := []struct {
		format string
		want   []string
	}{
		{config.FormatJSON, []string{`"pages": [`, `"title": "Дитинство"`, `"splitAt": 0`}},
		{config.FormatYAML, []string{"pages:", "title: Дитинство", "locale: ua"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			data, err := encodePages(pages, tt.format)
			if err != nil {
				t.Fatalf("encodePages() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(data), want) {
					t.Errorf("output should contain %q, got:\n%s", want, data)
				}
			}
		})
	}
}
