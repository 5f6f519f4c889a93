package pipeline

// Notes:
// - Idempotence is checked over the same inputs as the table plus a few
//   punctuation-heavy strings; there is no fuzz corpus in the repo.
// - Decomposed input is built with explicit combining marks so the NFC step
//   is exercised without relying on editor normalization.

import "testing"

// ---------------------------------------------------------------------------
// TestNormalizeToken - Slug canonicalization
// ---------------------------------------------------------------------------

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple word", input: "Childhood", want: "childhood"},
		{name: "spaces become hyphens", input: "Path of Neptune", want: "path-of-neptune"},
		{name: "surrounding whitespace", input: "  Adolescence \n", want: "adolescence"},
		{name: "byte order mark", input: "\ufeffChildhood", want: "childhood"},
		{name: "punctuation run collapses", input: "Pro -- Status!!", want: "pro-status"},
		{name: "leading and trailing punctuation", input: "«Hello»", want: "hello"},
		{name: "digits kept", input: "Memorable 2025 Competitive Season", want: "memorable-2025-competitive-season"},
		{name: "cyrillic lowercased", input: "Шлях Нептуна", want: "шлях-нептуна"},
		{name: "typographic apostrophe stripped", input: "Пам’ятний сезон", want: "памятний-сезон"},
		{name: "ascii apostrophe stripped", input: "Don't stop", want: "dont-stop"},
		{name: "decomposed accent composed", input: "Cafe\u0301", want: "caf\u00e9"},
		{name: "underscores are separators", input: "path_of_neptune", want: "path-of-neptune"},
		{name: "only punctuation", input: "---", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeToken(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTrimText - Edge trimming
// ---------------------------------------------------------------------------

func TestTrimText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces", input: "  Childhood \n", want: "Childhood"},
		{name: "leading byte order mark", input: "\ufeffChildhood", want: "Childhood"},
		{name: "mark and spaces", input: " \ufeff Childhood\ufeff", want: "Childhood"},
		{name: "inner mark kept", input: "Child\ufeffhood", want: "Child\ufeffhood"},
		{name: "no-break space", input: "\u00a0Childhood", want: "Childhood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TrimText(tt.input); got != tt.want {
				t.Errorf("TrimText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeToken_Idempotent - Re-normalizing is a no-op
// ---------------------------------------------------------------------------

func TestNormalizeToken_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Childhood",
		"Earning WNBF Pro Status and the First International Tournament",
		"Пам’ятний змагальний сезон 2025",
		"Здобуття статусу WNBF Pro та перший міжнародний турнір",
		"  -- weird__ input ;; with 'quotes' --  ",
		"Café au lait",
		"ᄀ'ᅡ",
		"« ЯКЩО ТИ МОЖЕШ УЯВИТИ ЦЕ »",
		"",
	}

	for _, in := range inputs {
		once := NormalizeToken(in)
		twice := NormalizeToken(once)
		if once != twice {
			t.Errorf("NormalizeToken not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeHeading - Phrase form used for alias keys
// ---------------------------------------------------------------------------

func TestNormalizeHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "Beginning in the Gym", want: "beginning in the gym"},
		{input: "Пам’ятний змагальний сезон 2025", want: "памятний змагальний сезон 2025"},
		{input: "Дитинство", want: "дитинство"},
		{input: "  Path-of-Neptune ", want: "path of neptune"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeHeading(tt.input); got != tt.want {
			t.Errorf("NormalizeHeading(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
