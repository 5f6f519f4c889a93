package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// apostrophes are dropped rather than turned into separators so that
// "Пам’ятний" and "Памятний" normalize to the same key.
var apostrophes = strings.NewReplacer("’", "", "'", "")

// TrimText removes surrounding white space and byte order marks.
func TrimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// NormalizeToken canonicalizes a natural-language string into a comparable
// slug: trimmed, lowercased, NFC-composed, apostrophes removed, and every run
// of characters that are neither letters nor digits collapsed to one hyphen.
// Leading and trailing hyphens are removed. The result is a fixed point:
// NormalizeToken(NormalizeToken(s)) == NormalizeToken(s).
func NormalizeToken(s string) string {
	s = strings.ToLower(TrimText(s))
	s = norm.NFC.String(s)
	// Compose again: removing an apostrophe can leave composable neighbours.
	s = norm.NFC.String(apostrophes.Replace(s))

	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// NormalizeHeading is NormalizeToken with hyphens turned back into single
// spaces. Alias tables are authored as phrases and keyed by this form.
func NormalizeHeading(s string) string {
	return strings.ReplaceAll(NormalizeToken(s), "-", " ")
}
