package pipeline

// AliasTable maps a normalized heading phrase, in any supported locale, to a
// canonical series key. Build it with NewAliasTable and treat it as read-only.
type AliasTable map[string]string

// NewAliasTable builds an AliasTable from authored phrases. Keys are passed
// through NormalizeHeading and values through NormalizeToken, so authors may
// write headings exactly as they appear in content.
func NewAliasTable(raw map[string]string) AliasTable {
	table := make(AliasTable, len(raw))
	for phrase, series := range raw {
		key := NormalizeHeading(phrase)
		if key == "" {
			continue
		}
		table[key] = NormalizeToken(series)
	}
	return table
}

// Lookup returns the series key aliased to title, if any.
func (t AliasTable) Lookup(title string) (string, bool) {
	key, ok := t[NormalizeHeading(title)]
	return key, ok
}

// Resolve returns the images illustrating the section titled title.
// The alias table is consulted first; failing that, the normalized title is
// tried as a series key directly. The result has zero, one, or two paths and
// is never nil. Resolve never fails: an empty result means no illustration.
func (t AliasTable) Resolve(title string, series SeriesMap) []string {
	if key, ok := t.Lookup(title); ok {
		if images := series.Get(key); images != nil {
			return images
		}
	}

	if images := series.Get(NormalizeToken(title)); images != nil {
		return images
	}

	return []string{}
}
