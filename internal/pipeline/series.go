package pipeline

import (
	"path"
	"regexp"
	"slices"
)

// DefaultPublicPrefix is the web path under which image files are served.
const DefaultPublicPrefix = "/images"

// seriesFilePattern matches "<base>-<slot>.<ext>" for slots 1 and 2 and the
// accepted raster extensions.
var seriesFilePattern = regexp.MustCompile(`(?i)^(.+)-([12])\.(jpe?g|png|webp|avif)$`)

// SeriesMap maps a normalized series key to one or two web-relative image
// paths. When both slots exist, slot 1 comes first.
type SeriesMap map[string][]string

// Keys returns the series keys in lexicographic order.
func (m SeriesMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns a copy of the series stored under key, or nil.
func (m SeriesMap) Get(key string) []string {
	images, ok := m[key]
	if !ok {
		return nil
	}
	return slices.Clone(images)
}

// SeriesFile is a filename recognized as part of an image series.
type SeriesFile struct {
	Name string
	Key  string
	Slot int
}

// ParseSeriesFile reports whether name follows the series naming convention
// and, if so, returns its normalized key and slot.
func ParseSeriesFile(name string) (SeriesFile, bool) {
	m := seriesFilePattern.FindStringSubmatch(name)
	if m == nil {
		return SeriesFile{}, false
	}

	key := NormalizeToken(m[1])
	if key == "" {
		return SeriesFile{}, false
	}

	slot := 1
	if m[2] == "2" {
		slot = 2
	}
	return SeriesFile{Name: name, Key: key, Slot: slot}, true
}

// GroupSeries pairs filenames into series. Names that do not follow the
// "<base>-<1|2>.<ext>" convention are skipped. Paths are publicPrefix joined
// with the filename; an empty prefix means DefaultPublicPrefix. When two files
// claim the same key and slot, the first one listed wins.
func GroupSeries(filenames []string, publicPrefix string) SeriesMap {
	if publicPrefix == "" {
		publicPrefix = DefaultPublicPrefix
	}

	type slots struct{ first, second string }
	byKey := make(map[string]*slots)

	for _, name := range filenames {
		f, ok := ParseSeriesFile(name)
		if !ok {
			continue
		}

		s := byKey[f.Key]
		if s == nil {
			s = &slots{}
			byKey[f.Key] = s
		}

		webPath := path.Join(publicPrefix, name)
		switch {
		case f.Slot == 1 && s.first == "":
			s.first = webPath
		case f.Slot == 2 && s.second == "":
			s.second = webPath
		}
	}

	series := make(SeriesMap, len(byKey))
	for key, s := range byKey {
		images := make([]string, 0, 2)
		if s.first != "" {
			images = append(images, s.first)
		}
		if s.second != "" {
			images = append(images, s.second)
		}
		series[key] = images
	}
	return series
}
