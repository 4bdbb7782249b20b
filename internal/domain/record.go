package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ChangeRecord is one content record as returned by a category listing.
// Fields holds the record's field values keyed by field API key; the shape
// of each value depends on the (user-defined) field type.
type ChangeRecord struct {
	ID         string
	CategoryID string
	UpdatedAt  time.Time

	// FirstPublishedAt is nil when the record has never been published.
	FirstPublishedAt *time.Time
	// PublishedAt is set only while the record is currently published.
	PublishedAt *time.Time

	Fields map[string]any
}

// HasBeenPublished reports whether the record was published at least once.
func (r ChangeRecord) HasBeenPublished() bool {
	return r.FirstPublishedAt != nil
}

// Field returns the raw value stored under apiKey.
func (r ChangeRecord) Field(apiKey string) (any, bool) {
	if r.Fields == nil || apiKey == "" {
		return nil, false
	}
	v, ok := r.Fields[apiKey]
	return v, ok
}

// DisplayValue renders a loosely-typed field value as plain text.
// Localized values (a map of locale to value) render the first non-empty
// locale in lexical order so the result is stable across runs.
// Values with no sensible text form render as "".
func DisplayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64, int, int64, bool:
		return fmt.Sprint(val)
	case map[string]any:
		locales := make([]string, 0, len(val))
		for k := range val {
			locales = append(locales, k)
		}
		sort.Strings(locales)
		for _, l := range locales {
			if s := DisplayValue(val[l]); s != "" {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}
