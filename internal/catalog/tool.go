// Package catalog holds the AI tool collection and the pure queries the
// directory views are built from: category counts, filtered and sorted
// listings, and the featured subset.
package catalog

import "strings"

// Tool is a single catalog entry.
type Tool struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageRef    string `json:"image"` // opaque display asset reference
	Featured    bool   `json:"featured"`
	Popularity  int    `json:"popularity"` // 0..100
	Link        string `json:"link"`
}

// SortKey selects the ordering of a filtered listing.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByPopularity SortKey = "popularity"
)

// DefaultSort is the ordering used when the caller has no preference.
const DefaultSort = SortByPopularity

// ParseSortKey normalizes user input into a SortKey. Unrecognized values are
// kept as-is; queries treat them as natural order.
func ParseSortKey(s string) SortKey {
	return SortKey(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether k is one of the named orderings.
func (k SortKey) Known() bool {
	return k == SortByName || k == SortByPopularity
}

// Next cycles name -> popularity -> name. Unknown keys advance to name.
func (k SortKey) Next() SortKey {
	if k == SortByName {
		return SortByPopularity
	}
	return SortByName
}

// Query is the caller-held search state for FilteredSorted.
type Query struct {
	Search   string  // case-insensitive substring of name or category; empty matches all
	Category string  // exact category; empty means no filter
	Sort     SortKey // unknown keys keep natural order
}

// Matches reports whether t passes the search and category filters of q.
func (q Query) Matches(t Tool) bool {
	if q.Category != "" && t.Category != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}

// CategoryCount is one row of the category aggregation.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
