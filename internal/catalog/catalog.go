package catalog

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is an immutable tool collection. All query methods are pure and
// safe for concurrent use.
type Catalog struct {
	tools []Tool
	lang  language.Tag
}

// New validates tools and returns a Catalog holding a private copy of them.
func New(tools []Tool) (*Catalog, error) {
	seen := make(map[int]bool, len(tools))
	for _, t := range tools {
		id := strconv.Itoa(t.ID)
		if seen[t.ID] {
			return nil, NewValidationError("id", id, "duplicate tool id")
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Name) == "" {
			return nil, NewValidationError("name", id, "name must not be empty")
		}
		if strings.TrimSpace(t.Category) == "" {
			return nil, NewValidationError("category", id, "category must not be empty")
		}
		if t.Popularity < 0 || t.Popularity > 100 {
			return nil, NewValidationError("popularity", strconv.Itoa(t.Popularity),
				"popularity must be within [0,100] (tool "+id+")")
		}
	}
	return &Catalog{tools: slices.Clone(tools), lang: language.English}, nil
}

// MustNew is like New but panics on invalid input. Use only for constant data.
func MustNew(tools []Tool) *Catalog {
	c, err := New(tools)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of tools.
func (c *Catalog) Len() int { return len(c.tools) }

// Tools returns every tool in natural order.
func (c *Catalog) Tools() []Tool { return slices.Clone(c.tools) }

// Lookup returns the tool with the given ID.
func (c *Catalog) Lookup(id int) (Tool, bool) {
	for _, t := range c.tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// CategoryCounts returns the number of tools per category, largest first.
// Categories with equal counts keep the order in which they first appear.
func (c *Catalog) CategoryCounts() []CategoryCount {
	counts := make([]CategoryCount, 0)
	index := make(map[string]int)
	for _, t := range c.tools {
		i, ok := index[t.Category]
		if !ok {
			i = len(counts)
			index[t.Category] = i
			counts = append(counts, CategoryCount{Category: t.Category})
		}
		counts[i].Count++
	}
	slices.SortStableFunc(counts, func(a, b CategoryCount) int {
		return b.Count - a.Count
	})
	return counts
}

// FilteredSorted returns the tools matching q, ordered by q.Sort.
// Name order uses locale-aware collation, popularity order is highest first,
// and any other key keeps natural order. Ties keep natural order.
func (c *Catalog) FilteredSorted(q Query) []Tool {
	out := make([]Tool, 0, len(c.tools))
	for _, t := range c.tools {
		if q.Matches(t) {
			out = append(out, t)
		}
	}

	switch q.Sort {
	case SortByName:
		// Collators carry per-call buffers and must not be shared.
		col := collate.New(c.lang)
		slices.SortStableFunc(out, func(a, b Tool) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByPopularity:
		slices.SortStableFunc(out, func(a, b Tool) int {
			return b.Popularity - a.Popularity
		})
	}
	return out
}

// Featured returns the featured tools in natural order.
func (c *Catalog) Featured() []Tool {
	out := make([]Tool, 0)
	for _, t := range c.tools {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}
