// Package catalog serves the explore/home content: a built-in, in-memory
// catalog of destinations, hotels, and attractions. The data is static by
// design; there is no network search, only filtering over the full set.
package catalog

import (
	"strings"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
)

// Entry is one explorable item. Its ID is what a SavedItem reuses when the
// entry is bookmarked.
type Entry struct {
	ID       string
	Category domain.SavedCategory
	Title    string
	Location string
	Image    string
	Rating   float64
	Price    *domain.Money

	Description string
	Featured    bool
}

type Catalog struct {
	entries []Entry
}

// NewBuiltin returns the catalog backed by the built-in data set.
func NewBuiltin() *Catalog {
	return &Catalog{entries: builtinEntries()}
}

// All returns every entry in catalog order.
func (c *Catalog) All() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Get looks an entry up by ID.
func (c *Catalog) Get(id string) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Featured returns the entries highlighted on the home screen.
func (c *Catalog) Featured() []Entry {
	out := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns entries of one category in catalog order.
func (c *Catalog) ByCategory(cat domain.SavedCategory) []Entry {
	out := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Search matches entries whose title or location contains every query token,
// case-insensitively. An empty query returns everything.
func (c *Catalog) Search(query string) []Entry {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return c.All()
	}
	out := make([]Entry, 0)
	for _, e := range c.entries {
		haystack := strings.ToLower(e.Title + " " + e.Location)
		match := true
		for _, tok := range tokens {
			if !strings.Contains(haystack, tok) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}
