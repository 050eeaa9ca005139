package matcher

import (
	"sort"
	"sync/atomic"

	"campus-compliments/internal/models"
)

// Catalog is an immutable, pre-normalized snapshot of the campus buildings.
// Refreshing means building a new Catalog and swapping it into a Holder.
type Catalog struct {
	entries []Entry
}

// NewCatalog copies buildings into a new catalog, preserving their order.
func NewCatalog(buildings []models.Building) *Catalog {
	entries := make([]Entry, len(buildings))
	for i, b := range buildings {
		entries[i] = NewEntry(b)
	}
	return &Catalog{entries: entries}
}

// Len returns the number of buildings.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Buildings returns a copy of the catalog in its original order.
func (c *Catalog) Buildings() []models.Building {
	if c == nil {
		return nil
	}
	out := make([]models.Building, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Building
	}
	return out
}

// Match finds the best building for address with the default scoring table.
func (c *Catalog) Match(address string) (models.Building, bool) {
	if c == nil {
		return models.Building{}, false
	}
	return Default.Best(address, c.entries)
}

// Rank scores every building for address and returns the non-zero candidates,
// highest first. Equal scores keep catalog order.
func (c *Catalog) Rank(address string) []Candidate {
	if c == nil {
		return nil
	}
	q := NewQuery(address)
	if q.Text == "" {
		return nil
	}

	var out []Candidate
	for _, e := range c.entries {
		if cand := Default.Explain(e, q); cand.Score > 0 {
			out = append(out, cand)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Holder publishes the current catalog to concurrent readers.
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder creates a holder that initially serves c.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.Swap(c)
	return h
}

// Load returns the current catalog, never nil.
func (h *Holder) Load() *Catalog {
	if c := h.current.Load(); c != nil {
		return c
	}
	return &Catalog{}
}

// Swap replaces the current catalog and returns the previous one. Readers that
// already loaded the old catalog keep using it until they finish.
func (h *Holder) Swap(c *Catalog) *Catalog {
	if c == nil {
		c = &Catalog{}
	}
	return h.current.Swap(c)
}
