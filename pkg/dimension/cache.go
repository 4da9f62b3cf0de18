package dimension

import (
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
)

// Cache memoizes per-shape measurements keyed by the set revision at
// which they were computed. Any set mutation bumps the revision and
// lazily invalidates every entry. Advisory only: a cache miss simply
// recomputes.
type Cache struct {
	entries map[draft.ID]cacheEntry
}

type cacheEntry struct {
	revision uint64
	dims     []Dimension
}

// NewCache returns an empty dimension cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[draft.ID]cacheEntry)}
}

// Measure returns the dimensions for the shape with id, recomputing
// when the set has changed since the cached value.
func (c *Cache) Measure(set *draft.Set, id draft.ID) ([]Dimension, error) {
	rev := set.Revision()
	if e, ok := c.entries[id]; ok && e.revision == rev {
		return e.dims, nil
	}
	shape, err := set.Get(id)
	if err != nil {
		delete(c.entries, id)
		return nil, err
	}
	dims := Measure(shape)
	c.entries[id] = cacheEntry{revision: rev, dims: dims}
	return dims, nil
}

// Drop forgets any cached entry for id.
func (c *Cache) Drop(id draft.ID) {
	delete(c.entries, id)
}
