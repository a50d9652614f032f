// Package rankedcache caches rankcore.RankedMap instances across
// search calls, keyed by an index generation token, so that building
// the ranked-attribute lookup for a schema's sortable fields isn't
// repeated on every request against the same index snapshot.
package rankedcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ranklab/rankcore/pkg/rankcore"
)

// DefaultSize is the default number of index generations to keep
// RankedMaps for. A generation is evicted once a newer one pushes it
// out, which is fine: an evicted generation's RankedMap is simply
// rebuilt from the index on next use.
const DefaultSize = 8

// Cache holds one RankedMap per index generation.
type Cache struct {
	entries *lru.Cache[string, *rankcore.RankedMap]
}

// New creates a Cache holding at most size generations. size <= 0
// falls back to DefaultSize.
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	entries, _ := lru.New[string, *rankcore.RankedMap](size)
	return &Cache{entries: entries}
}

// Get returns the cached RankedMap for generation, if present.
func (c *Cache) Get(generation string) (*rankcore.RankedMap, bool) {
	return c.entries.Get(generation)
}

// GetOrBuild returns the cached RankedMap for generation, building and
// storing it via build if absent.
func (c *Cache) GetOrBuild(generation string, build func() (*rankcore.RankedMap, error)) (*rankcore.RankedMap, error) {
	if m, ok := c.entries.Get(generation); ok {
		return m, nil
	}
	m, err := build()
	if err != nil {
		return nil, err
	}
	c.entries.Add(generation, m)
	return m, nil
}

// Invalidate drops generation's cached RankedMap, e.g. after a schema
// change that alters which attributes are rankable.
func (c *Cache) Invalidate(generation string) {
	c.entries.Remove(generation)
}
