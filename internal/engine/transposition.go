package engine

// Cache memoizes position evaluations for one move decision. It is created
// fresh per ChooseMove call and discarded with it, so it never grows across
// moves and needs no eviction or locking. A stored entry may substitute for
// recomputation only when its depth is at least the depth being requested;
// shallower entries are ignored.
type Cache struct {
	entries map[string]cacheEntry

	hits   uint64
	probes uint64
}

type cacheEntry struct {
	score int
	depth int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Lookup returns the stored score for key if one exists with depth >= minDepth.
func (c *Cache) Lookup(key string, minDepth int) (int, bool) {
	c.probes++
	e, ok := c.entries[key]
	if !ok || e.depth < minDepth {
		return 0, false
	}
	c.hits++
	return e.score, true
}

// Store records a score for key. A deeper entry already present wins.
func (c *Cache) Store(key string, depth, score int) {
	if e, ok := c.entries[key]; ok && e.depth > depth {
		return
	}
	c.entries[key] = cacheEntry{score: score, depth: depth}
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// HitRate returns the cache hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	if c.probes == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.probes) * 100
}
