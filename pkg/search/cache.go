package search

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// entry is what the cache stores per query. Absent substrings are cached
// too, as an entry with nil ids.
type entry struct {
	ids []int
}

// Cache memoizes lookups per query string. The backing index never changes,
// so entries never go stale; the oldest accessed entry is evicted once the
// cache is full.
type Cache struct {
	trie        *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	hits        int64
	misses      int64
	maxEntries  int
	mu          sync.Mutex
}

// NewCache returns a cache holding at most maxEntries queries.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		trie:       patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
	}
}

// Get returns the cached indexes for query.
func (c *Cache) Get(query string) ([]int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.trie.Get(patricia.Prefix(query))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.hits++
	c.markAccessed(query)
	return item.(entry).ids, true
}

// Put stores ids for query, evicting the least recently used entry if needed.
func (c *Cache) Put(query string, ids []int) {
	if c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.accessTime[query]; !exists && len(c.accessTime) >= c.maxEntries {
		c.evictLRU()
	}
	c.trie.Set(patricia.Prefix(query), entry{ids: ids})
	c.markAccessed(query)
}

// Len returns the number of cached queries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.accessTime)
}

// Stats reports cache usage counters.
func (c *Cache) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries": len(c.accessTime),
		"cacheMax":     c.maxEntries,
		"cacheHits":    int(c.hits),
		"cacheMisses":  int(c.misses),
	}
}

func (c *Cache) markAccessed(query string) {
	c.accessCount++
	c.accessTime[query] = c.accessCount
}

func (c *Cache) evictLRU() {
	var oldestQuery string
	var oldestTime int64 = 9223372036854775807
	found := false

	for query, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestQuery = query
			found = true
		}
	}

	if found {
		c.trie.Delete(patricia.Prefix(oldestQuery))
		delete(c.accessTime, oldestQuery)
		log.Debugf("Evicted query '%s' from cache", oldestQuery)
	}
}
