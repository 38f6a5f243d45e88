package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/raushankrgupta/stylefinder/models"
)

const defaultMaxEntries = 500

type memoryEntry struct {
	key       string
	outfit    *models.EnrichedOutfit
	expiresAt time.Time
}

// MemoryCache is the single-process default: TTL expiry plus LRU eviction
// once the entry cap is hit. Safe for concurrent use.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List
	entries    map[string]*list.Element

	// now is swappable in tests.
	now func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*models.EnrichedOutfit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry := el.Value.(*memoryEntry)
	if c.now().After(entry.expiresAt) {
		c.removeLocked(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	return entry.outfit, true
}

func (c *MemoryCache) Set(_ context.Context, key string, outfit *models.EnrichedOutfit) {
	if outfit == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.outfit = outfit
		entry.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&memoryEntry{
		key:       key,
		outfit:    outfit,
		expiresAt: c.now().Add(c.ttl),
	})
	c.entries[key] = el

	for c.order.Len() > c.maxEntries {
		c.removeLocked(c.order.Back())
	}
}

func (c *MemoryCache) Evict(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
}

func (c *MemoryCache) removeLocked(el *list.Element) {
	if el == nil {
		return
	}
	entry := el.Value.(*memoryEntry)
	delete(c.entries, entry.key)
	c.order.Remove(el)
}
