package scraper

import (
	"sync"
	"time"

	"hackscout/internal/model"
)

type cacheEntry struct {
	records  []model.ScrapedRecord
	cachedAt time.Time
}

// recordCache holds per-source scrape results for a fixed TTL. A stale entry
// is treated as absent and overwritten whole on the next store.
type recordCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newRecordCache(ttl time.Duration, now func() time.Time) *recordCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &recordCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *recordCache) get(sourceID string) ([]model.ScrapedRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[sourceID]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.cachedAt) >= c.ttl {
		return nil, false
	}
	return e.records, true
}

func (c *recordCache) put(sourceID string, records []model.ScrapedRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sourceID] = cacheEntry{records: records, cachedAt: c.now()}
}

func (c *recordCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
