package resolve

import (
	"sync"
	"time"
)

type entry struct {
	player     Player
	insertedAt time.Time
}

// Cache is a mutex-guarded TTL cache of resolved players, shared by every
// Resolve call. Entries older than the TTL are treated as absent and
// refreshed on next access; there is no background sweep. Construct one at
// startup and pass it into NewResolver — the package keeps no singleton.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

// NewCache creates a cache whose entries are trusted for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *Cache) get(key string, now time.Time) (Player, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || now.Sub(e.insertedAt) >= c.ttl {
		return Player{}, false
	}
	return e.player, true
}

func (c *Cache) put(key string, p Player, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{player: p, insertedAt: now}
}

// Stats returns cache statistics for health reporting.
func (c *Cache) Stats() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	active := 0
	for _, e := range c.entries {
		if now.Sub(e.insertedAt) < c.ttl {
			active++
		}
	}
	return map[string]any{
		"ttl_seconds": int(c.ttl.Seconds()),
		"total_keys":  len(c.entries),
		"active_keys": active,
		"stale_keys":  len(c.entries) - active,
	}
}
