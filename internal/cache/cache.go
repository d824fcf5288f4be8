package cache

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// entry is the cached outcome of a single-shot answer. Entries never leave
// the cache; Get hands out copies of the fields.
type entry struct {
	answer       string
	question     string
	contextCount int
	createdAt    time.Time
	hitCount     int
}

// EntryStats describes one live cache entry for diagnostics.
type EntryStats struct {
	Question   string  `json:"question"`
	HitCount   int     `json:"hit_count"`
	AgeSeconds float64 `json:"age_seconds"`
}

// Stats is a point-in-time snapshot of the cache.
type Stats struct {
	Size       int          `json:"size"`
	MaxSize    int          `json:"max_size"`
	TTLSeconds float64      `json:"ttl_seconds"`
	Entries    []EntryStats `json:"entries"`
}

// Cache is a bounded, expiring response cache keyed by normalized question.
// Expiry is lazy: entries are only inspected during Get and Set, there is no
// background sweeper. When full, Set evicts the entry with the lowest hit
// count, breaking ties by oldest creation time. All operations are safe for
// concurrent use.
type Cache struct {
	ttl     time.Duration
	maxSize int

	mu      sync.Mutex
	entries map[string]*entry

	now func() time.Time
}

// New creates a cache holding at most maxSize entries, each living for ttl.
func New(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// key reduces a question to its cache identity: lowercased, surrounding
// whitespace trimmed, then hashed to a fixed width. md5 is an identity
// reduction here, not a security boundary.
func key(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func (c *Cache) expired(e *entry, now time.Time) bool {
	return now.Sub(e.createdAt) > c.ttl
}

// sweep removes all expired entries. Callers must hold mu.
func (c *Cache) sweep(now time.Time) {
	for k, e := range c.entries {
		if c.expired(e, now) {
			delete(c.entries, k)
		}
	}
}

// evictOne removes the entry with the lowest hit count, preferring the
// oldest creation time among ties. Callers must hold mu.
func (c *Cache) evictOne() {
	var victim string
	var victimEntry *entry
	for k, e := range c.entries {
		if victimEntry == nil ||
			e.hitCount < victimEntry.hitCount ||
			(e.hitCount == victimEntry.hitCount && e.createdAt.Before(victimEntry.createdAt)) {
			victim = k
			victimEntry = e
		}
	}
	if victimEntry != nil {
		delete(c.entries, victim)
	}
}

// Get returns the cached (answer, original question, context count) for the
// question, or ok=false when absent or expired. A hit increments the entry's
// hit count; an expired entry is removed as a side effect.
func (c *Cache) Get(question string) (answer, originalQuestion string, contextCount int, ok bool) {
	k := key(question)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweep(now)

	e, found := c.entries[k]
	if !found {
		return "", "", 0, false
	}
	if c.expired(e, now) {
		delete(c.entries, k)
		return "", "", 0, false
	}

	e.hitCount++
	return e.answer, e.question, e.contextCount, true
}

// Set caches the answer for the question. Expired entries are swept first;
// if the cache is still at capacity one entry is evicted before inserting.
func (c *Cache) Set(question, answer string, contextCount int) {
	k := key(question)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweep(now)
	if len(c.entries) >= c.maxSize {
		c.evictOne()
	}

	c.entries[k] = &entry{
		answer:       answer,
		question:     question,
		contextCount: contextCount,
		createdAt:    now,
		hitCount:     0,
	}
}

// Len returns the current number of entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Snapshot sweeps expired entries and returns cache statistics.
func (c *Cache) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweep(now)

	stats := Stats{
		Size:       len(c.entries),
		MaxSize:    c.maxSize,
		TTLSeconds: c.ttl.Seconds(),
		Entries:    make([]EntryStats, 0, len(c.entries)),
	}
	for _, e := range c.entries {
		stats.Entries = append(stats.Entries, EntryStats{
			Question:   truncate(e.question, 50),
			HitCount:   e.hitCount,
			AgeSeconds: now.Sub(e.createdAt).Seconds(),
		})
	}
	return stats
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
