package portfolio

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/hsdev/portfolio/content"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// Query selects records from the cache. Zero values mean "any".
type Query struct {
	Kind  content.Kind
	Tag   string
	Limit int
}

// RecordCache is an in-memory cache of all records and tags with TTL.
// Filtering, ordering and limits happen here so views receive final lists.
type RecordCache struct {
	mu      sync.RWMutex
	records []content.Record
	tags    []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewRecordCache creates a RecordCache backed by the given Store.
func NewRecordCache(s *Store, ttl time.Duration) *RecordCache {
	return &RecordCache{store: s, ttl: ttl}
}

func (c *RecordCache) valid() bool {
	return c.records != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *RecordCache) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *RecordCache) load() error {
	if c.valid() {
		return nil
	}
	records, err := c.store.ListRecords()
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	if records == nil {
		records = []content.Record{}
	}
	c.records = records
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached records and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *RecordCache) ensureLoaded() ([]content.Record, []string, error) {
	c.mu.RLock()
	if c.valid() {
		records, tags := c.records, c.tags
		c.mu.RUnlock()
		return records, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.records, c.tags, nil
}

// List returns records matching q in date-descending order.
func (c *RecordCache) List(q Query) ([]content.Record, error) {
	records, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	tag := normalizeTag(q.Tag)
	var out []content.Record
	for _, r := range records {
		if q.Kind != "" && r.Kind != q.Kind {
			continue
		}
		if tag != "" && !hasTag(r, tag) {
			continue
		}
		out = append(out, r)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

// ListTags returns all unique post tags.
func (c *RecordCache) ListTags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// Get returns a single record by slug from the cache.
func (c *RecordCache) Get(slug string) (content.Record, error) {
	records, _, err := c.ensureLoaded()
	if err != nil {
		return content.Record{}, err
	}
	slug = strings.Trim(slug, "/")
	for _, r := range records {
		if r.Slug == slug {
			return r, nil
		}
	}
	return content.Record{}, ErrNotFound
}

func hasTag(r content.Record, normalized string) bool {
	for _, t := range r.Tags {
		if normalizeTag(t) == normalized {
			return true
		}
	}
	return false
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
