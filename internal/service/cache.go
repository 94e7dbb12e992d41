package service

import (
	"sync"
	"time"

	"github.com/adamwrona/rezydent/internal/contract"
)

// DefaultStatsTTL is how long a computed statistics snapshot stays valid.
// Recomputation walks every realization of the specialization, so repeated
// status queries within a session reuse the snapshot.
const DefaultStatsTTL = 30 * time.Second

// StatsCache holds statistics snapshots per specialization with a TTL. Every
// mutating service invalidates the owning specialization's entry, so a stale
// snapshot can only be served between two reads with no writes in between.
type StatsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]statsEntry
}

type statsEntry struct {
	resp     *contract.StatisticsResponse
	storedAt time.Time
}

// NewStatsCache creates a cache with the given TTL. A non-positive TTL
// disables caching entirely.
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{ttl: ttl, entries: make(map[string]statsEntry)}
}

func (c *StatsCache) get(specializationID string) (*contract.StatisticsResponse, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[specializationID]
	if !ok || time.Since(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.resp, true
}

func (c *StatsCache) put(specializationID string, resp *contract.StatisticsResponse) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[specializationID] = statsEntry{resp: resp, storedAt: time.Now()}
}

// Invalidate drops the snapshot for one specialization.
func (c *StatsCache) Invalidate(specializationID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, specializationID)
}
