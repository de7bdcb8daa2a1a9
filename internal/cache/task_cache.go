// Package cache provides an in-process, per-owner cache of task lists.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// DefaultTaskTTL is the time-to-live applied when no TTL is configured.
const DefaultTaskTTL = 600 * time.Second

// entry is a cached task list with its expiry.
type entry struct {
	tasks     []domain.Task
	expiresAt time.Time
}

// TaskCache caches each owner's full task list for a fixed TTL. The
// unit of caching is the owner's entire task set: the only read path
// is "list all tasks for owner", so finer granularity would add
// complexity without benefit.
//
// A TaskCache is an explicitly owned instance, constructed once and
// passed into the task service; there is no package-level state. It is
// safe for concurrent use.
type TaskCache struct {
	ttl      time.Duration
	timeFunc func() time.Time // injectable for tests

	mu      sync.RWMutex
	entries map[uuid.UUID]entry
}

// NewTaskCache creates a TaskCache with the given TTL. A non-positive
// TTL falls back to DefaultTaskTTL.
func NewTaskCache(ttl time.Duration) *TaskCache {
	if ttl <= 0 {
		ttl = DefaultTaskTTL
	}
	return &TaskCache{
		ttl:      ttl,
		timeFunc: time.Now,
		entries:  make(map[uuid.UUID]entry),
	}
}

// Get returns the cached task list for the owner if present and
// unexpired. An entry is never served at or past its TTL; expired
// entries are dropped on access.
func (c *TaskCache) Get(ownerID uuid.UUID) ([]domain.Task, bool) {
	c.mu.RLock()
	e, ok := c.entries[ownerID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if !c.timeFunc().Before(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Put may have
		// refreshed the entry since the read.
		if cur, ok := c.entries[ownerID]; ok && !c.timeFunc().Before(cur.expiresAt) {
			delete(c.entries, ownerID)
		}
		c.mu.Unlock()
		return nil, false
	}

	// Hand out a copy so callers cannot mutate the cached list.
	tasks := make([]domain.Task, len(e.tasks))
	copy(tasks, e.tasks)
	return tasks, true
}

// Put stores or replaces the owner's task list, resetting its TTL
// clock.
func (c *TaskCache) Put(ownerID uuid.UUID, tasks []domain.Task) {
	stored := make([]domain.Task, len(tasks))
	copy(stored, tasks)

	c.mu.Lock()
	c.entries[ownerID] = entry{
		tasks:     stored,
		expiresAt: c.timeFunc().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Invalidate unconditionally removes the owner's entry. It is
// idempotent: invalidating an absent entry is a no-op.
func (c *TaskCache) Invalidate(ownerID uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, ownerID)
	c.mu.Unlock()
}
