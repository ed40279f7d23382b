package repository

import (
	"context"
	"sync"
	"time"
)

const maxCacheCleanupInterval = 5 * time.Minute

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is a process-local CacheRepository. A zero ttl keeps entries
// forever; otherwise a background loop drops expired entries until Stop.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		data:        make(map[string]memoryEntry),
		ttl:         ttl,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	if ttl > 0 {
		go m.cleanupLoop(min(ttl, maxCacheCleanupInterval))
	}
	return m
}

func (m *MemoryCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *MemoryCache) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(m.data, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stopCleanup) })
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}
