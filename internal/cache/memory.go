package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// Memory is an in-process backend. Entries live until their TTL elapses;
// expiry is checked lazily on Get, nothing evicts in the background.
type Memory struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemory creates a Memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (c *Memory) Get(key string, result interface{}) error {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(entry.expiresAt) {
		return ErrMiss
	}
	return json.Unmarshal(entry.payload, result)
}

func (c *Memory) Put(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *Memory) Close() error { return nil }
