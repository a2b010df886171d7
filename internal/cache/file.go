package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
)

// File is a backend persisted as a single JSON file. The whole state loads
// into memory at startup and is rewritten atomically on every Put, so a
// crash never leaves a half-written file behind.
type File struct {
	path    string
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]fileEntry
	now     func() time.Time
}

type fileEntry struct {
	Payload   json.RawMessage `json:"payload"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// fileState is the on-disk layout. Unknown extra fields are ignored on load,
// which keeps the format forward-compatible.
type fileState struct {
	Entries map[string]fileEntry `json:"entries"`
}

// NewFile creates a File cache persisted at path. A missing file is an empty
// cache; an unreadable one is logged and treated the same.
func NewFile(path string, ttl time.Duration) *File {
	c := &File{
		path:    path,
		ttl:     ttl,
		entries: map[string]fileEntry{},
		now:     time.Now,
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("failed to read cache file, starting empty")
		}
		return c
	}
	var state fileState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.WithError(err).WithField("path", path).Warn("corrupt cache file, starting empty")
		return c
	}
	if state.Entries != nil {
		c.entries = state.Entries
	}
	return c
}

func (c *File) Get(key string, result interface{}) error {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(entry.ExpiresAt) {
		return ErrMiss
	}
	return json.Unmarshal(entry.Payload, result)
}

func (c *File) Put(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = fileEntry{
		Payload:   payload,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return c.persist()
}

// Close flushes the current state, dropping entries that expired since the
// last write.
func (c *File) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persist()
}

// persist rewrites the whole file under the lock: expired entries are pruned,
// the state is written to a temp file and renamed over the target.
func (c *File) persist() error {
	now := c.now()
	for key, entry := range c.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(c.entries, key)
		}
	}
	raw, err := json.Marshal(fileState{Entries: c.entries})
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".cache-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
