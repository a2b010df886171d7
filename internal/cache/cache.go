// Package cache provides the cache backends used to avoid re-fetching
// contribution data on every request.
package cache

import "errors"

// ErrMiss happens when a key is absent or its entry already expired.
var ErrMiss = errors.New("cache miss")

// Cache is the capability set every backend implements. The TTL is fixed at
// construction and applied by Put; Get treats expired entries as misses.
type Cache interface {
	Get(key string, result interface{}) error
	Put(key string, value interface{}) error
	Close() error
}

// Noop is the backend used when caching is disabled: every Get misses and
// Put does nothing.
type Noop struct{}

func (Noop) Get(string, interface{}) error { return ErrMiss }
func (Noop) Put(string, interface{}) error { return nil }
func (Noop) Close() error                  { return nil }
