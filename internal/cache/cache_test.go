package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis"
	"github.com/matryer/is"
)

type payload struct {
	Username string `json:"username"`
	Total    int    `json:"total"`
}

func TestNoop(t *testing.T) {
	is := is.New(t)
	var c Noop
	is.NoErr(c.Put("key", "value"))
	var out string
	is.True(errors.Is(c.Get("key", &out), ErrMiss))
	is.NoErr(c.Close())
}

func TestMemoryRoundTrip(t *testing.T) {
	is := is.New(t)
	c := NewMemory(time.Minute)
	is.NoErr(c.Put("user", payload{Username: "caarlos0", Total: 42}))
	var out payload
	is.NoErr(c.Get("user", &out))
	is.Equal("caarlos0", out.Username)
	is.Equal(42, out.Total)
}

func TestMemoryMiss(t *testing.T) {
	is := is.New(t)
	c := NewMemory(time.Minute)
	var out payload
	is.True(errors.Is(c.Get("nope", &out), ErrMiss))
}

func TestMemoryExpiry(t *testing.T) {
	is := is.New(t)
	c := NewMemory(time.Second)
	now := time.Now()
	c.now = func() time.Time { return now }
	is.NoErr(c.Put("user", payload{Username: "caarlos0"}))
	var out payload
	is.NoErr(c.Get("user", &out))

	c.now = func() time.Time { return now.Add(2 * time.Second) }
	is.True(errors.Is(c.Get("user", &out), ErrMiss))
}

func TestMemoryReplace(t *testing.T) {
	is := is.New(t)
	c := NewMemory(time.Minute)
	is.NoErr(c.Put("user", payload{Total: 1}))
	is.NoErr(c.Put("user", payload{Total: 2}))
	var out payload
	is.NoErr(c.Get("user", &out))
	is.Equal(2, out.Total)
}

func TestFileRoundTrip(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cache.json")
	c := NewFile(path, time.Minute)
	is.NoErr(c.Put("user", payload{Username: "caarlos0", Total: 7}))
	var out payload
	is.NoErr(c.Get("user", &out))
	is.Equal(7, out.Total)
	is.NoErr(c.Close())
}

func TestFileReload(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cache.json")
	c := NewFile(path, time.Minute)
	is.NoErr(c.Put("user", payload{Username: "caarlos0", Total: 7}))
	is.NoErr(c.Close())

	reloaded := NewFile(path, time.Minute)
	var out payload
	is.NoErr(reloaded.Get("user", &out))
	is.Equal("caarlos0", out.Username)
	is.Equal(7, out.Total)
}

func TestFileExpiry(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cache.json")
	c := NewFile(path, time.Second)
	now := time.Now()
	c.now = func() time.Time { return now }
	is.NoErr(c.Put("user", payload{Total: 1}))

	c.now = func() time.Time { return now.Add(2 * time.Second) }
	var out payload
	is.True(errors.Is(c.Get("user", &out), ErrMiss))
}

func TestFileMissingIsEmpty(t *testing.T) {
	is := is.New(t)
	c := NewFile(filepath.Join(t.TempDir(), "does-not-exist.json"), time.Minute)
	var out payload
	is.True(errors.Is(c.Get("user", &out), ErrMiss))
}

func TestFileCorruptIsEmpty(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cache.json")
	is.NoErr(os.WriteFile(path, []byte("{not json"), 0o644))
	c := NewFile(path, time.Minute)
	var out payload
	is.True(errors.Is(c.Get("user", &out), ErrMiss))
	// writes still work after starting empty
	is.NoErr(c.Put("user", payload{Total: 3}))
	is.NoErr(c.Get("user", &out))
	is.Equal(3, out.Total)
}

func TestFileUnknownFieldsIgnored(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cache.json")
	state := `{"entries":{},"some_future_field":true}`
	is.NoErr(os.WriteFile(path, []byte(state), 0o644))
	c := NewFile(path, time.Minute)
	is.NoErr(c.Put("user", payload{Total: 1}))
	var out payload
	is.NoErr(c.Get("user", &out))
	is.Equal(1, out.Total)
}

func TestRedisRoundTrip(t *testing.T) {
	is := is.New(t)
	mr, err := miniredis.Run()
	is.NoErr(err)
	defer mr.Close()

	c := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer c.Close()
	is.NoErr(c.Put("user", payload{Username: "caarlos0", Total: 9}))
	var out payload
	is.NoErr(c.Get("user", &out))
	is.Equal(9, out.Total)
}

func TestRedisMiss(t *testing.T) {
	is := is.New(t)
	mr, err := miniredis.Run()
	is.NoErr(err)
	defer mr.Close()

	c := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	defer c.Close()
	var out payload
	is.True(errors.Is(c.Get("nope", &out), ErrMiss))
}
