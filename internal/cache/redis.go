package cache

import (
	"time"

	rediscache "github.com/go-redis/cache"
	"github.com/go-redis/redis"
	"gopkg.in/vmihailenco/msgpack.v2"
)

// Redis backend, for deployments that already run one.
type Redis struct {
	redis *redis.Client
	codec *rediscache.Codec
	ttl   time.Duration
}

// NewRedis creates a Redis cache on top of the given client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	codec := &rediscache.Codec{
		Redis: client,
		Marshal: func(v interface{}) ([]byte, error) {
			return msgpack.Marshal(v)
		},
		Unmarshal: func(b []byte, v interface{}) error {
			return msgpack.Unmarshal(b, v)
		},
	}
	return &Redis{
		redis: client,
		codec: codec,
		ttl:   ttl,
	}
}

// Close the underlying client.
func (c *Redis) Close() error {
	return c.redis.Close()
}

func (c *Redis) Get(key string, result interface{}) error {
	if err := c.codec.Get(key, result); err != nil {
		if err == rediscache.ErrCacheMiss {
			return ErrMiss
		}
		return err
	}
	return nil
}

func (c *Redis) Put(key string, value interface{}) error {
	return c.codec.Set(&rediscache.Item{
		Key:        key,
		Object:     value,
		Expiration: c.ttl,
	})
}
