package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"linktrack/internal/model"
)

// ErrMiss is returned when the key is not cached at all.
var ErrMiss = errors.New("cache miss")

const domainPrefix = "domain:host:"

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func ConnectRedis(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetDomain returns the cached domain for hostname. A nil domain with a nil
// error means the host is cached as having no domain.
func (c *Cache) GetDomain(ctx context.Context, hostname string) (*model.Domain, error) {
	val, err := c.rdb.Get(ctx, domainPrefix+hostname).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	if len(val) == 0 {
		return nil, nil
	}
	var d model.Domain
	if err := json.Unmarshal(val, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SetDomain caches d for hostname; a nil d records a negative entry.
func (c *Cache) SetDomain(ctx context.Context, hostname string, d *model.Domain) error {
	var val []byte
	if d != nil {
		b, err := json.Marshal(d)
		if err != nil {
			return err
		}
		val = b
	}
	return c.rdb.Set(ctx, domainPrefix+hostname, val, c.ttl).Err()
}

func (c *Cache) DeleteDomain(ctx context.Context, hostname string) error {
	return c.rdb.Del(ctx, domainPrefix+hostname).Err()
}
