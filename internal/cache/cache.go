package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	recordListKey    = "records:list"
	recordListGenKey = "gen:records:list"
)

var errStaleGeneration = errors.New("records listing generation moved")

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// Ping reports whether Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) GetRecordList(ctx context.Context) ([]byte, error) {
	return c.get(ctx, getCacheKey(false))
}

func (c *Cache) GetEtagRecordList(ctx context.Context) (string, error) {
	val, err := c.get(ctx, getCacheKey(true))
	return string(val), err
}

func (c *Cache) RecordListGeneration(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, recordListGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get failed: %w", err)
	}
	return gen, nil
}

// SetRecordList writes the listing and its ETag in one transaction watched
// on the generation key. A stale write is dropped. It never fails the
// caller: a missed cache write only costs a recompute.
func (c *Cache) SetRecordList(ctx context.Context, gen int64, data []byte, etag string, ttl time.Duration) {
	logger.Infof(ctx, "creating entry in cache for the records listing, valid for %s...", ttl)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, recordListGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, getCacheKey(false), data, ttl)
			pipe.Set(ctx, getCacheKey(true), etag, ttl)
			return nil
		})
		return err
	}, recordListGenKey)

	switch {
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		logger.Infof(ctx, "records listing changed while rendering, not caching it")
	case err != nil:
		logger.Warnf(ctx, "⚠️  redis set of the records listing failed: %v", err)
	}
}

// DeleteRecordList drops both the listing and its ETag and moves the
// generation forward, so a render that started earlier cannot write back.
func (c *Cache) DeleteRecordList(ctx context.Context) error {
	logger.Info(ctx, "deleting cache entry for the records listing...")

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, recordListGenKey)
		pipe.Del(ctx, getCacheKey(false), getCacheKey(true))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func getCacheKey(etag bool) string {
	if etag {
		return "etag:" + recordListKey
	}
	return recordListKey
}

func (c *Cache) Close() error {
	return c.client.Close()
}
