// Package cache stores rendered HTTP responses in Redis. Without a
// configured Redis address every operation is a no-op miss.
package cache

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
)

const (
	keyPrefix  = "api-hub:response:"
	verPrefix  = "api-hub:ver:"
	pingWait   = 2 * time.Second
	defaultTTL = 30 * time.Second
)

var ErrMalformedEntry = errors.New("malformed cache entry")

// Entry is a cached response.
type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

// Cache is the response cache.
//
// Entries of a collection are addressed through its version: Bump makes
// every entry stored under an older version unreachable.
type Cache interface {
	// Get reports a miss as ok == false with a nil error.
	Get(ctx context.Context, key string) (entry Entry, ok bool, err error)
	Set(ctx context.Context, key string, entry Entry) error
	Version(ctx context.Context, collection string) (int64, error)
	Bump(ctx context.Context, collection string) error
	Enabled() bool
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCache connects to Redis as configured by cfg. When no address is set,
// or the server does not answer a ping, the returned cache is disabled and
// the failure is only logged.
func NewCache(ctx context.Context, cfg config.Cache, logger *logger.Logger) Cache {
	if cfg.RedisAddress == "" {
		return NewNopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingWait)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn().Err(err).Str("address", cfg.RedisAddress).Msg("redis is unreachable, response cache disabled")
		_ = client.Close()
		return NewNopCache()
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	logger.Info().Str("address", cfg.RedisAddress).Dur("ttl", ttl).Msg("response cache enabled")
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("error reading cache entry: %w", err)
	}

	entry, err := decode(payload)
	if err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, entry Entry) error {
	payload, err := encode(entry)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing cache entry: %w", err)
	}
	return nil
}

func (c *redisCache) Version(ctx context.Context, collection string) (int64, error) {
	version, err := c.client.Get(ctx, verPrefix+collection).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading %s cache version: %w", collection, err)
	}
	return version, nil
}

func (c *redisCache) Bump(ctx context.Context, collection string) error {
	if err := c.client.Incr(ctx, verPrefix+collection).Err(); err != nil {
		return fmt.Errorf("error bumping %s cache version: %w", collection, err)
	}
	return nil
}

func (c *redisCache) Enabled() bool {
	return true
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

type nopCache struct{}

func NewNopCache() Cache {
	return nopCache{}
}

func (nopCache) Get(context.Context, string) (Entry, bool, error) { return Entry{}, false, nil }
func (nopCache) Set(context.Context, string, Entry) error         { return nil }
func (nopCache) Version(context.Context, string) (int64, error)   { return 0, nil }
func (nopCache) Bump(context.Context, string) error               { return nil }
func (nopCache) Enabled() bool                                    { return false }
func (nopCache) Close() error                                     { return nil }

// encode packs an entry as [status u32][header length u32][header JSON][body].
func encode(entry Entry) ([]byte, error) {
	header, err := json.Marshal(entry.Header)
	if err != nil {
		return nil, fmt.Errorf("error encoding cache entry: %w", err)
	}

	out := make([]byte, 8+len(header)+len(entry.Body))
	binary.BigEndian.PutUint32(out[0:4], uint32(entry.Status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(header)))
	copy(out[8:], header)
	copy(out[8+len(header):], entry.Body)
	return out, nil
}

func decode(payload []byte) (Entry, error) {
	if len(payload) < 8 {
		return Entry{}, ErrMalformedEntry
	}

	status := int(binary.BigEndian.Uint32(payload[0:4]))
	headerLen := int(binary.BigEndian.Uint32(payload[4:8]))
	if headerLen < 0 || 8+headerLen > len(payload) {
		return Entry{}, ErrMalformedEntry
	}

	header := make(http.Header)
	if headerLen > 0 {
		if err := json.Unmarshal(payload[8:8+headerLen], &header); err != nil {
			return Entry{}, fmt.Errorf("%w: %w", ErrMalformedEntry, err)
		}
	}

	return Entry{Status: status, Header: header, Body: payload[8+headerLen:]}, nil
}
