package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/techconnect/techconnect-api/internal/api/metrics"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

const nameTTL = 10 * time.Minute

// NameCache is a read-through cache in front of a ports.UserDirectory.
// Key format: name:<user_id>. Display names change rarely, so a short TTL
// bounds staleness without an invalidation protocol. Cache faults degrade
// to the underlying directory; they never fail a request.
type NameCache struct {
	client *redis.Client
	next   ports.UserDirectory
	log    zerolog.Logger
}

// NewNameCache wraps next with a Redis-backed display-name cache.
func NewNameCache(client *redis.Client, next ports.UserDirectory, log zerolog.Logger) *NameCache {
	return &NameCache{client: client, next: next, log: log}
}

// DisplayNames serves as many names as possible from cache and fetches the
// rest from the underlying directory, caching what it learns.
func (c *NameCache) DisplayNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	missing := ids

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}

	cached, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("name cache read failed, falling back to directory")
	} else {
		missing = missing[:0:0]
		for i, v := range cached {
			name, ok := v.(string)
			if !ok {
				metrics.NameCacheLookupsTotal.WithLabelValues("miss").Inc()
				missing = append(missing, ids[i])
				continue
			}
			metrics.NameCacheLookupsTotal.WithLabelValues("hit").Inc()
			names[ids[i]] = name
		}
	}

	if len(missing) == 0 {
		return names, nil
	}

	fetched, err := c.next.DisplayNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range fetched {
		names[id] = name
		if err := c.client.Set(ctx, c.key(id), name, nameTTL).Err(); err != nil {
			c.log.Warn().Err(err).Str("user_id", id).Msg("failed to cache display name")
		}
	}
	return names, nil
}

func (c *NameCache) key(id string) string {
	return "name:" + id
}
