package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"groundio/internal/infra"
	"groundio/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// venueListKey is one hash holding a field per category filter, so a single
// DEL invalidates every cached listing.
const venueListKey = "cache:venues:active"

// venueGenKey is bumped on every invalidation. A listing read from the
// database is only written back if the generation has not moved since the
// caller's cache miss, so a slow reader cannot restore a list a writer just
// invalidated.
const venueGenKey = "cache:venues:gen"

var errStaleGeneration = errors.New("venue cache generation moved")

type VenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVenueCache(client *redis.Client, ttl time.Duration) *VenueCache {
	return &VenueCache{client: client, ttl: ttl}
}

// GetList returns the cached listing and the generation it was read under.
func (c *VenueCache) GetList(ctx context.Context, category string) ([]*queries.VenueView, int64, bool, error) {
	var listCmd, genCmd *redis.StringCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		listCmd = pipe.HGet(ctx, venueListKey, category)
		genCmd = pipe.Get(ctx, venueGenKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, infra.WrapRepoErr("failed to read venue cache", err, infra.KindCache)
	}

	gen, err := genCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, infra.WrapRepoErr("corrupt venue cache generation", err, infra.KindCache)
	}

	raw, err := listCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	}
	if err != nil {
		return nil, 0, false, infra.WrapRepoErr("failed to read venue cache", err, infra.KindCache)
	}

	var venues []*queries.VenueView
	if err := json.Unmarshal(raw, &venues); err != nil {
		return nil, gen, false, infra.WrapRepoErr("corrupt venue cache entry", err, infra.KindCache)
	}
	return venues, gen, true, nil
}

// SetList stores the listing only while the generation still equals gen.
// A write lost to a concurrent invalidation is dropped silently.
func (c *VenueCache) SetList(ctx context.Context, category string, gen int64, venues []*queries.VenueView) error {
	data, err := json.Marshal(venues)
	if err != nil {
		return infra.WrapRepoErr("failed to encode venue cache entry", err, infra.KindCache)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, venueGenKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, venueListKey, category, data)
			pipe.Expire(ctx, venueListKey, c.ttl)
			return nil
		})
		return err
	}, venueGenKey)
	switch {
	case err == nil, errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return infra.WrapRepoErr("failed to write venue cache", err, infra.KindCache)
	}
}

func (c *VenueCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, venueGenKey)
		pipe.Del(ctx, venueListKey)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to invalidate venue cache", err, infra.KindCache)
	}
	return nil
}
