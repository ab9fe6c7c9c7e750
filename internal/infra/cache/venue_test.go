//go:build e2e

package cache_test

import (
	"context"
	"testing"
	"time"

	"groundio/internal/infra"
	"groundio/internal/infra/cache"
	"groundio/internal/usecase/queries"
	"groundio/tests/common/redistest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleViews() []*queries.VenueView {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return []*queries.VenueView{
		{
			ID:              uuid.New(),
			Name:            "Green Turf Arena",
			Category:        "Football",
			LocationDisplay: "12 MG Road, Bengaluru",
			PricePerHour:    120000,
			DisplayRating:   4.5,
			Images:          []string{},
			IsActive:        true,
			CreatedAt:       at,
			UpdatedAt:       at,
		},
	}
}

func TestVenueCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit per category", func(t *testing.T) {
		c := cache.NewVenueCache(redistest.Client(t), time.Minute)

		_, gen, ok, err := c.GetList(ctx, "Football")
		require.NoError(t, err)
		assert.False(t, ok)

		want := sampleViews()
		require.NoError(t, c.SetList(ctx, "Football", gen, want))

		got, _, ok, err := c.GetList(ctx, "Football")
		require.NoError(t, err)
		require.True(t, ok)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("cached venues mismatch (-want +got):\n%s", diff)
		}

		_, _, ok, err = c.GetList(ctx, "All")
		require.NoError(t, err)
		assert.False(t, ok, "categories are cached independently")
	})

	t.Run("invalidate drops every category", func(t *testing.T) {
		c := cache.NewVenueCache(redistest.Client(t), time.Minute)
		require.NoError(t, c.SetList(ctx, "All", 0, sampleViews()))
		require.NoError(t, c.SetList(ctx, "Cricket", 0, nil))

		require.NoError(t, c.Invalidate(ctx))

		for _, key := range []string{"All", "Cricket"} {
			_, _, ok, err := c.GetList(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok, key)
		}
	})

	t.Run("listing read before an invalidation is not written back", func(t *testing.T) {
		c := cache.NewVenueCache(redistest.Client(t), time.Minute)

		_, staleGen, ok, err := c.GetList(ctx, "All")
		require.NoError(t, err)
		require.False(t, ok)

		// a venue write lands while the reader is still querying the database
		require.NoError(t, c.Invalidate(ctx))
		require.NoError(t, c.SetList(ctx, "All", staleGen, sampleViews()))

		_, gen, ok, err := c.GetList(ctx, "All")
		require.NoError(t, err)
		assert.False(t, ok, "stale listing must not be cached")
		assert.Equal(t, staleGen+1, gen)

		require.NoError(t, c.SetList(ctx, "All", gen, sampleViews()))
		_, _, ok, err = c.GetList(ctx, "All")
		require.NoError(t, err)
		assert.True(t, ok, "a read under the current generation is cached")
	})

	t.Run("entries expire", func(t *testing.T) {
		c := cache.NewVenueCache(redistest.Client(t), time.Second)
		require.NoError(t, c.SetList(ctx, "All", 0, sampleViews()))

		assert.Eventually(t, func() bool {
			_, _, ok, err := c.GetList(ctx, "All")
			return err == nil && !ok
		}, 5*time.Second, 100*time.Millisecond)
	})

	t.Run("closed client reports a cache failure", func(t *testing.T) {
		client := redistest.Client(t)
		c := cache.NewVenueCache(client, time.Minute)
		require.NoError(t, client.Close())

		_, _, _, err := c.GetList(ctx, "All")
		assert.True(t, infra.IsKind(err, infra.KindCache), "got %v", err)
	})
}
