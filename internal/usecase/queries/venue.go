package queries

import (
	"context"
	"log/slog"

	"groundio/internal/domain/venue"
	"groundio/internal/infra"

	"github.com/google/uuid"
)

type VenueReadStore interface {
	// ListActive returns active venues newest first; category nil means every category.
	ListActive(ctx context.Context, category *string) ([]*VenueView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*VenueView, error)
}

// VenueCache hands out a generation with every read; SetList only stores a
// listing whose generation is still current.
type VenueCache interface {
	GetList(ctx context.Context, category string) ([]*VenueView, int64, bool, error)
	SetList(ctx context.Context, category string, gen int64, venues []*VenueView) error
}

// VenueFallback is the static catalog served when the live directory is empty or unreachable.
type VenueFallback interface {
	Venues() []*VenueView
}

type VenueQueries interface {
	ListVenues(ctx context.Context, category, query string) ([]*VenueView, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListMerchantVenues(ctx context.Context, merchantID uuid.UUID) ([]*VenueView, error)
}

type venueQueriesImpl struct {
	store    VenueReadStore
	cache    VenueCache
	fallback VenueFallback
}

func NewVenueQueries(store VenueReadStore, cache VenueCache, fallback VenueFallback) VenueQueries {
	return &venueQueriesImpl{
		store:    store,
		cache:    cache,
		fallback: fallback,
	}
}

// ListVenues never fails on the data source: errors fall back to the static catalog.
// Only an unknown category is reported to the caller.
func (q *venueQueriesImpl) ListVenues(ctx context.Context, category, query string) ([]*VenueView, error) {
	filter, err := venue.NewFilter(category, query)
	if err != nil {
		return nil, invalidFilter(err)
	}

	source := q.live(ctx, filter)
	if len(source) == 0 {
		source = q.fallbackFor(filter)
	}

	out := make([]*VenueView, 0, len(source))
	for _, v := range source {
		if filter.Match(v.Name, v.LocationDisplay, venue.Category(v.Category)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (q *venueQueriesImpl) live(ctx context.Context, filter venue.Filter) []*VenueView {
	key := filter.Category.String()
	if filter.IsAllCategories() {
		key = venue.CategoryAll.String()
	}

	var gen int64
	if q.cache != nil {
		cached, g, ok, err := q.cache.GetList(ctx, key)
		gen = g
		if err != nil {
			slog.WarnContext(ctx, "venue cache read failed", "category", key, "error", err.Error())
		} else if ok {
			return cached
		}
	}

	var category *string
	if !filter.IsAllCategories() {
		category = &key
	}

	venues, err := q.store.ListActive(ctx, category)
	if err != nil {
		slog.WarnContext(ctx, "venue directory unavailable, serving catalog", "category", key, "error", err.Error())
		return nil
	}

	if q.cache != nil && len(venues) > 0 {
		if err := q.cache.SetList(ctx, key, gen, venues); err != nil {
			slog.WarnContext(ctx, "venue cache write failed", "category", key, "error", err.Error())
		}
	}
	return venues
}

func (q *venueQueriesImpl) fallbackFor(filter venue.Filter) []*VenueView {
	if q.fallback == nil {
		return nil
	}
	var out []*VenueView
	for _, v := range q.fallback.Venues() {
		if !v.IsActive {
			continue
		}
		if !filter.IsAllCategories() && v.Category != filter.Category.String() {
			continue
		}
		out = append(out, v)
	}
	return out
}

// GetVenue falls back to the catalog so venues listed from it still resolve.
func (q *venueQueriesImpl) GetVenue(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			if cv := q.catalogVenue(id); cv != nil {
				return cv, nil
			}
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if !v.IsActive {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

func (q *venueQueriesImpl) catalogVenue(id uuid.UUID) *VenueView {
	if q.fallback == nil {
		return nil
	}
	for _, v := range q.fallback.Venues() {
		if v.ID == id && v.IsActive {
			return v
		}
	}
	return nil
}

func (q *venueQueriesImpl) ListMerchantVenues(ctx context.Context, merchantID uuid.UUID) ([]*VenueView, error) {
	return q.store.ListByMerchant(ctx, merchantID)
}
