package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VenueRow struct {
	ID              uuid.UUID     `db:"id"`
	MerchantID      uuid.UUID     `db:"merchant_id"`
	Name            string        `db:"name"`
	Category        string        `db:"category"`
	LocationKind    string        `db:"location_kind"`
	LocationText    string        `db:"location_text"`
	LocationAddress string        `db:"location_address"`
	LocationCity    string        `db:"location_city"`
	PricePerHour    int64         `db:"price_per_hour"`
	Rating          pgtype.Float8 `db:"rating"`
	Images          []string      `db:"images"`
	Availability    []byte        `db:"availability"`
	IsActive        bool          `db:"is_active"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

const venueColumns = `id, merchant_id, name, category, location_kind, location_text,
	location_address, location_city, price_per_hour, rating, images, availability,
	is_active, created_at, updated_at`

const listActiveVenues = `SELECT ` + venueColumns + `
FROM venues
WHERE is_active AND ($1::text IS NULL OR category = $1)
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListActiveVenues(ctx context.Context, dbtx db.DBTX, category pgtype.Text) ([]VenueRow, error) {
	return collect[VenueRow](ctx, dbtx, listActiveVenues, category)
}

const getVenueByID = `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

func (q *Queries) GetVenueByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (VenueRow, error) {
	return collectOne[VenueRow](ctx, dbtx, getVenueByID, id)
}

const getVenueByIDForUpdate = getVenueByID + ` FOR UPDATE`

func (q *Queries) GetVenueByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (VenueRow, error) {
	return collectOne[VenueRow](ctx, dbtx, getVenueByIDForUpdate, id)
}

const listVenuesByMerchant = `SELECT ` + venueColumns + `
FROM venues
WHERE merchant_id = $1
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListVenuesByMerchant(ctx context.Context, dbtx db.DBTX, merchantID uuid.UUID) ([]VenueRow, error) {
	return collect[VenueRow](ctx, dbtx, listVenuesByMerchant, merchantID)
}

const createVenue = `INSERT INTO venues (
	id, merchant_id, name, category, location_kind, location_text, location_address,
	location_city, price_per_hour, rating, images, availability, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (q *Queries) CreateVenue(ctx context.Context, dbtx db.DBTX, r VenueRow) error {
	_, err := exec(ctx, dbtx, createVenue,
		r.ID, r.MerchantID, r.Name, r.Category, r.LocationKind, r.LocationText, r.LocationAddress,
		r.LocationCity, r.PricePerHour, r.Rating, r.Images, r.Availability, r.IsActive, r.CreatedAt, r.UpdatedAt)
	return err
}

const updateVenue = `UPDATE venues SET
	name = $2, category = $3, location_kind = $4, location_text = $5, location_address = $6,
	location_city = $7, price_per_hour = $8, images = $9, availability = $10, is_active = $11,
	updated_at = $12
WHERE id = $1`

func (q *Queries) UpdateVenue(ctx context.Context, dbtx db.DBTX, r VenueRow) (int64, error) {
	return exec(ctx, dbtx, updateVenue,
		r.ID, r.Name, r.Category, r.LocationKind, r.LocationText, r.LocationAddress,
		r.LocationCity, r.PricePerHour, r.Images, r.Availability, r.IsActive, r.UpdatedAt)
}

const deleteVenue = `DELETE FROM venues WHERE id = $1`

func (q *Queries) DeleteVenue(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	return exec(ctx, dbtx, deleteVenue, id)
}

const recalculateVenueRating = `UPDATE venues SET
	rating = (SELECT ROUND(AVG(r.rating)::numeric, 1)::float8 FROM reviews r WHERE r.venue_id = $1),
	updated_at = now()
WHERE id = $1`

func (q *Queries) RecalculateVenueRating(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID) (int64, error) {
	return exec(ctx, dbtx, recalculateVenueRating, venueID)
}
