package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyKeyRow struct {
	Key             uuid.UUID   `db:"key"`
	UserID          uuid.UUID   `db:"user_id"`
	Endpoint        string      `db:"endpoint"`
	RequestHash     string      `db:"request_hash"`
	ResultBookingID pgtype.UUID `db:"result_booking_id"`
	ExpiresAt       time.Time   `db:"expires_at"`
}

const getIdempotencyKey = `SELECT key, user_id, endpoint, request_hash, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2 AND expires_at > now()`

func (q *Queries) GetIdempotencyKey(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID) (IdempotencyKeyRow, error) {
	return collectOne[IdempotencyKeyRow](ctx, dbtx, getIdempotencyKey, key, userID)
}

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

// An expired row is taken over; a live one leaves zero rows affected.
const tryInsertIdempotencyKey = `INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key, user_id) DO UPDATE SET
	endpoint = EXCLUDED.endpoint,
	request_hash = EXCLUDED.request_hash,
	result_booking_id = NULL,
	expires_at = EXCLUDED.expires_at,
	created_at = now()
WHERE idempotency_keys.expires_at <= now()`

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, dbtx db.DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	return exec(ctx, dbtx, tryInsertIdempotencyKey, arg.Key, arg.UserID, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
}

const completeIdempotencyKey = `UPDATE idempotency_keys SET result_booking_id = $3 WHERE key = $1 AND user_id = $2`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, dbtx db.DBTX, key, userID, bookingID uuid.UUID) (int64, error) {
	return exec(ctx, dbtx, completeIdempotencyKey, key, userID, bookingID)
}
