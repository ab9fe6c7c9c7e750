package query

import (
	"context"
	"time"

	"groundio/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserRow carries the merchant profile columns of a LEFT JOIN; they are NULL for customers.
type UserRow struct {
	ID                 uuid.UUID          `db:"id"`
	Email              string             `db:"email"`
	PasswordHash       string             `db:"password_hash"`
	Role               string             `db:"role"`
	DisplayName        string             `db:"display_name"`
	Phone              pgtype.Text        `db:"phone"`
	DeviceToken        pgtype.Text        `db:"device_token"`
	LastLogin          pgtype.Timestamptz `db:"last_login"`
	IsActive           bool               `db:"is_active"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
	BusinessName       pgtype.Text        `db:"business_name"`
	BusinessAddress    pgtype.Text        `db:"business_address"`
	City               pgtype.Text        `db:"city"`
	PAN                pgtype.Text        `db:"pan"`
	GSTIN              pgtype.Text        `db:"gstin"`
	Aadhaar            pgtype.Text        `db:"aadhaar"`
	VerificationStatus pgtype.Text        `db:"verification_status"`
}

const userSelect = `SELECT u.id, u.email, u.password_hash, u.role, u.display_name, u.phone,
	u.device_token, u.last_login, u.is_active, u.created_at, u.updated_at,
	m.business_name, m.business_address, m.city, m.pan, m.gstin, m.aadhaar, m.verification_status
FROM users u
LEFT JOIN merchant_profiles m ON m.user_id = u.id`

func (q *Queries) GetUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (UserRow, error) {
	return collectOne[UserRow](ctx, dbtx, userSelect+` WHERE u.id = $1`, id)
}

func (q *Queries) GetUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (UserRow, error) {
	return collectOne[UserRow](ctx, dbtx, userSelect+` WHERE u.email = $1`, email)
}

const createUser = `INSERT INTO users (
	id, email, password_hash, role, display_name, phone, device_token, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateUser(ctx context.Context, dbtx db.DBTX, r UserRow) error {
	_, err := exec(ctx, dbtx, createUser,
		r.ID, r.Email, r.PasswordHash, r.Role, r.DisplayName, r.Phone, r.DeviceToken, r.IsActive,
		r.CreatedAt, r.UpdatedAt)
	return err
}

const updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) (int64, error) {
	return exec(ctx, dbtx, updateUserLastLogin, id, at)
}

const updateUserContact = `UPDATE users
SET display_name = $2, phone = $3, device_token = $4, updated_at = $5
WHERE id = $1`

func (q *Queries) UpdateUserContact(ctx context.Context, dbtx db.DBTX, r UserRow) (int64, error) {
	return exec(ctx, dbtx, updateUserContact, r.ID, r.DisplayName, r.Phone, r.DeviceToken, r.UpdatedAt)
}

type UpsertMerchantProfileParams struct {
	UserID             uuid.UUID
	BusinessName       string
	BusinessAddress    string
	City               string
	PAN                string
	GSTIN              pgtype.Text
	Aadhaar            pgtype.Text
	VerificationStatus string
	At                 time.Time
}

const upsertMerchantProfile = `INSERT INTO merchant_profiles (
	user_id, business_name, business_address, city, pan, gstin, aadhaar, verification_status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
ON CONFLICT (user_id) DO UPDATE SET
	business_name = EXCLUDED.business_name,
	business_address = EXCLUDED.business_address,
	city = EXCLUDED.city,
	pan = EXCLUDED.pan,
	gstin = EXCLUDED.gstin,
	aadhaar = EXCLUDED.aadhaar,
	verification_status = EXCLUDED.verification_status,
	updated_at = EXCLUDED.updated_at`

func (q *Queries) UpsertMerchantProfile(ctx context.Context, dbtx db.DBTX, arg UpsertMerchantProfileParams) error {
	_, err := exec(ctx, dbtx, upsertMerchantProfile,
		arg.UserID, arg.BusinessName, arg.BusinessAddress, arg.City, arg.PAN, arg.GSTIN, arg.Aadhaar,
		arg.VerificationStatus, arg.At)
	return err
}
