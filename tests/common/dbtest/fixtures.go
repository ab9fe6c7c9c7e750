//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"groundio/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain password of every fixture user.
const TestPassword = "Passw0rd!"

var (
	hashOnce    sync.Once
	testHash    string
	testHashErr error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		testHash, testHashErr = password.NewHasher(bcrypt.MinCost).Hash(TestPassword)
	})
	require.NoError(t, testHashErr)
	return testHash
}

// CreateTestUser inserts an active user, or returns the existing one with the same email.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	name, _, _ := strings.Cut(email, "@")

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, display_name, is_active)
		 VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash(t), role, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestVenue inserts an active venue with a structured location.
func CreateTestVenue(t *testing.T, db DBLike, merchantID uuid.UUID, name, category string, pricePerHour int64) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO venues (id, merchant_id, name, category, location_kind, location_address, location_city, price_per_hour)
		 VALUES ($1, $2, $3, $4, 'structured', '80 Feet Road, Koramangala', 'Bengaluru', $5)`,
		venueID, merchantID, name, category, pricePerHour)
	require.NoError(t, err)

	return venueID
}

// SetBookingStatus moves a booking directly, for states the API only reaches over time.
func SetBookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID, status string, date time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE bookings SET status = $2, booking_date = $3 WHERE id = $1", bookingID, status, date)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
