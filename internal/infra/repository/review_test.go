//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"groundio/internal/domain/review"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository"
	"groundio/tests/common/builder"
	repositorymock "groundio/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, *review.Review, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, query.CreateReviewParams{
					ID:        rev.ID(),
					UserID:    rev.UserID(),
					VenueID:   rev.VenueID(),
					BookingID: rev.BookingID(),
					Rating:    int32(rev.Rating().Value()),
					Comment:   rev.Comment().String(),
					CreatedAt: rev.CreatedAt(),
				}).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: booking already reviewed",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: booking row vanished",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, rev *review.Review, tx db.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainReview, mockDB)

			actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// ExistsForBooking Tests
// =============================================================================

func TestReviewRepository_ExistsForBooking(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		exists     bool
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "not yet reviewed", exists: false},
		{name: "already reviewed", exists: true},
		{name: "database error", mockErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockQueries.EXPECT().ReviewExistsForBooking(ctx, gomock.Any(), bookingID).Return(tc.exists, tc.mockErr)

			got, err := repository.NewReviewRepository(mockQueries, &mockDBTX{}).ExistsForBooking(ctx, bookingID)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exists, got)
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a no-op db.DBTX; the generated query mocks never touch it.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
