//go:build unit

package readstore

import (
	"context"
	"testing"

	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db db.DBTX, email string) (query.UserRow, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.UserRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn query.UserRow
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: query.UserRow{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: query.UserRow{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind), "expected kind %s, got %v", tt.wantKind, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, view)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.wantHash, hash)
				assert.Nil(t, view.Business)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().WithPhone("9876543210").BuildInfra()

	merchant := builder.NewUserBuilder().AsMerchant().BuildInfra()
	merchant.BusinessName = pgtype.Text{String: "Green Turf Sports LLP", Valid: true}
	merchant.City = pgtype.Text{String: "Bengaluru", Valid: true}
	merchant.PAN = pgtype.Text{String: "ABCDE1234F", Valid: true}
	merchant.Aadhaar = pgtype.Text{String: "234567890123", Valid: true}
	merchant.VerificationStatus = pgtype.Text{String: "pending", Valid: true}

	t.Run("customer row", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, testUser.ID).Return(testUser, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), testUser.ID)
		require.NoError(t, err)
		assert.Equal(t, testUser.ID, view.ID)
		assert.Equal(t, "customer", view.Role)
		require.NotNil(t, view.Phone)
		assert.Equal(t, "9876543210", *view.Phone)
		assert.Nil(t, view.DeviceToken)
		assert.Nil(t, view.LastLogin)
		mockQueries.AssertExpectations(t)
	})

	t.Run("merchant row masks aadhaar", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, merchant.ID).Return(merchant, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), merchant.ID)
		require.NoError(t, err)
		require.NotNil(t, view.Business)
		assert.Equal(t, "Green Turf Sports LLP", view.Business.BusinessName)
		assert.Equal(t, "ABCDE1234F", view.Business.PAN)
		assert.Nil(t, view.Business.GSTIN)
		require.NotNil(t, view.Business.AadhaarMasked)
		assert.Equal(t, "XXXX-XXXX-0123", *view.Business.AadhaarMasked)
		mockQueries.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, id).Return(query.UserRow{}, pgx.ErrNoRows)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), id)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, testUser.ID).Return(query.UserRow{}, assert.AnError)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), testUser.ID)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertExpectations(t)
	})
}
