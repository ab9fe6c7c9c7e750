//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) GetUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.UserRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.UserRow), args.Error(1)
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db db.DBTX, r query.UserRow) error {
	args := m.Called(ctx, db, r)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID, at time.Time) (int64, error) {
	args := m.Called(ctx, db, id, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserContact(ctx context.Context, db db.DBTX, r query.UserRow) (int64, error) {
	args := m.Called(ctx, db, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UpsertMerchantProfile(ctx context.Context, db db.DBTX, arg query.UpsertMerchantProfileParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// db.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    uuid.UUID
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			userID:    testUserID,
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			userID:    testUserID,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, tt.userID, at).Return(int64(1), tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, tt.userID, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserCreate(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:      "email already registered",
			mockError: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind:  infra.KindDuplicateKey,
		},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(r query.UserRow) bool {
				return r.ID == u.ID() && r.Email == "player@example.com" && r.Role == "customer"
			})).Return(tt.mockError)

			err := NewUserRepository(mockQueries, mockQueries).Create(context.Background(), mockQueries, u)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserFindByID(t *testing.T) {
	row := builder.NewUserBuilder().WithPhone("9876543210").BuildInfra()

	t.Run("found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		u, err := NewUserRepository(mockQueries, mockQueries).FindByID(context.Background(), row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		require.NotNil(t, u.Phone())
		assert.Equal(t, "9876543210", u.Phone().String())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(query.UserRow{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries, mockQueries).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt role", func(t *testing.T) {
		bad := row
		bad.Role = "superuser"
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(bad, nil)

		_, err := NewUserRepository(mockQueries, mockQueries).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUpdateContact(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		affected int64
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", affected: 1},
		{name: "user gone", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserContact", mock.Anything, mock.Anything, mock.AnythingOfType("query.UserRow")).Return(tt.affected, tt.mockErr)

			err := NewUserRepository(mockQueries, mockQueries).UpdateContact(context.Background(), mockQueries, u)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpsertBusinessProfile(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("no profile set", func(t *testing.T) {
		merchant, err := builder.NewUserBuilder().AsMerchant().BuildDomain()
		require.NoError(t, err)

		mockQueries := new(MockUserWriteQueries)
		err = NewUserRepository(mockQueries, mockQueries).UpsertBusinessProfile(context.Background(), mockQueries, merchant)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockQueries.AssertNotCalled(t, "UpsertMerchantProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("profile written", func(t *testing.T) {
		merchant, err := builder.NewUserBuilder().AsMerchant().BuildDomain()
		require.NoError(t, err)
		p, err := user.NewBusinessProfile(user.BusinessInput{
			BusinessName:    "Green Turf Sports LLP",
			BusinessAddress: "80 Feet Road",
			City:            "Bengaluru",
			PAN:             "ABCDE1234F",
		})
		require.NoError(t, err)
		require.NoError(t, merchant.SetBusinessProfile(p, now))

		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpsertMerchantProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(arg query.UpsertMerchantProfileParams) bool {
			return arg.UserID == merchant.ID() &&
				arg.PAN == "ABCDE1234F" &&
				!arg.GSTIN.Valid &&
				!arg.Aadhaar.Valid &&
				arg.VerificationStatus == string(user.VerificationPending)
		})).Return(nil)

		err = NewUserRepository(mockQueries, mockQueries).UpsertBusinessProfile(context.Background(), mockQueries, merchant)
		require.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})
}
