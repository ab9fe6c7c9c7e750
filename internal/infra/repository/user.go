package repository

import (
	"context"
	"time"

	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	GetUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.UserRow, error)
	CreateUser(ctx context.Context, db db.DBTX, r query.UserRow) error
	UpdateUserLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID, at time.Time) (int64, error)
	UpdateUserContact(ctx context.Context, db db.DBTX, r query.UserRow) (int64, error)
	UpsertMerchantProfile(ctx context.Context, db db.DBTX, arg query.UpsertMerchantProfileParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      db.DBTX
}

func NewUserRepository(queries UserWriteQueries, db db.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err, infra.KindDBFailure)
	}
	return u, nil
}

// Create reports a taken email as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToRow(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	if _, err := r.queries.UpdateUserLastLogin(ctx, tx, userID, at); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateContact(ctx context.Context, tx db.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserContact(ctx, tx, converter.UserToRow(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user contact", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpsertBusinessProfile(ctx context.Context, tx db.DBTX, u *user.User) error {
	if u.Business() == nil {
		return infra.WrapRepoErr("user has no business profile", nil, infra.KindDBFailure)
	}
	if err := r.queries.UpsertMerchantProfile(ctx, tx, converter.MerchantProfileParams(u)); err != nil {
		return infra.WrapRepoErr("failed to upsert merchant profile", err)
	}
	return nil
}
