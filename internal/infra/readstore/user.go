package readstore

import (
	"context"

	"github.com/google/uuid"

	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/infra/db"
	"groundio/internal/infra/query"
	"groundio/internal/pkg/pgconv"
	"groundio/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (query.UserRow, error)
	GetUserByEmail(ctx context.Context, db db.DBTX, email string) (query.UserRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      db.DBTX
}

func NewUserReadStore(queries UserReadQueries, db db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toUserView(row), row.PasswordHash, nil
}

func toUserView(row query.UserRow) *queries.UserView {
	view := &queries.UserView{
		ID:          row.ID,
		Email:       row.Email,
		Role:        row.Role,
		DisplayName: row.DisplayName,
		Phone:       pgconv.StringPtrFromPgtype(row.Phone),
		DeviceToken: pgconv.StringPtrFromPgtype(row.DeviceToken),
		IsActive:    row.IsActive,
		LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:   row.CreatedAt,
	}

	if row.PAN.Valid {
		business := &queries.BusinessProfileView{
			BusinessName:       row.BusinessName.String,
			BusinessAddress:    row.BusinessAddress.String,
			City:               row.City.String,
			PAN:                row.PAN.String,
			GSTIN:              pgconv.StringPtrFromPgtype(row.GSTIN),
			VerificationStatus: row.VerificationStatus.String,
		}
		if row.Aadhaar.Valid {
			masked := user.Aadhaar(row.Aadhaar.String).Masked()
			business.AadhaarMasked = &masked
		}
		view.Business = business
	}

	return view
}
