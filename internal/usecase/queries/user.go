package queries

import (
	"context"

	"github.com/google/uuid"

	"groundio/internal/domain/user"
	"groundio/internal/infra"
	"groundio/internal/pkg/errs"
)

type UserQueries interface {
	// GetCurrentUser hides deactivated accounts behind ErrUserInactive.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, errs.Wrapf(err, "load user %s", userID)
	case !view.IsActive:
		return nil, ErrUserInactive
	}

	// merchants that never submitted a business profile read as unverified
	if view.Role == string(user.RoleMerchant) && view.Business == nil {
		view.Business = &BusinessProfileView{VerificationStatus: string(user.VerificationUnverified)}
	}
	return view, nil
}
