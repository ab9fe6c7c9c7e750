package commands

import (
	"context"

	"github.com/google/uuid"

	"groundio/internal/domain/user"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/shared"
)

type UpdateProfileInput struct {
	DisplayName *string
	Phone       *string
	DeviceToken *string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error
	UpdateMerchantProfile(ctx context.Context, userID uuid.UUID, in user.BusinessInput) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (c *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return markNotFound(err, errs.ErrProfileNotFound)
		}
		err = u.UpdateContact(user.ContactUpdate{
			DisplayName: in.DisplayName,
			Phone:       in.Phone,
			DeviceToken: in.DeviceToken,
		}, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return tx.Users().UpdateContact(ctx, tx.DB(), u)
	})
}

// UpdateMerchantProfile replaces the business profile; verification restarts at pending.
func (c *profileCommandsImpl) UpdateMerchantProfile(ctx context.Context, userID uuid.UUID, in user.BusinessInput) error {
	profile, err := user.NewBusinessProfile(in)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return markNotFound(err, errs.ErrProfileNotFound)
		}
		if err = u.SetBusinessProfile(profile, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrMerchantOnly)
		}
		return tx.Users().UpsertBusinessProfile(ctx, tx.DB(), u)
	})
}
