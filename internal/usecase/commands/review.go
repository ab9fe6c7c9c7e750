package commands

import (
	"context"

	"github.com/google/uuid"

	domreview "groundio/internal/domain/review"
	"groundio/internal/infra"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/shared"
)

type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
	VenueID  uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview stores the review and recomputes the venue rating in one transaction.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, userID uuid.UUID, in CreateReviewInput) (*CreateReviewResult, error) {
	var result CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, in.BookingID)
		if err != nil {
			return markNotFound(err, errs.ErrBookingNotFound)
		}
		if b.Venue().ID == uuid.Nil {
			return errs.Mark(domreview.ErrBookingNotEligible, errs.ErrReviewNotAllowed)
		}
		// Lock the venue so concurrent reviews recompute the rating one at a time.
		if _, err = tx.Reads().VenueByID(ctx, b.Venue().ID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(domreview.ErrBookingNotEligible, errs.ErrReviewNotAllowed)
			}
			return err
		}

		reviewed, err := tx.Reads().ReviewExistsForBooking(ctx, b.ID())
		if err != nil {
			return err
		}
		err = domreview.CheckEligibility(domreview.EligibilityInput{
			UserID:            userID,
			BookingCustomerID: b.Customer().ID,
			BookingStatus:     b.Status(),
			AlreadyReviewed:   reviewed,
		})
		if err != nil {
			return markReviewRule(err)
		}

		rev, err := domreview.NewReview(uuid.Nil, userID, b.Venue().ID, b.ID(), in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err = tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateReview)
			}
			return err
		}
		if err = tx.Venues().RecalculateRating(ctx, tx.DB(), b.Venue().ID); err != nil {
			return err
		}

		result = CreateReviewResult{ReviewID: rev.ID(), VenueID: b.Venue().ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func markReviewRule(err error) error {
	if errs.Is(err, domreview.ErrReviewAlreadyExists) {
		return errs.Mark(err, errs.ErrDuplicateReview)
	}
	return errs.Mark(err, errs.ErrReviewNotAllowed)
}
