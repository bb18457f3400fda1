package commands

import (
	"context"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewInput struct {
	Rating  int
	Comment string
}

type ReviewCommands interface {
	Create(ctx context.Context, actor policy.Actor, bookingID uuid.UUID, in ReviewInput) (*queries.ReviewView, error)
	Update(ctx context.Context, actor policy.Actor, reviewID uuid.UUID, in ReviewInput) (*queries.ReviewView, error)
	Delete(ctx context.Context, actor policy.Actor, reviewID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher NotificationDispatcher
	reviews    queries.ReviewQueries
	clock      clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, dispatcher NotificationDispatcher, reviews queries.ReviewQueries, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, dispatcher: dispatcher, reviews: reviews, clock: clk}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, actor policy.Actor, bookingID uuid.UUID, in ReviewInput) (*queries.ReviewView, error) {
	var reviewID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if !actor.Is(b.RequesterID()) {
			return policy.Denied("review booking")
		}
		exists, err := tx.Reads().ReviewExistsForBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if exists {
			return review.ErrReviewAlreadyExists
		}
		rv, err := review.New(b, in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return err
		}
		if !policy.CanCreateReview(actor, policy.BookingSubjectOf(b, exists)) {
			return policy.Denied("review booking")
		}

		if err := tx.Reviews().Create(ctx, rv); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return review.ErrReviewAlreadyExists
			}
			return err
		}
		if err := tx.RatingStats().RecalcYachtRatingStats(ctx, b.YachtID()); err != nil {
			return err
		}
		reviewID = rv.ID()
		return uc.dispatcher.Dispatch(ctx, tx.Notifications(), rv.PullEvents())
	})
	if err != nil {
		return nil, err
	}
	return uc.reviews.GetByID(ctx, reviewID)
}

func (uc *reviewUseCaseImpl) Update(ctx context.Context, actor policy.Actor, reviewID uuid.UUID, in ReviewInput) (*queries.ReviewView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, b, err := uc.loadEditable(ctx, tx, actor, reviewID, "edit review")
		if err != nil {
			return err
		}
		if err := rv.Update(in.Rating, in.Comment, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, rv); err != nil {
			return err
		}
		return tx.RatingStats().RecalcYachtRatingStats(ctx, b.YachtID())
	})
	if err != nil {
		return nil, err
	}
	return uc.reviews.GetByID(ctx, reviewID)
}

func (uc *reviewUseCaseImpl) Delete(ctx context.Context, actor policy.Actor, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, b, err := uc.loadEditable(ctx, tx, actor, reviewID, "delete review")
		if err != nil {
			return err
		}
		if err := tx.Reviews().Delete(ctx, reviewID); err != nil {
			return err
		}
		return tx.RatingStats().RecalcYachtRatingStats(ctx, b.YachtID())
	})
}

func (uc *reviewUseCaseImpl) loadEditable(ctx context.Context, tx shared.Tx, actor policy.Actor, reviewID uuid.UUID, action string) (*review.Review, *booking.Booking, error) {
	rv, err := tx.Reads().ReviewByID(ctx, reviewID)
	if err != nil {
		return nil, nil, err
	}
	b, err := tx.Reads().BookingByID(ctx, rv.BookingID())
	if err != nil {
		return nil, nil, err
	}
	author, err := review.DeriveReviewer(rv, b)
	if err != nil {
		return nil, nil, err
	}
	subject := policy.ReviewSubject{AuthorID: author, CreatedAt: rv.CreatedAt()}
	if !policy.CanEditOrDeleteReview(actor, subject, uc.clock.Now()) {
		return nil, nil, policy.Denied(action)
	}
	return rv, b, nil
}
