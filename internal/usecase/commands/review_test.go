//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/review"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/builder"
	commandsmock "yacht-charter/tests/mock/commands"
	queriesmock "yacht-charter/tests/mock/queries"
	sharedmock "yacht-charter/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	reviews    *sharedmock.MockReviewRepository
	stats      *sharedmock.MockRatingStatsRepository
	notifs     *sharedmock.MockNotificationRepository
	dispatcher *commandsmock.MockNotificationDispatcher
	queries    *queriesmock.MockReviewQueries
	clock      *clock.MockClock
	uc         commands.ReviewCommands

	requesterID uuid.UUID
	booking     *booking.Booking
}

var reviewedAt = time.Date(2024, 7, 16, 9, 0, 0, 0, time.UTC)

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.reviews = sharedmock.NewMockReviewRepository(s.ctrl)
	s.stats = sharedmock.NewMockRatingStatsRepository(s.ctrl)
	s.notifs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.dispatcher = commandsmock.NewMockNotificationDispatcher(s.ctrl)
	s.queries = queriesmock.NewMockReviewQueries(s.ctrl)

	expectTx(s.uow, s.tx, s.reads)
	s.tx.EXPECT().Reviews().Return(s.reviews).AnyTimes()
	s.tx.EXPECT().RatingStats().Return(s.stats).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifs).AnyTimes()

	s.requesterID = uuid.New()
	s.booking = builder.NewBookingBuilder().WithRequesterID(s.requesterID).WithStatus(booking.StatusCompleted).BuildReconstructed()
	s.clock = clock.NewMockClock(reviewedAt)
	s.uc = commands.NewReviewUseCase(s.uow, s.dispatcher, s.queries, s.clock)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	in := commands.ReviewInput{Rating: 4, Comment: "Lovely week"}

	s.Run("requester reviews a completed booking", func() {
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), s.booking.ID()).Return(s.booking, nil)
		s.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), s.booking.ID()).Return(false, nil)
		var createdID uuid.UUID
		s.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rv *review.Review) error {
			s.Equal(4, rv.Rating().Value())
			s.Equal(s.booking.ID(), rv.BookingID())
			createdID = rv.ID()
			return nil
		})
		s.stats.EXPECT().RecalcYachtRatingStats(gomock.Any(), s.booking.YachtID()).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), s.notifs, gomock.Len(1)).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.ReviewView, error) {
				s.Equal(createdID, id)
				return &queries.ReviewView{ID: id, Rating: 4}, nil
			})

		view, err := s.uc.Create(ctx, actorOf(s.requesterID, user.RoleClient), s.booking.ID(), in)

		s.Require().NoError(err)
		s.Equal(4, view.Rating)
	})

	s.Run("only the requester may review", func() {
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), s.booking.ID()).Return(s.booking, nil)

		_, err := s.uc.Create(ctx, actorOf(s.booking.YachtOwnerID(), user.RoleOwner), s.booking.ID(), in)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("second review for the same booking", func() {
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), s.booking.ID()).Return(s.booking, nil)
		s.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), s.booking.ID()).Return(true, nil)

		_, err := s.uc.Create(ctx, actorOf(s.requesterID, user.RoleClient), s.booking.ID(), in)
		s.True(errs.Is(err, review.ErrReviewAlreadyExists))
		s.True(errs.Is(err, errs.ErrPrecondition))
	})

	s.Run("unique index race maps to the same error", func() {
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), s.booking.ID()).Return(s.booking, nil)
		s.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), s.booking.ID()).Return(false, nil)
		s.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create review", errs.New("duplicate"), infra.KindDuplicateKey))

		_, err := s.uc.Create(ctx, actorOf(s.requesterID, user.RoleClient), s.booking.ID(), in)
		s.True(errs.Is(err, review.ErrReviewAlreadyExists))
	})

	s.Run("booking not completed yet", func() {
		pending := builder.NewBookingBuilder().WithRequesterID(s.requesterID).BuildReconstructed()
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), pending.ID()).Return(pending, nil)
		s.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), pending.ID()).Return(false, nil)

		_, err := s.uc.Create(ctx, actorOf(s.requesterID, user.RoleClient), pending.ID(), in)
		s.True(errs.Is(err, review.ErrBookingNotCompleted))
	})

	s.Run("rating out of range", func() {
		s.reads.EXPECT().BookingForUpdate(gomock.Any(), s.booking.ID()).Return(s.booking, nil)
		s.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), s.booking.ID()).Return(false, nil)

		_, err := s.uc.Create(ctx, actorOf(s.requesterID, user.RoleClient), s.booking.ID(), commands.ReviewInput{Rating: 6})
		s.True(errs.Is(err, review.ErrInvalidRating))
	})
}

func (s *ReviewCommandsTestSuite) TestUpdateAndDelete() {
	ctx := context.Background()
	stored := func() *review.Review {
		return review.Reconstruct(uuid.New(), s.booking.ID(), 3, "Okay", reviewedAt, reviewedAt)
	}
	expectLoad := func(rv *review.Review) {
		s.reads.EXPECT().ReviewByID(gomock.Any(), rv.ID()).Return(rv, nil)
		s.reads.EXPECT().BookingByID(gomock.Any(), s.booking.ID()).Return(s.booking, nil)
	}

	s.Run("author edits within the window", func() {
		s.clock.Set(reviewedAt.Add(23 * time.Hour))
		rv := stored()
		expectLoad(rv)
		s.reviews.EXPECT().Update(gomock.Any(), rv).DoAndReturn(func(_ context.Context, got *review.Review) error {
			s.Equal(5, got.Rating().Value())
			s.Equal("Great after all", got.Comment().String())
			return nil
		})
		s.stats.EXPECT().RecalcYachtRatingStats(gomock.Any(), s.booking.YachtID()).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), rv.ID()).Return(&queries.ReviewView{ID: rv.ID(), Rating: 5}, nil)

		_, err := s.uc.Update(ctx, actorOf(s.requesterID, user.RoleClient), rv.ID(), commands.ReviewInput{Rating: 5, Comment: "Great after all"})
		s.NoError(err)
	})

	s.Run("author is locked out after 24 hours", func() {
		s.clock.Set(reviewedAt.Add(review.EditWindow))
		rv := stored()
		expectLoad(rv)

		_, err := s.uc.Update(ctx, actorOf(s.requesterID, user.RoleClient), rv.ID(), commands.ReviewInput{Rating: 5})
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("admin deletes at any time", func() {
		s.clock.Set(reviewedAt.Add(30 * 24 * time.Hour))
		rv := stored()
		expectLoad(rv)
		s.reviews.EXPECT().Delete(gomock.Any(), rv.ID()).Return(nil)
		s.stats.EXPECT().RecalcYachtRatingStats(gomock.Any(), s.booking.YachtID()).Return(nil)

		s.NoError(s.uc.Delete(ctx, actorOf(uuid.New(), user.RoleAdmin), rv.ID()))
	})

	s.Run("yacht owner cannot delete", func() {
		s.clock.Set(reviewedAt.Add(time.Hour))
		rv := stored()
		expectLoad(rv)

		err := s.uc.Delete(ctx, actorOf(s.booking.YachtOwnerID(), user.RoleOwner), rv.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("unknown review", func() {
		id := uuid.New()
		s.reads.EXPECT().ReviewByID(gomock.Any(), id).Return(nil, review.ErrReviewNotFound)

		err := s.uc.Delete(ctx, actorOf(s.requesterID, user.RoleClient), id)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
