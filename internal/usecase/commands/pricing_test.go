//go:build unit

package commands_test

import (
	"context"
	"testing"

	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/tests/common/builder"
	sharedmock "yacht-charter/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	periods *sharedmock.MockPricingRepository
	uc      commands.PricingCommands

	ownerID uuid.UUID
	yacht   *yacht.Yacht
}

func (s *PricingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.periods = sharedmock.NewMockPricingRepository(s.ctrl)

	expectTx(s.uow, s.tx, s.reads)
	s.tx.EXPECT().Pricing().Return(s.periods).AnyTimes()

	s.ownerID = uuid.New()
	s.yacht = builder.NewYachtBuilder().WithOwnerID(s.ownerID).BuildReconstructed()
	s.uc = commands.NewPricingUseCase(s.uow, clock.NewMockClock(builder.DefaultNow))
}

func (s *PricingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPricingCommandsSuite(t *testing.T) {
	suite.Run(t, new(PricingCommandsTestSuite))
}

func (s *PricingCommandsTestSuite) TestCreatePeriod() {
	ctx := context.Background()
	summer := commands.PeriodInput{
		StartDate:    builder.Date(2024, 6, 1),
		EndDate:      builder.Date(2024, 8, 31),
		PricePerWeek: "2500.50",
	}

	s.Run("owner adds a season", func() {
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)
		s.periods.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *pricing.Period) error {
			s.Equal(int64(250050), p.PricePerWeek().Cents())
			return nil
		})

		view, err := s.uc.CreatePeriod(ctx, actorOf(s.ownerID, user.RoleOwner), s.yacht.ID(), summer)

		s.Require().NoError(err)
		s.Equal(s.yacht.ID(), view.YachtID)
		s.Equal("2024-06-01", view.StartDate)
		s.Equal("2024-08-31", view.EndDate)
		s.Equal("2500.50", view.PricePerWeek)
	})

	s.Run("malformed price never opens a transaction", func() {
		in := summer
		in.PricePerWeek = "25.005"

		_, err := s.uc.CreatePeriod(ctx, actorOf(s.ownerID, user.RoleOwner), s.yacht.ID(), in)
		s.True(errs.Is(err, pricing.ErrInvalidMoney))
	})

	s.Run("end before start", func() {
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)
		in := summer
		in.StartDate, in.EndDate = summer.EndDate, summer.StartDate

		_, err := s.uc.CreatePeriod(ctx, actorOf(s.ownerID, user.RoleOwner), s.yacht.ID(), in)
		s.True(errs.Is(err, pricing.ErrPeriodEndBeforeStart))
	})

	s.Run("other owners may not price the yacht", func() {
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)

		_, err := s.uc.CreatePeriod(ctx, actorOf(uuid.New(), user.RoleOwner), s.yacht.ID(), summer)
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("a client never holds the pricing capability", func() {
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)

		_, err := s.uc.CreatePeriod(ctx, actorOf(s.ownerID, user.RoleClient), s.yacht.ID(), summer)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *PricingCommandsTestSuite) TestUpdateAndDeletePeriod() {
	ctx := context.Background()
	stored := func() *pricing.Period { return builder.NewPeriodBuilder().WithYachtID(s.yacht.ID()).Build() }

	s.Run("update rewrites dates and price", func() {
		p := stored()
		s.reads.EXPECT().PeriodByID(gomock.Any(), p.ID()).Return(p, nil)
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)
		s.periods.EXPECT().Update(gomock.Any(), p).Return(nil)

		view, err := s.uc.UpdatePeriod(ctx, actorOf(uuid.New(), user.RoleAdmin), p.ID(), commands.PeriodInput{
			StartDate: builder.Date(2024, 9, 1), EndDate: builder.Date(2024, 9, 30), PricePerWeek: "1800",
		})

		s.Require().NoError(err)
		s.Equal("2024-09-01", view.StartDate)
		s.Equal("1800.00", view.PricePerWeek)
	})

	s.Run("update of unknown period", func() {
		id := uuid.New()
		s.reads.EXPECT().PeriodByID(gomock.Any(), id).Return(nil, pricing.ErrPeriodNotFound)

		_, err := s.uc.UpdatePeriod(ctx, actorOf(s.ownerID, user.RoleOwner), id, commands.PeriodInput{PricePerWeek: "10"})
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("owner deletes a period", func() {
		p := stored()
		s.reads.EXPECT().PeriodByID(gomock.Any(), p.ID()).Return(p, nil)
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)
		s.periods.EXPECT().Delete(gomock.Any(), p.ID()).Return(nil)

		s.NoError(s.uc.DeletePeriod(ctx, actorOf(s.ownerID, user.RoleOwner), p.ID()))
	})

	s.Run("stranger cannot delete", func() {
		p := stored()
		s.reads.EXPECT().PeriodByID(gomock.Any(), p.ID()).Return(p, nil)
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), s.yacht.ID()).Return(s.yacht, nil)

		err := s.uc.DeletePeriod(ctx, actorOf(uuid.New(), user.RoleOwner), p.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}
