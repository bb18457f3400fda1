//go:build unit

package commands_test

import (
	"context"
	"testing"

	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/domain/yacht"
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

type YachtCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	yachts  *sharedmock.MockYachtRepository
	users   *sharedmock.MockUserRepository
	cache   *commandsmock.MockCalendarInvalidator
	queries *queriesmock.MockYachtQueries
	uc      commands.YachtCommands
}

func (s *YachtCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.yachts = sharedmock.NewMockYachtRepository(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.cache = commandsmock.NewMockCalendarInvalidator(s.ctrl)
	s.queries = queriesmock.NewMockYachtQueries(s.ctrl)

	expectTx(s.uow, s.tx, s.reads)
	s.tx.EXPECT().Yachts().Return(s.yachts).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()

	s.uc = commands.NewYachtUseCase(s.uow, s.queries, s.cache, clock.NewMockClock(builder.DefaultNow))
}

func (s *YachtCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestYachtCommandsSuite(t *testing.T) {
	suite.Run(t, new(YachtCommandsTestSuite))
}

func (s *YachtCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	details := builder.NewYachtBuilder().Details()

	s.Run("first listing promotes a client to owner", func() {
		client := builder.NewUserBuilder().Reconstruct()
		s.reads.EXPECT().UserForUpdate(gomock.Any(), client.ID()).Return(client, nil)
		var createdID uuid.UUID
		s.yachts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, y *yacht.Yacht) error {
			s.Equal(client.ID(), y.OwnerID())
			s.Equal(yacht.StatusAvailable, y.Status())
			createdID = y.ID()
			return nil
		})
		s.users.EXPECT().UpdateRole(gomock.Any(), client).DoAndReturn(func(_ context.Context, u *user.User) error {
			s.Equal(user.RoleOwner, u.Role())
			return nil
		})
		s.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.YachtView, error) {
				s.Equal(createdID, id)
				return &queries.YachtView{ID: id, OwnerID: client.ID()}, nil
			})

		view, err := s.uc.Create(ctx, actorOf(client.ID(), user.RoleClient), details)

		s.Require().NoError(err)
		s.Equal(client.ID(), view.OwnerID)
	})

	s.Run("existing owner keeps the role untouched", func() {
		owner := builder.NewUserBuilder().AsOwner().Reconstruct()
		s.reads.EXPECT().UserForUpdate(gomock.Any(), owner.ID()).Return(owner, nil)
		s.yachts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&queries.YachtView{}, nil)

		_, err := s.uc.Create(ctx, actorOf(owner.ID(), user.RoleOwner), details)
		s.NoError(err)
	})

	s.Run("invalid details are rejected before insert", func() {
		client := builder.NewUserBuilder().Reconstruct()
		s.reads.EXPECT().UserForUpdate(gomock.Any(), client.ID()).Return(client, nil)

		bad := details
		bad.Capacity = 0
		_, err := s.uc.Create(ctx, actorOf(client.ID(), user.RoleClient), bad)

		s.True(errs.Is(err, yacht.ErrInvalidCapacity))
		s.Equal("capacity", errs.Fields(err)[0].Field)
	})
}

func (s *YachtCommandsTestSuite) TestUpdate() {
	ctx := context.Background()
	ownerID := uuid.New()
	stored := func() *yacht.Yacht { return builder.NewYachtBuilder().WithOwnerID(ownerID).BuildReconstructed() }

	s.Run("owner changes the listing", func() {
		y := stored()
		d := builder.NewYachtBuilder().Details()
		d.Capacity = 12
		d.Status = string(yacht.StatusUnderMaintenance)
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), y.ID()).Return(y, nil)
		s.yachts.EXPECT().Update(gomock.Any(), y).DoAndReturn(func(_ context.Context, got *yacht.Yacht) error {
			s.Equal(yacht.Capacity(12), got.Capacity())
			s.False(got.AcceptsBookings())
			return nil
		})
		s.queries.EXPECT().GetByID(gomock.Any(), y.ID()).Return(&queries.YachtView{ID: y.ID()}, nil)

		_, err := s.uc.Update(ctx, actorOf(ownerID, user.RoleOwner), y.ID(), d)
		s.NoError(err)
	})

	s.Run("another owner is refused", func() {
		y := stored()
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), y.ID()).Return(y, nil)

		_, err := s.uc.Update(ctx, actorOf(uuid.New(), user.RoleOwner), y.ID(), builder.NewYachtBuilder().Details())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("admin may edit any listing", func() {
		y := stored()
		s.reads.EXPECT().YachtForUpdate(gomock.Any(), y.ID()).Return(y, nil)
		s.yachts.EXPECT().Update(gomock.Any(), y).Return(nil)
		s.queries.EXPECT().GetByID(gomock.Any(), y.ID()).Return(&queries.YachtView{ID: y.ID()}, nil)

		_, err := s.uc.Update(ctx, actorOf(uuid.New(), user.RoleAdmin), y.ID(), builder.NewYachtBuilder().Details())
		s.NoError(err)
	})
}

func (s *YachtCommandsTestSuite) TestDelete() {
	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name    string
		actorID uuid.UUID
		role    user.Role
		active  int
		errIs   error
	}{
		{name: "owner without active bookings", actorID: ownerID, role: user.RoleOwner},
		{name: "owner with active bookings", actorID: ownerID, role: user.RoleOwner, active: 2, errIs: yacht.ErrHasActiveBookings},
		{name: "admin despite active bookings", actorID: uuid.New(), role: user.RoleAdmin, active: 2},
		{name: "stranger", actorID: uuid.New(), role: user.RoleOwner, errIs: errs.ErrForbidden},
		{name: "stranger while bookings are active", actorID: uuid.New(), role: user.RoleOwner, active: 1, errIs: errs.ErrForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			y := builder.NewYachtBuilder().WithOwnerID(ownerID).BuildReconstructed()
			s.reads.EXPECT().YachtForUpdate(gomock.Any(), y.ID()).Return(y, nil)
			s.reads.EXPECT().CountActiveBookings(gomock.Any(), y.ID()).Return(tc.active, nil)
			if tc.errIs == nil {
				s.yachts.EXPECT().Delete(gomock.Any(), y.ID()).Return(nil)
				s.cache.EXPECT().InvalidateYacht(gomock.Any(), y.ID()).Return(nil)
			}

			err := s.uc.Delete(ctx, actorOf(tc.actorID, tc.role), y.ID())

			if tc.errIs != nil {
				s.True(errs.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				return
			}
			s.NoError(err)
		})
	}
}
