//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/builder"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	yachts  *queriesmock.MockYachtReadStore
	periods *queriesmock.MockPricingReadStore
	slots   *queriesmock.MockCalendarReadStore
	cache   *queriesmock.MockCalendarCache
	q       queries.PricingQueries

	yachtID uuid.UUID
	from    time.Time
	to      time.Time
	window  calendar.Range
}

func (s *PricingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.yachts = queriesmock.NewMockYachtReadStore(s.ctrl)
	s.periods = queriesmock.NewMockPricingReadStore(s.ctrl)
	s.slots = queriesmock.NewMockCalendarReadStore(s.ctrl)
	s.cache = queriesmock.NewMockCalendarCache(s.ctrl)
	s.q = queries.NewPricingQueries(s.yachts, s.periods, s.slots, s.cache, clock.NewMockClock(builder.DefaultNow), time.UTC)

	s.yachtID = uuid.New()
	s.from = builder.Date(2024, 7, 1)
	s.to = builder.Date(2024, 8, 1)
	s.window = builder.MustRange(s.from, s.to)
}

func (s *PricingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPricingQueriesSuite(t *testing.T) {
	suite.Run(t, new(PricingQueriesTestSuite))
}

func (s *PricingQueriesTestSuite) occupied() []queries.OccupiedRange {
	return []queries.OccupiedRange{{
		BookingID: uuid.New(),
		StartDate: "2024-07-06",
		EndDate:   "2024-07-13",
		Status:    "confirmed",
	}}
}

func (s *PricingQueriesTestSuite) TestCalendar_CacheHit() {
	cached := &queries.CalendarView{YachtID: s.yachtID, From: "2024-07-01", To: "2024-08-01", Occupied: s.occupied()}
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, s.window).Return(cached, int64(4), nil)

	view, err := s.q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.Require().NoError(err)
	s.Same(cached, view)
}

func (s *PricingQueriesTestSuite) TestCalendar_CacheMissStoresUnderObservedGeneration() {
	occupied := s.occupied()
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, s.window).Return(nil, int64(7), nil)
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.slots.EXPECT().OccupiedRanges(gomock.Any(), s.yachtID, s.window).Return(occupied, nil)
	s.cache.EXPECT().PutCalendar(gomock.Any(), gomock.Any(), s.window, int64(7)).
		DoAndReturn(func(_ context.Context, view *queries.CalendarView, _ calendar.Range, _ int64) error {
			s.Equal(occupied, view.Occupied)
			return nil
		})

	view, err := s.q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.Require().NoError(err)
	s.Equal("2024-07-01", view.From)
	s.Equal("2024-08-01", view.To)
	s.Equal(occupied, view.Occupied)
}

func (s *PricingQueriesTestSuite) TestCalendar_CacheReadFailureSkipsWrite() {
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, s.window).Return(nil, int64(0), errs.New("connection refused"))
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.slots.EXPECT().OccupiedRanges(gomock.Any(), s.yachtID, s.window).Return(nil, nil)

	view, err := s.q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.Require().NoError(err)
	s.NotNil(view.Occupied)
	s.Empty(view.Occupied)
}

func (s *PricingQueriesTestSuite) TestCalendar_CacheWriteFailureStillAnswers() {
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, s.window).Return(nil, int64(1), nil)
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.slots.EXPECT().OccupiedRanges(gomock.Any(), s.yachtID, s.window).Return(s.occupied(), nil)
	s.cache.EXPECT().PutCalendar(gomock.Any(), gomock.Any(), s.window, int64(1)).Return(errs.New("READONLY"))

	view, err := s.q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.Require().NoError(err)
	s.Len(view.Occupied, 1)
}

func (s *PricingQueriesTestSuite) TestCalendar_DefaultWindow() {
	window := builder.MustRange(builder.Date(2024, 6, 1), builder.Date(2025, 6, 1))
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, window).Return(nil, int64(0), nil)
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.slots.EXPECT().OccupiedRanges(gomock.Any(), s.yachtID, window).Return(nil, nil)
	s.cache.EXPECT().PutCalendar(gomock.Any(), gomock.Any(), window, int64(0)).Return(nil)

	view, err := s.q.Calendar(context.Background(), s.yachtID, time.Time{}, time.Time{})

	s.Require().NoError(err)
	s.Equal("2024-06-01", view.From)
	s.Equal("2025-06-01", view.To)
}

func (s *PricingQueriesTestSuite) TestCalendar_UnknownYachtIsNotCached() {
	s.cache.EXPECT().GetCalendar(gomock.Any(), s.yachtID, s.window).Return(nil, int64(0), nil)
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(nil, infra.WrapRepoErr("yacht not found", nil, infra.KindNotFound))

	_, err := s.q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *PricingQueriesTestSuite) TestCalendar_InvertedWindow() {
	_, err := s.q.Calendar(context.Background(), s.yachtID, s.to, s.from)

	s.ErrorIs(err, calendar.ErrInvalidRange)
}

func (s *PricingQueriesTestSuite) TestCalendar_WithoutCache() {
	q := queries.NewPricingQueries(s.yachts, s.periods, s.slots, nil, clock.NewMockClock(builder.DefaultNow), time.UTC)
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.slots.EXPECT().OccupiedRanges(gomock.Any(), s.yachtID, s.window).Return(s.occupied(), nil)

	view, err := q.Calendar(context.Background(), s.yachtID, s.from, s.to)

	s.Require().NoError(err)
	s.Len(view.Occupied, 1)
}

func (s *PricingQueriesTestSuite) TestQuote() {
	summer := builder.NewPeriodBuilder().WithYachtID(s.yachtID).Build()
	s.yachts.EXPECT().FindByID(gomock.Any(), s.yachtID).Return(&queries.YachtView{ID: s.yachtID}, nil)
	s.periods.EXPECT().LoadPeriods(gomock.Any(), s.yachtID).Return([]*pricing.Period{summer}, nil)

	quote, err := s.q.Quote(context.Background(), s.yachtID, builder.Date(2024, 7, 6), builder.Date(2024, 7, 20))

	s.Require().NoError(err)
	s.Equal(2, quote.Weeks)
	s.Equal("4000.00", quote.TotalPrice)
	s.Require().Len(quote.Segments, 2)
	s.Equal(summer.ID(), *quote.Segments[0].PeriodID)
}
