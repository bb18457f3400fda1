//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/pricing"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/domain/yacht"
	"yacht-charter/internal/handler/api"
	resdto "yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/httptest"
	commandsmock "yacht-charter/tests/mock/commands"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPricingCommands
	mockQueries  *queriesmock.MockPricingQueries
	auth         *authHarness
	ownerID      uuid.UUID
	token        string
}

func (s *PricingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPricingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.auth = newAuthHarness(s.mockCtrl)
	h := api.NewPricingHandler(s.mockCommands, s.mockQueries)

	s.ownerID = uuid.New()
	s.token = s.auth.login(s.T(), s.ownerID, user.RoleOwner)

	authed := s.auth.mw.RequireAuth()
	s.router.GET("/yachts/:id/pricing-periods", h.ListPeriods)
	s.router.POST("/yachts/:id/pricing-periods", authed, h.CreatePeriod)
	s.router.PUT("/pricing-periods/:id", authed, h.UpdatePeriod)
	s.router.DELETE("/pricing-periods/:id", authed, h.DeletePeriod)
	s.router.GET("/yachts/:id/quote", h.Quote)
	s.router.GET("/yachts/:id/calendar", h.Calendar)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *PricingHandlerTestSuite) TestCreatePeriod() {
	yachtID := uuid.New()
	url := "/yachts/" + yachtID.String() + "/pricing-periods"
	body := map[string]any{"start_date": "2024-06-01", "end_date": "2024-08-31", "price_per_week": "2500.00"}

	s.Run("success: 201", func() {
		view := &queries.PricingPeriodView{
			ID: uuid.New(), YachtID: yachtID, StartDate: "2024-06-01", EndDate: "2024-08-31", PricePerWeek: "2500.00",
		}
		s.mockCommands.EXPECT().
			CreatePeriod(gomock.Any(), actorIs(s.ownerID), yachtID, commands.PeriodInput{
				StartDate: day(2024, 6, 1), EndDate: day(2024, 8, 31), PricePerWeek: "2500.00",
			}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)

		var got resdto.PricingPeriodResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("2500.00", got.PricePerWeek)
	})

	s.Run("error: 422 on a malformed date before the command runs", func() {
		bad := map[string]any{"start_date": "June 1st", "end_date": "2024-08-31", "price_per_week": "2500.00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), `"field":"start_date"`)
	})

	s.Run("error: 422 on a bad price", func() {
		s.mockCommands.EXPECT().CreatePeriod(gomock.Any(), gomock.Any(), yachtID, gomock.Any()).Return(nil, pricing.ErrInvalidMoney)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 403 for someone else's yacht", func() {
		s.mockCommands.EXPECT().CreatePeriod(gomock.Any(), gomock.Any(), yachtID, gomock.Any()).Return(nil, policy.Denied("manage pricing"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to manage pricing")
	})

	s.Run("error: 400 when price is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "2024-06-01", "end_date": "2024-08-31"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PricingHandlerTestSuite) TestUpdateAndDeletePeriod() {
	periodID := uuid.New()
	url := "/pricing-periods/" + periodID.String()

	s.Run("update: 200", func() {
		s.mockCommands.EXPECT().
			UpdatePeriod(gomock.Any(), actorIs(s.ownerID), periodID, commands.PeriodInput{
				StartDate: day(2024, 9, 1), EndDate: day(2024, 9, 30), PricePerWeek: "1800",
			}).
			Return(&queries.PricingPeriodView{ID: periodID, PricePerWeek: "1800.00"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start_date": "2024-09-01", "end_date": "2024-09-30", "price_per_week": "1800"}, s.token)

		var got resdto.PricingPeriodResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("1800.00", got.PricePerWeek)
	})

	s.Run("update: 404", func() {
		s.mockCommands.EXPECT().UpdatePeriod(gomock.Any(), gomock.Any(), periodID, gomock.Any()).Return(nil, pricing.ErrPeriodNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"start_date": "2024-09-01", "end_date": "2024-09-30", "price_per_week": "1800"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "pricing period not found")
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().DeletePeriod(gomock.Any(), actorIs(s.ownerID), periodID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/pricing-periods/x", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pricing period id")
	})
}

func (s *PricingHandlerTestSuite) TestListPeriods() {
	yachtID := uuid.New()
	s.mockQueries.EXPECT().ListPeriods(gomock.Any(), yachtID).Return([]*queries.PricingPeriodView{
		{ID: uuid.New(), YachtID: yachtID, StartDate: "2024-06-01", EndDate: "2024-06-30", PricePerWeek: "2000.00"},
		{ID: uuid.New(), YachtID: yachtID, StartDate: "2024-07-01", EndDate: "2024-08-31", PricePerWeek: "3000.00"},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/yachts/"+yachtID.String()+"/pricing-periods", nil, "")

	var got []resdto.PricingPeriodResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 2)
	s.Equal("2024-07-01", got[1].StartDate)
}

func (s *PricingHandlerTestSuite) TestQuote() {
	yachtID := uuid.New()
	base := "/yachts/" + yachtID.String() + "/quote"

	s.Run("success", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), yachtID, day(2024, 7, 1), day(2024, 7, 15)).
			Return(&queries.QuoteView{YachtID: yachtID, StartDate: "2024-07-01", EndDate: "2024-07-15", Weeks: 2, TotalPrice: "4000.00"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start_date=2024-07-01&end_date=2024-07-15", nil, "")

		var got queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(2, got.Weeks)
		s.Equal("4000.00", got.TotalPrice)
	})

	s.Run("error: 400 without dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start_date and end_date are required")
	})

	s.Run("error: 404 for an unknown yacht", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), yachtID, gomock.Any(), gomock.Any()).Return(nil, yacht.ErrYachtNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start_date=2024-07-01&end_date=2024-07-15", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "yacht not found")
	})
}

func (s *PricingHandlerTestSuite) TestCalendar() {
	yachtID := uuid.New()
	base := "/yachts/" + yachtID.String() + "/calendar"

	s.Run("success: omitted bounds are passed as zero", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), yachtID, time.Time{}, time.Time{}).
			Return(&queries.CalendarView{YachtID: yachtID, From: "2024-06-01", To: "2025-06-01", Occupied: []queries.OccupiedRange{
				{BookingID: uuid.New(), StartDate: "2024-07-01", EndDate: "2024-07-15", Status: "confirmed"},
			}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")

		var got queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Occupied, 1)
		s.Equal("confirmed", got.Occupied[0].Status)
	})

	s.Run("success: explicit window", func() {
		s.mockQueries.EXPECT().Calendar(gomock.Any(), yachtID, day(2024, 7, 1), day(2024, 7, 31)).
			Return(&queries.CalendarView{YachtID: yachtID, From: "2024-07-01", To: "2024-07-31"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2024-07-01&to=2024-07-31", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 422 on a malformed bound", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}
