//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"yacht-charter/internal/domain/booking"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/api"
	resdto "yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/httptest"
	"yacht-charter/tests/common/testutil"
	commandsmock "yacht-charter/tests/mock/commands"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	auth         *authHarness
	clientID     uuid.UUID
	token        string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.auth = newAuthHarness(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.clientID = uuid.New()
	s.token = s.auth.login(s.T(), s.clientID, user.RoleClient)

	g := s.router.Group("/bookings")
	g.Use(s.auth.mw.RequireAuth())
	g.POST("", s.auth.mw.RequireCapability(policy.CapCreateBooking), h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/confirm", h.Confirm)
	g.POST("/:id/reject", h.Reject)
	g.POST("/:id/cancel", h.Cancel)
	g.POST("/:id/complete", h.Complete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingView(status booking.Status) *queries.BookingView {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:             uuid.New(),
		YachtID:        uuid.New(),
		YachtTitle:     "Blue Horizon",
		YachtOwnerID:   uuid.New(),
		RequesterID:    uuid.New(),
		RequesterName:  "Jane",
		RequesterEmail: "jane@example.com",
		StartDate:      "2024-07-01",
		EndDate:        "2024-07-15",
		TotalPrice:     "4000.00",
		Status:         status.String(),
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	yachtID := uuid.New()
	reqBody := map[string]any{
		"yacht_id":   yachtID.String(),
		"start_date": "2024-07-01",
		"end_date":   "2024-07-15",
		"notes":      "  Family trip  ",
	}
	wantInput := commands.CreateBookingInput{
		YachtID:   yachtID,
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Notes:     "Family trip",
	}

	s.Run("success: 201 for a new booking", func() {
		view := sampleBookingView(booking.StatusPending)
		s.mockCommands.EXPECT().Create(gomock.Any(), actorIs(s.clientID), wantInput, nil).
			Return(&commands.CreateBookingResult{Booking: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, s.token)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("pending", got.Status)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: idempotency key is forwarded and a replay answers 200", func() {
		key := uuid.New()
		view := sampleBookingView(booking.StatusPending)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), wantInput, &key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", reqBody, s.token,
			map[string]string{"Idempotency-Key": key.String()})

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 when the idempotency key is not a UUID", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", reqBody, s.token,
			map[string]string{"Idempotency-Key": "retry-1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 409 when the key was used for another payload", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), &key).
			Return(nil, commands.ErrIdempotencyKeyReused)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings", reqBody, s.token,
			map[string]string{"Idempotency-Key": key.String()})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "different request")
	})

	s.Run("error: 400 on missing required fields", func() {
		for _, field := range []string{"yacht_id", "start_date", "end_date"} {
			s.Run(field, func() {
				body := testutil.JSONBody(s.T(), reqBody, testutil.Drop(field))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.token)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 on a malformed date", func() {
		body := testutil.JSONBody(s.T(), reqBody, testutil.Set("end_date", "15/07/2024"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		httptest.AssertFieldErrors(s.T(), rec, "end_date")
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "overlap", err: booking.ErrDatesConflict, expectCode: http.StatusUnprocessableEntity},
		{name: "stay too short", err: booking.ErrStayTooShort, expectCode: http.StatusUnprocessableEntity},
		{name: "yacht unavailable", err: booking.ErrYachtUnavailable, expectCode: http.StatusConflict},
		{name: "lost race on idempotency key", err: commands.ErrIdempotencyInProgress, expectCode: http.StatusConflict},
	}
	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, s.token)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: scope and filters are parsed", func() {
		yachtID := uuid.New()
		status := booking.StatusConfirmed
		s.mockQueries.EXPECT().
			List(gomock.Any(), actorIs(s.clientID), queries.ScopeMyYachts,
				queries.BookingFilters{Status: &status, YachtID: &yachtID}, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.BookingView{sampleBookingView(status)}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?scope=my_yachts&status=confirmed&yacht_id="+yachtID.String(), nil, s.token)

		var got resdto.Page[resdto.BookingResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.Items, 1)
		s.Empty(got.NextCursor)
	})

	s.Run("error: 422 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: 403 for scope=all without admin rights", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), queries.ScopeAll, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, policy.Denied("list all bookings"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?scope=all", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := sampleBookingView(booking.StatusPending)

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actorIs(s.clientID), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.token)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.TotalPrice, got.TotalPrice)
		s.Equal(view.StartDate, got.StartDate)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/123", nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 401 with a forged token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "eyJhbGciOiJIUzI1NiJ9.e30.invalid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	cases := []struct {
		name string
		path string
		call func(ret *queries.BookingView, err error)
	}{
		{name: "confirm", path: "/confirm", call: func(ret *queries.BookingView, err error) {
			s.mockCommands.EXPECT().Confirm(gomock.Any(), actorIs(s.clientID), id).Return(ret, err)
		}},
		{name: "reject", path: "/reject", call: func(ret *queries.BookingView, err error) {
			s.mockCommands.EXPECT().Reject(gomock.Any(), actorIs(s.clientID), id).Return(ret, err)
		}},
		{name: "cancel", path: "/cancel", call: func(ret *queries.BookingView, err error) {
			s.mockCommands.EXPECT().Cancel(gomock.Any(), actorIs(s.clientID), id).Return(ret, err)
		}},
		{name: "complete", path: "/complete", call: func(ret *queries.BookingView, err error) {
			s.mockCommands.EXPECT().Complete(gomock.Any(), actorIs(s.clientID), id).Return(ret, err)
		}},
	}

	for _, tc := range cases {
		s.Run(tc.name+": 200 with the new state", func() {
			view := sampleBookingView(booking.StatusConfirmed)
			tc.call(view, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+tc.path, nil, s.token)

			var got resdto.BookingResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
			s.Equal(view.ID, got.ID)
		})

		s.Run(tc.name+": 409 from the state machine", func() {
			tc.call(nil, booking.ErrNotPending)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+tc.path, nil, s.token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "booking is not pending")
		})

		s.Run(tc.name+": 403 from the policy", func() {
			tc.call(nil, policy.Denied(tc.name+" booking"))

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+tc.path, nil, s.token)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to "+tc.name)
		})
	}
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), actorIs(s.clientID), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(booking.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}
