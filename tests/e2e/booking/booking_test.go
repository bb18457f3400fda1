//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"yacht-charter/internal/domain/calendar"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/authtest"
	"yacht-charter/tests/common/dbtest"
	"yacht-charter/tests/common/httptest"
	"yacht-charter/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL    = "/api/bookings"
	bookingURL     = "/api/bookings/%s"
	transitionURL  = "/api/bookings/%s/%s"
	yachtPeriods   = "/api/yachts/%s/pricing-periods"
	yachtQuoteURL  = "/api/yachts/%s/quote?start_date=%s&end_date=%s"
	yachtCalendar  = "/api/yachts/%s/calendar?from=%s&to=%s"
	idempotencyHdr = "Idempotency-Key"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	ownerID    uuid.UUID
	clientID   uuid.UUID
	yachtID    uuid.UUID
	ownerTok   string
	clientTok  string
	start, end string
}

// seed creates an owner with a priced yacht and a client, and picks a one
// week stay a month from now.
func (s *BookingSuite) seed() fixture {
	t := s.T()
	f := fixture{
		ownerID:  dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleOwner)),
		clientID: dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient)),
	}
	f.yachtID = dbtest.CreateTestYacht(t, s.DB, f.ownerID, "Blue Horizon")

	today := calendar.Day(time.Now().UTC())
	dbtest.CreateTestPricingPeriod(t, s.DB, f.yachtID,
		calendar.FormatDate(today), calendar.FormatDate(calendar.AddDays(today, 365)), "2000.00")

	f.start = calendar.FormatDate(calendar.AddDays(today, 30))
	f.end = calendar.FormatDate(calendar.AddDays(today, 37))
	f.ownerTok = s.jwt.GenerateToken(t, f.ownerID, user.RoleOwner)
	f.clientTok = s.jwt.GenerateToken(t, f.clientID, user.RoleClient)
	return f
}

func (s *BookingSuite) createBooking(f fixture, token string, headers map[string]string) *response.BookingResponse {
	t := s.T()
	body := map[string]any{"yacht_id": f.yachtID, "start_date": f.start, "end_date": f.end, "notes": "Family trip"}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, token, headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &created)
	return &created
}

// =============================================================================
// TestLifecycle - create, confirm, complete and review one booking
// =============================================================================

func (s *BookingSuite) TestLifecycle() {
	s.Run("Normal case: booking moves from pending to completed", func() {
		t := s.T()
		f := s.seed()

		created := s.createBooking(f, f.clientTok, nil)

		want := &response.BookingResponse{
			YachtID:        f.yachtID,
			YachtTitle:     "Blue Horizon",
			YachtOwnerID:   f.ownerID,
			RequesterID:    f.clientID,
			RequesterName:  "client",
			RequesterEmail: "client@example.com",
			StartDate:      f.start,
			EndDate:        f.end,
			TotalPrice:     "2000.00",
			Status:         "pending",
		}
		opts := cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "Notes", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, created, opts); diff != "" {
			t.Errorf("created booking mismatch (-want +got):\n%s", diff)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "confirm"), nil, f.clientTok)
		require.Equal(t, http.StatusForbidden, w.Code, "requester must not confirm their own booking")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "complete"), nil, f.ownerTok)
		require.Equal(t, http.StatusConflict, w.Code, "pending booking cannot be completed")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "confirm"), nil, f.ownerTok)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed response.BookingResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "complete"), nil, f.ownerTok)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		review := map[string]any{"rating": 5, "comment": "Wonderful week"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "review"), review, f.ownerTok)
		require.Equal(t, http.StatusForbidden, w.Code, "only the requester reviews")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "review"), review, f.clientTok)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "review"), review, f.clientTok)
		require.Equal(t, http.StatusConflict, w.Code, "one review per booking")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, f.clientTok)
		require.Equal(t, http.StatusOK, w.Code)
		var final response.BookingResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &final)
		require.Equal(t, "completed", final.Status)
		require.True(t, final.HasReview)
	})

	s.Run("Normal case: requester cancels and the dates free up", func() {
		t := s.T()
		f := s.seed()

		created := s.createBooking(f, f.clientTok, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "cancel"), nil, f.clientTok)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// cancelled bookings no longer block the calendar
		s.createBooking(f, f.clientTok, nil)
	})

	s.Run("Normal case: owner rejects a pending booking", func() {
		t := s.T()
		f := s.seed()

		created := s.createBooking(f, f.clientTok, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID, "reject"), nil, f.ownerTok)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var rejected response.BookingResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &rejected)
		require.Equal(t, "cancelled", rejected.Status)
	})
}

// =============================================================================
// TestCreateBooking - availability, validation and idempotency
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Error case: overlapping stay is rejected", func() {
		t := s.T()
		f := s.seed()
		s.createBooking(f, f.clientTok, nil)

		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleClient))
		otherTok := s.jwt.GenerateToken(t, otherID, user.RoleClient)

		body := map[string]any{"yacht_id": f.yachtID, "start_date": f.start, "end_date": f.end}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, otherTok)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("Error case: stay shorter than a week", func() {
		t := s.T()
		f := s.seed()

		today := calendar.Day(time.Now().UTC())
		body := map[string]any{
			"yacht_id":   f.yachtID,
			"start_date": calendar.FormatDate(calendar.AddDays(today, 10)),
			"end_date":   calendar.FormatDate(calendar.AddDays(today, 13)),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.clientTok)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown yacht", func() {
		t := s.T()
		f := s.seed()

		body := map[string]any{"yacht_id": uuid.New(), "start_date": f.start, "end_date": f.end}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, f.clientTok)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: repeated Idempotency-Key replays the first booking", func() {
		t := s.T()
		f := s.seed()
		headers := map[string]string{idempotencyHdr: uuid.NewString()}

		first := s.createBooking(f, f.clientTok, headers)

		body := map[string]any{"yacht_id": f.yachtID, "start_date": f.start, "end_date": f.end, "notes": "Family trip"}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, f.clientTok, headers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Idempotent-Replayed": "true"})

		var replayed response.BookingResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &replayed)
		require.Equal(t, first.ID, replayed.ID)

		body["notes"] = "Different request"
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, f.clientTok, headers)
		require.Equal(t, http.StatusConflict, w.Code, "key reuse with another payload")
	})

	s.Run("Auth test - Unauthorized without token", func() {
		t := s.T()
		f := s.seed()

		body := map[string]any{"yacht_id": f.yachtID, "start_date": f.start, "end_date": f.end}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPricing - quote and calendar reflect periods and bookings
// =============================================================================

func (s *BookingSuite) TestPricing() {
	s.Run("Normal case: quote and calendar", func() {
		t := s.T()
		f := s.seed()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(yachtQuoteURL, f.yachtID, f.start, f.end), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var quote queries.QuoteView
		_ = httptest.DecodeResponseBody(t, w.Body, &quote)
		require.Equal(t, 1, quote.Weeks)
		require.Equal(t, "2000.00", quote.TotalPrice)

		created := s.createBooking(f, f.clientTok, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(yachtCalendar, f.yachtID, f.start, f.end), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cal queries.CalendarView
		_ = httptest.DecodeResponseBody(t, w.Body, &cal)
		require.Len(t, cal.Occupied, 1)
		require.Equal(t, created.ID, cal.Occupied[0].BookingID)
	})

	s.Run("Error case: client cannot add periods to another owner's yacht", func() {
		t := s.T()
		f := s.seed()

		body := map[string]any{"start_date": f.start, "end_date": f.end, "price_per_week": "1500.00"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(yachtPeriods, f.yachtID), body, f.clientTok)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(yachtPeriods, f.yachtID), body, f.ownerTok)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestOwnerPromotion - listing a first yacht turns a client into an owner
// =============================================================================

func (s *BookingSuite) TestOwnerPromotion() {
	s.Run("Normal case: client becomes owner", func() {
		t := s.T()
		clientID := dbtest.CreateTestUser(t, s.DB, "skipper@example.com", string(user.RoleClient))
		token := s.jwt.GenerateToken(t, clientID, user.RoleClient)

		body := map[string]any{
			"title":       "Sea Breeze",
			"description": "Fast catamaran",
			"type":        "catamaran",
			"capacity":    10,
			"location":    "Athens",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/yachts", body, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// the token still says client; the stored role wins
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var me response.UserResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "owner", me.Role)
	})
}
