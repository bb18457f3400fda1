//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/middleware"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/pkg/jwt"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/httptest"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	users  *queriesmock.MockUserQueries
	jwt    *jwt.Service
	router *gin.Engine
	seen   policy.Actor
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.users = queriesmock.NewMockUserQueries(s.ctrl)
	s.jwt = jwt.NewService("middleware-test-secret", time.Hour)

	mw := middleware.NewAuthMiddleware(s.jwt, s.users, policy.NewStaticResolver(policy.DefaultRoleCapabilities()))
	record := func(c *gin.Context) {
		s.seen, _ = middleware.GetActor(c)
		c.Status(http.StatusNoContent)
	}

	s.seen = policy.Actor{}
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	s.router.GET("/me", mw.RequireAuth(), record)
	s.router.DELETE("/bookings/:id", mw.RequireAuth(), mw.RequireCapability(policy.CapViewAllBookings), record)
	s.router.GET("/misconfigured", mw.RequireCapability(policy.CapViewYachts), record)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(id uuid.UUID, role user.Role) string {
	token, err := s.jwt.GenerateToken(id, role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("stored role wins over the token claim", func() {
		id := uuid.New()
		s.users.EXPECT().GetCurrentUser(gomock.Any(), id).
			Return(&queries.UserView{ID: id, Name: "Ana", Email: "ana@example.com", Role: "owner"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token(id, user.RoleClient))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(id, s.seen.ID())
		s.Equal(user.RoleOwner, s.seen.Role())
		s.True(s.seen.HasCapability(policy.CapManageOwnYachtPricing))
	})

	s.Run("missing header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("token signed elsewhere", func() {
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New(), user.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("deleted user", func() {
		id := uuid.New()
		s.users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, user.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token(id, user.RoleClient))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("lookup failure is a server error", func() {
		id := uuid.New()
		s.users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, errs.New("pool exhausted"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token(id, user.RoleClient))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireCapability() {
	path := "/bookings/" + uuid.New().String()

	s.Run("admin passes", func() {
		id := uuid.New()
		s.users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(&queries.UserView{ID: id, Role: "admin"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, s.token(id, user.RoleAdmin))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("owner is stopped before the handler", func() {
		s.seen = policy.Actor{}
		id := uuid.New()
		s.users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(&queries.UserView{ID: id, Role: "owner"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, s.token(id, user.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
		s.Equal(uuid.Nil, s.seen.ID())
	})

	s.Run("without RequireAuth in front", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
