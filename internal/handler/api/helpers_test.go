//go:build unit

package api_test

import (
	"errors"
	"testing"
	"time"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/middleware"
	"yacht-charter/internal/pkg/jwt"
	"yacht-charter/internal/usecase/queries"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errUnexpected = errors.New("database is on fire")

// authHarness runs the real auth middleware against a mocked user lookup.
type authHarness struct {
	jwt   *jwt.Service
	users *queriesmock.MockUserQueries
	mw    *middleware.AuthMiddleware
}

func newAuthHarness(ctrl *gomock.Controller) *authHarness {
	svc := jwt.NewService("handler-test-secret", time.Hour)
	users := queriesmock.NewMockUserQueries(ctrl)
	resolver := policy.NewStaticResolver(policy.DefaultRoleCapabilities())
	return &authHarness{
		jwt:   svc,
		users: users,
		mw:    middleware.NewAuthMiddleware(svc, users, resolver),
	}
}

// login returns a token for a user the lookup will resolve with role.
func (h *authHarness) login(t *testing.T, id uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.jwt.GenerateToken(id, role)
	require.NoError(t, err)
	h.users.EXPECT().GetCurrentUser(gomock.Any(), id).
		Return(&queries.UserView{ID: id, Name: "tester", Email: "tester@example.com", Role: role.String()}, nil).
		AnyTimes()
	return token
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}

// actorIs matches a policy.Actor argument by id.
type actorIs uuid.UUID

func (m actorIs) Matches(x any) bool {
	a, ok := x.(policy.Actor)
	return ok && a.ID() == uuid.UUID(m)
}

func (m actorIs) String() string { return "actor " + uuid.UUID(m).String() }
