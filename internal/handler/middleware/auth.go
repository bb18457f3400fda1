package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/httperr"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/pkg/jwt"
	"yacht-charter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// UserLookup resolves the current role of a token subject. Roles change
// (a client becomes an owner on their first yacht), so the token claim is
// not trusted for it.
type UserLookup interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.UserView, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	users          UserLookup
	resolver       policy.CapabilityResolver
}

const ctxActorKey = "actor"

var (
	errTokenRequired = errs.New("access token required")
	errUnknownUser   = errs.New("token subject does not exist")
)

func NewAuthMiddleware(tokenValidator TokenValidator, users UserLookup, resolver policy.CapabilityResolver) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
		resolver:       resolver,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		u, err := m.users.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			if errs.Is(err, user.ErrUserNotFound) {
				httperr.AbortWithError(c, http.StatusUnauthorized, errUnknownUser, "Invalid or expired token", nil)
				return
			}
			httperr.Abort(c, err)
			return
		}

		role, err := user.NewRole(u.Role)
		if err != nil {
			httperr.Abort(c, errs.Wrap(err, "stored role"))
			return
		}

		c.Set(ctxActorKey, policy.NewActor(u.ID, role, m.resolver))
		c.Next()
	}
}

// RequireCapability rejects actors whose role lacks the capability outright.
// Ownership checks still happen in the use case.
func (m *AuthMiddleware) RequireCapability(capability policy.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			// should be used after RequireAuth()
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}

		if !actor.HasCapability(capability) {
			httperr.AbortWithError(c, http.StatusForbidden, policy.Denied(string(capability)), "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetActor(c *gin.Context) (policy.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return policy.Actor{}, false
	}

	actor, ok := v.(policy.Actor)
	return actor, ok
}
