package api

import (
	"net/http"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/handler/httperr"
	"yacht-charter/internal/handler/middleware"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("no authenticated actor in context")

// actorFrom fetches the actor placed by RequireAuth. Missing means the route
// was registered without the middleware.
func actorFrom(c *gin.Context) (policy.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return policy.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+label+" id")
		return uuid.Nil, false
	}
	return id, true
}

func newPage[T any](items []T, next *queries.Cursor) response.Page[T] {
	p := response.Page[T]{Items: items}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}
