package api

import (
	"net/http"

	reqdto "yacht-charter/internal/handler/dto/request"
	resdto "yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/handler/httperr"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type YachtHandler struct {
	cmds commands.YachtCommands
	q    queries.YachtQueries
}

func NewYachtHandler(cmds commands.YachtCommands, q queries.YachtQueries) *YachtHandler {
	return &YachtHandler{cmds: cmds, q: q}
}

// @Summary Search yachts
// @Description Filter and sort the yacht catalogue. Keyset pagination applies to sort=latest only.
// @Tags yachts
// @Produce json
// @Param search query string false "Matches title, description or location"
// @Param type query string false "sailboat, motorboat, catamaran or yacht"
// @Param min_capacity query int false "Minimum guest capacity"
// @Param location query string false "Location substring"
// @Param status query string false "available, unavailable or under_maintenance"
// @Param sort query string false "latest (default), price_low, price_high, rating"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.YachtResponse]
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts [get]
func (h *YachtHandler) Search(c *gin.Context) {
	var q reqdto.YachtSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	filters, err := q.ToFilters()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, next, err := h.q.Search(c.Request.Context(), filters, q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(resdto.FromYachtList(items), next))
}

// @Summary Get yacht
// @Tags yachts
// @Produce json
// @Param id path string true "Yacht ID"
// @Success 200 {object} resdto.YachtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/yachts/{id} [get]
func (h *YachtHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromYachtView(view))
}

// @Summary Create yacht
// @Description List a new yacht owned by the caller. A client becomes an owner on their first yacht.
// @Tags yachts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateYachtRequest true "Yacht"
// @Success 201 {object} resdto.YachtResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts [post]
func (h *YachtHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateYachtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToDetails())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromYachtView(view))
}

// @Summary Update yacht
// @Description Change the given fields of a yacht. Owner or admin only.
// @Tags yachts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Yacht ID"
// @Param request body reqdto.UpdateYachtRequest true "Fields to change"
// @Success 200 {object} resdto.YachtResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts/{id} [put]
func (h *YachtHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	var req reqdto.UpdateYachtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToDetails(existing))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromYachtView(view))
}

// @Summary Delete yacht
// @Description Owners may delete a yacht without pending or confirmed bookings.
// @Tags yachts
// @Security BearerAuth
// @Param id path string true "Yacht ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/yachts/{id} [delete]
func (h *YachtHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List my yachts
// @Tags yachts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.YachtResponse]
// @Failure 401 {object} httperr.Response
// @Router /api/my/yachts [get]
func (h *YachtHandler) ListMine(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	items, next, err := h.q.ListByOwner(c.Request.Context(), actor.ID(), q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(resdto.FromYachtList(items), next))
}
