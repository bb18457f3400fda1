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

type PricingHandler struct {
	cmds commands.PricingCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary List pricing periods
// @Description Seasonal weekly prices of a yacht ordered by start date
// @Tags pricing
// @Produce json
// @Param id path string true "Yacht ID"
// @Success 200 {array} resdto.PricingPeriodResponse
// @Failure 404 {object} httperr.Response
// @Router /api/yachts/{id}/pricing-periods [get]
func (h *PricingHandler) ListPeriods(c *gin.Context) {
	yachtID, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	items, err := h.q.ListPeriods(c.Request.Context(), yachtID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingPeriodList(items))
}

// @Summary Create pricing period
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Yacht ID"
// @Param request body reqdto.PricingPeriodRequest true "Period"
// @Success 201 {object} resdto.PricingPeriodResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts/{id}/pricing-periods [post]
func (h *PricingHandler) CreatePeriod(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	yachtID, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	var req reqdto.PricingPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.CreatePeriod(c.Request.Context(), actor, yachtID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPricingPeriodView(view))
}

// @Summary Update pricing period
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pricing period ID"
// @Param request body reqdto.PricingPeriodRequest true "Period"
// @Success 200 {object} resdto.PricingPeriodResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/pricing-periods/{id} [put]
func (h *PricingHandler) UpdatePeriod(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	periodID, ok := pathID(c, "id", "pricing period")
	if !ok {
		return
	}
	var req reqdto.PricingPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.UpdatePeriod(c.Request.Context(), actor, periodID, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingPeriodView(view))
}

// @Summary Delete pricing period
// @Tags pricing
// @Security BearerAuth
// @Param id path string true "Pricing period ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pricing-periods/{id} [delete]
func (h *PricingHandler) DeletePeriod(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	periodID, ok := pathID(c, "id", "pricing period")
	if !ok {
		return
	}
	if err := h.cmds.DeletePeriod(c.Request.Context(), actor, periodID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Quote a stay
// @Description Price a stay with the first-match resolver without booking it
// @Tags pricing
// @Produce json
// @Param id path string true "Yacht ID"
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts/{id}/quote [get]
func (h *PricingHandler) Quote(c *gin.Context) {
	yachtID, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "start_date and end_date are required")
		return
	}
	start, end, err := q.Dates()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), yachtID, start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Occupancy calendar
// @Description Date ranges held by pending or confirmed bookings
// @Tags pricing
// @Produce json
// @Param id path string true "Yacht ID"
// @Param from query string false "YYYY-MM-DD, defaults to today"
// @Param to query string false "YYYY-MM-DD, defaults to from + 365 days"
// @Success 200 {object} queries.CalendarView
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/yachts/{id}/calendar [get]
func (h *PricingHandler) Calendar(c *gin.Context) {
	yachtID, ok := pathID(c, "id", "yacht")
	if !ok {
		return
	}
	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	from, to, err := q.Dates()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Calendar(c.Request.Context(), yachtID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
