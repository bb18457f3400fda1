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

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary List conversations
// @Description The caller's conversations, most recently active first, with the latest message and unread count
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ConversationSummaryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	items, next, err := h.q.ListConversations(c.Request.Context(), actor, q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, newPage(resdto.FromConversationList(items), next))
}

// @Summary Start conversation
// @Description Send a message to another user. Reuses the existing conversation between the two users if there is one.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartConversationRequest true "Start conversation request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/conversations [post]
func (h *MessageHandler) Start(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.Start(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary Show conversation
// @Description A page of messages, oldest first. Opening a conversation marks the other participant's messages as read.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param limit query int false "Max messages (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ConversationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/conversations/{id} [get]
func (h *MessageHandler) Show(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conversation")
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	view, next, err := h.cmds.Open(c.Request.Context(), actor, id, q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConversationView(view, next))
}

// @Summary Send message
// @Description Post a message to a conversation the caller takes part in
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.SendMessageRequest true "Send message request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/conversations/{id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "conversation")
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.Send(c.Request.Context(), actor, id, req.Message)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessageView(view))
}

// @Summary Mark message read
// @Description Recipients mark a message as read; the sender's own call changes nothing
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "message")
	if !ok {
		return
	}
	view, err := h.cmds.MarkRead(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageView(view))
}

// @Summary Delete message
// @Description Senders may delete their own messages
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "message")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
