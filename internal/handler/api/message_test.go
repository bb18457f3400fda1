//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/handler/api"
	resdto "yacht-charter/internal/handler/dto/response"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/httptest"
	commandsmock "yacht-charter/tests/mock/commands"
	queriesmock "yacht-charter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMessageCommands
	mockQueries  *queriesmock.MockMessageQueries
	auth         *authHarness
	handler      *api.MessageHandler
}

func (s *MessageHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMessageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMessageQueries(s.mockCtrl)
	s.auth = newAuthHarness(s.mockCtrl)
	s.handler = api.NewMessageHandler(s.mockCommands, s.mockQueries)

	authed := s.auth.mw.RequireAuth()
	s.router.GET("/conversations", authed, s.handler.ListConversations)
	s.router.POST("/conversations", authed, s.handler.Start)
	s.router.GET("/conversations/:id", authed, s.handler.Show)
	s.router.POST("/conversations/:id/messages", authed, s.handler.Send)
	s.router.POST("/messages/:id/read", authed, s.handler.MarkRead)
	s.router.DELETE("/messages/:id", authed, s.handler.Delete)
}

func (s *MessageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessageHandlerSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}

func sampleMessageView(conversationID, senderID uuid.UUID) *queries.MessageView {
	return &queries.MessageView{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           "Is the boat free in July?",
		CreatedAt:      time.Date(2024, 6, 3, 18, 30, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestStart
// ================================================================================

func (s *MessageHandlerTestSuite) TestStart() {
	guestID, ownerID := uuid.New(), uuid.New()
	body := map[string]any{"recipient_id": ownerID.String(), "message": "Is the boat free in July?"}

	s.Run("success: 201 with the posted message", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		view := sampleMessageView(uuid.New(), guestID)
		s.mockCommands.EXPECT().
			Start(gomock.Any(), actorIs(guestID), commands.StartConversationInput{RecipientID: ownerID, Body: "Is the boat free in July?"}).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conversations", body, token)

		var got resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		if diff := cmp.Diff(*resdto.FromMessageView(view), got); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
		s.Nil(got.ReadAt)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "unknown recipient", err: message.ErrUnknownRecipient, expectCode: http.StatusUnprocessableEntity, expectMsg: "Validation failed"},
		{name: "body too long", err: message.ErrBodyTooLong, expectCode: http.StatusUnprocessableEntity, expectMsg: "Validation failed"},
		{name: "messaging yourself", err: message.ErrSelfConversation, expectCode: http.StatusUnprocessableEntity, expectMsg: "Validation failed"},
		{name: "capability missing", err: policy.Denied("send message"), expectCode: http.StatusForbidden, expectMsg: "not allowed"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			token := s.auth.login(s.T(), guestID, user.RoleClient)
			s.mockCommands.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conversations", body, token)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 without a recipient", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conversations", map[string]any{"message": "hi"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/conversations", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestListConversations
// ================================================================================

func (s *MessageHandlerTestSuite) TestListConversations() {
	userID := uuid.New()

	s.Run("success: inbox page with cursor", func() {
		token := s.auth.login(s.T(), userID, user.RoleClient)
		convID := uuid.New()
		last := sampleMessageView(convID, uuid.New())
		items := []*queries.ConversationSummaryView{{
			ID:          convID,
			With:        queries.ParticipantView{ID: last.SenderID, Name: "Skipper Sam"},
			LastMessage: last,
			UnreadCount: 2,
			UpdatedAt:   last.CreatedAt,
		}}
		s.mockQueries.EXPECT().
			ListConversations(gomock.Any(), actorIs(userID), &queries.Cursor{After: "abc"}, 5).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conversations?limit=5&after=abc", nil, token)

		var got resdto.Page[resdto.ConversationSummaryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Items, 1)
		s.Equal("Skipper Sam", got.Items[0].With.Name)
		s.Equal(int64(2), got.Items[0].UnreadCount)
		s.Require().NotNil(got.Items[0].LastMessage)
		s.Equal(last.Body, got.Items[0].LastMessage.Body)
		s.Equal("next", got.NextCursor)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conversations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestShow
// ================================================================================

func (s *MessageHandlerTestSuite) TestShow() {
	guestID, ownerID := uuid.New(), uuid.New()
	convID := uuid.New()
	url := "/conversations/" + convID.String()

	s.Run("success: participants and messages", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		read := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
		msg := sampleMessageView(convID, ownerID)
		msg.ReadAt = &read
		view := &queries.ConversationView{
			ID: convID,
			Participants: []queries.ParticipantView{
				{ID: guestID, Name: "Jane"},
				{ID: ownerID, Name: "Skipper Sam"},
			},
			Messages: []*queries.MessageView{msg},
		}
		s.mockCommands.EXPECT().Open(gomock.Any(), actorIs(guestID), convID, nil, 20).Return(view, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var got resdto.ConversationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.Participants, 2)
		s.Require().Len(got.Messages, 1)
		s.Require().NotNil(got.Messages[0].ReadAt)
		s.Equal(read.Unix(), *got.Messages[0].ReadAt)
		s.Empty(got.NextCursor)
	})

	s.Run("error: 403 for outsiders", func() {
		token := s.auth.login(s.T(), uuid.New(), user.RoleAdmin)
		s.mockCommands.EXPECT().Open(gomock.Any(), gomock.Any(), convID, gomock.Any(), gomock.Any()).
			Return(nil, nil, policy.Denied("view conversation"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to view conversation")
	})

	s.Run("error: 404 when missing", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		s.mockCommands.EXPECT().Open(gomock.Any(), gomock.Any(), convID, gomock.Any(), gomock.Any()).
			Return(nil, nil, message.ErrConversationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "conversation not found")
	})

	s.Run("error: 400 on malformed id", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/conversations/nope", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid conversation id")
	})
}

// ================================================================================
// TestSend / TestMarkRead / TestDelete
// ================================================================================

func (s *MessageHandlerTestSuite) TestSend() {
	ownerID := uuid.New()
	convID := uuid.New()
	url := "/conversations/" + convID.String() + "/messages"

	s.Run("success: 201", func() {
		token := s.auth.login(s.T(), ownerID, user.RoleOwner)
		view := sampleMessageView(convID, ownerID)
		s.mockCommands.EXPECT().Send(gomock.Any(), actorIs(ownerID), convID, "Yes, it is free").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"message": "Yes, it is free"}, token)

		var got resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(convID.String(), got.ConversationID)
	})

	s.Run("error: 403 for outsiders", func() {
		token := s.auth.login(s.T(), uuid.New(), user.RoleClient)
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), convID, gomock.Any()).Return(nil, policy.Denied("send message"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"message": "hi"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to send message")
	})

	s.Run("error: 422 on empty message", func() {
		token := s.auth.login(s.T(), ownerID, user.RoleOwner)
		s.mockCommands.EXPECT().Send(gomock.Any(), gomock.Any(), convID, "").Return(nil, message.ErrEmptyBody)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *MessageHandlerTestSuite) TestMarkRead() {
	guestID := uuid.New()
	view := sampleMessageView(uuid.New(), uuid.New())
	url := "/messages/" + view.ID.String() + "/read"

	s.Run("success: 200 with read time", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		read := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
		marked := *view
		marked.ReadAt = &read
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), actorIs(guestID), view.ID).Return(&marked, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, token)

		var got resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().NotNil(got.ReadAt)
		s.Equal(read.Unix(), *got.ReadAt)
	})

	s.Run("error: 404 when missing", func() {
		token := s.auth.login(s.T(), guestID, user.RoleClient)
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), gomock.Any(), view.ID).Return(nil, message.ErrMessageNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "message not found")
	})
}

func (s *MessageHandlerTestSuite) TestDelete() {
	senderID := uuid.New()
	id := uuid.New()
	url := "/messages/" + id.String()

	s.Run("success: 204", func() {
		token := s.auth.login(s.T(), senderID, user.RoleClient)
		s.mockCommands.EXPECT().Delete(gomock.Any(), actorIs(senderID), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when not the sender", func() {
		token := s.auth.login(s.T(), uuid.New(), user.RoleClient)
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(policy.Denied("delete message"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed to delete message")
	})
}
