package response

import (
	"yacht-charter/internal/usecase/queries"
)

type ParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MessageResponse struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Body           string `json:"body"`
	ReadAt         *int64 `json:"read_at,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	resp := &MessageResponse{
		ID:             v.ID.String(),
		ConversationID: v.ConversationID.String(),
		SenderID:       v.SenderID.String(),
		Body:           v.Body,
		CreatedAt:      v.CreatedAt.Unix(),
	}
	if v.ReadAt != nil {
		at := v.ReadAt.Unix()
		resp.ReadAt = &at
	}
	return resp
}

type ConversationSummaryResponse struct {
	ID          string              `json:"id"`
	With        ParticipantResponse `json:"with"`
	LastMessage *MessageResponse    `json:"last_message,omitempty"`
	UnreadCount int64               `json:"unread_count"`
	UpdatedAt   int64               `json:"updated_at"`
}

func FromConversationSummary(v *queries.ConversationSummaryView) *ConversationSummaryResponse {
	resp := &ConversationSummaryResponse{
		ID:          v.ID.String(),
		With:        ParticipantResponse{ID: v.With.ID.String(), Name: v.With.Name},
		UnreadCount: v.UnreadCount,
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
	if v.LastMessage != nil {
		resp.LastMessage = FromMessageView(v.LastMessage)
	}
	return resp
}

func FromConversationList(items []*queries.ConversationSummaryView) []*ConversationSummaryResponse {
	return copyList(items, FromConversationSummary)
}

type ConversationResponse struct {
	ID           string                `json:"id"`
	Participants []ParticipantResponse `json:"participants"`
	Messages     []*MessageResponse    `json:"messages"`
	NextCursor   string                `json:"next_cursor,omitempty"`
	CreatedAt    int64                 `json:"created_at"`
	UpdatedAt    int64                 `json:"updated_at"`
}

func FromConversationView(v *queries.ConversationView, next *queries.Cursor) *ConversationResponse {
	resp := &ConversationResponse{
		ID:           v.ID.String(),
		Participants: make([]ParticipantResponse, len(v.Participants)),
		Messages:     copyList(v.Messages, FromMessageView),
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
	for i, p := range v.Participants {
		resp.Participants[i] = ParticipantResponse{ID: p.ID.String(), Name: p.Name}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
