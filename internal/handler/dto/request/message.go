package request

import (
	"yacht-charter/internal/usecase/commands"

	"github.com/google/uuid"
)

type StartConversationRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" binding:"required"`
	Message     string    `json:"message"`
}

func (r StartConversationRequest) ToInput() commands.StartConversationInput {
	return commands.StartConversationInput{RecipientID: r.RecipientID, Body: r.Message}
}

type SendMessageRequest struct {
	Message string `json:"message"`
}
