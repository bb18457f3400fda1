//go:build unit || e2e

package builder

import (
	"time"

	"yacht-charter/internal/domain/message"

	"github.com/google/uuid"
)

type ConversationBuilder struct {
	ID        uuid.UUID
	UserA     uuid.UUID
	UserB     uuid.UUID
	CreatedAt time.Time
}

func NewConversationBuilder() *ConversationBuilder {
	return &ConversationBuilder{
		ID:        uuid.New(),
		UserA:     uuid.New(),
		UserB:     uuid.New(),
		CreatedAt: DefaultNow.Add(-time.Hour),
	}
}

func (c *ConversationBuilder) Between(a, b uuid.UUID) *ConversationBuilder {
	c.UserA, c.UserB = a, b
	return c
}

func (c *ConversationBuilder) BuildReconstructed() *message.Conversation {
	one, two := message.OrderedPair(c.UserA, c.UserB)
	return message.ReconstructConversation(c.ID, one, two, c.CreatedAt, c.CreatedAt)
}

type MessageBuilder struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
	ReadAt         *time.Time
	CreatedAt      time.Time
}

func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		Body:           "Is the boat available in July?",
		CreatedAt:      DefaultNow.Add(-time.Minute),
	}
}

func (m *MessageBuilder) In(c *message.Conversation) *MessageBuilder {
	m.ConversationID = c.ID()
	return m
}

func (m *MessageBuilder) From(senderID uuid.UUID) *MessageBuilder {
	m.SenderID = senderID
	return m
}

func (m *MessageBuilder) Read(at time.Time) *MessageBuilder {
	m.ReadAt = &at
	return m
}

func (m *MessageBuilder) BuildReconstructed() *message.Message {
	return message.ReconstructMessage(m.ID, m.ConversationID, m.SenderID, m.Body, m.ReadAt, m.CreatedAt)
}
