package message

import (
	"bytes"
	"time"

	"yacht-charter/internal/domain/shared/events"
	"yacht-charter/internal/pkg/errs"

	"github.com/google/uuid"
)

const EventSent = "message.sent"

// previewLength bounds the body excerpt carried by notifications.
const previewLength = 100

var (
	ErrSelfConversation     = errs.Validation("recipient_id", "cannot start a conversation with yourself")
	ErrUnknownRecipient     = errs.Validation("recipient_id", "recipient does not exist")
	ErrNotParticipant       = errs.Mark(errs.New("user is not a participant of this conversation"), errs.ErrForbidden)
	ErrConversationNotFound = errs.Mark(errs.New("conversation not found"), errs.ErrNotFound)
	ErrMessageNotFound      = errs.Mark(errs.New("message not found"), errs.ErrNotFound)
)

// Conversation is the single thread between two users. The pair is stored
// ordered, so (a, b) and (b, a) name the same conversation.
type Conversation struct {
	id             uuid.UUID
	participantOne uuid.UUID
	participantTwo uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

// OrderedPair sorts two user ids byte-wise, matching how postgres orders uuid.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

func NewConversation(a, b uuid.UUID, now time.Time) (*Conversation, error) {
	if a == b {
		return nil, ErrSelfConversation
	}
	one, two := OrderedPair(a, b)
	return &Conversation{
		id:             uuid.New(),
		participantOne: one,
		participantTwo: two,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructConversation(id, participantOne, participantTwo uuid.UUID, createdAt, updatedAt time.Time) *Conversation {
	return &Conversation{
		id:             id,
		participantOne: participantOne,
		participantTwo: participantTwo,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Conversation) Includes(userID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == c.participantOne || userID == c.participantTwo)
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case c.participantOne:
		return c.participantTwo, true
	case c.participantTwo:
		return c.participantOne, true
	}
	return uuid.Nil, false
}

// Post appends a message from sender and bumps the conversation so it sorts
// first in both participants' inboxes.
func (c *Conversation) Post(sender uuid.UUID, text string, now time.Time) (*Message, error) {
	recipient, ok := c.Other(sender)
	if !ok {
		return nil, ErrNotParticipant
	}
	body, err := NewBody(text)
	if err != nil {
		return nil, err
	}

	m := &Message{
		id:             uuid.New(),
		conversationID: c.id,
		senderID:       sender,
		body:           body,
		createdAt:      now,
	}
	c.updatedAt = now
	m.Record(Sent{
		BaseEvent:      events.NewBaseEvent(EventSent, m.id, now),
		MessageID:      m.id,
		ConversationID: c.id,
		SenderID:       sender,
		RecipientID:    recipient,
		Preview:        body.Preview(previewLength),
	})
	return m, nil
}

func (c *Conversation) ID() uuid.UUID             { return c.id }
func (c *Conversation) ParticipantOne() uuid.UUID { return c.participantOne }
func (c *Conversation) ParticipantTwo() uuid.UUID { return c.participantTwo }
func (c *Conversation) CreatedAt() time.Time      { return c.createdAt }
func (c *Conversation) UpdatedAt() time.Time      { return c.updatedAt }

type Message struct {
	id             uuid.UUID
	conversationID uuid.UUID
	senderID       uuid.UUID
	body           Body
	readAt         *time.Time
	createdAt      time.Time

	events.EventRecorder
}

// Sent is recorded for every posted message and addressed to the participant
// who did not write it.
type Sent struct {
	events.BaseEvent
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	Preview        string    `json:"preview"`
}

func (e Sent) Recipient(p events.Party) (uuid.UUID, bool) {
	if p == events.PartyRecipient {
		return e.RecipientID, e.RecipientID != uuid.Nil
	}
	return uuid.Nil, false
}

func ReconstructMessage(id, conversationID, senderID uuid.UUID, body string, readAt *time.Time, createdAt time.Time) *Message {
	return &Message{
		id:             id,
		conversationID: conversationID,
		senderID:       senderID,
		body:           Body{text: body},
		readAt:         readAt,
		createdAt:      createdAt,
	}
}

// MarkRead records that reader has seen the message. Only the receiving
// participant can mark it, and only once; it reports whether anything changed.
func (m *Message) MarkRead(reader uuid.UUID, now time.Time) bool {
	if reader == m.senderID || m.readAt != nil {
		return false
	}
	t := now
	m.readAt = &t
	return true
}

func (m *Message) ID() uuid.UUID             { return m.id }
func (m *Message) ConversationID() uuid.UUID { return m.conversationID }
func (m *Message) SenderID() uuid.UUID       { return m.senderID }
func (m *Message) Body() Body                { return m.body }
func (m *Message) ReadAt() *time.Time        { return m.readAt }
func (m *Message) IsRead() bool              { return m.readAt != nil }
func (m *Message) CreatedAt() time.Time      { return m.createdAt }
