package commands

import (
	"context"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/internal/usecase/shared"

	"github.com/google/uuid"
)

type StartConversationInput struct {
	RecipientID uuid.UUID
	Body        string
}

type MessageCommands interface {
	// Start posts the first message to recipient, reusing the pair's
	// conversation when one already exists.
	Start(ctx context.Context, actor policy.Actor, in StartConversationInput) (*queries.MessageView, error)
	Send(ctx context.Context, actor policy.Actor, conversationID uuid.UUID, body string) (*queries.MessageView, error)
	// Open returns a page of the conversation and marks everything the other
	// participant sent as read.
	Open(ctx context.Context, actor policy.Actor, conversationID uuid.UUID, cursor *queries.Cursor, limit int) (*queries.ConversationView, *queries.Cursor, error)
	MarkRead(ctx context.Context, actor policy.Actor, messageID uuid.UUID) (*queries.MessageView, error)
	Delete(ctx context.Context, actor policy.Actor, messageID uuid.UUID) error
}

type messageUseCaseImpl struct {
	uow        shared.UnitOfWork
	dispatcher NotificationDispatcher
	messages   queries.MessageQueries
	clock      clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, dispatcher NotificationDispatcher, messages queries.MessageQueries, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, dispatcher: dispatcher, messages: messages, clock: clk}
}

func (uc *messageUseCaseImpl) Start(ctx context.Context, actor policy.Actor, in StartConversationInput) (*queries.MessageView, error) {
	if !policy.CanStartConversation(actor) {
		return nil, policy.Denied("send message")
	}
	var messageID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, in.RecipientID); err != nil {
			if errs.Is(err, user.ErrUserNotFound) {
				return message.ErrUnknownRecipient
			}
			return err
		}
		now := uc.clock.Now()
		c, err := message.NewConversation(actor.ID(), in.RecipientID, now)
		if err != nil {
			return err
		}
		c, err = tx.Conversations().Open(ctx, c)
		if err != nil {
			return err
		}
		m, err := uc.post(ctx, tx, actor, c, in.Body)
		if err != nil {
			return err
		}
		messageID = m.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.messages.GetMessageSystem(ctx, messageID)
}

func (uc *messageUseCaseImpl) Send(ctx context.Context, actor policy.Actor, conversationID uuid.UUID, body string) (*queries.MessageView, error) {
	var messageID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().ConversationByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if !policy.CanSendMessage(actor, c) {
			return policy.Denied("send message")
		}
		m, err := uc.post(ctx, tx, actor, c, body)
		if err != nil {
			return err
		}
		messageID = m.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.messages.GetMessageSystem(ctx, messageID)
}

func (uc *messageUseCaseImpl) post(ctx context.Context, tx shared.Tx, actor policy.Actor, c *message.Conversation, body string) (*message.Message, error) {
	m, err := c.Post(actor.ID(), body, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := tx.Conversations().Touch(ctx, c); err != nil {
		return nil, err
	}
	if err := tx.Messages().Create(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.dispatcher.Dispatch(ctx, tx.Notifications(), m.PullEvents()); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *messageUseCaseImpl) Open(ctx context.Context, actor policy.Actor, conversationID uuid.UUID, cursor *queries.Cursor, limit int) (*queries.ConversationView, *queries.Cursor, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().ConversationByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if !policy.CanViewConversation(actor, c) {
			return policy.Denied("view conversation")
		}
		_, err = tx.Messages().MarkConversationRead(ctx, c.ID(), actor.ID(), uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return uc.messages.GetConversationSystem(ctx, conversationID, cursor, limit)
}

func (uc *messageUseCaseImpl) MarkRead(ctx context.Context, actor policy.Actor, messageID uuid.UUID) (*queries.MessageView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Reads().MessageByID(ctx, messageID)
		if err != nil {
			return err
		}
		c, err := tx.Reads().ConversationByID(ctx, m.ConversationID())
		if err != nil {
			return err
		}
		if !policy.CanViewConversation(actor, c) {
			return policy.Denied("read message")
		}
		if !m.MarkRead(actor.ID(), uc.clock.Now()) {
			return nil
		}
		return tx.Messages().MarkRead(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return uc.messages.GetMessageSystem(ctx, messageID)
}

func (uc *messageUseCaseImpl) Delete(ctx context.Context, actor policy.Actor, messageID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Reads().MessageByID(ctx, messageID)
		if err != nil {
			return err
		}
		if !policy.CanDeleteMessage(actor, m) {
			return policy.Denied("delete message")
		}
		return tx.Messages().Delete(ctx, messageID)
	})
}
