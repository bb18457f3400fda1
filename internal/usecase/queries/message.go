package queries

import (
	"context"
	"time"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/infra"

	"github.com/google/uuid"
)

type ConversationListParams struct {
	UserID uuid.UUID
	After  *Keyset
	Limit  int32
}

type MessageListParams struct {
	ConversationID uuid.UUID
	After          *Keyset
	Limit          int32
}

type MessageReadStore interface {
	FindConversation(ctx context.Context, id uuid.UUID) (*ConversationView, error)
	FindMessage(ctx context.Context, id uuid.UUID) (*MessageView, error)
	ListConversations(ctx context.Context, params ConversationListParams) ([]*ConversationSummaryView, error)
	ListMessages(ctx context.Context, params MessageListParams) ([]*MessageView, error)
}

type MessageQueries interface {
	// ListConversations is the actor's inbox, most recently active first.
	ListConversations(ctx context.Context, actor policy.Actor, cursor *Cursor, limit int) ([]*ConversationSummaryView, *Cursor, error)
	// GetConversationSystem skips authorization; commands check participation
	// before calling it.
	GetConversationSystem(ctx context.Context, id uuid.UUID, cursor *Cursor, limit int) (*ConversationView, *Cursor, error)
	GetMessageSystem(ctx context.Context, id uuid.UUID) (*MessageView, error)
}

type messageQueriesImpl struct {
	store MessageReadStore
}

func NewMessageQueries(store MessageReadStore) MessageQueries {
	return &messageQueriesImpl{store: store}
}

func (q *messageQueriesImpl) ListConversations(ctx context.Context, actor policy.Actor, cursor *Cursor, limit int) ([]*ConversationSummaryView, *Cursor, error) {
	if !actor.HasCapability(policy.CapViewOwnMessages) {
		return nil, nil, policy.Denied("list conversations")
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListConversations(ctx, ConversationListParams{
		UserID: actor.ID(),
		After:  after,
		Limit:  int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(v *ConversationSummaryView) (time.Time, uuid.UUID) { return v.UpdatedAt, v.ID })
	return items, next, nil
}

func (q *messageQueriesImpl) GetConversationSystem(ctx context.Context, id uuid.UUID, cursor *Cursor, limit int) (*ConversationView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	v, err := q.store.FindConversation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, message.ErrConversationNotFound
		}
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.store.ListMessages(ctx, MessageListParams{
		ConversationID: id,
		After:          after,
		Limit:          int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(m *MessageView) (time.Time, uuid.UUID) { return m.CreatedAt, m.ID })
	v.Messages = items
	return v, next, nil
}

func (q *messageQueriesImpl) GetMessageSystem(ctx context.Context, id uuid.UUID) (*MessageView, error) {
	v, err := q.store.FindMessage(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, message.ErrMessageNotFound
		}
		return nil, err
	}
	return v, nil
}
