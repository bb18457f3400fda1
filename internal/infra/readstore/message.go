package readstore

import (
	"context"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"
	"yacht-charter/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageViewQueries interface {
	GetConversation(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Conversation, error)
	GetConversationForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Conversation, error)
	GetMessage(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Message, error)
	GetMessageForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Message, error)
	GetConversationWithParticipants(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ConversationParticipantsRow, error)
	ListConversationsForUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListConversationsForUserParams) ([]pgquery.ConversationSummaryRow, error)
	ListMessages(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMessagesParams) ([]pgquery.Message, error)
}

type MessageReadStore struct {
	queries MessageViewQueries
	db      pgquery.DBTX
}

func NewMessageReadStore(queries MessageViewQueries, db pgquery.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

// FindConversation returns the conversation with both participants named and
// no messages; callers page through those with ListMessages.
func (r *MessageReadStore) FindConversation(ctx context.Context, id uuid.UUID) (*queries.ConversationView, error) {
	row, err := r.queries.GetConversationWithParticipants(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conversation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get conversation view", err)
	}
	return &queries.ConversationView{
		ID: row.ID,
		Participants: []queries.ParticipantView{
			{ID: row.ParticipantOneID, Name: row.ParticipantOneName},
			{ID: row.ParticipantTwoID, Name: row.ParticipantTwoName},
		},
		Messages:  []*queries.MessageView{},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *MessageReadStore) FindMessage(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	row, err := r.queries.GetMessage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get message view", err)
	}
	return toMessageView(row), nil
}

func (r *MessageReadStore) ListConversations(ctx context.Context, p queries.ConversationListParams) ([]*queries.ConversationSummaryView, error) {
	params := pgquery.ListConversationsForUserParams{
		UserID: p.UserID,
		Limit:  p.Limit,
	}
	if p.After != nil {
		params.AfterUpdatedAt = pgconv.TimeToPgtype(p.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(p.After.ID)
	}

	rows, err := r.queries.ListConversationsForUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}
	result := make([]*queries.ConversationSummaryView, len(rows))
	for i, row := range rows {
		result[i] = toConversationSummaryView(row)
	}
	return result, nil
}

func (r *MessageReadStore) ListMessages(ctx context.Context, p queries.MessageListParams) ([]*queries.MessageView, error) {
	params := pgquery.ListMessagesParams{
		ConversationID: p.ConversationID,
		Limit:          p.Limit,
	}
	if p.After != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(p.After.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(p.After.ID)
	}

	rows, err := r.queries.ListMessages(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = toMessageView(row)
	}
	return result, nil
}

func (r *MessageReadStore) LoadConversation(ctx context.Context, id uuid.UUID, forUpdate bool) (*message.Conversation, error) {
	get := r.queries.GetConversation
	if forUpdate {
		get = r.queries.GetConversationForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("conversation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load conversation", err)
	}
	return converter.ConversationFromRow(row), nil
}

func (r *MessageReadStore) LoadMessage(ctx context.Context, id uuid.UUID, forUpdate bool) (*message.Message, error) {
	get := r.queries.GetMessage
	if forUpdate {
		get = r.queries.GetMessageForUpdate
	}
	row, err := get(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load message", err)
	}
	return converter.MessageFromRow(row), nil
}

func toMessageView(row pgquery.Message) *queries.MessageView {
	return &queries.MessageView{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		Body:           row.Body,
		ReadAt:         pgconv.TimePtrFromPgtype(row.ReadAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toConversationSummaryView(row pgquery.ConversationSummaryRow) *queries.ConversationSummaryView {
	v := &queries.ConversationSummaryView{
		ID:          row.ID,
		With:        queries.ParticipantView{ID: row.OtherID, Name: row.OtherName},
		UnreadCount: row.UnreadCount,
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.LastMessageID.Valid {
		v.LastMessage = &queries.MessageView{
			ID:             uuid.UUID(row.LastMessageID.Bytes),
			ConversationID: row.ID,
			SenderID:       uuid.UUID(row.LastSenderID.Bytes),
			Body:           pgconv.StringFromPgtype(row.LastBody),
			CreatedAt:      pgconv.TimeFromPgtype(row.LastCreatedAt),
		}
	}
	return v
}
