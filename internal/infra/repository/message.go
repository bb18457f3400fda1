package repository

import (
	"context"
	"time"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/infra"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/infra/repository/converter"
	"yacht-charter/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ConversationWriteQueries interface {
	UpsertConversation(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertConversationParams) (pgquery.Conversation, error)
	TouchConversation(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
}

type ConversationRepository struct {
	queries ConversationWriteQueries
	db      pgquery.DBTX
}

func NewConversationRepository(queries ConversationWriteQueries, db pgquery.DBTX) *ConversationRepository {
	return &ConversationRepository{
		queries: queries,
		db:      db,
	}
}

// Open leans on the unique pair constraint, so two users starting a thread
// with each other at once still end up sharing one conversation.
func (r *ConversationRepository) Open(ctx context.Context, c *message.Conversation) (*message.Conversation, error) {
	row, err := r.queries.UpsertConversation(ctx, r.db, converter.ConversationToUpsertParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to open conversation", err)
	}
	return converter.ConversationFromRow(row), nil
}

func (r *ConversationRepository) Touch(ctx context.Context, c *message.Conversation) error {
	n, err := r.queries.TouchConversation(ctx, r.db, c.ID(), pgconv.TimeToPgtype(c.UpdatedAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to touch conversation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("conversation not found", nil, infra.KindNotFound)
	}
	return nil
}

type MessageWriteQueries interface {
	CreateMessage(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateMessageParams) error
	MarkMessageRead(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error)
	MarkConversationRead(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkConversationReadParams) (int64, error)
	DeleteMessage(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
	db      pgquery.DBTX
}

func NewMessageRepository(queries MessageWriteQueries, db pgquery.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *message.Message) error {
	if err := r.queries.CreateMessage(ctx, r.db, converter.MessageToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create message", err)
	}
	return nil
}

// MarkRead is idempotent: a message someone else already stamped is left as is.
func (r *MessageRepository) MarkRead(ctx context.Context, m *message.Message) error {
	if m.ReadAt() == nil {
		return nil
	}
	if _, err := r.queries.MarkMessageRead(ctx, r.db, m.ID(), pgconv.TimeToPgtype(*m.ReadAt())); err != nil {
		return infra.WrapRepoErr("failed to mark message read", err)
	}
	return nil
}

func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, readerID uuid.UUID, at time.Time) (int64, error) {
	n, err := r.queries.MarkConversationRead(ctx, r.db, pgquery.MarkConversationReadParams{
		ConversationID: conversationID,
		ReaderID:       readerID,
		ReadAt:         pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark conversation read", err)
	}
	return n, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteMessage(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete message", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("message not found", nil, infra.KindNotFound)
	}
	return nil
}
