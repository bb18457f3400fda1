package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const conversationColumns = `c.id, c.participant_one_id, c.participant_two_id, c.created_at, c.updated_at`

func conversationDest(c *Conversation) []any {
	return []any{&c.ID, &c.ParticipantOneID, &c.ParticipantTwoID, &c.CreatedAt, &c.UpdatedAt}
}

func scanConversation(row scanner) (Conversation, error) {
	var c Conversation
	err := row.Scan(conversationDest(&c)...)
	return c, err
}

const messageColumns = `m.id, m.conversation_id, m.sender_id, m.body, m.read_at, m.created_at`

func messageDest(m *Message) []any {
	return []any{&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.ReadAt, &m.CreatedAt}
}

func scanMessage(row scanner) (Message, error) {
	var m Message
	err := row.Scan(messageDest(&m)...)
	return m, err
}

// The no-op update on conflict makes RETURNING yield the existing row.
const upsertConversation = `
INSERT INTO conversations AS c (id, participant_one_id, participant_two_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ON CONSTRAINT conversations_pair_key
DO UPDATE SET updated_at = c.updated_at
RETURNING ` + conversationColumns

type UpsertConversationParams struct {
	ID               uuid.UUID
	ParticipantOneID uuid.UUID
	ParticipantTwoID uuid.UUID
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) UpsertConversation(ctx context.Context, db DBTX, arg UpsertConversationParams) (Conversation, error) {
	return scanConversation(db.QueryRow(ctx, upsertConversation,
		arg.ID, arg.ParticipantOneID, arg.ParticipantTwoID, arg.CreatedAt, arg.UpdatedAt,
	))
}

const getConversation = `SELECT ` + conversationColumns + ` FROM conversations c WHERE c.id = $1`

func (q *Queries) GetConversation(ctx context.Context, db DBTX, id uuid.UUID) (Conversation, error) {
	return scanConversation(db.QueryRow(ctx, getConversation, id))
}

const getConversationForUpdate = getConversation + ` FOR UPDATE`

func (q *Queries) GetConversationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Conversation, error) {
	return scanConversation(db.QueryRow(ctx, getConversationForUpdate, id))
}

const touchConversation = `UPDATE conversations SET updated_at = GREATEST(updated_at, $2) WHERE id = $1`

func (q *Queries) TouchConversation(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, touchConversation, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const createMessage = `
INSERT INTO messages (id, conversation_id, sender_id, body, read_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type CreateMessageParams struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
	ReadAt         pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateMessage(ctx context.Context, db DBTX, arg CreateMessageParams) error {
	_, err := db.Exec(ctx, createMessage, arg.ID, arg.ConversationID, arg.SenderID, arg.Body, arg.ReadAt, arg.CreatedAt)
	return err
}

const getMessage = `SELECT ` + messageColumns + ` FROM messages m WHERE m.id = $1`

func (q *Queries) GetMessage(ctx context.Context, db DBTX, id uuid.UUID) (Message, error) {
	return scanMessage(db.QueryRow(ctx, getMessage, id))
}

const getMessageForUpdate = getMessage + ` FOR UPDATE`

func (q *Queries) GetMessageForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Message, error) {
	return scanMessage(db.QueryRow(ctx, getMessageForUpdate, id))
}

const markMessageRead = `UPDATE messages SET read_at = $2 WHERE id = $1 AND read_at IS NULL`

func (q *Queries) MarkMessageRead(ctx context.Context, db DBTX, id uuid.UUID, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, markMessageRead, id, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markConversationRead = `
UPDATE messages SET read_at = $3
WHERE conversation_id = $1 AND sender_id <> $2 AND read_at IS NULL`

type MarkConversationReadParams struct {
	ConversationID uuid.UUID
	ReaderID       uuid.UUID
	ReadAt         pgtype.Timestamptz
}

func (q *Queries) MarkConversationRead(ctx context.Context, db DBTX, arg MarkConversationReadParams) (int64, error) {
	tag, err := db.Exec(ctx, markConversationRead, arg.ConversationID, arg.ReaderID, arg.ReadAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteMessage = `DELETE FROM messages WHERE id = $1`

func (q *Queries) DeleteMessage(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteMessage, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ConversationSummaryRow is one inbox line: the conversation seen from one
// participant, with the other side, the latest message and the unread count.
type ConversationSummaryRow struct {
	Conversation
	OtherID       uuid.UUID
	OtherName     string
	LastMessageID pgtype.UUID
	LastSenderID  pgtype.UUID
	LastBody      pgtype.Text
	LastCreatedAt pgtype.Timestamptz
	UnreadCount   int64
}

func scanConversationSummaryRow(row scanner) (ConversationSummaryRow, error) {
	var r ConversationSummaryRow
	err := row.Scan(append(conversationDest(&r.Conversation),
		&r.OtherID, &r.OtherName,
		&r.LastMessageID, &r.LastSenderID, &r.LastBody, &r.LastCreatedAt,
		&r.UnreadCount,
	)...)
	return r, err
}

const listConversationsForUser = `
SELECT ` + conversationColumns + `, u.id, u.name,
       lm.id, lm.sender_id, lm.body, lm.created_at,
       (SELECT count(*) FROM messages um
         WHERE um.conversation_id = c.id AND um.sender_id <> $1 AND um.read_at IS NULL)
FROM conversations c
JOIN users u ON u.id = CASE WHEN c.participant_one_id = $1 THEN c.participant_two_id ELSE c.participant_one_id END
LEFT JOIN LATERAL (
    SELECT m.id, m.sender_id, m.body, m.created_at
    FROM messages m
    WHERE m.conversation_id = c.id
    ORDER BY m.created_at DESC, m.id DESC
    LIMIT 1
) lm ON true
WHERE (c.participant_one_id = $1 OR c.participant_two_id = $1)
  AND ($2::timestamptz IS NULL OR (c.updated_at, c.id) < ($2, $3::uuid))
ORDER BY c.updated_at DESC, c.id DESC
LIMIT $4`

type ListConversationsForUserParams struct {
	UserID         uuid.UUID
	AfterUpdatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListConversationsForUser(ctx context.Context, db DBTX, arg ListConversationsForUserParams) ([]ConversationSummaryRow, error) {
	rows, err := db.Query(ctx, listConversationsForUser, arg.UserID, arg.AfterUpdatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanConversationSummaryRow)
}

// ConversationParticipantsRow names both participants of a conversation.
type ConversationParticipantsRow struct {
	Conversation
	ParticipantOneName string
	ParticipantTwoName string
}

const getConversationWithParticipants = `
SELECT ` + conversationColumns + `, u1.name, u2.name
FROM conversations c
JOIN users u1 ON u1.id = c.participant_one_id
JOIN users u2 ON u2.id = c.participant_two_id
WHERE c.id = $1`

func (q *Queries) GetConversationWithParticipants(ctx context.Context, db DBTX, id uuid.UUID) (ConversationParticipantsRow, error) {
	var r ConversationParticipantsRow
	err := db.QueryRow(ctx, getConversationWithParticipants, id).
		Scan(append(conversationDest(&r.Conversation), &r.ParticipantOneName, &r.ParticipantTwoName)...)
	return r, err
}

const listMessages = `
SELECT ` + messageColumns + `
FROM messages m
WHERE m.conversation_id = $1
  AND ($2::timestamptz IS NULL OR (m.created_at, m.id) > ($2, $3::uuid))
ORDER BY m.created_at, m.id
LIMIT $4`

type ListMessagesParams struct {
	ConversationID uuid.UUID
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListMessages(ctx context.Context, db DBTX, arg ListMessagesParams) ([]Message, error) {
	rows, err := db.Query(ctx, listMessages, arg.ConversationID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMessage)
}
