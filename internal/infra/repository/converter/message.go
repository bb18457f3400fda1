package converter

import (
	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/infra/pgquery"
	"yacht-charter/internal/pkg/pgconv"
)

func ConversationToUpsertParams(c *message.Conversation) pgquery.UpsertConversationParams {
	return pgquery.UpsertConversationParams{
		ID:               c.ID(),
		ParticipantOneID: c.ParticipantOne(),
		ParticipantTwoID: c.ParticipantTwo(),
		CreatedAt:        pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func ConversationFromRow(row pgquery.Conversation) *message.Conversation {
	return message.ReconstructConversation(
		row.ID,
		row.ParticipantOneID,
		row.ParticipantTwoID,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MessageToCreateParams(m *message.Message) pgquery.CreateMessageParams {
	return pgquery.CreateMessageParams{
		ID:             m.ID(),
		ConversationID: m.ConversationID(),
		SenderID:       m.SenderID(),
		Body:           m.Body().String(),
		ReadAt:         pgconv.TimePtrToPgtype(m.ReadAt()),
		CreatedAt:      pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MessageFromRow(row pgquery.Message) *message.Message {
	return message.ReconstructMessage(
		row.ID,
		row.ConversationID,
		row.SenderID,
		row.Body,
		pgconv.TimePtrFromPgtype(row.ReadAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
