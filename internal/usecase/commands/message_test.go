//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"yacht-charter/internal/domain/message"
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/pkg/clock"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/usecase/commands"
	"yacht-charter/internal/usecase/queries"
	"yacht-charter/tests/common/builder"
	commandsmock "yacht-charter/tests/mock/commands"
	queriesmock "yacht-charter/tests/mock/queries"
	sharedmock "yacht-charter/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessageCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	conversations *sharedmock.MockConversationRepository
	messages      *sharedmock.MockMessageRepository
	notifs        *sharedmock.MockNotificationRepository
	dispatcher    *commandsmock.MockNotificationDispatcher
	queries       *queriesmock.MockMessageQueries
	clock         *clock.MockClock
	uc            commands.MessageCommands

	guestID, ownerID uuid.UUID
	conversation     *message.Conversation
}

var messagedAt = time.Date(2024, 6, 3, 18, 30, 0, 0, time.UTC)

func (s *MessageCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.conversations = sharedmock.NewMockConversationRepository(s.ctrl)
	s.messages = sharedmock.NewMockMessageRepository(s.ctrl)
	s.notifs = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.dispatcher = commandsmock.NewMockNotificationDispatcher(s.ctrl)
	s.queries = queriesmock.NewMockMessageQueries(s.ctrl)

	expectTx(s.uow, s.tx, s.reads)
	s.tx.EXPECT().Conversations().Return(s.conversations).AnyTimes()
	s.tx.EXPECT().Messages().Return(s.messages).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifs).AnyTimes()

	s.guestID, s.ownerID = uuid.New(), uuid.New()
	s.conversation = builder.NewConversationBuilder().Between(s.guestID, s.ownerID).BuildReconstructed()
	s.clock = clock.NewMockClock(messagedAt)
	s.uc = commands.NewMessageUseCase(s.uow, s.dispatcher, s.queries, s.clock)
}

func (s *MessageCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMessageCommandsSuite(t *testing.T) {
	suite.Run(t, new(MessageCommandsTestSuite))
}

func (s *MessageCommandsTestSuite) guest() policy.Actor { return actorOf(s.guestID, user.RoleClient) }
func (s *MessageCommandsTestSuite) owner() policy.Actor { return actorOf(s.ownerID, user.RoleOwner) }

func (s *MessageCommandsTestSuite) TestStart() {
	ctx := context.Background()
	in := commands.StartConversationInput{RecipientID: s.ownerID, Body: "Is the boat free in July?"}

	s.Run("opens the pair's conversation and posts", func() {
		s.reads.EXPECT().UserByID(gomock.Any(), s.ownerID).Return(builder.NewUserBuilder().Reconstruct(), nil)
		s.conversations.EXPECT().Open(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *message.Conversation) (*message.Conversation, error) {
				s.True(c.Includes(s.guestID))
				s.True(c.Includes(s.ownerID))
				// an older thread between the same two users wins
				return s.conversation, nil
			})
		s.conversations.EXPECT().Touch(gomock.Any(), s.conversation).Return(nil)
		var posted *message.Message
		s.messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *message.Message) error {
			s.Equal(s.conversation.ID(), m.ConversationID())
			s.Equal(s.guestID, m.SenderID())
			s.Equal(messagedAt, m.CreatedAt())
			posted = m
			return nil
		})
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), s.notifs, gomock.Len(1)).Return(nil)
		s.queries.EXPECT().GetMessageSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.MessageView, error) {
				s.Equal(posted.ID(), id)
				return &queries.MessageView{ID: id, ConversationID: s.conversation.ID()}, nil
			})

		view, err := s.uc.Start(ctx, s.guest(), in)

		s.Require().NoError(err)
		s.Equal(s.conversation.ID(), view.ConversationID)
		s.Equal(messagedAt, s.conversation.UpdatedAt())
	})

	s.Run("unknown recipient is a validation error", func() {
		s.reads.EXPECT().UserByID(gomock.Any(), s.ownerID).Return(nil, user.ErrUserNotFound)

		_, err := s.uc.Start(ctx, s.guest(), in)
		s.True(errs.Is(err, message.ErrUnknownRecipient))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("cannot message yourself", func() {
		s.reads.EXPECT().UserByID(gomock.Any(), s.guestID).Return(builder.NewUserBuilder().Reconstruct(), nil)

		_, err := s.uc.Start(ctx, s.guest(), commands.StartConversationInput{RecipientID: s.guestID, Body: "hi"})
		s.True(errs.Is(err, message.ErrSelfConversation))
	})

	s.Run("empty body is rejected before anything is written", func() {
		s.reads.EXPECT().UserByID(gomock.Any(), s.ownerID).Return(builder.NewUserBuilder().Reconstruct(), nil)
		s.conversations.EXPECT().Open(gomock.Any(), gomock.Any()).Return(s.conversation, nil)

		_, err := s.uc.Start(ctx, s.guest(), commands.StartConversationInput{RecipientID: s.ownerID, Body: "  "})
		s.True(errs.Is(err, message.ErrEmptyBody))
	})

	s.Run("actors without the capability are refused", func() {
		nobody := policy.NewActor(s.guestID, user.RoleClient, policy.NewStaticResolver(nil))

		_, err := s.uc.Start(ctx, nobody, in)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *MessageCommandsTestSuite) TestSend() {
	ctx := context.Background()

	s.Run("participant replies", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)
		s.conversations.EXPECT().Touch(gomock.Any(), s.conversation).Return(nil)
		s.messages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *message.Message) error {
			s.Equal(s.ownerID, m.SenderID())
			return nil
		})
		s.dispatcher.EXPECT().Dispatch(gomock.Any(), s.notifs, gomock.Len(1)).Return(nil)
		s.queries.EXPECT().GetMessageSystem(gomock.Any(), gomock.Any()).Return(&queries.MessageView{Body: "Yes it is"}, nil)

		view, err := s.uc.Send(ctx, s.owner(), s.conversation.ID(), "Yes it is")

		s.Require().NoError(err)
		s.Equal("Yes it is", view.Body)
	})

	s.Run("outsiders are refused", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)

		_, err := s.uc.Send(ctx, actorOf(uuid.New(), user.RoleAdmin), s.conversation.ID(), "hello")
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("body over the limit", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)

		_, err := s.uc.Send(ctx, s.owner(), s.conversation.ID(), strings.Repeat("a", message.MaxBodyLength+1))
		s.True(errs.Is(err, message.ErrBodyTooLong))
	})

	s.Run("missing conversation", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), gomock.Any()).Return(nil, message.ErrConversationNotFound)

		_, err := s.uc.Send(ctx, s.owner(), uuid.New(), "hello")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *MessageCommandsTestSuite) TestOpen() {
	ctx := context.Background()

	s.Run("marks the other side's messages read", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)
		s.messages.EXPECT().MarkConversationRead(gomock.Any(), s.conversation.ID(), s.guestID, messagedAt).Return(int64(2), nil)
		s.queries.EXPECT().GetConversationSystem(gomock.Any(), s.conversation.ID(), nil, 20).
			Return(&queries.ConversationView{ID: s.conversation.ID()}, nil, nil)

		view, next, err := s.uc.Open(ctx, s.guest(), s.conversation.ID(), nil, 20)

		s.Require().NoError(err)
		s.Equal(s.conversation.ID(), view.ID)
		s.Nil(next)
	})

	s.Run("outsiders see nothing and change nothing", func() {
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)

		_, _, err := s.uc.Open(ctx, actorOf(uuid.New(), user.RoleClient), s.conversation.ID(), nil, 20)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *MessageCommandsTestSuite) TestMarkRead() {
	ctx := context.Background()

	s.Run("recipient marks a message", func() {
		m := builder.NewMessageBuilder().In(s.conversation).From(s.ownerID).BuildReconstructed()
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)
		s.messages.EXPECT().MarkRead(gomock.Any(), m).DoAndReturn(func(_ context.Context, got *message.Message) error {
			s.Require().NotNil(got.ReadAt())
			s.Equal(messagedAt, *got.ReadAt())
			return nil
		})
		s.queries.EXPECT().GetMessageSystem(gomock.Any(), m.ID()).Return(&queries.MessageView{ID: m.ID()}, nil)

		_, err := s.uc.MarkRead(ctx, s.guest(), m.ID())
		s.NoError(err)
	})

	s.Run("sender marking their own message is a no-op", func() {
		m := builder.NewMessageBuilder().In(s.conversation).From(s.ownerID).BuildReconstructed()
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)
		s.queries.EXPECT().GetMessageSystem(gomock.Any(), m.ID()).Return(&queries.MessageView{ID: m.ID()}, nil)

		_, err := s.uc.MarkRead(ctx, s.owner(), m.ID())
		s.NoError(err)
		s.False(m.IsRead())
	})

	s.Run("already read stays untouched", func() {
		m := builder.NewMessageBuilder().In(s.conversation).From(s.ownerID).Read(builder.DefaultNow).BuildReconstructed()
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)
		s.queries.EXPECT().GetMessageSystem(gomock.Any(), m.ID()).Return(&queries.MessageView{ID: m.ID()}, nil)

		_, err := s.uc.MarkRead(ctx, s.guest(), m.ID())
		s.NoError(err)
		s.Equal(builder.DefaultNow, *m.ReadAt())
	})

	s.Run("outsiders are refused", func() {
		m := builder.NewMessageBuilder().In(s.conversation).From(s.ownerID).BuildReconstructed()
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)
		s.reads.EXPECT().ConversationByID(gomock.Any(), s.conversation.ID()).Return(s.conversation, nil)

		_, err := s.uc.MarkRead(ctx, actorOf(uuid.New(), user.RoleClient), m.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *MessageCommandsTestSuite) TestDelete() {
	ctx := context.Background()
	m := builder.NewMessageBuilder().In(s.conversation).From(s.guestID).BuildReconstructed()

	s.Run("sender deletes", func() {
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)
		s.messages.EXPECT().Delete(gomock.Any(), m.ID()).Return(nil)

		s.NoError(s.uc.Delete(ctx, s.guest(), m.ID()))
	})

	s.Run("the other participant cannot", func() {
		s.reads.EXPECT().MessageByID(gomock.Any(), m.ID()).Return(m, nil)

		err := s.uc.Delete(ctx, s.owner(), m.ID())
		s.True(errs.Is(err, errs.ErrForbidden))
	})

	s.Run("missing message", func() {
		s.reads.EXPECT().MessageByID(gomock.Any(), gomock.Any()).Return(nil, message.ErrMessageNotFound)

		err := s.uc.Delete(ctx, s.guest(), uuid.New())
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}
