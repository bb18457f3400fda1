package policy

import (
	"yacht-charter/internal/domain/message"
)

// Conversations are private to their two participants; admins get no
// override here.

func CanStartConversation(a Actor) bool {
	return a.HasCapability(CapSendMessage)
}

func CanViewConversation(a Actor, c *message.Conversation) bool {
	return a.HasCapability(CapViewOwnMessages) && c.Includes(a.ID())
}

func CanSendMessage(a Actor, c *message.Conversation) bool {
	return a.HasCapability(CapSendMessage) && c.Includes(a.ID())
}

func CanDeleteMessage(a Actor, m *message.Message) bool {
	return a.HasCapability(CapDeleteOwnMessage) && a.Is(m.SenderID())
}
