package store

import (
	"slices"

	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

// ChatState holds the messages of the one active conversation, in server
// order. Switching matches requires a fresh GetMessages.
type ChatState struct {
	Messages []models.Message
	Loading  bool
	Error    string
}

func (s ChatState) clone() ChatState {
	s.Messages = slices.Clone(s.Messages)
	return s
}

func foldChat(s ChatState, a action) ChatState {
	switch a.Type {
	case pendingOf(opGetMessages), pendingOf(opSendMessage):
		s.Loading = true
		s.Error = ""

	case fulfilledOf(opGetMessages):
		msgs, _ := a.Payload.([]models.Message)
		s.Loading = false
		s.Messages = slices.Clone(msgs)

	case fulfilledOf(opSendMessage):
		s.Loading = false
		if m, ok := a.Payload.(*models.Message); ok && m != nil {
			s.Messages = append(slices.Clip(s.Messages), *m)
		}

	case rejectedOf(opGetMessages), rejectedOf(opSendMessage):
		s.Loading = false
		s.Error = a.Error

	case actAddMessage:
		if m, ok := a.Payload.(models.Message); ok {
			s.Messages = append(slices.Clip(s.Messages), m)
		}

	case actClearMessages:
		s.Messages = []models.Message{}

	case actChatClearError:
		s.Error = ""
	}
	return s
}
