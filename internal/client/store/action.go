package store

import (
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

// Operation names. Asynchronous operations are dispatched in three phases
// with the phase appended to the name, e.g. "auth/login/pending".
const (
	opInitialize    = "auth/initialize"
	opRegister      = "auth/register"
	opLogin         = "auth/login"
	opGetProfile    = "auth/getProfile"
	opUpdateProfile = "auth/updateProfile"

	opFindMatch       = "match/find"
	opGetCurrentMatch = "match/getCurrent"
	opExtendMatch     = "match/extend"

	opGetMessages = "chat/getMessages"
	opSendMessage = "chat/sendMessage"
)

// Local actions, applied synchronously without a network call.
const (
	actLogout         = "auth/logout"
	actAuthClearError = "auth/clearError"

	actClearMatch      = "match/clearMatch"
	actMatchClearError = "match/clearError"

	actAddMessage     = "chat/addMessage"
	actClearMessages  = "chat/clearMessages"
	actChatClearError = "chat/clearError"
)

type phase string

const (
	phasePending   phase = "pending"
	phaseFulfilled phase = "fulfilled"
	phaseRejected  phase = "rejected"
)

func pendingOf(op string) string   { return op + "/" + string(phasePending) }
func fulfilledOf(op string) string { return op + "/" + string(phaseFulfilled) }
func rejectedOf(op string) string  { return op + "/" + string(phaseRejected) }

// action is one state transition. Error is set on rejected actions only.
type action struct {
	Type    string
	Payload any
	Error   string
}

func pending(op string) action {
	return action{Type: pendingOf(op)}
}

func fulfilled(op string, payload any) action {
	return action{Type: fulfilledOf(op), Payload: payload}
}

func rejected(op, msg string) action {
	return action{Type: rejectedOf(op), Error: msg}
}

// sessionPayload carries the result of register and login.
type sessionPayload struct {
	User  *models.User
	Token string
}
