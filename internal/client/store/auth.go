package store

import (
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

// AuthState is the session slice. An empty Token means no session.
type AuthState struct {
	User        *models.User
	Token       string
	Loading     bool
	Error       string
	Initialized bool
}

// Authenticated reports whether the client should be in the signed-in
// domain. It is only meaningful once Initialized is true.
func (s AuthState) Authenticated() bool {
	return s.Token != ""
}

func (s AuthState) clone() AuthState {
	s.User = s.User.Clone()
	return s
}

func foldAuth(s AuthState, a action) AuthState {
	switch a.Type {
	case fulfilledOf(opInitialize):
		token, _ := a.Payload.(string)
		s.Token = token
		s.Initialized = true

	case pendingOf(opRegister), pendingOf(opLogin),
		pendingOf(opGetProfile), pendingOf(opUpdateProfile):
		s.Loading = true
		s.Error = ""

	case fulfilledOf(opRegister), fulfilledOf(opLogin):
		p, _ := a.Payload.(sessionPayload)
		s.Loading = false
		s.User = p.User
		s.Token = p.Token

	case fulfilledOf(opGetProfile), fulfilledOf(opUpdateProfile):
		u, _ := a.Payload.(*models.User)
		s.Loading = false
		s.User = u

	case rejectedOf(opRegister), rejectedOf(opLogin),
		rejectedOf(opGetProfile), rejectedOf(opUpdateProfile):
		s.Loading = false
		s.Error = a.Error

	case actLogout:
		s.User = nil
		s.Token = ""

	case actAuthClearError:
		s.Error = ""
	}
	return s
}
