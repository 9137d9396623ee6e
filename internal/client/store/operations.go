package store

import (
	"context"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
)

// Messages stored when a failed request carries no server message.
const (
	fallbackRegister        = "Registration failed"
	fallbackLogin           = "Login failed"
	fallbackGetProfile      = "Failed to get profile"
	fallbackUpdateProfile   = "Failed to update profile"
	fallbackFindMatch       = "Failed to find match"
	fallbackGetCurrentMatch = "Failed to get current match"
	fallbackExtendMatch     = "Failed to extend match"
	fallbackGetMessages     = "Failed to get messages"
	fallbackSendMessage     = "Failed to send message"
)

func rejectionMessage(err error, fallback string) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return fallback
}

// fail records err as the rejection of op and hands it back to the caller.
func (s *Store) fail(ctx context.Context, op string, err error, fallback string) error {
	s.dispatch(ctx, rejected(op, rejectionMessage(err, fallback)))
	return err
}

// Initialize restores the persisted token. It runs once per Store; later
// calls return immediately. A token that cannot be read is treated as absent.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		defer close(s.ready)

		token, err := s.tokens.Token(ctx)
		if err != nil {
			s.log.Warn(ctx, "restore session token", "error", err)
			token = ""
		}
		s.dispatch(ctx, fulfilled(opInitialize, token))
	})
}

// Register creates an account, persists the returned token and signs in.
func (s *Store) Register(ctx context.Context, req services.RegisterRequest) error {
	return s.authenticate(ctx, opRegister, fallbackRegister, func() (*services.AuthResponse, error) {
		return s.auth.Register(ctx, req)
	})
}

func (s *Store) Login(ctx context.Context, req services.LoginRequest) error {
	return s.authenticate(ctx, opLogin, fallbackLogin, func() (*services.AuthResponse, error) {
		return s.auth.Login(ctx, req)
	})
}

func (s *Store) authenticate(ctx context.Context, op, fallback string, call func() (*services.AuthResponse, error)) error {
	s.dispatch(ctx, pending(op))

	resp, err := call()
	if err != nil {
		return s.fail(ctx, op, err, fallback)
	}
	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		return s.fail(ctx, op, err, fallback)
	}
	s.dispatch(ctx, fulfilled(op, sessionPayload{User: resp.User, Token: resp.Token}))
	return nil
}

// GetProfile replaces the session user with the server's copy.
func (s *Store) GetProfile(ctx context.Context, userID string) error {
	s.dispatch(ctx, pending(opGetProfile))

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return s.fail(ctx, opGetProfile, err, fallbackGetProfile)
	}
	s.dispatch(ctx, fulfilled(opGetProfile, u))
	return nil
}

// UpdateProfile sends the changes and replaces the session user with the
// server's representation.
func (s *Store) UpdateProfile(ctx context.Context, userID string, req services.UpdateProfileRequest) error {
	s.dispatch(ctx, pending(opUpdateProfile))

	u, err := s.users.UpdateProfile(ctx, userID, req)
	if err != nil {
		return s.fail(ctx, opUpdateProfile, err, fallbackUpdateProfile)
	}
	s.dispatch(ctx, fulfilled(opUpdateProfile, u))
	return nil
}

// UpdateLocation saves the location preferences; it is a profile update as
// far as state is concerned.
func (s *Store) UpdateLocation(ctx context.Context, prefs models.LocationPreferences) error {
	s.dispatch(ctx, pending(opUpdateProfile))

	u, err := s.users.UpdateLocation(ctx, prefs)
	if err != nil {
		return s.fail(ctx, opUpdateProfile, err, fallbackUpdateProfile)
	}
	s.dispatch(ctx, fulfilled(opUpdateProfile, u))
	return nil
}

// Logout clears the session in memory and removes the persisted token. It
// never contacts the server and never fails; a storage error is only logged.
func (s *Store) Logout(ctx context.Context) {
	s.dispatch(ctx, action{Type: actLogout})
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clear session token", "error", err)
	}
}

func (s *Store) ClearAuthError(ctx context.Context) {
	s.dispatch(ctx, action{Type: actAuthClearError})
}

func (s *Store) FindMatch(ctx context.Context) error {
	s.dispatch(ctx, pending(opFindMatch))

	m, err := s.matches.Find(ctx)
	if err != nil {
		return s.fail(ctx, opFindMatch, err, fallbackFindMatch)
	}
	s.dispatch(ctx, fulfilled(opFindMatch, m))
	return nil
}

func (s *Store) GetCurrentMatch(ctx context.Context) error {
	s.dispatch(ctx, pending(opGetCurrentMatch))

	m, err := s.matches.Current(ctx)
	if err != nil {
		return s.fail(ctx, opGetCurrentMatch, err, fallbackGetCurrentMatch)
	}
	s.dispatch(ctx, fulfilled(opGetCurrentMatch, m))
	return nil
}

// ExtendMatch prolongs the match and merges the response over the current
// match.
func (s *Store) ExtendMatch(ctx context.Context, matchID string) error {
	s.dispatch(ctx, pending(opExtendMatch))

	m, err := s.matches.Extend(ctx, matchID)
	if err != nil {
		return s.fail(ctx, opExtendMatch, err, fallbackExtendMatch)
	}
	s.dispatch(ctx, fulfilled(opExtendMatch, m))
	return nil
}

func (s *Store) ClearMatch(ctx context.Context) {
	s.dispatch(ctx, action{Type: actClearMatch})
}

func (s *Store) ClearMatchError(ctx context.Context) {
	s.dispatch(ctx, action{Type: actMatchClearError})
}

// GetMessages replaces the conversation with the server's list.
func (s *Store) GetMessages(ctx context.Context, matchID string) error {
	s.dispatch(ctx, pending(opGetMessages))

	msgs, err := s.matches.Messages(ctx, matchID)
	if err != nil {
		return s.fail(ctx, opGetMessages, err, fallbackGetMessages)
	}
	s.dispatch(ctx, fulfilled(opGetMessages, msgs))
	return nil
}

// SendMessage posts content and appends the server's copy of the message.
func (s *Store) SendMessage(ctx context.Context, matchID, content string) error {
	s.dispatch(ctx, pending(opSendMessage))

	m, err := s.matches.Send(ctx, matchID, content)
	if err != nil {
		return s.fail(ctx, opSendMessage, err, fallbackSendMessage)
	}
	s.dispatch(ctx, fulfilled(opSendMessage, m))
	return nil
}

// AddMessage appends a message delivered outside the fetch/send cycle.
func (s *Store) AddMessage(ctx context.Context, m models.Message) {
	s.dispatch(ctx, action{Type: actAddMessage, Payload: m})
}

func (s *Store) ClearMessages(ctx context.Context) {
	s.dispatch(ctx, action{Type: actClearMessages})
}

func (s *Store) ClearChatError(ctx context.Context) {
	s.dispatch(ctx, action{Type: actChatClearError})
}
