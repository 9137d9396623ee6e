package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
)

var errBoom = errors.New("boom")

type fakeAuth struct {
	resp     *services.AuthResponse
	err      error
	onCall   func()
	register []services.RegisterRequest
	login    []services.LoginRequest
}

func (f *fakeAuth) Register(ctx context.Context, req services.RegisterRequest) (*services.AuthResponse, error) {
	f.register = append(f.register, req)
	if f.onCall != nil {
		f.onCall()
	}
	return f.resp, f.err
}

func (f *fakeAuth) Login(ctx context.Context, req services.LoginRequest) (*services.AuthResponse, error) {
	f.login = append(f.login, req)
	if f.onCall != nil {
		f.onCall()
	}
	return f.resp, f.err
}

type fakeUsers struct {
	user   *models.User
	err    error
	update func(userID string, req services.UpdateProfileRequest) (*models.User, error)
	prefs  []models.LocationPreferences
}

func (f *fakeUsers) Get(ctx context.Context, userID string) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, userID string, req services.UpdateProfileRequest) (*models.User, error) {
	if f.update != nil {
		return f.update(userID, req)
	}
	return f.user, f.err
}

func (f *fakeUsers) UpdateLocation(ctx context.Context, prefs models.LocationPreferences) (*models.User, error) {
	f.prefs = append(f.prefs, prefs)
	return f.user, f.err
}

type fakeMatches struct {
	match    *models.Match
	messages []models.Message
	sent     *models.Message
	err      error
	calls    int
}

func (f *fakeMatches) Find(ctx context.Context) (*models.Match, error) {
	f.calls++
	return f.match, f.err
}

func (f *fakeMatches) Current(ctx context.Context) (*models.Match, error) {
	f.calls++
	return f.match, f.err
}

func (f *fakeMatches) Extend(ctx context.Context, matchID string) (*models.Match, error) {
	f.calls++
	return f.match, f.err
}

func (f *fakeMatches) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	f.calls++
	return f.messages, f.err
}

func (f *fakeMatches) Send(ctx context.Context, matchID, content string) (*models.Message, error) {
	f.calls++
	return f.sent, f.err
}

// fakeTokens is a TokenStore whose operations can be made to fail.
type fakeTokens struct {
	token              string
	getErr, saveErr    error
	clearErr           error
	reads, saves, clrs int
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) {
	f.reads++
	return f.token, f.getErr
}

func (f *fakeTokens) Save(ctx context.Context, token string) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}

func (f *fakeTokens) Clear(ctx context.Context) error {
	f.clrs++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.token = ""
	return nil
}
