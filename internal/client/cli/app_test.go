package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/push"
	"github.com/dmitrijs2005/blindmatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
	"github.com/dmitrijs2005/blindmatch/internal/client/session"
	"github.com/dmitrijs2005/blindmatch/internal/client/store"
	"github.com/dmitrijs2005/blindmatch/internal/common"
	"github.com/dmitrijs2005/blindmatch/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend answers the auth, profile and match calls the store makes.
type fakeBackend struct {
	authResp *services.AuthResponse
	authErr  error
	user     *models.User
	userErr  error
	match    *models.Match
	matchErr error
	messages []models.Message
	sent     *models.Message

	registered []services.RegisterRequest
	profileIDs []string
	sentText   []string
}

func (f *fakeBackend) Register(ctx context.Context, req services.RegisterRequest) (*services.AuthResponse, error) {
	f.registered = append(f.registered, req)
	return f.authResp, f.authErr
}

func (f *fakeBackend) Login(ctx context.Context, req services.LoginRequest) (*services.AuthResponse, error) {
	return f.authResp, f.authErr
}

func (f *fakeBackend) Get(ctx context.Context, userID string) (*models.User, error) {
	f.profileIDs = append(f.profileIDs, userID)
	return f.user, f.userErr
}

func (f *fakeBackend) UpdateProfile(ctx context.Context, userID string, req services.UpdateProfileRequest) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeBackend) UpdateLocation(ctx context.Context, prefs models.LocationPreferences) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeBackend) Find(ctx context.Context) (*models.Match, error)    { return f.match, f.matchErr }
func (f *fakeBackend) Current(ctx context.Context) (*models.Match, error) { return f.match, f.matchErr }
func (f *fakeBackend) Extend(ctx context.Context, matchID string) (*models.Match, error) {
	return f.match, f.matchErr
}

func (f *fakeBackend) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	return f.messages, f.matchErr
}

func (f *fakeBackend) Send(ctx context.Context, matchID, content string) (*models.Message, error) {
	f.sentText = append(f.sentText, content)
	return f.sent, f.matchErr
}

type fakeInterests struct {
	services.InterestService
	all, mine []models.Interest
	selected  []string
	removed   []string
}

func (f *fakeInterests) List(ctx context.Context) ([]models.Interest, error) { return f.all, nil }
func (f *fakeInterests) Mine(ctx context.Context) ([]models.Interest, error) { return f.mine, nil }
func (f *fakeInterests) Select(ctx context.Context, id string) error {
	f.selected = append(f.selected, id)
	return nil
}
func (f *fakeInterests) Remove(ctx context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

type testApp struct {
	*App
	backend   *fakeBackend
	interests *fakeInterests
	repo      *metadata.MemoryRepository
	out       *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	backend := &fakeBackend{}
	interests := &fakeInterests{}
	repo := metadata.NewMemoryRepository()
	tokens := session.NewTokenStore(repo)
	out := &bytes.Buffer{}

	app := &App{
		store:     store.New(backend, backend, backend, tokens, nil),
		interests: interests,
		log:       logging.Nop(),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       out,
	}
	return &testApp{App: app, backend: backend, interests: interests, repo: repo, out: out}
}

func (ta *testApp) signIn(t *testing.T) {
	t.Helper()
	ta.store.Initialize(context.Background())
	ta.backend.authResp = &services.AuthResponse{User: &models.User{ID: "u1", Name: "Ann"}, Token: "T1"}
	require.NoError(t, ta.store.Login(context.Background(), services.LoginRequest{}))
}

// stubAnswers replaces the interactive prompts with canned answers; an
// exhausted queue behaves like EOF.
func stubAnswers(t *testing.T, text []string, passwords []string) {
	t.Helper()
	origST, origPW, origML := getSimpleText, getPassword, getMultiline
	next := func(q *[]string) (string, error) {
		if len(*q) == 0 {
			return "", io.EOF
		}
		v := (*q)[0]
		*q = (*q)[1:]
		return v, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(&text) }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(&text) }
	getPassword = func(_ io.Writer, _ string) (string, error) { return next(&passwords) }
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origPW, origML
	})
}

func decodeMatch(t *testing.T, raw string) *models.Match {
	t.Helper()
	var m models.Match
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return &m
}

func TestRegister_ValidationStopsBeforeRequest(t *testing.T) {
	ta := newTestApp(t)
	ta.store.Initialize(context.Background())
	stubAnswers(t, []string{"Ann", "a@x"}, []string{"pw1", "pw2"})

	err := ta.Register(context.Background())
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "Passwords do not match", err.Error())
	assert.Empty(t, ta.backend.registered)
}

func TestRegister_Success(t *testing.T) {
	ta := newTestApp(t)
	ta.store.Initialize(context.Background())
	ta.backend.authResp = &services.AuthResponse{User: &models.User{ID: "u1", Name: "Ann"}, Token: "T1"}
	stubAnswers(t, []string{"Ann", "a@x"}, []string{"pw", "pw"})

	require.NoError(t, ta.Register(context.Background()))

	require.Len(t, ta.backend.registered, 1)
	assert.Equal(t, "a@x", ta.backend.registered[0].Email)
	assert.True(t, ta.isLoggedIn())
	assert.Equal(t, "Ann", ta.status())
	assert.Contains(t, ta.out.String(), "Success!")
	raw, err := ta.repo.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "T1", string(raw))
}

func TestLogin_ShowsServerMessage(t *testing.T) {
	ta := newTestApp(t)
	ta.store.Initialize(context.Background())
	ta.backend.authErr = &client.RequestError{Status: 401, Message: "Invalid credentials"}
	stubAnswers(t, []string{"a@x"}, []string{"bad"})

	err := ta.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Empty(t, ta.store.State().Auth.Error)
	assert.False(t, ta.isLoggedIn())
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()
	assert.ErrorIs(t, ta.Logout(ctx), common.ErrNotInitialized)

	ta.store.Initialize(ctx)
	assert.ErrorIs(t, ta.Logout(ctx), common.ErrNotLoggedIn)

	ta.signIn(t)
	require.NoError(t, ta.Logout(ctx))
	assert.False(t, ta.isLoggedIn())
	assert.Equal(t, "guest", ta.status())
	raw, err := ta.repo.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRestoreSession_RefetchesProfile(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u7"}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, ta.repo.Set(ctx, common.TokenKey, []byte(token)))
	ta.backend.user = &models.User{ID: "u7", Name: "Kim"}

	ta.restoreSession(ctx)

	assert.Equal(t, []string{"u7"}, ta.backend.profileIDs)
	assert.Equal(t, "Kim", ta.status())
}

func TestRestoreSession_NoToken(t *testing.T) {
	ta := newTestApp(t)
	ta.restoreSession(context.Background())

	assert.Empty(t, ta.backend.profileIDs)
	assert.True(t, ta.store.State().Auth.Initialized)
	assert.False(t, ta.isLoggedIn())
}

func TestMatch_RevealGate(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)
	ctx := context.Background()

	ta.backend.match = decodeMatch(t, `{"id":"m1","isPhotoRevealed":false,"matchedUser":{"name":"Bo","bio":"secret","photo":"http://p/bo.jpg","interests":["chess"]}}`)
	require.NoError(t, ta.Match(ctx))
	out := ta.out.String()
	assert.Contains(t, out, models.PlaceholderName)
	assert.Contains(t, out, models.PlaceholderBio)
	assert.Contains(t, out, "chess")
	assert.NotContains(t, out, "Bo")
	assert.NotContains(t, out, "bo.jpg")

	ta.out.Reset()
	ta.backend.match = decodeMatch(t, `{"id":"m1","isPhotoRevealed":true}`)
	require.NoError(t, ta.ExtendMatch(ctx))
	out = ta.out.String()
	assert.Contains(t, out, "Match extended for another week!")
	assert.Contains(t, out, "Bo")
	assert.Contains(t, out, "bo.jpg")
}

func TestMatch_Errors(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)
	ctx := context.Background()

	assert.ErrorIs(t, ta.ExtendMatch(ctx), common.ErrNoCurrentMatch)
	assert.ErrorIs(t, ta.Messages(ctx), common.ErrNoCurrentMatch)

	ta.backend.matchErr = client.ErrUnavailable
	err := ta.FindMatch(ctx)
	require.Error(t, err)
	assert.Equal(t, "Failed to find match", err.Error())
	assert.Empty(t, ta.store.State().Match.Error)
}

func TestChat_MessagesAndSend(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)
	ctx := context.Background()
	ta.backend.match = decodeMatch(t, `{"id":"m1","isPhotoRevealed":true}`)
	require.NoError(t, ta.FindMatch(ctx))

	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	ta.backend.messages = []models.Message{
		{ID: "1", Content: "hi", SenderID: "u2", CreatedAt: at},
		{ID: "2", Content: "hello", SenderID: "u1", CreatedAt: at.Add(time.Minute)},
	}
	ta.out.Reset()
	require.NoError(t, ta.Messages(ctx))
	out := ta.out.String()
	assert.Contains(t, out, "them: hi")
	assert.Contains(t, out, "you: hello")

	ta.backend.sent = &models.Message{ID: "3", Content: "how are you", SenderID: "u1", CreatedAt: at.Add(2 * time.Minute)}
	require.NoError(t, ta.Send(ctx, "how are you"))
	assert.Equal(t, []string{"how are you"}, ta.backend.sentText)
	assert.Len(t, ta.store.State().Chat.Messages, 3)
	assert.Contains(t, ta.out.String(), "you: how are you")
}

func TestSend_PromptsWhenEmpty(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)
	ctx := context.Background()
	ta.backend.match = decodeMatch(t, `{"id":"m1"}`)
	require.NoError(t, ta.FindMatch(ctx))
	ta.backend.sent = &models.Message{ID: "1", Content: "typed"}
	stubAnswers(t, []string{"typed"}, nil)

	require.NoError(t, ta.Send(ctx, ""))
	assert.Equal(t, []string{"typed"}, ta.backend.sentText)
}

func TestProfile_EditAndLocation(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)
	ctx := context.Background()

	ta.backend.user = &models.User{ID: "u1", Name: "Anna", Email: "a@x", Bio: "new bio"}
	stubAnswers(t, []string{"Anna", "new bio", ""}, nil)
	require.NoError(t, ta.EditProfile(ctx))
	assert.Contains(t, ta.out.String(), "Bio:   new bio")
	assert.Equal(t, "Anna", ta.status())

	stubAnswers(t, []string{"1.5", "2.5", "25", "30", "20"}, nil)
	assert.EqualError(t, ta.Location(ctx), "minimum age is above maximum age")

	stubAnswers(t, []string{"north"}, nil)
	assert.EqualError(t, ta.Location(ctx), "latitude: not a number")

	ta.backend.user = &models.User{ID: "u1", Name: "Anna", Location: &models.LocationPreferences{Radius: 25, MinAge: 20, MaxAge: 30}}
	stubAnswers(t, []string{"1.5", "2.5", "25", "20", "30"}, nil)
	require.NoError(t, ta.Location(ctx))
	assert.Equal(t, 30, ta.store.State().Auth.User.Location.MaxAge)
}

func TestInterests(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()
	ta.store.Initialize(ctx)
	assert.ErrorIs(t, ta.Interests(ctx), common.ErrNotLoggedIn)

	ta.signIn(t)
	ta.interests.all = []models.Interest{{ID: "i1", Name: "hiking"}, {ID: "i2", Name: "chess"}}
	ta.interests.mine = []models.Interest{{ID: "i2", Name: "chess"}}
	require.NoError(t, ta.Interests(ctx))
	assert.Contains(t, ta.out.String(), "* i2")
	assert.Contains(t, ta.out.String(), "  i1")

	require.NoError(t, ta.SelectInterest(ctx, "i1"))
	require.NoError(t, ta.RemoveInterest(ctx, "i2"))
	assert.Equal(t, []string{"i1"}, ta.interests.selected)
	assert.Equal(t, []string{"i2"}, ta.interests.removed)
}

type fakeFeed struct {
	msgs []models.Message
	done chan struct{}
}

func (f *fakeFeed) Run(ctx context.Context, deliver push.DeliverFunc) error {
	defer close(f.done)
	for _, m := range f.msgs {
		deliver(ctx, m)
	}
	return nil
}

func TestPush_DeliversIntoChat(t *testing.T) {
	ta := newTestApp(t)
	feed := &fakeFeed{msgs: []models.Message{{ID: "p1", Content: "pushed"}}, done: make(chan struct{})}
	ta.feed = feed
	ta.signIn(t)

	ta.startPush(context.Background())
	ta.startPush(context.Background())
	select {
	case <-feed.done:
	case <-time.After(2 * time.Second):
		t.Fatal("push feed not started")
	}
	ta.stopPush()

	msgs := ta.store.State().Chat.Messages
	require.Len(t, msgs, 1)
	assert.Equal(t, "p1", msgs[0].ID)
}
