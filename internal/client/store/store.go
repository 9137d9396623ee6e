package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
	"github.com/dmitrijs2005/blindmatch/internal/logging"
)

// AuthAPI is the subset of services.AuthService the store uses.
type AuthAPI interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.AuthResponse, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.AuthResponse, error)
}

// ProfileAPI is the subset of services.UserService the store uses.
type ProfileAPI interface {
	Get(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req services.UpdateProfileRequest) (*models.User, error)
	UpdateLocation(ctx context.Context, prefs models.LocationPreferences) (*models.User, error)
}

// MatchAPI is the subset of services.MatchService the store uses.
type MatchAPI interface {
	Find(ctx context.Context) (*models.Match, error)
	Current(ctx context.Context) (*models.Match, error)
	Extend(ctx context.Context, matchID string) (*models.Match, error)
	Messages(ctx context.Context, matchID string) ([]models.Message, error)
	Send(ctx context.Context, matchID, content string) (*models.Message, error)
}

// TokenStore is the persisted session token slot; "" means absent.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// State is a snapshot of the whole store. Snapshots are deep copies and may
// be read freely without affecting the store.
type State struct {
	Auth  AuthState
	Match MatchState
	Chat  ChatState
}

func (s State) clone() State {
	return State{
		Auth:  s.Auth.clone(),
		Match: s.Match.clone(),
		Chat:  s.Chat.clone(),
	}
}

func fold(s State, a action) State {
	s.Auth = foldAuth(s.Auth, a)
	s.Match = foldMatch(s.Match, a)
	s.Chat = foldChat(s.Chat, a)
	return s
}

// Store is the process-wide state container. Create it once with New and
// call Initialize before reading auth-dependent state.
type Store struct {
	auth    AuthAPI
	users   ProfileAPI
	matches MatchAPI
	tokens  TokenStore
	log     logging.Logger

	mu     sync.Mutex
	state  State
	subs   map[int]chan State
	nextID int

	initOnce sync.Once
	ready    chan struct{}
}

func New(auth AuthAPI, users ProfileAPI, matches MatchAPI, tokens TokenStore, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		auth:    auth,
		users:   users,
		matches: matches,
		tokens:  tokens,
		log:     log.With("component", "store"),
		state:   State{Chat: ChatState{Messages: []models.Message{}}},
		subs:    make(map[int]chan State),
		ready:   make(chan struct{}),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a channel receiving a snapshot after every applied
// action, and a function that ends the subscription. A subscriber that falls
// behind only sees the latest snapshot.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Ready is closed once Initialize has completed.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) dispatch(ctx context.Context, a action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fold(s.state, a)

	if a.Error != "" {
		s.log.Warn(ctx, "action rejected", "action", a.Type, "error", a.Error)
	} else {
		s.log.Debug(ctx, "action applied", "action", a.Type)
	}

	if len(s.subs) == 0 {
		return
	}
	snap := s.state.clone()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// replace the stale snapshot nobody has read yet
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
