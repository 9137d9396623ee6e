package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/config"
	"github.com/dmitrijs2005/blindmatch/internal/client/localdb"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/push"
	"github.com/dmitrijs2005/blindmatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
	"github.com/dmitrijs2005/blindmatch/internal/client/session"
	"github.com/dmitrijs2005/blindmatch/internal/client/store"
	"github.com/dmitrijs2005/blindmatch/internal/logging"
)

// pushRunner is the part of push.Feed the App uses.
type pushRunner interface {
	Run(ctx context.Context, deliver push.DeliverFunc) error
}

type App struct {
	config    *config.Config
	store     *store.Store
	interests services.InterestService
	feed      pushRunner
	log       logging.Logger
	db        *sql.DB
	reader    *bufio.Reader
	out       io.Writer

	pushMu     sync.Mutex
	pushCancel context.CancelFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := localdb.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	tokens := session.NewTokenStore(metadata.NewSQLiteRepository(db))
	api := client.NewHTTPClient(c.ServerURL, tokens, client.WithLogger(log))

	st := store.New(
		services.NewAuthService(api),
		services.NewUserService(api),
		services.NewMatchService(api),
		tokens,
		log,
	)

	a := &App{
		config:    c,
		store:     st,
		interests: services.NewInterestService(api),
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	if c.PushURL != "" {
		a.feed = push.NewFeed(c.PushURL, tokens, log)
	}
	return a, nil
}

// Run restores the session and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	defer a.stopPush()

	a.restoreSession(ctx)

	fmt.Fprintln(a.out, "Welcome to blindmatch (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// restoreSession runs the one-time initialization and, when a token was
// found, refetches the profile it belongs to.
func (a *App) restoreSession(ctx context.Context) {
	a.store.Initialize(ctx)
	<-a.store.Ready()

	st := a.store.State().Auth
	if !st.Authenticated() {
		return
	}
	if uid := session.PeekUserID(st.Token); uid != "" {
		if err := a.store.GetProfile(ctx, uid); err != nil {
			a.log.Warn(ctx, "restore profile", "error", err)
		}
	}
	a.startPush(ctx)
}

func (a *App) isLoggedIn() bool {
	st := a.store.State().Auth
	return st.Initialized && st.Authenticated()
}

func (a *App) status() string {
	st := a.store.State().Auth
	switch {
	case !st.Authenticated():
		return "guest"
	case st.User != nil && st.User.Name != "":
		return st.User.Name
	default:
		return "signed in"
	}
}

// startPush connects the push feed in the background, if configured and
// not already running.
func (a *App) startPush(ctx context.Context) {
	if a.feed == nil {
		return
	}
	a.pushMu.Lock()
	defer a.pushMu.Unlock()
	if a.pushCancel != nil {
		return
	}

	pctx, cancel := context.WithCancel(ctx)
	a.pushCancel = cancel
	go func() {
		if err := a.feed.Run(pctx, a.deliver); err != nil {
			a.log.Warn(pctx, "push feed stopped", "error", err)
		}
	}()
}

func (a *App) stopPush() {
	a.pushMu.Lock()
	defer a.pushMu.Unlock()
	if a.pushCancel != nil {
		a.pushCancel()
		a.pushCancel = nil
	}
}

func (a *App) deliver(ctx context.Context, m models.Message) {
	a.store.AddMessage(ctx, m)
	fmt.Fprintf(a.out, "\n[new message] %s\n", m.Content)
}
