package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindmatch/internal/client/services"
	"github.com/dmitrijs2005/blindmatch/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts for the registration form, validates it locally and
// creates the account. Validation failures are returned before any request
// is made.
func (a *App) Register(ctx context.Context) error {
	var req services.RegisterRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out, "Enter password"); err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if err := services.ValidateRegistration(req, confirm); err != nil {
		return err
	}

	if err := a.store.Register(ctx, req); err != nil {
		return a.authError()
	}
	fmt.Fprintln(a.out, "Success!")
	a.startPush(ctx)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	var req services.LoginRequest
	var err error

	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out, "Enter password"); err != nil {
		return err
	}

	if err := a.store.Login(ctx, req); err != nil {
		return a.authError()
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.status())
	a.startPush(ctx)
	return nil
}

// Logout ends the session locally; the server is not contacted.
func (a *App) Logout(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.stopPush()
	a.store.Logout(ctx)
	a.store.ClearMatch(ctx)
	a.store.ClearMessages(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// requireLogin fails unless initialization finished and a session exists.
func (a *App) requireLogin() error {
	st := a.store.State().Auth
	if !st.Initialized {
		return common.ErrNotInitialized
	}
	if !st.Authenticated() {
		return common.ErrNotLoggedIn
	}
	return nil
}

// authError turns the auth slice's last error into one the REPL can print,
// clearing it from state.
func (a *App) authError() error {
	msg := a.store.State().Auth.Error
	a.store.ClearAuthError(context.Background())
	return errors.New(msg)
}
