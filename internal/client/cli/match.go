package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindmatch/internal/common"
)

// Match refreshes and prints the current match.
func (a *App) Match(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.store.GetCurrentMatch(ctx); err != nil {
		return a.matchError()
	}
	m := a.store.State().Match.CurrentMatch
	if m == nil {
		fmt.Fprintln(a.out, "No match yet. Type 'find' to get one.")
		return nil
	}
	printMatch(a.out, m)
	return nil
}

func (a *App) FindMatch(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.store.FindMatch(ctx); err != nil {
		return a.matchError()
	}
	m := a.store.State().Match.CurrentMatch
	if m == nil {
		fmt.Fprintln(a.out, "Nobody found this time. Try again later.")
		return nil
	}
	a.store.ClearMessages(ctx)
	printMatch(a.out, m)
	return nil
}

func (a *App) ExtendMatch(ctx context.Context) error {
	id, err := a.currentMatchID()
	if err != nil {
		return err
	}
	if err := a.store.ExtendMatch(ctx, id); err != nil {
		return a.matchError()
	}
	fmt.Fprintln(a.out, "Match extended for another week!")
	printMatch(a.out, a.store.State().Match.CurrentMatch)
	return nil
}

func (a *App) currentMatchID() (string, error) {
	if err := a.requireLogin(); err != nil {
		return "", err
	}
	m := a.store.State().Match.CurrentMatch
	if m == nil || m.ID == "" {
		return "", common.ErrNoCurrentMatch
	}
	return m.ID, nil
}

func (a *App) matchError() error {
	msg := a.store.State().Match.Error
	a.store.ClearMatchError(context.Background())
	return errors.New(msg)
}
