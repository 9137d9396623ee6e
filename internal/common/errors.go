package common

import "errors"

var (
	// ErrNotInitialized is returned when state is read before the session was restored.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrNoCurrentMatch is returned by match-scoped commands when no match is held.
	ErrNoCurrentMatch = errors.New("no current match")

	// ErrNotLoggedIn is returned by commands that need an authenticated user.
	ErrNotLoggedIn = errors.New("not logged in")
)
