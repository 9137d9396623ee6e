package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/blindmatch/internal/client/models"
	"github.com/dmitrijs2005/blindmatch/internal/client/services"
	"github.com/dmitrijs2005/blindmatch/internal/client/session"
	"github.com/dmitrijs2005/blindmatch/internal/common"
)

// currentUserID returns the id of the signed-in user, taken from the profile
// when loaded and from the token otherwise.
func (a *App) currentUserID() (string, error) {
	if err := a.requireLogin(); err != nil {
		return "", err
	}
	st := a.store.State().Auth
	if st.User != nil && st.User.ID != "" {
		return st.User.ID, nil
	}
	if uid := session.PeekUserID(st.Token); uid != "" {
		return uid, nil
	}
	return "", common.ErrNotLoggedIn
}

// Profile refreshes the profile from the server and prints it.
func (a *App) Profile(ctx context.Context) error {
	uid, err := a.currentUserID()
	if err != nil {
		return err
	}
	if err := a.store.GetProfile(ctx, uid); err != nil {
		return a.authError()
	}
	printUser(a.out, a.store.State().Auth.User)
	return nil
}

// EditProfile prompts for new profile values; empty answers keep the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	uid, err := a.currentUserID()
	if err != nil {
		return err
	}

	var req services.UpdateProfileRequest
	if req.Name, err = getSimpleText(a.reader, "New name (empty to keep)", a.out); err != nil {
		return err
	}
	if req.Bio, err = getMultiline(a.reader, "New bio (empty to keep)", a.out); err != nil {
		return err
	}
	if req.PhotoURL, err = getSimpleText(a.reader, "New photo URL (empty to keep)", a.out); err != nil {
		return err
	}

	if err := a.store.UpdateProfile(ctx, uid, req); err != nil {
		return a.authError()
	}
	fmt.Fprintln(a.out, "Profile updated")
	printUser(a.out, a.store.State().Auth.User)
	return nil
}

// Location prompts for location preferences and saves them.
func (a *App) Location(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var prefs models.LocationPreferences
	floats := []struct {
		prompt string
		dst    *float64
	}{
		{"Latitude", &prefs.Latitude},
		{"Longitude", &prefs.Longitude},
		{"Search radius (km)", &prefs.Radius},
	}
	for _, f := range floats {
		s, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if *f.dst, err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("%s: not a number", strings.ToLower(f.prompt))
		}
	}
	ints := []struct {
		prompt string
		dst    *int
	}{
		{"Minimum age", &prefs.MinAge},
		{"Maximum age", &prefs.MaxAge},
	}
	for _, f := range ints {
		s, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if *f.dst, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("%s: not a whole number", strings.ToLower(f.prompt))
		}
	}
	if prefs.MinAge > prefs.MaxAge {
		return errors.New("minimum age is above maximum age")
	}

	if err := a.store.UpdateLocation(ctx, prefs); err != nil {
		return a.authError()
	}
	fmt.Fprintln(a.out, "Location preferences saved")
	return nil
}
