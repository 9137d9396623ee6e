// Package models defines the client-side copies of the entities served by the
// dating API: users, matches, chat messages and interests.
package models

import "slices"

// LocationPreferences controls who the server considers for matching.
type LocationPreferences struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	MinAge    int     `json:"minAge"`
	MaxAge    int     `json:"maxAge"`
}

// User is the authenticated user's profile as returned by the server.
type User struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Bio       string               `json:"bio,omitempty"`
	PhotoURL  string               `json:"photoUrl,omitempty"`
	Interests []string             `json:"interests,omitempty"`
	Location  *LocationPreferences `json:"locationPreferences,omitempty"`
}

// Clone returns a deep copy of u. A nil receiver yields nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Interests = slices.Clone(u.Interests)
	if u.Location != nil {
		loc := *u.Location
		c.Location = &loc
	}
	return &c
}
