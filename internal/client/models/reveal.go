package models

import "slices"

const (
	PlaceholderName = "Mystery Match"
	PlaceholderBio  = "Photo will be revealed in 7 days"
)

// MatchView is what a screen may show for a match.
type MatchView struct {
	Name      string
	Bio       string
	Photo     string
	Interests []string
	Revealed  bool
}

// Display applies the reveal gate. While IsPhotoRevealed is false the matched
// user's name, bio and photo are replaced by placeholders whatever the payload
// carries; interests are shown either way.
func (m *Match) Display() MatchView {
	var u MatchedUser
	if m.MatchedUser != nil {
		u = *m.MatchedUser
	}

	v := MatchView{Interests: slices.Clone(u.Interests), Revealed: m.IsPhotoRevealed}
	if !m.IsPhotoRevealed {
		v.Name = PlaceholderName
		v.Bio = PlaceholderBio
		return v
	}
	v.Name = u.Name
	v.Bio = u.Bio
	v.Photo = u.Photo
	return v
}
