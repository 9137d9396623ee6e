package store

import (
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

// MatchState holds at most one current match.
type MatchState struct {
	CurrentMatch *models.Match
	Loading      bool
	Error        string
}

func (s MatchState) clone() MatchState {
	s.CurrentMatch = s.CurrentMatch.Clone()
	return s
}

// foldMatch replaces the current match on find and refresh, and merges the
// extend response over it so fields the extend call does not echo survive.
func foldMatch(s MatchState, a action) MatchState {
	switch a.Type {
	case pendingOf(opFindMatch), pendingOf(opGetCurrentMatch), pendingOf(opExtendMatch):
		s.Loading = true
		s.Error = ""

	case fulfilledOf(opFindMatch), fulfilledOf(opGetCurrentMatch):
		m, _ := a.Payload.(*models.Match)
		s.Loading = false
		s.CurrentMatch = m

	case fulfilledOf(opExtendMatch):
		patch, _ := a.Payload.(*models.Match)
		s.Loading = false
		merged, err := s.CurrentMatch.Merge(patch)
		if err != nil {
			s.Error = fallbackExtendMatch
			return s
		}
		s.CurrentMatch = merged

	case rejectedOf(opFindMatch), rejectedOf(opGetCurrentMatch), rejectedOf(opExtendMatch):
		s.Loading = false
		s.Error = a.Error

	case actClearMatch:
		s.CurrentMatch = nil

	case actMatchClearError:
		s.Error = ""
	}
	return s
}
