package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

type matchEnvelope struct {
	Match *models.Match `json:"match"`
}

type messagesEnvelope struct {
	Messages []models.Message `json:"messages"`
}

type messageEnvelope struct {
	Message *models.Message `json:"message"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// MatchService covers /matches and the per-match chat.
//
// The server decides who is matched and when photos are revealed; the
// returned Match is passed through untouched, including fields the client
// does not model.
type MatchService interface {
	Find(ctx context.Context) (*models.Match, error)
	Current(ctx context.Context) (*models.Match, error)
	Extend(ctx context.Context, matchID string) (*models.Match, error)
	Messages(ctx context.Context, matchID string) ([]models.Message, error)
	Send(ctx context.Context, matchID, content string) (*models.Message, error)
}

type matchService struct {
	client client.Client
}

func NewMatchService(c client.Client) MatchService {
	return &matchService{client: c}
}

func matchPath(id string) string {
	return "/matches/" + url.PathEscape(id)
}

func (s *matchService) Find(ctx context.Context) (*models.Match, error) {
	return s.match(ctx, http.MethodPost, "/matches/find")
}

func (s *matchService) Current(ctx context.Context) (*models.Match, error) {
	return s.match(ctx, http.MethodGet, "/matches/current")
}

func (s *matchService) Extend(ctx context.Context, matchID string) (*models.Match, error) {
	return s.match(ctx, http.MethodPost, matchPath(matchID)+"/extend")
}

func (s *matchService) match(ctx context.Context, method, path string) (*models.Match, error) {
	var env matchEnvelope
	if err := s.client.Do(ctx, method, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Match, nil
}

func (s *matchService) Messages(ctx context.Context, matchID string) ([]models.Message, error) {
	var env messagesEnvelope
	if err := s.client.Do(ctx, http.MethodGet, matchPath(matchID)+"/messages", nil, &env); err != nil {
		return nil, err
	}
	return env.Messages, nil
}

func (s *matchService) Send(ctx context.Context, matchID, content string) (*models.Message, error) {
	var env messageEnvelope
	err := s.client.Do(ctx, http.MethodPost, matchPath(matchID)+"/messages", sendMessageRequest{Content: content}, &env)
	if err != nil {
		return nil, err
	}
	return env.Message, nil
}
