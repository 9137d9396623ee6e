package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

type interestsEnvelope struct {
	Interests []models.Interest `json:"interests"`
}

// InterestService covers the interest catalog (create, update and delete are
// admin only) and the current user's selection under /interests/user.
type InterestService interface {
	List(ctx context.Context) ([]models.Interest, error)
	Get(ctx context.Context, interestID string) (*models.Interest, error)
	Create(ctx context.Context, in models.Interest) (*models.Interest, error)
	Update(ctx context.Context, interestID string, in models.Interest) (*models.Interest, error)
	Delete(ctx context.Context, interestID string) error

	Select(ctx context.Context, interestID string) error
	Remove(ctx context.Context, interestID string) error
	Mine(ctx context.Context) ([]models.Interest, error)
}

type interestService struct {
	client client.Client
}

func NewInterestService(c client.Client) InterestService {
	return &interestService{client: c}
}

func interestPath(id string) string {
	return "/interests/" + url.PathEscape(id)
}

func selectionPath(id string) string {
	return "/interests/user/" + url.PathEscape(id)
}

func (s *interestService) List(ctx context.Context) ([]models.Interest, error) {
	var env interestsEnvelope
	if err := s.client.Do(ctx, http.MethodGet, "/interests", nil, &env); err != nil {
		return nil, err
	}
	return env.Interests, nil
}

func (s *interestService) Get(ctx context.Context, interestID string) (*models.Interest, error) {
	var in models.Interest
	if err := s.client.Do(ctx, http.MethodGet, interestPath(interestID), nil, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *interestService) Create(ctx context.Context, in models.Interest) (*models.Interest, error) {
	payload := models.Interest{Name: in.Name, Weight: in.Weight}
	var out models.Interest
	if err := s.client.Do(ctx, http.MethodPost, "/interests", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *interestService) Update(ctx context.Context, interestID string, in models.Interest) (*models.Interest, error) {
	payload := models.Interest{Name: in.Name, Weight: in.Weight}
	var out models.Interest
	if err := s.client.Do(ctx, http.MethodPut, interestPath(interestID), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *interestService) Delete(ctx context.Context, interestID string) error {
	return s.client.Do(ctx, http.MethodDelete, interestPath(interestID), nil, nil)
}

func (s *interestService) Select(ctx context.Context, interestID string) error {
	return s.client.Do(ctx, http.MethodPost, selectionPath(interestID), nil, nil)
}

func (s *interestService) Remove(ctx context.Context, interestID string) error {
	return s.client.Do(ctx, http.MethodDelete, selectionPath(interestID), nil, nil)
}

func (s *interestService) Mine(ctx context.Context) ([]models.Interest, error) {
	var env interestsEnvelope
	if err := s.client.Do(ctx, http.MethodGet, "/interests/user", nil, &env); err != nil {
		return nil, err
	}
	return env.Interests, nil
}
