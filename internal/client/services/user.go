package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/blindmatch/internal/client/client"
	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// UpdateProfileRequest carries the profile fields to change; empty fields
// are omitted from the request and left untouched by the server.
type UpdateProfileRequest struct {
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type usersEnvelope struct {
	Users []models.User `json:"users"`
}

// UserService covers the /users resource group.
type UserService interface {
	// List pages through all users (admin only). Non-positive page and
	// limit fall back to 1 and 20.
	List(ctx context.Context, page, limit int) ([]models.User, error)
	Nearby(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	UpdateLocation(ctx context.Context, prefs models.LocationPreferences) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) error
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func userPath(userID string) string {
	return "/users/" + url.PathEscape(userID)
}

func (s *userService) List(ctx context.Context, page, limit int) ([]models.User, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var env usersEnvelope
	if err := s.client.Do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (s *userService) Nearby(ctx context.Context) ([]models.User, error) {
	var env usersEnvelope
	if err := s.client.Do(ctx, http.MethodGet, "/users/nearby", nil, &env); err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get user: empty user id")
	}
	var u models.User
	if err := s.client.Do(ctx, http.MethodGet, userPath(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) UpdateLocation(ctx context.Context, prefs models.LocationPreferences) (*models.User, error) {
	var u models.User
	if err := s.client.Do(ctx, http.MethodPut, "/users/location", prefs, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update profile: empty user id")
	}
	var u models.User
	if err := s.client.Do(ctx, http.MethodPut, userPath(userID), req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req UpdatePasswordRequest) error {
	if userID == "" {
		return fmt.Errorf("update password: empty user id")
	}
	return s.client.Do(ctx, http.MethodPatch, userPath(userID)+"/password", req, nil)
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("delete user: empty user id")
	}
	return s.client.Do(ctx, http.MethodDelete, userPath(userID), nil, nil)
}
