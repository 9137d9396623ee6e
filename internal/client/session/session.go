// Package session owns the single persisted token slot.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blindmatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blindmatch/internal/common"
)

// TokenStore reads and writes the session token through a metadata.Repository.
// It also serves as the API client's token source, so every request carries
// whatever token is persisted at the moment it is sent.
type TokenStore struct {
	repo metadata.Repository
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Token returns the persisted token or "" when none is stored.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.TokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(v), nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
