package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"bahikhata/internal/domain"
	sessionrepo "bahikhata/internal/repository/session"
)

type sessionManager struct {
	repo sessionrepo.Repository
}

func newSessionManager(repo sessionrepo.Repository) *sessionManager {
	return &sessionManager{repo: repo}
}

func (m *sessionManager) Issue(ctx context.Context, ownerID string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, sessionrepo.Session{
			Token:        token,
			StoreOwnerID: ownerID,
			ExpiresAt:    expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("session token collision")
}

func (m *sessionManager) Validate(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	s, err := m.repo.Get(ctx, token)
	if err != nil {
		return "", false
	}
	if time.Now().After(s.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return "", false
	}
	return s.StoreOwnerID, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
