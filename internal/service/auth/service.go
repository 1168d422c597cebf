package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"bahikhata/internal/domain"
	ownerrepo "bahikhata/internal/repository/owner"
	sessionrepo "bahikhata/internal/repository/session"
)

var (
	// ErrInvalidSession indicates the bearer token is missing, unknown or expired.
	ErrInvalidSession = errors.New("invalid session")
	// ErrPhoneRequired is returned when sign-in lacks a phone number.
	ErrPhoneRequired = errors.New("phone required")
)

// Service handles store-owner sign-in and session resolution. Sign-in is a
// password-less phone upsert: the OTP field is accepted and ignored, real
// verification is out of scope.
type Service struct {
	owners     ownerrepo.Repository
	sessions   *sessionManager
	sessionTTL time.Duration
}

// New creates a Service with a 30-day session lifetime.
func New(owners ownerrepo.Repository, sessions sessionrepo.Repository) *Service {
	return &Service{
		owners:     owners,
		sessions:   newSessionManager(sessions),
		sessionTTL: 30 * 24 * time.Hour,
	}
}

// SignInInput captures fields expected by the sign-in endpoint.
type SignInInput struct {
	Phone     string `json:"phone"`
	OTP       string `json:"otp"`
	StoreName string `json:"storeName"`
	OwnerName string `json:"ownerName"`
}

// SignIn upserts the store owner keyed on the phone-derived email and issues
// a session token.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (*domain.StoreOwner, string, error) {
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return nil, "", ErrPhoneRequired
	}

	ownerName := strings.TrimSpace(in.OwnerName)
	if ownerName == "" {
		ownerName = "Store Owner"
	}
	storeName := strings.TrimSpace(in.StoreName)
	if storeName == "" {
		storeName = "My Store"
	}

	o, err := s.owners.UpsertByEmail(ctx, domain.StoreOwner{
		Email:     phone + "@phone.local",
		Phone:     phone,
		StoreName: storeName,
		OwnerName: ownerName,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(ctx, o.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return o, token, nil
}

// Resolve maps a bearer token to the store owner it belongs to.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.StoreOwner, error) {
	ownerID, ok := s.sessions.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidSession
	}
	o, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return o, nil
}
